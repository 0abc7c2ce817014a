package timeframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	// Фиксированное "сейчас": середина дня, чтобы границы были нетривиальны.
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	midnight := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		frame    string
		wantFrom time.Time
		wantTo   time.Time
		wantOK   bool
	}{
		{
			name:     "today",
			frame:    Today,
			wantFrom: midnight,
			wantTo:   midnight.AddDate(0, 0, 1),
			wantOK:   true,
		},
		{
			name:     "tomorrow",
			frame:    Tomorrow,
			wantFrom: midnight.AddDate(0, 0, 1),
			wantTo:   midnight.AddDate(0, 0, 2),
			wantOK:   true,
		},
		{
			name:     "this week",
			frame:    ThisWeek,
			wantFrom: midnight,
			wantTo:   midnight.AddDate(0, 0, 7),
			wantOK:   true,
		},
		{
			name:   "any — без ограничения",
			frame:  Any,
			wantOK: false,
		},
		{
			name:   "пустая строка — без ограничения",
			frame:  "",
			wantOK: false,
		},
		{
			name:   "неизвестное окно — без ограничения",
			frame:  "nextYear",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := Resolve(tt.frame, now)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantFrom, from)
				assert.Equal(t, tt.wantTo, to)
			}
		})
	}
}

func TestResolveBoundary(t *testing.T) {
	// Матч ровно в полночь завтрашнего дня не входит в окно today,
	// но входит в окно tomorrow.
	now := time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC)
	startAtMidnight := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	from, to, ok := Resolve(Today, now)
	require.True(t, ok)
	assert.False(t, !startAtMidnight.Before(from) && startAtMidnight.Before(to),
		"полночь завтрашнего дня не должна попадать в today")

	from, to, ok = Resolve(Tomorrow, now)
	require.True(t, ok)
	assert.True(t, !startAtMidnight.Before(from) && startAtMidnight.Before(to),
		"полночь завтрашнего дня должна попадать в tomorrow")
}
