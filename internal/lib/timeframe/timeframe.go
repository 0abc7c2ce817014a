// Package timeframe переводит именованные окна времени (today, tomorrow,
// thisWeek) в конкретные границы относительно переданного "сейчас".
// Момент "сейчас" всегда приходит аргументом, чтобы тесты могли
// зафиксировать его и проверить поведение на границах суток.
package timeframe

import "time"

// Имена поддерживаемых окон.
const (
	Today    = "today"
	Tomorrow = "tomorrow"
	ThisWeek = "thisWeek"
	Any      = "any"
)

// Resolve возвращает полуинтервал [from, to) для именованного окна.
// Граница to исключается: матч, начинающийся ровно в полночь завтрашнего
// дня, не попадает в окно today. Для "any", пустой строки и неизвестного
// имени возвращает ok = false — ограничение не накладывается.
func Resolve(name string, now time.Time) (from, to time.Time, ok bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch name {
	case Today:
		return midnight, midnight.AddDate(0, 0, 1), true
	case Tomorrow:
		return midnight.AddDate(0, 0, 1), midnight.AddDate(0, 0, 2), true
	case ThisWeek:
		return midnight, midnight.AddDate(0, 0, 7), true
	}
	return time.Time{}, time.Time{}, false
}
