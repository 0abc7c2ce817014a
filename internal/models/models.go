// Package models содержит доменные структуры дашборда прогнозов:
// пользователей, прогнозы, а также вспомогательные типы для приёма
// данных из внешних источников (например, JSON-запросов).
package models

import "time"

// Роли пользователей. Роль определяет право на запись (только админ)
// и доступ к закрытому контенту (premium и admin).
const (
	RoleFree    = "free"
	RolePremium = "premium"
	RoleAdmin   = "admin"
)

// Типы видимости прогноза. Контент premium-прогнозов маскируется
// для пользователей без подписки.
const (
	TypeFree    = "free"
	TypePremium = "premium"
)

// Статусы жизненного цикла прогноза.
const (
	StatusUpcoming = "upcoming"
	StatusWon      = "won"
	StatusLost     = "lost"
	StatusVoid     = "void"
)

// Виды спорта. SportOther — открытый catch-all для всего остального.
const (
	SportFootball   = "football"
	SportBasketball = "basketball"
	SportTennis     = "tennis"
	SportHockey     = "hockey"
	SportOther      = "other"
)

// MaskToken — значение, которым заменяются закрытые поля premium-прогноза
// при выдаче пользователю без подписки.
const MaskToken = "*****"

// ValidStatus сообщает, входит ли значение в набор допустимых статусов.
// Единственная точка проверки перехода статуса: сейчас любой допустимый
// статус принимается из любого исходного, сюда же добавится guard
// по (from, to), если он появится.
func ValidStatus(s string) bool {
	switch s {
	case StatusUpcoming, StatusWon, StatusLost, StatusVoid:
		return true
	}
	return false
}

// ValidRole сообщает, входит ли значение в набор допустимых ролей.
func ValidRole(r string) bool {
	switch r {
	case RoleFree, RolePremium, RoleAdmin:
		return true
	}
	return false
}

// User представляет учётную запись пользователя дашборда.
// SubscriptionEnd имеет смысл только для роли premium и может быть nil.
type User struct {
	ID              int        `json:"id"`
	UID             string     `json:"uid"`
	Username        string     `json:"username"`
	PasswordHash    string     `json:"-"`
	Role            string     `json:"role"`
	SubscriptionEnd *time.Time `json:"subscriptionEnd,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Prediction — основная модель прогноза, используемая в бизнес-логике
// и хранилище. Odds хранится строкой, чтобы не терять точность
// отображения коэффициента.
type Prediction struct {
	ID         int       `json:"id"`
	MatchTitle string    `json:"matchTitle"`
	League     string    `json:"league"`
	SportType  string    `json:"sportType"`
	StartTime  time.Time `json:"startTime"`
	Prediction string    `json:"prediction"`
	Odds       string    `json:"odds"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PredictionView — представление прогноза, выдаваемое наружу.
// Форма одна для всех уровней доступа: у закрытого прогноза поля
// Prediction и Notes заменены на MaskToken, а IsPremiumLocked = true.
type PredictionView struct {
	Prediction
	IsPremiumLocked bool `json:"isPremiumLocked"`
}

// DummyPrediction используется для приёма данных прогноза из JSON-запроса,
// прежде чем конвертировать их в Prediction. StartTime приходит строкой
// в формате RFC3339, чтобы её можно было валидировать и парсить вручную.
type DummyPrediction struct {
	MatchTitle string `json:"matchTitle" validate:"required"`
	League     string `json:"league" validate:"required"`
	SportType  string `json:"sportType" validate:"required,oneof=football basketball tennis hockey other"`
	StartTime  string `json:"startTime" validate:"required"`
	Prediction string `json:"prediction" validate:"required"`
	Odds       string `json:"odds" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=free premium"`
	Notes      string `json:"notes"`
}

// PredictionFilter — набор измерений фильтрации ленты прогнозов,
// как их задаёт вызывающая сторона. Все активные ограничения
// комбинируются через AND.
type PredictionFilter struct {
	// Status — "upcoming" (status = upcoming), "completed"
	// (status in won/lost/void) или точное значение статуса.
	// Пустое значение — без ограничения.
	Status string
	// SportType — точное совпадение вида спорта, "all" или пусто —
	// без ограничения.
	SportType string
	// Type — точное совпадение типа видимости (free/premium),
	// "all" или пусто — без ограничения.
	Type string
	// TimeFrame — именованное окно относительно "сейчас":
	// today, tomorrow, thisWeek. "any" или пусто — без ограничения.
	TimeFrame string
	// StartDate и EndDate — явные включительные границы по времени
	// начала матча.
	StartDate *time.Time
	EndDate   *time.Time
}
