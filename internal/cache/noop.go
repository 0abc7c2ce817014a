package cache

import "time"

// Noop — заглушка кеша для деплоя без Redis (пустой addressredis в конфиге).
// Все операции успешны и ничего не делают, Get всегда промахивается.
type Noop struct{}

// Get всегда возвращает промах.
func (Noop) Get(_ string, _ any) (bool, error) { return false, nil }

// Set ничего не сохраняет.
func (Noop) Set(_ string, _ any, _ time.Duration) error { return nil }

// Invalidate ничего не удаляет.
func (Noop) Invalidate(_ string) error { return nil }
