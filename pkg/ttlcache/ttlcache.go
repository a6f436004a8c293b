// Package ttlcache реализует простой потокобезопасный кэш с фиксированным
// временем жизни записей. Записи не инвалидируются при записи в хранилище -
// устаревание до истечения TTL считается допустимым.
package ttlcache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache кэш значений с фиксированным TTL.
// Запись иммутабельна после создания, чтение не блокирует другие запросы.
type Cache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[V]
}

// New создает новый кэш с указанным TTL
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
}

// NewWithClock создает кэш с внешним источником времени (для тестирования)
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry[V]),
	}
}

// Get возвращает значение по ключу, если оно есть и не устарело
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}

	return e.value, true
}

// Set сохраняет значение по ключу, перезаписывая существующее.
// Попутно удаляет устаревшие записи, чтобы кэш не рос бесконечно.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: now.Add(c.ttl),
	}
}

// Len возвращает количество записей в кэше (включая устаревшие)
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
