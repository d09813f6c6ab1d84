package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process TTL cache with a fixed capacity. A janitor goroutine
// purges expired entries until Close is called.
type Memory struct {
	mu         sync.Mutex
	items      map[string]entry
	maxEntries int
	now        func() time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewMemory(maxEntries int, sweepEvery time.Duration) *Memory {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	if sweepEvery <= 0 {
		sweepEvery = time.Minute
	}

	m := &Memory{
		items:      make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go m.janitor(sweepEvery)
	return m
}

func (m *Memory) janitor(every time.Duration) {
	defer close(m.done)

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.purgeExpiredLocked()
			m.mu.Unlock()
		case <-m.stop:
			return
		}
	}
}

func (m *Memory) purgeExpiredLocked() {
	now := m.now()
	for k, e := range m.items {
		if !now.Before(e.expiresAt) {
			delete(m.items, k)
		}
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.items, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; !exists && len(m.items) >= m.maxEntries {
		m.purgeExpiredLocked()
		if len(m.items) >= m.maxEntries {
			m.evictSoonestLocked()
		}
	}

	m.items[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *Memory) evictSoonestLocked() {
	var (
		victim string
		first  = true
		soon   time.Time
	)
	for k, e := range m.items {
		if first || e.expiresAt.Before(soon) {
			victim, soon, first = k, e.expiresAt, false
		}
	}
	delete(m.items, victim)
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor and waits for it to exit. It is safe to call twice.
func (m *Memory) Close() error {
	m.once.Do(func() {
		close(m.stop)
		<-m.done
	})
	return nil
}
