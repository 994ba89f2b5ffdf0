// Package netmon отслеживает доступность сервера для offline-first клиента.
package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out monitor_mock.go . Monitor

// Monitor defines interface for connectivity state used by the sync engine
type Monitor interface {
	// IsOnline reports whether the server is currently reachable
	IsOnline(ctx context.Context) bool

	// Subscribe registers a callback invoked on every connectivity
	// transition. Возвращает функцию отписки; отписка одного слушателя
	// не влияет на остальных.
	Subscribe(fn func(online bool)) (unsubscribe func())
}

// ProbeFunc выполняет одну проверку доступности сервера
type ProbeFunc func(ctx context.Context) error

const (
	defaultInterval     = 30 * time.Second
	defaultProbeTimeout = 5 * time.Second
)

// HTTPMonitor периодически опрашивает health endpoint сервера
// и уведомляет подписчиков о смене состояния
type HTTPMonitor struct {
	probe    ProbeFunc
	logger   *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	online  bool
	started bool
	subs    map[int]func(online bool)
	nextID  int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHTTPMonitor создает монитор с указанным интервалом опроса.
// interval <= 0 использует значение по умолчанию.
func NewHTTPMonitor(probe ProbeFunc, interval time.Duration, logger *slog.Logger) *HTTPMonitor {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &HTTPMonitor{
		probe:    probe,
		logger:   logger,
		interval: interval,
		subs:     make(map[int]func(online bool)),
	}
}

// Start запускает цикл опроса. Первый опрос выполняется сразу.
func (m *HTTPMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	m.started = true
	m.cancel = cancel
	m.mu.Unlock()

	m.wg.Add(1)
	go m.loop(loopCtx)
}

// Stop останавливает цикл опроса и дожидается его завершения
func (m *HTTPMonitor) Stop() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	m.started = false
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
}

func (m *HTTPMonitor) loop(ctx context.Context) {
	defer m.wg.Done()

	m.runProbe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.runProbe(ctx)
		}
	}
}

func (m *HTTPMonitor) runProbe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()

	err := m.probe(probeCtx)
	m.setOnline(err == nil)
}

// setOnline обновляет состояние и уведомляет подписчиков при его смене.
// Колбэки вызываются вне блокировки.
func (m *HTTPMonitor) setOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed", "online", online)
	for _, fn := range subs {
		fn(online)
	}
}

// IsOnline возвращает текущее состояние. Если цикл опроса не запущен,
// выполняет разовую живую проверку.
func (m *HTTPMonitor) IsOnline(ctx context.Context) bool {
	m.mu.Lock()
	started := m.started
	online := m.online
	m.mu.Unlock()

	if started {
		return online
	}

	probeCtx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()
	err := m.probe(probeCtx)

	m.setOnline(err == nil)
	return err == nil
}

// Subscribe registers a callback invoked on every connectivity transition
func (m *HTTPMonitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}
