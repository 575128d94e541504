package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/dpda/internal/logging"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/aretw0/dpda/pkg/ports"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Report is the externally visible view of a session.
type Report struct {
	SessionID string         `json:"session_id"`
	Status    string         `json:"status"`
	State     int            `json:"state"`
	Stack     string         `json:"stack"`
	Trapped   bool           `json:"trapped"`
	Steps     int            `json:"steps"`
	Accepted  bool           `json:"accepted"`
	Verdict   domain.Verdict `json:"verdict"`
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	template *automaton.Automaton
	store    ports.RunStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL bounds how long a distributed lock survives a crashed holder.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager running sessions against template. The
// template's own run state is never touched; its topology must not change
// once sessions exist.
func NewManager(template *automaton.Automaton, store ports.RunStore, opts ...Option) *Manager {
	m := &Manager{
		template: template,
		store:    store,
		locks:    make(map[string]*lockEntry),
		lockTTL:  30 * time.Second,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Automaton returns the template.
func (m *Manager) Automaton() *automaton.Automaton {
	return m.template
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// WithLock executes a function while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, sessionID, m.lockTTL)
		if err != nil {
			return errors.Wrap(err, "failed to acquire distributed lock")
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"session_id", sessionID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Start creates a session at the initial configuration under a fresh ID.
func (m *Manager) Start(ctx context.Context) (*Report, error) {
	return m.Open(ctx, uuid.NewString())
}

// Open loads a session, creating it at the initial configuration when absent.
func (m *Manager) Open(ctx context.Context, sessionID string) (*Report, error) {
	var report *Report
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		a, err := m.restore(ctx, sessionID)
		if err == nil {
			report = m.report(sessionID, a)
			return nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to check session existence")
		}

		a = m.template.Fresh()
		if err := m.save(ctx, sessionID, a); err != nil {
			return errors.Wrap(err, "failed to initialize session")
		}
		m.logger.Info("session started", "session_id", sessionID)
		report = m.report(sessionID, a)
		return nil
	})
	return report, err
}

// Status reports a session without changing it.
func (m *Manager) Status(ctx context.Context, sessionID string) (*Report, error) {
	var report *Report
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		a, err := m.restore(ctx, sessionID)
		if err != nil {
			return err
		}
		report = m.report(sessionID, a)
		return nil
	})
	return report, err
}

// Read feeds input to a session one character at a time, stopping early if
// the session becomes trapped. An invalid character stops the read with
// domain.ErrInvalidSymbol; the characters before it stay consumed and the
// returned report reflects them.
func (m *Manager) Read(ctx context.Context, sessionID, input string) (*Report, error) {
	var report *Report
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		a, err := m.restore(ctx, sessionID)
		if err != nil {
			return err
		}

		n, readErr := a.ReadString(input)
		if readErr != nil {
			m.logger.Warn("input rejected", "session_id", sessionID, "consumed", n, "err", readErr)
		}
		if err := m.save(ctx, sessionID, a); err != nil {
			return err
		}
		report = m.report(sessionID, a)
		return readErr
	})
	if report == nil {
		return nil, err
	}
	return report, err
}

// Reset returns a session to the initial configuration.
func (m *Manager) Reset(ctx context.Context, sessionID string) (*Report, error) {
	var report *Report
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		a, err := m.restore(ctx, sessionID)
		if err != nil {
			return err
		}
		a.Reset()
		if err := m.save(ctx, sessionID, a); err != nil {
			return err
		}
		report = m.report(sessionID, a)
		return nil
	})
	return report, err
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		if _, err := m.store.Load(ctx, sessionID); err != nil {
			return err
		}
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

func (m *Manager) restore(ctx context.Context, sessionID string) (*automaton.Automaton, error) {
	state, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a := m.template.Clone()
	if err := a.Restore(state); err != nil {
		return nil, errors.Wrapf(err, "session %s holds an unusable run state", sessionID)
	}
	return a, nil
}

func (m *Manager) save(ctx context.Context, sessionID string, a *automaton.Automaton) error {
	state := a.Snapshot()
	state.UpdatedAt = time.Now()
	return m.store.Save(ctx, sessionID, state)
}

func (m *Manager) report(sessionID string, a *automaton.Automaton) *Report {
	return &Report{
		SessionID: sessionID,
		Status:    a.CurrentStatus(),
		State:     a.State(),
		Stack:     a.StackContents(),
		Trapped:   a.InTrappedState(),
		Steps:     a.Steps(),
		Accepted:  a.Accepted(),
		Verdict:   a.FinalStatus(),
	}
}
