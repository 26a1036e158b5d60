package session

import "time"

// watcher owns the background expiry checks that run only while a token is
// held: a periodic ticker plus a focus channel for event-driven re-checks.
// Both are torn down together when the token goes away or the manager is
// closed, so neither can outlive the session they watch.
type watcher struct {
	focus chan struct{}
	done  chan struct{}
}

func (m *Manager) startWatcherLocked() {
	if m.watcher != nil || m.closed {
		return
	}
	w := &watcher{
		focus: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	m.watcher = w
	go m.watch(w)
}

func (m *Manager) stopWatcherLocked() {
	if m.watcher == nil {
		return
	}
	close(m.watcher.done)
	m.watcher = nil
}

func (m *Manager) watch(w *watcher) {
	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			m.checkExpiry()
		case <-w.focus:
			m.checkExpiry()
		}
	}
}

// Focus signals that the process regained foreground focus, covering the
// case where the ticker did not fire while backgrounded. A no-op while
// unauthenticated.
func (m *Manager) Focus() {
	m.mu.Lock()
	w := m.watcher
	m.mu.Unlock()
	if w == nil {
		return
	}

	// A pending signal already triggers the same check; dropping is fine.
	select {
	case w.focus <- struct{}{}:
	default:
	}
}

// checkExpiry re-reads the persisted token (another process may have
// changed it), decodes it, and compares the expiry to the clock. A token
// that is gone, mangled, or past its expiry ends the session loudly.
func (m *Manager) checkExpiry() {
	m.mu.Lock()
	if m.token == "" {
		m.mu.Unlock()
		return
	}

	raw, err := m.store.Get()
	if err != nil {
		m.log.Warn("expiry check could not read persisted token", "error", err)
		m.mu.Unlock()
		return
	}

	claims, derr := decodeToken(raw)
	if derr != nil || claims.expired(m.now()) {
		m.logoutLocked(LogoutExpired)
		m.finishLocked(RouteLogin)
		return
	}

	m.mu.Unlock()
}
