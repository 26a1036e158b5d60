// Package session owns the client's authentication state: it acquires
// bearer tokens through the gateway's auth endpoints, persists them,
// watches for expiry, and broadcasts state changes to consumers. It is the
// single writer and reader of the persisted token.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/muusmart/muusmart/pkg/tokenstore"
)

// Routes the manager asks the Navigator to move to.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// ReasonExpired is the only value SessionExpiredReason takes. It is set
// when a previously valid session becomes invalid mid-session, never on
// cold start with an already-expired stored token.
const ReasonExpired = "expired"

// DefaultCheckInterval is how often the watcher re-checks token expiry.
const DefaultCheckInterval = 30 * time.Second

// LogoutReason distinguishes a user-initiated logout from a forced one.
type LogoutReason string

const (
	LogoutManual  LogoutReason = "manual"
	LogoutExpired LogoutReason = "expired"
)

// Credentials is a login payload.
type Credentials struct {
	Username string
	Password string
}

// Registration is an account-creation payload.
type Registration struct {
	Username string
	Email    string
	Password string
}

// AuthClient performs the login and registration round trips. Both return
// the issued bearer token on success.
type AuthClient interface {
	Login(ctx context.Context, creds Credentials) (token string, err error)
	Register(ctx context.Context, reg Registration) (token string, err error)
}

// Navigator receives view-transition requests. A CLI can log them; a UI
// shell routes them.
type Navigator interface {
	GoTo(route string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route string)

func (f NavigatorFunc) GoTo(route string) { f(route) }

// State is a read-only snapshot of the session, delivered to subscribers
// on every transition.
type State struct {
	Token     string
	IsLoading bool

	// SessionExpiredReason is "expired" after a mid-session expiry until
	// the consumer acknowledges it via ClearSessionExpiredReason.
	SessionExpiredReason string

	// ShowWelcomeNotification is set after a successful login, to be
	// cleared by the consumer once displayed.
	ShowWelcomeNotification bool

	// IsNewUser is set after a successful registration, to be cleared by
	// the consumer once displayed.
	IsNewUser bool
}

// Manager is the session lifecycle state machine: Unauthenticated cycles to
// Authenticated on login/register success or restore of a valid token, and
// back on expiry, an unauthorized signal, or manual logout.
//
// All transitions are serialized under one mutex, so no two handlers (timer
// tick, focus check, unauthorized delivery, user operation) ever observe or
// produce a half-applied transition.
type Manager struct {
	auth  AuthClient
	store tokenstore.Store
	nav   Navigator
	log   *slog.Logger
	now   func() time.Time

	checkInterval time.Duration

	mu            sync.Mutex
	token         string
	claims        *Claims
	isLoading     bool
	expiredReason string
	showWelcome   bool
	isNewUser     bool
	closed        bool

	// epoch increments on every logout so a login/register response that
	// resolves after a logout is discarded instead of resurrecting a
	// stale token.
	epoch uint64

	watcher      *watcher
	unauthCancel func()

	nextSub int
	subs    map[int]func(State)
}

// Option configures a Manager.
type Option func(*Manager)

// WithNavigator sets the navigation collaborator.
func WithNavigator(nav Navigator) Option {
	return func(m *Manager) { m.nav = nav }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithCheckInterval overrides the watcher's periodic check interval.
func WithCheckInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.checkInterval = d
		}
	}
}

// WithUnauthorizedSignal subscribes the manager to the transport's
// unauthorized broadcast for its lifetime (until Close).
func WithUnauthorizedSignal(sig *UnauthorizedSignal) Option {
	return func(m *Manager) {
		m.unauthCancel = sig.Subscribe(m.handleUnauthorized)
	}
}

// New creates a Manager. The caller must run Initialize once before using
// it; until then IsLoading is true.
func New(auth AuthClient, store tokenstore.Store, opts ...Option) *Manager {
	m := &Manager{
		auth:          auth,
		store:         store,
		log:           slog.Default(),
		now:           time.Now,
		checkInterval: DefaultCheckInterval,
		isLoading:     true,
		subs:          make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize restores a persisted token, if any. An expired or undecodable
// stored token is purged silently: this is not a mid-session expiry, so no
// expiry reason is surfaced.
func (m *Manager) Initialize() {
	m.mu.Lock()

	raw, err := m.store.Get()
	if err != nil {
		m.log.Warn("failed to read persisted token, starting unauthenticated", "error", err)
		raw = ""
	}

	if raw != "" {
		claims, derr := decodeToken(raw)
		switch {
		case derr != nil:
			m.log.Debug("purging undecodable persisted token")
			_ = m.store.Delete()
		case claims.expired(m.now()):
			m.log.Debug("purging expired persisted token")
			_ = m.store.Delete()
		default:
			m.token = raw
			m.claims = claims
			m.startWatcherLocked()
			m.log.Info("session restored", "principal", claims.Principal())
		}
	}

	m.isLoading = false
	m.finishLocked("")
}

// Login authenticates against the gateway and adopts the issued token.
func (m *Manager) Login(ctx context.Context, creds Credentials) error {
	m.mu.Lock()
	epoch := m.epoch
	m.mu.Unlock()

	raw, err := m.auth.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
	}

	claims, err := decodeToken(raw)
	if err != nil {
		return fmt.Errorf("%w: gateway returned malformed token", ErrInvalidCredentials)
	}
	if claims.expired(m.now()) {
		return ErrAlreadyExpired
	}

	m.mu.Lock()
	if m.closed || m.epoch != epoch {
		m.mu.Unlock()
		m.log.Debug("discarding login response that resolved after logout")
		return nil
	}
	if err := m.store.Set(raw); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to persist token: %w", err)
	}
	m.token = raw
	m.claims = claims
	m.showWelcome = true
	m.startWatcherLocked()
	m.log.Info("login succeeded", "principal", claims.Principal())
	m.finishLocked(RouteDashboard)
	return nil
}

// Register creates an account and adopts the issued token.
func (m *Manager) Register(ctx context.Context, reg Registration) error {
	m.mu.Lock()
	epoch := m.epoch
	m.mu.Unlock()

	raw, err := m.auth.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRegistrationFailed, err)
	}

	claims, err := decodeToken(raw)
	if err != nil {
		return fmt.Errorf("%w: gateway returned malformed token", ErrRegistrationFailed)
	}
	if claims.expired(m.now()) {
		return ErrAlreadyExpired
	}

	m.mu.Lock()
	if m.closed || m.epoch != epoch {
		m.mu.Unlock()
		m.log.Debug("discarding register response that resolved after logout")
		return nil
	}
	if err := m.store.Set(raw); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to persist token: %w", err)
	}
	m.token = raw
	m.claims = claims
	m.isNewUser = true
	m.startWatcherLocked()
	m.log.Info("registration succeeded", "principal", claims.Principal())
	m.finishLocked(RouteDashboard)
	return nil
}

// Logout clears the session. It is idempotent and safe to call from any
// trigger in quick succession; a manual logout never sets the expiry
// reason, and only ClearSessionExpiredReason unsets it.
func (m *Manager) Logout(reason LogoutReason) {
	m.mu.Lock()
	m.logoutLocked(reason)
	m.finishLocked(RouteLogin)
}

// logoutLocked performs the shared cleanup for manual logout, expiry, and
// the unauthorized signal.
func (m *Manager) logoutLocked(reason LogoutReason) {
	m.epoch++
	m.token = ""
	m.claims = nil
	m.stopWatcherLocked()

	if err := m.store.Delete(); err != nil {
		m.log.Warn("failed to delete persisted token", "error", err)
	}

	if reason == LogoutExpired {
		m.expiredReason = ReasonExpired
	}

	m.log.Info("session ended", "reason", string(reason))
}

// ClearSessionExpiredReason acknowledges the expiry notice after the
// consumer has displayed it once.
func (m *Manager) ClearSessionExpiredReason() {
	m.mu.Lock()
	m.expiredReason = ""
	m.finishLocked("")
}

// ClearWelcomeNotification acknowledges the post-login welcome flag.
func (m *Manager) ClearWelcomeNotification() {
	m.mu.Lock()
	m.showWelcome = false
	m.finishLocked("")
}

// ClearNewUser acknowledges the post-registration flag.
func (m *Manager) ClearNewUser() {
	m.mu.Lock()
	m.isNewUser = false
	m.finishLocked("")
}

// Token returns the current bearer token, or "" when unauthenticated.
// It also satisfies the transport's token provider interface.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Principal returns the authenticated principal's name, or "".
func (m *Manager) Principal() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.claims == nil {
		return ""
	}
	return m.claims.Principal()
}

// ExpiresAt returns the current token's expiry instant. ok is false when
// unauthenticated.
func (m *Manager) ExpiresAt() (expiry time.Time, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.claims == nil {
		return time.Time{}, false
	}
	return m.claims.ExpiresAt.Time, true
}

// State returns a snapshot of the session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

// Subscribe registers fn to receive a snapshot after every transition.
// The returned cancel is idempotent.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return func() {}
	}
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		if m.subs != nil {
			delete(m.subs, id)
		}
		m.mu.Unlock()
	}
}

// Close tears down the watcher and the unauthorized subscription. It does
// not touch the persisted token; closing is disposal, not logout.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.stopWatcherLocked()
	cancel := m.unauthCancel
	m.unauthCancel = nil
	m.subs = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// handleUnauthorized is the sink for the transport's unauthorized
// broadcast. Any 401/403 on any authenticated request force-logs-out the
// whole session; 403 permission errors are not distinguished from token
// expiry, matching the gateway contract.
func (m *Manager) handleUnauthorized(ev UnauthorizedEvent) {
	m.mu.Lock()
	if m.closed || m.token == "" {
		// A late rejection of an already ended session changes nothing.
		m.mu.Unlock()
		return
	}
	m.log.Info("unauthorized response received, ending session",
		"status", ev.Status, "message", ev.Message)
	m.logoutLocked(LogoutExpired)
	m.finishLocked(RouteLogin)
}

func (m *Manager) stateLocked() State {
	return State{
		Token:                   m.token,
		IsLoading:               m.isLoading,
		SessionExpiredReason:    m.expiredReason,
		ShowWelcomeNotification: m.showWelcome,
		IsNewUser:               m.isNewUser,
	}
}

// finishLocked snapshots state and subscribers, releases the lock, then
// performs navigation and notifications outside it so a subscriber or the
// navigator can call back into the manager.
func (m *Manager) finishLocked(route string) {
	st := m.stateLocked()
	subs := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	nav := m.nav
	m.mu.Unlock()

	if route != "" && nav != nil {
		nav.GoTo(route)
	}
	for _, fn := range subs {
		fn(st)
	}
}
