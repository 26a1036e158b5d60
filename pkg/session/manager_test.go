package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/muusmart/muusmart/pkg/tokenstore"
	"github.com/stretchr/testify/require"
)

// fakeAuth is a canned AuthClient. When gate is non-nil, calls close
// entered on arrival and block until the gate closes, to simulate slow
// round trips that the test can order around.
type fakeAuth struct {
	token   string
	err     error
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeAuth) Login(ctx context.Context, _ Credentials) (string, error) {
	if f.gate != nil {
		if f.entered != nil {
			close(f.entered)
		}
		<-f.gate
	}
	return f.token, f.err
}

func (f *fakeAuth) Register(ctx context.Context, _ Registration) (string, error) {
	if f.gate != nil {
		if f.entered != nil {
			close(f.entered)
		}
		<-f.gate
	}
	return f.token, f.err
}

// recordingNav collects requested routes.
type recordingNav struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordingNav) GoTo(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNav) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

type managerFixture struct {
	m     *Manager
	auth  *fakeAuth
	store *tokenstore.Memory
	nav   *recordingNav
	sig   *UnauthorizedSignal
}

func newFixture(t *testing.T, opts ...Option) *managerFixture {
	t.Helper()

	f := &managerFixture{
		auth:  &fakeAuth{},
		store: tokenstore.NewMemory(),
		nav:   &recordingNav{},
		sig:   NewUnauthorizedSignal(),
	}
	opts = append([]Option{
		WithNavigator(f.nav),
		WithUnauthorizedSignal(f.sig),
	}, opts...)
	f.m = New(f.auth, f.store, opts...)
	t.Cleanup(f.m.Close)
	return f
}

func (f *managerFixture) storedToken(t *testing.T) string {
	t.Helper()
	tok, err := f.store.Get()
	require.NoError(t, err)
	return tok
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	t.Run("no stored token", func(t *testing.T) {
		f := newFixture(t)
		require.True(t, f.m.State().IsLoading)

		f.m.Initialize()

		st := f.m.State()
		require.Empty(t, st.Token)
		require.False(t, st.IsLoading)
		require.Empty(t, st.SessionExpiredReason)
	})

	t.Run("restores valid token", func(t *testing.T) {
		f := newFixture(t)
		raw := mintToken(t, "bob", time.Now().Add(time.Hour))
		require.NoError(t, f.store.Set(raw))

		f.m.Initialize()

		require.Equal(t, raw, f.m.Token())
		require.Equal(t, "bob", f.m.Principal())
		require.Empty(t, f.m.State().SessionExpiredReason)
	})

	t.Run("expired token purged silently", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Set(mintToken(t, "bob", time.Now().Add(-10*time.Second))))

		f.m.Initialize()

		st := f.m.State()
		require.Empty(t, st.Token)
		require.Empty(t, st.SessionExpiredReason, "cold-start expiry must be silent")
		require.Empty(t, f.storedToken(t))
	})

	t.Run("malformed token purged silently", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Set("not.a-decodable.token"))

		f.m.Initialize()

		st := f.m.State()
		require.Empty(t, st.Token)
		require.Empty(t, st.SessionExpiredReason)
		require.Empty(t, f.storedToken(t))
	})

	t.Run("token missing exp purged silently", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Set(mintTokenNoExp(t, "bob")))

		f.m.Initialize()

		require.Empty(t, f.m.Token())
		require.Empty(t, f.storedToken(t))
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("success adopts and persists token", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		raw := mintToken(t, "bob", time.Now().Add(time.Hour))
		f.auth.token = raw

		err := f.m.Login(context.Background(), Credentials{Username: "bob", Password: "x"})
		require.NoError(t, err)

		st := f.m.State()
		require.Equal(t, raw, st.Token)
		require.True(t, st.ShowWelcomeNotification)
		require.False(t, st.IsNewUser)
		require.Equal(t, raw, f.storedToken(t))
		require.Equal(t, RouteDashboard, f.nav.last())
	})

	t.Run("endpoint failure leaves state unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		f.auth.err = errors.New("401 unauthorized")

		err := f.m.Login(context.Background(), Credentials{Username: "bob", Password: "wrong"})
		require.ErrorIs(t, err, ErrInvalidCredentials)

		require.Empty(t, f.m.Token())
		require.Empty(t, f.storedToken(t))
		require.Empty(t, f.nav.last())
	})

	t.Run("pre-expired token rejected", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		f.auth.token = mintToken(t, "bob", time.Now().Add(-time.Second))

		err := f.m.Login(context.Background(), Credentials{Username: "bob", Password: "x"})
		require.ErrorIs(t, err, ErrAlreadyExpired)

		require.Empty(t, f.m.Token())
		require.Empty(t, f.storedToken(t), "pre-expired token must not be persisted")
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		f.auth.token = "mangled"

		err := f.m.Login(context.Background(), Credentials{Username: "bob", Password: "x"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Empty(t, f.m.Token())
	})

	t.Run("response after logout is discarded", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		f.auth.token = mintToken(t, "bob", time.Now().Add(time.Hour))
		f.auth.gate = make(chan struct{})
		f.auth.entered = make(chan struct{})

		done := make(chan error, 1)
		go func() {
			done <- f.m.Login(context.Background(), Credentials{Username: "bob", Password: "x"})
		}()

		<-f.auth.entered
		f.m.Logout(LogoutManual)
		close(f.auth.gate)

		require.NoError(t, <-done)
		require.Empty(t, f.m.Token(), "late login success must not resurrect the session")
		require.Empty(t, f.storedToken(t))
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("success sets new-user flag", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		raw := mintToken(t, "alice", time.Now().Add(time.Hour))
		f.auth.token = raw

		err := f.m.Register(context.Background(), Registration{
			Username: "alice", Email: "alice@example.com", Password: "x",
		})
		require.NoError(t, err)

		st := f.m.State()
		require.Equal(t, raw, st.Token)
		require.True(t, st.IsNewUser)
		require.False(t, st.ShowWelcomeNotification)
		require.Equal(t, RouteDashboard, f.nav.last())
	})

	t.Run("endpoint failure", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		f.auth.err = errors.New("username taken")

		err := f.m.Register(context.Background(), Registration{Username: "alice"})
		require.ErrorIs(t, err, ErrRegistrationFailed)
		require.Empty(t, f.m.Token())
	})

	t.Run("pre-expired token rejected", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		f.auth.token = mintToken(t, "alice", time.Now().Add(-time.Second))

		err := f.m.Register(context.Background(), Registration{Username: "alice"})
		require.ErrorIs(t, err, ErrAlreadyExpired)
		require.Empty(t, f.storedToken(t))
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("idempotent", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()
		f.auth.token = mintToken(t, "bob", time.Now().Add(time.Hour))
		require.NoError(t, f.m.Login(context.Background(), Credentials{Username: "bob"}))

		f.m.Logout(LogoutManual)
		f.m.Logout(LogoutManual)
		f.m.Logout(LogoutManual)

		st := f.m.State()
		require.Empty(t, st.Token)
		require.Empty(t, st.SessionExpiredReason)
		require.Empty(t, f.storedToken(t))
		require.Equal(t, RouteLogin, f.nav.last())
	})

	t.Run("manual logout never sets expiry reason", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()

		f.m.Logout(LogoutManual)
		require.Empty(t, f.m.State().SessionExpiredReason)
	})

	t.Run("manual logout leaves an existing reason alone", func(t *testing.T) {
		f := newFixture(t)
		f.m.Initialize()

		f.m.Logout(LogoutExpired)
		require.Equal(t, ReasonExpired, f.m.State().SessionExpiredReason)

		// Only ClearSessionExpiredReason unsets it.
		f.m.Logout(LogoutManual)
		require.Equal(t, ReasonExpired, f.m.State().SessionExpiredReason)

		f.m.ClearSessionExpiredReason()
		require.Empty(t, f.m.State().SessionExpiredReason)
	})
}

func TestClearFlags(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.m.Initialize()
	f.auth.token = mintToken(t, "bob", time.Now().Add(time.Hour))
	require.NoError(t, f.m.Login(context.Background(), Credentials{Username: "bob"}))
	require.True(t, f.m.State().ShowWelcomeNotification)

	f.m.ClearWelcomeNotification()
	require.False(t, f.m.State().ShowWelcomeNotification)

	f.m.ClearNewUser()
	require.False(t, f.m.State().IsNewUser)
}

func TestExpiryMidSession(t *testing.T) {
	t.Parallel()

	t.Run("periodic check", func(t *testing.T) {
		f := newFixture(t, WithCheckInterval(10*time.Millisecond))
		f.m.Initialize()
		// The exp claim is serialized at whole-second precision, so the
		// lifetime must exceed one second or truncation can predate now.
		f.auth.token = mintToken(t, "bob", time.Now().Add(1200*time.Millisecond))
		require.NoError(t, f.m.Login(context.Background(), Credentials{Username: "bob"}))

		require.Eventually(t, func() bool {
			st := f.m.State()
			return st.Token == "" && st.SessionExpiredReason == ReasonExpired
		}, 2*time.Second, 10*time.Millisecond)

		require.Empty(t, f.storedToken(t))
		require.Equal(t, RouteLogin, f.nav.last())
	})

	t.Run("focus check", func(t *testing.T) {
		var mu sync.Mutex
		now := time.Now()
		clock := func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		}

		// Hour-long interval so only the focus event can trigger the check.
		f := newFixture(t, WithClock(clock), WithCheckInterval(time.Hour))
		f.m.Initialize()
		f.auth.token = mintToken(t, "bob", now.Add(5*time.Second))
		require.NoError(t, f.m.Login(context.Background(), Credentials{Username: "bob"}))

		mu.Lock()
		now = now.Add(35 * time.Second)
		mu.Unlock()

		f.m.Focus()

		require.Eventually(t, func() bool {
			st := f.m.State()
			return st.Token == "" && st.SessionExpiredReason == ReasonExpired
		}, 2*time.Second, 5*time.Millisecond)
	})

	t.Run("token removed by another process", func(t *testing.T) {
		f := newFixture(t, WithCheckInterval(10*time.Millisecond))
		f.m.Initialize()
		f.auth.token = mintToken(t, "bob", time.Now().Add(time.Hour))
		require.NoError(t, f.m.Login(context.Background(), Credentials{Username: "bob"}))

		require.NoError(t, f.store.Delete())

		require.Eventually(t, func() bool {
			return f.m.State().Token == ""
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestUnauthorizedSignalForcesLogout(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.m.Initialize()
	f.auth.token = mintToken(t, "bob", time.Now().Add(time.Hour))
	require.NoError(t, f.m.Login(context.Background(), Credentials{Username: "bob"}))

	f.sig.Notify(UnauthorizedEvent{Status: 401, Message: "session expired"})

	st := f.m.State()
	require.Empty(t, st.Token)
	require.Equal(t, ReasonExpired, st.SessionExpiredReason)
	require.Empty(t, f.storedToken(t))
	require.Equal(t, RouteLogin, f.nav.last())
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	var mu sync.Mutex
	var states []State
	cancel := f.m.Subscribe(func(st State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, st)
	})

	f.m.Initialize()
	f.auth.token = mintToken(t, "bob", time.Now().Add(time.Hour))
	require.NoError(t, f.m.Login(context.Background(), Credentials{Username: "bob"}))

	mu.Lock()
	require.Len(t, states, 2)
	require.Empty(t, states[0].Token)
	require.NotEmpty(t, states[1].Token)
	mu.Unlock()

	cancel()
	f.m.Logout(LogoutManual)

	mu.Lock()
	require.Len(t, states, 2, "no delivery after cancel")
	mu.Unlock()
}

func TestClose(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.m.Initialize()
	f.auth.token = mintToken(t, "bob", time.Now().Add(time.Hour))
	require.NoError(t, f.m.Login(context.Background(), Credentials{Username: "bob"}))

	f.m.Close()
	f.m.Close() // idempotent

	// Disposal is not logout: the persisted token survives.
	require.NotEmpty(t, f.storedToken(t))

	// The unauthorized subscription is torn down with the manager.
	f.sig.Notify(UnauthorizedEvent{Status: 401})
	require.NotEmpty(t, f.storedToken(t))

	// Focus after close is a no-op.
	f.m.Focus()
}
