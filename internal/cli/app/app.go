package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/muusmart/muusmart/pkg/cryptox"
	"github.com/muusmart/muusmart/pkg/muusdk"
	"github.com/muusmart/muusmart/pkg/session"
	"github.com/muusmart/muusmart/pkg/slogx"
	"github.com/muusmart/muusmart/pkg/tokenstore"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the SDK client, credential store and session manager
// behind the muuctl subcommands.
type Application struct {
	cfg    Config
	logger *slog.Logger

	store   tokenstore.Store
	client  *muusdk.Client
	session *session.Manager
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "muuctl",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}
	app.initSession()

	return app, nil
}

// initStore opens the credential cache, creating its directory on first run.
// With a passphrase configured the credential lives in a sealed file next to
// the database path instead of the SQLite cache.
func (app *Application) initStore() error {
	dir := filepath.Dir(app.cfg.CredentialsDB)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create credential directory: %w", err)
		}
	}

	if app.cfg.Passphrase != "" {
		sealer, err := cryptox.NewSealer(app.cfg.Passphrase)
		if err != nil {
			return err
		}
		store, err := tokenstore.NewFile(filepath.Join(dir, app.cfg.Profile+".cred"), sealer)
		if err != nil {
			return err
		}
		app.store = store
		return nil
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.CredentialsDB)
	store, err := tokenstore.NewSQLite(dsn, app.cfg.Profile)
	if err != nil {
		return err
	}
	app.store = store
	return nil
}

// deferredTokens lets the SDK client be built before the session manager
// that will supply its tokens. The two depend on each other: the client
// asks the manager for the current token, and the manager logs in through
// the client.
type deferredTokens struct {
	manager *session.Manager
}

func (d *deferredTokens) Token() string {
	if d.manager == nil {
		return ""
	}
	return d.manager.Token()
}

// initSession wires the gateway client and session manager together. The
// manager hears about rejected tokens through the unauthorized signal.
func (app *Application) initSession() {
	signal := session.NewUnauthorizedSignal()
	tokens := &deferredTokens{}

	app.client = muusdk.New(app.cfg.APIURL,
		muusdk.WithTokenProvider(tokens),
		muusdk.WithUnauthorizedSignal(signal),
	)

	manager := session.New(muusdk.SessionAuth{Client: app.client}, app.store,
		session.WithLogger(app.logger),
		session.WithCheckInterval(app.cfg.CheckInterval),
		session.WithUnauthorizedSignal(signal),
		session.WithNavigator(session.NavigatorFunc(func(route string) {
			app.logger.Debug("route change", "route", route)
		})),
	)
	tokens.manager = manager

	app.session = manager
	app.session.Initialize()
}

// Run executes one subcommand and returns its error, if any.
func (app *Application) Run(ctx context.Context, args []string) error {
	defer app.Close()

	ctx = slogx.WithContext(ctx, app.logger)

	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("no command given")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return app.cmdLogin(ctx, rest)
	case "register":
		return app.cmdRegister(ctx, rest)
	case "logout":
		return app.cmdLogout(rest)
	case "whoami":
		return app.cmdWhoami(rest)
	case "animals":
		return app.cmdAnimals(ctx, rest)
	case "stables":
		return app.cmdStables(ctx, rest)
	case "milk":
		return app.cmdMilk(ctx, rest)
	case "weights":
		return app.cmdWeights(ctx, rest)
	case "ask":
		return app.cmdAsk(ctx, rest)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// Close releases the session manager and the credential store. The stored
// token survives; closing is not a logout.
func (app *Application) Close() {
	if app.session != nil {
		app.session.Close()
	}
	if closer, ok := app.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			app.logger.Error("error closing credential store", "error", err)
		}
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: muuctl <command> [flags]

commands:
  login      -u <username> -p <password>    authenticate with the gateway
  register   -u <username> -e <email> -p <password>
  logout                                    discard the stored credential
  whoami                                    show the active session
  animals    list | get <id>                list or show animals
  stables    list                           list stables
  milk       summary <animal-id>            milk production aggregates
  weights    summary <animal-id>            weight trend aggregates
  ask        <question>                     ask the AI assistant`)
}
