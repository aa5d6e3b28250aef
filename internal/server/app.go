// Package server wires the credvault server together: it opens the store,
// applies migrations, builds the session gate and credential service, and
// runs the gRPC endpoint until the process is asked to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/credvault/internal/common"
	"github.com/dmitrijs2005/credvault/internal/logging"
	"github.com/dmitrijs2005/credvault/internal/server/auth"
	"github.com/dmitrijs2005/credvault/internal/server/config"
	"github.com/dmitrijs2005/credvault/internal/server/gate"
	"github.com/dmitrijs2005/credvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/credvault/internal/server/services"
	"github.com/dmitrijs2005/credvault/internal/server/storage"

	gs "github.com/dmitrijs2005/credvault/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	service *services.CredentialService
	server  *gs.GRPCServer
}

// NewApp builds every server component from c. Logs go to w as JSON.
// The returned App owns the database handle; call Close when done.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {

	logger := logging.NewJSONLogger(w, c.LogLevel)

	secret := c.SecretKey
	if secret == "" {
		var err error
		if secret, err = common.MakeRandHexString(32); err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
		logger.Warn(ctx, "no secret key configured, sessions will not survive a restart")
	}

	scheme, err := auth.NewPasswordScheme(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	m, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var store gate.Store
	switch c.SessionBackend {
	case config.SessionBackendDB:
		store = m.Sessions(db)
	default:
		store = gate.NewMemoryStore()
	}

	g := gate.New(m.Users(db), store, scheme, []byte(secret), c.SessionTTL, logger)
	svc := services.NewCredentialService(db, m, g, scheme, c, logger)
	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, svc)

	logger.Info(ctx, "App initialized",
		"driver", c.DatabaseDriver,
		"session_backend", c.SessionBackend,
		"password_scheme", c.PasswordScheme,
		"max_open_conns", c.MaxOpenConns())

	return &App{config: c, logger: logger, db: db, service: svc, server: srv}, nil
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := app.initSignalHandler(ctx)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

// Close releases the database.
func (app *App) Close() error {
	return app.db.Close()
}

// Service exposes the credential service, mainly for embedding and tests.
func (app *App) Service() *services.CredentialService {
	return app.service
}
