// Package server wires configuration, storage, services and the gRPC
// transport into a runnable application and handles graceful shutdown.
package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/passkeeper/internal/cryptox"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/config"
	"github.com/dmitrijs2005/passkeeper/internal/server/notify"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passkeeper/internal/server/services"
	"github.com/dmitrijs2005/passkeeper/internal/server/sessions"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/passkeeper/internal/server/grpc"
)

var (
	openDB               = sql.Open
	newRepositoryManager = repomanager.NewPostgresRepositoryManager

	logOutput io.Writer = os.Stdout
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	redis  *redis.Client
	server *gs.GRPCServer

	accounts *services.AccountService
}

// NewApp validates c, connects to the database, applies migrations and
// builds every service. It fails on any misconfiguration rather than
// starting without encryption or token signing.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.NewJSONLogger(logOutput, slog.LevelInfo))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cipher, err := cryptox.NewSecretCipher(c.EncryptionKey)
	if err != nil {
		return nil, err
	}
	hasher, err := cryptox.NewSecretHasher(c.HashCost)
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenIssuer(c.TokenSecretKey, c.SessionTokenValidityDuration, c.RecoveryTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	db, err := openDB(repomanager.DriverName, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db}

	var revocations sessions.RevocationStore
	if c.RedisAddr != "" {
		app.redis = redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		revocations = sessions.NewRedisStore(app.redis)
	} else {
		logger.Warn(ctx, "redis address not set, session revocations are kept in memory")
		revocations = sessions.NewMemoryStore()
	}

	generator := passgen.NewGenerator(rand.Reader)

	accounts, err := services.NewAccountService(db, rm, hasher, tokens, revocations, notify.NewLogNotifier(logger), logger)
	if err != nil {
		app.close()
		return nil, err
	}
	app.accounts = accounts
	credentials := services.NewCredentialService(db, rm, cipher, generator, logger)
	passwords := services.NewPasswordService(generator)
	backups := services.NewBackupService(db, rm, c, logger)

	app.server = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, accounts, credentials, passwords, backups)
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) close() {
	if app.redis != nil {
		_ = app.redis.Close()
	}
	if app.db != nil {
		_ = app.db.Close()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	// Let queued account notices finish before storage goes away.
	app.accounts.Wait()
	app.close()
	app.logger.Info(context.Background(), "App stopped")
}
