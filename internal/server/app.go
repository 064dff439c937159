// Package server wires the storeadmin HTTP API: it opens the database,
// applies migrations, builds the services and runs the HTTP server until
// the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/storeadmin/internal/logging"
	"github.com/dmitrijs2005/storeadmin/internal/server/activity"
	"github.com/dmitrijs2005/storeadmin/internal/server/config"
	"github.com/dmitrijs2005/storeadmin/internal/server/httpapi"
	"github.com/dmitrijs2005/storeadmin/internal/server/i18n"
	"github.com/dmitrijs2005/storeadmin/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storeadmin/internal/server/services"
	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap/zapcore"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	httpServer  *httpapi.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	logger, err := newLogger(c)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	catalog := i18n.Lookup(c.Locale)

	as := services.NewAuthService(db, rm, c)
	ds := services.NewDashboardService(db, rm, activity.NewFormatter(catalog), c.Location())
	us := services.NewUserService(db, rm, c)

	h := httpapi.NewHandler(as, ds, us, catalog, logger)
	srv := httpapi.NewHTTPServer(c.EndpointAddrHTTP, httpapi.NewRouter(h, c.BasePath), logger)

	return &App{config: c, logger: logger, db: db, repomanager: rm, httpServer: srv}, nil
}

// newLogger builds the JSON logger named by LogBackend. Release mode logs
// at info, otherwise at debug.
func newLogger(c *config.Config) (logging.Logger, error) {
	switch c.LogBackend {
	case "zap":
		level := zapcore.DebugLevel
		if c.ReleaseMode {
			level = zapcore.InfoLevel
		}
		z, err := logging.NewZapJSONLogger(level)
		if err != nil {
			return nil, err
		}
		return z, nil
	case "", "slog":
		level := slog.LevelDebug
		if c.ReleaseMode {
			level = slog.LevelInfo
		}
		return logging.NewJSONLogger(os.Stdout, level), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
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

func (app *App) migrate(ctx context.Context) error {
	if !app.config.RunMigrations {
		return nil
	}
	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	app.logger.Info(ctx, "Migrations applied")
	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Run blocks until SIGINT/SIGTERM/SIGQUIT or ctx cancellation, then waits
// for the HTTP server to drain and closes the database pool. A server that
// fails to start or serve makes Run return its error.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "locale", app.config.Locale, "base_path", app.config.BasePath)

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err.Error())
		}
	}()

	if err := app.migrate(ctx); err != nil {
		return err
	}

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		srvErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		srvErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	if z, ok := app.logger.(*logging.ZapLogger); ok {
		_ = z.Sync()
	}
	return srvErr
}
