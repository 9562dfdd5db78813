// Package server wires configuration, logging, workspace state and the HTTP
// transport together and runs them until the process is told to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/dmitrijs2005/careadmin/internal/logging"
	"github.com/dmitrijs2005/careadmin/internal/server/config"
	"github.com/dmitrijs2005/careadmin/internal/server/files"
	"github.com/dmitrijs2005/careadmin/internal/server/i18n"
	"github.com/dmitrijs2005/careadmin/internal/server/session"
	"github.com/dmitrijs2005/careadmin/internal/server/state"
	"github.com/dmitrijs2005/careadmin/internal/server/web"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const evictionInterval = time.Minute

type App struct {
	config *config.Config
	logger logging.Logger
	ctrl   *state.Controller
	http   *web.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	if c.SecretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key generation error: %w", err)
		}
		c.SecretKey = key
		logger.Warn(context.Background(), "no secret key configured, sessions will not survive a restart")
	}

	if c.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("i18n init error: %w", err)
	}

	validator, err := session.NewValidator(catalog)
	if err != nil {
		return nil, fmt.Errorf("validator init error: %w", err)
	}

	ctrl := state.NewController(catalog, validator, files.SimulatedTransfer{Delay: c.UploadDelay},
		c.DefaultLanguage, logger.With("module", "state"))

	hs, err := web.NewHTTPServer(c, logger, ctrl, catalog)
	if err != nil {
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{config: c, logger: logger, ctrl: ctrl, http: hs}, nil
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

// Run serves HTTP and evicts idle workspaces until a signal arrives, ctx is
// cancelled or one of them fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.http.Run(ctx)
	})

	g.Go(func() error {
		return app.ctrl.RunEviction(ctx, evictionInterval, app.config.SessionValidityDuration)
	})

	if err := g.Wait(); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
