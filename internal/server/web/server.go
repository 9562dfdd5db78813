// Package web serves the console pages over HTTP with gin.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/logging"
	"github.com/dmitrijs2005/careadmin/internal/server/config"
	"github.com/dmitrijs2005/careadmin/internal/server/i18n"
	"github.com/dmitrijs2005/careadmin/internal/server/state"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address          string
	logger           logging.Logger
	ctrl             *state.Controller
	catalog          *i18n.Catalog
	jwtSecret        []byte
	validityDuration time.Duration
	maxUploadSize    int64
	engine           *gin.Engine
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, ctrl *state.Controller, catalog *i18n.Catalog) (*HTTPServer, error) {
	s := &HTTPServer{
		address:          cfg.EndpointAddrHTTP,
		logger:           l.With("module", "http_server"),
		ctrl:             ctrl,
		catalog:          catalog,
		jwtSecret:        []byte(cfg.SecretKey),
		validityDuration: cfg.SessionValidityDuration,
		maxUploadSize:    cfg.MaxUploadSize,
	}

	tmpl, err := loadTemplates(catalog)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.MaxMultipartMemory = 8 << 20
	engine.SetHTMLTemplate(tmpl)
	engine.Use(s.requestLogger(), gin.Recovery())

	s.routes(engine)
	s.engine = engine

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) routes(r *gin.Engine) {
	r.GET("/health", s.health)

	ui := r.Group("/")
	ui.Use(s.sessionMiddleware())
	{
		ui.GET("/", s.page)
		ui.GET("/dashboard", s.page)
		ui.GET("/profile", s.page)
		ui.GET("/files", s.page)

		ui.POST("/login", s.login)
		ui.POST("/logout", s.logout)
		ui.POST("/register", s.register)
		ui.POST("/auth/register", s.showRegister)
		ui.POST("/auth/login", s.showLogin)
		ui.POST("/language", s.language)

		authed := ui.Group("/")
		authed.Use(requireLogin())
		{
			authed.POST("/profile/edit", s.profileEdit)
			authed.POST("/profile/save", s.profileSave)
			authed.POST("/profile/cancel", s.profileCancel)
			authed.POST("/files/category", s.filesCategory)
			authed.POST("/files/upload", s.filesUpload)
			authed.POST("/files/:id/remove", s.filesRemove)
		}
	}

	r.NoRoute(s.sessionMiddleware(), s.page)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
