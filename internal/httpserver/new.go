package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	automationHTTP "nextplay-automation/internal/automation/delivery/http"
	"nextplay-automation/internal/middleware"
	"nextplay-automation/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw              middleware.Middleware
	rateLimitPerMin int

	automationHandler automationHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware      middleware.Middleware
	RateLimitPerMin int

	AutomationHandler automationHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 cfg.Logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                cfg.Middleware,
		rateLimitPerMin:   cfg.RateLimitPerMin,
		automationHandler: cfg.AutomationHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.automationHandler == nil {
		return errors.New("automation handler is required")
	}
	return nil
}
