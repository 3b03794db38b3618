package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"learning-activity-agent/internal/middleware"
	"learning-activity-agent/pkg/log"
)

// DomainHandler registers one domain's routes on the versioned API group.
type DomainHandler func(api *gin.RouterGroup, mw middleware.Middleware)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	middleware middleware.Middleware
	domains    []DomainHandler
	readiness  []Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Domains    []DomainHandler

	// Readiness lists the stores /ready must be able to reach.
	Readiness []Pinger
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		domains:     cfg.Domains,
		readiness:   cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
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
	return nil
}
