package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-assistant/config"
	"task-assistant/internal/assistant"
	"task-assistant/pkg/log"
	pkgSQL "task-assistant/pkg/sqldb"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cors        config.CORSConfig
	rateLimit   config.RateLimitConfig

	// Storage
	db *pkgSQL.DB

	// Task domain
	assistant             assistant.UseCase
	enableAgenticBehavior bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig

	DB *pkgSQL.DB

	Assistant             assistant.UseCase
	EnableAgenticBehavior bool
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                     logger,
		gin:                   gin.New(),
		port:                  cfg.Port,
		mode:                  cfg.Mode,
		environment:           cfg.Environment,
		cors:                  cfg.CORS,
		rateLimit:             cfg.RateLimit,
		db:                    cfg.DB,
		assistant:             cfg.Assistant,
		enableAgenticBehavior: cfg.EnableAgenticBehavior,
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
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.assistant == nil {
		return errors.New("assistant is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
