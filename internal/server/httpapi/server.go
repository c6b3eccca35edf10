// Package httpapi exposes the registration, login and profile endpoints
// over HTTP+JSON and guards the protected routes with the bearer-token
// middleware.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/avasquez/softjobs/internal/logging"
	"github.com/avasquez/softjobs/internal/server/config"
	"github.com/avasquez/softjobs/internal/server/users"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address        string
	mode           string
	corsOrigins    string
	users          *users.Service
	logger         logging.Logger
	jwtSecret      []byte
	requestTimeout time.Duration
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service) *Server {
	return &Server{
		address:        cfg.EndpointAddr,
		mode:           cfg.GinMode,
		corsOrigins:    cfg.CORSAllowedOrigins,
		users:          us,
		logger:         l.With("module", "http_server"),
		jwtSecret:      []byte(cfg.SecretKey),
		requestTimeout: cfg.RequestTimeout,
	}
}

// Router builds the gin engine with middleware and routes. Exposed
// separately from Run so tests can drive it with httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(s.mode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), cors.New(s.corsConfig()))

	r.POST("/usuarios", s.handleRegister)
	r.POST("/login", s.handleLogin)
	r.GET("/usuarios", s.requireAuth(), s.handleGetCurrentUser)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if s.corsOrigins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = strings.Split(s.corsOrigins, ",")
	return cfg
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
