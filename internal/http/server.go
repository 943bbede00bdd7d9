package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the gin engine in an http.Server so Close can drain
// in-flight requests instead of dropping them.
type Server struct {
	log    *logger.Logger
	engine *gin.Engine
	srv    *http.Server
}

func NewServer(log *logger.Logger, engine *gin.Engine) *Server {
	return &Server{
		log:    log.With("component", "Server"),
		engine: engine,
	}
}

// Run blocks until the listener fails or Shutdown is called. A clean
// shutdown returns nil.
func (s *Server) Run(address string) error {
	s.srv = &http.Server{
		Addr:    address,
		Handler: s.engine,
	}
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("Draining in-flight requests...")
	return s.srv.Shutdown(ctx)
}
