// Package httpapi is the HTTP surface of the service: the gin router, the
// request handlers and the bearer-token middleware.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avoronov/authgate/internal/logging"
)

type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	logger     logging.Logger
}

// NewServer builds the router. The token gate only covers /user/:id; the
// auth routes and the greeting stay public.
func NewServer(address string, handler *Handler, secretKey []byte, logger logging.Logger) (*Server, error) {
	router := gin.New()
	router.Use(gin.Recovery())

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	router.GET("/", handler.Home)
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.GET("/user/:id", TokenGate(secretKey), handler.GetUser)

	s := &Server{
		router: router,
		logger: logger.With("module", "http_server"),
	}

	s.httpServer = &http.Server{
		Addr:    address,
		Handler: router,
	}

	return s, nil
}

// Run starts serving and blocks until the listener stops.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info(ctx, "starting HTTP server", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
