package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jjc6676/holiday-optimizer/internal/api/handlers"
	"github.com/jjc6676/holiday-optimizer/internal/logging"
)

// Server wraps the Gin router serving the optimisation engine's HTTP
// surface. It holds no state of its own beyond the router: every
// request re-derives its result from its body.
type Server struct {
	router *gin.Engine
}

// NewServer builds a Server with CORS and request-logging middleware wired
// in, and the route table registered.
func NewServer(log zerolog.Logger) *Server {
	s := &Server{
		router: gin.New(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(logging.Middleware(log))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	s.router.Use(cors.New(config))

	s.setupRoutes(log)
	return s
}

func (s *Server) setupRoutes(log zerolog.Logger) {
	h := handlers.NewHandler(log)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/health", h.Health)
		v1.GET("/strategies", h.Strategies)
		v1.POST("/optimize", h.Optimize)
	}
}

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
