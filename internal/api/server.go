package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gobayes/app"
)

// Server exposes Bayes factor evaluation over HTTP
type Server struct {
	router      *gin.Engine
	service     *app.AnalysisService
	historySize int
}

// NewServer creates the HTTP server around an analysis service
func NewServer(service *app.AnalysisService, historySize int) *Server {
	s := &Server{
		router:      gin.New(),
		service:     service,
		historySize: historySize,
	}
	s.router.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	v1.POST("/bayes-factor", s.handleEvaluate)
	v1.POST("/bayes-factor/batch", s.handleBatch)
	v1.GET("/analyses", s.handleHistory)
	v1.GET("/analyses/report", s.handleReport)
	v1.GET("/analyses/:id", s.handleGetAnalysis)
}

// Router returns the underlying gin engine (used by tests)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	log.Printf("[API] Listening on %s (storage: %v)", addr, s.service.HasStore())
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": s.service.HasStore(),
	})
}
