// Package server exposes the advisor over HTTP: advice, plans, and full
// match simulations, plus health and prometheus metrics endpoints and a
// websocket stream of live simulated matches.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"rift/config"
)

// Server wires the search, simulation, and explanation layers behind a gin
// router.
type Server struct {
	cfg     config.Config
	logger  zerolog.Logger
	metrics *searchMetrics
	router  *gin.Engine
}

func New(cfg config.Config, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: newSearchMetrics(),
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	router.POST("/advise", s.handleAdvise)
	router.POST("/simulate", s.handleSimulate)
	router.POST("/plan", s.handlePlan)
	router.GET("/live", s.handleLive)

	s.router = router
	return s
}

// Router exposes the handler for tests and custom servers.
func (s *Server) Router() http.Handler { return s.router }

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	s.logger.Info().Str("addr", s.cfg.Server.Addr).Msg("listening")
	return srv.ListenAndServe()
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
