// Package server serves generated levels over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rigterw/PCG/locales"
	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/game/generator"
	"github.com/rigterw/PCG/pkg/game/levelcache"
	"github.com/rigterw/PCG/pkg/game/spawn"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server. Cache may be nil to disable caching.
type Options struct {
	Defaults     generator.Config
	Palette      spawn.Palette
	Generator    generator.LevelGenerator
	Cache        *levelcache.Cache
	AllowOrigins []string
	Logger       logrus.FieldLogger
}

// Server is the HTTP level service
type Server struct {
	opts   Options
	router *gin.Engine
}

// New builds the router. A nil Generator uses generator.DefaultGenerator
// and a nil Logger the standard logrus logger.
func New(opts Options) *Server {
	if opts.Generator == nil {
		opts.Generator = generator.DefaultGenerator
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if len(opts.AllowOrigins) == 0 {
		opts.AllowOrigins = []string{"*"}
	}

	s := &Server{opts: opts}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(s.handlePanic), requestLogger(s.opts.Logger))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	corsCfg.ExposeHeaders = []string{headerSeed, headerSeedCode}
	if len(s.opts.AllowOrigins) == 1 && s.opts.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.opts.AllowOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.GET("/levels", s.getLevel)
	v1.GET("/levels/:code", s.getLevelByCode)

	r.NoRoute(func(c *gin.Context) {
		writeError(c, errors.NotFoundf("no route for %s", c.Request.URL.Path))
	})
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.opts.Logger.Info(locales.Getf("SERVER_LISTENING", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-ctx.Done():
		s.opts.Logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "graceful shutdown failed")
		}
		return nil
	}
}

// handlePanic answers a panicking request with the usual JSON error body
func (s *Server) handlePanic(c *gin.Context, recovered any) {
	s.opts.Logger.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path,
		"panic": recovered,
	}).Error("recovered from panic")
	writeError(c, errors.Internalf("internal error while serving %s", c.Request.URL.Path))
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Debug("request")
	}
}
