package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lingo-polska/core/internal/middleware"
	"github.com/lingo-polska/core/internal/modules/auth"
	"github.com/lingo-polska/core/internal/modules/exercise"
	"github.com/lingo-polska/core/internal/modules/grammar"
	"github.com/lingo-polska/core/internal/modules/morphology"
	"github.com/lingo-polska/core/internal/modules/validator"
	"github.com/lingo-polska/core/internal/modules/vocabulary"
	"github.com/lingo-polska/core/internal/pkg/metrics"
	pkgredis "github.com/lingo-polska/core/internal/pkg/redis"
	"github.com/lingo-polska/core/internal/pkg/response"
)

const apiPrefix = "/api/v2"

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "lingo-polska-core",
		"version":  "1.0.0",
		"homepage": "https://github.com/lingo-polska/core",
	}

	r.GET("/metrics", metrics.Handler())

	// Rate limiting and idempotence run on every API route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       15 * time.Second,
		Disable:   a.cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(),
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(processStart).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	api.GET("/clean_cache", authMW, func(c *gin.Context) {
		a.morph.PurgeCaches()
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
	})

	// Scheduled jobs admin surface
	jobs := api.Group("/jobs", authMW)
	jobs.GET("", func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})
	jobs.POST("/:name/run", func(c *gin.Context) {
		if err := a.sched.Run(c.Request.Context(), c.Param("name")); err != nil {
			response.NotFoundMsg(c, err.Error())
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
	})

	// Feature modules
	auth.NewHandler(auth.NewService(db, a.logger)).RegisterRoutes(api, authMW)
	morphology.NewHandler(a.morph).RegisterRoutes(api, authMW)
	vocabulary.NewHandler(vocabulary.NewService(db)).RegisterRoutes(api, authMW)
	grammar.NewHandler(grammar.NewService(db)).RegisterRoutes(api, authMW)
	exercise.NewHandler(exercise.NewService(db)).RegisterRoutes(api, authMW)
	validator.NewHandler(validator.NewService(a.cfg.AI, a.logger)).RegisterRoutes(api, authMW)
}

// httpCacheSkipPaths lists API paths the shared HTTP cache must never serve:
// auth flows, admin mutations, and anything answered from the in-process
// lookup caches already.
func httpCacheSkipPaths() []string {
	return []string{
		apiPrefix + "/auth/*",
		apiPrefix + "/validate*",
		apiPrefix + "/exercises/practice*",
		apiPrefix + "/exercises/submit*",
		apiPrefix + "/jobs*",
		apiPrefix + "/clean_cache",
	}
}
