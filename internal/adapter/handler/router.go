package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/interview-practice/internal/adapter/dto/common"
	httpmw "github.com/johnquangdev/interview-practice/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/interview-practice/pkg/config"
	pkgmw "github.com/johnquangdev/interview-practice/pkg/middleware"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	sessionHandler  *Session
	catalogHandler  *Catalog
	analysisHandler *Analysis
	reportHandler   *Report
	gatherer        prometheus.Gatherer
}

// NewRouter creates a new router with all handlers. A nil gatherer serves the
// default prometheus registry.
func NewRouter(cfg *config.Config, sessionHandler *Session, catalogHandler *Catalog, analysisHandler *Analysis, reportHandler *Report, gatherer prometheus.Gatherer) *Router {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Router{
		cfg:             cfg,
		sessionHandler:  sessionHandler,
		catalogHandler:  catalogHandler,
		analysisHandler: analysisHandler,
		reportHandler:   reportHandler,
		gatherer:        gatherer,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1", httpmw.EchoUser())

	rt.setupCatalogRoutes(v1)
	rt.setupSessionRoutes(v1)
	rt.setupUserRoutes(v1)
	rt.setupAIRoutes(v1)
}

// setupCatalogRoutes configures question bank routes
func (rt *Router) setupCatalogRoutes(g *echo.Group) {
	if rt.catalogHandler == nil {
		g.GET("/catalog", rt.notImplemented)
		g.GET("/questions", rt.notImplemented)
		return
	}
	g.GET("/catalog", rt.catalogHandler.GetCatalog)
	g.GET("/questions", rt.catalogHandler.ListQuestions)
}

// setupSessionRoutes configures practice session routes
func (rt *Router) setupSessionRoutes(g *echo.Group) {
	sessionGroup := g.Group("/sessions")

	h := rt.sessionHandler
	if h == nil {
		sessionGroup.Any("", rt.notImplemented)
		sessionGroup.Any("/*", rt.notImplemented)
		return
	}

	owner := pkgmw.RequireSessionOwner(h.sessionService)

	sessionGroup.POST("", h.StartSession)
	sessionGroup.GET("/:id", h.GetSession, owner)
	sessionGroup.GET("/:id/question", h.GetCurrentQuestion, owner)
	sessionGroup.POST("/:id/responses", h.SubmitResponse, owner)
	sessionGroup.POST("/:id/voice", h.SubmitVoiceResponse, owner)
	sessionGroup.POST("/:id/skip", h.SkipQuestion, owner)
	sessionGroup.POST("/:id/pause", h.PauseSession, owner)
	sessionGroup.POST("/:id/resume", h.ResumeSession, owner)
	sessionGroup.GET("/:id/summary", h.GetSummary, owner)
}

// setupUserRoutes configures per user routes
func (rt *Router) setupUserRoutes(g *echo.Group) {
	if rt.sessionHandler == nil {
		g.GET("/users/:id/dashboard", rt.notImplemented)
	} else {
		g.GET("/users/:id/dashboard", rt.sessionHandler.GetDashboard)
	}

	if rt.reportHandler == nil {
		g.GET("/users/:id/reports", rt.notImplemented)
		return
	}
	g.GET("/users/:id/reports", rt.reportHandler.ListReports)
}

// setupAIRoutes configures the analysis endpoint
func (rt *Router) setupAIRoutes(g *echo.Group) {
	if rt.analysisHandler == nil {
		g.POST("/ai/analyze", rt.notImplemented)
		return
	}
	g.POST("/ai/analyze", rt.analysisHandler.Analyze)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "production"
	if rt.cfg != nil && rt.cfg.Server.Environment != "" {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
	})
}
