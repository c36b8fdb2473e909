package handler

import (
	"github.com/divscout/divscout-api/shared/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Advisory client cache lifetimes in seconds.
const (
	statsMaxAge            = 300
	companiesMaxAge        = 600
	companyMaxAge          = 1800
	companyDividendsMaxAge = 1800
	recentMaxAge           = 300
	calendarMaxAge         = 3600
)

type Handlers struct {
	Health    *HealthHandler
	Stats     *StatsHandler
	Companies *CompanyHandler
	Dividends *DividendHandler
}

// NewRouter builds the engine. Every route is served both at the root and
// under /api. Paths with an unregistered trailing slash are 404, not redirects.
func NewRouter(h Handlers, allowedOrigins []string, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(
		middleware.LoggingMiddleware(logger),
		middleware.Recovery(logger),
		middleware.CORS(allowedOrigins),
	)
	r.NoRoute(middleware.NotFound())

	r.GET("/", h.Health.GetHealth)
	registerRoutes(r.Group(""), h)

	api := r.Group("/api")
	api.GET("", h.Health.GetHealth)
	api.GET("/", h.Health.GetHealth)
	registerRoutes(api, h)

	return r
}

func registerRoutes(g *gin.RouterGroup, h Handlers) {
	g.GET("/stats", middleware.CacheFor(statsMaxAge), h.Stats.GetStats)

	companies := g.Group("/companies")
	{
		companies.GET("", middleware.CacheFor(companiesMaxAge), h.Companies.ListCompanies)
		companies.GET("/:ticker", middleware.CacheFor(companyMaxAge), h.Companies.GetCompany)
		companies.GET("/:ticker/dividends", middleware.CacheFor(companyDividendsMaxAge), h.Companies.GetCompanyDividends)
	}

	dividends := g.Group("/dividends")
	{
		dividends.GET("/recent", middleware.CacheFor(recentMaxAge), h.Dividends.RecentDividends)
		dividends.GET("/calendar", middleware.CacheFor(calendarMaxAge), h.Dividends.DividendCalendar)
	}
}
