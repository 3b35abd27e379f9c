package api

import (
	"context"
	"fmt"
	"foliocast/internal/logger"
	"foliocast/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	PortfolioService service.PortfolioService
	AccountService   service.AccountService
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware(logger.New()))

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to foliocast"})
	})

	router.GET("/portfolio", m.getPortfolio)
	router.POST("/portfolio/refresh", m.refreshPortfolio)
	router.GET("/portfolio/summary", m.portfolioSummary)
	router.POST("/positions", m.upsertPosition)
	router.DELETE("/positions/:symbol", m.removePosition)
	router.POST("/positions/:symbol/transactions", m.addTransaction)
	router.POST("/forecast", m.forecast)
	router.GET("/wealth", m.wealth)
	router.GET("/cash", m.getCash)
	router.POST("/cash", m.appendCash)
	router.GET("/watchlist", m.getWatchlist)
	router.POST("/watchlist", m.addToWatchlist)
	router.DELETE("/watchlist/:symbol", m.removeFromWatchlist)
	router.GET("/settings", m.getSettings)
	router.PUT("/settings", m.saveSettings)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warn(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func logRequestMiddleware(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request = ctx.Request.WithContext(
			context.WithValue(ctx.Request.Context(), logger.ContextKey, log),
		)

		start := time.Now()
		ctx.Next()

		log.Infow("request",
			"method", ctx.Request.Method,
			"route", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"durationMs", time.Since(start).Milliseconds(),
		)
	}
}
