package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type forecastRequest struct {
	Symbol        string `json:"symbol"`
	HorizonMonths int    `json:"horizonMonths"`
}

func (m ApiHandler) forecast(c *gin.Context) {
	var requestBody forecastRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.HorizonMonths <= 0 {
		requestBody.HorizonMonths = 12
	}

	result, err := m.PortfolioService.Forecast(c.Request.Context(), requestBody.Symbol, requestBody.HorizonMonths)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, result)
}

func (m ApiHandler) wealth(c *gin.Context) {
	points, err := m.PortfolioService.WealthCurve(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, points)
}
