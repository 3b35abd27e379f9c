package api

import (
	"fmt"
	"foliocast/internal/domain"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (m ApiHandler) getPortfolio(c *gin.Context) {
	positions, err := m.PortfolioService.GetPortfolio(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, positions)
}

func (m ApiHandler) refreshPortfolio(c *gin.Context) {
	positions, err := m.PortfolioService.RefreshAll(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, positions)
}

func (m ApiHandler) portfolioSummary(c *gin.Context) {
	summary, err := m.PortfolioService.Summary(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, summary)
}

type upsertPositionRequest struct {
	Symbol              string          `json:"symbol"`
	Shares              decimal.Decimal `json:"shares"`
	PurchasePrice       decimal.Decimal `json:"purchasePrice"`
	InvestedAmount      decimal.Decimal `json:"investedAmount"`
	Currency            string          `json:"currency"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
}

func (m ApiHandler) upsertPosition(c *gin.Context) {
	var requestBody upsertPositionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	// amount-first entry: derive shares when only an amount was given
	shares := requestBody.Shares
	invested := requestBody.InvestedAmount
	if shares.IsZero() && invested.IsPositive() && requestBody.PurchasePrice.IsPositive() {
		shares = invested.Div(requestBody.PurchasePrice)
	}
	if invested.IsZero() {
		invested = shares.Mul(requestBody.PurchasePrice)
	}

	position := domain.AssetPosition{
		Symbol:              requestBody.Symbol,
		Shares:              shares,
		PurchasePrice:       requestBody.PurchasePrice,
		InvestedAmount:      invested,
		Currency:            requestBody.Currency,
		MonthlyContribution: requestBody.MonthlyContribution,
	}
	if err := m.PortfolioService.UpsertPosition(c.Request.Context(), position); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, position)
}

func (m ApiHandler) removePosition(c *gin.Context) {
	if err := m.PortfolioService.RemovePosition(c.Request.Context(), c.Param("symbol")); err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}
	c.JSON(200, gin.H{"removed": c.Param("symbol")})
}

type addTransactionRequest struct {
	Type   domain.TransactionType `json:"type"`
	Shares decimal.Decimal        `json:"shares"`
	Price  decimal.Decimal        `json:"price"`
	Date   string                 `json:"date"`
}

func (m ApiHandler) addTransaction(c *gin.Context) {
	var requestBody addTransactionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.Type != domain.TransactionBuy && requestBody.Type != domain.TransactionSell {
		returnErrorJsonCode(fmt.Errorf("transaction type must be buy or sell"), c, 400)
		return
	}

	transaction := domain.Transaction{
		Type:   requestBody.Type,
		Shares: requestBody.Shares,
		Price:  requestBody.Price,
	}
	if requestBody.Date != "" {
		date, err := time.Parse("2006-01-02", requestBody.Date)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		transaction.Date = date
	}

	position, err := m.PortfolioService.AddTransaction(c.Request.Context(), c.Param("symbol"), transaction)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, position)
}
