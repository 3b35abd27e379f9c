package api

import (
	"fmt"
	"foliocast/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (m ApiHandler) getCash(c *gin.Context) {
	ledger, err := m.AccountService.GetCashLedger(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, ledger)
}

type appendCashRequest struct {
	Type   domain.CashTransactionType `json:"type"`
	Amount decimal.Decimal            `json:"amount"`
	Note   string                     `json:"note"`
}

func (m ApiHandler) appendCash(c *gin.Context) {
	var requestBody appendCashRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	ledger, err := m.AccountService.AppendCash(c.Request.Context(), requestBody.Type, requestBody.Amount, requestBody.Note)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	c.JSON(200, ledger)
}

func (m ApiHandler) getWatchlist(c *gin.Context) {
	entries, err := m.AccountService.GetWatchlist(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, entries)
}

type addWatchlistRequest struct {
	Symbol string `json:"symbol"`
}

func (m ApiHandler) addToWatchlist(c *gin.Context) {
	var requestBody addWatchlistRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	entry, err := m.AccountService.AddToWatchlist(c.Request.Context(), requestBody.Symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, entry)
}

func (m ApiHandler) removeFromWatchlist(c *gin.Context) {
	if err := m.AccountService.RemoveFromWatchlist(c.Request.Context(), c.Param("symbol")); err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}
	c.JSON(200, gin.H{"removed": c.Param("symbol")})
}

func (m ApiHandler) getSettings(c *gin.Context) {
	settings, err := m.AccountService.GetSettings(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, settings)
}

func (m ApiHandler) saveSettings(c *gin.Context) {
	var settings domain.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	if err := m.AccountService.SaveSettings(c.Request.Context(), settings); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	c.JSON(200, settings)
}
