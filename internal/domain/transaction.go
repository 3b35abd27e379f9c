package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

type Transaction struct {
	ID     uuid.UUID       `json:"id"`
	Type   TransactionType `json:"type"`
	Shares decimal.Decimal `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Date   time.Time       `json:"date"`
}

type CostBasis struct {
	Shares   decimal.Decimal
	AvgPrice decimal.Decimal
	Invested decimal.Decimal
}

// ReplayTransactions recomputes the display fields of a transaction-backed
// position by replaying every transaction in insertion order.
//
// note - the average price divides total invested by (remaining + sold)
// shares, which is not standard weighted-average cost basis. downstream
// gain/loss display depends on this exact value, so don't "fix" it here.
func ReplayTransactions(transactions []Transaction, fallbackPrice decimal.Decimal) CostBasis {
	totalShares := decimal.Zero
	totalInvested := decimal.Zero
	totalSold := decimal.Zero

	for _, tx := range transactions {
		switch tx.Type {
		case TransactionBuy:
			totalShares = totalShares.Add(tx.Shares)
			totalInvested = totalInvested.Add(tx.Shares.Mul(tx.Price))
		case TransactionSell:
			totalShares = totalShares.Sub(tx.Shares)
			totalSold = totalSold.Add(tx.Shares)
		}
	}

	avgPrice := fallbackPrice
	if totalShares.IsPositive() {
		denominator := totalShares.Add(totalSold)
		if denominator.IsPositive() {
			avgPrice = totalInvested.Div(denominator)
		}
	}

	return CostBasis{
		Shares:   totalShares,
		AvgPrice: avgPrice,
		Invested: totalInvested,
	}
}
