package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CashTransactionType string

const (
	CashDeposit    CashTransactionType = "deposit"
	CashWithdrawal CashTransactionType = "withdrawal"
	CashBuy        CashTransactionType = "buy"
	CashSell       CashTransactionType = "sell"
)

type CashTransaction struct {
	ID     uuid.UUID           `json:"id"`
	Type   CashTransactionType `json:"type"`
	Amount decimal.Decimal     `json:"amount"`
	Note   string              `json:"note,omitempty"`
	Symbol string              `json:"symbol,omitempty"`
	Date   time.Time           `json:"date"`
}

// CashLedger keeps transactions newest-first. The balance is updated at
// append time rather than re-derived on read, so the two cannot diverge
// unless a write is skipped.
type CashLedger struct {
	Balance      decimal.Decimal   `json:"balance"`
	Transactions []CashTransaction `json:"transactions"`
}

func (t CashTransactionType) credits() bool {
	return t == CashDeposit || t == CashSell
}

func (l *CashLedger) Append(tx CashTransaction) {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}
	if tx.Type.credits() {
		l.Balance = l.Balance.Add(tx.Amount)
	} else {
		l.Balance = l.Balance.Sub(tx.Amount)
	}
	l.Transactions = append([]CashTransaction{tx}, l.Transactions...)
}
