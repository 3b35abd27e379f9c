package domain

import "github.com/shopspring/decimal"

// AssetPosition is one holding in the portfolio. Shares, PurchasePrice and
// InvestedAmount are display fields: when Transactions is non-empty they are
// derived by replay and must not be edited directly.
type AssetPosition struct {
	Symbol              string          `json:"symbol"`
	Name                string          `json:"name,omitempty"`
	Shares              decimal.Decimal `json:"shares"`
	PurchasePrice       decimal.Decimal `json:"purchasePrice"`
	InvestedAmount      decimal.Decimal `json:"investedAmount"`
	Currency            string          `json:"currency"`
	ExchangeRate        float64         `json:"exchangeRate"`
	CurrentPrice        float64         `json:"currentPrice"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	Transactions        []Transaction   `json:"transactions,omitempty"`

	// History and Forecast are disjoint in time - the first forecast point
	// is the month strictly after the last historical one. Prices are USD.
	History  []PricePoint `json:"history,omitempty"`
	Forecast []PricePoint `json:"forecast,omitempty"`

	// Err marks that the last refresh failed for this symbol. The rest of
	// the batch proceeds regardless.
	Err bool `json:"error,omitempty"`
}

func (p AssetPosition) TransactionBacked() bool {
	return len(p.Transactions) > 0
}

// CostBasis resolves the authoritative display fields for either entry
// variant: transaction replay when transactions exist, the manual fields
// otherwise.
func (p AssetPosition) CostBasis() CostBasis {
	if p.TransactionBacked() {
		return ReplayTransactions(p.Transactions, p.PurchasePrice)
	}
	return CostBasis{
		Shares:   p.Shares,
		AvgPrice: p.PurchasePrice,
		Invested: p.InvestedAmount,
	}
}

// ApplyCostBasis writes the replayed fields back onto the position so the
// invariant investedAmount ≈ shares × purchasePrice holds after mutation.
func (p *AssetPosition) ApplyCostBasis() {
	cb := p.CostBasis()
	p.Shares = cb.Shares
	p.PurchasePrice = cb.AvgPrice
	p.InvestedAmount = cb.Invested
}

// ImpliedShares supports both shares-first and amount-first entry: when the
// invested amount and price are present they win, otherwise the raw share
// count is used.
func (p AssetPosition) ImpliedShares() float64 {
	cb := p.CostBasis()
	if cb.Invested.IsPositive() && cb.AvgPrice.IsPositive() {
		return cb.Invested.Div(cb.AvgPrice).InexactFloat64()
	}
	return cb.Shares.InexactFloat64()
}
