package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestReplayTransactions(t *testing.T) {
	t.Run("buys then a sell", func(t *testing.T) {
		transactions := []Transaction{
			{Type: TransactionBuy, Shares: dec(10), Price: dec(100)},
			{Type: TransactionBuy, Shares: dec(10), Price: dec(120)},
			{Type: TransactionSell, Shares: dec(5), Price: dec(150)},
		}

		cb := ReplayTransactions(transactions, dec(0))

		require.True(t, cb.Shares.Equal(dec(15)), cb.Shares.String())
		require.True(t, cb.Invested.Equal(dec(2200)), cb.Invested.String())
		// invested / (remaining + sold) = 2200 / 20
		require.True(t, cb.AvgPrice.Equal(dec(110)), cb.AvgPrice.String())
	})

	t.Run("sold out retains the last known price", func(t *testing.T) {
		transactions := []Transaction{
			{Type: TransactionBuy, Shares: dec(10), Price: dec(100)},
			{Type: TransactionSell, Shares: dec(10), Price: dec(150)},
		}

		cb := ReplayTransactions(transactions, dec(100))

		require.True(t, cb.Shares.IsZero())
		require.True(t, cb.AvgPrice.Equal(dec(100)), cb.AvgPrice.String())
	})

	t.Run("no transactions", func(t *testing.T) {
		cb := ReplayTransactions(nil, dec(42))

		require.True(t, cb.Shares.IsZero())
		require.True(t, cb.Invested.IsZero())
		require.True(t, cb.AvgPrice.Equal(dec(42)))
	})
}

func TestAssetPosition_CostBasis(t *testing.T) {
	t.Run("manual variant uses stored fields", func(t *testing.T) {
		position := AssetPosition{
			Symbol:         "VTI",
			Shares:         dec(10),
			PurchasePrice:  dec(100),
			InvestedAmount: dec(1000),
		}

		cb := position.CostBasis()

		require.True(t, cb.Shares.Equal(dec(10)))
		require.True(t, cb.Invested.Equal(dec(1000)))
	})

	t.Run("transactions override stored fields", func(t *testing.T) {
		position := AssetPosition{
			Symbol:        "VTI",
			Shares:        dec(999),
			PurchasePrice: dec(1),
			Transactions: []Transaction{
				{Type: TransactionBuy, Shares: dec(10), Price: dec(100)},
			},
		}
		position.ApplyCostBasis()

		require.True(t, position.Shares.Equal(dec(10)))
		require.True(t, position.PurchasePrice.Equal(dec(100)))
		require.True(t, position.InvestedAmount.Equal(dec(1000)))
	})
}

func TestAssetPosition_ImpliedShares(t *testing.T) {
	t.Run("amount-first entry", func(t *testing.T) {
		position := AssetPosition{
			InvestedAmount: dec(1000),
			PurchasePrice:  dec(250),
		}
		require.InDelta(t, 4, position.ImpliedShares(), 1e-9)
	})

	t.Run("shares-first entry", func(t *testing.T) {
		position := AssetPosition{Shares: dec(7)}
		require.InDelta(t, 7, position.ImpliedShares(), 1e-9)
	})

	t.Run("zero purchase price does not divide", func(t *testing.T) {
		position := AssetPosition{
			Shares:         dec(3),
			InvestedAmount: dec(1000),
		}
		require.InDelta(t, 3, position.ImpliedShares(), 1e-9)
	})
}
