package usecase

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
)

func auditLog() []domain.Transaction {
	event := uuid.New()
	return []domain.Transaction{
		{ID: 1, EventID: uuid.New(), Account: "A1", Kind: domain.KindDeposit,
			Amount: decimal.NewFromInt(100), BalanceAfter: decimal.NewFromInt(100),
			Description: domain.InitialFundingDescription},
		{ID: 2, EventID: uuid.New(), Account: "A1", Kind: domain.KindWithdrawal,
			Amount: decimal.NewFromInt(-30), BalanceAfter: decimal.NewFromInt(70)},
		{ID: 3, EventID: event, Account: "A1", Kind: domain.KindTransferOut,
			Amount: decimal.NewFromInt(-20), BalanceAfter: decimal.NewFromInt(50), Counterpart: domain.Some("A2")},
		{ID: 4, EventID: event, Account: "A2", Kind: domain.KindTransferIn,
			Amount: decimal.NewFromInt(20), BalanceAfter: decimal.NewFromInt(20), Counterpart: domain.Some("A1")},
	}
}

func TestAuditAcceptsConsistentLog(t *testing.T) {
	report, err := Audit(slices.Values(auditLog()))
	require.NoError(t, err)
	assert.Equal(t, 4, report.Transactions)
	assert.Equal(t, 1, report.Transfers)
	assert.Equal(t, uint64(4), report.LastID)
	assert.True(t, report.Balances["A1"].Equal(decimal.NewFromInt(50)))
	assert.True(t, report.Balances["A2"].Equal(decimal.NewFromInt(20)))
}

func TestAuditEmptyLog(t *testing.T) {
	report, err := Audit(slices.Values([]domain.Transaction(nil)))
	require.NoError(t, err)
	assert.Zero(t, report.Transactions)
	assert.Empty(t, report.Balances)
}

func TestAuditRejectsTamperedLog(t *testing.T) {
	cases := []struct {
		name   string
		tamper func(log []domain.Transaction) []domain.Transaction
	}{
		{"balance drift", func(log []domain.Transaction) []domain.Transaction {
			log[1].BalanceAfter = decimal.NewFromInt(71)
			return log
		}},
		{"ids out of order", func(log []domain.Transaction) []domain.Transaction {
			log[0], log[1] = log[1], log[0]
			return log
		}},
		{"repeated id", func(log []domain.Transaction) []domain.Transaction {
			log[1].ID = 1
			return log
		}},
		{"withdrawal with positive amount", func(log []domain.Transaction) []domain.Transaction {
			log[1].Amount = decimal.NewFromInt(30)
			log[1].BalanceAfter = decimal.NewFromInt(130)
			return log
		}},
		{"deposit with counterpart", func(log []domain.Transaction) []domain.Transaction {
			log[0].Counterpart = domain.Some("A2")
			return log
		}},
		{"missing transfer leg", func(log []domain.Transaction) []domain.Transaction {
			return log[:3]
		}},
		{"legs do not balance", func(log []domain.Transaction) []domain.Transaction {
			log[3].Amount = decimal.NewFromInt(25)
			log[3].BalanceAfter = decimal.NewFromInt(25)
			return log
		}},
		{"legs not adjacent", func(log []domain.Transaction) []domain.Transaction {
			log[3].ID = 9
			return log
		}},
		{"wrong counterpart", func(log []domain.Transaction) []domain.Transaction {
			log[3].Counterpart = domain.Some("A3")
			return log
		}},
		{"unknown kind", func(log []domain.Transaction) []domain.Transaction {
			log[1].Kind = domain.TransactionKind(99)
			return log
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Audit(slices.Values(tc.tamper(auditLog())))
			assert.ErrorIs(t, err, domain.ErrInvariant)
		})
	}
}

func TestSequencer(t *testing.T) {
	seq := NewSequencer(0)
	assert.Equal(t, uint64(0), seq.Last())
	assert.Equal(t, uint64(1), seq.Next())
	assert.Equal(t, uint64(2), seq.Next())
	assert.Equal(t, uint64(2), seq.Last())

	resumed := NewSequencer(41)
	assert.Equal(t, uint64(42), resumed.Next())
}
