package memory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
)

func newTran(id uint64, account string, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:      id,
		Account: account,
		Kind:    domain.KindDeposit,
		Amount:  decimal.NewFromInt(amount),
	}
}

func collectIDs(s *Store, number string) []uint64 {
	var ids []uint64
	for tran := range s.TransactionsFor(number) {
		ids = append(ids, tran.ID)
	}
	return ids
}

func TestInsertAndGetAccount(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.InsertAccount(domain.NewAccount("A1", "Alice", time.Now())))

	got, err := s.GetAccount("A1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.HolderName)

	err = s.InsertAccount(domain.NewAccount("A1", "Mallory", time.Now()))
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

	got, _ = s.GetAccount("A1")
	assert.Equal(t, "Alice", got.HolderName)

	_, err = s.GetAccount("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInsertAccountWithFundingIsAtomic(t *testing.T) {
	s := NewStore()
	now := time.Now()
	a1 := domain.NewAccount("A1", "Alice", now)
	require.NoError(t, s.InsertAccount(a1, newTran(1, "A1", 10)))
	assert.Equal(t, []uint64{1}, collectIDs(s, "A1"))

	// 序號重複: 帳戶與交易都不寫入
	err := s.InsertAccount(domain.NewAccount("B1", "Bob", now), newTran(1, "B1", 5))
	assert.ErrorIs(t, err, domain.ErrInvariant)
	_, err = s.GetAccount("B1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, collectIDs(s, "B1"))

	// 帳號重複: 交易也不寫入
	err = s.InsertAccount(domain.NewAccount("A1", "Mallory", now), newTran(2, "A1", 5))
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
	assert.Equal(t, 1, s.Len())
}

func TestTransactionsForMostRecentFirst(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendTransactions(newTran(1, "A1", 100)))
	require.NoError(t, s.AppendTransactions(newTran(2, "A2", 5)))
	require.NoError(t, s.AppendTransactions(newTran(3, "A1", 50)))

	assert.Equal(t, []uint64{3, 1}, collectIDs(s, "A1"))
	// 每次呼叫都是新的查詢
	assert.Equal(t, []uint64{3, 1}, collectIDs(s, "A1"))
	assert.Empty(t, collectIDs(s, "unknown"))

	var all []uint64
	for tran := range s.Transactions() {
		all = append(all, tran.ID)
	}
	assert.Equal(t, []uint64{1, 2, 3}, all)
}

func TestTransactionsForStopsEarly(t *testing.T) {
	s := NewStore()
	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, s.AppendTransactions(newTran(i, "A1", 1)))
	}

	var seen []uint64
	for tran := range s.TransactionsFor("A1") {
		seen = append(seen, tran.ID)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []uint64{5, 4}, seen)
}

func TestAppendRejectsDuplicateIDsAtomically(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendTransactions(newTran(1, "A1", 100)))

	err := s.AppendTransactions(newTran(2, "A1", -10), newTran(1, "A2", 10))
	assert.ErrorIs(t, err, domain.ErrInvariant)
	assert.Equal(t, 1, s.Len())

	err = s.AppendTransactions(newTran(3, "A1", -10), newTran(3, "A2", 10))
	assert.ErrorIs(t, err, domain.ErrInvariant)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []uint64{1}, collectIDs(s, "A1"))
	assert.Empty(t, collectIDs(s, "A2"))
}

func TestAccountsSorted(t *testing.T) {
	s := NewStore()
	for _, n := range []string{"C3", "A1", "B2"} {
		require.NoError(t, s.InsertAccount(domain.NewAccount(n, n, time.Now())))
	}
	var numbers []string
	for a := range s.Accounts() {
		numbers = append(numbers, a.Number)
	}
	assert.Equal(t, []string{"A1", "B2", "C3"}, numbers)
}
