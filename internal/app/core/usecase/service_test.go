package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JoeShih716/audit-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, opts ...usecase.Option) (*usecase.LedgerService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	opts = append([]usecase.Option{usecase.WithLogger(quietLogger())}, opts...)
	return usecase.NewLedgerService(store, opts...), store
}

func amounts(trans []domain.Transaction) []string {
	out := make([]string, len(trans))
	for i, tran := range trans {
		out[i] = tran.Amount.String()
	}
	return out
}

// failingStore 讓交易寫入失敗，模擬 Store 內部錯誤
type failingStore struct {
	*memory.Store
	fail bool
}

func (f *failingStore) AppendTransactions(trans ...*domain.Transaction) error {
	if f.fail {
		return errors.New("disk on fire")
	}
	return f.Store.AppendTransactions(trans...)
}

func (f *failingStore) InsertAccount(account *domain.Account, funding ...*domain.Transaction) error {
	if f.fail && len(funding) > 0 {
		return errors.New("disk on fire")
	}
	return f.Store.InsertAccount(account, funding...)
}

func TestCreateAccountWithInitialFunding(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	account, err := svc.CreateAccount(ctx, "A1", d("100"), "Alice")
	require.NoError(t, err)
	assert.Equal(t, "A1", account.Number)
	assert.Equal(t, "Alice", account.HolderName)
	assert.True(t, account.Active)
	assert.True(t, account.Balance.Equal(d("100")))

	history := svc.GetHistory(ctx, "A1")
	require.Len(t, history, 1)
	assert.Equal(t, domain.KindDeposit, history[0].Kind)
	assert.Equal(t, domain.InitialFundingDescription, history[0].Description)
	assert.True(t, history[0].Amount.Equal(d("100")))
	assert.True(t, history[0].BalanceAfter.Equal(d("100")))
	assert.False(t, history[0].Counterpart.IsSet())
}

func TestCreateAccountWithZeroBalanceHasNoHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	account, err := svc.CreateAccount(ctx, "A2", decimal.Zero, "Bob")
	require.NoError(t, err)
	assert.True(t, account.Balance.IsZero())
	assert.False(t, account.LastActivityAt.IsSet())
	assert.Empty(t, svc.GetHistory(ctx, "A2"))
}

func TestCreateAccountValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("10"), "Alice")
	require.NoError(t, err)

	cases := []struct {
		name    string
		number  string
		balance decimal.Decimal
		holder  string
		want    error
	}{
		{"empty number", "", d("1"), "X", domain.ErrInvalidArgument},
		{"blank holder", "A9", d("1"), "   ", domain.ErrInvalidArgument},
		{"negative balance", "A9", d("-0.01"), "X", domain.ErrInvalidArgument},
		{"duplicate", "A1", d("5"), "Mallory", domain.ErrDuplicateAccount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateAccount(ctx, tc.number, tc.balance, tc.holder)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, store.Len())
		})
	}

	account, err := svc.GetAccount(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", account.HolderName)
	assert.True(t, account.Balance.Equal(d("10")))
}

func TestDepositAndHistory(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newService(t, usecase.WithClock(func() time.Time { return at }))

	_, err := svc.CreateAccount(ctx, "A1", d("100"), "Alice")
	require.NoError(t, err)

	tran, err := svc.Deposit(ctx, "A1", d("50"), "bonus")
	require.NoError(t, err)
	assert.Equal(t, domain.KindDeposit, tran.Kind)
	assert.Equal(t, "bonus", tran.Description)
	assert.True(t, tran.BalanceAfter.Equal(d("150")))
	assert.Equal(t, at, tran.Timestamp)

	balance, err := svc.GetBalance(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(d("150")))

	history := svc.GetHistory(ctx, "A1")
	assert.Equal(t, []string{"50", "100"}, amounts(history))
	assert.Greater(t, history[0].ID, history[1].ID)

	account, err := svc.GetAccount(ctx, "A1")
	require.NoError(t, err)
	last, ok := account.LastActivityAt.Get()
	require.True(t, ok)
	assert.Equal(t, at, last)
}

func TestDepositValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("1"), "Alice")
	require.NoError(t, err)

	_, err = svc.Deposit(ctx, "A1", decimal.Zero, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = svc.Deposit(ctx, "A1", d("-3"), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = svc.Deposit(ctx, "", d("3"), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = svc.Deposit(ctx, "ghost", d("3"), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, store.Len())
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("150"), "Alice")
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, "A1", d("200"), "rent")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	balance, _ := svc.GetBalance(ctx, "A1")
	assert.True(t, balance.Equal(d("150")))
	assert.Equal(t, 1, store.Len())

	tran, err := svc.Withdraw(ctx, "A1", d("150"), "everything")
	require.NoError(t, err)
	assert.Equal(t, domain.KindWithdrawal, tran.Kind)
	assert.True(t, tran.Amount.Equal(d("-150")))
	assert.True(t, tran.BalanceAfter.IsZero())

	_, err = svc.Withdraw(ctx, "A1", d("0.0001"), "overdraft")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("150"), "Alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "A2", decimal.Zero, "Bob")
	require.NoError(t, err)

	result, err := svc.Transfer(ctx, "A1", "A2", d("100"), "loan")
	require.NoError(t, err)

	debit, credit := result.Debit, result.Credit
	assert.Equal(t, "A1", debit.Account)
	assert.Equal(t, domain.KindTransferOut, debit.Kind)
	assert.True(t, debit.Amount.Equal(d("-100")))
	assert.True(t, debit.BalanceAfter.Equal(d("50")))
	peer, ok := debit.Counterpart.Get()
	require.True(t, ok)
	assert.Equal(t, "A2", peer)

	assert.Equal(t, "A2", credit.Account)
	assert.Equal(t, domain.KindTransferIn, credit.Kind)
	assert.True(t, credit.Amount.Equal(d("100")))
	assert.True(t, credit.BalanceAfter.Equal(d("100")))
	peer, ok = credit.Counterpart.Get()
	require.True(t, ok)
	assert.Equal(t, "A1", peer)

	assert.Equal(t, debit.EventID, credit.EventID)
	assert.Equal(t, debit.ID+1, credit.ID)

	b1, _ := svc.GetBalance(ctx, "A1")
	b2, _ := svc.GetBalance(ctx, "A2")
	assert.True(t, b1.Equal(d("50")))
	assert.True(t, b2.Equal(d("100")))

	assert.Equal(t, debit, svc.GetHistory(ctx, "A1")[0])
	assert.Equal(t, credit, svc.GetHistory(ctx, "A2")[0])
}

func TestTransferFailuresLeaveNoTrace(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("100"), "Alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "A2", d("10"), "Bob")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "OFF", d("10"), "Closed")
	require.NoError(t, err)
	_, err = svc.DeactivateAccount(ctx, "OFF")
	require.NoError(t, err)

	before := store.Len()
	cases := []struct {
		name     string
		from, to string
		amount   decimal.Decimal
		want     error
	}{
		{"missing from", "", "A2", d("1"), domain.ErrInvalidArgument},
		{"missing to", "A1", "", d("1"), domain.ErrInvalidArgument},
		{"same account", "A1", "A1", d("10"), domain.ErrInvalidArgument},
		{"same account beats amount", "A1", "A1", d("-1"), domain.ErrInvalidArgument},
		{"zero amount", "A1", "A2", decimal.Zero, domain.ErrInvalidArgument},
		{"amount before existence", "ghost", "A2", d("-1"), domain.ErrInvalidArgument},
		{"unknown source", "ghost", "A2", d("1"), domain.ErrNotFound},
		{"unknown destination", "A1", "ghost", d("1"), domain.ErrNotFound},
		{"source before destination", "OFF", "ghost", d("1"), domain.ErrInactiveAccount},
		{"inactive destination", "A1", "OFF", d("1"), domain.ErrInactiveAccount},
		{"destination before funds", "A2", "OFF", d("1000"), domain.ErrInactiveAccount},
		{"insufficient funds", "A2", "A1", d("10.01"), domain.ErrInsufficientFunds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Transfer(ctx, tc.from, tc.to, tc.amount, "x")
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, before, store.Len())
		})
	}

	b1, _ := svc.GetBalance(ctx, "A1")
	b2, _ := svc.GetBalance(ctx, "A2")
	assert.True(t, b1.Equal(d("100")))
	assert.True(t, b2.Equal(d("10")))
}

func TestInactiveAccountIsQueryableOnly(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("20"), "Alice")
	require.NoError(t, err)

	account, err := svc.DeactivateAccount(ctx, "A1")
	require.NoError(t, err)
	assert.False(t, account.Active)

	_, err = svc.Deposit(ctx, "A1", d("1"), "x")
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
	_, err = svc.Withdraw(ctx, "A1", d("1"), "x")
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
	_, err = svc.DeactivateAccount(ctx, "A1")
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
	_, err = svc.DeactivateAccount(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	balance, err := svc.GetBalance(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(d("20")))
	assert.Len(t, svc.GetHistory(ctx, "A1"), 1)
}

func TestQueriesOnUnknownAccount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.GetBalance(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetAccount(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	history := svc.GetHistory(ctx, "ghost")
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestQueriesAreIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("100"), "Alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "A2", d("1"), "Bob")
	require.NoError(t, err)
	_, err = svc.Transfer(ctx, "A1", "A2", d("30"), "x")
	require.NoError(t, err)

	assert.Equal(t, svc.GetHistory(ctx, "A1"), svc.GetHistory(ctx, "A1"))
	first, _ := svc.GetBalance(ctx, "A1")
	second, _ := svc.GetBalance(ctx, "A1")
	assert.True(t, first.Equal(second))
	assert.Equal(t, svc.ListAccounts(ctx), svc.ListAccounts(ctx))
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	assert.Empty(t, svc.ListAccounts(ctx))

	for _, n := range []string{"B", "A", "C"} {
		_, err := svc.CreateAccount(ctx, n, decimal.Zero, "holder "+n)
		require.NoError(t, err)
	}
	accounts := svc.ListAccounts(ctx)
	require.Len(t, accounts, 3)
	assert.Equal(t, "A", accounts[0].Number)
	assert.Equal(t, "C", accounts[2].Number)
}

func TestConcurrentDeposits(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("100"), "Alice")
	require.NoError(t, err)

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.Deposit(ctx, "A1", decimal.NewFromInt(1), "t"); err != nil {
				t.Errorf("deposit: %v", err)
			}
		}()
	}
	wg.Wait()

	balance, err := svc.GetBalance(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(d("200")), "balance=%s", balance)

	history := svc.GetHistory(ctx, "A1")
	require.Len(t, history, workers+1)
	seen := make(map[uint64]bool, len(history))
	for i, tran := range history {
		assert.False(t, seen[tran.ID], "duplicate id %d", tran.ID)
		seen[tran.ID] = true
		if i > 0 {
			assert.Less(t, tran.ID, history[i-1].ID)
		}
	}

	_, err = svc.VerifyLedger(ctx)
	assert.NoError(t, err)
}

func TestConcurrentOppositeTransfers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.CreateAccount(ctx, "A", d("1000"), "A")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "B", d("1000"), "B")
	require.NoError(t, err)

	const n = 200
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.Transfer(ctx, "A", "B", d("1"), "a->b"); err != nil {
				t.Errorf("A->B: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.Transfer(ctx, "B", "A", d("1"), "b->a"); err != nil {
				t.Errorf("B->A: %v", err)
			}
		}()
	}
	wg.Wait()

	a, _ := svc.GetBalance(ctx, "A")
	b, _ := svc.GetBalance(ctx, "B")
	assert.True(t, a.Add(b).Equal(d("2000")))

	report, err := svc.VerifyLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Accounts)
	assert.Equal(t, 2*n, report.Transfers)
	assert.Equal(t, 2+4*n, report.Transactions)
}

func TestAuditSinkReceivesCommittedTransactions(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sink := usecase.NewMockAuditSink(ctrl)

	var recorded []domain.Transaction
	capture := func(_ context.Context, trans ...domain.Transaction) error {
		recorded = append(recorded, trans...)
		return nil
	}

	gomock.InOrder(
		sink.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(capture),
		sink.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(capture),
	)

	svc, _ := newService(t, usecase.WithAuditSink(sink))
	_, err := svc.CreateAccount(ctx, "A1", d("10"), "Alice")
	require.NoError(t, err)
	// 沒有初始資金，不會產生交易
	_, err = svc.CreateAccount(ctx, "A2", decimal.Zero, "Bob")
	require.NoError(t, err)
	// 失敗的操作不會通知 sink
	_, err = svc.Withdraw(ctx, "A2", d("1"), "x")
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	result, err := svc.Transfer(ctx, "A1", "A2", d("4"), "x")
	require.NoError(t, err)

	require.Len(t, recorded, 3)
	assert.Equal(t, result.Debit, recorded[1])
	assert.Equal(t, result.Credit, recorded[2])
}

func TestAuditSinkFailureDoesNotRollBack(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sink := usecase.NewMockAuditSink(ctrl)
	sink.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("pipe closed")).Times(2)

	svc, _ := newService(t, usecase.WithAuditSink(sink))
	_, err := svc.CreateAccount(ctx, "A1", d("10"), "Alice")
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, "A1", d("5"), "x")
	require.NoError(t, err)

	balance, _ := svc.GetBalance(ctx, "A1")
	assert.True(t, balance.Equal(d("15")))
}

func TestAppendFailureIsInvariantViolation(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: memory.NewStore()}
	svc := usecase.NewLedgerService(store, usecase.WithLogger(quietLogger()))

	_, err := svc.CreateAccount(ctx, "A1", d("10"), "Alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "A2", d("10"), "Bob")
	require.NoError(t, err)

	store.fail = true
	_, err = svc.Deposit(ctx, "A1", d("5"), "x")
	assert.ErrorIs(t, err, domain.ErrInvariant)
	_, err = svc.Transfer(ctx, "A1", "A2", d("5"), "x")
	assert.ErrorIs(t, err, domain.ErrInvariant)
	_, err = svc.CreateAccount(ctx, "A3", d("1"), "Carol")
	assert.ErrorIs(t, err, domain.ErrInvariant)

	store.fail = false
	b1, _ := svc.GetBalance(ctx, "A1")
	b2, _ := svc.GetBalance(ctx, "A2")
	assert.True(t, b1.Equal(d("10")))
	assert.True(t, b2.Equal(d("10")))
	_, err = svc.GetAccount(ctx, "A3")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// 失敗時消耗的序號不會被重複使用
	tran, err := svc.Deposit(ctx, "A1", d("1"), "x")
	require.NoError(t, err)
	assert.Greater(t, tran.ID, uint64(5))

	_, err = svc.VerifyLedger(ctx)
	assert.NoError(t, err)
}

func TestCreateAccountFailureLeavesNoFundingRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	first := usecase.NewLedgerService(store, usecase.WithLogger(quietLogger()))
	_, err := first.CreateAccount(ctx, "A1", d("10"), "Alice")
	require.NoError(t, err)

	// 第二個 service 共用同一個 Store，序號從 1 重新開始，開戶交易會撞號
	second := usecase.NewLedgerService(store, usecase.WithLogger(quietLogger()))
	_, err = second.CreateAccount(ctx, "B1", d("5"), "Bob")
	assert.ErrorIs(t, err, domain.ErrInvariant)

	_, err = store.GetAccount("B1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, store.Len())
	for tran := range store.Transactions() {
		assert.Equal(t, "A1", tran.Account)
	}

	_, err = first.VerifyLedger(ctx)
	assert.NoError(t, err)
}

func TestVerifyLedgerDetectsBalanceDrift(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	_, err := svc.CreateAccount(ctx, "A1", d("10"), "Alice")
	require.NoError(t, err)

	report, err := svc.VerifyLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Accounts)
	assert.False(t, report.CheckedAt.IsZero())

	account, err := store.GetAccount("A1")
	require.NoError(t, err)
	account.Balance = d("11")

	_, err = svc.VerifyLedger(ctx)
	assert.ErrorIs(t, err, domain.ErrInvariant)
}

func TestWithSequencer(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, usecase.WithSequencer(usecase.NewSequencer(41)))

	_, err := svc.CreateAccount(ctx, "A1", d("1"), "Alice")
	require.NoError(t, err)
	tran, err := svc.Deposit(ctx, "A1", d("1"), "x")
	require.NoError(t, err)
	assert.Equal(t, uint64(43), tran.ID)
}

func TestReturnedAccountIsACopy(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	account, err := svc.CreateAccount(ctx, "A1", d("10"), "Alice")
	require.NoError(t, err)

	account.Balance = d("1000000")
	account.Active = false

	balance, _ := svc.GetBalance(ctx, "A1")
	assert.True(t, balance.Equal(d("10")))
	_, err = svc.Deposit(ctx, "A1", d("1"), "x")
	assert.NoError(t, err)
}
