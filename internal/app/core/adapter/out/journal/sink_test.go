package journal_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/audit-ledger/internal/app/core/adapter/out/journal"
	"github.com/JoeShih716/audit-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
	jsonl "github.com/JoeShih716/audit-ledger/pkg/journal"
)

func TestSinkStreamReplaysClean(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	svc := usecase.NewLedgerService(memory.NewStore(),
		usecase.WithAuditSink(journal.NewSink(&buf)),
		usecase.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	_, err := svc.CreateAccount(ctx, "A1", decimal.NewFromInt(100), "Alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "A2", decimal.Zero, "Bob")
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, "A1", decimal.RequireFromString("0.25"), "coins")
	require.NoError(t, err)
	_, err = svc.Transfer(ctx, "A1", "A2", decimal.NewFromInt(40), "rent")
	require.NoError(t, err)
	_, err = svc.Withdraw(ctx, "A2", decimal.NewFromInt(10), "cash")
	require.NoError(t, err)

	runs, err := journal.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	trans := runs[0].Transactions
	require.Len(t, trans, 5)
	kinds := make(map[domain.TransactionKind]domain.Transaction)
	for _, tran := range trans {
		kinds[tran.Kind] = tran
	}
	out, in := kinds[domain.KindTransferOut], kinds[domain.KindTransferIn]
	peer, ok := out.Counterpart.Get()
	require.True(t, ok)
	assert.Equal(t, "A2", peer)
	assert.Equal(t, "A1", in.Counterpart.OrElse(""))
	assert.Equal(t, out.EventID, in.EventID)
	assert.Equal(t, out.ID+1, in.ID)
	assert.False(t, trans[0].Counterpart.IsSet())

	report, err := usecase.Audit(slices.Values(trans))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Transfers)
	assert.True(t, report.Balances["A1"].Equal(decimal.RequireFromString("60.25")))
	assert.True(t, report.Balances["A2"].Equal(decimal.NewFromInt(30)))

	a1, _ := svc.GetBalance(ctx, "A1")
	assert.True(t, a1.Equal(report.Balances["A1"]))
}

func TestAppendedRunsReplayIndependently(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	// 兩次執行寫入同一個檔案，交易 ID 各自從 1 開始
	var runIDs []uuid.UUID
	for run := 0; run < 2; run++ {
		file, err := jsonl.OpenFile(path)
		require.NoError(t, err)
		sink := journal.NewSink(file)
		runIDs = append(runIDs, sink.RunID())

		svc := usecase.NewLedgerService(memory.NewStore(),
			usecase.WithAuditSink(sink),
			usecase.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)
		_, err = svc.CreateAccount(ctx, "0", decimal.NewFromInt(100), "house")
		require.NoError(t, err)
		_, err = svc.Withdraw(ctx, "0", decimal.NewFromInt(int64(10*(run+1))), "")
		require.NoError(t, err)
		require.NoError(t, sink.Close())
	}

	runs, err := journal.DecodeFile(path)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for i, run := range runs {
		assert.Equal(t, runIDs[i], run.ID)
		require.Len(t, run.Transactions, 2)
		assert.Equal(t, uint64(1), run.Transactions[0].ID)

		report, err := usecase.Audit(slices.Values(run.Transactions))
		require.NoError(t, err)
		assert.Equal(t, uint64(2), report.LastID)
	}
	assert.False(t, runs[0].StartedAt.After(runs[1].StartedAt))
}

func TestSinkWithoutRecordsWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, journal.NewSink(&buf).Close())
	assert.Zero(t, buf.Len())

	runs, err := journal.Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestDecodeWithoutHeader(t *testing.T) {
	line := `{"id":1,"event_id":"` + uuid.NewString() + `","account":"A1","kind":"deposit","amount":"5","balance_after":"5","timestamp":"2024-01-01T00:00:00Z","description":"","counterpart":null}`
	runs, err := journal.Decode(bytes.NewBufferString(line + "\n"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, uuid.Nil, runs[0].ID)
	require.Len(t, runs[0].Transactions, 1)
	assert.Equal(t, domain.KindDeposit, runs[0].Transactions[0].Kind)
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := journal.Decode(bytes.NewBufferString(`{"id":1,"kind":"refund","amount":"1"}` + "\n"))
	assert.Error(t, err)
}
