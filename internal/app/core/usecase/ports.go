package usecase

import (
	"context"
	"iter"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
)

//go:generate mockgen -destination "mock_ports_test.go" -package $GOPACKAGE -write_package_comment=false github.com/JoeShih716/audit-ledger/internal/app/core/usecase AuditSink

// Store 帳本儲存層介面
//
// Store 不做任何業務檢查，也不自行加鎖；LedgerService 在臨界區內呼叫。
type Store interface {
	// InsertAccount 新增帳戶並附加開戶交易，全部成功或全部不寫入。
	// 帳號已存在回傳 domain.ErrDuplicateAccount。
	InsertAccount(account *domain.Account, funding ...*domain.Transaction) error
	// GetAccount 取得帳戶 (Store 內部實例)，不存在回傳 domain.ErrNotFound
	GetAccount(number string) (*domain.Account, error)
	// AppendTransactions 依序附加交易紀錄，全部成功或全部不寫入。
	// 只有 ID 重複 (程式錯誤) 時失敗。
	AppendTransactions(trans ...*domain.Transaction) error
	// TransactionsFor 某帳戶的交易，最新在前；每次呼叫都是新的查詢
	TransactionsFor(number string) iter.Seq[*domain.Transaction]
	// Transactions 全部交易，依寫入順序
	Transactions() iter.Seq[*domain.Transaction]
	// Accounts 全部帳戶，依帳號排序
	Accounts() iter.Seq[*domain.Account]
}

// AuditSink 接收已提交的交易 (依寫入順序)
type AuditSink interface {
	Record(ctx context.Context, trans ...domain.Transaction) error
}
