package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
)

// LedgerService 帳本核心業務邏輯層
//
// 所有異動操作共用同一把鎖 (mu.Lock)，轉帳同時涉及兩個帳戶也只需要這一把，不存在鎖順序問題。
// 查詢使用 mu.RLock，不會看到做到一半的轉帳。
type LedgerService struct {
	mu     sync.RWMutex
	store  Store
	seq    *Sequencer
	sink   AuditSink
	logger *slog.Logger
	now    func() time.Time
}

// TransferResult 轉帳產生的兩筆交易
type TransferResult struct {
	Debit  domain.Transaction `json:"debit"`
	Credit domain.Transaction `json:"credit"`
}

// Option 定義 LedgerService 的配置選項函數
type Option func(*LedgerService)

// WithAuditSink 設定已提交交易的接收端
func WithAuditSink(sink AuditSink) Option {
	return func(s *LedgerService) {
		s.sink = sink
	}
}

// WithLogger 設定 Logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *LedgerService) {
		s.logger = logger
	}
}

// WithClock 設定時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) {
		s.now = now
	}
}

// WithSequencer 設定交易序號來源
func WithSequencer(seq *Sequencer) Option {
	return func(s *LedgerService) {
		s.seq = seq
	}
}

// NewLedgerService 建立 LedgerService，store 由 service 獨佔
func NewLedgerService(store Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:  store,
		seq:    NewSequencer(0),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAccount 開戶
//
// 參數:
//
//	ctx: 上下文
//	number: 帳號 (唯一)
//	initialBalance: 初始餘額，必須 >= 0；大於 0 時寫入一筆 initial funding 存款
//	holderName: 戶名
//
// 回傳:
//
//	domain.Account: 帳戶快照
//	error: InvalidArgument / DuplicateAccount
func (s *LedgerService) CreateAccount(ctx context.Context, number string, initialBalance decimal.Decimal, holderName string) (domain.Account, error) {
	const op = "create_account"
	if isBlank(number) {
		return domain.Account{}, s.reject(ctx, op, domain.NewError(domain.KindInvalidArgument, "account number is required"))
	}
	if isBlank(holderName) {
		return domain.Account{}, s.reject(ctx, op, domain.NewError(domain.KindInvalidArgument, "holder name is required"))
	}
	if initialBalance.IsNegative() {
		return domain.Account{}, s.reject(ctx, op, domain.NewError(domain.KindInvalidArgument, "initial balance must not be negative"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.GetAccount(number); err == nil {
		return domain.Account{}, s.reject(ctx, op, domain.NewError(domain.KindDuplicateAccount, "account %s already exists", number))
	}

	now := s.now()
	account := domain.NewAccount(number, holderName, now)

	// 1. 準備開戶交易，帳戶尚未對外可見
	var funding []*domain.Transaction
	if initialBalance.IsPositive() {
		funding = append(funding, s.newTransaction(uuid.New(), account, domain.KindDeposit, initialBalance,
			initialBalance, now, domain.InitialFundingDescription, domain.None[string]()))
		account.Credit(initialBalance, now)
	}

	// 2. 帳戶與交易一起寫入；帳號已在鎖內確認不存在，這裡失敗代表 Store 狀態異常
	if err := s.store.InsertAccount(account, funding...); err != nil {
		return domain.Account{}, s.violation(ctx, op, err)
	}

	if len(funding) > 0 {
		s.commit(ctx, op, funding...)
	}
	s.logger.DebugContext(ctx, "account created", "account", number, "initial_balance", initialBalance.String())
	return *account, nil
}

// Deposit 存款
//
// 參數:
//
//	ctx: 上下文
//	number: 帳號
//	amount: 金額，必須 > 0
//	description: 描述
//
// 回傳:
//
//	domain.Transaction: 產生的交易
//	error: InvalidArgument / NotFound / InactiveAccount
func (s *LedgerService) Deposit(ctx context.Context, number string, amount decimal.Decimal, description string) (domain.Transaction, error) {
	const op = "deposit"
	if err := validateTarget(number, amount); err != nil {
		return domain.Transaction{}, s.reject(ctx, op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.activeAccount(number)
	if err != nil {
		return domain.Transaction{}, s.reject(ctx, op, err)
	}

	now := s.now()
	tran := s.newTransaction(uuid.New(), account, domain.KindDeposit, amount,
		account.Balance.Add(amount), now, description, domain.None[string]())
	if err := s.store.AppendTransactions(tran); err != nil {
		return domain.Transaction{}, s.violation(ctx, op, err)
	}
	account.Credit(amount, now)

	s.commit(ctx, op, tran)
	return *tran, nil
}

// Withdraw 提款，不允許透支
//
// 參數:
//
//	ctx: 上下文
//	number: 帳號
//	amount: 金額，必須 > 0
//	description: 描述
//
// 回傳:
//
//	domain.Transaction: 產生的交易 (Amount 為負數)
//	error: InvalidArgument / NotFound / InactiveAccount / InsufficientFunds
func (s *LedgerService) Withdraw(ctx context.Context, number string, amount decimal.Decimal, description string) (domain.Transaction, error) {
	const op = "withdraw"
	if err := validateTarget(number, amount); err != nil {
		return domain.Transaction{}, s.reject(ctx, op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.activeAccount(number)
	if err != nil {
		return domain.Transaction{}, s.reject(ctx, op, err)
	}
	if err := account.EnsureFunds(amount); err != nil {
		return domain.Transaction{}, s.reject(ctx, op, err)
	}

	now := s.now()
	tran := s.newTransaction(uuid.New(), account, domain.KindWithdrawal, amount.Neg(),
		account.Balance.Sub(amount), now, description, domain.None[string]())
	if err := s.store.AppendTransactions(tran); err != nil {
		return domain.Transaction{}, s.violation(ctx, op, err)
	}
	if _, err := account.Debit(amount, now); err != nil {
		return domain.Transaction{}, s.violation(ctx, op, err)
	}

	s.commit(ctx, op, tran)
	return *tran, nil
}

// Transfer 轉帳，兩筆交易在同一個臨界區內寫入
//
// 檢查順序: 參數 → 同帳戶 → 金額 → 轉出帳戶 → 轉入帳戶 → 餘額，全部通過前不做任何異動。
//
// 參數:
//
//	ctx: 上下文
//	from: 轉出帳號
//	to: 轉入帳號
//	amount: 金額，必須 > 0
//	description: 描述 (兩腿共用)
//
// 回傳:
//
//	TransferResult: 扣款腿與入帳腿
//	error: InvalidArgument / NotFound / InactiveAccount / InsufficientFunds
func (s *LedgerService) Transfer(ctx context.Context, from, to string, amount decimal.Decimal, description string) (TransferResult, error) {
	const op = "transfer"
	if isBlank(from) || isBlank(to) {
		return TransferResult{}, s.reject(ctx, op, domain.NewError(domain.KindInvalidArgument, "from and to accounts are required"))
	}
	if from == to {
		return TransferResult{}, s.reject(ctx, op, domain.NewError(domain.KindInvalidArgument, "cannot transfer to the same account %s", from))
	}
	if !amount.IsPositive() {
		return TransferResult{}, s.reject(ctx, op, domain.NewError(domain.KindInvalidArgument, "amount must be positive, got %s", amount.String()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source, err := s.activeAccount(from)
	if err != nil {
		return TransferResult{}, s.reject(ctx, op, err)
	}
	destination, err := s.activeAccount(to)
	if err != nil {
		return TransferResult{}, s.reject(ctx, op, err)
	}
	if err := source.EnsureFunds(amount); err != nil {
		return TransferResult{}, s.reject(ctx, op, err)
	}

	// 兩腿共用 EventID，序號連續
	now := s.now()
	eventID := uuid.New()
	debit := s.newTransaction(eventID, source, domain.KindTransferOut, amount.Neg(),
		source.Balance.Sub(amount), now, description, domain.Some(to))
	credit := s.newTransaction(eventID, destination, domain.KindTransferIn, amount,
		destination.Balance.Add(amount), now, description, domain.Some(from))

	if err := s.store.AppendTransactions(debit, credit); err != nil {
		return TransferResult{}, s.violation(ctx, op, err)
	}
	if _, err := source.Debit(amount, now); err != nil {
		return TransferResult{}, s.violation(ctx, op, err)
	}
	destination.Credit(amount, now)

	s.commit(ctx, op, debit, credit)
	return TransferResult{Debit: *debit, Credit: *credit}, nil
}

// DeactivateAccount 停用帳戶 (Active → Inactive)，停用後只能查詢
func (s *LedgerService) DeactivateAccount(ctx context.Context, number string) (domain.Account, error) {
	const op = "deactivate_account"
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.store.GetAccount(number)
	if err != nil {
		return domain.Account{}, s.reject(ctx, op, err)
	}
	if err := account.Deactivate(); err != nil {
		return domain.Account{}, s.reject(ctx, op, err)
	}
	s.logger.InfoContext(ctx, "account deactivated", "account", number)
	return *account, nil
}

// GetBalance 取得帳戶餘額
func (s *LedgerService) GetBalance(ctx context.Context, number string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, err := s.store.GetAccount(number)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetAccount 取得帳戶快照
func (s *LedgerService) GetAccount(ctx context.Context, number string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, err := s.store.GetAccount(number)
	if err != nil {
		return domain.Account{}, err
	}
	return *account, nil
}

// ListAccounts 全部帳戶快照，依帳號排序
func (s *LedgerService) ListAccounts(ctx context.Context) []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0)
	for account := range s.store.Accounts() {
		out = append(out, *account)
	}
	return out
}

// GetHistory 帳戶交易紀錄，最新在前；帳戶不存在或沒有交易時回傳空 slice
func (s *LedgerService) GetHistory(ctx context.Context, number string) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, 0)
	for tran := range s.store.TransactionsFor(number) {
		out = append(out, *tran)
	}
	return out
}

// VerifyLedger 重播全部交易並與帳戶餘額比對
//
// 回傳:
//
//	AuditReport: 檢查結果摘要
//	error: 發現不一致時回傳 InternalInvariantViolation
func (s *LedgerService) VerifyLedger(ctx context.Context) (AuditReport, error) {
	const op = "verify_ledger"
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, err := Audit(values(s.store.Transactions()))
	if err != nil {
		return report, s.violation(ctx, op, err)
	}
	referenced := 0
	for account := range s.store.Accounts() {
		replayed, ok := report.Balances[account.Number]
		if ok {
			referenced++
		} else {
			replayed = decimal.Zero
		}
		if !replayed.Equal(account.Balance) {
			return report, s.violation(ctx, op, domain.NewError(domain.KindInternalInvariantViolation,
				"account %s balance %s does not match replayed %s", account.Number, account.Balance.String(), replayed.String()))
		}
		report.Accounts++
	}
	// 交易紀錄引用了 Store 裡不存在的帳戶
	if referenced != len(report.Balances) {
		return report, s.violation(ctx, op, domain.NewError(domain.KindInternalInvariantViolation,
			"log references %d accounts, only %d are registered", len(report.Balances), referenced))
	}
	report.CheckedAt = s.now()
	return report, nil
}

// activeAccount 取得可異動的帳戶
func (s *LedgerService) activeAccount(number string) (*domain.Account, error) {
	account, err := s.store.GetAccount(number)
	if err != nil {
		return nil, err
	}
	if err := account.EnsureActive(); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *LedgerService) newTransaction(eventID uuid.UUID, account *domain.Account, kind domain.TransactionKind,
	amount, balanceAfter decimal.Decimal, at time.Time, description string, counterpart domain.Optional[string],
) *domain.Transaction {
	return &domain.Transaction{
		ID:           s.seq.Next(),
		EventID:      eventID,
		Account:      account.Number,
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Timestamp:    at,
		Description:  description,
		Counterpart:  counterpart,
	}
}

// commit 交易已寫入 Store，通知 AuditSink (仍在鎖內，保持寫入順序)
func (s *LedgerService) commit(ctx context.Context, op string, trans ...*domain.Transaction) {
	for _, tran := range trans {
		s.logger.DebugContext(ctx, "transaction committed",
			"op", op,
			"id", tran.ID,
			"account", tran.Account,
			"kind", tran.Kind.String(),
			"amount", tran.Amount.String(),
			"balance_after", tran.BalanceAfter.String(),
		)
	}
	if s.sink == nil {
		return
	}
	records := make([]domain.Transaction, len(trans))
	for i, tran := range trans {
		records[i] = *tran
	}
	// 記帳已完成，AuditSink 失敗不回滾
	if err := s.sink.Record(ctx, records...); err != nil {
		s.logger.ErrorContext(ctx, "audit sink failed", "op", op, "error", err)
	}
}

// reject 業務規則拒絕
func (s *LedgerService) reject(ctx context.Context, op string, err error) error {
	s.logger.InfoContext(ctx, "operation rejected", "op", op, "kind", domain.KindOf(err).String(), "reason", err.Error())
	return err
}

// violation 核心保證被破壞
func (s *LedgerService) violation(ctx context.Context, op string, cause error) error {
	err := cause
	if domain.KindOf(cause) != domain.KindInternalInvariantViolation {
		err = domain.NewError(domain.KindInternalInvariantViolation, "%s: %v", op, cause)
	}
	s.logger.ErrorContext(ctx, "ledger invariant violated", "op", op, "error", err)
	return err
}

func validateTarget(number string, amount decimal.Decimal) error {
	if isBlank(number) {
		return domain.NewError(domain.KindInvalidArgument, "account number is required")
	}
	if !amount.IsPositive() {
		return domain.NewError(domain.KindInvalidArgument, "amount must be positive, got %s", amount.String())
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
