package memory

import (
	"iter"
	"slices"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
)

// Store 是記憶體版的帳本儲存層
//
// 結構:
//
//	accounts: 帳號 → 帳戶
//	log: 全部交易，只附加不修改 (寫入順序 = 建立順序 = 稽核順序)
//	byAccount: 帳號 → 該帳戶交易在 log 中的位置
//	ids: 已使用的交易序號
//
// Store 不加鎖，由 usecase.LedgerService 負責互斥。
type Store struct {
	accounts  map[string]*domain.Account
	log       []*domain.Transaction
	byAccount map[string][]int
	ids       map[uint64]struct{}
}

// NewStore 建立空的 Store
func NewStore() *Store {
	return &Store{
		accounts:  make(map[string]*domain.Account),
		log:       make([]*domain.Transaction, 0, 1024),
		byAccount: make(map[string][]int),
		ids:       make(map[uint64]struct{}),
	}
}

// InsertAccount 新增帳戶，連同開戶交易一起寫入
//
// 參數:
//
//	account: 帳戶，之後由 Store 持有
//	funding: 開戶交易 (可為空)
//
// 回傳:
//
//	error: 帳號已存在時回傳 domain.ErrDuplicateAccount；序號重複回傳 InternalInvariantViolation。
//	失敗時帳戶與交易都不寫入。
func (s *Store) InsertAccount(account *domain.Account, funding ...*domain.Transaction) error {
	if _, ok := s.accounts[account.Number]; ok {
		return domain.NewError(domain.KindDuplicateAccount, "account %s already exists", account.Number)
	}
	if err := s.checkIDs(funding); err != nil {
		return err
	}
	s.accounts[account.Number] = account
	s.append(funding)
	return nil
}

// GetAccount 取得帳戶
//
// 回傳:
//
//	*domain.Account: Store 內部實例，只能在臨界區內修改
//	error: 不存在時回傳 domain.ErrNotFound
func (s *Store) GetAccount(number string) (*domain.Account, error) {
	account, ok := s.accounts[number]
	if !ok {
		return nil, domain.NewError(domain.KindNotFound, "account %s not found", number)
	}
	return account, nil
}

// AppendTransactions 附加交易紀錄
//
// 先檢查全部序號，任何一筆重複就整批不寫入。
//
// 回傳:
//
//	error: 序號重複時回傳 InternalInvariantViolation
func (s *Store) AppendTransactions(trans ...*domain.Transaction) error {
	if err := s.checkIDs(trans); err != nil {
		return err
	}
	s.append(trans)
	return nil
}

func (s *Store) checkIDs(trans []*domain.Transaction) error {
	batch := make(map[uint64]struct{}, len(trans))
	for _, tran := range trans {
		if _, used := s.ids[tran.ID]; used {
			return domain.NewError(domain.KindInternalInvariantViolation, "transaction id %d already recorded", tran.ID)
		}
		if _, dup := batch[tran.ID]; dup {
			return domain.NewError(domain.KindInternalInvariantViolation, "transaction id %d repeated in batch", tran.ID)
		}
		batch[tran.ID] = struct{}{}
	}
	return nil
}

func (s *Store) append(trans []*domain.Transaction) {
	for _, tran := range trans {
		s.ids[tran.ID] = struct{}{}
		s.byAccount[tran.Account] = append(s.byAccount[tran.Account], len(s.log))
		s.log = append(s.log, tran)
	}
}

// TransactionsFor 某帳戶的交易，最新在前
func (s *Store) TransactionsFor(number string) iter.Seq[*domain.Transaction] {
	return func(yield func(*domain.Transaction) bool) {
		positions := s.byAccount[number]
		for i := len(positions) - 1; i >= 0; i-- {
			if !yield(s.log[positions[i]]) {
				return
			}
		}
	}
}

// Transactions 全部交易，依寫入順序
func (s *Store) Transactions() iter.Seq[*domain.Transaction] {
	return func(yield func(*domain.Transaction) bool) {
		for _, tran := range s.log {
			if !yield(tran) {
				return
			}
		}
	}
}

// Accounts 全部帳戶，依帳號排序
func (s *Store) Accounts() iter.Seq[*domain.Account] {
	return func(yield func(*domain.Account) bool) {
		numbers := make([]string, 0, len(s.accounts))
		for number := range s.accounts {
			numbers = append(numbers, number)
		}
		slices.Sort(numbers)
		for _, number := range numbers {
			if !yield(s.accounts[number]) {
				return
			}
		}
	}
}

// Len 交易筆數
func (s *Store) Len() int {
	return len(s.log)
}

var _ usecase.Store = (*Store)(nil)
