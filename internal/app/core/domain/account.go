package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account 帳戶
//
// 餘額只能透過 Credit / Debit 異動，且呼叫端必須在同一個臨界區內寫入對應的交易紀錄。
type Account struct {
	Number         string              `json:"number"`
	HolderName     string              `json:"holder_name"`
	Balance        decimal.Decimal     `json:"balance"`
	Active         bool                `json:"active"`
	CreatedAt      time.Time           `json:"created_at"`
	LastActivityAt Optional[time.Time] `json:"last_activity_at"`
}

// NewAccount 建立餘額為 0 的啟用帳戶，初始資金由 initial funding 交易補上
func NewAccount(number, holderName string, createdAt time.Time) *Account {
	return &Account{
		Number:         number,
		HolderName:     holderName,
		Balance:        decimal.Zero,
		Active:         true,
		CreatedAt:      createdAt,
		LastActivityAt: None[time.Time](),
	}
}

// EnsureActive 停用帳戶不可再異動
func (a *Account) EnsureActive() error {
	if !a.Active {
		return NewError(KindInactiveAccount, "account %s is inactive", a.Number)
	}
	return nil
}

// EnsureFunds 檢查餘額是否足夠扣款，不允許透支
func (a *Account) EnsureFunds(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return NewError(KindInsufficientFunds, "account %s balance %s is less than %s",
			a.Number, a.Balance.String(), amount.String())
	}
	return nil
}

// Credit 入帳，回傳入帳後餘額
func (a *Account) Credit(amount decimal.Decimal, at time.Time) decimal.Decimal {
	a.Balance = a.Balance.Add(amount)
	a.LastActivityAt = Some(at)
	return a.Balance
}

// Debit 扣款，回傳扣款後餘額
func (a *Account) Debit(amount decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	if err := a.EnsureFunds(amount); err != nil {
		return a.Balance, err
	}
	a.Balance = a.Balance.Sub(amount)
	a.LastActivityAt = Some(at)
	return a.Balance, nil
}

// Deactivate 停用帳戶，歷史紀錄保留
func (a *Account) Deactivate() error {
	if err := a.EnsureActive(); err != nil {
		return err
	}
	a.Active = false
	return nil
}
