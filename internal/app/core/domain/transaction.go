package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitialFundingDescription 開戶時初始資金交易的描述
const InitialFundingDescription = "initial funding"

// TransactionKind 交易類型
type TransactionKind uint8

const (
	// 存款 (含開戶初始資金)
	KindDeposit TransactionKind = 1
	// 提款
	KindWithdrawal TransactionKind = 2
	// 轉帳扣款腿
	KindTransferOut TransactionKind = 3
	// 轉帳入帳腿
	KindTransferIn TransactionKind = 4
)

var kindNames = map[TransactionKind]string{
	KindDeposit:     "deposit",
	KindWithdrawal:  "withdrawal",
	KindTransferOut: "transfer_out",
	KindTransferIn:  "transfer_in",
}

func (k TransactionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// IsTransferLeg 是否為轉帳的其中一腿
func (k TransactionKind) IsTransferLeg() bool {
	return k == KindTransferOut || k == KindTransferIn
}

func (k TransactionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *TransactionKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseTransactionKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseTransactionKind 字串轉交易類型
func ParseTransactionKind(name string) (TransactionKind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown transaction kind %q", name)
}

// Transaction 交易紀錄，建立後不可修改
//
// Amount 有號：入帳為正、扣款為負。BalanceAfter 為本筆交易後該帳戶的餘額。
type Transaction struct {
	// ID: 全局遞增序號，即寫入順序
	ID uint64 `json:"id"`
	// EventID: 同一次操作共用，轉帳兩腿相同
	EventID      uuid.UUID        `json:"event_id"`
	Account      string           `json:"account"`
	Kind         TransactionKind  `json:"kind"`
	Amount       decimal.Decimal  `json:"amount"`
	BalanceAfter decimal.Decimal  `json:"balance_after"`
	Timestamp    time.Time        `json:"timestamp"`
	Description  string           `json:"description"`
	Counterpart  Optional[string] `json:"counterpart"`
}

// IsCredit 是否為入帳
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
