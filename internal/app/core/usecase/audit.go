package usecase

import (
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
)

// AuditReport 重播檢查結果
type AuditReport struct {
	Accounts     int                        `json:"accounts"`
	Transactions int                        `json:"transactions"`
	Transfers    int                        `json:"transfers"`
	LastID       uint64                     `json:"last_id"`
	Balances     map[string]decimal.Decimal `json:"balances"`
	CheckedAt    time.Time                  `json:"checked_at"`
}

// Audit 依寫入順序重播交易紀錄
//
// 檢查項目:
//
//	序號嚴格遞增
//	每筆交易的 BalanceAfter 等於該帳戶從 0 開始的累加
//	金額正負號與交易類型一致，只有轉帳腿帶 Counterpart
//	每次轉帳恰好一腿扣款、一腿入帳，金額相反、序號相鄰、互相引用
//
// 回傳的 AuditReport.Balances 為重播後各帳戶餘額；Accounts 由呼叫端填寫。
func Audit(trans iter.Seq[domain.Transaction]) (AuditReport, error) {
	report := AuditReport{Balances: make(map[string]decimal.Decimal)}
	legs := make(map[uuid.UUID][]domain.Transaction)
	var order []uuid.UUID

	for tran := range trans {
		if tran.ID <= report.LastID {
			return report, invariantf("transaction %d follows %d, ids must strictly increase", tran.ID, report.LastID)
		}
		report.LastID = tran.ID
		report.Transactions++

		if err := checkShape(tran); err != nil {
			return report, err
		}

		running := report.Balances[tran.Account].Add(tran.Amount)
		if !running.Equal(tran.BalanceAfter) {
			return report, invariantf("transaction %d on %s records balance %s, replay gives %s",
				tran.ID, tran.Account, tran.BalanceAfter.String(), running.String())
		}
		report.Balances[tran.Account] = running

		if tran.Kind.IsTransferLeg() {
			if _, seen := legs[tran.EventID]; !seen {
				order = append(order, tran.EventID)
			}
			legs[tran.EventID] = append(legs[tran.EventID], tran)
		}
	}

	for _, eventID := range order {
		if err := checkTransferPair(eventID, legs[eventID]); err != nil {
			return report, err
		}
		report.Transfers++
	}
	return report, nil
}

func checkShape(tran domain.Transaction) error {
	_, hasCounterpart := tran.Counterpart.Get()
	switch tran.Kind {
	case domain.KindDeposit, domain.KindTransferIn:
		if !tran.Amount.IsPositive() {
			return invariantf("transaction %d (%s) must credit, amount %s", tran.ID, tran.Kind, tran.Amount.String())
		}
	case domain.KindWithdrawal, domain.KindTransferOut:
		if !tran.Amount.IsNegative() {
			return invariantf("transaction %d (%s) must debit, amount %s", tran.ID, tran.Kind, tran.Amount.String())
		}
	default:
		return invariantf("transaction %d has unknown kind %s", tran.ID, tran.Kind)
	}
	if hasCounterpart != tran.Kind.IsTransferLeg() {
		return invariantf("transaction %d (%s) counterpart presence is wrong", tran.ID, tran.Kind)
	}
	return nil
}

func checkTransferPair(eventID uuid.UUID, legs []domain.Transaction) error {
	if len(legs) != 2 {
		return invariantf("transfer %s has %d legs", eventID, len(legs))
	}
	out, in := legs[0], legs[1]
	if out.Kind != domain.KindTransferOut || in.Kind != domain.KindTransferIn {
		return invariantf("transfer %s legs are %s, %s", eventID, out.Kind, in.Kind)
	}
	if in.ID != out.ID+1 {
		return invariantf("transfer %s legs %d and %d are not adjacent", eventID, out.ID, in.ID)
	}
	if !out.Amount.Neg().Equal(in.Amount) {
		return invariantf("transfer %s legs %s and %s do not balance", eventID, out.Amount.String(), in.Amount.String())
	}
	outPeer, _ := out.Counterpart.Get()
	inPeer, _ := in.Counterpart.Get()
	if outPeer != in.Account || inPeer != out.Account {
		return invariantf("transfer %s legs do not reference each other", eventID)
	}
	return nil
}

func invariantf(format string, args ...any) error {
	return domain.NewError(domain.KindInternalInvariantViolation, format, args...)
}

// values 將指標序列轉成值序列
func values[T any](seq iter.Seq[*T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range seq {
			if !yield(*p) {
				return
			}
		}
	}
}
