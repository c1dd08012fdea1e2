package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount 解析十進位字串金額，空字串視為 0
//
// 只檢查格式，正負由各操作自行判斷。
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewError(KindInvalidArgument, "invalid amount %q", s)
	}
	return amount, nil
}
