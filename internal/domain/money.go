package domain

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// Money columns are NUMERIC(10,2).
const (
	MoneyScale     = 2
	moneyPrecision = 10
)

var maxMoney = decimal.New(1, moneyPrecision-MoneyScale) // 10^8, exclusive

// ValidateMoney checks that v fits NUMERIC(10,2) without rounding.
func ValidateMoney(field string, v decimal.Decimal) error {
	if !v.Equal(v.Round(MoneyScale)) {
		return apperrors.NewInvalidValue(field+" must have at most 2 fraction digits",
			map[string]any{"field": field, "value": v.String()})
	}
	if v.Abs().GreaterThanOrEqual(maxMoney) {
		return apperrors.NewInvalidValue(field+" exceeds the supported range",
			map[string]any{"field": field, "value": v.String()})
	}
	return nil
}

// FormatMoney renders v with exactly two fraction digits.
func FormatMoney(v decimal.Decimal) string {
	return v.StringFixed(MoneyScale)
}
