// Package money converts between platform minor-unit amounts and the PSP's
// decimal-string amounts without going through binary floating point.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

const (
	CentPrecision     = "centPrecision"
	UndefinedCurrency = "undefined"
)

// ToExternal formats (minor + surcharge) / 10^fractionDigits with exactly
// fractionDigits decimals.
func ToExternal(minor int64, fractionDigits int, currency string, surcharge int64) models.PSPAmount {
	d := decimal.New(minor+surcharge, -int32(fractionDigits))
	return models.PSPAmount{
		Currency: currency,
		Value:    d.StringFixed(int32(fractionDigits)),
	}
}

func FromMoney(m models.Money, surcharge int64) models.PSPAmount {
	return ToExternal(m.CentAmount, m.FractionDigits, m.CurrencyCode, surcharge)
}

// ToInternal parses a PSP amount. The fraction digits are taken from the
// string itself; positive values round up and the rest round down, so a
// refund or charge is never under-stated. A missing amount becomes zero.
func ToInternal(a models.PSPAmount) (models.Money, error) {
	value := strings.TrimSpace(a.Value)
	if value == "" {
		currency := a.Currency
		if currency == "" {
			currency = UndefinedCurrency
		}
		return models.Money{Type: CentPrecision, CurrencyCode: currency}, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return models.Money{}, fmt.Errorf("invalid amount value %q: %w", value, err)
	}

	fractionDigits := 0
	if _, frac, ok := strings.Cut(value, "."); ok {
		fractionDigits = len(frac)
	}

	scaled := d.Shift(int32(fractionDigits))
	if scaled.Sign() > 0 {
		scaled = scaled.Ceil()
	} else {
		scaled = scaled.Floor()
	}

	return models.Money{
		Type:           CentPrecision,
		CurrencyCode:   a.Currency,
		CentAmount:     scaled.IntPart(),
		FractionDigits: fractionDigits,
	}, nil
}
