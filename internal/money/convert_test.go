package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

func TestToExternal(t *testing.T) {
	tests := []struct {
		name      string
		minor     int64
		digits    int
		surcharge int64
		want      string
	}{
		{"two digits", 1000, 2, 0, "10.00"},
		{"one cent", 1, 2, 0, "0.01"},
		{"zero digits", 1000, 0, 0, "1000"},
		{"three digits", 12345, 3, 0, "12.345"},
		{"surcharge", 1000, 2, 295, "12.95"},
		{"zero", 0, 2, 0, "0.00"},
		{"negative", -1050, 2, 0, "-10.50"},
		{"large", 99999999999, 2, 0, "999999999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToExternal(tt.minor, tt.digits, "EUR", tt.surcharge)
			assert.Equal(t, models.PSPAmount{Currency: "EUR", Value: tt.want}, got)
		})
	}
}

func TestToInternal(t *testing.T) {
	tests := []struct {
		name   string
		in     models.PSPAmount
		want   models.Money
		hasErr bool
	}{
		{
			name: "two digits",
			in:   models.PSPAmount{Currency: "EUR", Value: "10.00"},
			want: models.Money{Type: CentPrecision, CurrencyCode: "EUR", CentAmount: 1000, FractionDigits: 2},
		},
		{
			name: "no decimal point",
			in:   models.PSPAmount{Currency: "JPY", Value: "1500"},
			want: models.Money{Type: CentPrecision, CurrencyCode: "JPY", CentAmount: 1500, FractionDigits: 0},
		},
		{
			name: "three digits",
			in:   models.PSPAmount{Currency: "KWD", Value: "1.005"},
			want: models.Money{Type: CentPrecision, CurrencyCode: "KWD", CentAmount: 1005, FractionDigits: 3},
		},
		{
			name: "negative",
			in:   models.PSPAmount{Currency: "EUR", Value: "-0.29"},
			want: models.Money{Type: CentPrecision, CurrencyCode: "EUR", CentAmount: -29, FractionDigits: 2},
		},
		{
			// 0.29 * 100 and 1.15 * 100 drift in float64; the decimal path must not.
			name: "float drift candidate",
			in:   models.PSPAmount{Currency: "EUR", Value: "1.15"},
			want: models.Money{Type: CentPrecision, CurrencyCode: "EUR", CentAmount: 115, FractionDigits: 2},
		},
		{
			name: "missing amount",
			in:   models.PSPAmount{},
			want: models.Money{Type: CentPrecision, CurrencyCode: UndefinedCurrency},
		},
		{
			name: "missing value keeps currency",
			in:   models.PSPAmount{Currency: "EUR"},
			want: models.Money{Type: CentPrecision, CurrencyCode: "EUR"},
		},
		{
			name:   "garbage",
			in:     models.PSPAmount{Currency: "EUR", Value: "ten"},
			hasErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInternal(tt.in)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Exact decimal parsing leaves no sub-unit remainder, so the asymmetric
// rounding never adjusts a formatted amount: 1 cent at 2 digits is "0.01"
// and comes back as exactly 1.
func TestRoundTrip(t *testing.T) {
	amounts := []int64{0, 1, 7, 29, 99, 100, 115, 1000, 1999, 123456789, -1, -29, -1000}
	for _, digits := range []int{0, 2, 3} {
		for _, a := range amounts {
			ext := ToExternal(a, digits, "EUR", 0)
			got, err := ToInternal(ext)
			require.NoError(t, err)
			assert.Equal(t, a, got.CentAmount, "amount %d digits %d via %q", a, digits, ext.Value)
			assert.Equal(t, digits, got.FractionDigits)
			assert.Equal(t, "EUR", got.CurrencyCode)
		}
	}
}

func TestFromMoney(t *testing.T) {
	m := models.Money{CurrencyCode: "EUR", CentAmount: 1000, FractionDigits: 2}
	assert.Equal(t, models.PSPAmount{Currency: "EUR", Value: "10.00"}, FromMoney(m, 0))
}
