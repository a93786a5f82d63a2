package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// QuoteValidityDays is how long a calculated quote stays honorable.
const QuoteValidityDays = 30

// RoundMoney rounds a monetary amount to 2 decimal places, half-up.
// shopspring's Round is half-away-from-zero, which is half-up for the
// non-negative amounts this engine produces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundFactor quantizes a multiplier chain to 4 decimal places.
func RoundFactor(d decimal.Decimal) decimal.Decimal {
	return d.Round(4)
}

// NewQuoteNumber builds a reference like "QTE-3F2A9C41". The prefix
// distinguishes product lines (QTE vehicle, HP health).
func NewQuoteNumber(prefix string) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read failing means the platform entropy source is gone;
		// a fixed reference is still a usable quote.
		return prefix + "-00000000"
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(hex.EncodeToString(b[:])))
}
