package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// DefaultCurrencySymbol prefixes formatted prices when no symbol is configured.
const DefaultCurrencySymbol = "₹"

// Price is an amount in whole currency units.
type Price int64

// HasDigits reports whether s contains an ASCII digit, the only characters
// ParsePrice keeps.
func HasDigits(s string) bool {
	return strings.IndexFunc(s, isASCIIDigit) >= 0
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ParsePrice keeps only the ASCII digits of s and parses them as one number.
// Currency symbols, separators and any other text are discarded. Input with
// no digits, or a digit run too long for int64, parses as 0.
func ParsePrice(s string) Price {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return Price(v)
}

// FormatPrice renders p with the given currency symbol and comma separators.
func FormatPrice(p Price, symbol string) string {
	return symbol + humanize.Comma(int64(p))
}

// UnmarshalYAML accepts either a formatted string ("₹75,999") or a number.
func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("price at line %d: expected scalar", node.Line)
	}
	*p = ParsePrice(node.Value)
	return nil
}

// UnmarshalJSON accepts either a JSON string or a JSON number. Numbers go
// through ParsePrice as raw text like strings do, so a sign or decimal point
// is dropped: -5 reads as 5 and 75999.5 as 759995.
func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("price: %w", err)
		}
		*p = ParsePrice(s)
		return nil
	}
	*p = ParsePrice(trimmed)
	return nil
}
