package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRupees parses a catalog cost string like "₹1,750" into a whole-rupee
// amount. Catalog entries priced "Contact Office" do not parse.
func ParseRupees(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	replacer := strings.NewReplacer(",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid rupee amount")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rupee amount %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative rupee amount %q", s)
	}
	return n, nil
}

// FormatRupees renders a whole-rupee amount with the currency glyph and
// thousand separators, matching the catalog's display style.
func FormatRupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹%s", sign, formatThousand(amount))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
