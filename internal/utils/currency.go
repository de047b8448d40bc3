package utils

import (
	"fmt"
	"strconv"
)

// FormatCurrencyBRL renders an amount of cents as Brazilian real,
// e.g. 123456 -> "R$ 1.234,56". Thousands are separated with dots and
// the decimal separator is a comma, matching pt-BR formatting.
func FormatCurrencyBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped, frac)
}
