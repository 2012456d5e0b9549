package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders an amount as a USD string with thousands
// separators, e.g. 2480000 -> "$2,480,000.00".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}

	s := fmt.Sprintf("%.2f", math.Abs(amount))
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return fmt.Sprintf("%s$%s.%s", sign, strings.Join(groups, ","), fracPart)
}
