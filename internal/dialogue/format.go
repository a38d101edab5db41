package dialogue

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatAmount renders a decimal as "1,234.56": two decimal places,
// comma thousands grouping. The "€" symbol stays in the reply template.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, ",") + "." + fracPart
}
