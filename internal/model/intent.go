package model

import "strings"

// Intent is the coarse classification of a user message.
type Intent string

const (
	IntentSpending Intent = "spending"
	IntentIncome   Intent = "income"
	IntentGreeting Intent = "greeting"
	IntentOther    Intent = "other"
)

// ParseIntent normalizes a raw classifier label. Anything outside the
// known set maps to IntentOther, so unexpected model output can never
// break a dialogue turn.
func ParseIntent(raw string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentSpending:
		return IntentSpending
	case IntentIncome:
		return IntentIncome
	case IntentGreeting:
		return IntentGreeting
	default:
		return IntentOther
	}
}
