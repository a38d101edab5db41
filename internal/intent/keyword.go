package intent

import (
	"context"
	"strings"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/model"
)

// KeywordClassifier is a deterministic, offline Classifier covering the
// common phrasings. It serves as the fallback when no API key is
// configured and as the classifier in tests.
type KeywordClassifier struct{}

var (
	spendingWords = []string{"spend", "spent", "spending", "pay", "paid", "cost", "costs", "bought", "buy"}
	incomeWords   = []string{"income", "earn", "earned", "earnings", "salary", "wage", "wages"}
	greetingWords = []string{"hello", "hi", "hey", "morning", "evening", "greetings"}
)

// Classify never fails; a message matching no keyword set is
// IntentOther.
func (KeywordClassifier) Classify(_ context.Context, text string) (model.Intent, error) {
	words := tokenize(text)

	switch {
	case containsAny(words, spendingWords):
		return model.IntentSpending, nil
	case containsAny(words, incomeWords):
		return model.IntentIncome, nil
	case containsAny(words, greetingWords):
		return model.IntentGreeting, nil
	default:
		return model.IntentOther, nil
	}
}

// tokenize lowers the text and splits it into alphanumeric words.
func tokenize(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		words[w] = struct{}{}
	}
	return words
}

func containsAny(words map[string]struct{}, candidates []string) bool {
	for _, c := range candidates {
		if _, ok := words[c]; ok {
			return true
		}
	}
	return false
}
