// Package intent classifies user messages into the four coarse intents
// the dialogue controller routes on.
package intent

import (
	"context"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/model"
)

// Classifier decides what a user message is asking for. Implementations
// must return one of the model.Intent constants; callers substitute
// model.IntentOther when an error is returned so a failed external call
// degrades to the fallback reply instead of breaking the turn.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.Intent, error)
}
