package intent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/model"
)

const (
	// DefaultModel is the default Gemini model used for classification.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single classification call.
	DefaultTimeout = 15 * time.Second
)

const classifyPrompt = `Classify intent. Reply with ONE word only:

- spending
- income
- greeting
- other

Question:
%s
`

// GeminiClassifier classifies messages with a single Gemini text call
// per message.
type GeminiClassifier struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

// NewGemini creates a GeminiClassifier. Empty modelName or zero timeout
// fall back to the defaults.
func NewGemini(ctx context.Context, apiKey, modelName string, timeout time.Duration, log zerolog.Logger) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &GeminiClassifier{
		client:  client,
		model:   modelName,
		timeout: timeout,
		log:     log,
	}, nil
}

// Classify sends the fixed one-word instruction prompt to the model.
// The response is trimmed and lower-cased; anything outside the label
// set maps to IntentOther.
func (c *GeminiClassifier) Classify(ctx context.Context, text string) (model.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(classifyPrompt, text)},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return model.IntentOther, fmt.Errorf("generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return model.IntentOther, errors.New("empty response from model")
	}

	label := model.ParseIntent(raw)
	c.log.Debug().Str("raw", raw).Str("intent", string(label)).Msg("classified intent")
	return label, nil
}
