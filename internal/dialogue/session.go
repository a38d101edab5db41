// Package dialogue implements the slot-filling conversation over the
// ledger: one pending month slot at most, two states, one reply per
// user message.
package dialogue

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/extract"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/intent"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/ledger"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/model"
)

// DefaultReferenceYear is the year month names resolve to when the
// config does not override it.
const DefaultReferenceYear = 2025

// Options configures a session.
type Options struct {
	UserName      string // name used in replies
	ReferenceYear int    // year month names resolve to; 0 = DefaultReferenceYear
	Logger        zerolog.Logger
}

// pendingSlot records that a spending question supplied a month and is
// still waiting for a category.
type pendingSlot struct {
	Month string
}

// Session holds the state of one conversation: the transcript, the
// optional pending slot and the collaborators every turn needs. It is
// not safe for concurrent use; each conversation owns its own Session.
type Session struct {
	ID uuid.UUID

	ledger     *ledger.Ledger
	classifier intent.Classifier
	userName   string
	year       int
	log        zerolog.Logger

	history []model.ConversationTurn
	pending *pendingSlot
}

// NewSession creates a session with the welcome message already on the
// transcript.
func NewSession(l *ledger.Ledger, c intent.Classifier, opts Options) *Session {
	if opts.UserName == "" {
		opts.UserName = "there"
	}
	if opts.ReferenceYear == 0 {
		opts.ReferenceYear = DefaultReferenceYear
	}

	s := &Session{
		ID:         uuid.New(),
		ledger:     l,
		classifier: c,
		userName:   opts.UserName,
		year:       opts.ReferenceYear,
		log:        opts.Logger,
	}
	s.history = append(s.history, model.ConversationTurn{
		Role: model.RoleAssistant,
		Text: s.welcome(),
	})
	return s
}

// History returns the transcript, welcome message included.
func (s *Session) History() []model.ConversationTurn {
	return s.history
}

// Welcome returns the one-time session opening message.
func (s *Session) Welcome() string {
	return s.history[0].Text
}

// Respond processes one user message and returns the reply. The user
// turn and the reply are appended to the transcript in that order.
// Every branch ends in a reply; nothing a user types is an error.
func (s *Session) Respond(ctx context.Context, text string) string {
	var reply string
	if s.pending != nil {
		reply = s.respondPending(text)
	} else {
		reply = s.respondNew(ctx, text)
	}

	s.history = append(s.history,
		model.ConversationTurn{Role: model.RoleUser, Text: text},
		model.ConversationTurn{Role: model.RoleAssistant, Text: reply},
	)
	return reply
}

// respondPending handles a turn while a category is being solicited.
// Only the category extractor runs: the stored month is reused, intent
// is not re-classified, and the only way out of this state is a
// successful category match.
func (s *Session) respondPending(text string) string {
	category, ok := extract.Category(text, s.ledger.Categories())
	if !ok {
		return "I still need the category 😊\nFor example: Grocery, Rent, Amazon, Transport."
	}

	month := s.pending.Month
	amount := s.ledger.SumByCategoryAndMonth(category, month)
	s.pending = nil

	return fmt.Sprintf(
		"Alright %s 😊\n\nIn **%s**, you spent **€%s** on **%s**.\n\nIf you want to check something else, just ask 👍",
		s.userName, month, formatAmount(amount.Abs()), category,
	)
}

// respondNew handles a turn with no pending slot: classify, extract,
// route.
func (s *Session) respondNew(ctx context.Context, text string) string {
	in, err := s.classifier.Classify(ctx, text)
	if err != nil {
		// A failed model call degrades to the fallback reply.
		s.log.Warn().Err(err).Msg("intent classification failed")
		in = model.IntentOther
	}

	month, hasMonth := extract.Month(text, s.year)
	category, hasCategory := extract.Category(text, s.ledger.Categories())

	switch in {
	case model.IntentGreeting:
		return fmt.Sprintf("Hi %s 👋\n\nHow can I help you today?", s.userName)

	case model.IntentIncome:
		// Income questions never persist a slot.
		if !hasMonth {
			return "Sure 😊\n\nWhich month are you asking about?\nFor example: March, May, November."
		}
		amount := s.ledger.SumIncome(month)
		return fmt.Sprintf(
			"Alright %s 😊\n\nIn **%s**, you earned **€%s**.\n\nWould you like to check another month?",
			s.userName, month, formatAmount(amount),
		)

	case model.IntentSpending:
		switch {
		case hasMonth && hasCategory:
			amount := s.ledger.SumByCategoryAndMonth(category, month)
			return fmt.Sprintf(
				"Alright %s 😊\n\nIn **%s**, you spent **€%s** on **%s**.\n\nWould you like to check another month or category?",
				s.userName, month, formatAmount(amount.Abs()), category,
			)
		case hasMonth:
			s.pending = &pendingSlot{Month: month}
			return "Got it 👍\n\nWhich category are you asking about?\nFor example: Grocery, Rent, Amazon, Transport."
		default:
			// No month: a category mention alone is discarded.
			return fmt.Sprintf("Sure 😊\n\nWhich month are you asking about?\nFor example: May, November, December %d.", s.year)
		}

	default:
		return "I didn't fully understand that yet 🤔\n\nYou can ask about your spending or income.\nFor example: *groceries in May* or *income in March*."
	}
}

func (s *Session) welcome() string {
	return fmt.Sprintf(
		"Hello %s 👋\n\nI'm your personal finance assistant.\n\nAsk me anything about your spending whenever you're ready.",
		s.userName,
	)
}
