package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/config"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/dialogue"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/importer"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/intent"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/ledger"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/model"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/rules"
)

// loadRules returns the configured rule table, or the built-in table
// when none is configured or the file does not exist yet.
func loadRules(cfg *config.Config) (*rules.Table, error) {
	if cfg.Ledger.Rules == "" {
		return rules.Default(), nil
	}
	if _, err := os.Stat(cfg.Ledger.Rules); errors.Is(err, fs.ErrNotExist) {
		return rules.Default(), nil
	}
	return rules.Load(cfg.Ledger.Rules)
}

// loadLedger imports the configured CSV file, or every CSV in the data
// directory, and builds the categorized in-memory ledger.
func loadLedger(cfg *config.Config) (*ledger.Ledger, error) {
	table, err := loadRules(cfg)
	if err != nil {
		return nil, err
	}

	parser := importer.DefaultRegistry().Get(cfg.Ledger.Format)
	if parser == nil {
		return nil, fmt.Errorf("unknown ledger format %q", cfg.Ledger.Format)
	}

	var txns []model.Transaction
	if cfg.Ledger.Path != "" {
		txns, err = importer.ParseFile(cfg.Ledger.Path, parser)
		if err != nil {
			return nil, err
		}
	} else {
		files, err := importer.Scan(cfg.Ledger.DataDir)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no CSV files found in %s", cfg.Ledger.DataDir)
		}
		for _, f := range files {
			rows, err := importer.ParseFile(f.Path, parser)
			if err != nil {
				return nil, err
			}
			txns = append(txns, rows...)
		}
	}

	return ledger.New(txns, table), nil
}

// newClassifier builds the Gemini classifier when an API key is
// available and degrades to offline keyword matching otherwise, so the
// agent always answers.
func newClassifier(ctx context.Context, cfg *config.Config, log zerolog.Logger) intent.Classifier {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, using offline keyword intent matching")
		return intent.KeywordClassifier{}
	}

	c, err := intent.NewGemini(ctx, key, cfg.Model.Name, cfg.Model.Timeout(), log)
	if err != nil {
		log.Warn().Err(err).Msg("gemini client unavailable, using offline keyword intent matching")
		return intent.KeywordClassifier{}
	}
	return c
}

// newSession wires ledger, classifier and options into a fresh session.
func newSession(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*dialogue.Session, error) {
	l, err := loadLedger(cfg)
	if err != nil {
		return nil, err
	}

	sess := dialogue.NewSession(l, newClassifier(ctx, cfg, log), dialogue.Options{
		UserName:      cfg.User.Name,
		ReferenceYear: cfg.Ledger.ReferenceYear,
		Logger:        log,
	})
	log.Debug().Str("session_id", sess.ID.String()).Int("transactions", len(l.Transactions())).Msg("session ready")
	return sess, nil
}
