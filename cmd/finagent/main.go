package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/commands"
)

func main() {
	// Optional .env with GEMINI_API_KEY; absence is fine, the agent
	// falls back to offline intent matching.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
