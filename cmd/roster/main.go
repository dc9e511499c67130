package main

import (
	"github.com/Amund211/roster/internal/cli"
	"github.com/joho/godotenv"
	_ "golang.org/x/crypto/x509roots/fallback"
)

func main() {
	// Flags fall back to ROSTER_* values from .env when present
	_ = godotenv.Load()

	cli.Execute()
}
