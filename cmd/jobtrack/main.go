package main

import (
	"github.com/joho/godotenv"

	"github.com/blockedby/jobtrack/internal/cli"
)

func main() {
	// optional .env next to the binary, real env still wins
	_ = godotenv.Load()

	cli.Execute()
}
