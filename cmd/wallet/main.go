package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ryz-labs/wallet-ledger/internal/config"
	"github.com/ryz-labs/wallet-ledger/internal/ledger"
	"github.com/ryz-labs/wallet-ledger/internal/oplog"
	"github.com/ryz-labs/wallet-ledger/internal/terminal"
)

func main() {
	// A missing .env file is fine; the environment and defaults cover it.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := oplog.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init operation log: %v\n", err)
		os.Exit(1)
	}

	session := ledger.New()

	term := terminal.New(cfg, session, log, os.Stdin, os.Stdout)
	if err := term.Run(); err != nil {
		log.Event("session aborted: " + err.Error())
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
}
