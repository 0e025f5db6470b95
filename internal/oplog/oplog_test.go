package oplog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryz-labs/wallet-ledger/internal/ledger"
)

func TestNewCreatesSessionLogFile(t *testing.T) {
	dir := t.TempDir()

	log, err := New(dir, "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(log.Path()), "terminal_") {
		t.Fatalf("unexpected log file name: %s", log.Path())
	}

	log.Event("session started")
	log.Operation(ledger.Deposit, "wallet_1", 100, 100, nil)
	log.Operation(ledger.Withdrawal, "wallet_1", 500, 0, ledger.ErrInsufficientFunds)

	data, err := os.ReadFile(log.Path())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "session started") {
		t.Fatalf("missing session event in log: %s", out)
	}
	if !strings.Contains(out, "operation accepted") || !strings.Contains(out, "kind=Deposit") {
		t.Fatalf("missing accepted operation in log: %s", out)
	}
	if !strings.Contains(out, "operation rejected") || !strings.Contains(out, "insufficient funds") {
		t.Fatalf("missing rejected operation in log: %s", out)
	}
}

func TestNewCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	log, err := New(dir, "not-a-level")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if _, err := os.Stat(log.Path()); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestDiscardLoggerIsSafe(t *testing.T) {
	log := Discard()
	log.Event("ignored")
	log.Operation(ledger.Deposit, "wallet_1", 1, 1, nil)
	if log.Path() != "" {
		t.Fatalf("discard logger should have no path, got %s", log.Path())
	}
}

func TestWriteHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	lines := []string{
		"Deposit of 100 to wallet_1 | Running balance: 100",
		"Withdrawal of 30 to wallet_1 | Running balance: 70",
	}

	if err := WriteHistory(path, lines); err != nil {
		t.Fatalf("write history: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	want := strings.Join(lines, "\n") + "\n"
	if string(data) != want {
		t.Fatalf("unexpected history content:\n%s", data)
	}
}

func TestWriteHistoryEmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	if err := WriteHistory(path, nil); err != nil {
		t.Fatalf("write history: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty export, got %q", data)
	}
}
