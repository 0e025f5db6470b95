// Package terminal implements the interactive menu loop. It owns no business
// rules: every proposed movement goes through the session ledger, which
// accepts or rejects it, and the outcome is shown to the user and reported to
// the operation log.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ryz-labs/wallet-ledger/internal/config"
	"github.com/ryz-labs/wallet-ledger/internal/ledger"
	"github.com/ryz-labs/wallet-ledger/internal/oplog"
)

// Terminal drives one interactive session over a single ledger.
type Terminal struct {
	cfg    config.Config
	ledger *ledger.Ledger
	log    *oplog.Logger
	in     *bufio.Scanner
	out    io.Writer
}

// New builds a terminal bound to the given streams.
func New(cfg config.Config, led *ledger.Ledger, log *oplog.Logger, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		cfg:    cfg,
		ledger: led,
		log:    log,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run executes the menu loop until the user exits or input is exhausted.
// A rejected operation is a normal outcome: it is presented and the loop
// continues. Only input stream failures terminate the session with an error.
func (t *Terminal) Run() error {
	fmt.Fprintf(t.out, "Welcome to %s!\n", t.cfg.AppName)
	t.log.Event("session started")

	for {
		exit, err := t.menu()
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.log.Event("input closed, ending session")
				return nil
			}
			return err
		}
		if exit {
			t.log.Event("session ended")
			fmt.Fprintf(t.out, "Thank you for using %s!\n", t.cfg.AppName)
			return nil
		}
	}
}

func (t *Terminal) menu() (bool, error) {
	fmt.Fprint(t.out, "\nPlease select an option:\n"+
		"1. Check Balance\n"+
		"2. Deposit\n"+
		"3. Withdraw\n"+
		"4. View Transaction History\n"+
		"5. Export History\n"+
		"6. Exit\n"+
		"\nEnter your choice (1-6): ")

	choice, err := t.readLine()
	if err != nil {
		return false, err
	}

	switch choice {
	case "1":
		fmt.Fprintf(t.out, "Current balance: %d\n", t.ledger.Balance())
	case "2":
		return false, t.movement(ledger.Deposit)
	case "3":
		return false, t.movement(ledger.Withdrawal)
	case "4":
		t.history()
	case "5":
		t.export()
	case "6":
		return true, nil
	default:
		fmt.Fprintln(t.out, "Invalid choice. Please try again.")
	}

	return false, nil
}

func (t *Terminal) movement(kind ledger.Kind) error {
	address, err := t.prompt("Enter wallet address: ")
	if err != nil {
		return err
	}
	if address == "" {
		address = t.cfg.Address
	}

	raw, err := t.prompt("Enter amount: ")
	if err != nil {
		return err
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(t.out, "Invalid amount. Please enter a valid number.")
		return nil
	}

	balance, err := t.ledger.Apply(kind, address, amount)
	t.log.Operation(kind, address, amount, balance, err)
	if err != nil {
		fmt.Fprintf(t.out, "Error: %v\n", err)
		return nil
	}

	fmt.Fprintf(t.out, "%s of %d accepted. New balance: %d\n", kind, amount, balance)
	return nil
}

func (t *Terminal) history() {
	lines := t.ledger.History()
	if len(lines) == 0 {
		fmt.Fprintln(t.out, "No transactions recorded this session.")
		return
	}
	fmt.Fprintln(t.out, "Transaction history:")
	for _, line := range lines {
		fmt.Fprintln(t.out, line)
	}
}

func (t *Terminal) export() {
	if err := oplog.WriteHistory(t.cfg.HistoryFile, t.ledger.History()); err != nil {
		fmt.Fprintf(t.out, "Error exporting history: %v\n", err)
		return
	}
	t.log.Event("history exported to " + t.cfg.HistoryFile)
	fmt.Fprintf(t.out, "History written to %s\n", t.cfg.HistoryFile)
}

func (t *Terminal) prompt(label string) (string, error) {
	fmt.Fprint(t.out, label)
	return t.readLine()
}

func (t *Terminal) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}
