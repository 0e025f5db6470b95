package ledger

import "fmt"

// Entries returns a copy of the accepted entries in insertion order. The
// caller may hold or mutate the returned slice freely.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// History renders one line per accepted entry, in insertion order, with the
// running balance after each movement. An empty ledger yields an empty slice.
// The view is recomputed from current state on every call and never mutates
// the ledger.
func (l *Ledger) History() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lines := make([]string, 0, len(l.entries))
	var running int64
	for _, e := range l.entries {
		switch e.Kind {
		case Deposit:
			running += e.Amount
		case Withdrawal:
			running -= e.Amount
		}
		lines = append(lines, fmt.Sprintf("%s | Running balance: %d", e, running))
	}
	return lines
}
