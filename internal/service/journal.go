package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Operation string

const (
	OperationOpen          Operation = "open"
	OperationClose         Operation = "close"
	OperationDeposit       Operation = "deposit"
	OperationWithdraw      Operation = "withdraw"
	OperationMonthlyUpdate Operation = "monthly_update"
)

const defaultJournalSize = 1000

// Entry is one teller operation as it was answered.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Operation Operation `json:"operation"`
	Kind      string    `json:"kind,omitempty"`
	Holder    string    `json:"holder,omitempty"`
	Message   string    `json:"message"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

// Journal keeps the most recent teller operations in memory. Older entries
// are dropped once size is reached.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	total   int
	logger  *slog.Logger
}

func NewJournal(size int, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		size = defaultJournalSize
	}

	return &Journal{
		entries: make([]Entry, 0, size),
		size:    size,
		logger:  logger,
	}
}

func (j *Journal) Record(ctx context.Context, op Operation, kind, holder, message string, success bool) Entry {
	entry := Entry{
		ID:        uuid.New(),
		Operation: op,
		Kind:      kind,
		Holder:    holder,
		Message:   message,
		Success:   success,
		CreatedAt: time.Now().UTC(),
	}

	j.mu.Lock()
	if len(j.entries) == j.size {
		copy(j.entries, j.entries[1:])
		j.entries = j.entries[:len(j.entries)-1]
	}
	j.entries = append(j.entries, entry)
	j.total++
	j.mu.Unlock()

	j.logger.DebugContext(ctx, "Journal entry recorded",
		slog.String("id", entry.ID.String()),
		slog.String("operation", string(op)),
		slog.Bool("success", success))

	return entry
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all
// retained entries.
func (j *Journal) Recent(limit int) []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	n := len(j.entries)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]Entry, 0, n)
	for i := len(j.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, j.entries[i])
	}
	return out
}

func (j *Journal) Shutdown(ctx context.Context) error {
	j.mu.Lock()
	total := j.total
	j.mu.Unlock()

	j.logger.InfoContext(ctx, "Journal shutdown complete", slog.Int("entries_recorded", total))
	return nil
}
