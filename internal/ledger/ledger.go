package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Ledger defines the interface for the called-raffle ledger to enable mocking
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Contains reports whether url has already been called
	Contains(url string) (bool, error)

	// Append records url as called. It re-checks membership under the lock
	// so concurrent appenders cannot duplicate an entry.
	Append(url string) error

	// Wipe removes every entry and returns how many were removed
	Wipe() (int, error)
}

// FileLedger implements Ledger as a flat text file, one URL per line
type FileLedger struct {
	mu   sync.Mutex
	path string
}

// NewFileLedger creates a file-backed ledger at path, creating parent
// directories as needed
func NewFileLedger(path string) (*FileLedger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}
	return &FileLedger{path: path}, nil
}

// Contains reports whether url has already been called
func (l *FileLedger) Contains(url string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read()
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry == url {
			return true, nil
		}
	}
	return false, nil
}

// Append records url as called. It re-checks membership under the lock
// so concurrent appenders cannot duplicate an entry.
func (l *FileLedger) Append(url string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry == url {
			return nil
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(url + "\n"); err != nil {
		return fmt.Errorf("failed to append to ledger: %w", err)
	}
	return nil
}

// Wipe removes every entry and returns how many were removed
func (l *FileLedger) Wipe() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read()
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(l.path, nil, 0o640); err != nil {
		return 0, fmt.Errorf("failed to wipe ledger: %w", err)
	}
	return len(entries), nil
}

// read returns the ledger entries. A missing file is an empty ledger.
// Callers must hold l.mu.
func (l *FileLedger) read() ([]string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}
