package ledger

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gorewood/idid/internal/revline"
)

// ErrEmptyLog is returned when an operation needs at least one record
// and the log has none.
var ErrEmptyLog = errors.New("log has no records")

// TSVStore reads and appends the flat accomplishment log. The file is
// opened read-only for scanning and append-only for writing; no locking
// is performed, so a single active process is assumed.
type TSVStore struct {
	path string
}

// NewTSVStore creates a store over the log at path. The file is not
// touched until an operation needs it.
func NewTSVStore(path string) *TSVStore {
	return &TSVStore{path: path}
}

// Path returns the log file path.
func (s *TSVStore) Path() string {
	return s.path
}

// Append writes one record to the end of the log, creating the file if
// needed.
func (s *TSVStore) Append(when time.Time, text string) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log for append: %w", err)
	}
	defer f.Close() //nolint:errcheck // append error below is the one that matters

	if _, err := f.WriteString(FormatRecord(when, text)); err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	return nil
}

// AppendStart writes a session-start marker record.
func (s *TSVStore) AppendStart(when time.Time) error {
	return s.Append(when, StartMarker)
}

// LastRecord returns the timestamp and text of the final record.
// Returns ErrEmptyLog when the log has no lines.
func (s *TSVStore) LastRecord() (when time.Time, text string, err error) {
	lines, err := s.TailLines(1)
	if err != nil {
		return time.Time{}, "", err
	}
	if len(lines) == 0 {
		return time.Time{}, "", ErrEmptyLog
	}
	return ParseRecord(lines[0])
}

// TailLines returns up to n raw lines from the end of the log, most
// recent first.
func (s *TSVStore) TailLines(n int) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	var lines []string
	rev := revline.New(f)
	for len(lines) < n && rev.Scan() {
		lines = append(lines, rev.Line())
	}
	if err := rev.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Pick opens the log and returns a Scanner over entries the filter
// contains. The caller must Close the Scanner to release the file.
func (s *TSVStore) Pick(filter *DateFilter) (*Scanner, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	scanner := Pick(f, filter)
	scanner.closer = f
	return scanner, nil
}
