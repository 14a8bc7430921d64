package ledger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gorewood/idid/internal/revline"
)

// Scanner reconstructs entries by walking the log backward, most recent
// line first. It is a single-use cursor in the bufio.Scanner shape: call
// Scan until it returns false, read each match with Entry, then check
// Err. A finished Scanner cannot be restarted; open a fresh one to scan
// again.
//
// The log is assumed forward append-only with non-decreasing timestamps;
// entries from an out-of-order log are undefined.
type Scanner struct {
	lines  *revline.Scanner
	accept func(*Entry) bool

	// oldest is the early-termination bound: once a record's date falls
	// strictly before it the scan ends, skipping the rest of the file.
	oldest    time.Time
	hasOldest bool

	// pending carries the one piece of state the fold needs: the more
	// recent line whose timestamp will cease the next entry found.
	pending      *pendingRecord
	linesFromEnd int

	entry *Entry
	err   error
	done  bool

	closer io.Closer
}

type pendingRecord struct {
	when time.Time
	text string
}

// NewScanner creates a Scanner over src, which must be positioned at the
// start of the log. The accept predicate decides which reconstructed
// entries are produced; a nil predicate accepts everything. When
// hasOldest is true, records dated before oldest terminate the scan.
func NewScanner(src io.ReadSeeker, accept func(*Entry) bool, oldest time.Time, hasOldest bool) *Scanner {
	if accept == nil {
		accept = func(*Entry) bool { return true }
	}
	return &Scanner{
		lines:     revline.New(src),
		accept:    accept,
		oldest:    DateOf(oldest),
		hasOldest: hasOldest,
	}
}

// Pick creates a Scanner that yields entries whose begin date the filter
// contains, using the filter's oldest bound for early termination.
func Pick(src io.ReadSeeker, filter *DateFilter) *Scanner {
	oldest, bounded := filter.Oldest()
	accept := func(e *Entry) bool {
		return filter.Contains(DateOf(e.Begin))
	}
	return NewScanner(src, accept, oldest, bounded)
}

// Scan advances to the next accepted entry, resuming the reverse walk
// where the previous call suspended. It returns false at the start of
// the log, at the early-termination bound, or on error.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}

	for s.lines.Scan() {
		s.linesFromEnd++
		line := strings.TrimSpace(s.lines.Line())

		when, text, err := ParseRecord(line)
		if err != nil {
			// A corrupt line means the scan cannot safely continue;
			// report where it sits, counting from the end of the file.
			s.err = fmt.Errorf("record %d from end: %w", s.linesFromEnd, err)
			return false
		}

		// Older than the bound: nothing further back can match.
		if s.hasOldest && DateOf(when).Before(s.oldest) {
			s.done = true
			return false
		}

		// Fold this line with the more recent one: this line's
		// timestamp begins the interval the previous line described.
		var candidate *Entry
		if s.pending != nil {
			candidate = &Entry{Begin: when, Cease: s.pending.when, Text: s.pending.text}
		}

		// A session start describes no forward interval.
		if IsSessionStart(text) {
			s.pending = nil
		} else {
			s.pending = &pendingRecord{when: when, text: text}
		}

		if candidate != nil && s.accept(candidate) {
			s.entry = candidate
			return true
		}
	}

	if err := s.lines.Err(); err != nil {
		s.err = err
	}
	s.done = true
	return false
}

// Entry returns the entry produced by the most recent successful Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered during the scan. Reaching the
// start of the log or the early-termination bound is not an error.
func (s *Scanner) Err() error {
	return s.err
}

// Close releases the underlying source when the Scanner owns one.
// Scanners over plain readers make it a no-op.
func (s *Scanner) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
