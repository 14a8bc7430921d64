// Package revline reads text lines from a seekable stream in reverse
// order, last line first. It reads fixed-size chunks backward from the
// end of the stream so that only a constant amount of data is held in
// memory regardless of file size.
package revline

import (
	"bytes"
	"fmt"
	"io"
)

// chunkSize is how many bytes are read per backward seek.
const chunkSize = 4096

// Scanner yields lines from a stream in reverse order. The API mirrors
// bufio.Scanner: call Scan until it returns false, then check Err.
type Scanner struct {
	src io.ReadSeeker

	// size is the stream length recorded when scanning starts.
	size int64

	// offset is the position of the first byte not yet read backward.
	offset int64

	// carry holds bytes of a partially assembled line that continues
	// into the preceding chunk.
	carry []byte

	// pending are complete lines found in already-read chunks, in file
	// order; they are handed out back to front.
	pending [][]byte

	line    string
	err     error
	started bool
	done    bool
}

// New creates a Scanner positioned at the end of src. The stream must not
// be written to while scanning.
func New(src io.ReadSeeker) *Scanner {
	return &Scanner{src: src}
}

// Scan advances to the previous line in the stream. It returns false when
// the beginning of the stream is reached or an error occurs.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.started {
		if err := s.init(); err != nil {
			s.err = err
			return false
		}
	}

	for len(s.pending) == 0 {
		if s.done {
			return false
		}
		if err := s.readChunk(); err != nil {
			s.err = err
			return false
		}
	}

	last := len(s.pending) - 1
	s.line = string(s.pending[last])
	s.pending = s.pending[:last]
	return true
}

// Line returns the most recent line produced by Scan, without its
// terminating newline.
func (s *Scanner) Line() string {
	return s.line
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}

// init seeks to the end of the stream and records its size.
func (s *Scanner) init() error {
	size, err := s.src.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seeking to end: %w", err)
	}
	s.size = size
	s.offset = size
	s.started = true
	if size == 0 {
		s.done = true
	}
	return nil
}

// readChunk reads the next chunk backward and splits it into lines.
// Bytes before the first newline in the chunk are carried over; they
// belong to a line continuing in the preceding chunk.
func (s *Scanner) readChunk() error {
	n := int64(chunkSize)
	if s.offset < n {
		n = s.offset
	}
	s.offset -= n

	if _, err := s.src.Seek(s.offset, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to %d: %w", s.offset, err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.src, buf); err != nil {
		return fmt.Errorf("reading %d bytes at %d: %w", n, s.offset, err)
	}

	buf = append(buf, s.carry...)
	s.carry = nil

	parts := bytes.Split(buf, []byte{'\n'})
	if s.offset > 0 {
		// The first part may continue into the previous chunk.
		s.carry = parts[0]
		parts = parts[1:]
	}

	// A trailing newline at the very end of the stream produces one
	// empty final fragment, which is not a line.
	if s.offset+n == s.size && len(parts) > 0 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}

	for _, p := range parts {
		s.pending = append(s.pending, trimCR(p))
	}

	if s.offset == 0 {
		s.done = true
	}
	return nil
}

// trimCR drops a trailing carriage return, so CRLF logs scan cleanly.
func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}
