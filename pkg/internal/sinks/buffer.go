package sinks

import (
	"bytes"
	"strings"
	"sync"
)

// BufferSink collects records in memory. Used by tests and by callers that
// post-process output themselves.
type BufferSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewBufferSink returns an empty in-memory sink.
func NewBufferSink() *BufferSink { return &BufferSink{} }

// Write appends one record to the buffer.
func (s *BufferSink) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.buf.Write(p)
	return err
}

// Close is a no-op.
func (s *BufferSink) Close() error { return nil }

// Contents returns everything written so far.
func (s *BufferSink) Contents() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Lines returns the newline-separated records written so far.
func (s *BufferSink) Lines() []string {
	contents := strings.TrimRight(s.Contents(), "\n")
	if contents == "" {
		return nil
	}
	return strings.Split(contents, "\n")
}

// Reset discards everything written so far.
func (s *BufferSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Reset()
}
