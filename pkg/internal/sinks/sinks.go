// Package sinks provides destinations for rendered event records. Every sink
// satisfies the single-writer discipline the engine requires: one Write call
// carries one complete record and concurrent writers are serialized so record
// bytes never interleave.
package sinks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/joeydtaylor/tracewire/pkg/internal/types"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// WriteError reports a sink that rejected or failed a write. The engine does
// not retry or buffer; the caller of the emit path decides whether to drop
// the record or escalate.
type WriteError struct {
	Sink string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("sink %s write failed: %v", e.Sink, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// writerSink serializes writes to an io.Writer behind a mutex. The critical
// section covers exactly one record write.
type writerSink struct {
	mu     sync.Mutex
	name   string
	writer io.Writer
	closer io.Closer
}

func (s *writerSink) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.writer.Write(p); err != nil {
		return &WriteError{Sink: s.name, Err: err}
	}
	return nil
}

func (s *writerSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// NewWriterSink wraps an arbitrary io.Writer as a sink. If the writer also
// implements io.Closer it is closed by Close.
func NewWriterSink(name string, w io.Writer) types.Sink {
	s := &writerSink{name: name, writer: w}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// NewStdoutSink returns a sink writing to standard output. The descriptor is
// wrapped with zapcore.Lock so that it can be shared with a zap-hosted
// application without interleaving.
func NewStdoutSink() types.Sink {
	return &syncerSink{name: "stdout", ws: zapcore.Lock(os.Stdout)}
}

// NewStderrSink returns a sink writing to standard error.
func NewStderrSink() types.Sink {
	return &syncerSink{name: "stderr", ws: zapcore.Lock(os.Stderr)}
}

// syncerSink adapts a zapcore.WriteSyncer. The syncer carries its own lock.
type syncerSink struct {
	name string
	ws   zapcore.WriteSyncer
}

func (s *syncerSink) Write(p []byte) error {
	if _, err := s.ws.Write(p); err != nil {
		return &WriteError{Sink: s.name, Err: err}
	}
	return nil
}

func (s *syncerSink) Close() error { return nil }

// NewSyncerSink wraps an existing zapcore.WriteSyncer as a sink.
func NewSyncerSink(name string, ws zapcore.WriteSyncer) types.Sink {
	return &syncerSink{name: name, ws: ws}
}

// NewFileSink opens path in append mode, creating parent directories as
// needed, and returns a sink writing records to it.
func NewFileSink(path string) (types.Sink, error) {
	file, err := openAppend(path)
	if err != nil {
		return nil, err
	}
	return &writerSink{name: "file:" + path, writer: file, closer: file}, nil
}

func openAppend(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %v", path, err)
	}
	return file, nil
}

// multiSink fans each record out to every child sink. A failing child does
// not stop the others; failures are aggregated.
type multiSink struct {
	children []types.Sink
}

// NewMultiSink returns a sink duplicating every record to all children.
func NewMultiSink(children ...types.Sink) types.Sink {
	return &multiSink{children: children}
}

func (s *multiSink) Write(p []byte) error {
	var err error
	for _, child := range s.children {
		err = multierr.Append(err, child.Write(p))
	}
	return err
}

func (s *multiSink) Close() error {
	var err error
	for _, child := range s.children {
		err = multierr.Append(err, child.Close())
	}
	return err
}
