package sinks

import (
	"os"
	"sync"

	"github.com/joeydtaylor/tracewire/pkg/internal/types"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/multierr"
)

// compressedFileSink streams records through a gzip writer into a file.
// Records are only durable after Close flushes the compressor.
type compressedFileSink struct {
	mu   sync.Mutex
	name string
	file *os.File
	gz   *gzip.Writer
}

// NewCompressedFileSink opens path (created with parent directories if
// needed) and gzip-compresses every record written to it.
func NewCompressedFileSink(path string) (types.Sink, error) {
	file, err := openAppend(path)
	if err != nil {
		return nil, err
	}
	return &compressedFileSink{
		name: "gzip:" + path,
		file: file,
		gz:   gzip.NewWriter(file),
	}, nil
}

func (s *compressedFileSink) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.gz.Write(p); err != nil {
		return &WriteError{Sink: s.name, Err: err}
	}
	return nil
}

func (s *compressedFileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return multierr.Append(s.gz.Close(), s.file.Close())
}
