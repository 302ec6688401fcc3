package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/linemark/internal/domain"
)

// FileLineSource implements ports.LineSource by reading a text file.
type FileLineSource struct {
	path   string
	file   *os.File
	reader *bufio.Reader
	eof    bool
}

// NewFileLineSource creates a line source for the file at path.
func NewFileLineSource(path string) *FileLineSource {
	return &FileLineSource{path: path}
}

// Open opens the file. A missing file yields domain.ErrFileNotFound,
// any other failure domain.ErrRead.
func (s *FileLineSource) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrFileNotFound, s.path)
		}
		return fmt.Errorf("%w: open %s: %v", domain.ErrRead, s.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: stat %s: %v", domain.ErrRead, s.path, err)
	}
	if info.IsDir() {
		f.Close()
		return fmt.Errorf("%w: %s is a directory", domain.ErrFileNotFound, s.path)
	}
	s.file = f
	s.reader = bufio.NewReader(f)
	s.eof = false
	return nil
}

// Next returns the next line with its terminator stripped. "\n", "\r\n"
// and a lone "\r" each end a line. A trailing terminator at end of file does
// not produce an extra empty line.
func (s *FileLineSource) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if s.reader == nil {
		return "", fmt.Errorf("%w: %s not open", domain.ErrRead, s.path)
	}
	if s.eof {
		return "", io.EOF
	}

	var line []byte
	for {
		b, err := s.reader.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %s: %v", domain.ErrRead, s.path, err)
			}
			s.eof = true
			if len(line) == 0 {
				return "", io.EOF
			}
			return string(line), nil
		}

		switch b {
		case '\n':
			return string(line), nil
		case '\r':
			// Read errors other than EOF surface on the next call.
			if next, err := s.reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = s.reader.Discard(1)
			}
			return string(line), nil
		default:
			line = append(line, b)
		}
	}
}

// Close closes the file if open.
func (s *FileLineSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.reader = nil
	return err
}
