package sparseset

import "github.com/hupe1980/sparseset/internal/buffer"

// Close releases both buffers. Afterwards every method except Close and
// Validate panics with ErrClosed; a second Close returns ErrClosed.
func (s *Set) Close() error {
	if s == nil {
		return nil
	}
	if s.closed {
		return ErrClosed
	}

	released := s.dense.Bytes() + s.sparse.Bytes()
	buffer.Release(s.alloc, &s.dense)
	buffer.Release(s.alloc, &s.sparse)
	s.closed = true

	s.opts.logger.LogClose(released)
	return nil
}
