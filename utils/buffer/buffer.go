// Package buffer provides a thin layer over byte buffers for the
// serialization of fixed-width integers and integer slices.
package buffer

import (
	"bytes"
	"io"
)

// Writer is the interface a writer must implement to be consumed
// directly by the WriteAs methods without intermediate buffering.
// It is notably implemented by [bufio.Writer] and [buffer.Buffer].
type Writer interface {
	io.Writer
	Flush() error
}

// Reader is the interface a reader must implement to be consumed
// directly by the ReadAs methods without intermediate buffering.
// It is notably implemented by [bufio.Reader] and [buffer.Buffer].
type Reader interface {
	io.Reader
	io.ByteReader
}

// Buffer is an in-memory [buffer.Writer] and [buffer.Reader].
type Buffer struct {
	*bytes.Buffer
}

// NewBuffer instantiates a new [buffer.Buffer] reading from p.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{bytes.NewBuffer(p)}
}

// NewBufferSize instantiates a new empty [buffer.Buffer] with a
// pre-allocated capacity of size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{bytes.NewBuffer(make([]byte, 0, size))}
}

// Flush implements [buffer.Writer]. It is a no-op on an in-memory buffer.
func (b Buffer) Flush() error {
	return nil
}
