// Package inisrc provides pull-style byte sources - the func() int shape
// iniparse.ParseFunc expects - over the common places configuration text
// comes from: an in-memory string, a length-bounded byte slice, or an
// io.Reader such as an open file.
package inisrc

import (
	"bufio"
	"io"
)

// StringSource returns a byte source that yields each byte of s in
// order, then iniparse.EOI forever after.
func StringSource(s string) func() int {
	i := 0
	return func() int {
		if i >= len(s) {
			return -1
		}
		ch := int(s[i])
		i++
		return ch
	}
}

// BoundedSource returns a byte source that yields each byte of b in
// order, then iniparse.EOI forever after.
func BoundedSource(b []byte) func() int {
	i := 0
	return func() int {
		if i >= len(b) {
			return -1
		}
		ch := int(b[i])
		i++
		return ch
	}
}

// ReaderSource returns a byte source that pulls from r until it returns
// an error, at which point the source yields iniparse.EOI forever. Read
// errors other than io.EOF are swallowed the same way a firmware-style
// bounded reader would treat a failed read as end of stream; callers
// that need to distinguish the two should check r directly.
func ReaderSource(r io.Reader) func() int {
	br := bufio.NewReader(r)
	done := false
	return func() int {
		if done {
			return -1
		}
		b, err := br.ReadByte()
		if err != nil {
			done = true
			return -1
		}
		return int(b)
	}
}
