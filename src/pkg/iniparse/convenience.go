package iniparse

import "github.com/pkg/errors"

// ParseString feeds s through a fresh Parser built with m and maxID. It
// returns the line the failure occurred on and a wrapped *SyntaxError on
// failure, or (0, nil) once the whole string, including the implicit
// end-of-input signal, has been consumed successfully.
func ParseString(s string, m Mapper, maxID int) (int, error) {
	p := New(m, maxID)
	for i := 0; i <= len(s); i++ {
		ch := EOI
		if i < len(s) {
			ch = int(s[i])
		}
		if err := p.Feed(ch); err != nil {
			return p.Line(), errors.Wrap(err, "parse string")
		}
	}
	return 0, nil
}

// ParseBytes is ParseString for a byte slice, avoiding the string copy
// that indexing a string byte-by-byte would otherwise not require but
// that callers holding a []byte would otherwise pay for converting it.
func ParseBytes(b []byte, m Mapper, maxID int) (int, error) {
	p := New(m, maxID)
	for i := 0; i <= len(b); i++ {
		ch := EOI
		if i < len(b) {
			ch = int(b[i])
		}
		if err := p.Feed(ch); err != nil {
			return p.Line(), errors.Wrap(err, "parse bytes")
		}
	}
	return 0, nil
}

// ParseFunc drives a Parser from a pull-style byte source: next is
// called until it returns a negative value, which is fed once as EOI to
// close out the final record.
func ParseFunc(next func() int, m Mapper, maxID int) (int, error) {
	p := New(m, maxID)
	for {
		ch := next()
		if err := p.Feed(ch); err != nil {
			return p.Line(), errors.Wrap(err, "parse")
		}
		if ch < 0 {
			return 0, nil
		}
	}
}
