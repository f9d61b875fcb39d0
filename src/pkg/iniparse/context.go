package iniparse

import "strings"

// Context is the value-binder handed to a Mapper. It reports the group
// and key currently being parsed and exposes the five binding verbs that
// tell the parser how to interpret and store the upcoming value. Context
// values are only valid for the duration of a single Mapper.Map call;
// the parser reuses the same Context instance for every key.
type Context struct {
	p *Parser
}

// Group returns the name of the group the current key belongs to, or the
// empty string when the key appears before any [group] header.
func (c *Context) Group() string {
	return string(c.p.group[:c.p.groupLen])
}

// Key returns the name of the key currently being bound.
func (c *Context) Key() string {
	return string(c.p.key[:c.p.keyLen])
}

// GroupIs reports whether the current group name equals s.
func (c *Context) GroupIs(s string) bool { return c.Group() == s }

// KeyIs reports whether the current key name equals s.
func (c *Context) KeyIs(s string) bool { return c.Key() == s }

// KeyHasPrefix reports whether the current key name starts with prefix.
func (c *Context) KeyHasPrefix(prefix string) bool {
	return strings.HasPrefix(c.Key(), prefix)
}

// MapString directs the parser to copy the upcoming value, quoted or
// unquoted, into dst. A value of at most len(dst)-1 bytes is stored and
// null-terminated inside dst once the record closes; a longer value is a
// capacity error.
func (c *Context) MapString(dst []byte) {
	c.p.state = stateStrValue
	c.p.strDst = dst
}

// MapUnsigned directs the parser to read the upcoming value as a
// decimal, or 0x-prefixed hexadecimal, unsigned integer and store it
// through dst once it falls within [min, max].
func (c *Context) MapUnsigned(dst *uint32, min, max uint32) {
	c.p.state = stateU32Value
	c.p.numU32Dst = dst
	c.p.numI32Dst = nil
	c.p.numMinU, c.p.numMaxU = min, max
}

// MapHexUnsigned directs the parser to read the upcoming value as a bare
// hexadecimal unsigned integer (no 0x prefix recognized) and store it
// through dst once it falls within [min, max].
func (c *Context) MapHexUnsigned(dst *uint32, min, max uint32) {
	c.p.state = stateHexU32Value
	c.p.numU32Dst = dst
	c.p.numI32Dst = nil
	c.p.numMinU, c.p.numMaxU = min, max
}

// MapSigned directs the parser to read the upcoming value as an
// optionally negative decimal integer and store it through dst once it
// falls within [min, max].
func (c *Context) MapSigned(dst *int32, min, max int32) {
	c.p.state = stateI32Value
	c.p.numI32Dst = dst
	c.p.numU32Dst = nil
	c.p.numMinI, c.p.numMaxI = min, max
}

// MapHexSigned directs the parser to read the upcoming value as an
// optionally negative hexadecimal integer and store it through dst once
// it falls within [min, max].
func (c *Context) MapHexSigned(dst *int32, min, max int32) {
	c.p.state = stateHexI32Value
	c.p.numI32Dst = dst
	c.p.numU32Dst = nil
	c.p.numMinI, c.p.numMaxI = min, max
}
