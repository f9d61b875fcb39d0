package iniparse

// Mapper is the mapping-provider contract. Map is invoked once per key
// before the value is parsed, with parsed set to false, so it can choose
// a binding by calling one of Context's Map* verbs. If the chosen
// binding is one the parser verifies after parsing (a string or a
// number), Map is invoked a second time with parsed set to true so the
// provider can accept or reject the fully parsed value. Returning false
// from either call aborts parsing with a mapper error.
//
// Calling no verb during the pre-parse invocation leaves the value
// ignored: the parser still validates its lexical shape but discards it
// and never calls Map a second time for that key.
type Mapper interface {
	Map(ctx *Context, parsed bool) bool
}

// SelectFunc adapts a single-argument selector - one that only ever
// chooses a binding and never inspects the parsed value - into a Mapper.
// The post-parse invocation is accepted unconditionally.
type SelectFunc func(ctx *Context) bool

// Map implements Mapper.
func (f SelectFunc) Map(ctx *Context, parsed bool) bool {
	if parsed {
		return true
	}
	return f(ctx)
}

// MapFunc adapts a two-argument mapper - one that both selects a binding
// and verifies the value once it has been parsed - into a Mapper.
type MapFunc func(ctx *Context, parsed bool) bool

// Map implements Mapper.
func (f MapFunc) Map(ctx *Context, parsed bool) bool { return f(ctx, parsed) }
