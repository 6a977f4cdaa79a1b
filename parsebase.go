// Package parsebase provides the low-level scanning primitive shared by
// the format-specific parsers of a document import stack. A Cursor walks
// a borrowed, read-only byte buffer one logical character at a time;
// grammar parsers drive it through skip, literal-match and numeric
// operations and report malformed input as a *ParseError carrying the
// byte offset at which the failure was detected.
//
// The cursor owns no storage and allocates nothing while scanning. Batch
// scanning runs through wide or narrow word-parallel kernels picked once
// at process start from the host's capabilities, with scalar fallbacks
// that are position-for-position equivalent.
package parsebase

// Cursor is a read position over a caller-supplied byte buffer. The
// buffer start is index 0, the end is len(buf), and the position only
// ever moves within that range through the scanning operations.
type Cursor struct {
	buf       []byte
	pos       int
	transient bool
	numeric   NumericFunc
}

// Option configures a Cursor at construction.
type Option func(*Cursor)

// WithTransient marks the underlying storage as owned by a caller that
// may release or mutate it once the current parse operation returns.
// Consumers must copy out any data they retain from such a buffer.
func WithTransient(transient bool) Option {
	return func(c *Cursor) { c.transient = transient }
}

// WithNumericFunc binds fn as the numeric recognition strategy used by
// ParseDouble. The strategy cannot be replaced after construction.
func WithNumericFunc(fn NumericFunc) Option {
	return func(c *Cursor) {
		if fn != nil {
			c.numeric = fn
		}
	}
}

// New returns a cursor positioned at the start of buf. The buffer is
// borrowed, never copied; it must stay addressable for the lifetime of
// the parse session.
func New(buf []byte, opts ...Option) *Cursor {
	c := &Cursor{buf: buf, numeric: ParseNumeric}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasChar reports whether a current character exists.
func (c *Cursor) HasChar() bool { return c.pos < len(c.buf) }

// HasNext reports whether a character exists past the current one. Use it
// to guard NextChar.
func (c *Cursor) HasNext() bool { return c.pos+1 < len(c.buf) }

// CurChar returns the byte at the current position. Calling it with no
// current character is a contract violation.
func (c *Cursor) CurChar() byte { return c.buf[c.pos] }

// NextChar returns the byte immediately after the current position
// without advancing. The caller must ensure such a byte exists.
func (c *Cursor) NextChar() byte { return c.buf[c.pos+1] }

// Next advances the position by one. The caller is responsible for not
// moving past the end of the buffer.
func (c *Cursor) Next() { c.pos++ }

// Prev rewinds the position by n. The caller is responsible for not
// moving before the start of the buffer.
func (c *Cursor) Prev(n int) { c.pos -= n }

// AvailableSize returns the number of bytes not yet consumed, including
// the current character.
func (c *Cursor) AvailableSize() int { return len(c.buf) - c.pos }

// RemainingSize returns AvailableSize less the one trailing unit every
// buffer handed to this substrate carries past its content, or zero when
// nothing is available.
func (c *Cursor) RemainingSize() int {
	if n := c.AvailableSize(); n > 0 {
		return n - 1
	}
	return 0
}

// Offset returns the distance from the buffer start to the current
// position, for diagnostics.
func (c *Cursor) Offset() int { return c.pos }

// PeekBytes returns the n bytes at the current position without
// advancing. The slice aliases the underlying buffer: copy it before
// returning upstream when Transient reports true. The caller must ensure
// n bytes are available.
func (c *Cursor) PeekBytes(n int) []byte { return c.buf[c.pos : c.pos+n] }

// Transient reports whether the underlying storage may be invalidated by
// the caller once the current parse operation returns.
func (c *Cursor) Transient() bool { return c.transient }
