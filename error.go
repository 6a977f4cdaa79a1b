package parsebase

import (
	"fmt"
	"strings"
)

// ParseError reports malformed input detected by a grammar parser built
// on the cursor. It is immutable once constructed and carries the byte
// offset at which the failure was detected, independently queryable for
// mapping back to line/column by a higher layer.
type ParseError struct {
	msg            string
	classification string
	offset         int
}

// NewError returns a ParseError for msg detected at offset. The stored
// message gains a formatted offset suffix for human consumption.
func NewError(msg string, offset int) *ParseError {
	return &ParseError{
		msg:    msg + offsetSuffix(offset),
		offset: offset,
	}
}

// NewClassifiedError is NewError with a category label distinguishing
// error families for programmatic handling.
func NewClassifiedError(classification, msg string, offset int) *ParseError {
	return &ParseError{
		msg:            classification + ": " + msg + offsetSuffix(offset),
		classification: classification,
		offset:         offset,
	}
}

func offsetSuffix(offset int) string {
	return fmt.Sprintf(" (offset=%d)", offset)
}

func (e *ParseError) Error() string { return e.msg }

// Offset returns the byte offset into the buffer at which the failure was
// detected.
func (e *ParseError) Offset() int { return e.offset }

// Classification returns the optional category label, empty when the
// error carries none.
func (e *ParseError) Classification() string { return e.classification }

// BuildMessage composes a diagnostic message around a single offending
// byte, e.g. BuildMessage("unexpected character '", c, "'").
func BuildMessage(before string, c byte, after string) string {
	var sb strings.Builder
	sb.Grow(len(before) + 1 + len(after))
	sb.WriteString(before)
	sb.WriteByte(c)
	sb.WriteString(after)
	return sb.String()
}

// BuildMessageBytes composes a diagnostic message around an offending
// byte span.
func BuildMessageBytes(before string, frag []byte, after string) string {
	var sb strings.Builder
	sb.Grow(len(before) + len(frag) + len(after))
	sb.WriteString(before)
	sb.Write(frag)
	sb.WriteString(after)
	return sb.String()
}
