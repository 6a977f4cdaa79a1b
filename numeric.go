package parsebase

import (
	"errors"
	"math"
	"strconv"
	"unsafe"
)

// NumericFunc recognizes a numeric literal at the head of data. It
// returns the parsed value and the number of bytes consumed; zero bytes
// consumed signals failure, in which case the value carries no meaning.
// The strategy must never report more bytes than data holds.
type NumericFunc func(data []byte) (value float64, n int)

// ParseDouble recognizes a numeric literal at the current position using
// the strategy bound at construction. On success the position advances
// past the consumed bytes; when the strategy consumes nothing the
// position stays put and the NaN sentinel is returned. A strategy that
// legitimately produces NaN is indistinguishable from failure by the
// return value alone; compare Offset before and after the call to tell
// them apart. The stock strategy never produces NaN.
func (c *Cursor) ParseDouble() float64 {
	v, n := c.numeric(c.buf[c.pos:])
	if n == 0 {
		return math.NaN()
	}
	c.pos += n
	return v
}

// ParseNumeric is the stock numeric strategy: an optional sign, decimal
// digits with at most one decimal point and at least one digit overall,
// then an optional exponent. An exponent head without digits after it is
// not part of the literal and stays unconsumed.
func ParseNumeric(data []byte) (float64, int) {
	i := 0
	if i < len(data) && (data[i] == '+' || data[i] == '-') {
		i++
	}
	digits := 0
	for i < len(data) && isDigit(data[i]) {
		i++
		digits++
	}
	if i < len(data) && data[i] == '.' {
		i++
		for i < len(data) && isDigit(data[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		k := j
		for k < len(data) && isDigit(data[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	v, err := strconv.ParseFloat(prefixString(data[:i]), 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			// Out-of-range literals saturate to ±Inf; the bytes still count
			// as consumed.
			return v, i
		}
		return 0, 0
	}
	return v, i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// prefixString views b as a string without copying, for strconv. The
// scanning loop never mutates the buffer, so the view is safe for the
// duration of the call.
func prefixString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
