// Package packet is the capability contract shared by every packet view,
// whether generated ahead of time or interpreted at runtime, plus the small
// arithmetic helpers generated accessors call.
//
// Views wrap a byte buffer without copying it. Any number of read-only views
// may share a buffer; a mutable view assumes exclusive access to its buffer
// for as long as it is used. Views do no locking of their own.
package packet

import "math"

// Packet is a read-only view over a packet buffer.
type Packet interface {
	// Packet returns the full backing buffer.
	Packet() []byte
	// Payload returns the payload window, clipped to the buffer.
	Payload() []byte
}

// MutablePacket is a read-write view over a packet buffer.
type MutablePacket interface {
	Packet
	PacketMut() []byte
	PayloadMut() []byte
}

// Sizer reports the serialized size of a view instance: the fixed fields
// plus every declared variable length.
type Sizer interface {
	PacketSize() int
}

// Window returns buf[start:min(end, len(buf))] with its capacity capped at
// the window end, or an empty slice when start lies at or beyond the end of
// buf or the window is inverted.
func Window(buf []byte, start, end int) []byte {
	if start < 0 || len(buf) <= start {
		return buf[:0:0]
	}
	if end > len(buf) {
		end = len(buf)
	}
	if end < start {
		end = start
	}
	return buf[start:end:end]
}

// Fits reports whether n bytes starting at off lie inside buf.
func Fits(buf []byte, off, n int) bool {
	return off >= 0 && off <= len(buf)-n
}

// Clamp turns a computed length into a usable one: negative values are 0.
func Clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Div is integer division that yields 0 for a zero divisor, so length
// expressions over untrusted input never fault.
func Div(a, b int) int {
	if b == 0 {
		return 0
	}
	return a / b
}

// Mod is the remainder counterpart of Div.
func Mod(a, b int) int {
	if b == 0 {
		return 0
	}
	return a % b
}

// Add is a+b saturated to the int range. Offsets and lengths read from
// untrusted packets are summed with it, so a huge declared length pins an
// offset past any buffer instead of wrapping around.
func Add(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// Sub is a-b saturated to the int range.
func Sub(a, b int) int {
	switch {
	case b < 0 && a > math.MaxInt+b:
		return math.MaxInt
	case b > 0 && a < math.MinInt+b:
		return math.MinInt
	}
	return a - b
}

// Mul is a*b saturated to the int range.
func Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		if (a < 0) != (b < 0) {
			return math.MinInt
		}
		return math.MaxInt
	}
	return c
}

// Sum adds every term with Add.
func Sum(terms ...int) int {
	n := 0
	for _, t := range terms {
		n = Add(n, t)
	}
	return n
}
