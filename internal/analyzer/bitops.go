package analyzer

import (
	"fmt"

	"github.com/alexhholmes/pktlayout/internal/parser"
	"github.com/alexhholmes/pktlayout/packet"
)

// Op is one byte-granularity step of a field read or write.
//
// Reading byte Index contributes ((b & Mask) >> Low) << Pos to the value.
// Writing stores byte(v>>Pos)<<Low into the Mask bits of byte Index and
// leaves every other bit of that byte alone.
type Op struct {
	Index int  // byte index relative to the field's first byte
	Mask  byte // bits of the byte owned by the field
	Low   uint // position of the lowest owned bit in the byte
	Pos   uint // position of this chunk in the value
	Bits  int  // number of owned bits
}

func (op Op) String() string {
	return fmt.Sprintf("[%d]&%#02x>>%d<<%d", op.Index, op.Mask, op.Low, op.Pos)
}

// Operations returns the byte operations for a value of width bits that
// starts bitOffset bits into its first byte. Bits are numbered from the most
// significant bit of each byte, as on the wire.
//
// Big endianness puts the most significant chunk in the first byte. Little
// endianness reverses the chunk order so the first byte holds the least
// significant chunk. Host must be resolved before calling.
func Operations(bitOffset, width int, e parser.Endianness) ([]Op, error) {
	if bitOffset < 0 || bitOffset > 7 {
		return nil, fmt.Errorf("bit offset %d out of range [0,7]", bitOffset)
	}
	if width < 1 || width > parser.MaxWidth {
		return nil, fmt.Errorf("width %d out of range [1,%d]", width, parser.MaxWidth)
	}
	if e != parser.Big && e != parser.Little {
		return nil, fmt.Errorf("endianness %s must be resolved to big or little", e)
	}

	end := bitOffset + width
	n := (end + 7) / 8
	ops := make([]Op, n)
	for i := range ops {
		lo := max(bitOffset, 8*i) - 8*i
		hi := min(end, 8*i+8) - 8*i
		bits := hi - lo
		ops[i] = Op{
			Index: i,
			Mask:  byte(((1 << bits) - 1) << (8 - hi)),
			Low:   uint(8 - hi),
			Bits:  bits,
		}
	}

	consumed := 0
	switch e {
	case parser.Big:
		for i := range ops {
			consumed += ops[i].Bits
			ops[i].Pos = uint(width - consumed)
		}
	case parser.Little:
		for i := range ops {
			ops[i].Pos = uint(consumed)
			consumed += ops[i].Bits
		}
	}
	return ops, nil
}

// Read assembles a value from buf at byte offset co. A field that does not
// fit entirely inside buf reads as zero.
func Read(buf []byte, co int, ops []Op) uint64 {
	if !packet.Fits(buf, co, len(ops)) {
		return 0
	}
	var v uint64
	for _, op := range ops {
		v |= uint64((buf[co+op.Index]&op.Mask)>>op.Low) << op.Pos
	}
	return v
}

// Write stores v into buf at byte offset co, touching only the bits the
// operations own. Writing outside buf panics.
func Write(buf []byte, co int, ops []Op, v uint64) {
	if !packet.Fits(buf, co, len(ops)) {
		panic(fmt.Sprintf("pktlayout: write of %d bytes at offset %d exceeds buffer length %d", len(ops), co, len(buf)))
	}
	for _, op := range ops {
		b := &buf[co+op.Index]
		*b = *b&^op.Mask | byte(v>>op.Pos)<<op.Low&op.Mask
	}
}

// ByteOrder is the configured meaning of host endianness.
type ByteOrder int

const (
	OrderUnset ByteOrder = iota
	OrderBig
	OrderLittle
)

// ParseByteOrder accepts "", "big" and "little".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "":
		return OrderUnset, nil
	case "big":
		return OrderBig, nil
	case "little":
		return OrderLittle, nil
	default:
		return OrderUnset, fmt.Errorf("host byte order must be 'big' or 'little', got: %s", s)
	}
}

func (o ByteOrder) String() string {
	switch o {
	case OrderBig:
		return "big"
	case OrderLittle:
		return "little"
	default:
		return "unset"
	}
}

// Resolve maps Host to the configured order; Big and Little pass through.
func (o ByteOrder) Resolve(e parser.Endianness) (parser.Endianness, bool) {
	if e != parser.Host {
		return e, true
	}
	switch o {
	case OrderBig:
		return parser.Big, true
	case OrderLittle:
		return parser.Little, true
	default:
		return parser.Host, false
	}
}
