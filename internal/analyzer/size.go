package analyzer

import (
	"fmt"

	"github.com/alexhholmes/pktlayout/internal/parser"
)

// SizeOf returns the fixed size in bits a field occupies.
// Returns -1 for vectors, whose size is only known per instance.
// Misc fields occupy the bits of their construct_with arguments.
func SizeOf(f *parser.Field) int {
	switch f.Type.Kind {
	case parser.PrimitiveKind:
		return f.Type.Width
	case parser.VectorKind:
		return -1
	default:
		bits := 0
		for _, arg := range f.ConstructWith {
			bits += arg.Width
		}
		return bits
	}
}

// FixedBits sums the fixed bits of every field of p.
func FixedBits(p *parser.Packet) int {
	bits := 0
	for i := range p.Fields {
		if n := SizeOf(&p.Fields[i]); n > 0 {
			bits += n
		}
	}
	return bits
}

// MinimumSize is the number of bytes the fixed fields of p span.
func MinimumSize(p *parser.Packet) int {
	return (FixedBits(p) + 7) / 8
}

// ElemSize returns the bytes per element of a vector element type, or 0
// for nested packets, whose elements size themselves.
func ElemSize(elem parser.Type) int {
	if elem.Kind != parser.PrimitiveKind {
		return 0
	}
	return elem.Width / 8
}

// TypeRegistry tracks the packets of one schema so vector element types
// can be resolved against them.
type TypeRegistry struct {
	packets map[string]*parser.Packet
	order   []string
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		packets: make(map[string]*parser.Packet),
	}
}

// Register adds a packet under its base name
func (r *TypeRegistry) Register(p *parser.Packet) error {
	if _, ok := r.packets[p.Base]; ok {
		return fmt.Errorf("packet %s registered twice", p.Base)
	}
	r.packets[p.Base] = p
	r.order = append(r.order, p.Base)
	return nil
}

// Lookup returns a registered packet
func (r *TypeRegistry) Lookup(name string) (*parser.Packet, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.packets[name]
	return p, ok
}

// Packets returns the registered packets in registration order
func (r *TypeRegistry) Packets() []*parser.Packet {
	out := make([]*parser.Packet, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.packets[name])
	}
	return out
}

// MinimumSize returns the minimum byte size of a registered packet
func (r *TypeRegistry) MinimumSize(name string) (int, error) {
	p, ok := r.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("unknown packet: %s (not registered)", name)
	}
	return MinimumSize(p), nil
}
