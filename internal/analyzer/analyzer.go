package analyzer

import (
	"errors"
	"fmt"
	gotoken "go/token"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/alexhholmes/pktlayout/internal/parser"
	"github.com/alexhholmes/pktlayout/packet"
)

// Options configure layout analysis
type Options struct {
	// HostOrder resolves "he" fields. Left unset, any "he" field fails
	// with HostOrderUnset.
	HostOrder ByteOrder
	Naming    Naming
}

// Offset is a byte offset: a static part plus the declared lengths of every
// earlier variable-length field.
type Offset struct {
	Bytes   int
	Dynamic []*Expr
}

// Static reports whether the offset is known without reading the packet
func (o Offset) Static() bool {
	return len(o.Dynamic) == 0
}

// Eval computes the offset for one packet instance. The sum saturates at
// math.MaxInt.
func (o Offset) Eval(s Scope) int {
	n := o.Bytes
	for _, e := range o.Dynamic {
		n = packet.Add(n, e.Length(s))
	}
	return n
}

func (o Offset) String() string {
	parts := []string{strconv.Itoa(o.Bytes)}
	for _, e := range o.Dynamic {
		parts = append(parts, "("+e.String()+")")
	}
	return strings.Join(parts, " + ")
}

// FieldPlan is everything needed to access one field
type FieldPlan struct {
	Field  *parser.Field
	Type   parser.Type // host endianness resolved
	Offset Offset
	Shift  int // bit offset within the first byte
	Bits   int // fixed bits occupied, 0 for vectors

	Ops    []Op      // primitives
	Length *Expr     // vectors with a declared length
	Elem   *ElemPlan // vectors
	Args   []ArgPlan // misc
}

// ElemPlan describes one vector element
type ElemPlan struct {
	Type    parser.Type
	Bytes   int    // 0 for nested packets
	Ops     []Op   // primitive elements, relative to the element start
	Packet  string // nested packet base name
	MinSize int    // nested packets: minimum element size
}

// ArgPlan locates one construct_with argument of a misc field
type ArgPlan struct {
	Type   parser.Type
	Offset Offset
	Shift  int
	Ops    []Op
}

// Payload locates the payload window. A nil Length means the window runs
// to the end of the buffer.
type Payload struct {
	Field  int
	Lower  Offset
	Length *Expr
}

// Layout is the analyzed form of one packet
type Layout struct {
	Packet      *parser.Packet
	Names       ViewNames
	Fields      []FieldPlan
	FixedBits   int
	MinimumSize int
	// Size is MinimumSize plus every declared length: the size of an
	// instance as far as its own header describes it.
	Size      Offset
	Payload   *Payload
	Externals []External
}

// Field returns the plan of the named field, or nil
func (l *Layout) Field(name string) *FieldPlan {
	for i := range l.Fields {
		if l.Fields[i].Field.Name == name {
			return &l.Fields[i]
		}
	}
	return nil
}

// Analyze computes the layout of p. Vector element packets are resolved
// against reg.
func Analyze(p *parser.Packet, reg *TypeRegistry, opts Options) (*Layout, error) {
	if p == nil {
		return nil, errors.New("packet is nil")
	}
	if len(p.Fields) == 0 {
		return nil, &parser.Error{Kind: parser.KindEmptyPacket, Packet: p.Base}
	}

	l := &Layout{
		Packet: p,
		Names:  opts.Naming.For(p.Base),
		Fields: make([]FieldPlan, 0, len(p.Fields)),
	}

	// Phase 1: walk fields in order, tracking the bit cursor and the
	// lengths declared so far
	bits := 0
	var dynamic []*Expr
	offsetAt := func(bits int) Offset {
		return Offset{Bytes: bits / 8, Dynamic: slices.Clone(dynamic)}
	}

	for i := range p.Fields {
		f := &p.Fields[i]
		fp := FieldPlan{Field: f, Type: f.Type, Offset: offsetAt(bits), Shift: bits % 8}

		switch f.Type.Kind {
		case parser.PrimitiveKind:
			ty, ops, err := primitivePlan(p, f, f.Type, bits%8, opts.HostOrder)
			if err != nil {
				return nil, err
			}
			fp.Type, fp.Ops = ty, ops

		case parser.VectorKind:
			if bits%8 != 0 {
				return nil, parser.FieldError(parser.KindMisalignedVector, p.Base, f,
					"starts at bit %d", bits)
			}
			elem, err := elemPlan(p, f, reg, opts.HostOrder)
			if err != nil {
				return nil, err
			}
			fp.Elem = elem
			fp.Type = parser.Vector(elem.Type)
			if f.Length != "" {
				expr, err := TranslateLength(f.Length, p, i)
				if err != nil {
					return nil, err
				}
				fp.Length = expr
				dynamic = append(dynamic, expr)
			}

		case parser.MiscKind:
			at := bits
			for _, arg := range f.ConstructWith {
				ty, ops, err := primitivePlan(p, f, arg, at%8, opts.HostOrder)
				if err != nil {
					return nil, err
				}
				fp.Args = append(fp.Args, ArgPlan{
					Type:   ty,
					Offset: offsetAt(at),
					Shift:  at % 8,
					Ops:    ops,
				})
				at += ty.Width
			}
		}

		if n := SizeOf(f); n > 0 {
			fp.Bits = n
			bits += n
		}

		if f.Payload {
			l.Payload = &Payload{Field: i, Lower: fp.Offset, Length: fp.Length}
		}
		l.Fields = append(l.Fields, fp)
	}

	// Phase 2: sizes
	l.FixedBits = FixedBits(p)
	l.MinimumSize = MinimumSize(p)
	l.Size = Offset{Bytes: l.MinimumSize, Dynamic: dynamic}

	// Phase 3: externals referenced by length expressions
	seen := map[External]bool{}
	for _, e := range dynamic {
		for _, x := range e.Externals() {
			if !seen[x] {
				seen[x] = true
				l.Externals = append(l.Externals, x)
			}
		}
	}

	log.Debug().
		Str("packet", p.Base).
		Int("fixed_bits", l.FixedBits).
		Int("min_size", l.MinimumSize).
		Int("dynamic", len(dynamic)).
		Bool("payload", l.Payload != nil).
		Msg("analyzed layout")

	return l, nil
}

func primitivePlan(p *parser.Packet, f *parser.Field, t parser.Type, shift int, order ByteOrder) (parser.Type, []Op, error) {
	e, ok := order.Resolve(t.Endianness)
	if !ok {
		return t, nil, parser.FieldError(parser.KindHostOrderUnset, p.Base, f, "%s", t.Tag)
	}
	resolved := t
	resolved.Endianness = e
	ops, err := Operations(shift, t.Width, e)
	if err != nil {
		return t, nil, fmt.Errorf("packet %s: field %s: %w", p.Base, f.Name, err)
	}
	return resolved, ops, nil
}

func elemPlan(p *parser.Packet, f *parser.Field, reg *TypeRegistry, order ByteOrder) (*ElemPlan, error) {
	elem := *f.Type.Elem
	switch elem.Kind {
	case parser.PrimitiveKind:
		if elem.Width%8 != 0 {
			return nil, parser.FieldError(parser.KindUnsupportedSubByteVectorElement, p.Base, f,
				"element %s is %d bits", elem.Tag, elem.Width)
		}
		ty, ops, err := primitivePlan(p, f, elem, 0, order)
		if err != nil {
			return nil, err
		}
		return &ElemPlan{Type: ty, Bytes: ElemSize(ty), Ops: ops}, nil
	case parser.MiscKind:
		size, err := reg.MinimumSize(elem.Name)
		if err != nil {
			return nil, parser.FieldError(parser.KindUnknownPacketType, p.Base, f, "%s", elem.Name)
		}
		return &ElemPlan{Type: elem, Packet: elem.Name, MinSize: size}, nil
	default:
		return nil, parser.FieldError(parser.KindVectorOfVector, p.Base, f, "%s", f.Type.Tag)
	}
}

// Family is a set of layouts compiled together
type Family struct {
	Layouts []*Layout
	Options Options
	byName  map[string]*Layout
}

// AnalyzeFamily registers every packet, then analyzes each one. Generated
// type names must be unique across the family.
func AnalyzeFamily(packets []*parser.Packet, opts Options) (*Family, error) {
	reg := NewTypeRegistry()
	for _, p := range packets {
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}

	fam := &Family{Options: opts, byName: make(map[string]*Layout, len(packets))}
	names := map[string]string{}
	for _, p := range reg.Packets() {
		l, err := Analyze(p, reg, opts)
		if err != nil {
			return nil, err
		}
		for _, n := range []string{p.Base, l.Names.View, l.Names.Mutable} {
			if !gotoken.IsIdentifier(n) {
				return nil, &parser.Error{Kind: parser.KindInvalidName, Packet: p.Base, Detail: fmt.Sprintf("%q", n)}
			}
			if owner, ok := names[n]; ok {
				return nil, &parser.Error{Kind: parser.KindNameCollision, Packet: p.Base,
					Detail: fmt.Sprintf("type name %s is also used by packet %s", n, owner)}
			}
			names[n] = p.Base
		}
		fam.Layouts = append(fam.Layouts, l)
		fam.byName[p.Base] = l
	}
	return fam, nil
}

// Lookup returns the layout of a packet by base name
func (f *Family) Lookup(base string) (*Layout, bool) {
	l, ok := f.byName[base]
	return l, ok
}
