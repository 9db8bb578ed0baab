package parser

import (
	"fmt"
	"math"
)

// Endianness is the byte order of a primitive field.
type Endianness int

const (
	Big Endianness = iota
	Little
	Host // resolved to Big or Little by configuration before any ops are built
)

func (e Endianness) String() string {
	switch e {
	case Big:
		return "big-endian"
	case Little:
		return "little-endian"
	case Host:
		return "host-endian"
	default:
		return "unknown"
	}
}

// TypeKind classifies a field type.
type TypeKind int

const (
	PrimitiveKind TypeKind = iota // u<N>, u<N>be, u<N>le, u<N>he
	VectorKind                    // []T
	MiscKind                      // anything else
)

func (k TypeKind) String() string {
	switch k {
	case PrimitiveKind:
		return "primitive"
	case VectorKind:
		return "vector"
	case MiscKind:
		return "misc"
	default:
		return "unknown"
	}
}

// Type is a resolved field type. Exactly one of the kind-specific members is
// meaningful, selected by Kind.
type Type struct {
	Kind TypeKind
	Tag  string // tag as written in the schema

	// Primitive
	Width      int
	Endianness Endianness

	// Vector
	Elem *Type

	// Misc
	Name string
}

// Primitive returns a primitive type.
func Primitive(width int, e Endianness) Type {
	return Type{Kind: PrimitiveKind, Tag: primitiveTag(width, e), Width: width, Endianness: e}
}

// Vector returns a vector type wrapping elem.
func Vector(elem Type) Type {
	return Type{Kind: VectorKind, Tag: "[]" + elem.Tag, Elem: &elem}
}

// Misc returns a semantic or nested-packet type.
func Misc(name string) Type {
	return Type{Kind: MiscKind, Tag: name, Name: name}
}

// Bytes is the number of whole bytes a primitive of this width spans when
// byte aligned.
func (t Type) Bytes() int {
	return (t.Width + 7) / 8
}

// Mask returns the value mask for a primitive of this width.
func (t Type) Mask() uint64 {
	if t.Width >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << uint(t.Width)) - 1
}

// GoType is the smallest unsigned Go integer type holding the primitive.
func (t Type) GoType() string {
	switch {
	case t.Width <= 8:
		return "uint8"
	case t.Width <= 16:
		return "uint16"
	case t.Width <= 32:
		return "uint32"
	default:
		return "uint64"
	}
}

func (t Type) String() string {
	switch t.Kind {
	case PrimitiveKind:
		return fmt.Sprintf("u%d(%s)", t.Width, t.Endianness)
	case VectorKind:
		return "[]" + t.Elem.String()
	default:
		return t.Name
	}
}

func primitiveTag(width int, e Endianness) string {
	switch e {
	case Little:
		return fmt.Sprintf("u%dle", width)
	case Host:
		return fmt.Sprintf("u%dhe", width)
	default:
		if width <= 8 {
			return fmt.Sprintf("u%d", width)
		}
		return fmt.Sprintf("u%dbe", width)
	}
}

// Field is one declared packet field.
type Field struct {
	Name  string
	Index int // position within the packet
	Type  Type

	// Length is the raw length expression in bytes, empty if not declared.
	Length string

	// StructLength names the canonical-value member whose serialized size
	// contributes to the struct size. Set for every vector field.
	StructLength string

	Payload       bool
	ConstructWith []Type
}

// IsVariable reports whether the field has no statically known size.
func (f *Field) IsVariable() bool {
	return f.Type.Kind == VectorKind
}

// Packet is an ordered, non-empty field list under a base name.
type Packet struct {
	Base   string
	Fields []Field
}

// Field returns the named field, or nil.
func (p *Packet) Field(name string) *Field {
	for i := range p.Fields {
		if p.Fields[i].Name == name {
			return &p.Fields[i]
		}
	}
	return nil
}

// PayloadField returns the payload-marked field, or nil.
func (p *Packet) PayloadField() *Field {
	for i := range p.Fields {
		if p.Fields[i].Payload {
			return &p.Fields[i]
		}
	}
	return nil
}
