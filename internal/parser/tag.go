package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var bitTypeRe = regexp.MustCompile(`^u([0-9]+)(be|le|he)?$`)

// MaxWidth is the widest primitive a field may declare.
const MaxWidth = 64

// ParseBitType parses a primitive type tag
//
// Grammar:
//   - "u<N>"    : N-bit unsigned integer, big-endian
//   - "u<N>be"  : N-bit unsigned integer, big-endian
//   - "u<N>le"  : N-bit unsigned integer, little-endian
//   - "u<N>he"  : N-bit unsigned integer, host order (see Options.HostOrder)
//
// ok is false when tag is not a primitive at all. specified reports whether
// an endianness suffix was present.
func ParseBitType(tag string) (width int, e Endianness, specified bool, ok bool) {
	m := bitTypeRe.FindStringSubmatch(tag)
	if m == nil {
		return 0, Big, false, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, Big, false, false
	}
	switch m[2] {
	case "be":
		return n, Big, true, true
	case "le":
		return n, Little, true, true
	case "he":
		return n, Host, true, true
	default:
		return n, Big, false, true
	}
}

// typeError is returned by ResolveType; the schema parser attaches the field
// identity before surfacing it.
type typeError struct {
	kind   Kind
	detail string
}

func (e *typeError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.detail)
}

// ResolveType maps a type tag to a Type
//
//   - "u16be", "u3", ...  → Primitive
//   - "[]T"               → Vector(T), T resolved recursively
//   - "[][]T"             → error, vectors may not nest
//   - anything else       → Misc
//
// endiannessRequired enforces an explicit suffix on primitives wider than 8
// bits; construct_with arguments are resolved without it.
func ResolveType(tag string, endiannessRequired bool) (Type, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Type{}, &typeError{KindUnnamedType, "empty type tag"}
	}

	if width, e, specified, ok := ParseBitType(tag); ok {
		if width < 1 || width > MaxWidth {
			return Type{}, &typeError{KindUnsupportedWidth, fmt.Sprintf("%s is %d bits", tag, width)}
		}
		if endiannessRequired && width > 8 && !specified {
			return Type{}, &typeError{KindEndiannessRequired, fmt.Sprintf("use %sbe, %sle or %she", tag, tag, tag)}
		}
		return Type{Kind: PrimitiveKind, Tag: tag, Width: width, Endianness: e}, nil
	}

	if strings.HasPrefix(tag, "[]") {
		inner := strings.TrimSpace(strings.TrimPrefix(tag, "[]"))
		if strings.HasPrefix(inner, "[]") {
			return Type{}, &typeError{KindVectorOfVector, tag}
		}
		elem, err := ResolveType(inner, endiannessRequired)
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: VectorKind, Tag: tag, Elem: &elem}, nil
	}

	if !isIdent(tag) {
		return Type{}, &typeError{KindUnnamedType, fmt.Sprintf("invalid type: %s", tag)}
	}
	return Type{Kind: MiscKind, Tag: tag, Name: tag}, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
