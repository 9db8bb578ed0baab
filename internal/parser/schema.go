package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// File is a schema document: a family of packets compiled together.
type File struct {
	Packets []PacketSpec `yaml:"packets" json:"packets" jsonschema:"required,minItems=1"`
}

// PacketSpec is the document form of a Packet.
type PacketSpec struct {
	Name   string      `yaml:"name" json:"name" jsonschema:"required,pattern=^[A-Za-z_][A-Za-z0-9_]*$"`
	Fields []FieldSpec `yaml:"fields" json:"fields" jsonschema:"required,minItems=1"`
}

// FieldSpec is the document form of a Field.
type FieldSpec struct {
	Name  string   `yaml:"name" json:"name" jsonschema:"required"`
	Type  string   `yaml:"type" json:"type" jsonschema:"required,description=u<N>[be|le|he] or []T or a semantic type name"`
	Attrs []string `yaml:"attrs,omitempty" json:"attrs,omitempty" jsonschema:"description=payload | length = \"<expr>\" | construct_with(<type>...)"`
}

// ParseFile reads a YAML schema document and parses every packet in it
func ParseFile(filename string) ([]*Packet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	packets, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return packets, nil
}

// ParseBytes parses a YAML (or JSON) schema document
func ParseBytes(data []byte) ([]*Packet, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return Parse(&file)
}

// Parse validates and converts a schema document into packets, in
// document order.
func Parse(file *File) ([]*Packet, error) {
	if file == nil || len(file.Packets) == 0 {
		return nil, errors.New("schema: no packets defined")
	}

	seen := make(map[string]bool, len(file.Packets))
	packets := make([]*Packet, 0, len(file.Packets))
	for i := range file.Packets {
		spec := &file.Packets[i]
		if spec.Name == "" || !isIdent(spec.Name) {
			return nil, fmt.Errorf("schema: packet #%d: invalid name %q", i, spec.Name)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("schema: packet %s defined twice", spec.Name)
		}
		seen[spec.Name] = true

		p, err := ParsePacket(spec)
		if err != nil {
			return nil, err
		}
		packets = append(packets, p)
	}
	return packets, nil
}

// ParsePacket converts one packet spec into a Packet, failing on the first
// structural violation.
func ParsePacket(spec *PacketSpec) (*Packet, error) {
	if len(spec.Fields) == 0 {
		return nil, &Error{Kind: KindEmptyPacket, Packet: spec.Name}
	}

	p := &Packet{Base: spec.Name}
	payload := -1
	names := make(map[string]bool, len(spec.Fields))
	last := len(spec.Fields) - 1

	for i, fs := range spec.Fields {
		f := Field{Name: fs.Name, Index: i}

		if fs.Name == "" || !isIdent(fs.Name) {
			return nil, fieldError(KindUnnamedField, spec.Name, &f, fmt.Sprintf("invalid name %q", fs.Name))
		}
		if names[fs.Name] {
			return nil, fieldError(KindDuplicateField, spec.Name, &f, "")
		}
		names[fs.Name] = true

		anno, err := ParseAnnotations(fs.Attrs)
		if err != nil {
			return nil, withField(err, spec.Name, &f)
		}

		if anno.Payload {
			if payload >= 0 {
				first := &p.Fields[payload]
				return nil, &Error{
					Kind:       KindMultiplePayload,
					Packet:     spec.Name,
					Field:      f.Name,
					Index:      i,
					Other:      first.Name,
					OtherIndex: first.Index,
				}
			}
			payload = i
		}

		ty, err := ResolveType(fs.Type, true)
		if err != nil {
			return nil, withField(err, spec.Name, &f)
		}
		f.Type = ty
		f.Payload = anno.Payload
		f.Length = anno.Length

		for _, arg := range anno.ConstructWith {
			at, err := ResolveType(arg, false)
			if err != nil {
				return nil, withField(err, spec.Name, &f)
			}
			if at.Kind != PrimitiveKind {
				return nil, fieldError(KindInvalidConstructArg, spec.Name, &f, arg)
			}
			f.ConstructWith = append(f.ConstructWith, at)
		}

		switch ty.Kind {
		case VectorKind:
			f.StructLength = f.Name
			if len(f.ConstructWith) > 0 {
				return nil, fieldError(KindUnknownAnnotation, spec.Name, &f, "construct_with does not apply to vectors")
			}
			if i < last && !anno.HasLength && !anno.Payload {
				return nil, fieldError(KindMissingLength, spec.Name, &f, "")
			}
		case MiscKind:
			if len(f.ConstructWith) == 0 {
				return nil, fieldError(KindMissingConstructWith, spec.Name, &f, ty.Name)
			}
			if anno.HasLength || anno.Payload {
				return nil, fieldError(KindUnknownAnnotation, spec.Name, &f, "length and payload apply to vectors only")
			}
		default:
			if len(f.ConstructWith) > 0 {
				return nil, fieldError(KindUnknownAnnotation, spec.Name, &f, "construct_with does not apply to primitives")
			}
			if anno.HasLength || anno.Payload {
				return nil, fieldError(KindUnknownAnnotation, spec.Name, &f, "length and payload apply to vectors only")
			}
		}

		p.Fields = append(p.Fields, f)
	}

	log.Debug().
		Str("packet", p.Base).
		Int("fields", len(p.Fields)).
		Int("payload", payload).
		Msg("parsed packet")

	return p, nil
}

func withField(err error, pkt string, f *Field) error {
	var te *typeError
	if errors.As(err, &te) {
		return fieldError(te.kind, pkt, f, te.detail)
	}
	return fmt.Errorf("packet %s: field %s: %w", pkt, f.Name, err)
}
