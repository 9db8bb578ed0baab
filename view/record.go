package view

import (
	"fmt"

	"github.com/alexhholmes/pktlayout/internal/parser"
)

// Record is the canonical value of a packet, the runtime counterpart of the
// generated struct. Field values are uint64 for primitives, []uint64 (or
// []byte) for vectors of primitives, []*Record for vectors of nested
// packets, and the semantic value for misc fields.
type Record struct {
	Packet string
	Fields map[string]any
}

func NewRecord(packet string) *Record {
	return &Record{Packet: packet, Fields: make(map[string]any)}
}

// With sets a field and returns r for chaining.
func (r *Record) With(name string, v any) *Record {
	r.Fields[name] = v
	return r
}

// PacketSizeOf is the number of bytes r occupies once populated: the
// minimum packet size plus the size of every vector, nested packets
// included.
func (k *Kind) PacketSizeOf(r *Record) (int, error) {
	if r.Packet != "" && r.Packet != k.Name() {
		return 0, fmt.Errorf("%s as %s: %w", r.Packet, k.Name(), ErrRecordTarget)
	}
	size := k.layout.MinimumSize
	for i := range k.layout.Fields {
		fp := &k.layout.Fields[i]
		if fp.Field.Type.Kind != parser.VectorKind {
			continue
		}
		v, ok := r.Fields[fp.Field.StructLength]
		if !ok {
			continue
		}
		switch vals := v.(type) {
		case []uint64:
			size += len(vals) * fp.Elem.Bytes
		case []byte:
			size += len(vals)
		case []*Record:
			ek := k.elemKind(fp)
			if ek == nil {
				return 0, fmt.Errorf("%s.%s: %w", k.Name(), fp.Field.Name, ErrValueType)
			}
			for _, er := range vals {
				n, err := ek.PacketSizeOf(er)
				if err != nil {
					return 0, err
				}
				size += n
			}
		default:
			return 0, fmt.Errorf("%s.%s: %T: %w", k.Name(), fp.Field.Name, v, ErrValueType)
		}
	}
	return size, nil
}
