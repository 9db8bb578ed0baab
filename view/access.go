package view

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/pktlayout/internal/analyzer"
	"github.com/alexhholmes/pktlayout/internal/parser"
	"github.com/alexhholmes/pktlayout/packet"
)

var (
	_ packet.Packet        = (*View)(nil)
	_ packet.Sizer         = (*View)(nil)
	_ packet.MutablePacket = (*MutableView)(nil)
	_ packet.Sizer         = (*MutableView)(nil)
)

// access carries the read side shared by both views.
type access struct {
	kind *Kind
	buf  []byte
}

// View is a read-only view over one packet.
type View struct {
	access
}

// MutableView is a read-write view over one packet.
type MutableView struct {
	access
}

// scope evaluates length expressions against one buffer.
type scope struct {
	a *access
}

func (s scope) Field(i int) uint64 {
	fp := &s.a.kind.layout.Fields[i]
	return analyzer.Read(s.a.buf, fp.Offset.Eval(s), fp.Ops)
}

func (s scope) Call(name string, args []int) int {
	return s.a.kind.fam.env.Funcs[name](args...)
}

func (s scope) Const(name string) int {
	return s.a.kind.fam.env.Consts[name]
}

func (a *access) scope() scope { return scope{a} }

// Kind returns the packet kind of the view.
func (a *access) Kind() *Kind { return a.kind }

// Packet returns the full backing buffer.
func (a *access) Packet() []byte { return a.buf }

// PacketSize is the minimum packet size plus every declared length of this
// instance.
func (a *access) PacketSize() int {
	return a.kind.layout.Size.Eval(a.scope())
}

// Payload returns the payload window clipped to the buffer; empty when the
// packet has no payload field.
func (a *access) Payload() []byte {
	p := a.kind.layout.Payload
	if p == nil {
		return a.buf[:0:0]
	}
	s := a.scope()
	lower := p.Lower.Eval(s)
	upper := len(a.buf)
	if p.Length != nil {
		upper = packet.Add(lower, p.Length.Length(s))
	}
	return packet.Window(a.buf, lower, upper)
}

func (a *access) plan(name string, want parser.TypeKind) (*analyzer.FieldPlan, error) {
	fp, err := a.kind.field(name)
	if err != nil {
		return nil, err
	}
	if fp.Field.Type.Kind != want {
		return nil, fmt.Errorf("%s.%s is %s, not %s: %w", a.kind.Name(), name, fp.Field.Type.Kind, want, ErrFieldKind)
	}
	return fp, nil
}

func (a *access) vectorPlan(name string, packets bool) (*analyzer.FieldPlan, error) {
	fp, err := a.plan(name, parser.VectorKind)
	if err != nil {
		return nil, err
	}
	if (fp.Elem.Packet != "") != packets {
		return nil, fmt.Errorf("%s.%s has %s elements: %w", a.kind.Name(), name, fp.Elem.Type.Tag, ErrFieldKind)
	}
	return fp, nil
}

// bounds returns the start of a vector and its declared end; fields with no
// length run to the end of the buffer.
func (a *access) bounds(fp *analyzer.FieldPlan) (start, end int) {
	s := a.scope()
	start = fp.Offset.Eval(s)
	if fp.Length == nil {
		return start, max(start, len(a.buf))
	}
	return start, packet.Add(start, fp.Length.Length(s))
}

func (a *access) window(fp *analyzer.FieldPlan) []byte {
	start, end := a.bounds(fp)
	return packet.Window(a.buf, start, end)
}

// Get reads a primitive field.
func (a *access) Get(name string) (uint64, error) {
	fp, err := a.plan(name, parser.PrimitiveKind)
	if err != nil {
		return 0, err
	}
	return analyzer.Read(a.buf, fp.Offset.Eval(a.scope()), fp.Ops), nil
}

// GetVector decodes a vector of primitives. It returns as many whole
// elements as fit in the declared length and the buffer.
func (a *access) GetVector(name string) ([]uint64, error) {
	fp, err := a.vectorPlan(name, false)
	if err != nil {
		return nil, err
	}
	raw := a.window(fp)
	n := len(raw) / fp.Elem.Bytes
	vals := make([]uint64, n)
	for i := range vals {
		vals[i] = analyzer.Read(raw, i*fp.Elem.Bytes, fp.Elem.Ops)
	}
	return vals, nil
}

// GetBytes copies the window of a vector of primitives.
func (a *access) GetBytes(name string) ([]byte, error) {
	fp, err := a.vectorPlan(name, false)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), a.window(fp)...), nil
}

// Raw returns the window of any vector field without copying.
func (a *access) Raw(name string) ([]byte, error) {
	fp, err := a.plan(name, parser.VectorKind)
	if err != nil {
		return nil, err
	}
	return a.window(fp), nil
}

// Iter returns a cursor over the nested packets of a vector field.
func (a *access) Iter(name string) (*Iter, error) {
	fp, err := a.vectorPlan(name, true)
	if err != nil {
		return nil, err
	}
	return &Iter{kind: a.kind.elemKind(fp), buf: a.window(fp)}, nil
}

// GetPackets returns read-only views of every nested packet of a vector
// field.
func (a *access) GetPackets(name string) ([]*View, error) {
	it, err := a.Iter(name)
	if err != nil {
		return nil, err
	}
	var out []*View
	for v := it.Next(); v != nil; v = it.Next() {
		out = append(out, v)
	}
	return out, nil
}

// GetMisc reads the construct_with primitives of a misc field and builds
// the semantic value from them.
func (a *access) GetMisc(name string) (any, error) {
	fp, err := a.plan(name, parser.MiscKind)
	if err != nil {
		return nil, err
	}
	s := a.scope()
	parts := make([]uint64, len(fp.Args))
	for i, arg := range fp.Args {
		parts[i] = analyzer.Read(a.buf, arg.Offset.Eval(s), arg.Ops)
	}
	if t, ok := a.kind.fam.env.Types[fp.Field.Type.Name]; ok && t.From != nil {
		return t.From(parts...), nil
	}
	return parts, nil
}

func (a *access) value(fp *analyzer.FieldPlan) any {
	name := fp.Field.Name
	var (
		v   any
		err error
	)
	switch {
	case fp.Field.Type.Kind == parser.PrimitiveKind:
		v, err = a.Get(name)
	case fp.Field.Type.Kind == parser.MiscKind:
		v, err = a.GetMisc(name)
	case fp.Elem.Packet != "":
		var views []*View
		views, err = a.GetPackets(name)
		recs := make([]*Record, len(views))
		for i, ev := range views {
			recs[i] = ev.FromPacket()
		}
		v = recs
	default:
		v, err = a.GetVector(name)
	}
	if err != nil {
		// plans come from the kind itself, so the lookup cannot miss
		panic(err)
	}
	return v
}

// FromPacket converts the view into its canonical value.
func (a *access) FromPacket() *Record {
	r := NewRecord(a.kind.Name())
	for i := range a.kind.layout.Fields {
		fp := &a.kind.layout.Fields[i]
		r.Fields[fp.Field.Name] = a.value(fp)
	}
	return r
}

// String prints every non-payload field.
func (a *access) String() string {
	var sb strings.Builder
	sb.WriteString(a.kind.Name())
	sb.WriteString(" {")
	first := true
	for i := range a.kind.layout.Fields {
		fp := &a.kind.layout.Fields[i]
		if fp.Field.Payload {
			continue
		}
		if !first {
			sb.WriteString(",")
		}
		first = false
		fmt.Fprintf(&sb, " %s: ", fp.Field.Name)
		if fp.Elem != nil && fp.Elem.Packet != "" {
			views, _ := a.GetPackets(fp.Field.Name)
			sb.WriteString("[")
			for j, ev := range views {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(ev.String())
			}
			sb.WriteString("]")
			continue
		}
		fmt.Fprintf(&sb, "%v", a.value(fp))
	}
	sb.WriteString(" }")
	return sb.String()
}

// Iter walks the nested packets of a vector window. Each element is sized
// by its own PacketSize; iteration stops when the window is exhausted, the
// rest is shorter than an element, or an element reports size zero. An
// element claiming more than the rest of the window gets the rest and ends
// the walk.
type Iter struct {
	kind *Kind
	buf  []byte
	off  int
}

// Next returns the next element view, or nil when done.
func (it *Iter) Next() *View {
	if it.off >= len(it.buf) {
		return nil
	}
	rest := it.buf[it.off:]
	v := it.kind.New(rest)
	if v == nil {
		it.off = len(it.buf)
		return nil
	}
	n := v.PacketSize()
	if n <= 0 {
		it.off = len(it.buf)
		return nil
	}
	if n >= len(rest) {
		it.off = len(it.buf)
		return v
	}
	v.buf = rest[:n:n]
	it.off += n
	return v
}

// ToImmutable returns a read-only view sharing the buffer.
func (m *MutableView) ToImmutable() *View {
	return &View{m.access}
}

// ConsumeToImmutable moves the buffer into a read-only view; m is left
// empty.
func (m *MutableView) ConsumeToImmutable() *View {
	v := &View{m.access}
	m.buf = nil
	return v
}

// PacketMut returns the full backing buffer for writing.
func (m *MutableView) PacketMut() []byte { return m.buf }

// PayloadMut returns the writable payload window.
func (m *MutableView) PayloadMut() []byte { return m.Payload() }

// RawMut returns the writable window of any vector field.
func (m *MutableView) RawMut(name string) ([]byte, error) { return m.Raw(name) }

// Set writes a primitive field. Bits above the field width are dropped.
func (m *MutableView) Set(name string, v uint64) error {
	fp, err := m.plan(name, parser.PrimitiveKind)
	if err != nil {
		return err
	}
	analyzer.Write(m.buf, fp.Offset.Eval(m.scope()), fp.Ops, v)
	return nil
}

// capacity returns where a vector starts, panicking when need exceeds
// either the declared length or the buffer. Nothing is checked for an empty
// write.
func (m *MutableView) capacity(fp *analyzer.FieldPlan, need int) int {
	start, end := m.bounds(fp)
	if need == 0 {
		return start
	}
	if need > end-start {
		panic(fmt.Sprintf("view: %s.%s: %d bytes exceed declared length %d",
			m.kind.Name(), fp.Field.Name, need, end-start))
	}
	if !packet.Fits(m.buf, start, need) {
		panic(fmt.Sprintf("view: %s.%s: %d bytes at offset %d exceed buffer length %d",
			m.kind.Name(), fp.Field.Name, need, start, len(m.buf)))
	}
	return start
}

// SetVector writes a vector of primitives. It panics when the values do not
// fit in the declared length or the buffer.
func (m *MutableView) SetVector(name string, vals []uint64) error {
	fp, err := m.vectorPlan(name, false)
	if err != nil {
		return err
	}
	size := fp.Elem.Bytes
	start := m.capacity(fp, len(vals)*size)
	for i, v := range vals {
		analyzer.Write(m.buf, start+i*size, fp.Elem.Ops, v)
	}
	return nil
}

// SetBytes copies raw bytes into a vector of primitives, with the same
// limits as SetVector.
func (m *MutableView) SetBytes(name string, b []byte) error {
	fp, err := m.vectorPlan(name, false)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	start := m.capacity(fp, len(b))
	copy(m.buf[start:], b)
	return nil
}

// SetPackets populates consecutive nested packets of a vector field. It
// panics when they do not fit in the declared length or the buffer.
func (m *MutableView) SetPackets(name string, recs []*Record) error {
	fp, err := m.vectorPlan(name, true)
	if err != nil {
		return err
	}
	ek := m.kind.elemKind(fp)
	sizes := make([]int, len(recs))
	need := 0
	for i, r := range recs {
		n, err := ek.PacketSizeOf(r)
		if err != nil {
			return err
		}
		sizes[i] = n
		need += n
	}
	off := m.capacity(fp, need)
	for i, r := range recs {
		ev := ek.NewMutable(m.buf[off : off+sizes[i]])
		if err := ev.Populate(r); err != nil {
			return fmt.Errorf("%s.%s[%d]: %w", m.kind.Name(), name, i, err)
		}
		off += sizes[i]
	}
	return nil
}

// SetMisc decomposes a semantic value into its construct_with primitives
// and writes each of them.
func (m *MutableView) SetMisc(name string, v any) error {
	fp, err := m.plan(name, parser.MiscKind)
	if err != nil {
		return err
	}
	var parts []uint64
	if t, ok := m.kind.fam.env.Types[fp.Field.Type.Name]; ok && t.To != nil {
		parts = t.To(v)
	} else if p, ok := v.([]uint64); ok {
		parts = p
	}
	if len(parts) != len(fp.Args) {
		return fmt.Errorf("%s.%s: want %d parts, got %d: %w", m.kind.Name(), name, len(fp.Args), len(parts), ErrValueType)
	}
	m.writeParts(fp, parts)
	return nil
}

func (m *MutableView) writeParts(fp *analyzer.FieldPlan, parts []uint64) {
	s := m.scope()
	for i, arg := range fp.Args {
		analyzer.Write(m.buf, arg.Offset.Eval(s), arg.Ops, parts[i])
	}
}

// Populate writes every field of r in declared order. Fields missing from
// r are written as zero or left empty.
func (m *MutableView) Populate(r *Record) error {
	if r.Packet != "" && r.Packet != m.kind.Name() {
		return fmt.Errorf("%s into %s: %w", r.Packet, m.kind.Name(), ErrRecordTarget)
	}
	for i := range m.kind.layout.Fields {
		fp := &m.kind.layout.Fields[i]
		name := fp.Field.Name
		v, ok := r.Fields[name]

		var err error
		switch {
		case fp.Field.Type.Kind == parser.PrimitiveKind:
			n, isInt := asUint(v)
			if ok && !isInt {
				return fmt.Errorf("%s.%s: %T: %w", m.kind.Name(), name, v, ErrValueType)
			}
			err = m.Set(name, n)
		case fp.Field.Type.Kind == parser.MiscKind:
			if !ok {
				m.writeParts(fp, make([]uint64, len(fp.Args)))
				continue
			}
			err = m.SetMisc(name, v)
		case !ok:
			continue
		case fp.Elem.Packet != "":
			recs, isRecs := v.([]*Record)
			if !isRecs {
				return fmt.Errorf("%s.%s: %T: %w", m.kind.Name(), name, v, ErrValueType)
			}
			err = m.SetPackets(name, recs)
		default:
			switch vals := v.(type) {
			case []uint64:
				err = m.SetVector(name, vals)
			case []byte:
				err = m.SetBytes(name, vals)
			default:
				return fmt.Errorf("%s.%s: %T: %w", m.kind.Name(), name, v, ErrValueType)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func asUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case uint64:
		return n, true
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case int:
		return uint64(n), true
	default:
		return 0, false
	}
}
