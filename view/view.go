// Package view interprets a packet schema at runtime. It compiles a schema
// document into packet kinds once, then evaluates the compiled field plans
// on every access of a view over a byte buffer, without copying the buffer.
//
// The generated views produced by packetgen and the views here follow the
// same contract (see package packet) and give identical results for the same
// schema and buffer.
package view

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/alexhholmes/pktlayout/internal/analyzer"
	"github.com/alexhholmes/pktlayout/internal/parser"
)

// ByteOrder is the configured meaning of host endianness ("he" fields).
type ByteOrder = analyzer.ByteOrder

const (
	HostUnset  = analyzer.OrderUnset
	HostBig    = analyzer.OrderBig
	HostLittle = analyzer.OrderLittle
)

// Naming derives view names from packet base names.
type Naming = analyzer.Naming

// ViewNames are the type names of a packet's two views.
type ViewNames = analyzer.ViewNames

// SemanticType converts between a misc field's construct_with primitives
// and the value callers work with.
type SemanticType struct {
	From func(parts ...uint64) any
	To   func(v any) []uint64
}

// Env binds the names a schema leaves external: functions and constants
// used in length expressions, and semantic types of misc fields. Misc
// fields with no bound type read and write their primitives as []uint64.
type Env struct {
	Funcs  map[string]func(args ...int) int
	Consts map[string]int
	Types  map[string]SemanticType
}

// Options configure compilation.
type Options struct {
	HostOrder ByteOrder
	Naming    Naming
	Env       Env
}

// Family is a compiled schema: one Kind per packet.
type Family struct {
	env   Env
	kinds map[string]*Kind
	order []*Kind
}

// Compile parses and compiles a YAML or JSON schema document.
func Compile(schema []byte, opts Options) (*Family, error) {
	pkts, err := parser.ParseBytes(schema)
	if err != nil {
		return nil, err
	}
	return compile(pkts, opts)
}

// CompileFile compiles the schema document at path.
func CompileFile(path string, opts Options) (*Family, error) {
	pkts, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return compile(pkts, opts)
}

func compile(pkts []*parser.Packet, opts Options) (*Family, error) {
	fam, err := analyzer.AnalyzeFamily(pkts, analyzer.Options{
		HostOrder: opts.HostOrder,
		Naming:    opts.Naming,
	})
	if err != nil {
		return nil, err
	}

	f := &Family{env: opts.Env, kinds: make(map[string]*Kind, len(fam.Layouts))}
	for _, l := range fam.Layouts {
		if err := checkExternals(l, &opts.Env); err != nil {
			return nil, err
		}
		k := &Kind{
			fam:    f,
			layout: l,
			fields: make(map[string]*analyzer.FieldPlan, len(l.Fields)),
		}
		for i := range l.Fields {
			k.fields[l.Fields[i].Field.Name] = &l.Fields[i]
		}
		f.kinds[l.Packet.Base] = k
		f.order = append(f.order, k)
	}

	log.Debug().Int("kinds", len(f.order)).Msg("compiled schema")
	return f, nil
}

func checkExternals(l *analyzer.Layout, env *Env) error {
	for i := range l.Fields {
		fp := &l.Fields[i]
		if fp.Length == nil {
			continue
		}
		for _, x := range fp.Length.Externals() {
			bound := false
			if x.Call {
				bound = env.Funcs[x.Name] != nil
			} else {
				_, bound = env.Consts[x.Name]
			}
			if !bound {
				what := "constant"
				if x.Call {
					what = "function"
				}
				return parser.FieldError(parser.KindUnresolvedExternal, l.Packet.Base, fp.Field,
					"%s %s", what, x.Name)
			}
		}
	}
	return nil
}

// Kind returns the compiled packet with the given base name.
func (f *Family) Kind(base string) (*Kind, bool) {
	k, ok := f.kinds[base]
	return k, ok
}

// MustKind is Kind for names known to exist; it panics otherwise.
func (f *Family) MustKind(base string) *Kind {
	k, ok := f.kinds[base]
	if !ok {
		panic(fmt.Sprintf("view: %v: %s", ErrUnknownKind, base))
	}
	return k
}

// Kinds returns every packet kind in schema order.
func (f *Family) Kinds() []*Kind {
	return append([]*Kind(nil), f.order...)
}

// Kind is one compiled packet: the factory for its views.
type Kind struct {
	fam    *Family
	layout *analyzer.Layout
	fields map[string]*analyzer.FieldPlan
}

// Name is the packet base name.
func (k *Kind) Name() string { return k.layout.Packet.Base }

// Names are the view type names the packet generates under.
func (k *Kind) Names() ViewNames { return k.layout.Names }

// MinimumPacketSize is the number of bytes the fixed fields span.
func (k *Kind) MinimumPacketSize() int { return k.layout.MinimumSize }

// Fields lists the field names in declared order.
func (k *Kind) Fields() []string {
	names := make([]string, len(k.layout.Fields))
	for i := range k.layout.Fields {
		names[i] = k.layout.Fields[i].Field.Name
	}
	return names
}

// New borrows buf as a read-only view, or returns nil when buf is shorter
// than the minimum packet size.
func (k *Kind) New(buf []byte) *View {
	if len(buf) < k.layout.MinimumSize {
		return nil
	}
	return &View{access{kind: k, buf: buf}}
}

// Owned is New for a buffer the caller hands over and no longer uses.
func (k *Kind) Owned(buf []byte) *View {
	return k.New(buf)
}

// NewMutable borrows buf as a read-write view, or returns nil when buf is
// shorter than the minimum packet size.
func (k *Kind) NewMutable(buf []byte) *MutableView {
	if len(buf) < k.layout.MinimumSize {
		return nil
	}
	return &MutableView{access{kind: k, buf: buf}}
}

// OwnedMutable is NewMutable for a buffer the caller hands over.
func (k *Kind) OwnedMutable(buf []byte) *MutableView {
	return k.NewMutable(buf)
}

func (k *Kind) field(name string) (*analyzer.FieldPlan, error) {
	fp, ok := k.fields[name]
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", k.Name(), name, ErrNoField)
	}
	return fp, nil
}

func (k *Kind) elemKind(fp *analyzer.FieldPlan) *Kind {
	return k.fam.kinds[fp.Elem.Packet]
}
