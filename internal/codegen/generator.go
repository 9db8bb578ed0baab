package codegen

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/alexhholmes/pktlayout/internal/analyzer"
	"github.com/alexhholmes/pktlayout/internal/parser"
)

const packetImport = "github.com/alexhholmes/pktlayout/packet"

// Generator generates view code for one analyzed packet
type Generator struct {
	layout *analyzer.Layout
	family *analyzer.Family
	lenFns map[*analyzer.Expr]string // length expression → helper method
}

// NewGenerator creates a new code generator. family resolves nested packet
// element types.
func NewGenerator(layout *analyzer.Layout, family *analyzer.Family) *Generator {
	g := &Generator{
		layout: layout,
		family: family,
		lenFns: make(map[*analyzer.Expr]string),
	}
	for _, fp := range layout.Fields {
		if fp.Length != nil {
			g.lenFns[fp.Length] = "len" + exportName(fp.Field.Name)
		}
	}
	return g
}

// GenerateFile returns a formatted Go source file with the views of every
// packet in the family.
func GenerateFile(pkg string, family *analyzer.Family) ([]byte, error) {
	if err := checkNames(family); err != nil {
		return nil, err
	}

	var body strings.Builder
	for _, l := range family.Layouts {
		src, err := NewGenerator(l, family).Generate()
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", l.Packet.Base, err)
		}
		body.WriteString(src)
	}

	var code strings.Builder
	code.WriteString("// Code generated by packetgen. DO NOT EDIT.\n\n")
	code.WriteString(fmt.Sprintf("package %s\n\n", pkg))
	code.WriteString("import (\n")
	if strings.Contains(body.String(), "fmt.") {
		code.WriteString("\t\"fmt\"\n\n")
	}
	code.WriteString(fmt.Sprintf("\t%q\n", packetImport))
	code.WriteString(")\n\n")
	code.WriteString(body.String())

	out, err := format.Source([]byte(code.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}

	log.Debug().
		Str("package", pkg).
		Int("packets", len(family.Layouts)).
		Int("bytes", len(out)).
		Msg("generated views")

	return out, nil
}

// Generate returns the generated code for this packet (without package
// header/imports)
func (g *Generator) Generate() (string, error) {
	var code strings.Builder

	code.WriteString(g.generateStruct())
	code.WriteString(g.generateViewTypes())

	for _, recv := range []string{g.layout.Names.View, g.layout.Names.Mutable} {
		code.WriteString(g.generateCommon(recv))
		for i := range g.layout.Fields {
			code.WriteString(g.generateGetters(recv, &g.layout.Fields[i]))
		}
		code.WriteString(g.generateFromPacket(recv))
		code.WriteString(g.generateString(recv))
	}

	code.WriteString(g.generateMutableOnly())
	for i := range g.layout.Fields {
		code.WriteString(g.generateSetters(&g.layout.Fields[i]))
	}
	code.WriteString(g.generatePopulate())

	code.WriteString(g.generateIter())
	code.WriteString(g.generateSizeOf())

	return code.String(), nil
}

func (g *Generator) base() string { return g.layout.Packet.Base }

// generateStruct generates the canonical value type and size constant
func (g *Generator) generateStruct() string {
	var code strings.Builder
	base := g.base()

	code.WriteString(fmt.Sprintf("// %s is the canonical value of a %s packet.\n", base, base))
	code.WriteString(fmt.Sprintf("type %s struct {\n", base))
	for i := range g.layout.Fields {
		fp := &g.layout.Fields[i]
		code.WriteString(fmt.Sprintf("\t%s %s\n", exportName(fp.Field.Name), g.valueType(fp)))
	}
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("// %sMinimumPacketSize is the number of bytes the fixed fields span.\n", base))
	code.WriteString(fmt.Sprintf("const %sMinimumPacketSize = %d\n\n", base, g.layout.MinimumSize))

	return code.String()
}

func (g *Generator) valueType(fp *analyzer.FieldPlan) string {
	switch fp.Field.Type.Kind {
	case parser.PrimitiveKind:
		return fp.Type.GoType()
	case parser.VectorKind:
		if fp.Elem.Packet != "" {
			return "[]" + fp.Elem.Packet
		}
		return "[]" + fp.Elem.Type.GoType()
	default:
		return fp.Field.Type.Name
	}
}

func (g *Generator) elemNames(fp *analyzer.FieldPlan) analyzer.ViewNames {
	if el, ok := g.family.Lookup(fp.Elem.Packet); ok {
		return el.Names
	}
	return g.family.Options.Naming.For(fp.Elem.Packet)
}

// generateViewTypes generates both view types and their constructors
func (g *Generator) generateViewTypes() string {
	var code strings.Builder
	base := g.base()
	names := g.layout.Names

	for _, v := range []struct {
		name, what, iface string
	}{
		{names.View, "read-only", "Packet"},
		{names.Mutable, "read-write", "MutablePacket"},
	} {
		code.WriteString(fmt.Sprintf("// %s is a %s view over a %s packet.\n", v.name, v.what, base))
		code.WriteString(fmt.Sprintf("type %s struct {\n", v.name))
		code.WriteString("\tbuf []byte\n")
		code.WriteString("}\n\n")

		code.WriteString(fmt.Sprintf("var _ packet.%s = (*%s)(nil)\n\n", v.iface, v.name))

		code.WriteString(fmt.Sprintf("// New%s wraps buf, or returns nil if buf is shorter than %sMinimumPacketSize.\n", v.name, base))
		code.WriteString(fmt.Sprintf("func New%s(buf []byte) *%s {\n", v.name, v.name))
		code.WriteString(fmt.Sprintf("\tif len(buf) < %sMinimumPacketSize {\n", base))
		code.WriteString("\t\treturn nil\n")
		code.WriteString("\t}\n")
		code.WriteString(fmt.Sprintf("\treturn &%s{buf: buf}\n", v.name))
		code.WriteString("}\n\n")

		code.WriteString(fmt.Sprintf("// Owned%s is New%s for a buffer the caller hands over.\n", v.name, v.name))
		code.WriteString(fmt.Sprintf("func Owned%s(buf []byte) *%s {\n", v.name, v.name))
		code.WriteString(fmt.Sprintf("\treturn New%s(buf)\n", v.name))
		code.WriteString("}\n\n")
	}

	return code.String()
}

// generateCommon generates buffer, payload, size and length helpers
func (g *Generator) generateCommon(recv string) string {
	var code strings.Builder

	code.WriteString("// Packet returns the full backing buffer.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) Packet() []byte {\n", recv))
	code.WriteString("\treturn p.buf\n")
	code.WriteString("}\n\n")

	code.WriteString("// Payload returns the payload window, clipped to the buffer.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) Payload() []byte {\n", recv))
	if pl := g.layout.Payload; pl != nil {
		code.WriteString(fmt.Sprintf("\tstart := %s\n", g.offsetExpr(pl.Lower)))
		code.WriteString(fmt.Sprintf("\treturn packet.Window(p.buf, start, %s)\n", g.endExpr(pl.Length)))
	} else {
		code.WriteString("\treturn p.buf[:0:0]\n")
	}
	code.WriteString("}\n\n")

	code.WriteString("// PacketSize is the minimum size plus every declared length.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) PacketSize() int {\n", recv))
	code.WriteString(fmt.Sprintf("\treturn %s\n", g.offsetExpr(g.layout.Size)))
	code.WriteString("}\n\n")

	for _, fp := range g.layout.Fields {
		if fp.Length == nil {
			continue
		}
		code.WriteString(fmt.Sprintf("func (p *%s) %s() int {\n", recv, g.lenFns[fp.Length]))
		code.WriteString(fmt.Sprintf("\treturn packet.Clamp(%s)\n", g.renderExpr(fp.Length)))
		code.WriteString("}\n\n")
	}

	return code.String()
}

// generateGetters generates the read accessors of one field
func (g *Generator) generateGetters(recv string, fp *analyzer.FieldPlan) string {
	var code strings.Builder
	name := exportName(fp.Field.Name)

	switch fp.Field.Type.Kind {
	case parser.PrimitiveKind:
		goType := fp.Type.GoType()
		code.WriteString(fmt.Sprintf("// Get%s returns the %s field (%s).\n", name, fp.Field.Name, fp.Field.Type.Tag))
		code.WriteString(fmt.Sprintf("func (p *%s) Get%s() %s {\n", recv, name, goType))
		code.WriteString(fmt.Sprintf("\tco := %s\n", g.offsetExpr(fp.Offset)))
		if !fp.Offset.Static() {
			code.WriteString(fmt.Sprintf("\tif !packet.Fits(p.buf, co, %d) {\n", len(fp.Ops)))
			code.WriteString("\t\treturn 0\n")
			code.WriteString("\t}\n")
		}
		code.WriteString(fmt.Sprintf("\treturn %s(%s)\n", goType, readExpr("p.buf", "co", fp.Ops)))
		code.WriteString("}\n\n")

	case parser.MiscKind:
		code.WriteString(fmt.Sprintf("// Get%s builds the %s field from its construct_with values.\n", name, fp.Field.Name))
		code.WriteString(fmt.Sprintf("func (p *%s) Get%s() %s {\n", recv, name, fp.Field.Type.Name))
		args := make([]string, len(fp.Args))
		for i, arg := range fp.Args {
			code.WriteString(fmt.Sprintf("\tvar a%d uint64\n", i))
			code.WriteString(fmt.Sprintf("\tif co := %s; packet.Fits(p.buf, co, %d) {\n", g.offsetExpr(arg.Offset), len(arg.Ops)))
			code.WriteString(fmt.Sprintf("\t\ta%d = %s\n", i, readExpr("p.buf", "co", arg.Ops)))
			code.WriteString("\t}\n")
			args[i] = fmt.Sprintf("%s(a%d)", arg.Type.GoType(), i)
		}
		code.WriteString(fmt.Sprintf("\treturn New%s(%s)\n", fp.Field.Type.Name, strings.Join(args, ", ")))
		code.WriteString("}\n\n")

	case parser.VectorKind:
		code.WriteString(g.generateVectorGetters(recv, fp))
	}

	return code.String()
}

func (g *Generator) generateVectorGetters(recv string, fp *analyzer.FieldPlan) string {
	var code strings.Builder
	name := exportName(fp.Field.Name)
	window := fmt.Sprintf("packet.Window(p.buf, start, %s)", g.endExpr(fp.Length))

	if fp.Elem.Packet != "" {
		iter := fp.Elem.Packet + "Iter"

		code.WriteString(fmt.Sprintf("// Get%sIter returns a cursor over the %s elements.\n", name, fp.Field.Name))
		code.WriteString(fmt.Sprintf("func (p *%s) Get%sIter() *%s {\n", recv, name, iter))
		code.WriteString(fmt.Sprintf("\tstart := %s\n", g.offsetExpr(fp.Offset)))
		code.WriteString(fmt.Sprintf("\treturn &%s{buf: %s}\n", iter, window))
		code.WriteString("}\n\n")

		code.WriteString(fmt.Sprintf("// Get%s converts every %s element.\n", name, fp.Field.Name))
		code.WriteString(fmt.Sprintf("func (p *%s) Get%s() []%s {\n", recv, name, fp.Elem.Packet))
		code.WriteString(fmt.Sprintf("\tvar vals []%s\n", fp.Elem.Packet))
		code.WriteString(fmt.Sprintf("\tit := p.Get%sIter()\n", name))
		code.WriteString("\tfor v := it.Next(); v != nil; v = it.Next() {\n")
		code.WriteString("\t\tvals = append(vals, v.FromPacket())\n")
		code.WriteString("\t}\n")
		code.WriteString("\treturn vals\n")
		code.WriteString("}\n\n")
	} else {
		goType := fp.Elem.Type.GoType()
		size := fp.Elem.Bytes

		code.WriteString(fmt.Sprintf("// Get%s decodes the %s elements that fit in the declared length and the buffer.\n", name, fp.Field.Name))
		code.WriteString(fmt.Sprintf("func (p *%s) Get%s() []%s {\n", recv, name, goType))
		code.WriteString(fmt.Sprintf("\tstart := %s\n", g.offsetExpr(fp.Offset)))
		code.WriteString(fmt.Sprintf("\traw := %s\n", window))
		if size == 1 {
			code.WriteString(fmt.Sprintf("\treturn append([]%s(nil), raw...)\n", goType))
		} else {
			code.WriteString(fmt.Sprintf("\tvals := make([]%s, len(raw)/%d)\n", goType, size))
			code.WriteString("\tfor i := range vals {\n")
			code.WriteString(fmt.Sprintf("\t\tco := i * %d\n", size))
			code.WriteString(fmt.Sprintf("\t\tvals[i] = %s(%s)\n", goType, readExpr("raw", "co", fp.Elem.Ops)))
			code.WriteString("\t}\n")
			code.WriteString("\treturn vals\n")
		}
		code.WriteString("}\n\n")
	}

	if !fp.Field.Payload {
		code.WriteString(fmt.Sprintf("// Get%sRaw returns the %s window without copying.\n", name, fp.Field.Name))
		code.WriteString(fmt.Sprintf("func (p *%s) Get%sRaw() []byte {\n", recv, name))
		code.WriteString(fmt.Sprintf("\tstart := %s\n", g.offsetExpr(fp.Offset)))
		code.WriteString(fmt.Sprintf("\treturn %s\n", window))
		code.WriteString("}\n\n")
	}

	return code.String()
}

// generateFromPacket generates the conversion to the canonical value
func (g *Generator) generateFromPacket(recv string) string {
	var code strings.Builder

	code.WriteString(fmt.Sprintf("// FromPacket converts the view into a %s.\n", g.base()))
	code.WriteString(fmt.Sprintf("func (p *%s) FromPacket() %s {\n", recv, g.base()))
	code.WriteString(fmt.Sprintf("\treturn %s{\n", g.base()))
	for _, fp := range g.layout.Fields {
		name := exportName(fp.Field.Name)
		code.WriteString(fmt.Sprintf("\t\t%s: p.Get%s(),\n", name, name))
	}
	code.WriteString("\t}\n")
	code.WriteString("}\n\n")

	return code.String()
}

// generateString generates a debug print of every non-payload field
func (g *Generator) generateString(recv string) string {
	var code strings.Builder
	var parts, args []string

	for _, fp := range g.layout.Fields {
		if fp.Field.Payload {
			continue
		}
		parts = append(parts, fp.Field.Name+": %v")
		args = append(args, fmt.Sprintf("p.Get%s()", exportName(fp.Field.Name)))
	}

	code.WriteString(fmt.Sprintf("func (p *%s) String() string {\n", recv))
	if len(parts) == 0 {
		code.WriteString(fmt.Sprintf("\treturn %q\n", g.base()+" { }"))
	} else {
		format := g.base() + " { " + strings.Join(parts, ", ") + " }"
		code.WriteString(fmt.Sprintf("\treturn fmt.Sprintf(%q, %s)\n", format, strings.Join(args, ", ")))
	}
	code.WriteString("}\n\n")

	return code.String()
}

// generateMutableOnly generates the write side of the buffer accessors
func (g *Generator) generateMutableOnly() string {
	var code strings.Builder
	names := g.layout.Names

	code.WriteString("// PacketMut returns the full backing buffer for writing.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) PacketMut() []byte {\n", names.Mutable))
	code.WriteString("\treturn p.buf\n")
	code.WriteString("}\n\n")

	code.WriteString("// PayloadMut returns the writable payload window.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) PayloadMut() []byte {\n", names.Mutable))
	code.WriteString("\treturn p.Payload()\n")
	code.WriteString("}\n\n")

	code.WriteString("// ToImmutable returns a read-only view sharing the buffer.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) ToImmutable() *%s {\n", names.Mutable, names.View))
	code.WriteString(fmt.Sprintf("\treturn &%s{buf: p.buf}\n", names.View))
	code.WriteString("}\n\n")

	code.WriteString("// ConsumeToImmutable moves the buffer into a read-only view.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) ConsumeToImmutable() *%s {\n", names.Mutable, names.View))
	code.WriteString(fmt.Sprintf("\tv := &%s{buf: p.buf}\n", names.View))
	code.WriteString("\tp.buf = nil\n")
	code.WriteString("\treturn v\n")
	code.WriteString("}\n\n")

	return code.String()
}

// generateSetters generates the write accessors of one field
func (g *Generator) generateSetters(fp *analyzer.FieldPlan) string {
	var code strings.Builder
	recv := g.layout.Names.Mutable
	name := exportName(fp.Field.Name)

	switch fp.Field.Type.Kind {
	case parser.PrimitiveKind:
		code.WriteString(fmt.Sprintf("// Set%s writes the %s field; bits above its width are dropped.\n", name, fp.Field.Name))
		code.WriteString(fmt.Sprintf("func (p *%s) Set%s(v %s) {\n", recv, name, fp.Type.GoType()))
		code.WriteString(fmt.Sprintf("\tco := %s\n", g.offsetExpr(fp.Offset)))
		code.WriteString("\tx := uint64(v)\n")
		code.WriteString(writeStmts("p.buf", "co", "x", fp.Ops))
		code.WriteString("}\n\n")

	case parser.MiscKind:
		vars := make([]string, len(fp.Args))
		for i := range fp.Args {
			vars[i] = fmt.Sprintf("a%d", i)
		}
		code.WriteString(fmt.Sprintf("// Set%s writes the construct_with values of the %s field.\n", name, fp.Field.Name))
		code.WriteString(fmt.Sprintf("func (p *%s) Set%s(v %s) {\n", recv, name, fp.Field.Type.Name))
		code.WriteString(fmt.Sprintf("\t%s := v.ToPrimitiveValues()\n", strings.Join(vars, ", ")))
		for i, arg := range fp.Args {
			assign := "="
			if i == 0 {
				assign = ":="
			}
			code.WriteString(fmt.Sprintf("\tco %s %s\n", assign, g.offsetExpr(arg.Offset)))
			code.WriteString(fmt.Sprintf("\tx%d := uint64(a%d)\n", i, i))
			code.WriteString(writeStmts("p.buf", "co", fmt.Sprintf("x%d", i), arg.Ops))
		}
		code.WriteString("}\n\n")

	case parser.VectorKind:
		code.WriteString(g.generateVectorSetters(fp))
	}

	return code.String()
}

func (g *Generator) generateVectorSetters(fp *analyzer.FieldPlan) string {
	var code strings.Builder
	recv := g.layout.Names.Mutable
	name := exportName(fp.Field.Name)
	overflow := fmt.Sprintf("\t\tpanic(fmt.Sprintf(\"%s.%s: %%d bytes exceed the declared length or the buffer\", need))\n",
		g.base(), fp.Field.Name)

	if !fp.Field.Payload {
		code.WriteString(fmt.Sprintf("// Get%sRawMut returns the writable %s window.\n", name, fp.Field.Name))
		code.WriteString(fmt.Sprintf("func (p *%s) Get%sRawMut() []byte {\n", recv, name))
		code.WriteString(fmt.Sprintf("\treturn p.Get%sRaw()\n", name))
		code.WriteString("}\n\n")
	}

	if fp.Elem.Packet != "" {
		elem := g.elemNames(fp)
		code.WriteString(fmt.Sprintf("// Set%s populates consecutive %s elements; it panics if they do not fit.\n", name, fp.Elem.Packet))
		code.WriteString(fmt.Sprintf("func (p *%s) Set%s(vals []%s) {\n", recv, name, fp.Elem.Packet))
		code.WriteString(fmt.Sprintf("\tstart := %s\n", g.offsetExpr(fp.Offset)))
		code.WriteString(fmt.Sprintf("\tlimit := %s\n", g.endExpr(fp.Length)))
		code.WriteString("\tneed := 0\n")
		code.WriteString("\tfor i := range vals {\n")
		code.WriteString(fmt.Sprintf("\t\tneed = packet.Add(need, PacketSizeOf%s(&vals[i]))\n", fp.Elem.Packet))
		code.WriteString("\t}\n")
		code.WriteString("\tif need == 0 {\n")
		code.WriteString("\t\treturn\n")
		code.WriteString("\t}\n")
		code.WriteString("\tif need > limit-start || !packet.Fits(p.buf, start, need) {\n")
		code.WriteString(overflow)
		code.WriteString("\t}\n")
		code.WriteString("\toff := start\n")
		code.WriteString("\tfor i := range vals {\n")
		code.WriteString(fmt.Sprintf("\t\tn := PacketSizeOf%s(&vals[i])\n", fp.Elem.Packet))
		code.WriteString(fmt.Sprintf("\t\tNew%s(p.buf[off : off+n]).Populate(&vals[i])\n", elem.Mutable))
		code.WriteString("\t\toff += n\n")
		code.WriteString("\t}\n")
		code.WriteString("}\n\n")
		return code.String()
	}

	goType := fp.Elem.Type.GoType()
	size := fp.Elem.Bytes
	code.WriteString(fmt.Sprintf("// Set%s writes the %s elements; it panics if they do not fit.\n", name, fp.Field.Name))
	code.WriteString(fmt.Sprintf("func (p *%s) Set%s(vals []%s) {\n", recv, name, goType))
	code.WriteString(fmt.Sprintf("\tstart := %s\n", g.offsetExpr(fp.Offset)))
	code.WriteString(fmt.Sprintf("\tlimit := %s\n", g.endExpr(fp.Length)))
	if size == 1 {
		code.WriteString("\tneed := len(vals)\n")
	} else {
		code.WriteString(fmt.Sprintf("\tneed := len(vals) * %d\n", size))
	}
	code.WriteString("\tif need == 0 {\n")
	code.WriteString("\t\treturn\n")
	code.WriteString("\t}\n")
	code.WriteString("\tif need > limit-start || !packet.Fits(p.buf, start, need) {\n")
	code.WriteString(overflow)
	code.WriteString("\t}\n")
	if size == 1 {
		code.WriteString("\tcopy(p.buf[start:], vals)\n")
	} else {
		code.WriteString("\tfor i, v := range vals {\n")
		code.WriteString(fmt.Sprintf("\t\tco := start + i*%d\n", size))
		code.WriteString("\t\tx := uint64(v)\n")
		code.WriteString(indent(writeStmts("p.buf", "co", "x", fp.Elem.Ops)))
		code.WriteString("\t}\n")
	}
	code.WriteString("}\n\n")

	return code.String()
}

// generatePopulate generates Populate, which writes every field in order
func (g *Generator) generatePopulate() string {
	var code strings.Builder

	code.WriteString("// Populate writes every field of v in declared order.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) Populate(v *%s) {\n", g.layout.Names.Mutable, g.base()))
	for _, fp := range g.layout.Fields {
		name := exportName(fp.Field.Name)
		code.WriteString(fmt.Sprintf("\tp.Set%s(v.%s)\n", name, name))
	}
	code.WriteString("}\n\n")

	return code.String()
}

// generateIter generates the cursor used when this packet is a vector element
func (g *Generator) generateIter() string {
	var code strings.Builder
	iter := g.base() + "Iter"
	view := g.layout.Names.View

	code.WriteString(fmt.Sprintf("// %s walks consecutive %s packets, each sized by its own PacketSize.\n", iter, g.base()))
	code.WriteString(fmt.Sprintf("type %s struct {\n", iter))
	code.WriteString("\tbuf []byte\n")
	code.WriteString("\toff int\n")
	code.WriteString("}\n\n")

	code.WriteString("// Next returns the next element, or nil when done.\n")
	code.WriteString(fmt.Sprintf("func (it *%s) Next() *%s {\n", iter, view))
	code.WriteString("\tif it.off >= len(it.buf) {\n")
	code.WriteString("\t\treturn nil\n")
	code.WriteString("\t}\n")
	code.WriteString("\trest := it.buf[it.off:]\n")
	code.WriteString(fmt.Sprintf("\tv := New%s(rest)\n", view))
	code.WriteString("\tif v == nil {\n")
	code.WriteString("\t\tit.off = len(it.buf)\n")
	code.WriteString("\t\treturn nil\n")
	code.WriteString("\t}\n")
	code.WriteString("\tn := v.PacketSize()\n")
	code.WriteString("\tif n <= 0 {\n")
	code.WriteString("\t\tit.off = len(it.buf)\n")
	code.WriteString("\t\treturn nil\n")
	code.WriteString("\t}\n")
	code.WriteString("\tif n >= len(rest) {\n")
	code.WriteString("\t\tit.off = len(it.buf)\n")
	code.WriteString("\t\treturn v\n")
	code.WriteString("\t}\n")
	code.WriteString("\tv.buf = rest[:n:n]\n")
	code.WriteString("\tit.off += n\n")
	code.WriteString("\treturn v\n")
	code.WriteString("}\n\n")

	return code.String()
}

// generateSizeOf generates the serialized size of a canonical value
func (g *Generator) generateSizeOf() string {
	var code strings.Builder
	base := g.base()

	code.WriteString(fmt.Sprintf("// PacketSizeOf%s returns the number of bytes v occupies once populated.\n", base))
	code.WriteString(fmt.Sprintf("func PacketSizeOf%s(v *%s) int {\n", base, base))
	code.WriteString(fmt.Sprintf("\tsize := %sMinimumPacketSize\n", base))
	for _, fp := range g.layout.Fields {
		if fp.Field.Type.Kind != parser.VectorKind {
			continue
		}
		name := exportName(fp.Field.StructLength)
		if fp.Elem.Packet != "" {
			code.WriteString(fmt.Sprintf("\tfor i := range v.%s {\n", name))
			code.WriteString(fmt.Sprintf("\t\tsize += PacketSizeOf%s(&v.%s[i])\n", fp.Elem.Packet, name))
			code.WriteString("\t}\n")
		} else if fp.Elem.Bytes == 1 {
			code.WriteString(fmt.Sprintf("\tsize += len(v.%s)\n", name))
		} else {
			code.WriteString(fmt.Sprintf("\tsize += len(v.%s) * %d\n", name, fp.Elem.Bytes))
		}
	}
	code.WriteString("\treturn size\n")
	code.WriteString("}\n\n")

	return code.String()
}

// offsetExpr renders a byte offset; dynamic offsets saturate like
// analyzer.Offset.Eval
func (g *Generator) offsetExpr(o analyzer.Offset) string {
	if o.Static() {
		return strconv.Itoa(o.Bytes)
	}
	var parts []string
	if o.Bytes != 0 {
		parts = append(parts, strconv.Itoa(o.Bytes))
	}
	for _, e := range o.Dynamic {
		parts = append(parts, fmt.Sprintf("p.%s()", g.lenFns[e]))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return fmt.Sprintf("packet.Sum(%s)", strings.Join(parts, ", "))
}

// endExpr renders the end of a window starting at start
func (g *Generator) endExpr(length *analyzer.Expr) string {
	if length == nil {
		return "len(p.buf)"
	}
	return fmt.Sprintf("packet.Add(start, p.%s())", g.lenFns[length])
}

// renderExpr renders a length expression in int arithmetic
func (g *Generator) renderExpr(e *analyzer.Expr) string {
	switch e.Kind {
	case analyzer.ExprLit:
		return e.Text
	case analyzer.ExprField:
		return fmt.Sprintf("int(p.Get%s())", exportName(e.Name))
	case analyzer.ExprConst:
		return e.Name
	case analyzer.ExprCall:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = g.renderExpr(a)
		}
		return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
	case analyzer.ExprParen:
		return "(" + g.renderExpr(e.Left) + ")"
	case analyzer.ExprBinary:
		l, r := g.renderExpr(e.Left), g.renderExpr(e.Right)
		fn := map[byte]string{'+': "Add", '-': "Sub", '*': "Mul", '/': "Div", '%': "Mod"}[e.Op]
		return fmt.Sprintf("packet.%s(%s, %s)", fn, l, r)
	}
	return "0"
}

// readExpr renders the OR of every op's contribution as a uint64
func readExpr(buf, co string, ops []analyzer.Op) string {
	terms := make([]string, len(ops))
	for i, op := range ops {
		b := fmt.Sprintf("%s[%s+%d]", buf, co, op.Index)
		if op.Mask != 0xFF {
			b = fmt.Sprintf("%s&%#04x", b, op.Mask)
		}
		if op.Low > 0 {
			if op.Mask != 0xFF {
				b = "(" + b + ")"
			}
			b = fmt.Sprintf("%s>>%d", b, op.Low)
		}
		t := fmt.Sprintf("uint64(%s)", b)
		if op.Pos > 0 {
			t = fmt.Sprintf("%s<<%d", t, op.Pos)
		}
		terms[i] = t
	}
	return strings.Join(terms, " | ")
}

// writeStmts renders the stores of value v, preserving bits outside each
// op's mask
func writeStmts(buf, co, v string, ops []analyzer.Op) string {
	var code strings.Builder
	for _, op := range ops {
		dst := fmt.Sprintf("%s[%s+%d]", buf, co, op.Index)
		src := v
		if op.Pos > 0 {
			src = fmt.Sprintf("%s>>%d", v, op.Pos)
		}
		if op.Mask == 0xFF {
			code.WriteString(fmt.Sprintf("\t%s = byte(%s)\n", dst, src))
			continue
		}
		val := fmt.Sprintf("byte(%s)", src)
		if op.Low > 0 {
			val = fmt.Sprintf("%s<<%d", val, op.Low)
		}
		code.WriteString(fmt.Sprintf("\t%s = %s&^%#04x | %s&%#04x\n", dst, dst, op.Mask, val, op.Mask))
	}
	return code.String()
}

func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var out strings.Builder
	for _, l := range lines {
		if l != "" {
			out.WriteString("\t" + l)
		}
	}
	return out.String()
}

// exportName converts a schema field name to an exported Go identifier
func exportName(name string) string {
	var out strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		out.WriteString(strings.ToUpper(part[:1]))
		out.WriteString(part[1:])
	}
	s := out.String()
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return "X" + s
	}
	return s
}

// checkNames rejects a family whose generated identifiers would clash.
// Field names like a_b and aB export to the same name, and a vector x gets
// a GetXRaw accessor that a field x_raw would also get.
func checkNames(family *analyzer.Family) error {
	owners := map[string]string{}
	for _, l := range family.Layouts {
		base := l.Packet.Base
		names := []string{base, base + "MinimumPacketSize", base + "Iter", "PacketSizeOf" + base}
		for _, v := range []string{l.Names.View, l.Names.Mutable} {
			names = append(names, v, "New"+v, "Owned"+v)
		}
		for _, n := range names {
			if owner, ok := owners[n]; ok {
				return &parser.Error{Kind: parser.KindNameCollision, Packet: base,
					Detail: fmt.Sprintf("%s is also generated for packet %s", n, owner)}
			}
			owners[n] = base
		}
		if err := checkFieldNames(l); err != nil {
			return err
		}
	}
	return nil
}

func checkFieldNames(l *analyzer.Layout) error {
	// struct members and view methods live in separate namespaces
	members := map[string]int{}
	methods := map[string]int{}
	for i := range l.Fields {
		fp := &l.Fields[i]
		name := exportName(fp.Field.Name)
		if j, ok := members[name]; ok {
			return nameCollision(l, fp, j, name)
		}
		members[name] = i

		for _, m := range accessorNames(fp) {
			if j, ok := methods[m]; ok {
				return nameCollision(l, fp, j, m)
			}
			methods[m] = i
		}
	}
	return nil
}

func nameCollision(l *analyzer.Layout, fp *analyzer.FieldPlan, other int, name string) error {
	o := l.Fields[other].Field
	err := parser.FieldError(parser.KindNameCollision, l.Packet.Base, fp.Field, "%s is also generated for %s", name, o.Name)
	err.Other, err.OtherIndex = o.Name, o.Index
	return err
}

// accessorNames lists the view methods generated for one field
func accessorNames(fp *analyzer.FieldPlan) []string {
	name := exportName(fp.Field.Name)
	out := []string{"Get" + name, "Set" + name}
	if fp.Field.Type.Kind != parser.VectorKind {
		return out
	}
	if fp.Length != nil {
		out = append(out, "len"+name)
	}
	if fp.Elem.Packet != "" {
		out = append(out, "Get"+name+"Iter")
	}
	if !fp.Field.Payload {
		out = append(out, "Get"+name+"Raw", "Get"+name+"RawMut")
	}
	return out
}
