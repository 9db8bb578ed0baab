package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexhholmes/pktlayout/internal/analyzer"
	"github.com/alexhholmes/pktlayout/internal/parser"
	"github.com/alexhholmes/pktlayout/internal/testutil/testlog"
)

func analyze(t *testing.T, doc string, opts analyzer.Options) *analyzer.Family {
	t.Helper()
	pkts, err := parser.ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes() error: %v", err)
	}
	fam, err := analyzer.AnalyzeFamily(pkts, opts)
	if err != nil {
		t.Fatalf("AnalyzeFamily() error: %v", err)
	}
	return fam
}

func generate(t *testing.T, fam *analyzer.Family, base string) string {
	t.Helper()
	l, ok := fam.Lookup(base)
	if !ok {
		t.Fatalf("no layout for %s", base)
	}
	code, err := NewGenerator(l, fam).Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return code
}

func assertContains(t *testing.T, code string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(code, w) {
			t.Errorf("missing %q", w)
		}
	}
}

func TestGenerateFixedFields(t *testing.T) {
	testlog.Start(t)
	fam := analyze(t, `
packets:
  - name: Flags
    fields:
      - {name: a, type: u3}
      - {name: b_flag, type: u5}
      - {name: c, type: u16be}
`, analyzer.Options{})
	code := generate(t, fam, "Flags")

	assertContains(t, code,
		"type Flags struct {\n\tA uint8\n\tBFlag uint8\n\tC uint16\n}",
		"const FlagsMinimumPacketSize = 3",
		"type FlagsView struct {",
		"type MutableFlagsView struct {",
		"func NewFlagsView(buf []byte) *FlagsView {",
		"if len(buf) < FlagsMinimumPacketSize {",
		"func OwnedMutableFlagsView(buf []byte) *MutableFlagsView {",
		"var _ packet.MutablePacket = (*MutableFlagsView)(nil)",
	)

	// a: top three bits of byte 0
	assertContains(t, code,
		"func (p *FlagsView) GetA() uint8 {\n\tco := 0\n\treturn uint8(uint64((p.buf[co+0]&0xe0)>>5))\n}",
		"p.buf[co+0] = p.buf[co+0]&^0xe0 | byte(x)<<5&0xe0",
	)

	// b_flag: low five bits of byte 0
	assertContains(t, code,
		"return uint8(uint64(p.buf[co+0]&0x1f))",
		"p.buf[co+0] = p.buf[co+0]&^0x1f | byte(x)&0x1f",
	)

	// c: big endian u16 at byte 1
	assertContains(t, code,
		"func (p *MutableFlagsView) GetC() uint16 {\n\tco := 1\n",
		"return uint16(uint64(p.buf[co+0])<<8 | uint64(p.buf[co+1]))",
		"p.buf[co+0] = byte(x>>8)",
		"p.buf[co+1] = byte(x)",
	)

	// fixed offsets never need a bounds check
	if strings.Contains(code, "> len(p.buf) {\n\t\treturn 0") {
		t.Error("unexpected bounds check on static offset")
	}

	// no payload field
	assertContains(t, code, "return p.buf[:0:0]")
}

func TestGenerateLittleEndian(t *testing.T) {
	testlog.Start(t)
	fam := analyze(t, `
packets:
  - name: Le
    fields:
      - {name: v, type: u16le}
      - {name: h, type: u16he}
`, analyzer.Options{HostOrder: analyzer.OrderLittle})
	code := generate(t, fam, "Le")

	assertContains(t, code,
		"return uint16(uint64(p.buf[co+0]) | uint64(p.buf[co+1])<<8)",
		"p.buf[co+0] = byte(x)\n\tp.buf[co+1] = byte(x>>8)",
	)
	if strings.Count(code, "uint64(p.buf[co+0]) | uint64(p.buf[co+1])<<8") != 4 {
		t.Error("he field should resolve to little endian in both views")
	}
}

func TestGenerateVectorsAndPayload(t *testing.T) {
	testlog.Start(t)
	fam := analyze(t, `
packets:
  - name: Gre
    fields:
      - {name: checksum_present, type: u1}
      - {name: routing_present, type: u1}
      - {name: flags, type: u14be}
      - {name: protocol_type, type: u16be}
      - name: checksum
        type: "[]u16be"
        attrs: ['length = "gre_checksum_length(checksum_present, routing_present)"']
      - {name: key, type: "[]u32be", attrs: ['length = "(checksum_present + 1) * 4 / 2 % 5"']}
      - {name: tail_len, type: u8}
      - {name: payload, type: "[]u8", attrs: [payload]}
`, analyzer.Options{})
	code := generate(t, fam, "Gre")

	assertContains(t, code,
		"type Gre struct {",
		"\tChecksum []uint16\n",
		"\tPayload []uint8\n",
		"const GreMinimumPacketSize = 5",
	)

	// length helpers on both views
	assertContains(t, code,
		"func (p *GreView) lenChecksum() int {\n\treturn packet.Clamp(gre_checksum_length(int(p.GetChecksumPresent()), int(p.GetRoutingPresent())))\n}",
		"func (p *MutableGreView) lenChecksum() int {",
		"return packet.Clamp(packet.Mod(packet.Div(packet.Mul((packet.Add(int(p.GetChecksumPresent()), 1)), 4), 2), 5))",
	)

	// vectors
	assertContains(t, code,
		"func (p *GreView) GetChecksum() []uint16 {\n\tstart := 4\n\traw := packet.Window(p.buf, start, packet.Add(start, p.lenChecksum()))\n",
		"vals := make([]uint16, len(raw)/2)",
		"vals[i] = uint16(uint64(raw[co+0])<<8 | uint64(raw[co+1]))",
		"func (p *GreView) GetKeyRaw() []byte {\n\tstart := packet.Sum(4, p.lenChecksum())\n",
		"func (p *MutableGreView) GetKeyRawMut() []byte {",
		"func (p *MutableGreView) SetKey(vals []uint32) {",
		"need := len(vals) * 4",
		"if need == 0 {\n\t\treturn\n\t}\n\tif need > limit-start || !packet.Fits(p.buf, start, need) {",
	)

	// a primitive after vectors is bounds checked, its offset saturates
	assertContains(t, code,
		"func (p *GreView) GetTailLen() uint8 {\n\tco := packet.Sum(4, p.lenChecksum(), p.lenKey())\n\tif !packet.Fits(p.buf, co, 1) {\n\t\treturn 0\n\t}\n",
	)

	// unbounded payload, no raw accessor
	assertContains(t, code,
		"func (p *GreView) Payload() []byte {\n\tstart := packet.Sum(5, p.lenChecksum(), p.lenKey())\n\treturn packet.Window(p.buf, start, len(p.buf))\n}",
		"func (p *GreView) GetPayload() []uint8 {",
		"return append([]uint8(nil), raw...)",
		"copy(p.buf[start:], vals)",
		"func (p *GreView) PacketSize() int {\n\treturn packet.Sum(5, p.lenChecksum(), p.lenKey())\n}",
	)
	if strings.Contains(code, "GetPayloadRaw") {
		t.Error("payload field should not get a raw accessor")
	}

	// canonical value helpers
	assertContains(t, code,
		"func PacketSizeOfGre(v *Gre) int {\n\tsize := GreMinimumPacketSize\n\tsize += len(v.Checksum) * 2\n\tsize += len(v.Key) * 4\n\tsize += len(v.Payload)\n",
		"func (p *MutableGreView) Populate(v *Gre) {\n\tp.SetChecksumPresent(v.ChecksumPresent)\n",
		"\t\tProtocolType: p.GetProtocolType(),\n",
		`"Gre { checksum_present: %v, routing_present: %v, flags: %v, protocol_type: %v, checksum: %v, key: %v, tail_len: %v }"`,
		"func (p *MutableGreView) ConsumeToImmutable() *GreView {",
		"p.buf = nil",
	)
}

func TestGenerateNestedPackets(t *testing.T) {
	testlog.Start(t)
	fam := analyze(t, `
packets:
  - name: Outer
    fields:
      - {name: options_len, type: u8}
      - {name: options, type: "[]Option", attrs: ['length = "options_len"']}
  - name: Option
    fields:
      - {name: kind, type: u8}
      - {name: size, type: u8}
      - {name: value, type: "[]u8", attrs: ['length = "size - 2"']}
`, analyzer.Options{})

	outer := generate(t, fam, "Outer")
	assertContains(t, outer,
		"\tOptions []Option\n",
		"func (p *OuterView) GetOptionsIter() *OptionIter {\n\tstart := 1\n\treturn &OptionIter{buf: packet.Window(p.buf, start, packet.Add(start, p.lenOptions()))}\n}",
		"func (p *OuterView) GetOptions() []Option {",
		"vals = append(vals, v.FromPacket())",
		"need = packet.Add(need, PacketSizeOfOption(&vals[i]))",
		"NewMutableOptionView(p.buf[off : off+n]).Populate(&vals[i])",
		"size += PacketSizeOfOption(&v.Options[i])",
	)

	option := generate(t, fam, "Option")
	assertContains(t, option,
		"type OptionIter struct {",
		"func (it *OptionIter) Next() *OptionView {",
		"n := v.PacketSize()",
		"if n <= 0 {",
		"if n >= len(rest) {\n\t\tit.off = len(it.buf)\n\t\treturn v\n\t}\n\tv.buf = rest[:n:n]\n",
		"return packet.Clamp(packet.Sub(int(p.GetSize()), 2))",
	)
}

func TestGenerateMiscField(t *testing.T) {
	testlog.Start(t)
	fam := analyze(t, `
packets:
  - name: Arp
    fields:
      - {name: op, type: u16be}
      - {name: sender, type: Endpoint, attrs: ['construct_with(u16, u4, u4)']}
`, analyzer.Options{})
	code := generate(t, fam, "Arp")

	assertContains(t, code,
		"\tSender Endpoint\n",
		"const ArpMinimumPacketSize = 5",
		"func (p *ArpView) GetSender() Endpoint {",
		"if co := 2; packet.Fits(p.buf, co, 2) {",
		"a1 = uint64((p.buf[co+0]&0xf0)>>4)",
		"a2 = uint64(p.buf[co+0]&0x0f)",
		"return NewEndpoint(uint16(a0), uint8(a1), uint8(a2))",
		"func (p *MutableArpView) SetSender(v Endpoint) {\n\ta0, a1, a2 := v.ToPrimitiveValues()\n\tco := 2\n\tx0 := uint64(a0)\n",
		"co = 4\n\tx1 := uint64(a1)\n",
	)
}

func TestGenerateNaming(t *testing.T) {
	testlog.Start(t)
	opts := analyzer.Options{Naming: analyzer.Naming{
		View:    "%sReader",
		Mutable: "%sWriter",
		Overrides: map[string]analyzer.ViewNames{
			"B": {View: "BR", Mutable: "BW"},
		},
	}}
	fam := analyze(t, `
packets:
  - name: A
    fields: [{name: x, type: u8}]
  - name: B
    fields: [{name: y, type: u8}]
`, opts)

	assertContains(t, generate(t, fam, "A"),
		"type AReader struct {",
		"func NewAWriter(buf []byte) *AWriter {",
		"func (p *AWriter) ToImmutable() *AReader {",
	)
	assertContains(t, generate(t, fam, "B"),
		"type BR struct {",
		"type BW struct {",
		"type BIter struct {",
		"func (it *BIter) Next() *BR {",
	)
}

func TestGenerateFile(t *testing.T) {
	testlog.Start(t)
	fam := analyze(t, `
packets:
  - name: Udp
    fields:
      - {name: source, type: u16be}
      - {name: destination, type: u16be}
      - {name: length, type: u16be}
      - {name: checksum, type: u16be}
      - {name: payload, type: "[]u8", attrs: [payload, 'length = "length - 8"']}
  - name: Frame
    fields:
      - {name: count, type: u8}
      - {name: flags, type: u4}
      - {name: pad, type: u4}
      - {name: words, type: "[]u16le", attrs: ['length = "count * 2"']}
      - {name: datagrams, type: "[]Udp"}
`, analyzer.Options{})

	src, err := GenerateFile("wire", fam)
	if err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}
	code := string(src)

	assertContains(t, code,
		"// Code generated by packetgen. DO NOT EDIT.\n\npackage wire\n",
		`"github.com/alexhholmes/pktlayout/packet"`,
		"const UdpMinimumPacketSize = 8",
		"const FrameMinimumPacketSize = 2",
		"func PacketSizeOfFrame(v *Frame) int {",
		"func (p *UdpView) Payload() []byte {",
	)

	// Udp must come before Frame: packets keep declaration order
	if strings.Index(code, "type Udp struct") > strings.Index(code, "type Frame struct") {
		t.Error("packets out of declaration order")
	}
}

func TestExportName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"checksum", "Checksum"},
		{"checksum_present", "ChecksumPresent"},
		{"a__b", "AB"},
		{"_x", "X"},
		{"ihl2", "Ihl2"},
		{"_1", "X1"},
		{"_", "X"},
	}

	for _, tt := range tests {
		if got := exportName(tt.in); got != tt.want {
			t.Errorf("exportName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateFileNameCollisions(t *testing.T) {
	testlog.Start(t)
	tests := []struct {
		name  string
		doc   string
		field string
		other string
	}{
		{
			name: "same exported name",
			doc: `
packets:
  - name: P
    fields:
      - {name: a_b, type: u8}
      - {name: aB, type: u8}
`,
			field: "aB",
			other: "a_b",
		},
		{
			name: "raw accessor",
			doc: `
packets:
  - name: P
    fields:
      - {name: x, type: "[]u8", attrs: ['length = "2"']}
      - {name: x_raw, type: u8}
`,
			field: "x_raw",
			other: "x",
		},
		{
			name: "iterator accessor",
			doc: `
packets:
  - name: P
    fields:
      - {name: opts_iter, type: u8}
      - {name: opts, type: "[]Q"}
  - name: Q
    fields:
      - {name: v, type: u8}
`,
			field: "opts",
			other: "opts_iter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fam := analyze(t, tt.doc, analyzer.Options{})
			_, err := GenerateFile("wire", fam)
			if !errors.Is(err, parser.ErrNameCollision) {
				t.Fatalf("GenerateFile() error = %v, want name collision", err)
			}
			var perr *parser.Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *parser.Error", err)
			}
			if perr.Field != tt.field || perr.Other != tt.other {
				t.Errorf("collision on %s/%s, want %s/%s", perr.Field, perr.Other, tt.field, tt.other)
			}
		})
	}
}

func TestGenerateFileTypeCollision(t *testing.T) {
	testlog.Start(t)
	fam := analyze(t, `
packets:
  - name: A
    fields:
      - {name: x, type: u8}
  - name: AIter
    fields:
      - {name: y, type: u8}
`, analyzer.Options{})

	_, err := GenerateFile("wire", fam)
	if !errors.Is(err, parser.ErrNameCollision) {
		t.Fatalf("GenerateFile() error = %v, want name collision", err)
	}
}
