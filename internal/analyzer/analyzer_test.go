package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/pktlayout/internal/parser"
)

func mustParse(t *testing.T, doc string) []*parser.Packet {
	t.Helper()
	pkts, err := parser.ParseBytes([]byte(doc))
	require.NoError(t, err)
	return pkts
}

func TestAnalyze_BitPacked(t *testing.T) {
	// u3 + u5 + u8 packs into two bytes
	pkts := mustParse(t, `
packets:
  - name: Flags
    fields:
      - {name: a, type: u3}
      - {name: b, type: u5}
      - {name: c, type: u8}
`)
	l, err := Analyze(pkts[0], nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 16, l.FixedBits)
	assert.Equal(t, 2, l.MinimumSize)
	assert.Nil(t, l.Payload)

	want := []struct {
		bytes, shift, bits int
	}{
		{0, 0, 3},
		{0, 3, 5},
		{1, 0, 8},
	}
	for i, w := range want {
		fp := l.Fields[i]
		assert.Equal(t, w.bytes, fp.Offset.Bytes, fp.Field.Name)
		assert.True(t, fp.Offset.Static(), fp.Field.Name)
		assert.Equal(t, w.shift, fp.Shift, fp.Field.Name)
		assert.Equal(t, w.bits, fp.Bits, fp.Field.Name)
	}
}

func TestAnalyze_GRE(t *testing.T) {
	pkts := mustParse(t, `
packets:
  - name: Gre
    fields:
      - {name: checksum_present, type: u1}
      - {name: routing_present, type: u1}
      - {name: key_present, type: u1}
      - {name: sequence_present, type: u1}
      - {name: strict_source_route, type: u1}
      - {name: recursion_control, type: u3}
      - {name: zero_flags, type: u5}
      - {name: version, type: u3}
      - {name: protocol_type, type: u16be}
      - {name: checksum, type: "[]u16be", attrs: ['length = "checksum_present * 2"']}
      - {name: offset, type: "[]u16be", attrs: ['length = "checksum_present * 2"']}
      - {name: key, type: "[]u32be", attrs: ['length = "key_present * 4"']}
      - {name: sequence, type: "[]u32be", attrs: ['length = "sequence_present * 4"']}
      - {name: routing, type: "[]u8", attrs: ['length = "0"']}
      - {name: payload, type: "[]u8", attrs: [payload]}
`)
	l, err := Analyze(pkts[0], nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 4, l.MinimumSize)

	checksum := l.Field("checksum")
	require.NotNil(t, checksum)
	assert.Equal(t, 4, checksum.Offset.Bytes)
	assert.True(t, checksum.Offset.Static())
	assert.Equal(t, 2, checksum.Elem.Bytes)
	assert.Equal(t, parser.Big, checksum.Elem.Type.Endianness)

	offset := l.Field("offset")
	assert.Equal(t, 4, offset.Offset.Bytes)
	assert.Len(t, offset.Offset.Dynamic, 1)

	require.NotNil(t, l.Payload)
	assert.Equal(t, 14, l.Payload.Field)
	assert.Nil(t, l.Payload.Length, "payload without length is unbounded")
	assert.Len(t, l.Payload.Lower.Dynamic, 5)
	assert.Equal(t, 4, l.Payload.Lower.Bytes)

	assert.Len(t, l.Size.Dynamic, 5)
	assert.Equal(t, "4 + (checksum_present * 2)", offset.Offset.String())
}

func TestAnalyze_PayloadBounds(t *testing.T) {
	pkts := mustParse(t, `
packets:
  - name: Fruit
    fields:
      - {name: banana, type: u8}
      - {name: data, type: "[]u8", attrs: [payload, 'length = "banana"']}
      - {name: trailer, type: u8}
`)
	l, err := Analyze(pkts[0], nil, Options{})
	require.NoError(t, err)

	require.NotNil(t, l.Payload)
	assert.Equal(t, 1, l.Payload.Lower.Bytes)
	require.NotNil(t, l.Payload.Length)
	assert.Equal(t, "banana", l.Payload.Length.String())

	// trailer sits after the payload
	trailer := l.Field("trailer")
	assert.Equal(t, 1, trailer.Offset.Bytes)
	assert.Len(t, trailer.Offset.Dynamic, 1)
	assert.Equal(t, 2, l.MinimumSize)
}

func TestAnalyze_ConstructWith(t *testing.T) {
	pkts := mustParse(t, `
packets:
  - name: Addr
    fields:
      - {name: version, type: u4}
      - {name: addr, type: Endpoint, attrs: ['construct_with(u16be, u8)']}
`)
	l, err := Analyze(pkts[0], nil, Options{})
	require.NoError(t, err)

	addr := l.Field("addr")
	require.Len(t, addr.Args, 2)
	assert.Equal(t, 24, addr.Bits)

	assert.Equal(t, 0, addr.Args[0].Offset.Bytes)
	assert.Equal(t, 4, addr.Args[0].Shift)
	assert.Len(t, addr.Args[0].Ops, 3)

	assert.Equal(t, 2, addr.Args[1].Offset.Bytes)
	assert.Equal(t, 4, addr.Args[1].Shift)

	assert.Equal(t, 28, l.FixedBits)
	assert.Equal(t, 4, l.MinimumSize)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		opts Options
		want error
	}{
		{
			name: "misaligned vector",
			doc: `
packets:
  - name: P
    fields:
      - {name: a, type: u3}
      - {name: v, type: "[]u8", attrs: ['length = "1"']}
      - {name: b, type: u5}
`,
			want: parser.ErrMisalignedVector,
		},
		{
			name: "sub-byte element",
			doc: `
packets:
  - name: P
    fields:
      - {name: v, type: "[]u4"}
`,
			want: parser.ErrUnsupportedSubByteVectorElement,
		},
		{
			name: "twelve bit element",
			doc: `
packets:
  - name: P
    fields:
      - {name: v, type: "[]u12be"}
`,
			want: parser.ErrUnsupportedSubByteVectorElement,
		},
		{
			name: "host order unset",
			doc: `
packets:
  - name: P
    fields:
      - {name: a, type: u16he}
`,
			want: parser.ErrHostOrderUnset,
		},
		{
			name: "host order unset in vector element",
			doc: `
packets:
  - name: P
    fields:
      - {name: v, type: "[]u32he"}
`,
			want: parser.ErrHostOrderUnset,
		},
		{
			name: "unknown packet element",
			doc: `
packets:
  - name: P
    fields:
      - {name: opts, type: "[]Option"}
`,
			want: parser.ErrUnknownPacketType,
		},
		{
			name: "forward length reference",
			doc: `
packets:
  - name: P
    fields:
      - {name: v, type: "[]u8", attrs: ['length = "n"']}
      - {name: n, type: u8}
`,
			want: parser.ErrForwardLengthReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkts := mustParse(t, tt.doc)
			_, err := AnalyzeFamily(pkts, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnalyze_HostOrder(t *testing.T) {
	doc := `
packets:
  - name: P
    fields:
      - {name: a, type: u16he}
`
	for _, order := range []ByteOrder{OrderBig, OrderLittle} {
		t.Run(order.String(), func(t *testing.T) {
			pkts := mustParse(t, doc)
			l, err := Analyze(pkts[0], nil, Options{HostOrder: order})
			require.NoError(t, err)

			want, _ := order.Resolve(parser.Host)
			assert.Equal(t, want, l.Fields[0].Type.Endianness)

			ops, err := Operations(0, 16, want)
			require.NoError(t, err)
			assert.Equal(t, ops, l.Fields[0].Ops)
		})
	}
}

func TestAnalyzeFamily(t *testing.T) {
	pkts := mustParse(t, `
packets:
  - name: Outer
    fields:
      - {name: count, type: u8}
      - {name: options, type: "[]Option", attrs: ['length = "count * option_size(count)"']}
      - {name: rest, type: "[]u8", attrs: [payload]}
  - name: Option
    fields:
      - {name: kind, type: u8}
      - {name: len, type: u8}
      - {name: data, type: "[]u8", attrs: ['length = "len - 2"']}
`)
	fam, err := AnalyzeFamily(pkts, Options{Naming: DefaultNaming()})
	require.NoError(t, err)
	require.Len(t, fam.Layouts, 2)

	outer, ok := fam.Lookup("Outer")
	require.True(t, ok)
	assert.Equal(t, "Option", outer.Field("options").Elem.Packet)
	assert.Equal(t, 2, outer.Field("options").Elem.MinSize)
	assert.Equal(t, []External{{Name: "option_size", Call: true}}, outer.Externals)
	assert.Equal(t, ViewNames{View: "OuterView", Mutable: "MutableOuterView"}, outer.Names)

	option, ok := fam.Lookup("Option")
	require.True(t, ok)
	assert.Equal(t, 2, option.MinimumSize)
	assert.Empty(t, option.Externals)

	_, ok = fam.Lookup("Missing")
	assert.False(t, ok)
}

func TestAnalyzeFamily_NameCollision(t *testing.T) {
	pkts := mustParse(t, `
packets:
  - name: A
    fields:
      - {name: x, type: u8}
  - name: B
    fields:
      - {name: y, type: u8}
`)
	naming := DefaultNaming()
	naming.Overrides = map[string]ViewNames{"B": {View: "AView"}}

	_, err := AnalyzeFamily(pkts, Options{Naming: naming})
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrNameCollision)
	assert.Contains(t, err.Error(), "AView")
}

func TestAnalyzeFamily_InvalidName(t *testing.T) {
	pkts := mustParse(t, `
packets:
  - name: A
    fields:
      - {name: x, type: u8}
`)
	tests := []struct {
		name   string
		naming Naming
	}{
		{"format", Naming{View: "%s-View"}},
		{"override", Naming{Overrides: map[string]ViewNames{"A": {Mutable: "A View"}}}},
		{"keyword", Naming{Overrides: map[string]ViewNames{"A": {View: "type"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeFamily(pkts, Options{Naming: tt.naming})
			assert.ErrorIs(t, err, parser.ErrInvalidName)
		})
	}
}
