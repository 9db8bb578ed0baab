package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/pktlayout/internal/parser"
)

func TestSizeOf(t *testing.T) {
	tests := []struct {
		name  string
		field parser.Field
		want  int
	}{
		{"u1", parser.Field{Type: parser.Primitive(1, parser.Big)}, 1},
		{"u12be", parser.Field{Type: parser.Primitive(12, parser.Big)}, 12},
		{"u64le", parser.Field{Type: parser.Primitive(64, parser.Little)}, 64},
		{"[]u8", parser.Field{Type: parser.Vector(parser.Primitive(8, parser.Big))}, -1},
		{"[]Option", parser.Field{Type: parser.Vector(parser.Misc("Option"))}, -1},
		{"misc", parser.Field{
			Type:          parser.Misc("Endpoint"),
			ConstructWith: []parser.Type{parser.Primitive(16, parser.Big), parser.Primitive(3, parser.Big)},
		}, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeOf(&tt.field))
		})
	}
}

func TestMinimumSize(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		want   int
	}{
		{"3+5+8", []int{3, 5, 8}, 2},
		{"1", []int{1}, 1},
		{"3+5+8+1", []int{3, 5, 8, 1}, 3},
		{"64", []int{64}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &parser.Packet{Base: "P"}
			for i, w := range tt.widths {
				p.Fields = append(p.Fields, parser.Field{Index: i, Type: parser.Primitive(w, parser.Big)})
			}
			// vectors never count towards the minimum
			p.Fields = append(p.Fields, parser.Field{Index: len(tt.widths), Type: parser.Vector(parser.Primitive(8, parser.Big))})
			assert.Equal(t, tt.want, MinimumSize(p))
		})
	}
}

func TestElemSize(t *testing.T) {
	assert.Equal(t, 1, ElemSize(parser.Primitive(8, parser.Big)))
	assert.Equal(t, 4, ElemSize(parser.Primitive(32, parser.Little)))
	assert.Equal(t, 0, ElemSize(parser.Misc("Option")))
}

func TestTypeRegistry(t *testing.T) {
	reg := NewTypeRegistry()

	option := &parser.Packet{Base: "Option", Fields: []parser.Field{
		{Name: "kind", Type: parser.Primitive(8, parser.Big)},
		{Name: "len", Index: 1, Type: parser.Primitive(8, parser.Big)},
	}}
	header := &parser.Packet{Base: "Header", Fields: []parser.Field{
		{Name: "flags", Type: parser.Primitive(4, parser.Big)},
	}}

	require.NoError(t, reg.Register(option))
	require.NoError(t, reg.Register(header))
	assert.Error(t, reg.Register(option), "duplicate registration")

	got, ok := reg.Lookup("Option")
	require.True(t, ok)
	assert.Same(t, option, got)

	_, ok = reg.Lookup("Unknown")
	assert.False(t, ok)

	assert.Equal(t, []*parser.Packet{option, header}, reg.Packets())

	size, err := reg.MinimumSize("Option")
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	size, err = reg.MinimumSize("Header")
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	_, err = reg.MinimumSize("Unknown")
	assert.Error(t, err)
}

func TestNaming(t *testing.T) {
	n := DefaultNaming()
	assert.Equal(t, ViewNames{View: "GreView", Mutable: "MutableGreView"}, n.For("Gre"))

	n = Naming{
		View:    "%sReader",
		Mutable: "%sWriter",
		Overrides: map[string]ViewNames{
			"Udp": {Mutable: "UdpEditor"},
		},
	}
	assert.Equal(t, ViewNames{View: "GreReader", Mutable: "GreWriter"}, n.For("Gre"))
	assert.Equal(t, ViewNames{View: "UdpReader", Mutable: "UdpEditor"}, n.For("Udp"))

	var zero Naming
	assert.Equal(t, "XView", zero.For("X").View)
}
