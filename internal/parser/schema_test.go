package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	pkts, err := ParseFile("testdata/simple.yaml")
	require.NoError(t, err)
	require.Len(t, pkts, 1)

	p := pkts[0]
	assert.Equal(t, "Fruit", p.Base)
	require.Len(t, p.Fields, 4)

	tests := []struct {
		name  string
		kind  TypeKind
		width int
		e     Endianness
	}{
		{"banana", PrimitiveKind, 8, Big},
		{"apple", PrimitiveKind, 4, Big},
		{"cherry", PrimitiveKind, 12, Big},
		{"data", VectorKind, 0, Big},
	}
	for i, tt := range tests {
		f := p.Fields[i]
		assert.Equal(t, tt.name, f.Name)
		assert.Equal(t, i, f.Index)
		assert.Equal(t, tt.kind, f.Type.Kind, tt.name)
		assert.Equal(t, tt.width, f.Type.Width, tt.name)
		assert.Equal(t, tt.e, f.Type.Endianness, tt.name)
	}

	data := p.Field("data")
	require.NotNil(t, data)
	assert.True(t, data.Payload)
	assert.Equal(t, "banana", data.Length)
	assert.Equal(t, "data", data.StructLength)
	assert.True(t, data.IsVariable())
	assert.Same(t, data, p.PayloadField())
}

func TestParseFile_Complex(t *testing.T) {
	pkts, err := ParseFile("testdata/complex.yaml")
	require.NoError(t, err)
	require.Len(t, pkts, 3)

	tcp := pkts[0]
	assert.Equal(t, "Tcp", tcp.Base)
	opts := tcp.Field("options")
	require.NotNil(t, opts)
	assert.Equal(t, MiscKind, opts.Type.Elem.Kind)
	assert.Equal(t, "TcpOption", opts.Type.Elem.Name)
	assert.Equal(t, "data_offset * 4 - 20", opts.Length)

	arp := pkts[2]
	mac := arp.Field("sender_hw_addr")
	require.NotNil(t, mac)
	assert.Equal(t, MiscKind, mac.Type.Kind)
	assert.Len(t, mac.ConstructWith, 6)
	assert.Nil(t, arp.Field("missing"))
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParsePacket_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldSpec
		want   error
		field  string
	}{
		{
			name: "multiple payload",
			fields: []FieldSpec{
				{Name: "banana", Type: "u8"},
				{Name: "first", Type: "[]u8", Attrs: []string{"payload", `length = "banana"`}},
				{Name: "second", Type: "[]u8", Attrs: []string{"payload"}},
			},
			want:  ErrMultiplePayload,
			field: "second",
		},
		{
			name: "missing length",
			fields: []FieldSpec{
				{Name: "body", Type: "[]u8"},
				{Name: "tail", Type: "u8"},
			},
			want:  ErrMissingLength,
			field: "body",
		},
		{
			name:   "vector of vector",
			fields: []FieldSpec{{Name: "v", Type: "[][]u8"}},
			want:   ErrVectorOfVector,
			field:  "v",
		},
		{
			name:   "misc without construct_with",
			fields: []FieldSpec{{Name: "addr", Type: "Ipv4Addr"}},
			want:   ErrMissingConstructWith,
			field:  "addr",
		},
		{
			name:   "endianness required",
			fields: []FieldSpec{{Name: "port", Type: "u16"}},
			want:   ErrEndiannessRequired,
			field:  "port",
		},
		{
			name:   "unsupported width",
			fields: []FieldSpec{{Name: "huge", Type: "u72be"}},
			want:   ErrUnsupportedWidth,
			field:  "huge",
		},
		{
			name:   "unnamed field",
			fields: []FieldSpec{{Name: "", Type: "u8"}},
			want:   ErrUnnamedField,
		},
		{
			name:   "invalid field name",
			fields: []FieldSpec{{Name: "not a name", Type: "u8"}},
			want:   ErrUnnamedField,
		},
		{
			name:   "unnamed type",
			fields: []FieldSpec{{Name: "x", Type: ""}},
			want:   ErrUnnamedType,
			field:  "x",
		},
		{
			name: "duplicate field",
			fields: []FieldSpec{
				{Name: "x", Type: "u8"},
				{Name: "x", Type: "u8"},
			},
			want:  ErrDuplicateField,
			field: "x",
		},
		{
			name:   "unknown annotation",
			fields: []FieldSpec{{Name: "x", Type: "u8", Attrs: []string{"packed"}}},
			want:   ErrUnknownAnnotation,
			field:  "x",
		},
		{
			name:   "length on primitive",
			fields: []FieldSpec{{Name: "x", Type: "u8", Attrs: []string{`length = "1"`}}},
			want:   ErrUnknownAnnotation,
			field:  "x",
		},
		{
			name:   "construct_with on vector",
			fields: []FieldSpec{{Name: "v", Type: "[]u8", Attrs: []string{"construct_with(u8)"}}},
			want:   ErrUnknownAnnotation,
			field:  "v",
		},
		{
			name:   "non-primitive construct arg",
			fields: []FieldSpec{{Name: "a", Type: "Addr", Attrs: []string{"construct_with([]u8)"}}},
			want:   ErrInvalidConstructArg,
			field:  "a",
		},
		{
			name:   "empty construct_with",
			fields: []FieldSpec{{Name: "a", Type: "Addr", Attrs: []string{"construct_with()"}}},
			want:   ErrMissingConstructWith,
			field:  "a",
		},
		{
			name: "empty packet",
			want: ErrEmptyPacket,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePacket(&PacketSpec{Name: "Test", Fields: tt.fields})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "Test", perr.Packet)
			if tt.field != "" {
				assert.Equal(t, tt.field, perr.Field)
			}
		})
	}
}

func TestParsePacket_MultiplePayloadNamesBoth(t *testing.T) {
	_, err := ParsePacket(&PacketSpec{Name: "Dual", Fields: []FieldSpec{
		{Name: "head", Type: "u8"},
		{Name: "first", Type: "[]u8", Attrs: []string{"payload", `length = "head"`}},
		{Name: "second", Type: "[]u8", Attrs: []string{"payload"}},
	}})

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindMultiplePayload, perr.Kind)
	assert.Equal(t, "second", perr.Field)
	assert.Equal(t, 2, perr.Index)
	assert.Equal(t, "first", perr.Other)
	assert.Equal(t, 1, perr.OtherIndex)
	assert.Contains(t, perr.Error(), "second")
	assert.Contains(t, perr.Error(), "first")
}

func TestParsePacket_VectorRules(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldSpec
	}{
		{
			name:   "last vector needs no length",
			fields: []FieldSpec{{Name: "n", Type: "u8"}, {Name: "rest", Type: "[]u8"}},
		},
		{
			name: "payload vector needs no length",
			fields: []FieldSpec{
				{Name: "body", Type: "[]u8", Attrs: []string{"payload"}},
				{Name: "tail", Type: "[]u8"},
			},
		},
		{
			name: "host endianness element",
			fields: []FieldSpec{
				{Name: "words", Type: "[]u32he"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePacket(&PacketSpec{Name: "Test", Fields: tt.fields})
			assert.NoError(t, err)
		})
	}
}

func TestParse_Document(t *testing.T) {
	_, err := Parse(&File{})
	assert.Error(t, err)

	_, err = Parse(nil)
	assert.Error(t, err)

	dup := &File{Packets: []PacketSpec{
		{Name: "A", Fields: []FieldSpec{{Name: "x", Type: "u8"}}},
		{Name: "A", Fields: []FieldSpec{{Name: "y", Type: "u8"}}},
	}}
	_, err = Parse(dup)
	assert.ErrorContains(t, err, "defined twice")

	bad := &File{Packets: []PacketSpec{{Name: "1bad", Fields: []FieldSpec{{Name: "x", Type: "u8"}}}}}
	_, err = Parse(bad)
	assert.ErrorContains(t, err, "invalid name")

	_, err = ParseBytes([]byte("packets: [unterminated"))
	assert.ErrorContains(t, err, "parse error")
}

func TestErrorKinds(t *testing.T) {
	for k := KindMultiplePayload; k <= KindInvalidName; k++ {
		t.Run(fmt.Sprintf("kind%d", k), func(t *testing.T) {
			assert.NotEqual(t, "unknown schema error", k.String())

			err := &Error{Kind: k, Packet: "P", Field: "f", Index: 1}
			assert.ErrorIs(t, err, &Error{Kind: k})
			assert.NotErrorIs(t, err, &Error{Kind: k + 100})
		})
	}
}
