package analyzer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/pktlayout/internal/parser"
)

type testScope struct {
	fields map[int]uint64
	consts map[string]int
}

func (s testScope) Field(i int) uint64 { return s.fields[i] }

func (s testScope) Const(name string) int { return s.consts[name] }

func (s testScope) Call(name string, args []int) int {
	switch name {
	case "words":
		return args[0] * 4
	case "sum":
		n := 0
		for _, a := range args {
			n += a
		}
		return n
	}
	return 0
}

func lengthPacket() *parser.Packet {
	bytes := parser.Vector(parser.Primitive(8, parser.Big))
	return &parser.Packet{Base: "Test", Fields: []parser.Field{
		{Name: "a", Index: 0, Type: parser.Primitive(8, parser.Big)},
		{Name: "b", Index: 1, Type: parser.Primitive(16, parser.Big)},
		{Name: "body", Index: 2, Type: bytes, StructLength: "body"},
		{Name: "tail", Index: 3, Type: bytes, StructLength: "tail"},
	}}
}

func TestTranslateLength_Eval(t *testing.T) {
	scope := testScope{
		fields: map[int]uint64{0: 3, 1: 4},
		consts: map[string]int{"HDR": 20, "HUGE": math.MaxInt},
	}

	tests := []struct {
		expr   string
		want   int
		length int
	}{
		{"a", 3, 3},
		{"7", 7, 7},
		{"0x10", 16, 16},
		{"a + b * 2", 11, 11},
		{"(a + b) * 2", 14, 14},
		{"b - a - 1", 0, 0},
		{"a - 10", -7, 0},
		{"b / 0", 0, 0},
		{"b % 0", 0, 0},
		{"b % 3", 1, 1},
		{"words(a) - 4", 8, 8},
		{"sum(a, b, 1)", 8, 8},
		{"sum()", 0, 0},
		{"HDR - b", 16, 16},
		{"words(sum(a, 1)) / 2", 8, 8},
		{"9223372036854775807", math.MaxInt, math.MaxInt},
		{"HUGE + a", math.MaxInt, math.MaxInt},
		{"HUGE * b", math.MaxInt, math.MaxInt},
		{"0 - HUGE - b", math.MinInt, 0},
	}

	pkt := lengthPacket()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			e, err := TranslateLength(tt.expr, pkt, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Eval(scope))
			assert.Equal(t, tt.length, e.Length(scope))
		})
	}
}

func TestTranslateLength_Errors(t *testing.T) {
	tests := []struct {
		expr string
		at   int
		want error
	}{
		{"1.5", 2, parser.ErrInvalidLengthLiteral},
		{"12abc", 2, parser.ErrInvalidLengthLiteral},
		{"0xZZ", 2, parser.ErrInvalidLengthLiteral},
		{"9223372036854775808", 2, parser.ErrInvalidLengthLiteral},
		{"body", 2, parser.ErrForwardLengthReference},
		{"tail + 1", 2, parser.ErrForwardLengthReference},
		{"body", 3, parser.ErrNonIntegerLengthToken},
		{`"a"`, 2, parser.ErrNonIntegerLengthToken},
		{"a | 1", 2, parser.ErrNonIntegerLengthToken},
		{"a +", 2, parser.ErrNonIntegerLengthToken},
		{"a b", 2, parser.ErrNonIntegerLengthToken},
		{"a(1)", 2, parser.ErrNonIntegerLengthToken},
		{"-a", 2, parser.ErrNonIntegerLengthToken},
		{"", 2, parser.ErrNonIntegerLengthToken},
		{"(a + 1", 2, parser.ErrUnbalancedLength},
		{"a + 1)", 2, parser.ErrUnbalancedLength},
		{"words(a", 2, parser.ErrUnbalancedLength},
		{")", 2, parser.ErrUnbalancedLength},
	}

	pkt := lengthPacket()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := TranslateLength(tt.expr, pkt, tt.at)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var perr *parser.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, pkt.Fields[tt.at].Name, perr.Field)
		})
	}
}

func TestOffset_EvalSaturates(t *testing.T) {
	scope := testScope{consts: map[string]int{"HUGE": math.MaxInt}}
	pkt := lengthPacket()
	huge, err := TranslateLength("HUGE", pkt, 2)
	require.NoError(t, err)
	seven, err := TranslateLength("7", pkt, 2)
	require.NoError(t, err)

	o := Offset{Bytes: 3, Dynamic: []*Expr{huge, seven}}
	assert.Equal(t, math.MaxInt, o.Eval(scope))
	assert.Equal(t, 10, Offset{Bytes: 3, Dynamic: []*Expr{seven}}.Eval(scope))
}

func TestExpr_StringAndExternals(t *testing.T) {
	e, err := TranslateLength("(words(a, MAX) + MAX) * b", lengthPacket(), 2)
	require.NoError(t, err)

	assert.Equal(t, "(words(a, MAX) + MAX) * b", e.String())
	assert.Equal(t, []External{
		{Name: "MAX"},
		{Name: "words", Call: true},
	}, e.Externals())
}
