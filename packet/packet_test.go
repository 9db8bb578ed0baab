package packet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4}
	tests := []struct {
		name       string
		start, end int
		want       []byte
	}{
		{"inside", 1, 3, []byte{1, 2}},
		{"clipped", 3, 10, []byte{3, 4}},
		{"saturated end", 2, math.MaxInt, []byte{2, 3, 4}},
		{"start at end", 5, 9, []byte{}},
		{"start past end", math.MaxInt, math.MaxInt, []byte{}},
		{"negative start", -1, 2, []byte{}},
		{"inverted", 3, 1, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(buf, tt.start, tt.end)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(got), cap(got))
		})
	}
}

func TestFits(t *testing.T) {
	buf := make([]byte, 4)
	tests := []struct {
		off, n int
		want   bool
	}{
		{0, 4, true},
		{3, 1, true},
		{4, 0, true},
		{4, 1, false},
		{-1, 1, false},
		{math.MaxInt, 1, false},
		{1, math.MaxInt, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fits(buf, tt.off, tt.n), "Fits(%d, %d)", tt.off, tt.n)
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"add", Add(2, 3), 5},
		{"add overflow", Add(math.MaxInt, 1), math.MaxInt},
		{"add underflow", Add(math.MinInt, -1), math.MinInt},
		{"add mixed signs", Add(math.MaxInt, math.MinInt), -1},
		{"sub", Sub(2, 3), -1},
		{"sub overflow", Sub(math.MaxInt, -1), math.MaxInt},
		{"sub underflow", Sub(math.MinInt, 1), math.MinInt},
		{"mul", Mul(-4, 3), -12},
		{"mul zero", Mul(0, math.MaxInt), 0},
		{"mul overflow", Mul(math.MaxInt/2+1, 2), math.MaxInt},
		{"mul negative overflow", Mul(math.MaxInt, -2), math.MinInt},
		{"mul min by -1", Mul(math.MinInt, -1), math.MaxInt},
		{"sum", Sum(1, 2, 3), 6},
		{"sum empty", Sum(), 0},
		{"sum saturates", Sum(4, math.MaxInt, 10), math.MaxInt},
		{"div by zero", Div(7, 0), 0},
		{"mod by zero", Mod(7, 0), 0},
		{"clamp", Clamp(-3), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
}
