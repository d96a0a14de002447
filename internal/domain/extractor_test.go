package domain

import (
	"fmt"
	"math"
	"testing"
	"time"

	m "github.com/mouse-blink/jsonreader/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want m.ParseOutcome
	}{
		{
			name: "not json",
			text: "not json",
			want: m.Failure(),
		},
		{
			name: "empty content",
			text: "",
			want: m.Failure(),
		},
		{
			name: "truncated object",
			text: `{"NumberOfPositions": 1, "Position0": {"x": 1`,
			want: m.Failure(),
		},
		{
			name: "trailing garbage",
			text: `{"NumberOfPositions": 0} x`,
			want: m.Failure(),
		},
		{
			name: "scalar document",
			text: `42`,
			want: m.Failure(),
		},
		{
			name: "zero positions",
			text: `{"NumberOfPositions": 0}`,
			want: m.Success(0, 0, 0),
		},
		{
			name: "two positions",
			text: `{"NumberOfPositions": 2, "Position0": {"x":1,"y":2}, "Position1": {"x":3,"y":4}}`,
			want: m.Success(2, 4, 6),
		},
		{
			name: "missing position contributes zero",
			text: `{"NumberOfPositions": 2, "Position0": {"x":1,"y":2}}`,
			want: m.Success(2, 1, 2),
		},
		{
			name: "missing count",
			text: `{"Position0": {"x":1,"y":2}}`,
			want: m.Success(0, 0, 0),
		},
		{
			name: "positions beyond count are ignored",
			text: `{"NumberOfPositions": 1, "Position0": {"x":1,"y":2}, "Position1": {"x":30,"y":40}}`,
			want: m.Success(1, 1, 2),
		},
		{
			name: "extra keys are ignored",
			text: `{"Name": "route", "NumberOfPositions": 1, "Position0": {"x":-5,"y":7,"z":100}}`,
			want: m.Success(1, -5, 7),
		},
		{
			name: "position that is not an object",
			text: `{"NumberOfPositions": 2, "Position0": [1, 2], "Position1": {"x":3,"y":4}}`,
			want: m.Success(2, 3, 4),
		},
		{
			name: "non numeric coordinates",
			text: `{"NumberOfPositions": 3, "Position0": {"x":"1","y":true}, "Position1": {"x":null,"y":1.5}, "Position2": {"x":2.0,"y":1e2}}`,
			want: m.Success(3, 2, 100),
		},
		{
			name: "non numeric count",
			text: `{"NumberOfPositions": "2", "Position0": {"x":1,"y":2}}`,
			want: m.Success(0, 0, 0),
		},
		{
			name: "fractional count",
			text: `{"NumberOfPositions": 1.5, "Position0": {"x":1,"y":2}}`,
			want: m.Success(0, 0, 0),
		},
		{
			name: "negative count",
			text: `{"NumberOfPositions": -3}`,
			want: m.Failure(),
		},
		{
			name: "negative count with positions",
			text: `{"NumberOfPositions": -1, "Position0": {"x":1,"y":2}}`,
			want: m.Failure(),
		},
		{
			name: "byte order mark",
			text: "\uFEFF" + `{"NumberOfPositions": 1, "Position0": {"x":1,"y":2}}`,
			want: m.Success(1, 1, 2),
		},
		{
			name: "only plain decimal indexes count",
			text: `{"NumberOfPositions": 3, "Position01": {"x":10,"y":10}, "Position+1": {"x":20,"y":20},` +
				` "Position-1": {"x":30,"y":30}, "Position": {"x":40,"y":40}, "Position1x": {"x":50,"y":50},` +
				` "Position2": {"x":1,"y":1}}`,
			want: m.Success(3, 1, 1),
		},
		{
			name: "sparse high index inside count",
			text: `{"NumberOfPositions": 1000, "Position999": {"x":7,"y":8}, "Position1000": {"x":1,"y":1}}`,
			want: m.Success(1000, 7, 8),
		},
		{
			name: "array document",
			text: `[{"NumberOfPositions": 1}]`,
			want: m.Success(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}

func TestExtract_SumsManyPositions(t *testing.T) {
	text := `{"NumberOfPositions": 12`
	wantX, wantY := 0, 0

	for i := 0; i < 12; i++ {
		text += fmt.Sprintf(`, "Position%d": {"x": %d, "y": %d}`, i, i, -2*i)
		wantX += i
		wantY += -2 * i
	}

	text += "}"

	assert.Equal(t, m.Success(12, wantX, wantY), Extract(text))
}

func TestExtract_LargeCountReturnsQuickly(t *testing.T) {
	text := fmt.Sprintf(`{"NumberOfPositions": %d, "Position0": {"x":1,"y":2}, "Position2147483646": {"x":3,"y":4}}`,
		math.MaxInt32)

	start := time.Now()
	got := Extract(text)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, m.Success(math.MaxInt32, 4, 6), got)
}

func TestPositionIndex(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantIndex int
		wantOK    bool
	}{
		{"zero", "Position0", 0, true},
		{"multi digit", "Position42", 42, true},
		{"int32 max", "Position2147483647", 2147483647, true},
		{"leading zero", "Position007", 0, false},
		{"sign", "Position+1", 0, false},
		{"negative", "Position-1", 0, false},
		{"no digits", "Position", 0, false},
		{"suffix", "Position1a", 0, false},
		{"too long", "Position12345678901", 0, false},
		{"other key", "NumberOfPositions", 0, false},
		{"lowercase", "position1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := positionIndex(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"nil", nil, 0},
		{"integral", float64(7), 7},
		{"negative", float64(-7), -7},
		{"fraction", 7.25, 0},
		{"string", "7", 0},
		{"bool", true, 0},
		{"object", map[string]any{}, 0},
		{"int32 max", float64(2147483647), 2147483647},
		{"above int32", float64(2147483648), 0},
		{"below int32", float64(-2147483649), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toInt(tt.value))
		})
	}
}
