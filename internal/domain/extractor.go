// Package domain holds the position extraction, formatting and display logic.
package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	m "github.com/mouse-blink/jsonreader/internal/model"
)

const (
	countKey    = "NumberOfPositions"
	positionKey = "Position"
	xKey        = "x"
	yKey        = "y"

	byteOrderMark = "\uFEFF"

	// counts are 32-bit, so longer indexes can never be in range
	maxIndexDigits = 10
)

// Extract parses text as a JSON document and sums the x and y fields of the
// PositionN entries announced by NumberOfPositions.
//
// Missing or non-numeric values count as 0 and missing entries contribute
// nothing. A document that fails to parse or announces a negative count
// yields a Failure.
func Extract(text string) m.ParseOutcome {
	text = strings.TrimPrefix(text, byteOrderMark)

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return m.Failure()
	}

	var root map[string]any

	switch v := doc.(type) {
	case map[string]any:
		root = v
	case []any:
		// an array document has no keys
		root = map[string]any{}
	default:
		return m.Failure()
	}

	count := toInt(root[countKey])
	if count < 0 {
		return m.Failure()
	}

	sumX, sumY := 0, 0

	// absent entries add 0, so only the keys present are summed
	for name, value := range root {
		index, ok := positionIndex(name)
		if !ok || index >= count {
			continue
		}

		position, _ := value.(map[string]any)

		sumX += toInt(position[xKey])
		sumY += toInt(position[yKey])
	}

	return m.Success(count, sumX, sumY)
}

// positionIndex returns i for a key spelled exactly "Position{i}", with i
// written in plain decimal (no sign, no leading zeros).
func positionIndex(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, positionKey)
	if !ok || digits == "" || len(digits) > maxIndexDigits {
		return 0, false
	}

	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	index, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}

	return index, true
}

// toInt converts a decoded JSON value to an int. Only numbers holding an
// exact 32-bit integer convert; everything else is 0.
func toInt(value any) int {
	f, ok := value.(float64)
	if !ok {
		return 0
	}

	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0
	}

	return int(f)
}
