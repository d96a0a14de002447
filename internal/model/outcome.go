// Package model defines the data structures shared by the JSON reader.
package model

// ParseOutcome is the result of extracting position totals from a document.
// The zero value is a Failure.
type ParseOutcome struct {
	ok    bool
	Count int
	SumX  int
	SumY  int
}

// Failure reports a document that could not be parsed.
func Failure() ParseOutcome {
	return ParseOutcome{}
}

// Success reports a parsed document with its position count and sums.
func Success(count, sumX, sumY int) ParseOutcome {
	return ParseOutcome{ok: true, Count: count, SumX: sumX, SumY: sumY}
}

// OK reports whether the outcome is a Success.
func (o ParseOutcome) OK() bool {
	return o.ok
}
