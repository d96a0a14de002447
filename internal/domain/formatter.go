package domain

import (
	"fmt"

	m "github.com/mouse-blink/jsonreader/internal/model"
)

// InvalidDocumentMessage is shown for documents that fail to parse.
const InvalidDocumentMessage = "\nThis is not a valid JSON document!"

// Format renders an outcome as the text block appended to the display.
func Format(outcome m.ParseOutcome) string {
	if !outcome.OK() {
		return InvalidDocumentMessage
	}

	return fmt.Sprintf("\nNumber of Elements: %d\nCombined value of X: %d\nCombined value of Y: %d",
		outcome.Count, outcome.SumX, outcome.SumY)
}
