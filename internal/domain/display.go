package domain

import "strings"

const separatorWidth = 30

// Separator is the rule written before every appended result.
var Separator = strings.Repeat("*", separatorWidth)

// Display accumulates formatted results. It has no size limit.
type Display struct {
	buf strings.Builder
}

// NewDisplay returns an empty Display.
func NewDisplay() *Display {
	return &Display{}
}

// AppendResult writes a separator line and then message. When clearFirst is
// set, the content (including the separator just written) is dropped before
// message is written.
func (d *Display) AppendResult(message string, clearFirst bool) {
	d.buf.WriteString("\n")
	d.buf.WriteString(Separator)

	if clearFirst {
		d.buf.Reset()
	}

	d.buf.WriteString(message)
}

// Text returns the accumulated content.
func (d *Display) Text() string {
	return d.buf.String()
}

// Len returns the content length in bytes.
func (d *Display) Len() int {
	return d.buf.Len()
}
