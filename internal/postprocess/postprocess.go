// Package postprocess removes common LLM artifacts from translation output.
package postprocess

import "strings"

// edgeCutset lists the characters models are known to wrap replies in:
// straight quotes, whitespace and newlines.
const edgeCutset = "\"' \t\r\n"

// Clean trims quote characters, whitespace and newlines from the edges of
// a model reply. Interior formatting, line breaks included, is preserved.
func Clean(text string) string {
	return strings.Trim(text, edgeCutset)
}
