// Package normalize cleans contact text before it is stored
// every form repairs UTF-8, composes to NFC, drops format characters such as ZWSP and BOM
// and folds fullwidth ASCII; case and accents are kept as typed
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformers are stateful, one per goroutine at a time
var chains = sync.Pool{New: func() any {
	// width folding can decompose, so compose again after it
	return transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cf)), width.Fold, norm.NFC)
}}

func clean(s string) string {
	s = strings.ToValidUTF8(s, "")
	if s == "" {
		return s
	}
	t := chains.Get().(transform.Transformer)
	defer chains.Put(t)
	t.Reset()

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Line is s on a single line; every whitespace run, line breaks included, becomes one space
func Line(s string) string {
	return strings.Join(strings.Fields(clean(s)), " ")
}

// Block keeps line breaks for multi-line values such as addresses
// each line is collapsed like Line and blank lines are dropped
func Block(s string) string {
	var out []string
	for _, l := range strings.FieldsFunc(clean(s), isBreak) {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func isBreak(r rune) bool { return r == '\n' || r == '\r' }
