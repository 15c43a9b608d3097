// Package normalize cleans operator-typed input before it enters facet state.
// Pipeline order
// 1 Unicode NFC normalization
// 2 Remove zero-width and format characters
// 3 Collapse whitespace runs to single spaces and trim
//
// Matching stays case sensitive, so no case folding happens here
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
		)
	},
}

// Input returns the normalized form of s following the pipeline above
func Input(s string) string {
	if s == "" {
		return ""
	}

	chain := chainPool.Get().(transform.Transformer)
	chain.Reset()
	out, _, err := transform.String(chain, s)
	chainPool.Put(chain)
	if err != nil {
		// keep the raw input rather than dropping an edit on a transform error
		out = s
	}

	return collapseSpaces(out)
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
