// Package libdiff compares packet trees through their text rendering.
package libdiff

import (
	"strings"

	"github.com/signadot/bits-format/bits/encode"
	"github.com/signadot/bits-format/bits/packet"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const (
	DeletePrefix = "-"
	InsertPrefix = "+"
	EqualPrefix  = " "
)

// Diff renders from and to with opts and returns a line diff of the two,
// or "" when they render identically.
func Diff(from, to *packet.Packet, opts ...encode.EncodeOption) string {
	return DiffText(encode.MustString(from, opts...)+"\n", encode.MustString(to, opts...)+"\n")
}

// DiffText is a line diff of from and to, each line prefixed by
// DeletePrefix, InsertPrefix or EqualPrefix. It is "" if they are equal.
func DiffText(from, to string) string {
	diffCfg := diffpatch.New()
	// lines are mapped to runes so the diff is line by line
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	changed := false
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		prefix := EqualPrefix
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = DeletePrefix
			changed = true
		case diffpatch.DiffInsert:
			prefix = InsertPrefix
			changed = true
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix + ln)
		}
	}
	if !changed {
		return ""
	}
	return buf.String()
}
