package cleaner

import "strings"

// symbolRanges are the code-point ranges stripped from transcript text:
// pictographs, legacy symbols, dingbats, variation selectors and emoticons.
var symbolRanges = [...]struct{ lo, hi rune }{
	{0x1F300, 0x1F9FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
	{0xFE00, 0xFE0F},
	{0x1F600, 0x1F64F},
}

// Cleaner normalizes raw message text for transcripts. Text that matches one
// of the configured boilerplate phrases exactly is treated as empty.
type Cleaner struct {
	boilerplate map[string]struct{}
}

// New creates a cleaner with the given boilerplate phrase list.
func New(boilerplate []string) *Cleaner {
	phrases := make(map[string]struct{}, len(boilerplate))
	for _, p := range boilerplate {
		phrases[p] = struct{}{}
	}
	return &Cleaner{boilerplate: phrases}
}

// Clean strips decorative symbols, trims surrounding whitespace and collapses
// doubled spaces in a single replace pass. A run of more than two spaces is
// only partially collapsed; that matches the historical report output and is
// left as is. Returns "" for boilerplate text.
func (c *Cleaner) Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if isSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}

	out := strings.TrimSpace(b.String())
	out = strings.ReplaceAll(out, "  ", " ")

	if _, ok := c.boilerplate[out]; ok {
		return ""
	}
	return out
}

func isSymbol(r rune) bool {
	for _, rng := range symbolRanges {
		if r >= rng.lo && r <= rng.hi {
			return true
		}
	}
	return false
}
