package models

import "strings"

// refPrefixCutset is trimmed from the left of every token as a character
// set, not as a literal prefix. "refs/heads/hez-fix" becomes "z-fix".
const refPrefixCutset = "/refs/heads/"

// Branch is one remote branch candidate. Name and protection are fixed at
// construction; only the selection bit changes.
type Branch struct {
	name      string
	display   string
	protected bool
	selected  bool
}

// NewBranch builds a Branch from a raw "<hash> <ref>" record.
func NewBranch(record, keepSuffix string) *Branch {
	display := normalizeRecord(record)
	name := firstToken(display)
	return &Branch{
		name:      name,
		display:   display,
		protected: keepSuffix != "" && strings.HasSuffix(name, keepSuffix),
	}
}

// ExtractName returns the canonical branch name of a raw reference record.
func ExtractName(record string) string {
	return firstToken(normalizeRecord(record))
}

// normalizeRecord reverses the whitespace separated tokens of a record and
// strips ref prefix characters from each of them.
func normalizeRecord(record string) string {
	tokens := strings.Fields(record)
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	for i, t := range tokens {
		tokens[i] = strings.TrimLeft(t, refPrefixCutset)
	}
	return strings.Join(tokens, " ")
}

func firstToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func (b *Branch) Name() string    { return b.name }
func (b *Branch) Display() string { return b.display }
func (b *Branch) Protected() bool { return b.protected }
func (b *Branch) Selected() bool  { return b.selected }

// Toggle flips the selection unless the branch is protected and returns the
// resulting selection.
func (b *Branch) Toggle() bool {
	if !b.protected {
		b.selected = !b.selected
	}
	return b.selected
}

// Mark renders the selection checkbox.
func (b *Branch) Mark() string {
	if b.selected {
		return "[x]"
	}
	return "[ ]"
}

func (b *Branch) String() string {
	return b.Mark() + " " + b.display
}
