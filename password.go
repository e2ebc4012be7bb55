package patternlock

import (
	"fmt"
	"strings"
)

// Canonicalizer turns a visited-node sequence into the password reported to
// the host. Implementations must not retain seq.
type Canonicalizer interface {
	Canonicalize(seq []int) string
}

// CanonicalizerFunc adapts an ordinary function to the Canonicalizer interface.
type CanonicalizerFunc func(seq []int) string

// Canonicalize calls f(seq).
func (f CanonicalizerFunc) Canonicalize(seq []int) string {
	return f(seq)
}

// IdentityCanonicalizer reports each node index as its decimal digit, in
// visit order. It is the default.
var IdentityCanonicalizer Canonicalizer = CanonicalizerFunc(RealPassword)

// RealPassword returns the identity canonical form of seq: one digit '0'..'8'
// per visited node. Indices outside 0..8 are skipped.
func RealPassword(seq []int) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, i := range seq {
		if i < 0 || i >= NodeCount {
			continue
		}
		b.WriteByte(byte('0' + i))
	}
	return b.String()
}

// DigitMap reports each node index through a fixed alphabet, e.g.
// "123456789" for a one-based keypad.
type DigitMap struct {
	alphabet [NodeCount]rune
}

// NewDigitMap builds a DigitMap from an alphabet of exactly nine distinct
// characters, indexed by node.
func NewDigitMap(alphabet string) (*DigitMap, error) {
	runes := []rune(alphabet)
	if len(runes) != NodeCount {
		return nil, fmt.Errorf("digit map: alphabet %q has %d characters, want %d", alphabet, len(runes), NodeCount)
	}
	m := &DigitMap{}
	seen := make(map[rune]bool, NodeCount)
	for i, r := range runes {
		if seen[r] {
			return nil, fmt.Errorf("digit map: alphabet %q repeats %q", alphabet, r)
		}
		seen[r] = true
		m.alphabet[i] = r
	}
	return m, nil
}

// Canonicalize implements Canonicalizer.
func (m *DigitMap) Canonicalize(seq []int) string {
	var b strings.Builder
	for _, i := range seq {
		if i < 0 || i >= NodeCount {
			continue
		}
		b.WriteRune(m.alphabet[i])
	}
	return b.String()
}

// ParseSequence converts an identity-form password back into node indices.
// It rejects empty input, characters outside '0'..'8', and repeats.
func ParseSequence(pw string) ([]int, error) {
	if pw == "" {
		return nil, fmt.Errorf("parse sequence: empty password")
	}
	if len(pw) > NodeCount {
		return nil, fmt.Errorf("parse sequence: %q is longer than %d", pw, NodeCount)
	}
	var seen [NodeCount]bool
	seq := make([]int, 0, len(pw))
	for i := 0; i < len(pw); i++ {
		c := pw[i]
		if c < '0' || c > '8' {
			return nil, fmt.Errorf("parse sequence: invalid node %q at %d", c, i)
		}
		idx := int(c - '0')
		if seen[idx] {
			return nil, fmt.Errorf("parse sequence: node %d repeated at %d", idx, i)
		}
		seen[idx] = true
		seq = append(seq, idx)
	}
	return seq, nil
}
