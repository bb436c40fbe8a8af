// SPDX-License-Identifier: EPL-2.0

package buffer

import "strings"

// Text accumulates string fragments and caches the total length, in bytes,
// so Len never walks the fragments. The zero value is ready to use.
type Text struct {
	fragments []string
	length    int
}

func (t *Text) Len() int      { return t.length }
func (t *Text) IsEmpty() bool { return t.length == 0 }

func (t *Text) Append(s string) {
	if s == "" {
		return
	}

	t.fragments = append(t.fragments, s)
	t.length += len(s)
}

// Value joins all fragments.
func (t *Text) Value() string {
	var sb strings.Builder

	sb.Grow(t.length)

	for _, s := range t.fragments {
		sb.WriteString(s)
	}

	return sb.String()
}

// Slice returns the byte range [begin, end) of the joined text.
func (t *Text) Slice(begin, end int) (string, error) {
	if err := checkRange(begin, end, t.length); err != nil {
		return "", err
	}

	return t.Value()[begin:end], nil
}

// Last returns the most recently appended non-empty fragment.
func (t *Text) Last() (string, bool) {
	if len(t.fragments) == 0 {
		return "", false
	}

	return t.fragments[len(t.fragments)-1], true
}

func (t *Text) Reset() {
	clear(t.fragments)
	t.fragments = t.fragments[:0]
	t.length = 0
}

func (t *Text) Pop() string {
	s := t.Value()
	t.Reset()

	return s
}
