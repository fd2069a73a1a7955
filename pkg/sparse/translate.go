package sparse

import (
	"fmt"
	"strings"
)

// Mapping moves every value of Source by Offset.
type Mapping struct {
	Source Range
	Offset int64
}

// NewMapping builds the mapping of an almanac-style row: length values
// starting at src are sent to the values starting at dest. Both the source
// and the destination must be valid ranges.
func NewMapping(dest, src, length int64) (Mapping, error) {
	source, err := New(src, length)
	if err != nil {
		return Mapping{}, err
	}
	if _, err := New(dest, length); err != nil {
		return Mapping{}, fmt.Errorf("destination: %w", err)
	}
	offset := dest - src
	if (dest >= src) != (offset >= 0) {
		return Mapping{}, fmt.Errorf("%w: offset from %d to %d overflows int64", ErrInvalidRange, src, dest)
	}
	return Mapping{Source: source, Offset: offset}, nil
}

func (m Mapping) String() string {
	return fmt.Sprintf("%s%+d", m.Source, m.Offset)
}

// Table is one translation stage. Source ranges are expected to be
// disjoint; mappings are applied in order.
type Table []Mapping

// Lookup translates a single value through the first mapping whose source
// contains it. Values outside every source are returned unchanged.
func (t Table) Lookup(x int64) int64 {
	for _, m := range t {
		if m.Source.Contains(x) {
			return x + m.Offset
		}
	}
	return x
}

func (t Table) String() string {
	parts := make([]string, len(t))
	for i, m := range t {
		parts[i] = m.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// fragment is one piece of the range being translated.
type fragment struct {
	r      Range
	mapped bool
}

// Translate cuts src against every mapping of table and returns the
// resulting pieces: values inside a mapping's source are shifted by its
// offset, values outside all of them are returned as they are.
//
// Pieces come back in the order they were produced and are not merged.
// A piece that has been shifted is never cut again by a later mapping.
// An empty table returns src unchanged.
func Translate(src Range, table Table) []Range {
	pool := []fragment{{r: src}}

	for _, m := range table {
		next := make([]fragment, 0, len(pool)+2)
		for _, frag := range pool {
			if frag.mapped {
				next = append(next, frag)
				continue
			}

			before, overlap, after := Split(frag.r, m.Source)
			if overlap == nil || overlap.Empty() {
				next = append(next, frag)
				continue
			}

			if before != nil && !before.Empty() {
				next = append(next, fragment{r: *before})
			}
			next = append(next, fragment{r: overlap.Shift(m.Offset), mapped: true})
			if after != nil && !after.Empty() {
				next = append(next, fragment{r: *after})
			}
		}
		// The pool never goes empty: a mapping that touches nothing leaves it as is.
		if len(next) > 0 {
			pool = next
		}
	}

	out := make([]Range, len(pool))
	for i, frag := range pool {
		out[i] = frag.r
	}
	return out
}

// TranslateAll translates every range of srcs through table and
// concatenates the pieces in input order.
func TranslateAll(srcs []Range, table Table) []Range {
	var out []Range
	for _, src := range srcs {
		out = append(out, Translate(src, table)...)
	}
	return out
}
