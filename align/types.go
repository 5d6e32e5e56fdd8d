package align

import (
	"strconv"
	"strings"

	"github.com/graalign/graalign/cost"
	"github.com/graalign/graalign/pdg"
)

// Alignment is an ordered list of vertex pairs, seed first, with the
// invariant that no vertex repeats across either projection.
type Alignment []cost.Pair

// key returns a string uniquely identifying this alignment's ordered
// vertex-index sequence, used to deduplicate alignments produced by
// different expansion paths.
func (a Alignment) key() string {
	var b strings.Builder
	for _, p := range a {
		b.WriteString(strconv.Itoa(p.U.Index()))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.V.Index()))
		b.WriteByte(',')
	}
	return b.String()
}

func (a Alignment) clone() Alignment {
	cp := make(Alignment, len(a))
	copy(cp, a)
	return cp
}

// pairEntry is a candidate pair together with its pdg-cost, prior to
// grouping into buckets.
type pairEntry struct {
	u, v *pdg.Vertex
	c    float64
}

// Bucket groups every candidate pair sharing one origin vertex u and one
// cost tier; buckets are produced in ascending-cost order by
// mapSpheresAndSortByCost.
type Bucket struct {
	U       *pdg.Vertex
	Cost    float64
	Entries []pairEntry
}
