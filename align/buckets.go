package align

import (
	"sort"

	"github.com/graalign/graalign/cost"
	"github.com/graalign/graalign/pdg"
)

// mapSpheresAndSortByCost forms the Cartesian product of Ur and Vr,
// retains only pairs present in the filtered pdg-cost map, sorts them
// ascending by cost (ties broken by vertex index for determinism), and
// groups the sorted sequence into buckets keyed by (u, cost).
func mapSpheresAndSortByCost(ur, vr []*pdg.Vertex, filtered cost.FilteredMap) []Bucket {
	entries := make([]pairEntry, 0, len(ur)*len(vr))
	for _, u := range ur {
		for _, v := range vr {
			if c, ok := filtered[cost.Pair{U: u, V: v}]; ok {
				entries = append(entries, pairEntry{u: u, v: v, c: c})
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].c != entries[j].c {
			return entries[i].c < entries[j].c
		}
		if entries[i].u.Index() != entries[j].u.Index() {
			return entries[i].u.Index() < entries[j].u.Index()
		}
		return entries[i].v.Index() < entries[j].v.Index()
	})

	var buckets []Bucket
	for _, e := range entries {
		if n := len(buckets); n > 0 && buckets[n-1].U == e.u && buckets[n-1].Cost == e.c {
			buckets[n-1].Entries = append(buckets[n-1].Entries, e)
			continue
		}
		buckets = append(buckets, Bucket{U: e.u, Cost: e.c, Entries: []pairEntry{e}})
	}
	return buckets
}

// alignSpheres enumerates every completion of the partial alignments in
// current by walking buckets in order. At each bucket, candidates are the
// entries whose u and v are not already used on either side of the
// in-progress alignment; an empty candidate set skips the bucket, and a
// non-empty one branches once per candidate. limit bounds the number of
// completions collected across the whole call.
func alignSpheres(buckets []Bucket, current []Alignment, limit int) []Alignment {
	seen := make(map[string]bool)
	out := make([]Alignment, 0, len(current))

	var extend func(idx int, partial Alignment)
	extend = func(idx int, partial Alignment) {
		if len(out) >= limit {
			return
		}
		if idx == len(buckets) {
			key := partial.key()
			if !seen[key] {
				seen[key] = true
				out = append(out, partial.clone())
			}
			return
		}
		candidates := usableEntries(buckets[idx], partial)
		if len(candidates) == 0 {
			extend(idx+1, partial)
			return
		}
		for _, c := range candidates {
			if len(out) >= limit {
				return
			}
			extend(idx+1, append(partial, cost.Pair{U: c.u, V: c.v}))
		}
	}

	for _, a := range current {
		if len(out) >= limit {
			break
		}
		extend(0, a)
	}
	return out
}

func usableEntries(b Bucket, partial Alignment) []pairEntry {
	used := make(map[*pdg.Vertex]bool, len(partial)*2)
	for _, p := range partial {
		used[p.U] = true
		used[p.V] = true
	}
	var out []pairEntry
	for _, e := range b.Entries {
		if !used[e.u] && !used[e.v] {
			out = append(out, e)
		}
	}
	return out
}
