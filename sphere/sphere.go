// Package sphere computes concentric-radius vertex sets on the undirected,
// self-loop-free view of a PDG — the primitive the seed-and-expand aligner
// grows its search frontier with.
package sphere

import "github.com/graalign/graalign/pdg"

// Sphere returns every vertex w != u whose unweighted shortest-path
// distance from u in view equals r exactly. Vertices unreachable from u
// are excluded. It is computed by a single breadth-first search from u,
// which is sufficient since every edge carries uniform weight 1.
func Sphere(u *pdg.Vertex, view pdg.UndirectedView, r int) []*pdg.Vertex {
	if r < 0 {
		return nil
	}

	dist := map[*pdg.Vertex]int{u: 0}
	queue := []*pdg.Vertex{u}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		if d >= r {
			// Neighbors beyond r are never needed by this call.
			continue
		}
		for _, n := range view.Neighbors(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = d + 1
			queue = append(queue, n)
		}
	}

	var out []*pdg.Vertex
	for v, d := range dist {
		if v != u && d == r {
			out = append(out, v)
		}
	}
	return out
}
