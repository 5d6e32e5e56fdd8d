// Package align implements the seed-and-expand aligner: it picks minimum
// cost seed pairs, grows matching concentric spheres around each seed on
// both graphs, and enumerates every minimum-cost extension bucket by
// bucket, producing every injective alignment reachable by that expansion
// rule rather than a single "best" one.
package align
