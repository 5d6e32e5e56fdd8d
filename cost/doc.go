// Package cost implements the pairwise and neighborhood-blended cost
// functions the aligner searches over: vertex penalty, signature distance,
// pair cost, and pdg cost, plus the dense Matrix type both cost maps are
// stored in.
package cost
