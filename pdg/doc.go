// Package pdg models a program dependence graph: vertices carry a
// VertexType and a set of Subtype refinements, edges are directed, and a
// Graph exposes both the raw directed multigraph (self-loops included, used
// only for vertex enumeration) and an undirected, self-loop-free view that
// every downstream package (signature, sphere, cost, align) consumes.
package pdg
