// Package pdgio is an external collaborator of the alignment core: it
// loads a serialized PDG document into a pdg.Graph and discovers PDG
// document files on disk for batch alignment runs. PDG construction from
// source code itself is out of scope; pdgio only reads the graph shape a
// prior lowering pass already produced.
package pdgio
