// Package graalconfig loads and validates the alignment engine's tunable
// parameters (sigma/alpha, branching caps, output preferences) from
// defaults, a .graalign.toml file, and CLI flags, each later source
// overriding the earlier ones.
package graalconfig
