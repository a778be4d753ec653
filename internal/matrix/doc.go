// Package matrix generates the CI build matrix: an ordered collection of
// build descriptors derived from a source-control reference and a sequence
// of registration calls, serialized as the compact JSON document a CI
// orchestrator consumes.
package matrix
