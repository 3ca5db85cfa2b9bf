// Package api defines the wire model of the Ollama HTTP API: the fixed
// endpoint table and the typed request/response records exchanged with the
// server.
//
// All types are plain values that serialize to JSON. Optional fields are
// omitted when unset rather than sent as null. Nothing in this package is
// mutated after construction.
package api
