// Package chroma implements the store interfaces against a ChromaDB server
// reached over its v1 HTTP API.
//
// All calls are synchronous and carry a per-call timeout on the underlying
// HTTP client. The client holds no state beyond the server address; the
// server owns all persistence.
package chroma
