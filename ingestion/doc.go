// Package ingestion turns a folder of vault files into idempotent upsert
// operations against the external document collection.
//
// The Pipeline type runs the whole flow for one invocation: discover files,
// read and classify each one, group the indexable documents into fixed-size
// batches in discovery order, and upsert each batch with a single blocking
// call. A failed batch is counted and skipped, never retried; partial
// success is a reported outcome, not a fatal error.
//
// Processing is strictly sequential: one file is opened, read and closed
// before the next is considered, and one upsert is in flight at a time.
// Every entry point (CLI, protocol binary) reuses this one pipeline.
package ingestion
