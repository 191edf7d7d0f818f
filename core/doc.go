// Package core defines the domain model shared across vaultsync packages.
//
// It contains the Document and Metadata types that flow from the vault
// through the ingestion pipeline into the external collection, the
// QueryResult type returned by similarity search, and the statistics
// accumulators reported at the end of an ingestion run.
//
// All entities in this package are ephemeral: they are constructed and
// consumed within a single run. The external document store is the only
// persistent store.
package core
