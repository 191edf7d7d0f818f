// Package mock provides in-memory test doubles for the store interfaces.
//
// The mocks default to simple in-memory behavior (upserts land in a map,
// deletes remove from it) and support custom behavior injection via
// function fields, mirroring the ai/mock package.
package mock
