// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package store defines the abstraction over the external document store.
//
// The store is the only persistent component in the system: vaultsync never
// keeps local state. DocumentStore models the connection (liveness check,
// collection lookup) and Collection models the per-collection operations
// (upsert, ids, delete, query, count).
//
// Public constructors in implementation packages return these interfaces
// rather than concrete types so that consumers, including tests, never
// couple to a specific backend.
package store
