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


// Package search runs similarity searches against the external collection.
//
// The Searcher is a thin pass-through: it vectorizes free-text queries
// through the embedder, forwards the vector to the store, and reshapes the
// returned parallel arrays (ids, documents, metadatas, distances) into a
// single ordered sequence of per-result records. The ranking itself is
// entirely the store's.
package search
