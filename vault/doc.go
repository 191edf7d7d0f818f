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


// Package vault handles the file-system side of indexing a note vault.
//
// It discovers markdown files under a vault root, reads and classifies
// their content, and derives the stable, path-based document identifiers
// used as upsert keys in the external collection.
//
// Discovery order is deterministic (lexical walk order) so that repeated
// runs over an unchanged vault produce identical batch membership.
package vault
