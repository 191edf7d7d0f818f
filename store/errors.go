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


package store

import "errors"

var (
	// ErrUnreachable indicates the store could not be reached or failed
	// its liveness check.
	ErrUnreachable = errors.New("document store unreachable")

	// ErrRequestFailed indicates the store rejected a request.
	ErrRequestFailed = errors.New("document store request failed")

	// ErrEmptyCollectionName indicates a collection was requested without a name.
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")
)
