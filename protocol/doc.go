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


// Package protocol implements the editor-plugin sub-process protocol.
//
// One JSON object is read from standard input, one JSON object is written
// to standard output, and the process exits. The output stream carries
// nothing else: diagnostics and progress go to the logger on stderr, so a
// caller parsing stdout as a single JSON object is never confused by
// interleaved log lines. Every failure, including malformed input, becomes
// {"success": false, "error": "..."} rather than a crash with no output.
package protocol
