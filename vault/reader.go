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


package vault

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadStatus classifies the outcome of reading a vault file.
type ReadStatus int

const (
	// StatusSuccess means the file holds indexable text.
	StatusSuccess ReadStatus = iota + 1
	// StatusEmpty means the file is empty or whitespace only.
	StatusEmpty
	// StatusPlaceholderOnly means the file holds only the literal
	// placeholder marker and carries no indexable content.
	StatusPlaceholderOnly
	// StatusEncodingError means the file could not be read or decoded.
	StatusEncodingError
)

// placeholderMarker is the literal content of a stub note that exists only
// to be filled in later. Such notes are excluded from indexing.
const placeholderMarker = "#TODO"

// ReadOutcome is the result of reading and classifying one vault file.
// Content is non-empty only when Status is StatusSuccess or
// StatusPlaceholderOnly. Err is set only for StatusEncodingError.
type ReadOutcome struct {
	Content string
	Status  ReadStatus
	Err     error
}

// decoding is one candidate text decoding, tried in order until one succeeds.
type decoding struct {
	name   string
	decode func(data []byte) (string, error)
}

var errInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")

// decodings lists the candidate decodings attempted in sequence. Latin-1 is
// last because it maps every byte to a codepoint and therefore never fails,
// maximizing ingestion of legacy-encoded files.
var decodings = []decoding{
	{name: "utf-8", decode: decodeUTF8},
	{name: "latin-1", decode: decodeLatin1},
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

func decodeLatin1(data []byte) (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ReadFile reads a vault file and classifies its content.
// Every failure is converted into a classification outcome; no error
// escapes this function.
func ReadFile(path string) ReadOutcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadOutcome{Status: StatusEncodingError, Err: err}
	}

	content, err := decodeBytes(data)
	if err != nil {
		return ReadOutcome{Status: StatusEncodingError, Err: err}
	}

	content = strings.TrimSpace(content)
	switch content {
	case "":
		return ReadOutcome{Status: StatusEmpty}
	case placeholderMarker:
		return ReadOutcome{Content: content, Status: StatusPlaceholderOnly}
	default:
		return ReadOutcome{Content: content, Status: StatusSuccess}
	}
}

// decodeBytes tries each candidate decoding in order and returns the first
// successful result.
func decodeBytes(data []byte) (string, error) {
	var lastErr error
	for _, d := range decodings {
		content, err := d.decode(data)
		if err == nil {
			return content, nil
		}
		lastErr = err
	}
	return "", lastErr
}
