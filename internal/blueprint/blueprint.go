// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package blueprint decodes and encodes game blueprint strings: a version
// character followed by base64 of zlib-compressed JSON.
package blueprint

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

// Version is the only blueprint string version in use.
const Version = '0'

// maxJSONSize bounds decompression of untrusted strings.
const maxJSONSize = 64 << 20

var (
	// ErrEmpty is returned for an empty or whitespace-only blueprint string.
	ErrEmpty = errors.New("blueprint: empty string")

	// ErrTooLarge is returned when the decompressed payload exceeds the size limit.
	ErrTooLarge = errors.New("blueprint: decompressed payload too large")

	// ErrNoContent is returned when the JSON holds neither a blueprint nor a book.
	ErrNoContent = errors.New("blueprint: neither blueprint nor blueprint_book present")
)

// UnsupportedVersionError reports an unknown leading version character.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("blueprint: unsupported version %q", e.Version)
}

// Decode returns the JSON document inside a blueprint string. Payloads that
// are raw deflate rather than zlib are accepted too.
func Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	if s[0] != Version {
		return nil, &UnsupportedVersionError{Version: s[0]}
	}

	compressed, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return nil, fmt.Errorf("blueprint: decode base64: %w", err)
	}

	data, zerr := inflateZlib(compressed)
	if zerr == nil {
		return data, nil
	}
	if errors.Is(zerr, ErrTooLarge) {
		return nil, zerr
	}
	data, ferr := inflateRaw(compressed)
	if ferr != nil {
		return nil, fmt.Errorf("blueprint: decompress: zlib=%v, deflate=%w", zerr, ferr)
	}
	return data, nil
}

func inflateZlib(compressed []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return readLimited(zr)
}

func inflateRaw(compressed []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(compressed))
	defer fr.Close()
	return readLimited(fr)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxJSONSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxJSONSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

// Encode compresses a JSON document into a blueprint string.
func Encode(doc []byte) (string, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("blueprint: create compressor: %w", err)
	}
	if _, err := zw.Write(doc); err != nil {
		return "", fmt.Errorf("blueprint: compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("blueprint: compress: %w", err)
	}
	return string(Version) + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Summary describes a decoded blueprint string.
type Summary struct {
	Kind       string // "blueprint" or "blueprint_book"
	Label      string
	Entities   int // entities across all contained blueprints
	Blueprints int // 1 for a single blueprint
}

type document struct {
	Blueprint     *blueprintDoc `json:"blueprint"`
	BlueprintBook *book         `json:"blueprint_book"`
}

type blueprintDoc struct {
	Label    string            `json:"label"`
	Entities []json.RawMessage `json:"entities"`
}

type book struct {
	Label      string `json:"label"`
	Blueprints []struct {
		Blueprint *blueprintDoc `json:"blueprint"`
	} `json:"blueprints"`
}

// Parse decodes s and summarises its content.
func Parse(s string) (*Summary, error) {
	data, err := Decode(s)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("blueprint: parse json: %w", err)
	}

	switch {
	case doc.Blueprint != nil:
		return &Summary{
			Kind:       "blueprint",
			Label:      doc.Blueprint.Label,
			Entities:   len(doc.Blueprint.Entities),
			Blueprints: 1,
		}, nil
	case doc.BlueprintBook != nil:
		sum := &Summary{Kind: "blueprint_book", Label: doc.BlueprintBook.Label}
		for _, entry := range doc.BlueprintBook.Blueprints {
			if entry.Blueprint == nil {
				continue
			}
			sum.Blueprints++
			sum.Entities += len(entry.Blueprint.Entities)
		}
		return sum, nil
	}
	return nil, ErrNoContent
}

// ReadFile reads a blueprint string from path and checks that it parses.
// The returned string is trimmed but otherwise exactly as stored.
func ReadFile(path string) (string, *Summary, error) {
	// #nosec G304 -- blueprint files are chosen by the operator
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", nil, fmt.Errorf("read blueprint file: %w", err)
	}
	s := strings.TrimSpace(string(raw))
	sum, err := Parse(s)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, sum, nil
}
