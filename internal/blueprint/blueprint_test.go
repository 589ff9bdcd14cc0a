// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blueprint

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleJSON = `{"blueprint":{"item":"blueprint","label":"belts","entities":[{"entity_number":1,"name":"transport-belt","position":{"x":0.5,"y":0.5}},{"entity_number":2,"name":"transport-belt","position":{"x":1.5,"y":0.5}}],"version":562949954076673}}`

const bookJSON = `{"blueprint_book":{"item":"blueprint-book","label":"set","active_index":0,"blueprints":[{"index":0,"blueprint":{"item":"blueprint","entities":[{"entity_number":1,"name":"inserter","position":{"x":0,"y":0}}]}},{"index":1,"blueprint":{"item":"blueprint","label":"empty"}}]}}`

func TestEncodeDecode(t *testing.T) {
	s, err := Encode([]byte(singleJSON))
	require.NoError(t, err)
	assert.Equal(t, byte('0'), s[0])

	got, err := Decode(s)
	require.NoError(t, err)
	assert.JSONEq(t, singleJSON, string(got))

	got, err = Decode("  \n" + s + "\n")
	require.NoError(t, err, "surrounding whitespace is ignored")
	assert.JSONEq(t, singleJSON, string(got))
}

func TestDecode_RawDeflateFallback(t *testing.T) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = fw.Write([]byte(bookJSON))
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	s := "0" + base64.StdEncoding.EncodeToString(buf.Bytes())
	got, err := Decode(s)
	require.NoError(t, err)
	assert.JSONEq(t, bookJSON, string(got))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("   ")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Decode("1abcd")
	var verr *UnsupportedVersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, byte('1'), verr.Version)

	_, err = Decode("0!!!not-base64")
	assert.ErrorContains(t, err, "base64")

	_, err = Decode("0" + base64.StdEncoding.EncodeToString([]byte("plain text, not compressed")))
	assert.ErrorContains(t, err, "decompress")
}

func TestParse(t *testing.T) {
	single, err := Encode([]byte(singleJSON))
	require.NoError(t, err)
	sum, err := Parse(single)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Kind: "blueprint", Label: "belts", Entities: 2, Blueprints: 1}, sum)

	bk, err := Encode([]byte(bookJSON))
	require.NoError(t, err)
	sum, err = Parse(bk)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Kind: "blueprint_book", Label: "set", Entities: 1, Blueprints: 2}, sum)

	other, err := Encode([]byte(`{"upgrade_planner":{}}`))
	require.NoError(t, err)
	_, err = Parse(other)
	assert.ErrorIs(t, err, ErrNoContent)

	notJSON, err := Encode([]byte(`not json`))
	require.NoError(t, err)
	_, err = Parse(notJSON)
	assert.ErrorContains(t, err, "parse json")
}

func TestReadFile(t *testing.T) {
	s, err := Encode([]byte(singleJSON))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "belts.txt")
	require.NoError(t, os.WriteFile(path, []byte(s+"\n"), 0o644))

	got, sum, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Equal(t, 2, sum.Entities)

	_, _, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "read blueprint file")
}
