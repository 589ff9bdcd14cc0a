// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ManuGH/belt/internal/config"
	"github.com/ManuGH/belt/internal/modsettings"
	"gopkg.in/yaml.v3"
)

type orderedEntry struct {
	Key   string
	Value any
}

// orderedMap marshals as a mapping that keeps file order.
type orderedMap []orderedEntry

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m orderedMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m {
		var val yaml.Node
		if err := val.Encode(e.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&val,
		)
	}
	return node, nil
}

func settingsDocument(s *modsettings.Settings) orderedMap {
	doc := orderedMap{{Key: "version", Value: s.Version().String()}}
	for _, scope := range modsettings.Scopes {
		values := orderedMap{}
		for _, key := range s.Keys(scope) {
			v, _ := s.Get(scope, key)
			values = append(values, orderedEntry{Key: key, Value: modsettings.Native(v)})
		}
		doc = append(doc, orderedEntry{Key: scope.Key(), Value: values})
	}
	return doc
}

func writeDocument(w io.Writer, format string, doc any) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// formatValue renders v in the text form ParseValue accepts.
func formatValue(v modsettings.Value) string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	switch x := v.(type) {
	case modsettings.String:
		return string(x)
	case modsettings.Number:
		return f(float64(x))
	case modsettings.Int:
		return strconv.FormatInt(int64(x), 10)
	case modsettings.Bool:
		return strconv.FormatBool(bool(x))
	case modsettings.Color:
		return f(x.R) + "," + f(x.G) + "," + f(x.B) + "," + f(x.A)
	}
	return ""
}
