// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package modsettings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ManuGH/belt/internal/ptree"
)

// Kind names the shape of a setting value.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindInt
	KindBool
	KindColor
)

var kindNames = [...]string{"string", "number", "int", "bool", "color"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind maps a kind name ("string", "number", "int", "bool", "color") to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown setting type %q", name)
}

// Value is a setting value. It is one of String, Number, Int, Bool or Color;
// all are comparable with ==.
type Value interface {
	Kind() Kind
	tree() ptree.Value
}

// String is a text setting.
type String string

// Number is a floating point setting (a "double" setting in the mod's prototype).
type Number float64

// Int is an integer setting.
type Int int64

// Bool is a checkbox setting.
type Bool bool

// Color is a colour setting with channels in 0..1.
type Color struct {
	R, G, B, A float64
}

func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Int) Kind() Kind    { return KindInt }
func (Bool) Kind() Kind   { return KindBool }
func (Color) Kind() Kind  { return KindColor }

func (v String) tree() ptree.Value { return ptree.String(string(v)) }
func (v Number) tree() ptree.Value { return ptree.Number(float64(v)) }
func (v Int) tree() ptree.Value    { return ptree.SignedInteger(int64(v)) }
func (v Bool) tree() ptree.Value   { return ptree.Bool(bool(v)) }

func (v Color) tree() ptree.Value {
	return ptree.Dictionary(ptree.NewDict(
		ptree.Entry{Key: "r", Value: ptree.Number(v.R)},
		ptree.Entry{Key: "g", Value: ptree.Number(v.G)},
		ptree.Entry{Key: "b", Value: ptree.Number(v.B)},
		ptree.Entry{Key: "a", Value: ptree.Number(v.A)},
	))
}

var colorChannels = [4]string{"r", "g", "b", "a"}

// narrow converts the payload of a {"value": X} wrapper into a Value.
func narrow(scope Scope, key string, v ptree.Value) (Value, error) {
	switch v.Type() {
	case ptree.TypeString:
		s, _ := v.AsString()
		return String(s), nil
	case ptree.TypeNumber:
		n, _ := v.AsNumber()
		return Number(n), nil
	case ptree.TypeSignedInteger:
		i, _ := v.AsSignedInteger()
		return Int(i), nil
	case ptree.TypeBool:
		b, _ := v.AsBool()
		return Bool(b), nil
	case ptree.TypeDictionary:
		if c, ok := narrowColor(v); ok {
			return c, nil
		}
	}
	return nil, &UnsupportedSettingShapeError{Scope: scope, Key: key, Type: v.Type()}
}

// narrowColor accepts exactly the four Number channels r, g, b, a. Anything
// else would not survive being written back.
func narrowColor(v ptree.Value) (Color, bool) {
	d, _ := v.AsDict()
	if d.Len() != len(colorChannels) {
		return Color{}, false
	}
	var ch [4]float64
	for i, name := range colorChannels {
		field, ok := d.Get(name)
		if !ok {
			return Color{}, false
		}
		n, ok := field.AsNumber()
		if !ok {
			return Color{}, false
		}
		ch[i] = n
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}

// ParseValue parses text into a Value of the given kind. Colours are written
// as "r,g,b" or "r,g,b,a"; alpha defaults to 1.
func ParseValue(kind Kind, text string) (Value, error) {
	switch kind {
	case KindString:
		return String(text), nil
	case KindNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("parse number: %w", err)
		}
		return Number(f), nil
	case KindInt:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse int: %w", err)
		}
		return Int(i), nil
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("parse bool: %w", err)
		}
		return Bool(b), nil
	case KindColor:
		parts := strings.Split(text, ",")
		if len(parts) != 3 && len(parts) != 4 {
			return nil, fmt.Errorf("parse color: want r,g,b[,a], got %q", text)
		}
		ch := [4]float64{0, 0, 0, 1}
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("parse color channel %s: %w", colorChannels[i], err)
			}
			ch[i] = f
		}
		return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
	}
	return nil, fmt.Errorf("unknown setting kind %s", kind)
}

type nativeColor struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// Native returns v as a plain Go value suitable for YAML or JSON output.
func Native(v Value) any {
	switch x := v.(type) {
	case String:
		return string(x)
	case Number:
		return float64(x)
	case Int:
		return int64(x)
	case Bool:
		return bool(x)
	case Color:
		return nativeColor{R: x.R, G: x.G, B: x.B, A: x.A}
	}
	return nil
}
