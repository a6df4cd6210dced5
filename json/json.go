// Package json locates JSON state embedded in page scripts and navigates it
// without assuming any key is present.
package json

import (
	"strings"

	"github.com/fwojciec/tripkml"
	gojson "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Parse validates raw as a JSON document and returns its root.
// Returns EINVALIDPAYLOAD with the decoder's diagnostic when raw is malformed.
// Numbers are not converted, so values beyond float64 range are left for the
// caller to reject.
func Parse(raw string) (gjson.Result, error) {
	dec := gojson.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return gjson.Result{}, tripkml.Errorf(tripkml.EINVALIDPAYLOAD, "error parsing trip data: %v", err)
	}
	return gjson.Parse(raw), nil
}

// Lookup follows keys from r one object level at a time.
// Returns false as soon as a key is missing or a level is not an object.
// Keys are matched literally. When an object repeats a key the last value wins.
func Lookup(r gjson.Result, keys ...string) (gjson.Result, bool) {
	for _, key := range keys {
		if !r.IsObject() {
			return gjson.Result{}, false
		}
		var found gjson.Result
		r.ForEach(func(k, v gjson.Result) bool {
			if k.Str == key {
				found = v
			}
			return true
		})
		if !found.Exists() {
			return gjson.Result{}, false
		}
		r = found
	}
	return r, true
}

// Object returns the object at keys, or false if it is absent or not an object.
func Object(r gjson.Result, keys ...string) (gjson.Result, bool) {
	v, ok := Lookup(r, keys...)
	if !ok || !v.IsObject() {
		return gjson.Result{}, false
	}
	return v, true
}

// Array returns the elements of the array at keys, or false if it is absent
// or not an array.
func Array(r gjson.Result, keys ...string) ([]gjson.Result, bool) {
	v, ok := Lookup(r, keys...)
	if !ok || !v.IsArray() {
		return nil, false
	}
	return v.Array(), true
}

// String returns the string at keys, or false if it is absent or not a string.
func String(r gjson.Result, keys ...string) (string, bool) {
	v, ok := Lookup(r, keys...)
	if !ok || v.Type != gjson.String {
		return "", false
	}
	return v.Str, true
}

// Number returns the number at keys, or false if it is absent or not a
// JSON number. Numeric strings are not converted.
func Number(r gjson.Result, keys ...string) (float64, bool) {
	v, ok := Lookup(r, keys...)
	if !ok || v.Type != gjson.Number {
		return 0, false
	}
	return v.Num, true
}

// Key returns a comparable identity for a string or number value so ids of
// either kind can be used as map keys without colliding with each other.
func Key(r gjson.Result) (any, bool) {
	switch r.Type {
	case gjson.String:
		return r.Str, true
	case gjson.Number:
		return r.Num, true
	default:
		return nil, false
	}
}
