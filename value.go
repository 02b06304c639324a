/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package spanjson

// valueKind discriminates the Value sum type: the Go stand-in for an
// overloaded insertValue(T) dispatch.
type valueKind byte

const (
	valueNull valueKind = iota
	valueBool
	valueInt
	valueUint
	valueFloat
	valueString
	valueRaw
)

// Value is what the Emitter writes for insertValue/insertKeyValue/
// insertArrayValue. Construct one with the matching constructor rather
// than the zero value.
type Value struct {
	kind valueKind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
}

// NullValue represents the JSON literal null.
func NullValue() Value { return Value{kind: valueNull} }

// BoolValue wraps a bool as a JSON true/false literal.
func BoolValue(v bool) Value { return Value{kind: valueBool, b: v} }

// IntValue wraps a signed integer as a JSON number.
func IntValue(v int64) Value { return Value{kind: valueInt, i: v} }

// UintValue wraps an unsigned integer as a JSON number.
func UintValue(v uint64) Value { return Value{kind: valueUint, u: v} }

// FloatValue wraps a float64 as a JSON number, formatted per the
// Emitter's current SetFloatPlaces setting.
func FloatValue(v float64) Value { return Value{kind: valueFloat, f: v} }

// StringValue wraps a Go string as a quoted, escaped JSON string.
func StringValue(v string) Value { return Value{kind: valueString, s: v} }

// RawValue writes s verbatim, unquoted and unescaped, for embedding
// already-formed JSON text (e.g. the output of Parser.TokenJSON).
func RawValue(s string) Value { return Value{kind: valueRaw, s: s} }
