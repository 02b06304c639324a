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

// Ref is an immutable fluent reference chaining navigation with typed
// extraction. Once a step fails, the reference becomes null and every
// further step and terminal extraction short-circuits to the requested
// default.
type Ref struct {
	p  *Parser
	t  TokenRef
	ok bool
}

// Root returns a Ref at the document's outer token.
func (p *Parser) Root() Ref {
	t, ok := p.OuterToken()
	return Ref{p: p, t: t, ok: ok}
}

// Key navigates to the value paired with k in the current object. If the
// current reference is null, or the key is absent, the result is null.
func (r Ref) Key(k string) Ref {
	if !r.ok {
		return r
	}
	t, ok := r.p.ValueByKey(r.t, k)
	if !ok {
		return Ref{p: r.p}
	}
	return Ref{p: r.p, t: t, ok: true}
}

// Index navigates to the i-th direct child of the current array/object.
func (r Ref) Index(i int) Ref {
	if !r.ok {
		return r
	}
	t, ok := r.p.ValueByIndex(r.t, i)
	if !ok {
		return Ref{p: r.p}
	}
	return Ref{p: r.p, t: t, ok: true}
}

// Size returns the number of direct children, or 0 if null.
func (r Ref) Size() int {
	if !r.ok {
		return 0
	}
	return r.p.ArraySize(r.t)
}

// Valid reports whether the reference resolved successfully so far.
func (r Ref) Valid() bool { return r.ok }

// Bool extracts a boolean, or def if null or not convertible.
func (r Ref) Bool(def bool) bool {
	if !r.ok {
		return def
	}
	v, err := r.p.Bool(r.t)
	if err != nil {
		return def
	}
	return v
}

// Int64 extracts a signed integer, or def if null or not convertible.
func (r Ref) Int64(def int64) int64 {
	if !r.ok {
		return def
	}
	v, err := r.p.Int64(r.t)
	if err != nil {
		return def
	}
	return v
}

// Uint64 extracts an unsigned integer, or def if null or not convertible.
func (r Ref) Uint64(def uint64) uint64 {
	if !r.ok {
		return def
	}
	v, err := r.p.Uint64(r.t)
	if err != nil {
		return def
	}
	return v
}

// Float64 extracts a float, or def if null or not convertible.
func (r Ref) Float64(def float64) float64 {
	if !r.ok {
		return def
	}
	v, err := r.p.Float64(r.t)
	if err != nil {
		return def
	}
	return v
}

// String extracts a decoded string, or def if null or not a String token.
func (r Ref) String(def string) string {
	if !r.ok {
		return def
	}
	v, err := r.p.String(r.t)
	if err != nil {
		return def
	}
	return v
}
