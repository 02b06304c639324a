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

// OuterObject returns tokens[0] iff its Kind is Object.
func (p *Parser) OuterObject() (TokenRef, bool) {
	if len(p.tokens) == 0 || p.tokens[0].Kind != KindObject {
		return NoToken, false
	}
	return 0, true
}

// OuterArray returns the first Array token in document order.
func (p *Parser) OuterArray() (TokenRef, bool) {
	for i, t := range p.tokens {
		if t.Kind == KindArray {
			return TokenRef(i), true
		}
	}
	return NoToken, false
}

// OuterToken returns the first Object or Array token in document order
// (ordinarily tokens[0], since a successful parse requires the document
// root to be a container).
func (p *Parser) OuterToken() (TokenRef, bool) {
	for i, t := range p.tokens {
		if t.Kind == KindObject || t.Kind == KindArray {
			return TokenRef(i), true
		}
	}
	return NoToken, false
}

// childIndices walks the direct children of the container at ci using
// sibling-skip: it never needs a parent link because a child's own End
// (for containers) or a flat [Start,End) span (for leaves) is enough to
// jump straight to the next sibling.
func (p *Parser) childIndices(ci TokenRef) []int {
	container := p.tokens[ci]
	var out []int
	i := int(ci) + 1
	for i < len(p.tokens) && p.tokens[i].Start < container.End {
		out = append(out, i)
		t := p.tokens[i]
		if t.Kind == KindObject || t.Kind == KindArray {
			i = advancePastSubtree(p.tokens, i)
		} else {
			i++
		}
	}
	return out
}

// advancePastSubtree returns the index of the token immediately after the
// subtree rooted at tokens[i] (a container), skipping every descendant
// without ever reading a parent link.
func advancePastSubtree(tokens []Token, i int) int {
	end := tokens[i].End
	j := i + 1
	for j < len(tokens) && tokens[j].Start < end {
		j++
	}
	return j
}

// ArraySize returns the number of direct-child tokens of the container at
// ci (for an array, the element count; for an object, key+value entries).
func (p *Parser) ArraySize(ci TokenRef) int {
	return len(p.childIndices(ci))
}

// ValueByIndex returns the i-th direct child token of the container at ci.
func (p *Parser) ValueByIndex(ci TokenRef, i int) (TokenRef, bool) {
	children := p.childIndices(ci)
	if i < 0 || i >= len(children) {
		return NoToken, false
	}
	return TokenRef(children[i]), true
}

// KeyValueByIndex returns the i-th key/value pair of an object container,
// i.e. direct children (2i, 2i+1).
func (p *Parser) KeyValueByIndex(ci TokenRef, i int) (key, value TokenRef, ok bool) {
	children := p.childIndices(ci)
	ki, vi := 2*i, 2*i+1
	if ki < 0 || vi >= len(children) {
		return NoToken, NoToken, false
	}
	return TokenRef(children[ki]), TokenRef(children[vi]), true
}

// ValueByKey linearly scans the object container's key/value pairs,
// decoding each key's escapes before comparing, and returns the value
// paired with the byte-exact (case-sensitive) match of key. No Unicode
// normalization is applied.
func (p *Parser) ValueByKey(ci TokenRef, key string) (TokenRef, bool) {
	children := p.childIndices(ci)
	for i := 0; i+1 < len(children); i += 2 {
		kt := p.tokens[children[i]]
		if kt.Kind != KindString {
			continue
		}
		decoded, err := p.String(TokenRef(children[i]))
		if err != nil {
			continue
		}
		if decoded == key {
			return TokenRef(children[i+1]), true
		}
	}
	return NoToken, false
}

// ValueByColRow treats the container's col-th direct child as an array and
// returns its row-th direct child, the two-level indexed access used for
// the common array-of-rows shape.
func (p *Parser) ValueByColRow(ci TokenRef, col, row int) (TokenRef, bool) {
	colTok, ok := p.ValueByIndex(ci, col)
	if !ok {
		return NoToken, false
	}
	return p.ValueByIndex(colTok, row)
}

// ForEachKeyValue calls fn for each key/value pair of an object
// container in document order, decoding each key's escapes first, and
// stops early if fn returns false.
func (p *Parser) ForEachKeyValue(ci TokenRef, fn func(key string, value TokenRef) bool) {
	children := p.childIndices(ci)
	for i := 0; i+1 < len(children); i += 2 {
		key, err := p.String(TokenRef(children[i]))
		if err != nil {
			continue
		}
		if !fn(key, TokenRef(children[i+1])) {
			return
		}
	}
}

// FindPath walks a chain of object keys starting at root, returning the
// value at the end of the chain.
func (p *Parser) FindPath(root TokenRef, path ...string) (TokenRef, bool) {
	cur := root
	for _, key := range path {
		next, ok := p.ValueByKey(cur, key)
		if !ok {
			return NoToken, false
		}
		cur = next
	}
	return cur, true
}
