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

// Modifier appends to, updates within, and removes from an already
// parsed document directly in its buffer, using controlled memory moves.
// A Modifier is bound to one Parser and one in-flight start/finish pair
// at a time.
type Modifier struct {
	p         *Parser
	emitter   *Emitter
	window    Buffer
	start     int // -1 when idle
	saveLoc   int
	origAfter int
}

// NewModifier binds a Modifier to p.
func NewModifier(p *Parser) *Modifier {
	return &Modifier{p: p, start: -1}
}

// Emitter returns the Emitter writing into the current displaced window.
// Only valid between StartModify/StartAppend and Finish.
func (m *Modifier) Emitter() *Emitter { return m.emitter }

// StartModify carves out the displaced window for replacing tok's span
// entirely: the bytes after tok are relocated to high memory
// (capacity - origAfter) and the Emitter is redirected to write into
// [tok.Start, saveLoc).
func (m *Modifier) StartModify(ref TokenRef) error {
	if m.start != -1 {
		return ErrModifierBusy
	}
	tok := m.p.Token(ref)
	return m.begin(tok.Start, tok.End)
}

// StartAppend carves out the displaced window just before the
// container's closing bracket, so subsequent Insert* calls on the
// returned Emitter append a new entry. isFirst mirrors whether the
// container is currently empty.
func (m *Modifier) StartAppend(ref TokenRef) error {
	if m.start != -1 {
		return ErrModifierBusy
	}
	container := m.p.Token(ref)
	start := container.End - 1
	if err := m.begin(start, start); err != nil {
		return err
	}
	m.emitter.stack[0].isFirst = container.ChildCount == 0
	return nil
}

func (m *Modifier) begin(start, end int) error {
	buf := m.p.Bytes()
	woff := m.p.Offset()
	origAfter := woff - end
	saveLoc := m.p.Len() - origAfter
	if saveLoc < start {
		return ErrByteCapacityExhausted
	}
	if origAfter > 0 {
		copy(buf[saveLoc:saveLoc+origAfter], buf[end:end+origAfter])
	}
	m.start = start
	m.saveLoc = saveLoc
	m.origAfter = origAfter
	m.window = newWindowBuffer(buf[start:saveLoc:saveLoc])
	m.emitter = NewEmitter(&m.window)
	return nil
}

// Finish moves the relocated tail back down against the newly written
// content, updates the host Parser's write offset, clears the in-flight
// state, and re-runs the tokenizer over the whole buffer. Every
// previously obtained TokenRef is invalid once Finish returns.
func (m *Modifier) Finish() error {
	if m.start == -1 {
		return nil
	}
	writtenLen := m.window.Offset()
	buf := m.p.Bytes()
	if m.origAfter > 0 {
		copy(buf[m.start+writtenLen:m.start+writtenLen+m.origAfter], buf[m.saveLoc:m.saveLoc+m.origAfter])
	}
	m.p.SetOffset(m.start + writtenLen + m.origAfter)
	m.start = -1
	m.emitter = nil
	return m.p.Parse()
}

// expandToQuotes widens a String token's span to include its surrounding
// quotes; other kinds are returned unchanged.
func expandToQuotes(tok Token) (start, end int) {
	if tok.Kind == KindString {
		return tok.Start - 1, tok.End + 1
	}
	return tok.Start, tok.End
}

// findLeftComma looks for a ',' immediately before start, skipping ASCII
// spaces only; tabs and newlines between entries block the match.
// Returns its index, or -1 if absent.
func (m *Modifier) findLeftComma(start int) int {
	buf := m.p.Bytes()
	i := start - 1
	for i >= 0 && buf[i] == ' ' {
		i--
	}
	if i < 0 || buf[i] != ',' {
		return -1
	}
	return i
}

// findRightComma looks for a ',' at or after end, skipping ASCII spaces
// only. Returns its index, or -1 if absent.
func (m *Modifier) findRightComma(end int) int {
	buf := m.p.Bytes()
	woff := m.p.Offset()
	i := end
	for i < woff && buf[i] == ' ' {
		i++
	}
	if i >= woff || buf[i] != ',' {
		return -1
	}
	return i
}

// regionToRemove implements the comma-discovery table: when commas
// exist on both sides, keep the left one and consume the right one
// (so the surviving document has exactly one separator where the
// removed entry used to be); otherwise collapse toward whichever single
// comma is present, or just the entry's own span if neither is.
func regionToRemove(left, right, entryStart, entryEnd int) (start, end int) {
	switch {
	case left >= 0 && right >= 0:
		return entryStart, right + 1
	case left >= 0:
		return left, entryEnd
	case right >= 0:
		return entryStart, right + 1
	default:
		return entryStart, entryEnd
	}
}

func (m *Modifier) removeRange(start, end int) error {
	buf := m.p.Bytes()
	woff := m.p.Offset()
	origAfter := woff - end
	if origAfter > 0 {
		copy(buf[start:start+origAfter], buf[end:end+origAfter])
	}
	m.p.SetOffset(start + origAfter)
	return m.p.Parse()
}

// RemoveKeyValue deletes the key/value pair named key from the object
// container, along with exactly one surrounding comma, then reparses.
func (m *Modifier) RemoveKeyValue(container TokenRef, key string) error {
	valueRef, ok := m.p.ValueByKey(container, key)
	if !ok {
		return ErrKeyAbsent
	}
	children := m.p.childIndices(container)
	keyIdx := -1
	for i := 0; i+1 < len(children); i += 2 {
		if TokenRef(children[i+1]) == valueRef {
			keyIdx = children[i]
			break
		}
	}
	if keyIdx < 0 {
		return ErrKeyAbsent
	}
	keyTok := m.p.tokens[keyIdx]
	valTok := m.p.Token(valueRef)
	ks, _ := expandToQuotes(keyTok)
	_, ve := expandToQuotes(valTok)
	left := m.findLeftComma(ks)
	right := m.findRightComma(ve)
	start, end := regionToRemove(left, right, ks, ve)
	return m.removeRange(start, end)
}

// RemoveArrayIndex deletes the i-th direct child of the array container,
// along with exactly one surrounding comma, then reparses.
func (m *Modifier) RemoveArrayIndex(container TokenRef, index int) error {
	ref, ok := m.p.ValueByIndex(container, index)
	if !ok {
		return ErrIndexOutOfRange
	}
	tok := m.p.Token(ref)
	ts, te := expandToQuotes(tok)
	left := m.findLeftComma(ts)
	right := m.findRightComma(te)
	start, end := regionToRemove(left, right, ts, te)
	return m.removeRange(start, end)
}

// AppendArrayValue appends v as a new element of the array container.
func (m *Modifier) AppendArrayValue(container TokenRef, v Value) error {
	if err := m.StartAppend(container); err != nil {
		return err
	}
	m.Emitter().InsertArrayValue(v)
	return m.Finish()
}

// InsertOrUpdateKeyValue removes any existing key/value pair named key,
// then appends a fresh (key, v) pair at the end of the object. An update
// is therefore a remove-then-append, and reorders the key to the end:
// a true in-place type change would require span growth and risk
// re-parse ambiguity, so this is always remove+append.
func (m *Modifier) InsertOrUpdateKeyValue(container TokenRef, key string, v Value) error {
	containerTok := m.p.Token(container)
	if err := m.RemoveKeyValue(container, key); err != nil && err != ErrKeyAbsent {
		return err
	}
	fresh, ok := m.p.tokenAtStart(containerTok.Start, containerTok.Kind)
	if !ok {
		return ErrKeyAbsent
	}
	if err := m.StartAppend(fresh); err != nil {
		return err
	}
	m.Emitter().InsertKeyValue(key, v)
	return m.Finish()
}
