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

import "testing"

// newModifiableParser builds a Parser over a growable buffer with enough
// spare byte capacity for a Modifier's displaced-window relocation.
func newModifiableParser(t *testing.T, doc string) *Parser {
	t.Helper()
	p := NewParser()
	p.Allocate(len(doc)*4 + 64)
	if err := p.AddString(doc); err != nil {
		t.Fatalf("AddString: %v", err)
	}
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse(%q): %v", doc, err)
	}
	return p
}

func TestRemoveKeyValueMiddleEntry(t *testing.T) {
	p := newModifiableParser(t, `{"a":1,"b":2,"c":3}`)
	root, _ := p.OuterObject()
	m := NewModifier(p)
	if err := m.RemoveKeyValue(root, "b"); err != nil {
		t.Fatalf("RemoveKeyValue: %v", err)
	}
	want := `{"a":1,"c":3}`
	if got := string(p.Written()); got != want {
		t.Fatalf("after removing middle key = %q, want %q", got, want)
	}
}

func TestRemoveKeyValueFirstEntry(t *testing.T) {
	p := newModifiableParser(t, `{"a":1,"b":2}`)
	root, _ := p.OuterObject()
	m := NewModifier(p)
	if err := m.RemoveKeyValue(root, "a"); err != nil {
		t.Fatalf("RemoveKeyValue: %v", err)
	}
	want := `{"b":2}`
	if got := string(p.Written()); got != want {
		t.Fatalf("after removing first key = %q, want %q", got, want)
	}
}

func TestRemoveKeyValueLastEntry(t *testing.T) {
	p := newModifiableParser(t, `{"a":1,"b":2}`)
	root, _ := p.OuterObject()
	m := NewModifier(p)
	if err := m.RemoveKeyValue(root, "b"); err != nil {
		t.Fatalf("RemoveKeyValue: %v", err)
	}
	want := `{"a":1}`
	if got := string(p.Written()); got != want {
		t.Fatalf("after removing last key = %q, want %q", got, want)
	}
}

func TestRemoveKeyValueSoleEntryLeavesEmptyObject(t *testing.T) {
	p := newModifiableParser(t, `{"a":1}`)
	root, _ := p.OuterObject()
	m := NewModifier(p)
	if err := m.RemoveKeyValue(root, "a"); err != nil {
		t.Fatalf("RemoveKeyValue: %v", err)
	}
	want := `{}`
	if got := string(p.Written()); got != want {
		t.Fatalf("after removing sole key = %q, want %q", got, want)
	}
}

func TestRemoveKeyValueAbsentKey(t *testing.T) {
	p := newModifiableParser(t, `{"a":1}`)
	root, _ := p.OuterObject()
	m := NewModifier(p)
	if err := m.RemoveKeyValue(root, "z"); err != ErrKeyAbsent {
		t.Fatalf("RemoveKeyValue(absent) = %v, want ErrKeyAbsent", err)
	}
}

func TestRemoveArrayIndexMiddleElement(t *testing.T) {
	p := newModifiableParser(t, `[1,2,3]`)
	root, _ := p.OuterArray()
	m := NewModifier(p)
	if err := m.RemoveArrayIndex(root, 1); err != nil {
		t.Fatalf("RemoveArrayIndex: %v", err)
	}
	want := `[1,3]`
	if got := string(p.Written()); got != want {
		t.Fatalf("after removing middle element = %q, want %q", got, want)
	}
}

func TestRemoveArrayIndexSoleElementLeavesEmptyArray(t *testing.T) {
	p := newModifiableParser(t, `[1]`)
	root, _ := p.OuterArray()
	m := NewModifier(p)
	if err := m.RemoveArrayIndex(root, 0); err != nil {
		t.Fatalf("RemoveArrayIndex: %v", err)
	}
	want := `[]`
	if got := string(p.Written()); got != want {
		t.Fatalf("after removing sole element = %q, want %q", got, want)
	}
}

func TestRemoveArrayIndexOutOfRange(t *testing.T) {
	p := newModifiableParser(t, `[1,2]`)
	root, _ := p.OuterArray()
	m := NewModifier(p)
	if err := m.RemoveArrayIndex(root, 5); err != ErrIndexOutOfRange {
		t.Fatalf("RemoveArrayIndex(out of range) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestAppendArrayValue(t *testing.T) {
	p := newModifiableParser(t, `[1,2]`)
	root, _ := p.OuterArray()
	m := NewModifier(p)
	if err := m.AppendArrayValue(root, IntValue(3)); err != nil {
		t.Fatalf("AppendArrayValue: %v", err)
	}
	want := `[1,2,3]`
	if got := string(p.Written()); got != want {
		t.Fatalf("after append = %q, want %q", got, want)
	}
}

func TestAppendArrayValueIntoEmptyArray(t *testing.T) {
	p := newModifiableParser(t, `[]`)
	root, _ := p.OuterArray()
	m := NewModifier(p)
	if err := m.AppendArrayValue(root, StringValue("x")); err != nil {
		t.Fatalf("AppendArrayValue: %v", err)
	}
	want := `["x"]`
	if got := string(p.Written()); got != want {
		t.Fatalf("after append into empty array = %q, want %q", got, want)
	}
}

func TestInsertOrUpdateKeyValueUpdatesAndReorders(t *testing.T) {
	p := newModifiableParser(t, `{"a":1,"b":2}`)
	root, _ := p.OuterObject()
	m := NewModifier(p)
	if err := m.InsertOrUpdateKeyValue(root, "a", IntValue(99)); err != nil {
		t.Fatalf("InsertOrUpdateKeyValue: %v", err)
	}
	want := `{"b":2,"a":99}`
	if got := string(p.Written()); got != want {
		t.Fatalf("after update-reorder = %q, want %q", got, want)
	}
}

func TestInsertOrUpdateKeyValueInsertsNewKey(t *testing.T) {
	p := newModifiableParser(t, `{"a":1}`)
	root, _ := p.OuterObject()
	m := NewModifier(p)
	if err := m.InsertOrUpdateKeyValue(root, "b", StringValue("new")); err != nil {
		t.Fatalf("InsertOrUpdateKeyValue: %v", err)
	}
	want := `{"a":1,"b":"new"}`
	if got := string(p.Written()); got != want {
		t.Fatalf("after insert-new-key = %q, want %q", got, want)
	}
}

func TestModifierBusyUntilFinish(t *testing.T) {
	p := newModifiableParser(t, `{"a":1}`)
	root, _ := p.OuterObject()
	m := NewModifier(p)
	valueRef, _ := p.ValueByKey(root, "a")
	if err := m.StartModify(valueRef); err != nil {
		t.Fatalf("StartModify: %v", err)
	}
	if err := m.StartModify(valueRef); err != ErrModifierBusy {
		t.Fatalf("second StartModify while in-flight = %v, want ErrModifierBusy", err)
	}
	m.Emitter().InsertValue(IntValue(7))
	if err := m.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	want := `{"a":7}`
	if got := string(p.Written()); got != want {
		t.Fatalf("after StartModify/Finish = %q, want %q", got, want)
	}
}
