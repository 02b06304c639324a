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

import (
	"strconv"
	"testing"
)

func TestChunkOrdinalParsing(t *testing.T) {
	cases := map[string]struct {
		n  int
		ok bool
	}{
		"evt/0":     {0, true},
		"evt/11":    {11, true},
		"a/b/c/7":   {7, true},
		"evt/":      {0, false},
		"evt":       {0, false},
		"evt/x":     {0, false},
		"evt/-1":    {0, false},
	}
	for name, want := range cases {
		n, ok := chunkOrdinal(name)
		if ok != want.ok || (ok && n != want.n) {
			t.Errorf("chunkOrdinal(%q) = (%d, %v), want (%d, %v)", name, n, ok, want.n, want.ok)
		}
	}
}

func TestAddChunkedDataOutOfOrderReassembly(t *testing.T) {
	b := NewBuffer()
	chunks := map[int]string{
		0: "AAAA",
		1: "BBBB",
		2: "CCCC",
	}
	order := []int{1, 0, 2}
	const size = 4
	for _, n := range order {
		name := "evt/" + strconv.Itoa(n)
		if err := b.AddChunkedData(name, []byte(chunks[n]), size); err != nil {
			t.Fatalf("AddChunkedData(%s): %v", name, err)
		}
	}
	want := "AAAABBBBCCCC"
	if got := string(b.Written()); got != want {
		t.Fatalf("reassembled = %q, want %q", got, want)
	}
}

func TestAddChunkedDataChunkZeroDoesNotClear(t *testing.T) {
	b := NewBuffer()
	const size = 4
	if err := b.AddChunkedData("evt/1", []byte("BBBB"), size); err != nil {
		t.Fatalf("AddChunkedData(evt/1): %v", err)
	}
	if err := b.AddChunkedData("evt/0", []byte("AAAA"), size); err != nil {
		t.Fatalf("AddChunkedData(evt/0): %v", err)
	}
	want := "AAAABBBB"
	if got := string(b.Written()); got != want {
		t.Fatalf("after chunk 0 arrives second = %q, want %q (chunk 1 must survive)", got, want)
	}
}

func TestAddChunkedDataInvalidEventNameRejected(t *testing.T) {
	b := NewBuffer()
	if err := b.AddChunkedData("no-ordinal", []byte("x"), 4); err != ErrGrammarInvalid {
		t.Fatalf("AddChunkedData(no ordinal) = %v, want ErrGrammarInvalid", err)
	}
}
