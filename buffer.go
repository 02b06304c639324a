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

// Buffer owns a contiguous byte region and a write cursor into it. In
// fixed mode the caller provides the backing array and capacity never
// grows; in growable mode Allocate/AddData extend the backing array as
// needed. writeOffset is always <= len(bytes).
type Buffer struct {
	bytes       []byte
	writeOffset int
	fixed       bool
}

// NewBuffer returns an empty, growable Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewFixedBuffer returns a Buffer over a caller-owned region that never
// reallocates. Writes beyond cap(region) fail with ErrByteCapacityExhausted.
func NewFixedBuffer(region []byte) *Buffer {
	return &Buffer{bytes: region[:0], fixed: true}
}

// newWindowBuffer wraps an existing slice (a "displaced window" carved out
// of a host buffer by the Modifier) without copying. Used internally only.
func newWindowBuffer(window []byte) Buffer {
	return Buffer{bytes: window[:0], fixed: true}
}

// Bytes returns the full backing array, including capacity beyond
// writeOffset (the Modifier's displaced-window scratch space lives
// there). Callers that need only the written region should use Written.
func (b *Buffer) Bytes() []byte { return b.bytes[:cap(b.bytes)] }

// Written returns the bytes written so far, [0, Offset()).
func (b *Buffer) Written() []byte { return b.bytes[:b.writeOffset] }

// Offset returns the current write cursor.
func (b *Buffer) Offset() int { return b.writeOffset }

// SetOffset moves the write cursor directly; used by the modifier after
// relocating bytes in place.
func (b *Buffer) SetOffset(n int) {
	if n > len(b.bytes) && n <= cap(b.bytes) {
		b.bytes = b.bytes[:n]
	}
	b.writeOffset = n
}

// Len returns the capacity of the backing array.
func (b *Buffer) Len() int { return cap(b.bytes) }

// Clear resets the write cursor to zero and zeros the written region.
func (b *Buffer) Clear() {
	for i := 0; i < b.writeOffset; i++ {
		b.bytes[i] = 0
	}
	b.writeOffset = 0
}

// NullTerminate writes a 0 byte just past the last written byte (or at
// the last byte of a full buffer, fixed or growable), without advancing
// writeOffset.
func (b *Buffer) NullTerminate() error {
	if b.writeOffset < cap(b.bytes) {
		b.ensureLen(b.writeOffset + 1)
		b.bytes[b.writeOffset] = 0
		return nil
	}
	if cap(b.bytes) == 0 {
		return ErrByteCapacityExhausted
	}
	b.bytes[cap(b.bytes)-1] = 0
	return nil
}

// Allocate grows the backing array's capacity to at least newLen. In
// fixed mode this only succeeds if newLen <= existing capacity.
func (b *Buffer) Allocate(newLen int) bool {
	if newLen <= cap(b.bytes) {
		return true
	}
	if b.fixed {
		return false
	}
	grown := make([]byte, b.writeOffset, newLen)
	copy(grown, b.bytes[:b.writeOffset])
	b.bytes = grown
	return true
}

func (b *Buffer) ensureLen(n int) {
	if n <= len(b.bytes) {
		return
	}
	if n > cap(b.bytes) {
		b.Allocate(n)
	}
	b.bytes = b.bytes[:n]
}

// AddData appends raw bytes, growing the buffer if not fixed. Returns
// ErrByteCapacityExhausted if the buffer is fixed and lacks room.
func (b *Buffer) AddData(data []byte) error {
	need := b.writeOffset + len(data)
	if need > cap(b.bytes) {
		if b.fixed {
			return ErrByteCapacityExhausted
		}
		if !b.Allocate(need * 2) {
			return ErrByteCapacityExhausted
		}
	}
	b.ensureLen(need)
	copy(b.bytes[b.writeOffset:need], data)
	b.writeOffset = need
	return nil
}

// AddString appends a Go string's bytes, mirroring AddData for C-string
// style input from a host.
func (b *Buffer) AddString(s string) error {
	return b.AddData([]byte(s))
}
