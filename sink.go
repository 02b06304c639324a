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

// Sink is the character sink extractors write decoded bytes into. It is
// the Go rendition of a two-variant capability, growable heap string vs.
// bounded fixed buffer, rather than an inheritance hierarchy.
type Sink interface {
	AppendByte(b byte)
	AppendBytes(b []byte)
	Len() int
}

// StringSink accumulates into a growable byte slice.
type StringSink struct {
	buf []byte
}

func (s *StringSink) AppendByte(b byte)    { s.buf = append(s.buf, b) }
func (s *StringSink) AppendBytes(b []byte) { s.buf = append(s.buf, b...) }
func (s *StringSink) Len() int             { return len(s.buf) }
func (s *StringSink) String() string       { return string(s.buf) }
func (s *StringSink) Bytes() []byte        { return s.buf }

// BoundedSink writes into a caller-provided fixed buffer, truncating
// once it fills while still counting how many bytes would have been
// written. Truncated reports whether any byte was dropped.
type BoundedSink struct {
	buf    []byte
	length int
}

// NewBoundedSink wraps buf as a fixed-capacity sink.
func NewBoundedSink(buf []byte) *BoundedSink {
	return &BoundedSink{buf: buf}
}

func (s *BoundedSink) AppendByte(b byte) {
	if s.length < len(s.buf) {
		s.buf[s.length] = b
	}
	s.length++
}

func (s *BoundedSink) AppendBytes(b []byte) {
	for _, c := range b {
		s.AppendByte(c)
	}
}

func (s *BoundedSink) Len() int { return s.length }

// Truncated reports whether the sink received more bytes than it could
// hold.
func (s *BoundedSink) Truncated() bool { return s.length > len(s.buf) }

// Bytes returns the written (possibly truncated) region.
func (s *BoundedSink) Bytes() []byte {
	if s.length < len(s.buf) {
		return s.buf[:s.length]
	}
	return s.buf
}
