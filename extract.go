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

import "strconv"

// Bool inspects the first byte of the token's span: t, T, y, Y, or 1
// yields true, anything else false. This is laxer than RFC 7159 bool
// literals, preserved deliberately from the original's byte check.
func (p *Parser) Bool(ref TokenRef) (bool, error) {
	tok := p.Token(ref)
	if tok.End <= tok.Start {
		return false, ErrConversionIncompatible
	}
	switch p.Written()[tok.Start] {
	case 't', 'T', 'y', 'Y', '1':
		return true, nil
	default:
		return false, nil
	}
}

// scratchSpan copies up to 15 bytes of the token's span into a small
// stack buffer for locale-independent numeric parsing, matching the
// original's fixed 16-byte copyTokenValue scratch.
func (p *Parser) scratchSpan(tok Token) string {
	buf := p.Written()
	span := buf[tok.Start:tok.End]
	var scratch [15]byte
	n := len(span)
	if n > 15 {
		n = 15
	}
	copy(scratch[:], span[:n])
	return string(scratch[:n])
}

// Int64 parses the token's span as a base-10 signed integer.
func (p *Parser) Int64(ref TokenRef) (int64, error) {
	tok := p.Token(ref)
	if tok.Kind != KindPrimitive && tok.Kind != KindString {
		return 0, ErrConversionIncompatible
	}
	v, err := strconv.ParseInt(p.scratchSpan(tok), 10, 64)
	if err != nil {
		return 0, ErrConversionIncompatible
	}
	return v, nil
}

// Uint64 parses the token's span as a base-10 unsigned integer.
func (p *Parser) Uint64(ref TokenRef) (uint64, error) {
	tok := p.Token(ref)
	if tok.Kind != KindPrimitive && tok.Kind != KindString {
		return 0, ErrConversionIncompatible
	}
	v, err := strconv.ParseUint(p.scratchSpan(tok), 10, 64)
	if err != nil {
		return 0, ErrConversionIncompatible
	}
	return v, nil
}

// Float64 parses the token's span as a float. Integer-looking spans
// parse fine too, since strconv.ParseFloat accepts them.
func (p *Parser) Float64(ref TokenRef) (float64, error) {
	tok := p.Token(ref)
	if tok.Kind != KindPrimitive && tok.Kind != KindString {
		return 0, ErrConversionIncompatible
	}
	v, err := strconv.ParseFloat(p.scratchSpan(tok), 64)
	if err != nil {
		return 0, ErrConversionIncompatible
	}
	return v, nil
}

// TokenJSON returns the token's raw span bytes as written in the source
// buffer. For a string token this excludes the enclosing quotes, so the
// result is not round-trippable JSON on its own for strings. For
// objects/arrays it includes the enclosing braces/brackets and is
// round-trippable.
func (p *Parser) TokenJSON(ref TokenRef) []byte {
	tok := p.Token(ref)
	return p.Written()[tok.Start:tok.End]
}

// String decodes a String token's escapes into a new Go string.
func (p *Parser) String(ref TokenRef) (string, error) {
	sink := &StringSink{}
	if err := p.ExtractStringInto(ref, sink); err != nil {
		return "", err
	}
	return sink.String(), nil
}

// ExtractStringInto decodes a String token's escapes and UTF-16 units
// into sink, one input byte at a time, without allocating beyond what
// sink itself allocates. Surrogate pairs are not reassembled; only the
// basic multilingual plane is supported.
func (p *Parser) ExtractStringInto(ref TokenRef, sink Sink) error {
	tok := p.Token(ref)
	if tok.Kind != KindString {
		return ErrConversionIncompatible
	}
	buf := p.Written()
	i, end := tok.Start, tok.End
	for i < end {
		c := buf[i]
		if c != '\\' {
			sink.AppendByte(c)
			i++
			continue
		}
		i++
		if i >= end {
			sink.AppendByte('\\')
			break
		}
		switch buf[i] {
		case 'b':
			sink.AppendByte(0x08)
			i++
		case 'f':
			sink.AppendByte(0x0C)
			i++
		case 'n':
			sink.AppendByte(0x0A)
			i++
		case 'r':
			sink.AppendByte(0x0D)
			i++
		case 't':
			sink.AppendByte(0x09)
			i++
		case 'u':
			if i+4 < end {
				if v, ok := parseHex4(buf[i+1 : i+5]); ok {
					appendUTF8(sink, v)
					i += 5
					continue
				}
			}
			sink.AppendByte(buf[i])
			i++
		default:
			sink.AppendByte(buf[i])
			i++
		}
	}
	return nil
}

// parseHex4 decodes 4 ASCII hex digits into a UTF-16 code unit.
func parseHex4(b []byte) (uint16, bool) {
	var v uint16
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

// appendUTF8 writes the UTF-8 encoding of a single BMP code point.
func appendUTF8(sink Sink, u uint16) {
	switch {
	case u <= 0x7F:
		sink.AppendByte(byte(u))
	case u <= 0x7FF:
		sink.AppendByte(0xC0 | byte(u>>6))
		sink.AppendByte(0x80 | byte(u&0x3F))
	default:
		sink.AppendByte(0xE0 | byte(u>>12))
		sink.AppendByte(0x80 | byte((u>>6)&0x3F))
		sink.AppendByte(0x80 | byte(u&0x3F))
	}
}
