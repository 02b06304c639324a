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

import "errors"

// Parser couples a Buffer with its token array and drives the
// tokenizer. It composes Buffer the way the original's JsonParser
// inherits from JsonBuffer: every Buffer method is available directly on
// a *Parser.
type Parser struct {
	Buffer
	tokens      []Token
	tokensFixed bool
}

// NewParser returns a Parser over a growable buffer whose token array is
// also managed automatically (two-pass sizing on Parse, see below).
func NewParser() *Parser {
	return &Parser{Buffer: *NewBuffer()}
}

// NewFixedParser returns a Parser over caller-owned byte and token
// storage. Neither ever reallocates; capacity errors surface as failures.
func NewFixedParser(region []byte, tokens []Token) *Parser {
	return &Parser{Buffer: *NewFixedBuffer(region), tokens: tokens[:0], tokensFixed: true}
}

// AllocateTokens pre-sizes the token array in growable mode. Returns
// false if the parser is in fixed-token mode (its array size is
// permanent).
func (p *Parser) AllocateTokens(n int) bool {
	if p.tokensFixed {
		return false
	}
	p.tokens = make([]Token, 0, n)
	return true
}

// Tokens returns the valid token slice [0, end) from the last successful
// parse. Every TokenRef obtained before the next Parse call is invalid.
func (p *Parser) Tokens() []Token { return p.tokens }

// Token dereferences a TokenRef against the current token slice.
func (p *Parser) Token(ref TokenRef) Token {
	return p.tokens[ref]
}

// Parse scans the buffer's written region [0, Offset()) and rebuilds the
// token array. An empty buffer is always a failure.
//
// In fixed-token mode, a capacity shortfall is returned directly
// (ErrTokenCapacityExhausted); the caller must grow and retry itself.
// In growable mode, a pre-sized token array that runs out mid-scan is
// discarded and the parser falls back to a two-pass count-then-fill
// scan: the same bytes are scanned twice, first to count, then to fill
// an exactly-sized array.
func (p *Parser) Parse() error {
	if p.Offset() == 0 {
		return ErrEmptyInput
	}
	buf := p.Written()

	if p.tokensFixed {
		n, err := scan(buf, p.tokens[:cap(p.tokens)])
		if err != nil {
			return err
		}
		p.tokens = p.tokens[:n]
		return nil
	}

	if p.tokens != nil {
		n, err := scan(buf, p.tokens[:cap(p.tokens)])
		if err == nil {
			p.tokens = p.tokens[:n]
			return nil
		}
		if !errors.Is(err, ErrTokenCapacityExhausted) {
			return err
		}
		p.tokens = nil
	}

	n, err := scan(buf, nil)
	if err != nil {
		return err
	}
	tokens := make([]Token, n)
	if _, err := scan(buf, tokens); err != nil {
		return err
	}
	p.tokens = tokens
	return nil
}

// tokenAtStart re-resolves a TokenRef by its stable byte offset and kind
// after a reparse has invalidated the original ref. Used internally by
// the Modifier, whose high-level operations reparse mid-flight, so
// callers must re-fetch references after any operation that may reparse.
func (p *Parser) tokenAtStart(start int, kind Kind) (TokenRef, bool) {
	for i, t := range p.tokens {
		if t.Start == start && t.Kind == kind {
			return TokenRef(i), true
		}
	}
	return NoToken, false
}
