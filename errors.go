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
	"errors"
	"fmt"
)

// Sentinel errors for the fallible operations across the toolkit. Wrap
// one of these with fmt.Errorf("...: %w", ...) or compare with errors.Is.
var (
	ErrEmptyInput             = errors.New("spanjson: empty input")
	ErrGrammarInvalid         = errors.New("spanjson: grammar invalid")
	ErrPayloadPartial         = errors.New("spanjson: payload partial")
	ErrTokenCapacityExhausted = errors.New("spanjson: token capacity exhausted")
	ErrByteCapacityExhausted  = errors.New("spanjson: byte capacity exhausted")
	ErrKeyAbsent              = errors.New("spanjson: key absent")
	ErrIndexOutOfRange        = errors.New("spanjson: index out of range")
	ErrConversionIncompatible = errors.New("spanjson: conversion incompatible")
	ErrModifierBusy           = errors.New("spanjson: modifier busy")
	ErrEmitterTruncated       = errors.New("spanjson: emitter truncated")
)

// SyntaxError reports a grammar violation at a specific byte offset.
// It satisfies errors.Is against ErrGrammarInvalid so callers that only
// care about the error kind can keep using errors.Is.
type SyntaxError struct {
	Offset int
	msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("spanjson: %s at offset %d", e.msg, e.Offset)
}

// Is reports whether target is the grammar-invalid sentinel.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrGrammarInvalid
}

// Unwrap exposes the sentinel so errors.Is(err, ErrGrammarInvalid) works
// through the standard unwrap chain too.
func (e *SyntaxError) Unwrap() error {
	return ErrGrammarInvalid
}

func syntaxErrorAt(offset int, msg string) *SyntaxError {
	return &SyntaxError{Offset: offset, msg: msg}
}
