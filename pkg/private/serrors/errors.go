// Copyright 2026 The sfcgate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serrors provides errors that carry key/value context and, unless
// requested otherwise, the stack of their creation.
//
// Every error returned by this package is a pointer, so errors.Is(err, err)
// holds. Wrapped causes and joined base errors are reachable through
// errors.Is and errors.As.
package serrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type field struct {
	key   string
	value any
}

// detailed is the single error implementation of the package. Either msg or
// base names the error; cause is the optional underlying error.
type detailed struct {
	msg    string
	base   error
	cause  error
	fields []field
	stack  *stack
}

func newDetailed(msg string, base, cause error, withStack bool, kv []any) *detailed {
	e := &detailed{msg: msg, base: base, cause: cause}
	for i := 0; i+1 < len(kv); i += 2 {
		e.fields = append(e.fields, field{key: fmt.Sprint(kv[i]), value: kv[i+1]})
	}
	sort.SliceStable(e.fields, func(i, j int) bool {
		return e.fields[i].key < e.fields[j].key
	})
	var inner *detailed
	if withStack && !errors.As(cause, &inner) {
		e.stack = callers()
	}
	return e
}

func (e *detailed) Error() string {
	var b strings.Builder
	if e.base != nil {
		b.WriteString(e.base.Error())
	} else {
		b.WriteString(e.msg)
	}
	if len(e.fields) > 0 {
		b.WriteString(" {")
		for i, f := range e.fields {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "%s=%v", f.key, f.value)
		}
		b.WriteString("}")
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *detailed) Unwrap() []error {
	var errs []error
	if e.base != nil {
		errs = append(errs, e.base)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// StackTrace returns the stack recorded at creation, or nil.
func (e *detailed) StackTrace() StackTrace {
	if e.stack == nil {
		return nil
	}
	return e.stack.StackTrace()
}

// MarshalLogObject renders the error as a structured zap object.
func (e *detailed) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e.base != nil {
		enc.AddString("msg", e.base.Error())
	} else {
		enc.AddString("msg", e.msg)
	}
	if e.cause != nil {
		if m, ok := e.cause.(zapcore.ObjectMarshaler); ok {
			if err := enc.AddObject("cause", m); err != nil {
				return err
			}
		} else {
			enc.AddString("cause", e.cause.Error())
		}
	}
	if e.stack != nil {
		if err := enc.AddArray("stacktrace", e.stack); err != nil {
			return err
		}
	}
	for _, f := range e.fields {
		zap.Any(f.key, f.value).AddTo(enc)
	}
	return nil
}

// New creates an error with a message, context and a stack trace. Plain
// errors.New is cheaper for sentinel errors.
func New(msg string, kv ...any) error {
	return newDetailed(msg, nil, nil, true, kv)
}

// Wrap annotates cause with a message and context. A stack trace is recorded
// unless cause already carries one.
func Wrap(msg string, cause error, kv ...any) error {
	return newDetailed(msg, nil, cause, true, kv)
}

// WrapNoStack is Wrap without recording a stack trace.
func WrapNoStack(msg string, cause error, kv ...any) error {
	return newDetailed(msg, nil, cause, false, kv)
}

// Join attaches cause and context to base, typically a sentinel error. The
// result matches both with errors.Is. It returns nil if both are nil.
func Join(base, cause error, kv ...any) error {
	if base == nil && cause == nil {
		return nil
	}
	return newDetailed("", base, cause, true, kv)
}

// JoinNoStack is Join without recording a stack trace.
func JoinNoStack(base, cause error, kv ...any) error {
	if base == nil && cause == nil {
		return nil
	}
	return newDetailed("", base, cause, false, kv)
}

// IsTimeout reports whether err, or an error in its chain, is a timeout.
func IsTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// List collects several errors into one.
type List []error

func (l List) Error() string {
	msgs := make([]string, 0, len(l))
	for _, err := range l {
		msgs = append(msgs, err.Error())
	}
	return "[ " + strings.Join(msgs, "; ") + " ]"
}

// ToError returns nil for an empty list and the list otherwise.
func (l List) ToError() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// MarshalLogArray renders the list as a zap array.
func (l List) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, err := range l {
		if m, ok := err.(zapcore.ObjectMarshaler); ok {
			if err := enc.AppendObject(m); err != nil {
				return err
			}
			continue
		}
		enc.AppendString(err.Error())
	}
	return nil
}
