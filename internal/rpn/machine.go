// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpn implements a reverse polish notation calculator on mpfr Floats.
package rpn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/db47h/mpfr"
	"github.com/db47h/mpfr/context"
)

// ErrStackUnderflow is returned when a word needs more operands than the
// stack holds.
var ErrStackUnderflow = errors.New("rpn: stack underflow")

// A Machine evaluates words on a stack of Floats. Every result is rounded to
// the machine's precision. Arithmetic errors are captured by a
// context.Context and returned by Exec.
//
// The zero Machine is not usable; use New.
type Machine struct {
	ctx   *context.Context
	base  int
	stack []*mpfr.Float
	log   zerolog.Logger
	words map[string]func() error
}

// New returns a new machine that computes with prec bits and parses numbers
// in the given base (0 for prefix detection, see mpfr.ParseFloat).
func New(prec uint, base int, log zerolog.Logger) *Machine {
	m := &Machine{
		ctx:  context.New(prec),
		base: base,
		log:  log,
	}
	m.words = m.wordMap()
	return m
}

// Prec returns the precision of m in bits.
func (m *Machine) Prec() uint {
	return m.ctx.Prec()
}

// Stack returns the contents of the stack, bottom first. The slice is a copy
// but the Floats are not.
func (m *Machine) Stack() []*mpfr.Float {
	s := make([]*mpfr.Float, len(m.stack))
	copy(s, m.stack)
	return s
}

// Top returns the value on top of the stack.
func (m *Machine) Top() (*mpfr.Float, error) {
	if len(m.stack) == 0 {
		return nil, ErrStackUnderflow
	}
	return m.stack[len(m.stack)-1], nil
}

// Eval executes all white space separated words of line in order. It stops at
// the first error. The stack is left as it was after the last successful
// word.
func (m *Machine) Eval(line string) error {
	for _, w := range strings.Fields(line) {
		if err := m.Exec(w); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes a single word: either a number, which is pushed on the stack,
// or one of the operators listed by Words. Operator names are case
// insensitive and take precedence over numbers.
func (m *Machine) Exec(word string) error {
	if f, ok := m.words[strings.ToLower(word)]; ok {
		m.log.Debug().Str("word", word).Int("depth", len(m.stack)).Msg("exec")
		return f()
	}
	x, err := m.ctx.ParseFloat(word, m.base)
	if err != nil {
		return fmt.Errorf("rpn: unknown word %q: %w", word, err)
	}
	m.push(x)
	return nil
}

// Words returns the sorted names of all operators.
func (m *Machine) Words() []string {
	ws := make([]string, 0, len(m.words))
	for w := range m.words {
		ws = append(ws, w)
	}
	slices.Sort(ws)
	return ws
}

func (m *Machine) push(x *mpfr.Float) {
	m.stack = append(m.stack, x)
}

// pop removes n values from the stack and returns them, bottom first.
func (m *Machine) pop(n int) ([]*mpfr.Float, error) {
	if len(m.stack) < n {
		return nil, ErrStackUnderflow
	}
	i := len(m.stack) - n
	xs := make([]*mpfr.Float, n)
	copy(xs, m.stack[i:])
	clear(m.stack[i:])
	m.stack = m.stack[:i]
	return xs, nil
}

// unary returns a word that replaces the top of the stack by op(top).
func (m *Machine) unary(op func(z, x *mpfr.Float) *mpfr.Float) func() error {
	return func() error {
		xs, err := m.pop(1)
		if err != nil {
			return err
		}
		return m.result(op(m.ctx.New(), xs[0]), xs)
	}
}

// binary returns a word that replaces the two values x, y on top of the stack
// by op(x, y).
func (m *Machine) binary(op func(z, x, y *mpfr.Float) *mpfr.Float) func() error {
	return func() error {
		xs, err := m.pop(2)
		if err != nil {
			return err
		}
		return m.result(op(m.ctx.New(), xs[0], xs[1]), xs)
	}
}

// result pushes z, or restores the operands xs if the context reports an
// error.
func (m *Machine) result(z *mpfr.Float, xs []*mpfr.Float) error {
	if err := m.ctx.Err(); err != nil {
		m.stack = append(m.stack, xs...)
		return err
	}
	m.push(z)
	return nil
}

// uintArg pops a non-negative integer. It returns both its value and the
// popped Float.
func (m *Machine) uintArg() (uint64, *mpfr.Float, error) {
	xs, err := m.pop(1)
	if err != nil {
		return 0, nil, err
	}
	x := xs[0]
	if !x.IsInt() || x.Sign() < 0 {
		m.push(x)
		return 0, nil, fmt.Errorf("rpn: %s is not a non-negative integer", x.String())
	}
	return x.Uint64(), x, nil
}

func (m *Machine) wordMap() map[string]func() error {
	c := m.ctx
	return map[string]func() error{
		"+":       m.binary(c.Add),
		"-":       m.binary(c.Sub),
		"*":       m.binary(c.Mul),
		"/":       m.binary(c.Quo),
		"pow":     m.binary(c.Pow),
		"neg":     m.unary(c.Neg),
		"abs":     m.unary(c.Abs),
		"sqrt":    m.unary(c.Sqrt),
		"cbrt":    m.unary(c.Cbrt),
		"exp":     m.unary(c.Exp),
		"log":     m.unary(c.Log),
		"gamma":   m.unary(c.Gamma),
		"lngamma": m.unary(c.Lngamma),
		"log2":    m.unary(c.Log2),
		"log10":   m.unary(c.Log10),
		"expm1":   m.unary(c.Expm1),
		"agm":     m.binary(c.AGM),
		"floor":   m.unary(c.Floor),
		"ceil":    m.unary(c.Ceil),
		"round":   m.unary(c.RoundInt),
		"trunc":   m.unary(c.Trunc),
		"root": func() error {
			k, kx, err := m.uintArg()
			if err != nil {
				return err
			}
			xs, err := m.pop(1)
			if err != nil {
				m.push(kx)
				return err
			}
			return m.result(c.Root(c.New(), xs[0], k), append(xs, kx))
		},
		"pi": func() error {
			return m.result(c.Pi(c.New()), nil)
		},
		"dup": func() error {
			x, err := m.Top()
			if err != nil {
				return err
			}
			m.push(x.Clone())
			return nil
		},
		"drop": func() error {
			_, err := m.pop(1)
			return err
		},
		"swap": func() error {
			xs, err := m.pop(2)
			if err != nil {
				return err
			}
			m.push(xs[1])
			m.push(xs[0])
			return nil
		},
		"clear": func() error {
			clear(m.stack)
			m.stack = m.stack[:0]
			return nil
		},
		"prec": func() error {
			p, px, err := m.uintArg()
			if err != nil {
				return err
			}
			if p < mpfr.MinPrec {
				m.push(px)
				return fmt.Errorf("rpn: invalid precision %d", p)
			}
			c.SetPrec(uint(p))
			m.log.Debug().Uint64("prec", p).Msg("precision changed")
			return nil
		},
	}
}
