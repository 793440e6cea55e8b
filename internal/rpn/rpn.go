package rpn

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Errors returned by [Calculator.Push] and [Calculator.Eval].
var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrUnbalanced      = errors.New("unbalanced expression")
)

// Operator implementations. An error leaves the stack unchanged.
type (
	UnaryFunc[T any]  func(x T) (T, error)
	BinaryFunc[T any] func(x, y T) (T, error)
)

// Calculator evaluates expressions in reverse Polish notation over values
// of type T. Tokens that are neither operators nor stack commands are parsed
// as operands.
//
// The stack commands "dup" and "swap" are always available.
// A Calculator is not safe for concurrent use.
type Calculator[T fmt.Stringer] struct {
	parse  func(string) (T, error)
	unary  map[string]UnaryFunc[T]
	binary map[string]BinaryFunc[T]
	stack  []T
	logger zerolog.Logger
}

// New returns a calculator that parses operands with parse and applies
// the given operators.
func New[T fmt.Stringer](logger zerolog.Logger, parse func(string) (T, error), unary map[string]UnaryFunc[T], binary map[string]BinaryFunc[T]) *Calculator[T] {
	return &Calculator[T]{
		parse:  parse,
		unary:  unary,
		binary: binary,
		logger: logger,
	}
}

// Operators returns the sorted operator and stack command tokens the
// calculator understands.
func (c *Calculator[T]) Operators() []string {
	ops := make([]string, 0, len(c.unary)+len(c.binary)+2)
	for op := range c.binary {
		ops = append(ops, op)
	}
	for op := range c.unary {
		ops = append(ops, op)
	}
	ops = append(ops, "dup", "swap")
	slices.Sort(ops)
	return ops
}

// Push applies a single token to the stack.
// If the token fails, the stack is left unchanged.
func (c *Calculator[T]) Push(token string) error {
	n := len(c.stack)
	switch token {
	case "dup":
		if n < 1 {
			return fmt.Errorf("dup needs 1 operand: %w", ErrStackUnderflow)
		}
		c.stack = append(c.stack, c.stack[n-1])
		return nil

	case "swap":
		if n < 2 {
			return fmt.Errorf("swap needs 2 operands: %w", ErrStackUnderflow)
		}
		c.stack[n-2], c.stack[n-1] = c.stack[n-1], c.stack[n-2]
		return nil
	}

	if op, ok := c.binary[token]; ok {
		if n < 2 {
			return fmt.Errorf("%s needs 2 operands: %w", token, ErrStackUnderflow)
		}
		x, y := c.stack[n-2], c.stack[n-1]
		z, err := op(x, y)
		if err != nil {
			return fmt.Errorf("evaluating \"%v %v %s\": %w", x, y, token, err)
		}
		c.logger.Debug().Str("op", token).Stringer("x", x).Stringer("y", y).Stringer("result", z).Msg("Applied operator")
		c.stack = append(c.stack[:n-2], z)
		return nil
	}

	if op, ok := c.unary[token]; ok {
		if n < 1 {
			return fmt.Errorf("%s needs 1 operand: %w", token, ErrStackUnderflow)
		}
		x := c.stack[n-1]
		z, err := op(x)
		if err != nil {
			return fmt.Errorf("evaluating \"%v %s\": %w", x, token, err)
		}
		c.logger.Debug().Str("op", token).Stringer("x", x).Stringer("result", z).Msg("Applied operator")
		c.stack[n-1] = z
		return nil
	}

	v, err := c.parse(token)
	if err != nil {
		return err
	}
	c.stack = append(c.stack, v)
	return nil
}

// Eval evaluates a whitespace-separated expression on an empty stack and
// returns its single resulting value. The stack is reset first.
func (c *Calculator[T]) Eval(expr string) (T, error) {
	var zero T
	c.Reset()
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return zero, ErrEmptyExpression
	}
	for i, token := range tokens {
		err := c.Push(token)
		if err != nil {
			return zero, fmt.Errorf("token %d %q: %w", i+1, token, err)
		}
	}
	if len(c.stack) != 1 {
		return zero, fmt.Errorf("stack holds %d values, want 1: %w", len(c.stack), ErrUnbalanced)
	}
	c.logger.Debug().Str("expr", expr).Stringer("result", c.stack[0]).Msg("Evaluated")
	return c.stack[0], nil
}

// Stack returns a copy of the stack, bottom first.
func (c *Calculator[T]) Stack() []T {
	s := make([]T, len(c.stack))
	copy(s, c.stack)
	return s
}

// Reset empties the stack.
func (c *Calculator[T]) Reset() {
	c.stack = c.stack[:0]
}
