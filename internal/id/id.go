// Package id mints fresh identifiers for compiler stages after parsing.
// The lexer and parser never use it.
package id

import (
	"strconv"
	"sync/atomic"

	"github.com/you-not-fish/mincaml/internal/types"
)

// Generator hands out identifiers that are unique per generator.
// It is safe for concurrent use.
type Generator struct {
	counter atomic.Uint64
}

// Default is the process-wide generator.
var Default = &Generator{}

// New returns a generator whose counter starts at zero.
func New() *Generator {
	return &Generator{}
}

// Gen returns a fresh identifier of the form "prefix.N".
func (g *Generator) Gen(prefix string) string {
	return prefix + "." + strconv.FormatUint(g.counter.Add(1), 10)
}

// Temp returns a fresh temporary name of the form "T<code>N", where code is
// the type's one-letter code. t must not be an unresolved variable.
func (g *Generator) Temp(t types.Type) string {
	return "T" + t.Code() + strconv.FormatUint(g.counter.Add(1), 10)
}

// Gen returns a fresh identifier from the default generator.
func Gen(prefix string) string {
	return Default.Gen(prefix)
}

// Temp returns a fresh temporary name from the default generator.
func Temp(t types.Type) string {
	return Default.Temp(t)
}
