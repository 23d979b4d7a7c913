package engine

import (
	"golang.org/x/exp/slices"

	"github.com/itsyagirlmay/Compiler-Techniques/tokenizer"
)

// Declarations is the program-wide record of identifiers introduced by
// INTEGER lines. It only ever grows during a run. The orchestrator owns
// one instance and threads it through every line, in program order, so
// declare-before-use holds.
type Declarations struct {
	names map[string]struct{}
}

func NewDeclarations() *Declarations {
	return &Declarations{names: make(map[string]struct{})}
}

func (d *Declarations) Declare(name string) {
	d.names[name] = struct{}{}
}

func (d *Declarations) Declared(name string) bool {
	_, ok := d.names[name]
	return ok
}

// Record inserts every identifier at a declaration position of a
// syntactically valid INTEGER line. It runs before the same line's
// semantic pass, so a declaration's own names are usable from the very
// next line on.
func (d *Declarations) Record(tokens []tokenizer.Token) {
	for i := 1; i < len(tokens); i += 2 {
		d.Declare(tokens[i].Raw)
	}
}

// Names returns the declared identifiers in sorted order.
func (d *Declarations) Names() []string {
	names := make([]string, 0, len(d.names))
	for name := range d.names {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
