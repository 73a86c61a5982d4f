// SPDX-License-Identifier: MIT

// Package sci: the Registry container and its lookup/call surface.

package sci

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlsci/dynamic"
)

// Func is the uniform wrapper signature every registered function shares.
// Arguments and result are dynamic values; typed sentinels from the
// underlying packages pass through unchanged.
type Func func(args ...dynamic.Value) (dynamic.Value, error)

// Constant is one named physical constant of the surface.
type Constant struct {
	Name  string
	Value float64
}

// Registry holds the function surface assembled at construction time.
// It is immutable after NewRegistry returns and safe for concurrent use.
type Registry struct {
	funcs  map[string]Func
	consts []Constant
}

// NewRegistry assembles the capability set.
// Every group is enabled by default; Without* options remove groups
// independently. The core group (argmin, eye, ones, zeros) is always
// present.
// Complexity: O(1) registrations.
func NewRegistry(opts ...Option) *Registry {
	o := gatherOptions(opts...)
	r := &Registry{funcs: make(map[string]Func)}

	r.registerCore()
	if o.linearAlgebra {
		r.registerLinearAlgebra()
	}
	if o.regression {
		r.registerRegression()
	}
	if o.random {
		r.registerRandom(o)
	}
	if o.io {
		r.registerIO(o)
	}
	if o.constants {
		r.consts = physicalConstants()
	}

	return r
}

// Lookup returns the named function, or false if it is not registered.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]

	return fn, ok
}

// Call invokes the named function with the given dynamic arguments.
// An unregistered name is ErrUnknownFunc; everything else is the wrapped
// function's own contract.
func (r *Registry) Call(name string, args ...dynamic.Value) (dynamic.Value, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return dynamic.Value{}, fmt.Errorf("Call(%q): %w", name, ErrUnknownFunc)
	}

	return fn(args...)
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Constants returns the physical-constant set (empty when disabled).
// The returned slice is a copy; callers may reorder it freely.
func (r *Registry) Constants() []Constant {
	out := make([]Constant, len(r.consts))
	copy(out, r.consts)

	return out
}

// Constant looks a single constant up by name.
func (r *Registry) Constant(name string) (float64, bool) {
	for _, c := range r.consts {
		if c.Name == name {
			return c.Value, true
		}
	}

	return 0, false
}

// register binds one name; construction-time only.
func (r *Registry) register(name string, fn Func) {
	r.funcs[name] = fn
}

// physicalConstants returns the constant set in declaration order.
func physicalConstants() []Constant {
	return []Constant{
		{Name: "pi", Value: 3.14159265358979323846264338327950288},   // circle circumference over diameter
		{Name: "c", Value: 299_792_458.0},                            // speed of light, m/s
		{Name: "e", Value: 2.71828182845904523536028747135266250},    // Euler's number
		{Name: "g", Value: 9.80665},                                  // standard gravity, m/s^2
		{Name: "h", Value: 6.62607015e-34},                           // Planck constant, J/Hz
		{Name: "phi", Value: 1.61803398874989484820},                 // golden ratio
		{Name: "G", Value: 6.6743015e-11},                            // Newtonian gravitational constant
	}
}
