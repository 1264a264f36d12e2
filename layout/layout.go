package layout

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/tracked"
	"github.com/arloliu/ufwire/visibility"
)

// Layout maps the fields of one entity kind to mask bits for one protocol
// version. It also carries the gated fixed arrays, the visibility rules of
// optional Create sections and the tracked-array declarations.
//
// A field's own bit is gated by the first bit of its 32-bit block: the
// guard of that block. Group elements are gated by the group's guard.
//
// Layouts are built with the setter methods and frozen when their schema is
// registered. Setters panic on a frozen layout.
type Layout struct {
	name    string
	spec    mask.Spec
	bits    [fieldCount]int16
	groups  map[Field]mask.Group
	rules   map[Field]visibility.Rule
	arrays  map[Field]tracked.Decl
	fields  []Field
	grouped []Field
	frozen  bool
}

// NewLayout creates an empty layout for the named kind.
func NewLayout(name string, spec mask.Spec) *Layout {
	l := &Layout{
		name:   name,
		spec:   spec,
		groups: make(map[Field]mask.Group),
		rules:  make(map[Field]visibility.Rule),
		arrays: make(map[Field]tracked.Decl),
	}
	for i := range l.bits {
		l.bits[i] = -1
	}

	return l
}

// Name returns the kind name.
func (l *Layout) Name() string {
	return l.name
}

// Mask returns the change-mask declaration.
func (l *Layout) Mask() mask.Spec {
	return l.spec
}

// Bit returns the mask bit of f, or -1 when f has no bit of its own.
func (l *Layout) Bit(f Field) int {
	return int(l.bits[f])
}

// Has reports whether f changed: its block guard and its own bit are set.
func (l *Layout) Has(m mask.Mask, f Field) bool {
	b := int(l.bits[f])
	if b < 0 {
		return false
	}

	return m.Test(b&^(mask.BlockBits-1)) && m.Test(b)
}

// Group returns the gated fixed array declared for f, or an empty group
// that never matches when none is declared.
func (l *Layout) Group(f Field) mask.Group {
	g, ok := l.groups[f]
	if !ok {
		return mask.Group{Guard: -1, First: -1}
	}

	return g
}

// Rule returns the visibility rule of the Create section holding f.
// Ungated fields get the zero Rule, which admits every viewer.
func (l *Layout) Rule(f Field) visibility.Rule {
	return l.rules[f]
}

// Visible reports whether f is present in a Create stream built for flags.
func (l *Layout) Visible(flags visibility.Flags, f Field) bool {
	return visibility.Visible(flags, l.rules[f])
}

// Array returns the tracked-array declaration of f.
func (l *Layout) Array(f Field) tracked.Decl {
	return l.arrays[f]
}

// Fields returns the fields with a bit of their own, in bit order.
func (l *Layout) Fields() []Field {
	return slices.Clone(l.fields)
}

// Set assigns bit to f.
func (l *Layout) Set(f Field, bit int) *Layout {
	l.mutable()
	if l.bits[f] < 0 {
		l.fields = append(l.fields, f)
	}
	l.bits[f] = int16(bit) //nolint: gosec
	slices.SortFunc(l.fields, func(a, b Field) int { return int(l.bits[a]) - int(l.bits[b]) })

	return l
}

// Seq assigns consecutive bits starting at first to fields.
func (l *Layout) Seq(first int, fields ...Field) *Layout {
	for i, f := range fields {
		l.Set(f, first+i)
	}

	return l
}

// SetGroup declares f as a gated fixed array.
func (l *Layout) SetGroup(f Field, g mask.Group) *Layout {
	l.mutable()
	if _, ok := l.groups[f]; !ok {
		l.grouped = append(l.grouped, f)
	}
	l.groups[f] = g

	return l
}

// SetRule gates fields behind rule in Create streams.
func (l *Layout) SetRule(rule visibility.Rule, fields ...Field) *Layout {
	l.mutable()
	for _, f := range fields {
		l.rules[f] = rule
	}

	return l
}

// SetArray declares f as a tracked array.
func (l *Layout) SetArray(f Field, decl tracked.Decl) *Layout {
	l.mutable()
	l.arrays[f] = decl

	return l
}

// Clone returns an unfrozen deep copy, used to derive a layout for a new
// protocol version.
func (l *Layout) Clone() *Layout {
	out := *l
	out.groups = maps.Clone(l.groups)
	out.rules = maps.Clone(l.rules)
	out.arrays = maps.Clone(l.arrays)
	out.fields = slices.Clone(l.fields)
	out.grouped = slices.Clone(l.grouped)
	out.frozen = false

	return &out
}

// Validate checks that every bit and group fits the mask, that no field
// sits on a block guard and that no two fields or group elements share a
// bit.
func (l *Layout) Validate() error {
	if err := l.spec.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrInvalidSchema, l.name, err)
	}

	owner := make(map[int]Field, len(l.fields))
	for _, f := range l.fields {
		b := int(l.bits[f])
		if b <= 0 || b >= l.spec.Bits || b%mask.BlockBits == 0 {
			return fmt.Errorf("%w: %s: %s at invalid bit %d of %d", errs.ErrInvalidSchema, l.name, f, b, l.spec.Bits)
		}
		if prev, dup := owner[b]; dup {
			return fmt.Errorf("%w: %s: %s and %s share bit %d", errs.ErrInvalidSchema, l.name, prev, f, b)
		}
		owner[b] = f
	}

	for _, f := range l.grouped {
		g := l.groups[f]
		if g.Guard < 0 || g.Count <= 0 || g.First <= g.Guard || g.End() > l.spec.Bits {
			return fmt.Errorf("%w: %s: group %s {%d %d %d} outside mask of %d bits",
				errs.ErrInvalidSchema, l.name, f, g.Guard, g.First, g.Count, l.spec.Bits)
		}
		if prev, dup := owner[g.Guard]; dup {
			return fmt.Errorf("%w: %s: group %s guard %d is taken by %s", errs.ErrInvalidSchema, l.name, f, g.Guard, prev)
		}
		for b := g.First; b < g.End(); b++ {
			if prev, dup := owner[b]; dup {
				return fmt.Errorf("%w: %s: %s and %s share bit %d", errs.ErrInvalidSchema, l.name, prev, f, b)
			}
			owner[b] = f
		}
	}

	return nil
}

func (l *Layout) freeze() {
	l.frozen = true
}

func (l *Layout) mutable() {
	if l.frozen {
		panic(fmt.Sprintf("layout: %s is registered and read-only", l.name))
	}
}
