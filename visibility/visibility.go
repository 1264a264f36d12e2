// Package visibility evaluates the caller-supplied capability flags that
// decide which optional sections are present in a Create stream.
//
// Flags are not wire data. The sender builds one Create stream per receiver
// and omits the sections that receiver may not see, so a hidden section costs
// no bits at all. Update streams never consult visibility.
package visibility

import (
	"fmt"
	"strings"

	"github.com/arloliu/ufwire/errs"
)

// Flags is a set of viewer capabilities.
type Flags uint16

const (
	None        Flags = 0
	Owner       Flags = 1 << 0
	PartyMember Flags = 1 << 1
	UnitAll     Flags = 1 << 2
	Empath      Flags = 1 << 3
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Owner, "owner"},
	{PartyMember, "partymember"},
	{UnitAll, "unitall"},
	{Empath, "empath"},
}

// Has reports whether every capability in want is present.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// HasAny reports whether at least one capability in want is present.
func (f Flags) HasAny(want Flags) bool {
	return f&want != 0
}

// String renders the set as "owner|empath", or "none".
func (f Flags) String() string {
	if f == None {
		return "none"
	}

	parts := make([]string, 0, len(flagNames))
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}

	return strings.Join(parts, "|")
}

// ParseFlags parses a "|" or "," separated list of capability names.
// Names are case-insensitive; "none" and the empty string yield None.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" || name == "none" {
			continue
		}

		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				f |= fn.flag
				found = true

				break
			}
		}
		if !found {
			return None, fmt.Errorf("%w: %q", errs.ErrInvalidFlagName, part)
		}
	}

	return f, nil
}

// Combinator selects how a rule's required capabilities combine.
type Combinator uint8

const (
	// Any admits a viewer holding at least one required capability.
	Any Combinator = iota
	// All admits a viewer holding every required capability.
	All
)

func (c Combinator) String() string {
	if c == All {
		return "all"
	}

	return "any"
}

// Rule gates one optional Create section. The zero Rule admits everyone.
type Rule struct {
	Required   Flags
	Combinator Combinator
}

// AnyOf returns a rule satisfied by any of the given capabilities.
func AnyOf(flags ...Flags) Rule {
	return Rule{Required: union(flags), Combinator: Any}
}

// AllOf returns a rule satisfied only when all given capabilities are held.
func AllOf(flags ...Flags) Rule {
	return Rule{Required: union(flags), Combinator: All}
}

// Always reports whether the rule admits every viewer.
func (r Rule) Always() bool {
	return r.Required == None
}

func (r Rule) String() string {
	if r.Always() {
		return "always"
	}

	return r.Combinator.String() + "(" + r.Required.String() + ")"
}

// Visible reports whether a viewer holding flags receives the section
// gated by rule.
func Visible(flags Flags, rule Rule) bool {
	if rule.Required == None {
		return true
	}
	if rule.Combinator == All {
		return flags.Has(rule.Required)
	}

	return flags.HasAny(rule.Required)
}

func union(flags []Flags) Flags {
	var f Flags
	for _, x := range flags {
		f |= x
	}

	return f
}
