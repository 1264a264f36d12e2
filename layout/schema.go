// Package layout holds the versioned schema tables of the update-field
// protocol: the mask size and field-to-bit mapping of every entity kind,
// the gated arrays, the visibility rules of optional Create sections and
// the tracked-array capacities.
//
// Bit assignments change between protocol builds and several of them are
// reverse-engineered guesses. Decode code never hardcodes a bit; it asks the
// Schema it was given. Correcting a mapping means registering a new Schema,
// usually derived from an existing one with Schema.Clone.
package layout

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/internal/hash"
)

// Version identifies a protocol build.
type Version struct {
	Major int
	Minor int
	Patch int
	Build int
}

// ParseVersion parses "3.4.2" or "3.4.2.45166".
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 3 || len(parts) > 4 {
		return Version{}, fmt.Errorf("%w: %q", errs.ErrUnknownVersion, s)
	}

	nums := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", errs.ErrUnknownVersion, s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Build: nums[3]}, nil
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Build > 0 {
		s += "." + strconv.Itoa(v.Build)
	}

	return s
}

// Compare orders versions, returning -1, 0 or +1.
func (v Version) Compare(o Version) int {
	for _, d := range [...]int{v.Major - o.Major, v.Minor - o.Minor, v.Patch - o.Patch, v.Build - o.Build} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}

	return 0
}

// Schema is the complete table set for one protocol version.
type Schema struct {
	Version       Version
	Object        *Layout
	Item          *Layout
	Container     *Layout
	Unit          *Layout
	Player        *Layout
	Skill         *Layout
	PVP           *Layout
	GameObject    *Layout
	DynamicObject *Layout
	Corpse        *Layout

	// Provisional lists the fields whose mapping is not confirmed against
	// captured traffic.
	Provisional []Field

	fingerprint uint64
	frozen      bool
}

// Layouts returns every layout in a fixed order.
func (s *Schema) Layouts() []*Layout {
	return []*Layout{
		s.Object, s.Item, s.Container, s.Unit, s.Player,
		s.Skill, s.PVP, s.GameObject, s.DynamicObject, s.Corpse,
	}
}

// IsProvisional reports whether f's mapping is unconfirmed.
func (s *Schema) IsProvisional(f Field) bool {
	return slices.Contains(s.Provisional, f)
}

// Validate checks every layout of the schema.
func (s *Schema) Validate() error {
	for i, l := range s.Layouts() {
		if l == nil {
			return fmt.Errorf("%w: %s: layout %d missing", errs.ErrInvalidSchema, s.Version, i)
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.Version, err)
		}
	}

	return nil
}

// Clone returns an unregistered deep copy of s for version v.
func (s *Schema) Clone(v Version) *Schema {
	out := &Schema{Version: v, Provisional: slices.Clone(s.Provisional)}
	out.Object = s.Object.Clone()
	out.Item = s.Item.Clone()
	out.Container = s.Container.Clone()
	out.Unit = s.Unit.Clone()
	out.Player = s.Player.Clone()
	out.Skill = s.Skill.Clone()
	out.PVP = s.PVP.Clone()
	out.GameObject = s.GameObject.Clone()
	out.DynamicObject = s.DynamicObject.Clone()
	out.Corpse = s.Corpse.Clone()

	return out
}

// Fingerprint returns an xxHash64 over a canonical rendering of the
// tables. Two schemas decode identically iff their fingerprints match
// (barring collisions). The version itself is not part of the hash.
func (s *Schema) Fingerprint() uint64 {
	if s.frozen {
		return s.fingerprint
	}

	return s.computeFingerprint()
}

func (s *Schema) computeFingerprint() uint64 {
	d := hash.NewDigest()
	for _, l := range s.Layouts() {
		d.String(l.name).Int(l.spec.Bits).Int(int(l.spec.Form))
		for _, f := range l.fields {
			d.Int(int(f)).Int(int(l.bits[f]))
		}

		for _, f := range sortedKeys(l.groups) {
			g := l.groups[f]
			d.Int(int(f)).Int(g.Guard).Int(g.First).Int(g.Count)
		}
		for _, f := range sortedKeys(l.rules) {
			r := l.rules[f]
			d.Int(int(f)).Int(int(r.Required)).Int(int(r.Combinator))
		}
		for _, f := range sortedKeys(l.arrays) {
			a := l.arrays[f]
			d.Int(int(f)).Int(a.Max).Int(a.SizeBits)
		}
	}

	return d.Sum64()
}

func sortedKeys[V any](m map[Field]V) []Field {
	keys := make([]Field, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

var registry = struct {
	sync.RWMutex
	schemas map[Version]*Schema
}{schemas: make(map[Version]*Schema)}

// Register validates s, freezes it and makes it available to Lookup.
// Registering a version twice fails with ErrSchemaExists.
func Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("%w: nil schema", errs.ErrInvalidSchema)
	}
	if err := s.Validate(); err != nil {
		return err
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.schemas[s.Version]; ok {
		return fmt.Errorf("%w: %s", errs.ErrSchemaExists, s.Version)
	}

	for _, l := range s.Layouts() {
		l.freeze()
	}
	s.fingerprint = s.computeFingerprint()
	s.frozen = true
	registry.schemas[s.Version] = s

	return nil
}

// MustRegister is Register that panics on error.
func MustRegister(s *Schema) *Schema {
	if err := Register(s); err != nil {
		panic(err)
	}

	return s
}

// Lookup returns the registered schema for v.
func Lookup(v Version) (*Schema, error) {
	registry.RLock()
	defer registry.RUnlock()

	s, ok := registry.schemas[v]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownVersion, v)
	}

	return s, nil
}

// LookupFingerprint returns the registered schema with fingerprint fp.
func LookupFingerprint(fp uint64) (*Schema, error) {
	registry.RLock()
	defer registry.RUnlock()

	for _, s := range registry.schemas {
		if s.fingerprint == fp {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: fingerprint %016x", errs.ErrUnknownVersion, fp)
}

// Versions returns the registered versions in ascending order.
func Versions() []Version {
	registry.RLock()
	defer registry.RUnlock()

	out := make([]Version, 0, len(registry.schemas))
	for v := range registry.schemas {
		out = append(out, v)
	}
	slices.SortFunc(out, Version.Compare)

	return out
}

// Default returns the built-in schema.
func Default() *Schema {
	return v342
}
