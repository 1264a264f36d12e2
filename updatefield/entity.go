// Package updatefield decodes the replicated entity kinds of the update-field
// protocol.
//
// Every top-level kind exposes the same pair of operations:
//
//   - ReadCreate decodes a full snapshot. Sections gated by a visibility
//     rule are read only when the caller's flags satisfy the rule, since
//     the sender omitted them otherwise.
//   - ReadUpdate decodes a delta: the change mask, any raw bits the layout
//     places next to it, the phase-1 masks of tracked arrays, an alignment,
//     then the payload of every changed field in layout order.
//
// Bit positions come from the kind's layout.Schema. A kind with no schema
// bound uses layout.Default.
//
// Decoding mutates the receiver in place and stops at the first error,
// possibly leaving the entity partially updated. Callers that need
// all-or-nothing semantics decode into a Snapshot and Restore on success,
// as ufwire.Decoder does.
package updatefield

import (
	"fmt"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
)

// Entity is a top-level replicated kind.
type Entity interface {
	// Type returns the object type tag used by capture records.
	Type() format.ObjectType
	// ReadCreate decodes a full snapshot visible to flags.
	ReadCreate(r *bitstream.Reader, flags visibility.Flags, sink notify.Sink) error
	// ReadUpdate decodes a delta.
	ReadUpdate(r *bitstream.Reader, sink notify.Sink) error
	// Schema returns the bound schema, or layout.Default when none is bound.
	Schema() *layout.Schema
	// SetSchema binds s. A nil s restores the default.
	SetSchema(s *layout.Schema)
	// Snapshot returns a deep copy.
	Snapshot() Entity
	// Restore overwrites the receiver with src, which must have the same
	// concrete type.
	Restore(src Entity)
}

// New returns an empty entity of type t.
func New(t format.ObjectType) (Entity, error) {
	switch t {
	case format.TypeObject:
		return &ObjectData{}, nil
	case format.TypeItem:
		return &ItemData{}, nil
	case format.TypeContainer:
		return &ContainerData{}, nil
	case format.TypeUnit:
		return &UnitData{}, nil
	case format.TypePlayer:
		return &PlayerData{}, nil
	case format.TypeSkill:
		return &SkillInfo{}, nil
	case format.TypePVP:
		return &PVPInfo{}, nil
	case format.TypeGameObject:
		return &GameObjectData{}, nil
	case format.TypeDynamicObject:
		return &DynamicObjectData{}, nil
	case format.TypeCorpse:
		return &CorpseData{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownKind, t)
	}
}

// binding holds the schema a kind decodes with. It is embedded by every
// top-level kind.
type binding struct {
	schema *layout.Schema
}

func (b *binding) Schema() *layout.Schema {
	if b.schema == nil {
		return layout.Default()
	}

	return b.schema
}

func (b *binding) SetSchema(s *layout.Schema) {
	b.schema = s
}

// readMask decodes the change mask declared by l.
func readMask(r *bitstream.Reader, l *layout.Layout) (mask.Mask, error) {
	return mask.Read(r, l.Mask())
}

// has reports whether bit and its guard are both set, for the fixed masks
// of nested records.
func has(m mask.Mask, guard, bit int) bool {
	return m.Test(guard) && m.Test(bit)
}

// notifying reports whether the last read succeeded, so a callback never
// sees a value that was not decoded.
func notifying(r *bitstream.Reader) bool {
	return r.Err() == nil
}

func mustSameType[T any](src Entity) *T {
	v, ok := any(src).(*T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("updatefield: restore %T from %T", &zero, src))
	}

	return v
}
