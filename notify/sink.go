// Package notify defines the observer interface the decoder calls for
// semantically significant field transitions.
//
// Callbacks run synchronously in field order, right after the new value is
// stored in the entity. They are observational only: nothing a sink does can
// change what is decoded. Wrap untrusted sinks with Safe so a panicking
// callback cannot abort a decode.
//
// Some producers report a placeholder instead of the real previous value.
// Create paths always pass 0 as the old value. Update paths pass 0 for
// UnitDisplayID and ContainerSlot. Treat the old argument of those two
// categories as unreliable.
package notify

// Sink receives change notifications. Embed Base to implement only the
// categories of interest.
type Sink interface {
	ObjectDynamicFlags(old, new uint32)
	UnitHealth(old, new int64)
	UnitLevel(old, new int32)
	// UnitDisplayID fires for the unit display, display scale and mount
	// display fields. The old value is always 0.
	UnitDisplayID(old, new int32)
	UnitFlags(old, new uint32)
	UnitPower(old, new int32, index int)
	// ContainerSlot reports the low half of the GUID stored in a bag slot.
	// The old value is always 0.
	ContainerSlot(old, new uint64, index int)
	QuestLogID(old, new int32, index int)
	QuestLogProgress(old, new uint16, index, objective int)
	SkillLineID(old, new uint16, index int)
}

// Base implements Sink with no-op methods.
type Base struct{}

var _ Sink = Base{}

func (Base) ObjectDynamicFlags(_, _ uint32)         {}
func (Base) UnitHealth(_, _ int64)                  {}
func (Base) UnitLevel(_, _ int32)                   {}
func (Base) UnitDisplayID(_, _ int32)               {}
func (Base) UnitFlags(_, _ uint32)                  {}
func (Base) UnitPower(_, _ int32, _ int)            {}
func (Base) ContainerSlot(_, _ uint64, _ int)       {}
func (Base) QuestLogID(_, _ int32, _ int)           {}
func (Base) QuestLogProgress(_, _ uint16, _, _ int) {}
func (Base) SkillLineID(_, _ uint16, _ int)         {}

// Nop returns a sink that discards every notification.
func Nop() Sink {
	return Base{}
}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop()
	}

	return s
}
