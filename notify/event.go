package notify

import (
	"fmt"
	"sync"
)

// Kind names a notification category.
type Kind uint8

const (
	KindObjectDynamicFlags Kind = iota + 1
	KindUnitHealth
	KindUnitLevel
	KindUnitDisplayID
	KindUnitFlags
	KindUnitPower
	KindContainerSlot
	KindQuestLogID
	KindQuestLogProgress
	KindSkillLineID
)

var kindNames = map[Kind]string{
	KindObjectDynamicFlags: "ObjectDynamicFlags",
	KindUnitHealth:         "UnitHealth",
	KindUnitLevel:          "UnitLevel",
	KindUnitDisplayID:      "UnitDisplayID",
	KindUnitFlags:          "UnitFlags",
	KindUnitPower:          "UnitPower",
	KindContainerSlot:      "ContainerSlot",
	KindQuestLogID:         "QuestLogID",
	KindQuestLogProgress:   "QuestLogProgress",
	KindSkillLineID:        "SkillLineID",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// OldUnreliable reports whether producers of this category pass a
// placeholder instead of the previous value on the update path.
func (k Kind) OldUnreliable() bool {
	return k == KindUnitDisplayID || k == KindContainerSlot
}

// Event is one recorded notification. Old and New hold the values widened
// to int64; ContainerSlot values keep their uint64 bit pattern. Index and
// Sub are -1 when the category has no index or sub-index.
type Event struct {
	Kind          Kind
	Old           int64
	New           int64
	Index         int
	Sub           int
	OldUnreliable bool
}

func (e Event) String() string {
	s := fmt.Sprintf("%s %d -> %d", e.Kind, e.Old, e.New)
	if e.Index >= 0 {
		s += fmt.Sprintf(" [%d]", e.Index)
	}
	if e.Sub >= 0 {
		s += fmt.Sprintf("[%d]", e.Sub)
	}

	return s
}

// Recorder is a Sink that stores every notification in call order.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ Sink = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = r.events[:0]
	r.mu.Unlock()
}

func (r *Recorder) add(kind Kind, old, new int64, index, sub int) {
	r.mu.Lock()
	r.events = append(r.events, Event{
		Kind:          kind,
		Old:           old,
		New:           new,
		Index:         index,
		Sub:           sub,
		OldUnreliable: kind.OldUnreliable(),
	})
	r.mu.Unlock()
}

func (r *Recorder) ObjectDynamicFlags(old, new uint32) {
	r.add(KindObjectDynamicFlags, int64(old), int64(new), -1, -1)
}

func (r *Recorder) UnitHealth(old, new int64) {
	r.add(KindUnitHealth, old, new, -1, -1)
}

func (r *Recorder) UnitLevel(old, new int32) {
	r.add(KindUnitLevel, int64(old), int64(new), -1, -1)
}

func (r *Recorder) UnitDisplayID(old, new int32) {
	r.add(KindUnitDisplayID, int64(old), int64(new), -1, -1)
}

func (r *Recorder) UnitFlags(old, new uint32) {
	r.add(KindUnitFlags, int64(old), int64(new), -1, -1)
}

func (r *Recorder) UnitPower(old, new int32, index int) {
	r.add(KindUnitPower, int64(old), int64(new), index, -1)
}

func (r *Recorder) ContainerSlot(old, new uint64, index int) {
	r.add(KindContainerSlot, int64(old), int64(new), index, -1) //nolint: gosec
}

func (r *Recorder) QuestLogID(old, new int32, index int) {
	r.add(KindQuestLogID, int64(old), int64(new), index, -1)
}

func (r *Recorder) QuestLogProgress(old, new uint16, index, objective int) {
	r.add(KindQuestLogProgress, int64(old), int64(new), index, objective)
}

func (r *Recorder) SkillLineID(old, new uint16, index int) {
	r.add(KindSkillLineID, int64(old), int64(new), index, -1)
}
