package notify

import (
	"github.com/rs/zerolog"
)

// PanicHandler receives the category and the recovered value of a
// panicking callback.
type PanicHandler func(kind Kind, recovered any)

// Safe wraps sink so a panic in any callback is recovered and handed to
// onPanic (which may be nil) instead of unwinding through the decoder.
func Safe(sink Sink, onPanic PanicHandler) Sink {
	return &safeSink{next: OrNop(sink), onPanic: onPanic}
}

type safeSink struct {
	next    Sink
	onPanic PanicHandler
}

func (s *safeSink) guard(kind Kind, fn func()) {
	defer func() {
		if rec := recover(); rec != nil && s.onPanic != nil {
			s.onPanic(kind, rec)
		}
	}()
	fn()
}

func (s *safeSink) ObjectDynamicFlags(old, new uint32) {
	s.guard(KindObjectDynamicFlags, func() { s.next.ObjectDynamicFlags(old, new) })
}

func (s *safeSink) UnitHealth(old, new int64) {
	s.guard(KindUnitHealth, func() { s.next.UnitHealth(old, new) })
}

func (s *safeSink) UnitLevel(old, new int32) {
	s.guard(KindUnitLevel, func() { s.next.UnitLevel(old, new) })
}

func (s *safeSink) UnitDisplayID(old, new int32) {
	s.guard(KindUnitDisplayID, func() { s.next.UnitDisplayID(old, new) })
}

func (s *safeSink) UnitFlags(old, new uint32) {
	s.guard(KindUnitFlags, func() { s.next.UnitFlags(old, new) })
}

func (s *safeSink) UnitPower(old, new int32, index int) {
	s.guard(KindUnitPower, func() { s.next.UnitPower(old, new, index) })
}

func (s *safeSink) ContainerSlot(old, new uint64, index int) {
	s.guard(KindContainerSlot, func() { s.next.ContainerSlot(old, new, index) })
}

func (s *safeSink) QuestLogID(old, new int32, index int) {
	s.guard(KindQuestLogID, func() { s.next.QuestLogID(old, new, index) })
}

func (s *safeSink) QuestLogProgress(old, new uint16, index, objective int) {
	s.guard(KindQuestLogProgress, func() { s.next.QuestLogProgress(old, new, index, objective) })
}

func (s *safeSink) SkillLineID(old, new uint16, index int) {
	s.guard(KindSkillLineID, func() { s.next.SkillLineID(old, new, index) })
}

// Tee fans every notification out to sinks in order. Nil sinks are skipped.
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

type tee []Sink

func (t tee) ObjectDynamicFlags(old, new uint32) {
	for _, s := range t {
		s.ObjectDynamicFlags(old, new)
	}
}

func (t tee) UnitHealth(old, new int64) {
	for _, s := range t {
		s.UnitHealth(old, new)
	}
}

func (t tee) UnitLevel(old, new int32) {
	for _, s := range t {
		s.UnitLevel(old, new)
	}
}

func (t tee) UnitDisplayID(old, new int32) {
	for _, s := range t {
		s.UnitDisplayID(old, new)
	}
}

func (t tee) UnitFlags(old, new uint32) {
	for _, s := range t {
		s.UnitFlags(old, new)
	}
}

func (t tee) UnitPower(old, new int32, index int) {
	for _, s := range t {
		s.UnitPower(old, new, index)
	}
}

func (t tee) ContainerSlot(old, new uint64, index int) {
	for _, s := range t {
		s.ContainerSlot(old, new, index)
	}
}

func (t tee) QuestLogID(old, new int32, index int) {
	for _, s := range t {
		s.QuestLogID(old, new, index)
	}
}

func (t tee) QuestLogProgress(old, new uint16, index, objective int) {
	for _, s := range t {
		s.QuestLogProgress(old, new, index, objective)
	}
}

func (t tee) SkillLineID(old, new uint16, index int) {
	for _, s := range t {
		s.SkillLineID(old, new, index)
	}
}

// NewLogSink returns a sink that logs every notification at debug level.
func NewLogSink(logger zerolog.Logger) Sink {
	return &logSink{logger: logger}
}

type logSink struct {
	logger zerolog.Logger
}

func (l *logSink) event(kind Kind) *zerolog.Event {
	return l.logger.Debug().Stringer("kind", kind)
}

func (l *logSink) ObjectDynamicFlags(old, new uint32) {
	l.event(KindObjectDynamicFlags).Uint32("old", old).Uint32("new", new).Msg("field changed")
}

func (l *logSink) UnitHealth(old, new int64) {
	l.event(KindUnitHealth).Int64("old", old).Int64("new", new).Msg("field changed")
}

func (l *logSink) UnitLevel(old, new int32) {
	l.event(KindUnitLevel).Int32("old", old).Int32("new", new).Msg("field changed")
}

func (l *logSink) UnitDisplayID(_, new int32) {
	l.event(KindUnitDisplayID).Int32("new", new).Msg("field changed")
}

func (l *logSink) UnitFlags(old, new uint32) {
	l.event(KindUnitFlags).Uint32("old", old).Uint32("new", new).Msg("field changed")
}

func (l *logSink) UnitPower(old, new int32, index int) {
	l.event(KindUnitPower).Int("index", index).Int32("old", old).Int32("new", new).Msg("field changed")
}

func (l *logSink) ContainerSlot(_, new uint64, index int) {
	l.event(KindContainerSlot).Int("index", index).Uint64("new", new).Msg("field changed")
}

func (l *logSink) QuestLogID(old, new int32, index int) {
	l.event(KindQuestLogID).Int("index", index).Int32("old", old).Int32("new", new).Msg("field changed")
}

func (l *logSink) QuestLogProgress(old, new uint16, index, objective int) {
	l.event(KindQuestLogProgress).Int("index", index).Int("objective", objective).
		Uint16("old", old).Uint16("new", new).Msg("field changed")
}

func (l *logSink) SkillLineID(old, new uint16, index int) {
	l.event(KindSkillLineID).Int("index", index).Uint16("old", old).Uint16("new", new).Msg("field changed")
}
