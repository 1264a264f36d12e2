package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
)

// PVPInfo is one PVP bracket record.
type PVPInfo struct {
	binding

	Disqualified           bool
	Bracket                int8
	PvpRatingID            int32
	WeeklyPlayed           uint32
	WeeklyWon              uint32
	SeasonPlayed           uint32
	SeasonWon              uint32
	Rating                 uint32
	WeeklyBestRating       uint32
	SeasonBestRating       uint32
	PvpTierID              uint32
	WeeklyBestWinPvpTierID uint32
	Field28                uint32
	Field2C                uint32
	WeeklyRoundsPlayed     uint32
	WeeklyRoundsWon        uint32
	SeasonRoundsPlayed     uint32
	SeasonRoundsWon        uint32
}

func (d *PVPInfo) Type() format.ObjectType {
	return format.TypePVP
}

// ReadCreate reads the integer fields, then the Disqualified bit, then
// aligns.
func (d *PVPInfo) ReadCreate(r *bitstream.Reader, _ visibility.Flags, _ notify.Sink) error {
	d.Bracket = r.ReadInt8()
	d.PvpRatingID = r.ReadInt32()
	d.WeeklyPlayed = r.ReadUint32()
	d.WeeklyWon = r.ReadUint32()
	d.SeasonPlayed = r.ReadUint32()
	d.SeasonWon = r.ReadUint32()
	d.Rating = r.ReadUint32()
	d.WeeklyBestRating = r.ReadUint32()
	d.SeasonBestRating = r.ReadUint32()
	d.PvpTierID = r.ReadUint32()
	d.WeeklyBestWinPvpTierID = r.ReadUint32()
	d.Field28 = r.ReadUint32()
	d.Field2C = r.ReadUint32()
	d.WeeklyRoundsPlayed = r.ReadUint32()
	d.WeeklyRoundsWon = r.ReadUint32()
	d.SeasonRoundsPlayed = r.ReadUint32()
	d.SeasonRoundsWon = r.ReadUint32()
	d.Disqualified = r.ReadBit()
	r.AlignToByte()

	return r.Err()
}

// ReadUpdate reads the Disqualified bit, when changed, between the mask and
// the alignment.
func (d *PVPInfo) ReadUpdate(r *bitstream.Reader, _ notify.Sink) error {
	l := d.Schema().PVP

	m, err := readMask(r, l)
	if err != nil {
		return err
	}
	if l.Has(m, layout.PVPDisqualified) {
		d.Disqualified = r.ReadBit()
	}
	r.AlignToByte()

	if l.Has(m, layout.PVPBracket) {
		d.Bracket = r.ReadInt8()
	}
	if l.Has(m, layout.PVPRatingID) {
		d.PvpRatingID = r.ReadInt32()
	}
	if l.Has(m, layout.PVPWeeklyPlayed) {
		d.WeeklyPlayed = r.ReadUint32()
	}
	if l.Has(m, layout.PVPWeeklyWon) {
		d.WeeklyWon = r.ReadUint32()
	}
	if l.Has(m, layout.PVPSeasonPlayed) {
		d.SeasonPlayed = r.ReadUint32()
	}
	if l.Has(m, layout.PVPSeasonWon) {
		d.SeasonWon = r.ReadUint32()
	}
	if l.Has(m, layout.PVPRating) {
		d.Rating = r.ReadUint32()
	}
	if l.Has(m, layout.PVPWeeklyBestRating) {
		d.WeeklyBestRating = r.ReadUint32()
	}
	if l.Has(m, layout.PVPSeasonBestRating) {
		d.SeasonBestRating = r.ReadUint32()
	}
	if l.Has(m, layout.PVPTierID) {
		d.PvpTierID = r.ReadUint32()
	}
	if l.Has(m, layout.PVPWeeklyBestWinTierID) {
		d.WeeklyBestWinPvpTierID = r.ReadUint32()
	}
	if l.Has(m, layout.PVPField28) {
		d.Field28 = r.ReadUint32()
	}
	if l.Has(m, layout.PVPField2C) {
		d.Field2C = r.ReadUint32()
	}
	if l.Has(m, layout.PVPWeeklyRoundsPlayed) {
		d.WeeklyRoundsPlayed = r.ReadUint32()
	}
	if l.Has(m, layout.PVPWeeklyRoundsWon) {
		d.WeeklyRoundsWon = r.ReadUint32()
	}
	if l.Has(m, layout.PVPSeasonRoundsPlayed) {
		d.SeasonRoundsPlayed = r.ReadUint32()
	}
	if l.Has(m, layout.PVPSeasonRoundsWon) {
		d.SeasonRoundsWon = r.ReadUint32()
	}

	return r.Err()
}

func (d *PVPInfo) Clone() *PVPInfo {
	c := *d
	return &c
}

func (d *PVPInfo) Snapshot() Entity { return d.Clone() }

func (d *PVPInfo) Restore(src Entity) { *d = *mustSameType[PVPInfo](src) }
