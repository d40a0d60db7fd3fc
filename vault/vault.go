// Package vault implements the storage-record boundary between the
// codec core and an external collection manager (spec.md §6's "vault
// collaborator"): a denormalized, display-ready view of a PK3 record.
// The vault itself — persistence, indexing, querying — is out of scope;
// this package is only the boundary struct and its pure builder.
package vault

import (
	"github.com/JohnDeved/pk3save/pk3"
	"github.com/JohnDeved/pk3save/substruct"
	"github.com/JohnDeved/pk3save/text"
)

// Record is a denormalized, UI-ready view of one PK3 record: the raw
// 80-byte blob for round-tripping, plus display fields decoded from it.
// Level is derived for display only and is never written back.
type Record struct {
	Raw         [pk3.Size]byte
	Personality uint32
	TID         uint16
	SID         uint16
	Species     uint16
	Nickname    string
	OTName      string
	Level       uint8
	Valid       bool
	Source      string // always "gen3": BuildRecord cannot tell a PCCS-converted record from a native one
}

// BuildRecord is a pure function from a parsed PK3 record to its vault
// view. It never decodes an invalid record's substructures: Species and
// Level are zero-valued when Valid is false, since an unverifiable
// payload cannot be trusted to decrypt to meaningful substructures.
// Nickname and OTName come from the unencrypted header and are decoded
// either way.
func BuildRecord(r pk3.Record) Record {
	tid, sid := substruct.OTID(r.OTID).Split()

	rec := Record{
		Personality: r.Personality,
		TID:         tid,
		SID:         sid,
		Nickname:    text.Gen3.Decode(r.Nickname[:]),
		OTName:      text.Gen3.Decode(r.OTName[:]),
		Valid:       pk3.Verify(r),
		Source:      "gen3",
	}
	copy(rec.Raw[:], r.Emit())

	if rec.Valid {
		chunks := pk3.DecryptedChunks(r)
		growth := substruct.ParseGrowth(chunks[0])
		rec.Species = growth.Species
		rec.Level = pk3.LevelFromExperience(growth.Experience)
	}
	return rec
}
