package entity

// StatusTag is the administrative state of a booking cell, decoded from the
// cell's background color at the parsing boundary. Downstream logic only ever
// branches on the tag, never on a raw color value.
type StatusTag string

const (
	TagAvailable       StatusTag = "AVAILABLE"
	TagConfirmedJob    StatusTag = "CONFIRMED_JOB"
	TagPendingJob      StatusTag = "PENDING_JOB"
	TagTurnaround      StatusTag = "TURNAROUND_MULTI_DAY"
	TagConsignor       StatusTag = "CONSIGNOR"
	TagDoNotReschedule StatusTag = "DO_NOT_RESCHEDULE"
	TagGearTransfer    StatusTag = "GEAR_TRANSFER"
	TagInRepair        StatusTag = "IN_REPAIR"
	TagOther           StatusTag = "OTHER"
)

// DefaultColorTags maps the scheduling grid's background palette to tags.
// Unrecognized colors fall through to TagOther.
func DefaultColorTags() map[string]StatusTag {
	return map[string]StatusTag{
		"#ffffff": TagAvailable,
		"#66ff75": TagConfirmedJob,
		"#f9ff71": TagPendingJob,
		"#00ffff": TagTurnaround,
		"#4a86e8": TagConsignor,
		"#ff7171": TagDoNotReschedule,
		"#bdbdbd": TagGearTransfer,
		"#ff4444": TagInRepair,
	}
}

// ParseStatusTags converts configured tag names into typed tags, dropping
// anything unknown
func ParseStatusTags(names []string) []StatusTag {
	known := map[StatusTag]bool{
		TagAvailable:       true,
		TagConfirmedJob:    true,
		TagPendingJob:      true,
		TagTurnaround:      true,
		TagConsignor:       true,
		TagDoNotReschedule: true,
		TagGearTransfer:    true,
		TagInRepair:        true,
		TagOther:           true,
	}

	var tags []StatusTag
	for _, name := range names {
		tag := StatusTag(name)
		if known[tag] {
			tags = append(tags, tag)
		}
	}
	return tags
}
