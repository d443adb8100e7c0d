package usecase

import (
	"strings"

	"gearcast-service/internal/domain/entity"
)

// Config carries the reconciliation policy for one engine instance. It is
// passed in at construction so tests can vary every knob; there are no
// package-level globals.
type Config struct {
	// WindowDays is the forward forecast window (today .. today+WindowDays)
	WindowDays int

	// TrackableClasses is the allow-list of equipment classes eligible for
	// forecasting
	TrackableClasses []string

	// ClassAliases rewrites raw grid class labels before the trackable check
	ClassAliases map[string]string

	// ReservedKeywords mark administrative placeholder cells that are never
	// real bookings (case-insensitive substring match)
	ReservedKeywords []string

	// ValidTodayTags is the whitelist of today-cell tags that make a resource
	// eligible for forward scanning
	ValidTodayTags []entity.StatusTag

	// ColorTags maps background hex colors to status tags
	ColorTags map[string]entity.StatusTag

	// RegistryClasses lists the equipment classes that have a status registry
	RegistryClasses []string

	// HomeLocation is the marker value identifying rows tracked at this hub
	HomeLocation string

	// HomeCode is the two-letter hub code used in gear transfer routings
	HomeCode string

	// WeekendAdjust moves Sunday/Monday dates back to the preceding Saturday.
	// This is scheduling-culture policy, not calendar law, so it is a switch.
	WeekendAdjust bool
}

// DefaultConfig returns the production policy
func DefaultConfig() Config {
	return Config{
		WindowDays: 7,
		TrackableClasses: []string{
			"ARRI ALEXA 35 Camera Body",
			"ARRI ALEXA Mini Camera Body",
			"ARRI ALEXA Mini LF Camera Body",
			"ARRI ALEXA LF Camera Body",
			"SONY VENICE 1",
			"SONY VENICE 2",
			"Sony BURANO Digital Camera",
			"Sony FX3 Digital Camera",
			"Sony FX6 Digital Camera",
			"RED V-RAPTOR DSMC3 [X] 8K VV Digital Camera",
			"RED V-RAPTOR XL [X] 8K VV Digital Camera",
		},
		ClassAliases: map[string]string{
			"X = Global Shutter Sensor": "RED V-RAPTOR XL [X] 8K VV Digital Camera",
		},
		ReservedKeywords: []string{"reserve", "repair", "in progress", "rtr"},
		ValidTodayTags: []entity.StatusTag{
			entity.TagAvailable,
			entity.TagConfirmedJob,
			entity.TagPendingJob,
			entity.TagTurnaround,
			entity.TagConsignor,
			entity.TagDoNotReschedule,
			entity.TagInRepair,
		},
		ColorTags: entity.DefaultColorTags(),
		RegistryClasses: []string{
			"ARRI ALEXA 35 Camera Body",
			"ARRI ALEXA Mini Camera Body",
			"ARRI ALEXA Mini LF Camera Body",
			"SONY VENICE 1",
			"SONY VENICE 2",
			"Sony BURANO Digital Camera",
			"RED V-RAPTOR DSMC3 [X] 8K VV Digital Camera",
			"RED V-RAPTOR XL [X] 8K VV Digital Camera",
		},
		HomeLocation:  "LOS ANGELES",
		HomeCode:      "LA",
		WeekendAdjust: true,
	}
}

func (c Config) isTrackable(class string) bool {
	for _, t := range c.TrackableClasses {
		if t == class {
			return true
		}
	}
	return false
}

func (c Config) translateClass(class string) string {
	if alias, ok := c.ClassAliases[class]; ok {
		return alias
	}
	return class
}

func (c Config) validToday(tag entity.StatusTag) bool {
	for _, t := range c.ValidTodayTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (c Config) isReserved(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.ReservedKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// colorTag decodes a background color into a status tag. No background means
// a white cell; anything outside the configured palette is Other.
func (c Config) colorTag(color string) entity.StatusTag {
	if color == "" {
		color = "#ffffff"
	}
	if tag, ok := c.ColorTags[strings.ToLower(color)]; ok {
		return tag
	}
	return entity.TagOther
}
