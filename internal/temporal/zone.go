package temporal

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ZoneProvider reports the IANA zone new timed values are anchored to.
type ZoneProvider interface {
	Zone() string
}

// FixedZone always reports the same zone id.
type FixedZone string

func (z FixedZone) Zone() string { return string(z) }

// SystemZone reports the process-local zone. time.Local names "Local" when the
// TZ database could not identify the host zone; UTC is used then.
type SystemZone struct{}

func (SystemZone) Zone() string {
	name := time.Local.String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}

const defaultZoneCacheSize = 64

// ZoneRegistry resolves IANA ids to locations and caches them.
// It is safe for concurrent use.
type ZoneRegistry struct {
	cache    *lru.Cache[string, *time.Location]
	fallback string
}

// NewZoneRegistry creates a registry whose Zone() reports fallback. An empty
// fallback means SystemZone.
func NewZoneRegistry(fallback string) (*ZoneRegistry, error) {
	cache, err := lru.New[string, *time.Location](defaultZoneCacheSize)
	if err != nil {
		return nil, fmt.Errorf("temporal: zone cache: %w", err)
	}
	r := &ZoneRegistry{cache: cache}
	if fallback == "" {
		fallback = SystemZone{}.Zone()
	}
	if _, err := r.Location(fallback); err != nil {
		return nil, err
	}
	r.fallback = fallback
	return r, nil
}

// Zone implements ZoneProvider.
func (r *ZoneRegistry) Zone() string {
	return r.fallback
}

// Location loads the location for an IANA id.
func (r *ZoneRegistry) Location(id string) (*time.Location, error) {
	if loc, ok := r.cache.Get(id); ok {
		return loc, nil
	}
	if id == "" {
		return nil, newValidationError(FieldZone, ReasonMissingZone)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, newValidationError(FieldZone, ReasonUnknownZone)
	}
	r.cache.Add(id, loc)
	return loc, nil
}

// Valid reports whether id is a loadable IANA zone.
func (r *ZoneRegistry) Valid(id string) bool {
	_, err := r.Location(id)
	return err == nil
}

// Resolve returns the absolute time of a timed value. All-day values resolve to
// midnight UTC on their date.
func (r *ZoneRegistry) Resolve(v Value) (time.Time, error) {
	if err := v.Validate(); err != nil {
		return time.Time{}, err
	}
	if v.AllDayDate != nil {
		return v.AllDayDate.Time(), nil
	}
	loc, err := r.Location(v.Zone)
	if err != nil {
		return time.Time{}, err
	}
	return v.Instant.In(loc), nil
}

// CheckZone validates the zone of a timed value. All-day values always pass.
func (r *ZoneRegistry) CheckZone(v Value) error {
	if v.Instant == nil {
		return nil
	}
	_, err := r.Location(v.Zone)
	return err
}

// Today returns the current calendar date in the registry's zone.
func (r *ZoneRegistry) Today(now time.Time) CalendarDate {
	loc, err := r.Location(r.fallback)
	if err != nil {
		loc = time.UTC
	}
	return DateOf(now.In(loc))
}
