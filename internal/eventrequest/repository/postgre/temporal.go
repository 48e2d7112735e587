package postgre

import (
	"database/sql"
	"time"

	"event-approval/internal/temporal"
)

const wallClockLayout = "2006-01-02 15:04:05"

// temporalArgs maps a value onto its (date, date_time, time_zone) columns.
// date_time is a wall clock without zone; the zone column anchors it.
func temporalArgs(v temporal.Value) (date, dateTime, zone any) {
	switch {
	case v.AllDayDate != nil:
		return v.AllDayDate.String(), nil, nil
	case v.Instant != nil:
		return nil, v.Instant.In(time.UTC).Format(wallClockLayout), v.Zone
	}
	return nil, nil, nil
}

func temporalFromColumns(date, dateTime sql.NullTime, zone sql.NullString) temporal.Value {
	switch {
	case date.Valid:
		return temporal.AllDay(temporal.DateOf(date.Time))
	case dateTime.Valid:
		return temporal.Timed(temporal.DateOf(dateTime.Time), temporal.TimeOf(dateTime.Time), zone.String)
	}
	return temporal.Value{}
}
