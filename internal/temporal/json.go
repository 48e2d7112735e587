package temporal

import (
	"bytes"
	"encoding/json"
)

// wireValue is the JSON shape of a Value:
//
//	{"date": "YYYY-MM-DD"|null, "date_time": "YYYY-MM-DDTHH:MM[:SS]"|null, "time_zone": "<IANA>"|null}
type wireValue struct {
	Date     *string `json:"date"`
	DateTime *string `json:"date_time"`
	TimeZone *string `json:"time_zone"`
}

// MarshalJSON implements json.Marshaler. The zero Value marshals as all nulls.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return json.Marshal(wireValue{})
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var w wireValue
	if v.AllDayDate != nil {
		s := v.AllDayDate.String()
		w.Date = &s
	} else {
		s := v.Instant.String()
		zone := v.Zone
		w.DateTime = &s
		w.TimeZone = &zone
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. JSON null and an all-null object
// decode to the zero Value; anything structurally invalid is an error.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Value{}
		return nil
	}

	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return newValidationError(FieldValue, err.Error())
	}
	parsed, err := w.toValue()
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (w wireValue) toValue() (Value, error) {
	date, dateTime, zone := deref(w.Date), deref(w.DateTime), deref(w.TimeZone)

	switch {
	case date == "" && dateTime == "" && zone == "":
		return Value{}, nil
	case date != "" && dateTime != "":
		return Value{}, newValidationError(FieldValue, ReasonBothSet)
	case date != "":
		if zone != "" {
			return Value{}, newValidationError(FieldZone, ReasonZoneOnAllDay)
		}
		d, err := ParseDate(date)
		if err != nil {
			return Value{}, err
		}
		return AllDay(d), nil
	case dateTime != "":
		if zone == "" {
			return Value{}, newValidationError(FieldZone, ReasonMissingZone)
		}
		inst, err := ParseDateTime(dateTime)
		if err != nil {
			return Value{}, err
		}
		return Timed(inst.Date, inst.Time, zone), nil
	}
	return Value{}, newValidationError(FieldValue, ReasonNeitherSet)
}

// DecodeLenient decodes a wire value and reports ok=false instead of failing
// when the payload is absent or malformed.
func DecodeLenient(data []byte) (Value, bool) {
	var v Value
	if len(bytes.TrimSpace(data)) == 0 || v.UnmarshalJSON(data) != nil || v.IsZero() {
		return Value{}, false
	}
	return v, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
