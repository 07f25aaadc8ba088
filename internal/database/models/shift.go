package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// timeOfDayFormats accepted for shift start/end times
var timeOfDayFormats = []string{"15:04:05", "15:04"}

// Shift represents a named working shift with a time-of-day interval.
// Duration wraps to the next day when the end time is before the start time
// (overnight shifts).
type Shift struct {
	BaseModel
	ShiftName       string `json:"shift_name" gorm:"size:140;not null;uniqueIndex" validate:"required,min=1,max=140"`
	StartTime       string `json:"start_time" gorm:"size:8;not null" validate:"required"`
	EndTime         string `json:"end_time" gorm:"size:8;not null" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" gorm:"not null;default:0"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// BeforeSave recomputes the derived duration from the time-of-day interval
func (s *Shift) BeforeSave(tx *gorm.DB) error {
	minutes, err := ShiftDuration(s.StartTime, s.EndTime)
	if err != nil {
		return err
	}
	s.DurationMinutes = minutes
	return nil
}

// ShiftDuration computes minutes between two time-of-day values, wrapping to
// the next day when end < start.
func ShiftDuration(startTime, endTime string) (int, error) {
	start, err := parseTimeOfDay(startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := parseTimeOfDay(endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return int(end.Sub(start).Minutes()), nil
}

// ShiftMinuteOfDay returns the minute offset from midnight for a time-of-day
// string. Used for overlap checks between assigned shifts.
func ShiftMinuteOfDay(value string) (int, error) {
	t, err := parseTimeOfDay(value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func parseTimeOfDay(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeOfDayFormats {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
