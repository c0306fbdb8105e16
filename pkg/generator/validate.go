package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/go-playground/validator/v10"
)

var hhmmRE = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// newValidator wires the schedule-specific rules onto a validator instance.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRE.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		day := fl.Field().String()
		for _, d := range timetable.Weekdays {
			if strings.EqualFold(day, d) {
				return true
			}
		}
		return false
	})

	return v
}

var entryValidator = newValidator()

// ValidateEntry checks a parsed entry before it is published: well-formed
// zero-padded times, a teaching-week day name, start before end, and a
// duration consistent with the window.
func ValidateEntry(e *timetable.ScheduleEntry) error {
	if err := entryValidator.Struct(e); err != nil {
		return err
	}

	start, err := minutesOf(e.TimeSlot.StartTime)
	if err != nil {
		return err
	}
	end, err := minutesOf(e.TimeSlot.EndTime)
	if err != nil {
		return err
	}

	if start >= end {
		return fmt.Errorf("start time %s is not before end time %s", e.TimeSlot.StartTime, e.TimeSlot.EndTime)
	}
	if e.TimeSlot.DurationMinutes != end-start {
		return fmt.Errorf("duration %d does not match window %s-%s (%d minutes)",
			e.TimeSlot.DurationMinutes, e.TimeSlot.StartTime, e.TimeSlot.EndTime, end-start)
	}

	return nil
}

// FilterValid drops entries that fail validation, returning the survivors
// and the rejects for logging.
func FilterValid(entries map[string][]*timetable.ScheduleEntry) (valid map[string][]*timetable.ScheduleEntry, rejected []*timetable.ScheduleEntry) {
	valid = make(map[string][]*timetable.ScheduleEntry, len(entries))
	for g, list := range entries {
		for _, e := range list {
			if err := ValidateEntry(e); err != nil {
				rejected = append(rejected, e)
				continue
			}
			valid[g] = append(valid[g], e)
		}
	}
	return valid, rejected
}
