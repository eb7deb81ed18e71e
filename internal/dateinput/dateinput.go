// Package dateinput turns the text typed into the date entry surface into
// machine inputs.
package dateinput

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
)

// MsgMalformed is carried by the error input produced for malformed entries.
const MsgMalformed = "Invalid date format, expected yyyy-mm-dd."

var literal = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Parse accepts exactly yyyy-mm-dd and returns local midnight of that day in
// loc. Out-of-range days and months roll over the way time.Date normalizes
// them (2025-02-30 is March 2nd).
func Parse(text string, loc *time.Location) (time.Time, error) {
	match := literal.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, fmt.Errorf("date %q does not match yyyy-mm-dd", text)
	}
	if loc == nil {
		loc = time.Local
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// ToInput builds the input emitted by the date entry surface: dateSelected on
// success, error with MsgMalformed otherwise.
func ToInput(text string, loc *time.Location) domain.Input {
	date, err := Parse(text, loc)
	if err != nil {
		return domain.ErrorInput(MsgMalformed)
	}
	return domain.DateSelected(date)
}
