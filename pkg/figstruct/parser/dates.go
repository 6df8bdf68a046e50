package parser

import (
	"fmt"
	"math"
	"time"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// DefaultEpoch is the date of axis value 0 for converters without an epoch.
var DefaultEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateTuple is a calendar date with a zero-based month.
type DateTuple struct {
	Year        int
	Month0      int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond float64
}

// TupleOf splits t into a date tuple.
func TupleOf(t time.Time) DateTuple {
	return DateTuple{
		Year:        t.Year(),
		Month0:      int(t.Month()) - 1,
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: float64(t.Nanosecond()/1000) / 1000,
	}
}

// String formats the tuple as a date string.
func (d DateTuple) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", d.Year, d.Month0+1, d.Day, d.Hour, d.Minute, d.Second)
	if us := int(math.Round(d.Millisecond * 1000)); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

// NumToTime converts an axis value in days since the converter epoch,
// or since DefaultEpoch when conv is nil. Whole days go through the
// calendar so values centuries away from the epoch stay exact.
func NumToTime(conv scene.DateConverter, v float64) time.Time {
	epoch := DefaultEpoch
	if conv != nil {
		epoch = conv.Epoch()
	}
	days := math.Floor(v)
	us := math.Round((v - days) * 24 * 60 * 60 * 1e6)
	return epoch.AddDate(0, 0, int(days)).Add(time.Duration(us) * time.Microsecond).UTC()
}

// firstMonday is the Monday of the week holding DefaultEpoch, a Thursday.
var firstMonday = DefaultEpoch.AddDate(0, 0, -3)

// floorDivMod divides rounding toward negative infinity.
func floorDivMod(n, d int) (q, r int) {
	q, r = n/d, n%d
	if r < 0 {
		q--
		r += d
	}
	return q, r
}

// addSubDay adds n units of unit, which must divide a day evenly.
func addSubDay(n int, unit time.Duration) time.Time {
	days, rest := floorDivMod(n, int(24*time.Hour/unit))
	return DefaultEpoch.AddDate(0, 0, days).Add(time.Duration(rest) * unit)
}

// PeriodToTime returns the start of the period with the given ordinal.
// Ordinals count periods of freq since 1970-01-01. Business day ordinals
// skip weekends, with ordinal 0 on Thursday 1970-01-01.
func PeriodToTime(freq string, ordinal int) (time.Time, error) {
	switch freq {
	case "D":
		return DefaultEpoch.AddDate(0, 0, ordinal), nil
	case "B":
		weeks, weekday := floorDivMod(ordinal+3, 5)
		return firstMonday.AddDate(0, 0, 7*weeks+weekday), nil
	case "H", "h":
		return addSubDay(ordinal, time.Hour), nil
	case "T", "min":
		return addSubDay(ordinal, time.Minute), nil
	case "S", "s":
		return addSubDay(ordinal, time.Second), nil
	case "M":
		return DefaultEpoch.AddDate(0, ordinal, 0), nil
	case "Q":
		return DefaultEpoch.AddDate(0, 3*ordinal, 0), nil
	case "A", "Y":
		return DefaultEpoch.AddDate(ordinal, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("%w: period frequency %q", ErrUnsupportedScale, freq)
}

// DateDomain converts axis limits into date tuples. Period converters use
// whole period ordinals and carry no milliseconds.
func DateDomain(conv scene.DateConverter, lim [2]float64) ([2]DateTuple, error) {
	var out [2]DateTuple
	if pc, ok := conv.(scene.PeriodConverter); ok {
		for i, v := range lim {
			t, err := PeriodToTime(pc.Freq(), int(v))
			if err != nil {
				return out, err
			}
			out[i] = TupleOf(t)
			out[i].Millisecond = 0
		}
		return out, nil
	}
	for i, v := range lim {
		out[i] = TupleOf(NumToTime(conv, v))
	}
	return out, nil
}

// DateStrings converts axis values into date strings.
func DateStrings(conv scene.DateConverter, values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = TupleOf(NumToTime(conv, v)).String()
	}
	return out
}
