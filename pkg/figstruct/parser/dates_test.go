package parser

import (
	"errors"
	"testing"
	"time"
)

type fixedEpoch struct{ t time.Time }

func (c fixedEpoch) Epoch() time.Time { return c.t }

type period struct {
	fixedEpoch
	freq string
}

func (p period) Freq() string { return p.freq }

func TestDateDomain(t *testing.T) {
	dom, err := DateDomain(fixedEpoch{DefaultEpoch}, [2]float64{0, 31.5})
	if err != nil {
		t.Fatalf("DateDomain failed: %v", err)
	}
	want := [2]DateTuple{
		{Year: 1970, Month0: 0, Day: 1},
		{Year: 1970, Month0: 1, Day: 1, Hour: 12},
	}
	if dom != want {
		t.Errorf("Expected %+v, got %+v", want, dom)
	}
	if got := dom[1].String(); got != "1970-02-01 12:00:00" {
		t.Errorf("Unexpected date string %q", got)
	}
}

func TestDateDomainEpoch(t *testing.T) {
	epoch := time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC)
	dom, err := DateDomain(fixedEpoch{epoch}, [2]float64{1, 1 + 1.5/86400})
	if err != nil {
		t.Fatalf("DateDomain failed: %v", err)
	}
	if dom[0].Year != 2000 || dom[0].Month0 != 2 || dom[0].Day != 2 {
		t.Errorf("Unexpected start %+v", dom[0])
	}
	if dom[1].Second != 1 || dom[1].Millisecond != 500 {
		t.Errorf("Unexpected end %+v", dom[1])
	}
}

func TestDateDomainPeriod(t *testing.T) {
	dom, err := DateDomain(period{freq: "M"}, [2]float64{0, 13})
	if err != nil {
		t.Fatalf("DateDomain failed: %v", err)
	}
	if dom[1].Year != 1971 || dom[1].Month0 != 1 || dom[1].Millisecond != 0 {
		t.Errorf("Unexpected period end %+v", dom[1])
	}

	if _, err := DateDomain(period{freq: "W-SUN"}, [2]float64{0, 1}); !errors.Is(err, ErrUnsupportedScale) {
		t.Errorf("Expected ErrUnsupportedScale, got %v", err)
	}
}

func TestDateStrings(t *testing.T) {
	got := DateStrings(nil, []float64{0, 1})
	if got[0] != "1970-01-01 00:00:00" || got[1] != "1970-01-02 00:00:00" {
		t.Errorf("Unexpected date strings %v", got)
	}
}

func TestNumToTime(t *testing.T) {
	oldEpoch := time.Date(0, time.December, 31, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		conv  fixedEpoch
		value float64
		want  time.Time
	}{
		{"far from epoch", fixedEpoch{DefaultEpoch}, 120000, time.Date(2298, time.July, 20, 0, 0, 0, 0, time.UTC)},
		{"before epoch", fixedEpoch{DefaultEpoch}, -0.25, time.Date(1969, time.December, 31, 18, 0, 0, 0, time.UTC)},
		{"year zero epoch", fixedEpoch{oldEpoch}, 737791, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"year zero epoch fraction", fixedEpoch{oldEpoch}, 737791.25, time.Date(2021, time.January, 1, 6, 0, 0, 0, time.UTC)},
		{"year one epoch", fixedEpoch{time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)}, 737791, time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumToTime(tt.conv, tt.value); !got.Equal(tt.want) {
				t.Errorf("NumToTime(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestPeriodToTime(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		freq    string
		ordinal int
		want    time.Time
	}{
		{"D", 3, day(1970, time.January, 4)},
		{"B", 0, day(1970, time.January, 1)},
		{"B", 1, day(1970, time.January, 2)},
		{"B", 2, day(1970, time.January, 5)},
		{"B", 3, day(1970, time.January, 6)},
		{"B", 5, day(1970, time.January, 8)},
		{"B", -1, day(1969, time.December, 31)},
		{"B", -4, day(1969, time.December, 26)},
		{"H", -1, time.Date(1969, time.December, 31, 23, 0, 0, 0, time.UTC)},
		{"H", 3504000, day(2369, time.September, 26)},
		{"T", 90, time.Date(1970, time.January, 1, 1, 30, 0, 0, time.UTC)},
		{"Q", 5, day(1971, time.April, 1)},
		{"A", 30, day(2000, time.January, 1)},
		{"Y", -1, day(1969, time.January, 1)},
	}
	for _, tt := range tests {
		got, err := PeriodToTime(tt.freq, tt.ordinal)
		if err != nil {
			t.Errorf("PeriodToTime(%q, %d) failed: %v", tt.freq, tt.ordinal, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("PeriodToTime(%q, %d) = %v, want %v", tt.freq, tt.ordinal, got, tt.want)
		}
		if tt.freq == "B" && (got.Weekday() == time.Saturday || got.Weekday() == time.Sunday) {
			t.Errorf("PeriodToTime(%q, %d) fell on %v", tt.freq, tt.ordinal, got.Weekday())
		}
	}
}
