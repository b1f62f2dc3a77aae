package booking

import (
	"reflect"
	"testing"
	"time"

	"stayhaven/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(DayFormat, value, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

func TestExtendBookingsIndexMarksInclusiveRange(t *testing.T) {
	got := ExtendBookingsIndex(models.BookingsIndex{}, day(t, "2021-01-01"), day(t, "2021-01-03"))

	want := models.BookingsIndex{
		"2021": {"0": {"1": true, "2": true, "3": true}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtendBookingsIndexSingleDay(t *testing.T) {
	got := ExtendBookingsIndex(nil, day(t, "2021-06-15"), day(t, "2021-06-15"))

	if !got["2021"]["5"]["15"] {
		t.Fatalf("expected 2021-06-15 marked, got %v", got)
	}
	if len(got["2021"]["5"]) != 1 {
		t.Fatalf("expected exactly one day marked, got %v", got["2021"]["5"])
	}
}

func TestExtendBookingsIndexYearRollover(t *testing.T) {
	got := ExtendBookingsIndex(models.BookingsIndex{}, day(t, "2020-12-30"), day(t, "2021-01-02"))

	want := models.BookingsIndex{
		"2020": {"11": {"30": true, "31": true}},
		"2021": {"0": {"1": true, "2": true}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtendBookingsIndexUnionKeepsExistingDays(t *testing.T) {
	existing := models.BookingsIndex{
		"2021": {"0": {"1": true, "20": true}},
	}

	got := ExtendBookingsIndex(existing, day(t, "2021-01-01"), day(t, "2021-01-02"))

	want := models.BookingsIndex{
		"2021": {"0": {"1": true, "2": true, "20": true}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtendBookingsIndexDoesNotMutateInput(t *testing.T) {
	input := models.BookingsIndex{
		"2021": {"0": {"1": true}},
		"2022": {"3": {"10": true}},
	}

	ExtendBookingsIndex(input, day(t, "2021-01-02"), day(t, "2021-01-05"))

	want := models.BookingsIndex{
		"2021": {"0": {"1": true}},
		"2022": {"3": {"10": true}},
	}
	if !reflect.DeepEqual(input, want) {
		t.Fatalf("input mutated: got %v, want %v", input, want)
	}
}

func TestExtendBookingsIndexInvertedRangeMarksNothing(t *testing.T) {
	input := models.BookingsIndex{
		"2021": {"0": {"1": true}},
	}

	got := ExtendBookingsIndex(input, day(t, "2021-02-10"), day(t, "2021-02-01"))

	if !reflect.DeepEqual(got, input) {
		t.Fatalf("expected unchanged copy, got %v", got)
	}
}
