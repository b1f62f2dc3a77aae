package booking

import "testing"

func TestTotalPrice(t *testing.T) {
	cases := []struct {
		name     string
		price    int64
		checkIn  string
		checkOut string
		want     int64
	}{
		{"same day bills one night", 100, "2021-05-01", "2021-05-01", 100},
		{"three night span bills four", 100, "2021-05-01", "2021-05-04", 400},
		{"month rollover", 250, "2021-01-30", "2021-02-02", 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TotalPrice(tc.price, day(t, tc.checkIn), day(t, tc.checkOut))
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}
