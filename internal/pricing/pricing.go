// Package pricing derives order totals for seat purchases. Pricing is
// flat per seat: every seat of a concert costs the concert's unit price.
package pricing

// Total returns the order total in cents for seatCount seats at the
// given per-seat price. seatCount must be the distinct, validated seat
// count, not the raw request size.
func Total(unitPriceCents int64, seatCount int) int64 {
	return unitPriceCents * int64(seatCount)
}
