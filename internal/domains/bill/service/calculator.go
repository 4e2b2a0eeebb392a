package service

import (
	"math"
	"time"

	"hotelhills/shared/constant"
)

const day = constant.HoursPerDay * time.Hour

// Charge is the priced outcome of a stay.
type Charge struct {
	Nights            int
	RoomCharge        float64
	AdditionalCharges float64
	Total             float64
}

// CountNights returns the elapsed days between check-in and check-out, counting any partial day as a night.
// A check-out before check-in yields zero or a negative count.
func CountNights(checkIn, checkOut time.Time) int {
	elapsed := checkOut.Sub(checkIn)

	nights := elapsed / day
	if elapsed%day > 0 {
		nights++
	}

	return int(nights)
}

// Calculate prices a stay at the nightly rate plus additional charges, rounded to cents.
func Calculate(checkIn, checkOut time.Time, rate, additional float64) Charge {
	nights := CountNights(checkIn, checkOut)
	roomCharge := roundCents(float64(nights) * rate)
	additional = roundCents(additional)

	return Charge{
		Nights:            nights,
		RoomCharge:        roomCharge,
		AdditionalCharges: additional,
		Total:             roundCents(roomCharge + additional),
	}
}

func roundCents(value float64) float64 {
	return math.Round(value*constant.CentsFactor) / constant.CentsFactor
}
