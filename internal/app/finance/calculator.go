package finance

import "math"

// Fee percentages applied to customer payments. The mentor fee comes off the
// raw total; the remainder is then split between the mitra commission and the
// agency's net profit. Each step rounds independently, so the three parts can
// drift from the total by at most one rupiah per split step.
const (
	feeMentorRate    = 0.43
	komisiMitraRate  = 0.40
	keuntunganRate   = 0.60
	feeFreelanceRate = 0.43
)

// Split holds the derived parts of a franchise customer payment.
type Split struct {
	FeeMentor        int64
	KomisiMitra      int64
	KeuntunganBersih int64
}

// HitungSplit derives the franchise-finance parts from the customer payment
// total. Callers are responsible for passing a non-negative amount.
func HitungSplit(totalPaymentCust int64) Split {
	feeMentor := round(float64(totalPaymentCust) * feeMentorRate)
	sisa := totalPaymentCust - feeMentor

	return Split{
		FeeMentor:        feeMentor,
		KomisiMitra:      round(float64(sisa) * komisiMitraRate),
		KeuntunganBersih: round(float64(sisa) * keuntunganRate),
	}
}

// HitungOrder derives the outstanding balance and the freelance fee for a
// mitra order. The balance floors at zero when the down payment exceeds the
// total; it is never negative.
func HitungOrder(totalDp, totalPembayaran int64) (kekurangan, feeFreelance int64) {
	kekurangan = totalPembayaran - totalDp
	if kekurangan < 0 {
		kekurangan = 0
	}
	feeFreelance = round(float64(totalPembayaran) * feeFreelanceRate)
	return kekurangan, feeFreelance
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
