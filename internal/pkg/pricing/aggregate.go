package pricing

import (
	"math"

	"stayquote/internal/domain"
)

// Result is the monetary breakdown for one stay. All amounts are rounded to
// two decimal places.
type Result struct {
	Subtotal           float64 `json:"subtotal"`
	Discount           float64 `json:"discount"`
	DiscountPercent    float64 `json:"discount_percent,omitempty"`
	AccommodationTotal float64 `json:"accommodation_total"`
	CleaningFee        float64 `json:"cleaning_fee"`
	Total              float64 `json:"total"`
	NumberOfNights     int     `json:"number_of_nights"`
}

// Aggregator turns a resolved per-night price map into a booking total.
// It is a pure function of its inputs: identical inputs always produce an
// identical Result.
type Aggregator struct{}

func NewAggregator() Aggregator { return Aggregator{} }

// Aggregate sums the nightly prices, applies the best matching length-of-stay
// discount and adds the cleaning fee. The discount applied is the one with
// the highest threshold that the stay still reaches; shorter stays get none.
func (Aggregator) Aggregate(nightly map[string]float64, cleaningFee float64, discounts []domain.LengthOfStayDiscount) Result {
	nights := len(nightly)

	var accommodation float64
	for _, price := range nightly {
		accommodation += price
	}
	accommodation = round2(accommodation)

	var percent float64
	var bestThreshold int
	for _, d := range discounts {
		if d.ThresholdNights <= nights && d.ThresholdNights >= bestThreshold {
			bestThreshold = d.ThresholdNights
			percent = d.Percent
		}
	}

	discount := round2(accommodation * percent / 100)

	return Result{
		Subtotal:           accommodation,
		Discount:           discount,
		DiscountPercent:    percent,
		AccommodationTotal: accommodation,
		CleaningFee:        cleaningFee,
		Total:              round2(accommodation - discount + cleaningFee),
		NumberOfNights:     nights,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
