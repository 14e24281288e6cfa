package domain

// Variant is one arm of an A/B experiment
type Variant struct {
	ID          string
	Name        string
	IsControl   bool
	SampleSize  int64
	Conversions int64
}

// ConversionRate is conversions over sample size, 0 for an empty sample
func (v Variant) ConversionRate() float64 {
	if v.SampleSize <= 0 {
		return 0
	}
	return float64(v.Conversions) / float64(v.SampleSize)
}
