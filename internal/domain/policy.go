package domain

// Policy holds the global admission criteria of one run.
type Policy struct {
	EnableDistrictPriority bool `json:"enableDistrictPriority"`
	EnableQuotaReservation bool `json:"enableQuotaReservation"`
}

// Strategy names the processing path the seat allocator takes.
type Strategy string

const (
	// StrategyFlat: one pass over everyone, highest score first.
	StrategyFlat Strategy = "FLAT"
	// StrategyDistrict: in-district applicants, then everyone else.
	StrategyDistrict Strategy = "DISTRICT"
	// StrategyQuota: quota-reserved applicants first; the remainder follows
	// the district or flat path depending on EnableDistrictPriority.
	StrategyQuota Strategy = "QUOTA"
)

// Strategy returns the leading strategy. Quota reservation wins when both
// flags are set because its pass runs before the remainder is processed.
func (p Policy) Strategy() Strategy {
	switch {
	case p.EnableQuotaReservation:
		return StrategyQuota
	case p.EnableDistrictPriority:
		return StrategyDistrict
	default:
		return StrategyFlat
	}
}
