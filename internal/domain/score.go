package domain

// Per-domain sub-score maxima. The seven maxima sum to MaxTotalScore, so the
// total doubles as a percentage of maximum.
const (
	MaxWoundScore       = 25.0
	MaxIschemiaScore    = 20.0
	MaxInfectionScore   = 20.0
	MaxRenalScore       = 10.0
	MaxComorbidityScore = 15.0
	MaxAgeScore         = 5.0
	MaxNutritionScore   = 5.0

	MaxTotalScore = 100.0
)

// Score is the composite limb-salvage score derived from an Assessment. It is
// recomputed from scratch on every invocation and never mutated.
//
// Invariants: every sub-score is clamped to its domain maximum, TotalScore is
// the sum of the clamped sub-scores, and Percentage equals TotalScore because
// the maxima sum to 100.
type Score struct {
	WoundScore       float64 `json:"wound_score"`
	IschemiaScore    float64 `json:"ischemia_score"`
	InfectionScore   float64 `json:"infection_score"`
	RenalScore       float64 `json:"renal_score"`
	ComorbidityScore float64 `json:"comorbidity_score"`
	AgeScore         float64 `json:"age_score"`
	NutritionScore   float64 `json:"nutrition_score"`

	TotalScore float64 `json:"total_score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`

	RiskCategory       RiskCategory       `json:"risk_category"`
	SalvageProbability SalvageProbability `json:"salvage_probability"`
}

// SubScores returns the seven sub-scores in their documented order.
func (s *Score) SubScores() []float64 {
	return []float64{
		s.WoundScore,
		s.IschemiaScore,
		s.InfectionScore,
		s.RenalScore,
		s.ComorbidityScore,
		s.AgeScore,
		s.NutritionScore,
	}
}

// Recommendation is a single clinical recommendation produced fresh on each
// invocation; it has no identity or lifecycle beyond the call that created it.
type Recommendation struct {
	Category       RecommendationCategory `json:"category"`
	Priority       Priority               `json:"priority"`
	Recommendation string                 `json:"recommendation"`
	Rationale      string                 `json:"rationale"`
	Timeframe      string                 `json:"timeframe"`
}

// SINBADScore is the secondary Site/Ischemia/Neuropathy/Bacterial
// infection/Area/Depth composite. Neuropathy is not captured by the
// assessment snapshot, so five binary components are computed and summed.
type SINBADScore struct {
	Site               int `json:"site"`
	Ischemia           int `json:"ischemia"`
	BacterialInfection int `json:"bacterial_infection"`
	Area               int `json:"area"`
	Depth              int `json:"depth"`

	Total int `json:"total"`
}
