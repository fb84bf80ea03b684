package service

import (
	"github.com/sirupsen/logrus"

	"github.com/limb-salvage-engine/internal/domain"
)

// GenerateRecommendations produces the prioritized recommendation list for an
// assessment: immediate, then short-term, then long-term. The caller is
// expected to populate LimbSalvageScore beforehand; the generators themselves
// inspect the raw snapshot, so the chronic-osteomyelitis rules fire
// independently of the aggregate score.
func (e *Engine) GenerateRecommendations(a *domain.Assessment) []domain.Recommendation {
	if a == nil {
		a = &domain.Assessment{}
	}

	recommendations := make([]domain.Recommendation, 0, 12)
	recommendations = append(recommendations, immediateRecommendations(a)...)
	recommendations = append(recommendations, shortTermRecommendations(a)...)
	recommendations = append(recommendations, longTermRecommendations(a)...)

	e.logger.WithFields(logrus.Fields{
		"recommendation_count": len(recommendations),
		"critical_count":       countByPriority(recommendations, domain.PriorityCritical),
	}).Info("Generated clinical recommendations")

	return recommendations
}

func countByPriority(recs []domain.Recommendation, p domain.Priority) int {
	count := 0
	for _, r := range recs {
		if r.Priority == p {
			count++
		}
	}
	return count
}

func immediate(priority domain.Priority, recommendation, rationale, timeframe string) domain.Recommendation {
	return domain.Recommendation{
		Category:       domain.CategoryImmediate,
		Priority:       priority,
		Recommendation: recommendation,
		Rationale:      rationale,
		Timeframe:      timeframe,
	}
}

func immediateRecommendations(a *domain.Assessment) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, 6)

	switch a.SepsisSeverityTier() {
	case domain.SepsisSepticShock:
		recs = append(recs, immediate(domain.PriorityCritical,
			"Initiate sepsis bundle: IV broad-spectrum antibiotics, fluid resuscitation, and vasopressor support",
			"Septic shock carries high mortality without hour-one bundle compliance",
			"Within 1 hour"))
	case domain.SepsisSevere:
		recs = append(recs, immediate(domain.PriorityCritical,
			"Initiate sepsis bundle: IV broad-spectrum antibiotics and fluid resuscitation",
			"Severe sepsis with organ dysfunction requires immediate source control",
			"Within 1 hour"))
	case domain.SepsisSepsis:
		recs = append(recs, immediate(domain.PriorityHigh,
			"Start IV broad-spectrum antibiotics and obtain blood cultures",
			"Systemic infection with suspected foot source",
			"Within 4 hours"))
	case domain.SepsisSIRS:
		recs = append(recs, immediate(domain.PriorityHigh,
			"Evaluate for evolving sepsis; obtain cultures and inflammatory markers",
			"SIRS criteria met with an infected wound",
			"Within 6 hours"))
	}

	if a.ABI() < 0.4 {
		recs = append(recs, immediate(domain.PriorityCritical,
			"Urgent vascular surgery consultation",
			"ABI below 0.4 indicates critical limb ischemia",
			"Within 24 hours"))
	}

	if a.Wagner() >= 5 {
		recs = append(recs, immediate(domain.PriorityCritical,
			"Emergency surgical debridement and amputation-level evaluation",
			"Wagner grade 5 gangrene of the whole foot is not salvageable without urgent surgery",
			"Immediate"))
	}

	if a.Osteomyelitis != nil && a.Osteomyelitis.Suspected && a.SepsisSeverityTier() != domain.SepsisNone {
		recs = append(recs, immediate(domain.PriorityHigh,
			"Obtain bone and blood cultures before starting antibiotics",
			"Culture-directed therapy for osteomyelitis with systemic infection improves eradication rates",
			"Before antibiotic administration"))
	}

	recs = append(recs, chronicOsteomyelitisRecommendations(a.Osteomyelitis)...)

	return recs
}

// chronicOsteomyelitisRecommendations is the dedicated rule block for
// long-standing bone infection. It runs regardless of the aggregate score and
// can emit critical recommendations for an otherwise low-scoring limb.
func chronicOsteomyelitisRecommendations(o *domain.Osteomyelitis) []domain.Recommendation {
	if o == nil {
		return nil
	}

	recs := make([]domain.Recommendation, 0, 4)

	if o.IsChronic() && (o.TreatmentFailed() || o.StructuralChronicDisease()) {
		recs = append(recs, immediate(domain.PriorityCritical,
			"Strongly consider primary amputation over further limb salvage attempts",
			"Chronic osteomyelitis with treatment failure or structural bone destruction has 60-80% cure rates with antibiotic-and-debridement salvage; primary amputation offers definitive source control",
			"Within 1 week"))
	}

	if o.Sequestrum {
		recs = append(recs, immediate(domain.PriorityHigh,
			"Surgical removal of sequestrum",
			"Devascularized bone is inaccessible to antibiotics and requires surgical removal",
			"Within 1 week"))
	}

	if o.Cloacae {
		recs = append(recs, immediate(domain.PriorityHigh,
			"Excise sinus tracts during surgical debridement",
			"Draining cloacae indicate established chronic infection with persistent dead space",
			"At next debridement"))
	}

	if o.BoneCount() >= 3 {
		recs = append(recs, immediate(domain.PriorityHigh,
			"Consider proximal amputation encompassing all involved bones",
			"Multifocal osteomyelitis across three or more bones is rarely eradicated bone-by-bone",
			"Within 1 week"))
	}

	// Failed treatment flags its own critical recommendation regardless of
	// chronicity status.
	if o.TreatmentFailed() {
		recs = append(recs, immediate(domain.PriorityCritical,
			"Reassess surgical strategy after failed osteomyelitis treatment",
			"Recurrence or failure of combined antibiotic and debridement therapy predicts poor response to repeat conservative management",
			"Within 1 week"))
	}

	return recs
}

func shortTermRecommendations(a *domain.Assessment) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, 6)

	shortTerm := func(priority domain.Priority, recommendation, rationale, timeframe string) {
		recs = append(recs, domain.Recommendation{
			Category:       domain.CategoryShortTerm,
			Priority:       priority,
			Recommendation: recommendation,
			Rationale:      rationale,
			Timeframe:      timeframe,
		})
	}

	if a.HbA1c() > 8 {
		shortTerm(domain.PriorityHigh,
			"Intensify glycemic control targeting HbA1c below 8%",
			"Hyperglycemia impairs wound healing and immune response",
			"Within 2 weeks")
	}

	if a.ABI() < 0.9 && !a.AngiogramPerformed {
		shortTerm(domain.PriorityHigh,
			"Obtain CT or catheter angiography of the affected limb",
			"ABI below 0.9 indicates arterial disease; anatomy must be defined before revascularization planning",
			"Within 2 weeks")
	}

	if a.Wagner() >= 2 {
		shortTerm(domain.PriorityHigh,
			"Schedule serial sharp debridement",
			"Deep ulcers require regular removal of nonviable tissue to progress toward closure",
			"Within 1 week")
	}

	// Offloading is recommended for every diabetic foot wound.
	shortTerm(domain.PriorityMedium,
		"Offload the wound with total contact casting or a removable walker",
		"Pressure relief is a prerequisite for plantar wound healing",
		"Within 1 week")

	albuminLow := a.Albumin != nil && *a.Albumin < 3.5
	if albuminLow || a.MUST() >= 2 {
		shortTerm(domain.PriorityMedium,
			"Dietitian referral with protein supplementation",
			"Malnutrition independently predicts wound-healing failure",
			"Within 2 weeks")
	}

	if a.RenalStatus.Stage() >= 4 || a.RenalStatus.Dialysis() {
		shortTerm(domain.PriorityMedium,
			"Nephrology co-management",
			"Advanced kidney disease alters antibiotic dosing, contrast use, and healing capacity",
			"Within 2 weeks")
	}

	return recs
}

func longTermRecommendations(a *domain.Assessment) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, 5)

	longTerm := func(priority domain.Priority, recommendation, rationale, timeframe string) {
		recs = append(recs, domain.Recommendation{
			Category:       domain.CategoryLongTerm,
			Priority:       priority,
			Recommendation: recommendation,
			Rationale:      rationale,
			Timeframe:      timeframe,
		})
	}

	c := a.Comorbidities

	if c != nil && c.Smoking {
		longTerm(domain.PriorityHigh,
			"Smoking cessation program with pharmacologic support",
			"Continued smoking doubles amputation risk and halves bypass patency",
			"Ongoing")
	}

	if c != nil && (c.CoronaryArteryDisease || c.HeartFailure || c.Stroke) {
		longTerm(domain.PriorityMedium,
			"Cardiovascular risk reduction: statin, antiplatelet therapy, and blood pressure control",
			"Diabetic foot disease marks high systemic atherosclerotic burden",
			"Ongoing")
	}

	longTerm(domain.PriorityMedium,
		"Structured foot surveillance every 1-3 months after healing",
		"Ulcer recurrence approaches 40% in the first year without surveillance",
		"Ongoing")

	longTerm(domain.PriorityMedium,
		"Custom therapeutic footwear and pressure-relieving insoles",
		"Accommodative footwear reduces re-ulceration at previous wound sites",
		"After wound closure")

	longTerm(domain.PriorityLow,
		"Patient and caregiver education on daily foot inspection",
		"Early self-detection shortens time to treatment for new lesions",
		"Ongoing")

	return recs
}
