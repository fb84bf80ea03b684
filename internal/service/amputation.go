package service

import (
	"github.com/sirupsen/logrus"

	"github.com/limb-salvage-engine/internal/domain"
)

// amputationRule is one guard in the amputation precedence list. Rules are
// evaluated in declaration order and the first applicable rule wins, which
// keeps the reason for a chosen level auditable.
type amputationRule struct {
	name    string
	applies func(a *domain.Assessment, salvage domain.SalvageProbability) bool
	level   func(a *domain.Assessment, salvage domain.SalvageProbability) domain.AmputationLevel
}

// amputationPrecedence is the documented evaluation order:
//
//  1. Chronic-osteomyelitis override. Can force an amputation even when the
//     aggregate salvage probability is excellent; this is intentional.
//  2. Wagner grade 5 whole-foot gangrene, which is never salvageable
//     regardless of the aggregate score.
//  3. Excellent or good salvage probability keeps the limb.
//  4. Wagner grade 4 forefoot gangrene by location and ABI.
//  5. Wagner grade 3 with very poor salvage probability.
//  6. Very poor salvage probability generally.
//  7. Poor salvage probability.
//  8. Otherwise no amputation.
var amputationPrecedence = []amputationRule{
	{
		name:    "chronic_osteomyelitis_override",
		applies: chronicOsteomyelitisOverrideApplies,
		level:   chronicOsteomyelitisOverrideLevel,
	},
	{
		name: "wagner_grade_5",
		applies: func(a *domain.Assessment, _ domain.SalvageProbability) bool {
			return a.Wagner() >= 5
		},
		level: func(a *domain.Assessment, _ domain.SalvageProbability) domain.AmputationLevel {
			abi := a.ABI()
			if abi < 0.4 && a.Arterial().FemoralOccluded() {
				return domain.AmputationAKA
			}
			if abi < 0.5 {
				return domain.AmputationBKA
			}
			return domain.AmputationTransmetatarsal
		},
	},
	{
		name: "salvageable_limb",
		applies: func(_ *domain.Assessment, salvage domain.SalvageProbability) bool {
			return salvage == domain.SalvageExcellent || salvage == domain.SalvageGood
		},
		level: func(_ *domain.Assessment, _ domain.SalvageProbability) domain.AmputationLevel {
			return domain.AmputationNone
		},
	},
	{
		name: "wagner_grade_4",
		applies: func(a *domain.Assessment, _ domain.SalvageProbability) bool {
			return a.Wagner() == 4
		},
		level: func(a *domain.Assessment, _ domain.SalvageProbability) domain.AmputationLevel {
			abi := a.ABI()
			if a.ToePredominantWound() {
				switch {
				case abi >= 0.6:
					return domain.AmputationRay
				case abi >= 0.4:
					return domain.AmputationTransmetatarsal
				default:
					return domain.AmputationBKA
				}
			}
			if abi >= 0.5 {
				return domain.AmputationTransmetatarsal
			}
			return domain.AmputationBKA
		},
	},
	{
		name: "wagner_grade_3_very_poor",
		applies: func(a *domain.Assessment, salvage domain.SalvageProbability) bool {
			return a.Wagner() == 3 && salvage == domain.SalvageVeryPoor
		},
		level: func(a *domain.Assessment, _ domain.SalvageProbability) domain.AmputationLevel {
			if a.ABI() < 0.5 {
				return domain.AmputationBKA
			}
			return domain.AmputationTransmetatarsal
		},
	},
	{
		name: "very_poor_salvage",
		applies: func(_ *domain.Assessment, salvage domain.SalvageProbability) bool {
			return salvage == domain.SalvageVeryPoor
		},
		level: func(a *domain.Assessment, _ domain.SalvageProbability) domain.AmputationLevel {
			if a.ABI() < 0.4 {
				return domain.AmputationBKA
			}
			return domain.AmputationRay
		},
	},
	{
		name: "poor_salvage",
		applies: func(_ *domain.Assessment, salvage domain.SalvageProbability) bool {
			return salvage == domain.SalvagePoor
		},
		level: func(_ *domain.Assessment, _ domain.SalvageProbability) domain.AmputationLevel {
			return domain.AmputationToeDisarticulation
		},
	},
}

// chronicOsteomyelitisOverrideApplies gates the primary-amputation override:
// chronic bone infection combined with failed treatment, structural bone
// destruction, or multifocal (three or more bones) involvement.
func chronicOsteomyelitisOverrideApplies(a *domain.Assessment, _ domain.SalvageProbability) bool {
	o := a.Osteomyelitis
	if !o.IsChronic() {
		return false
	}
	return o.TreatmentFailed() || o.StructuralChronicDisease() || o.BoneCount() >= 3
}

// chronicOsteomyelitisOverrideLevel selects the level within the override
// branch from bone-involvement extent and perfusion.
func chronicOsteomyelitisOverrideLevel(a *domain.Assessment, _ domain.SalvageProbability) domain.AmputationLevel {
	abi := a.ABI()
	bones := a.Osteomyelitis.BoneCount()

	if bones >= 3 || abi < 0.5 {
		if abi < 0.4 {
			return domain.AmputationBKA
		}
		return domain.AmputationTransmetatarsal
	}

	if bones <= 2 && a.ToePredominantWound() {
		if abi >= 0.6 {
			return domain.AmputationRay
		}
		return domain.AmputationTransmetatarsal
	}

	return domain.AmputationTransmetatarsal
}

// RecommendAmputationLevel evaluates the amputation precedence list for an
// assessment. The caller's precomputed LimbSalvageScore is used when present;
// otherwise the score is recomputed.
func (e *Engine) RecommendAmputationLevel(a *domain.Assessment) domain.AmputationLevel {
	if a == nil {
		a = &domain.Assessment{}
	}

	salvage := e.salvageProbability(a)

	for _, rule := range amputationPrecedence {
		if rule.applies(a, salvage) {
			level := rule.level(a, salvage)
			e.logger.WithFields(logrus.Fields{
				"rule":                rule.name,
				"amputation_level":    level.String(),
				"salvage_probability": salvage.String(),
			}).Info("Recommended amputation level")
			return level
		}
	}

	e.logger.WithField("salvage_probability", salvage.String()).
		Debug("No amputation rule applied")
	return domain.AmputationNone
}

// DetermineManagement combines salvage probability, the recommended
// amputation level, and revascularization feasibility into one of four
// strategies. A caller-populated RecommendedAmputationLevel is honored;
// otherwise the level is recomputed.
func (e *Engine) DetermineManagement(a *domain.Assessment) domain.ManagementStrategy {
	if a == nil {
		a = &domain.Assessment{}
	}

	salvage := e.salvageProbability(a)

	level := a.RecommendedAmputationLevel
	if !level.IsValid() {
		level = e.RecommendAmputationLevel(a)
	}

	feasible := revascularizationFeasible(a)
	abi := a.ABI()

	var strategy domain.ManagementStrategy
	switch {
	case salvage == domain.SalvageExcellent || salvage == domain.SalvageGood:
		if feasible && abi < 0.7 {
			strategy = domain.ManagementRevascularization
		} else {
			strategy = domain.ManagementConservative
		}
	case salvage == domain.SalvageFair:
		if feasible {
			strategy = domain.ManagementRevascularization
		} else {
			strategy = domain.ManagementConservative
		}
	case level.IsMinor():
		if feasible {
			strategy = domain.ManagementRevascularization
		} else {
			strategy = domain.ManagementMinorAmputation
		}
	default:
		strategy = domain.ManagementMajorAmputation
	}

	e.logger.WithFields(logrus.Fields{
		"strategy":            strategy.String(),
		"salvage_probability": salvage.String(),
		"amputation_level":    level.String(),
		"revascularizable":    feasible,
	}).Info("Determined management strategy")

	return strategy
}

// revascularizationFeasible reports whether endovascular or open
// revascularization is a realistic option: ABI in [0.3, 0.9) without heavy
// medial calcification.
func revascularizationFeasible(a *domain.Assessment) bool {
	abi := a.ABI()
	if abi < 0.3 || abi >= 0.9 {
		return false
	}
	return !a.DopplerFindings.HasCalcification()
}

// salvageProbability returns the caller-populated salvage probability when a
// score is attached to the assessment, recomputing it otherwise.
func (e *Engine) salvageProbability(a *domain.Assessment) domain.SalvageProbability {
	if a.LimbSalvageScore != nil && a.LimbSalvageScore.SalvageProbability.IsValid() {
		return a.LimbSalvageScore.SalvageProbability
	}
	return e.CalculateLimbSalvageScore(a).SalvageProbability
}
