// Package service implements the limb-salvage decision-support engine: the
// composite score, risk and salvage-probability classification, clinical
// recommendation generation, amputation-level recommendation, and management
// strategy determination.
//
// Every entry point is a pure, deterministic function of the assessment
// snapshot: no I/O, no shared state, safe for concurrent use.
package service

import (
	"github.com/sirupsen/logrus"

	"github.com/limb-salvage-engine/internal/domain"
)

// Engine evaluates assessment snapshots. It holds no mutable state; the
// logger is the only collaborator.
type Engine struct {
	logger *logrus.Logger
}

// NewEngine creates a new scoring engine.
func NewEngine(logger *logrus.Logger) *Engine {
	return &Engine{logger: logger}
}

// CalculateLimbSalvageScore computes the seven domain sub-scores, the
// aggregate total, and both classification categories for an assessment.
func (e *Engine) CalculateLimbSalvageScore(a *domain.Assessment) *domain.Score {
	score := &domain.Score{
		WoundScore:       calculateWoundScore(a),
		IschemiaScore:    calculateIschemiaScore(a),
		InfectionScore:   calculateInfectionScore(a),
		RenalScore:       calculateRenalScore(a),
		ComorbidityScore: calculateComorbidityScore(a),
		AgeScore:         calculateAgeScore(a),
		NutritionScore:   calculateNutritionScore(a),
		MaxScore:         domain.MaxTotalScore,
	}

	for _, sub := range score.SubScores() {
		score.TotalScore += sub
	}
	// Domain maxima sum to 100, so the total is already a percentage.
	score.Percentage = score.TotalScore / score.MaxScore * 100

	score.RiskCategory = classifyRisk(score.Percentage)
	score.SalvageProbability = classifySalvageProbability(score.Percentage)

	e.logger.WithFields(logrus.Fields{
		"total_score":         score.TotalScore,
		"percentage":          score.Percentage,
		"risk_category":       score.RiskCategory.String(),
		"salvage_probability": score.SalvageProbability.String(),
	}).Info("Calculated limb salvage score")

	return score
}

// classifyRisk maps the score percentage to a risk category. Monotonic step
// function, thresholds independent of the salvage ladder.
func classifyRisk(percentage float64) domain.RiskCategory {
	switch {
	case percentage >= 70:
		return domain.RiskVeryHigh
	case percentage >= 50:
		return domain.RiskHigh
	case percentage >= 30:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}

// classifySalvageProbability maps the score percentage to a salvage
// probability. Higher score means worse outlook; the thresholds are
// deliberately not a mirror of the risk ladder.
func classifySalvageProbability(percentage float64) domain.SalvageProbability {
	switch {
	case percentage >= 80:
		return domain.SalvageVeryPoor
	case percentage >= 60:
		return domain.SalvagePoor
	case percentage >= 40:
		return domain.SalvageFair
	case percentage >= 20:
		return domain.SalvageGood
	default:
		return domain.SalvageExcellent
	}
}

// calculateWoundScore scores wound severity (max 25): Wagner grade lookup,
// twice the WIfI wound axis, a duration penalty ladder, and a
// debridement-history penalty.
func calculateWoundScore(a *domain.Assessment) float64 {
	if a == nil {
		return 0
	}

	score := wagnerWoundPoints(a.Wagner())

	if a.WIfI != nil {
		score += 2 * float64(a.WIfI.Wound)
	}

	if a.WoundDurationDays != nil {
		switch days := *a.WoundDurationDays; {
		case days > 90:
			score += 4
		case days > 60:
			score += 3
		case days > 30:
			score += 2
		case days > 14:
			score += 1
		}
	}

	// Three or more debridements without a healed wound marks refractory
	// disease; any prior debridement still counts.
	debridements := 0
	if a.DebridementCount != nil {
		debridements = *a.DebridementCount
	}
	previous := a.PreviousDebridement != nil && *a.PreviousDebridement
	if debridements >= 3 {
		score += 3
	} else if previous || debridements > 0 {
		score += 1
	}

	return clamp(score, domain.MaxWoundScore)
}

// wagnerWoundPoints is the fixed Wagner grade lookup (grade 5 carries the
// documented maximum of 12).
func wagnerWoundPoints(grade int) float64 {
	switch {
	case grade <= 0:
		return 0
	case grade == 1:
		return 2
	case grade == 2:
		return 4
	case grade == 3:
		return 6
	case grade == 4:
		return 9
	default:
		return 12
	}
}

// calculateIschemiaScore scores arterial perfusion (max 20): ABI ladder,
// waveform category, per-vessel occlusion burden, and calcification.
func calculateIschemiaScore(a *domain.Assessment) float64 {
	if a == nil {
		return 0
	}

	score := abiPoints(a.ABI())

	arterial := a.Arterial()
	if arterial != nil {
		score += waveformPoints(arterial.Waveform)

		// Full occlusion counts one point per vessel, stenosis half a point,
		// across the six named arteries, capped at 6.
		var occlusion float64
		for _, patency := range arterial.Vessels() {
			switch patency {
			case domain.VesselOccluded:
				occlusion++
			case domain.VesselStenosis:
				occlusion += 0.5
			}
		}
		score += clamp(occlusion, 6)

		if arterial.Calcification {
			score += 2
		}
	}

	return clamp(score, domain.MaxIschemiaScore)
}

func abiPoints(abi float64) float64 {
	switch {
	case abi < 0.4:
		return 8
	case abi < 0.6:
		return 6
	case abi < 0.8:
		return 4
	case abi < 0.9:
		return 2
	default:
		return 0
	}
}

func waveformPoints(w domain.Waveform) float64 {
	switch w {
	case domain.WaveformBiphasic:
		return 1
	case domain.WaveformMonophasic:
		return 3
	case domain.WaveformAbsent:
		return 4
	default:
		// Triphasic or unrecorded waveform contributes nothing.
		return 0
	}
}

// calculateInfectionScore scores infection burden (max 20): sepsis severity,
// qSOFA, the osteomyelitis block, and lab marker flags. The osteomyelitis
// contributions sum uncapped before the final clamp.
func calculateInfectionScore(a *domain.Assessment) float64 {
	if a == nil {
		return 0
	}

	score := sepsisSeverityPoints(a.SepsisSeverityTier())
	score += float64(a.Sepsis.QSOFA())
	score += osteomyelitisPoints(a.Osteomyelitis)

	if s := a.Sepsis; s != nil {
		if s.WBC != nil && *s.WBC > 15 {
			score++
		}
		if s.CRP != nil && *s.CRP > 100 {
			score++
		}
		if s.Procalcitonin != nil && *s.Procalcitonin > 2 {
			score++
		}
	}

	return clamp(score, domain.MaxInfectionScore)
}

func sepsisSeverityPoints(s domain.SepsisSeverity) float64 {
	switch s {
	case domain.SepsisSIRS:
		return 2
	case domain.SepsisSepsis:
		return 4
	case domain.SepsisSevere:
		return 6
	case domain.SepsisSepticShock:
		return 8
	default:
		return 0
	}
}

// osteomyelitisPoints scores the bone infection block. Chronicity carries
// heavy additional weight beyond the acute-disease baseline: chronic bone
// infection responds materially worse to antibiotics alone, and the
// structural markers (sequestrum, involucrum, cloacae, cortical destruction)
// each compound that further. Treatment-failure indicators and multi-bone
// involvement add independently.
func osteomyelitisPoints(o *domain.Osteomyelitis) float64 {
	if o == nil {
		return 0
	}

	var score float64

	// Acute-disease baseline.
	if o.Suspected {
		score += 2
	}
	if o.ProbeToBone {
		score++
	}
	switch o.Imaging {
	case domain.ImagingPositive:
		score += 2
	case domain.ImagingSuspicious:
		score++
	}
	if o.BoneBiopsyPositive {
		score += 2
	}
	if o.RadiographicChange {
		score++
	}

	// Chronicity weighting.
	if o.IsChronic() {
		score += 4
	} else if o.IsSubacute() {
		score += 2
	}

	// Structural chronic markers.
	if o.Sequestrum {
		score += 2
	}
	if o.Involucrum {
		score++
	}
	if o.Cloacae {
		score++
	}
	switch o.CorticalInvolvement {
	case domain.CorticalFullThickness:
		score += 2
	case domain.CorticalDeep:
		score++
	}

	// Treatment-failure indicators compound independently.
	if o.Recurrence {
		score += 3
	}
	if o.PriorAntibiotics && o.PriorDebridement {
		score += 2
	} else if o.PriorAntibiotics || o.PriorDebridement {
		score++
	}

	// Multi-bone involvement.
	switch bones := o.BoneCount(); {
	case bones >= 3:
		score += 2
	case bones == 2:
		score++
	}

	return score
}

// calculateRenalScore scores kidney disease (max 10): CKD stage ladder plus a
// dialysis flag.
func calculateRenalScore(a *domain.Assessment) float64 {
	if a == nil || a.RenalStatus == nil {
		return 0
	}

	score := ckdStagePoints(a.RenalStatus.Stage())
	if a.RenalStatus.Dialysis() {
		score += 4
	}

	return clamp(score, domain.MaxRenalScore)
}

func ckdStagePoints(stage int) float64 {
	switch {
	case stage >= 5:
		return 6
	case stage == 4:
		return 4
	case stage == 3:
		return 2
	case stage == 2:
		return 1
	default:
		return 0
	}
}

// calculateComorbidityScore scores the metabolic and cardiovascular history
// (max 15): HbA1c and diabetes-duration ladders plus independent flags.
func calculateComorbidityScore(a *domain.Assessment) float64 {
	if a == nil {
		return 0
	}

	var score float64

	switch hba1c := a.HbA1c(); {
	case hba1c > 10:
		score += 3
	case hba1c > 9:
		score += 2
	case hba1c > 8:
		score++
	}

	c := a.Comorbidities
	if c == nil {
		return clamp(score, domain.MaxComorbidityScore)
	}

	if c.DiabetesDurationYears != nil {
		switch years := *c.DiabetesDurationYears; {
		case years > 20:
			score += 3
		case years > 10:
			score += 2
		case years > 5:
			score++
		}
	}

	if c.CoronaryArteryDisease {
		score += 2
	}
	if c.HeartFailure {
		score += 2
	}
	if c.Stroke {
		score++
	}
	if c.PeripheralVascular {
		score += 2
	}
	if c.PreviousAmputation {
		score += 3
	}
	if c.Smoking {
		score++
	}

	return clamp(score, domain.MaxComorbidityScore)
}

// calculateAgeScore scores patient age (max 5): one point per decade from 50.
func calculateAgeScore(a *domain.Assessment) float64 {
	switch age := a.Age(); {
	case age >= 90:
		return 5
	case age >= 80:
		return 4
	case age >= 70:
		return 3
	case age >= 60:
		return 2
	case age >= 50:
		return 1
	default:
		return 0
	}
}

// calculateNutritionScore scores nutritional state (max 5): albumin ladder
// plus the MUST screening contribution.
func calculateNutritionScore(a *domain.Assessment) float64 {
	if a == nil {
		return 0
	}

	var score float64

	if a.Albumin != nil {
		switch albumin := *a.Albumin; {
		case albumin < 2.5:
			score += 3
		case albumin < 3.0:
			score += 2
		case albumin < 3.5:
			score++
		}
	}

	switch must := a.MUST(); {
	case must >= 2:
		score += 2
	case must == 1:
		score++
	}

	return clamp(score, domain.MaxNutritionScore)
}

func clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
