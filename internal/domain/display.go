package domain

import (
	"fmt"
	"strings"
)

// ScoreDisplay is the presentation block consumed by UI and report layers:
// badge colors plus a one-line summary.
type ScoreDisplay struct {
	RiskColor    string `json:"risk_color"`
	RiskLabel    string `json:"risk_label"`
	SalvageColor string `json:"salvage_color"`
	SalvageLabel string `json:"salvage_label"`
	Summary      string `json:"summary"`
}

// FormatScoreDisplay maps the risk and salvage-probability categories to
// display colors and human-readable summary text.
func FormatScoreDisplay(score *Score) ScoreDisplay {
	if score == nil {
		return ScoreDisplay{}
	}

	var riskColor, riskLabel string
	switch score.RiskCategory {
	case RiskVeryHigh:
		riskColor, riskLabel = "red", "Very High Risk"
	case RiskHigh:
		riskColor, riskLabel = "orange", "High Risk"
	case RiskModerate:
		riskColor, riskLabel = "yellow", "Moderate Risk"
	default:
		riskColor, riskLabel = "green", "Low Risk"
	}

	var salvageColor, salvageLabel string
	switch score.SalvageProbability {
	case SalvageVeryPoor:
		salvageColor, salvageLabel = "red", "Very Poor Salvage Probability"
	case SalvagePoor:
		salvageColor, salvageLabel = "orange", "Poor Salvage Probability"
	case SalvageFair:
		salvageColor, salvageLabel = "yellow", "Fair Salvage Probability"
	case SalvageGood:
		salvageColor, salvageLabel = "lightgreen", "Good Salvage Probability"
	default:
		salvageColor, salvageLabel = "green", "Excellent Salvage Probability"
	}

	return ScoreDisplay{
		RiskColor:    riskColor,
		RiskLabel:    riskLabel,
		SalvageColor: salvageColor,
		SalvageLabel: salvageLabel,
		Summary: fmt.Sprintf("Limb salvage score %.1f/%.0f (%.1f%%): %s, %s",
			score.TotalScore, score.MaxScore, score.Percentage, riskLabel, salvageLabel),
	}
}

// WagnerGradeDescription returns the human-readable description of a Wagner
// grade for clinical reports.
func WagnerGradeDescription(grade int) string {
	switch grade {
	case 0:
		return "Grade 0: Intact skin, pre- or post-ulcerative lesion"
	case 1:
		return "Grade 1: Superficial ulcer not involving subcutaneous tissue"
	case 2:
		return "Grade 2: Deep ulcer penetrating to tendon, bone, or joint"
	case 3:
		return "Grade 3: Deep ulcer with abscess or osteomyelitis"
	case 4:
		return "Grade 4: Gangrene localized to the forefoot"
	case 5:
		return "Grade 5: Gangrene involving the whole foot"
	default:
		return fmt.Sprintf("Unknown Wagner grade %d", grade)
	}
}

// TexasClassificationDescription returns the human-readable description of a
// University of Texas grade (0-3) and stage (A-D) pair.
func TexasClassificationDescription(grade int, stage string) string {
	var gradeText string
	switch grade {
	case 0:
		gradeText = "pre- or post-ulcerative site, completely epithelialized"
	case 1:
		gradeText = "superficial wound not involving tendon, capsule, or bone"
	case 2:
		gradeText = "wound penetrating to tendon or capsule"
	case 3:
		gradeText = "wound penetrating to bone or joint"
	default:
		return fmt.Sprintf("Unknown Texas grade %d", grade)
	}

	var stageText string
	switch strings.ToUpper(strings.TrimSpace(stage)) {
	case "A":
		stageText = "clean wound"
	case "B":
		stageText = "non-ischemic infected wound"
	case "C":
		stageText = "ischemic non-infected wound"
	case "D":
		stageText = "ischemic infected wound"
	default:
		return fmt.Sprintf("Unknown Texas stage %q", stage)
	}

	return fmt.Sprintf("Texas %d%s: %s, %s", grade, strings.ToUpper(strings.TrimSpace(stage)), gradeText, stageText)
}
