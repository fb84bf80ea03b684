package service

import (
	"strings"

	"github.com/limb-salvage-engine/internal/domain"
)

// CalculateSINBADScore computes the secondary SINBAD-style composite. It sits
// alongside the main pipeline and gates nothing. Each component is binary;
// neuropathy is not captured by the snapshot, so five components contribute.
func (e *Engine) CalculateSINBADScore(a *domain.Assessment) *domain.SINBADScore {
	if a == nil {
		a = &domain.Assessment{}
	}

	score := &domain.SINBADScore{}

	if sinbadHindOrMidfootSite(a.WoundLocation) {
		score.Site = 1
	}

	if a.ABI() < 0.9 {
		score.Ischemia = 1
	}

	if a.SepsisSeverityTier() != domain.SepsisNone ||
		(a.WIfI != nil && a.WIfI.FootInfection >= 1) {
		score.BacterialInfection = 1
	}

	if a.WoundSize != nil && a.WoundSize.AreaCm2 >= 1 {
		score.Area = 1
	}

	if a.Wagner() >= 2 || (a.WoundSize != nil && a.WoundSize.DepthCm >= 1) {
		score.Depth = 1
	}

	score.Total = score.Site + score.Ischemia + score.BacterialInfection +
		score.Area + score.Depth

	return score
}

// sinbadHindOrMidfootSite reports a midfoot or hindfoot wound site; forefoot
// wounds score zero on the SINBAD site axis.
func sinbadHindOrMidfootSite(location string) bool {
	location = strings.ToLower(location)
	for _, marker := range []string{"midfoot", "hindfoot", "heel", "calcaneus", "ankle"} {
		if strings.Contains(location, marker) {
			return true
		}
	}
	return false
}
