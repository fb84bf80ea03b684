package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskCategoryIsValid(t *testing.T) {
	for _, r := range []RiskCategory{RiskLow, RiskModerate, RiskHigh, RiskVeryHigh} {
		assert.True(t, r.IsValid(), r.String())
	}
	assert.False(t, RiskCategory("").IsValid())
	assert.False(t, RiskCategory("severe").IsValid())
}

func TestSalvageProbabilityIsValid(t *testing.T) {
	for _, s := range []SalvageProbability{
		SalvageExcellent, SalvageGood, SalvageFair, SalvagePoor, SalvageVeryPoor,
	} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, SalvageProbability("").IsValid())
	assert.False(t, SalvageProbability("unknown").IsValid())
}

func TestSepsisSeverityIsValid(t *testing.T) {
	for _, s := range []SepsisSeverity{
		SepsisNone, SepsisSIRS, SepsisSepsis, SepsisSevere, SepsisSepticShock,
	} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, SepsisSeverity("bacteremia").IsValid())
}

func TestClosedCategorySets(t *testing.T) {
	assert.True(t, WaveformMonophasic.IsValid())
	assert.False(t, Waveform("tetra").IsValid())

	assert.True(t, VesselStenosis.IsValid())
	assert.False(t, VesselPatency("narrowed").IsValid())

	assert.True(t, ImagingSuspicious.IsValid())
	assert.False(t, ImagingResult("equivocal").IsValid())

	assert.True(t, ChronicitySubacute.IsValid())
	assert.False(t, Chronicity("recurrent").IsValid())

	assert.True(t, CorticalFullThickness.IsValid())
	assert.False(t, CorticalInvolvement("partial").IsValid())

	assert.True(t, CategoryShortTerm.IsValid())
	assert.False(t, RecommendationCategory("someday").IsValid())

	assert.True(t, PriorityCritical.IsValid())
	assert.False(t, Priority("urgent").IsValid())

	assert.True(t, ManagementRevascularization.IsValid())
	assert.False(t, ManagementStrategy("palliative").IsValid())
}

func TestAmputationLevelRankOrdering(t *testing.T) {
	ordered := []AmputationLevel{
		AmputationNone,
		AmputationToeDisarticulation,
		AmputationRay,
		AmputationTransmetatarsal,
		AmputationBKA,
		AmputationAKA,
	}

	for i, level := range ordered {
		assert.True(t, level.IsValid(), level.String())
		assert.Equal(t, i, level.Rank(), level.String())
	}

	assert.Equal(t, -1, AmputationLevel("hip_disarticulation").Rank())
	assert.False(t, AmputationLevel("").IsValid())
}

func TestAmputationLevelIsMinor(t *testing.T) {
	minor := []AmputationLevel{
		AmputationNone, AmputationToeDisarticulation, AmputationRay, AmputationTransmetatarsal,
	}
	for _, level := range minor {
		assert.True(t, level.IsMinor(), level.String())
	}

	assert.False(t, AmputationBKA.IsMinor())
	assert.False(t, AmputationAKA.IsMinor())
	assert.False(t, AmputationLevel("").IsMinor())
}
