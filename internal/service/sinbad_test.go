package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limb-salvage-engine/internal/domain"
)

func TestCalculateSINBADScore_EmptyAssessment(t *testing.T) {
	engine := newTestEngine()

	score := engine.CalculateSINBADScore(&domain.Assessment{})

	assert.Equal(t, 0, score.Total)

	score = engine.CalculateSINBADScore(nil)
	assert.Equal(t, 0, score.Total)
}

func TestCalculateSINBADScore_Components(t *testing.T) {
	tests := []struct {
		name       string
		assessment *domain.Assessment
		expected   domain.SINBADScore
	}{
		{
			name:       "heel wound scores the site component",
			assessment: &domain.Assessment{WoundLocation: "left heel"},
			expected:   domain.SINBADScore{Site: 1, Total: 1},
		},
		{
			name:       "forefoot wound does not score the site component",
			assessment: &domain.Assessment{WoundLocation: "right forefoot"},
			expected:   domain.SINBADScore{},
		},
		{
			name: "reduced ABI scores the ischemia component",
			assessment: &domain.Assessment{
				DopplerFindings: arterialABI(0.85),
			},
			expected: domain.SINBADScore{Ischemia: 1, Total: 1},
		},
		{
			name: "sepsis scores the infection component",
			assessment: &domain.Assessment{
				Sepsis: &domain.Sepsis{Severity: domain.SepsisSIRS},
			},
			expected: domain.SINBADScore{BacterialInfection: 1, Total: 1},
		},
		{
			name: "WIfI foot infection scores the infection component",
			assessment: &domain.Assessment{
				WIfI: &domain.WIfIClassification{FootInfection: 2},
			},
			expected: domain.SINBADScore{BacterialInfection: 1, Total: 1},
		},
		{
			name: "wound area at one square centimeter scores the area component",
			assessment: &domain.Assessment{
				WoundSize: &domain.WoundSize{AreaCm2: 1.0},
			},
			expected: domain.SINBADScore{Area: 1, Total: 1},
		},
		{
			name: "small shallow wound scores neither size component",
			assessment: &domain.Assessment{
				WoundSize: &domain.WoundSize{AreaCm2: 0.5, DepthCm: 0.3},
			},
			expected: domain.SINBADScore{},
		},
		{
			name:       "Wagner grade two scores the depth component",
			assessment: &domain.Assessment{WagnerGrade: intPtr(2)},
			expected:   domain.SINBADScore{Depth: 1, Total: 1},
		},
		{
			name: "deep wound scores the depth component without a Wagner grade",
			assessment: &domain.Assessment{
				WoundSize: &domain.WoundSize{DepthCm: 1.5},
			},
			expected: domain.SINBADScore{Area: 0, Depth: 1, Total: 1},
		},
		{
			name: "all components present",
			assessment: &domain.Assessment{
				WoundLocation:   "calcaneus",
				WagnerGrade:     intPtr(3),
				DopplerFindings: arterialABI(0.6),
				Sepsis:          &domain.Sepsis{Severity: domain.SepsisSepsis},
				WoundSize:       &domain.WoundSize{AreaCm2: 4, DepthCm: 2},
			},
			expected: domain.SINBADScore{
				Site:               1,
				Ischemia:           1,
				BacterialInfection: 1,
				Area:               1,
				Depth:              1,
				Total:              5,
			},
		},
	}

	engine := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.expected, engine.CalculateSINBADScore(tt.assessment))
		})
	}
}
