// Package domain contains the core entities for diabetic foot limb-salvage
// assessment: the patient snapshot, the composite score, and the closed
// clinical category sets used throughout the engine.
//
// Staging systems referenced: Wagner (0-5 ulcer depth/necrosis), WIfI
// (Wound/Ischemia/foot Infection, each axis 0-3), SINBAD, and the University
// of Texas grade/stage matrix.
package domain

// RiskCategory represents the overall limb-loss risk derived from the
// composite score percentage.
type RiskCategory string

const (
	RiskLow      RiskCategory = "low"
	RiskModerate RiskCategory = "moderate"
	RiskHigh     RiskCategory = "high"
	RiskVeryHigh RiskCategory = "very_high"
)

// SalvageProbability represents the probability of limb salvage. It uses its
// own threshold ladder, independent of RiskCategory; a higher composite score
// means a worse salvage outlook.
type SalvageProbability string

const (
	SalvageExcellent SalvageProbability = "excellent"
	SalvageGood      SalvageProbability = "good"
	SalvageFair      SalvageProbability = "fair"
	SalvagePoor      SalvageProbability = "poor"
	SalvageVeryPoor  SalvageProbability = "very_poor"
)

// Waveform represents the Doppler arterial waveform category.
type Waveform string

const (
	WaveformTriphasic  Waveform = "triphasic"
	WaveformBiphasic   Waveform = "biphasic"
	WaveformMonophasic Waveform = "monophasic"
	WaveformAbsent     Waveform = "absent"
)

// VesselPatency represents the patency category of a named artery.
type VesselPatency string

const (
	VesselPatent   VesselPatency = "patent"
	VesselStenosis VesselPatency = "stenosis"
	VesselOccluded VesselPatency = "occluded"
)

// SepsisSeverity represents the systemic infection severity tier.
type SepsisSeverity string

const (
	SepsisNone        SepsisSeverity = "none"
	SepsisSIRS        SepsisSeverity = "sirs"
	SepsisSepsis      SepsisSeverity = "sepsis"
	SepsisSevere      SepsisSeverity = "severe_sepsis"
	SepsisSepticShock SepsisSeverity = "septic_shock"
)

// ImagingResult represents the osteomyelitis imaging read.
type ImagingResult string

const (
	ImagingPositive   ImagingResult = "positive"
	ImagingSuspicious ImagingResult = "suspicious"
	ImagingNegative   ImagingResult = "negative"
)

// Chronicity represents the osteomyelitis duration category.
type Chronicity string

const (
	ChronicityAcute    Chronicity = "acute"
	ChronicitySubacute Chronicity = "subacute"
	ChronicityChronic  Chronicity = "chronic"
)

// CorticalInvolvement represents the depth of cortical bone destruction.
type CorticalInvolvement string

const (
	CorticalNone          CorticalInvolvement = "none"
	CorticalDeep          CorticalInvolvement = "deep"
	CorticalFullThickness CorticalInvolvement = "full_thickness"
)

// RecommendationCategory represents the urgency tier of a recommendation.
type RecommendationCategory string

const (
	CategoryImmediate RecommendationCategory = "immediate"
	CategoryShortTerm RecommendationCategory = "short_term"
	CategoryLongTerm  RecommendationCategory = "long_term"
)

// Priority represents the clinical priority of a recommendation.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// AmputationLevel represents the recommended amputation level, ordered from
// least to most proximal.
type AmputationLevel string

const (
	AmputationNone               AmputationLevel = "none"
	AmputationToeDisarticulation AmputationLevel = "toe_disarticulation"
	AmputationRay                AmputationLevel = "ray_amputation"
	AmputationTransmetatarsal    AmputationLevel = "transmetatarsal"
	AmputationBKA                AmputationLevel = "bka"
	AmputationAKA                AmputationLevel = "aka"
)

// ManagementStrategy represents the recommended overall management approach.
type ManagementStrategy string

const (
	ManagementConservative      ManagementStrategy = "conservative"
	ManagementRevascularization ManagementStrategy = "revascularization"
	ManagementMinorAmputation   ManagementStrategy = "minor_amputation"
	ManagementMajorAmputation   ManagementStrategy = "major_amputation"
)

// IsValid validates the risk category.
func (r RiskCategory) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh, RiskVeryHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation for logging and serialization.
func (r RiskCategory) String() string { return string(r) }

// IsValid validates the salvage probability category.
func (s SalvageProbability) IsValid() bool {
	switch s {
	case SalvageExcellent, SalvageGood, SalvageFair, SalvagePoor, SalvageVeryPoor:
		return true
	default:
		return false
	}
}

// String returns the string representation for logging and serialization.
func (s SalvageProbability) String() string { return string(s) }

// IsValid validates the waveform category.
func (w Waveform) IsValid() bool {
	switch w {
	case WaveformTriphasic, WaveformBiphasic, WaveformMonophasic, WaveformAbsent:
		return true
	default:
		return false
	}
}

// IsValid validates the vessel patency category.
func (p VesselPatency) IsValid() bool {
	switch p {
	case VesselPatent, VesselStenosis, VesselOccluded:
		return true
	default:
		return false
	}
}

// IsValid validates the sepsis severity tier.
func (s SepsisSeverity) IsValid() bool {
	switch s {
	case SepsisNone, SepsisSIRS, SepsisSepsis, SepsisSevere, SepsisSepticShock:
		return true
	default:
		return false
	}
}

// String returns the string representation for logging and serialization.
func (s SepsisSeverity) String() string { return string(s) }

// IsValid validates the imaging result.
func (i ImagingResult) IsValid() bool {
	switch i {
	case ImagingPositive, ImagingSuspicious, ImagingNegative:
		return true
	default:
		return false
	}
}

// IsValid validates the chronicity category.
func (c Chronicity) IsValid() bool {
	switch c {
	case ChronicityAcute, ChronicitySubacute, ChronicityChronic:
		return true
	default:
		return false
	}
}

// IsValid validates the cortical involvement depth.
func (c CorticalInvolvement) IsValid() bool {
	switch c {
	case CorticalNone, CorticalDeep, CorticalFullThickness:
		return true
	default:
		return false
	}
}

// IsValid validates the recommendation category.
func (c RecommendationCategory) IsValid() bool {
	switch c {
	case CategoryImmediate, CategoryShortTerm, CategoryLongTerm:
		return true
	default:
		return false
	}
}

// IsValid validates the priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// IsValid validates the amputation level.
func (a AmputationLevel) IsValid() bool {
	switch a {
	case AmputationNone, AmputationToeDisarticulation, AmputationRay,
		AmputationTransmetatarsal, AmputationBKA, AmputationAKA:
		return true
	default:
		return false
	}
}

// String returns the string representation for logging and serialization.
func (a AmputationLevel) String() string { return string(a) }

// Rank returns the proximal ordering of the level, 0 for none up to 5 for AKA.
func (a AmputationLevel) Rank() int {
	switch a {
	case AmputationNone:
		return 0
	case AmputationToeDisarticulation:
		return 1
	case AmputationRay:
		return 2
	case AmputationTransmetatarsal:
		return 3
	case AmputationBKA:
		return 4
	case AmputationAKA:
		return 5
	default:
		return -1
	}
}

// IsMinor reports whether the level is a foot-sparing (minor) amputation.
// BKA and AKA are major amputations.
func (a AmputationLevel) IsMinor() bool {
	switch a {
	case AmputationNone, AmputationToeDisarticulation, AmputationRay, AmputationTransmetatarsal:
		return true
	default:
		return false
	}
}

// IsValid validates the management strategy.
func (m ManagementStrategy) IsValid() bool {
	switch m {
	case ManagementConservative, ManagementRevascularization,
		ManagementMinorAmputation, ManagementMajorAmputation:
		return true
	default:
		return false
	}
}

// String returns the string representation for logging and serialization.
func (m ManagementStrategy) String() string { return string(m) }
