package domain

import "strings"

// Assessment is an immutable snapshot of one patient-wound evaluation at one
// point in time. Every clinical field is optional; pointer fields distinguish
// "not recorded" from a recorded zero, and the nil-safe accessors below apply
// the central default table. The engine never mutates an Assessment.
type Assessment struct {
	PatientAge  *int `json:"patient_age,omitempty"`
	WagnerGrade *int `json:"wagner_grade,omitempty"`

	WIfI *WIfIClassification `json:"wifi_classification,omitempty"`

	WoundDurationDays   *int   `json:"wound_duration,omitempty"`
	PreviousDebridement *bool  `json:"previous_debridement,omitempty"`
	DebridementCount    *int   `json:"debridement_count,omitempty"`
	WoundLocation       string `json:"wound_location,omitempty"`

	WoundSize *WoundSize `json:"wound_size,omitempty"`

	DopplerFindings *DopplerFindings `json:"doppler_findings,omitempty"`
	Sepsis          *Sepsis          `json:"sepsis,omitempty"`
	Osteomyelitis   *Osteomyelitis   `json:"osteomyelitis,omitempty"`
	RenalStatus     *RenalStatus     `json:"renal_status,omitempty"`
	Comorbidities   *Comorbidities   `json:"comorbidities,omitempty"`

	Albumin   *float64 `json:"albumin,omitempty"`
	MUSTScore *int     `json:"must_score,omitempty"`

	AngiogramPerformed bool `json:"angiogram_performed,omitempty"`

	// LimbSalvageScore is populated by the caller before requesting
	// recommendations; the engine recomputes it when absent.
	LimbSalvageScore *Score `json:"limb_salvage_score,omitempty"`

	// RecommendedAmputationLevel is populated by the caller before requesting
	// a management strategy; the engine recomputes it when absent.
	RecommendedAmputationLevel AmputationLevel `json:"recommended_amputation_level,omitempty"`
}

// WIfIClassification holds the Wound/Ischemia/foot Infection sub-scores,
// each on the 0-3 axis.
type WIfIClassification struct {
	Wound         int `json:"wound"`
	Ischemia      int `json:"ischemia"`
	FootInfection int `json:"foot_infection"`
}

// WoundSize describes ulcer dimensions.
type WoundSize struct {
	AreaCm2 float64 `json:"area_cm2"`
	DepthCm float64 `json:"depth_cm"`
}

// DopplerFindings groups the vascular examination results.
type DopplerFindings struct {
	Arterial *ArterialDoppler `json:"arterial,omitempty"`
}

// ArterialDoppler describes the arterial Doppler study: ABI, waveform
// category, per-vessel patency for the six named lower-limb arteries, and a
// medial calcification flag.
type ArterialDoppler struct {
	ABI      *float64 `json:"abi,omitempty"`
	Waveform Waveform `json:"waveform,omitempty"`

	Femoral         VesselPatency `json:"femoral,omitempty"`
	Popliteal       VesselPatency `json:"popliteal,omitempty"`
	AnteriorTibial  VesselPatency `json:"anterior_tibial,omitempty"`
	PosteriorTibial VesselPatency `json:"posterior_tibial,omitempty"`
	Peroneal        VesselPatency `json:"peroneal,omitempty"`
	DorsalisPedis   VesselPatency `json:"dorsalis_pedis,omitempty"`

	Calcification bool `json:"calcification,omitempty"`
}

// Sepsis describes the systemic infection state.
type Sepsis struct {
	Severity      SepsisSeverity `json:"severity,omitempty"`
	QSOFAScore    *int           `json:"qsofa_score,omitempty"`
	WBC           *float64       `json:"wbc,omitempty"`
	CRP           *float64       `json:"crp,omitempty"`
	Procalcitonin *float64       `json:"procalcitonin,omitempty"`
}

// Osteomyelitis describes bone infection findings, including the chronicity
// markers that drive the primary-amputation override.
type Osteomyelitis struct {
	Suspected          bool          `json:"suspected,omitempty"`
	ProbeToBone        bool          `json:"probe_to_bone,omitempty"`
	Imaging            ImagingResult `json:"imaging,omitempty"`
	BoneBiopsyPositive bool          `json:"bone_biopsy_positive,omitempty"`
	RadiographicChange bool          `json:"radiographic_change,omitempty"`

	Chronicity    Chronicity `json:"chronicity,omitempty"`
	DurationWeeks *int       `json:"duration_weeks,omitempty"`

	Sequestrum          bool                `json:"sequestrum,omitempty"`
	Involucrum          bool                `json:"involucrum,omitempty"`
	Cloacae             bool                `json:"cloacae,omitempty"`
	CorticalInvolvement CorticalInvolvement `json:"cortical_involvement,omitempty"`

	Recurrence       bool `json:"recurrence,omitempty"`
	PriorAntibiotics bool `json:"prior_antibiotics,omitempty"`
	PriorDebridement bool `json:"prior_debridement,omitempty"`

	AffectedBones []string `json:"affected_bones,omitempty"`
}

// RenalStatus describes kidney function.
type RenalStatus struct {
	CKDStage   *int `json:"ckd_stage,omitempty"`
	OnDialysis bool `json:"on_dialysis,omitempty"`
}

// Comorbidities groups the metabolic and cardiovascular history.
type Comorbidities struct {
	HbA1c                 *float64 `json:"hba1c,omitempty"`
	DiabetesDurationYears *int     `json:"diabetes_duration,omitempty"`
	CoronaryArteryDisease bool     `json:"coronary_artery_disease,omitempty"`
	HeartFailure          bool     `json:"heart_failure,omitempty"`
	Stroke                bool     `json:"stroke,omitempty"`
	PeripheralVascular    bool     `json:"peripheral_vascular_disease,omitempty"`
	PreviousAmputation    bool     `json:"previous_amputation,omitempty"`
	Smoking               bool     `json:"smoking,omitempty"`
}

// Age returns the patient age in years, or DefaultPatientAge when unknown.
func (a *Assessment) Age() int {
	if a == nil || a.PatientAge == nil {
		return DefaultPatientAge
	}
	return *a.PatientAge
}

// Wagner returns the Wagner grade, or 0 when not staged.
func (a *Assessment) Wagner() int {
	if a == nil || a.WagnerGrade == nil {
		return 0
	}
	return *a.WagnerGrade
}

// ABI returns the recorded ankle-brachial index, or DefaultABI when no
// arterial study is available.
func (a *Assessment) ABI() float64 {
	if a == nil {
		return DefaultABI
	}
	return a.DopplerFindings.EffectiveABI()
}

// Arterial returns the arterial Doppler study, which may be nil.
func (a *Assessment) Arterial() *ArterialDoppler {
	if a == nil || a.DopplerFindings == nil {
		return nil
	}
	return a.DopplerFindings.Arterial
}

// HbA1c returns the recorded HbA1c, or DefaultHbA1c when unknown.
func (a *Assessment) HbA1c() float64 {
	if a == nil || a.Comorbidities == nil || a.Comorbidities.HbA1c == nil {
		return DefaultHbA1c
	}
	return *a.Comorbidities.HbA1c
}

// MUST returns the MUST screening score, or DefaultMUSTScore when not screened.
func (a *Assessment) MUST() int {
	if a == nil || a.MUSTScore == nil {
		return DefaultMUSTScore
	}
	return *a.MUSTScore
}

// SepsisSeverityTier returns the sepsis severity, SepsisNone when no sepsis
// assessment was recorded.
func (a *Assessment) SepsisSeverityTier() SepsisSeverity {
	if a == nil || a.Sepsis == nil || a.Sepsis.Severity == "" {
		return SepsisNone
	}
	return a.Sepsis.Severity
}

// ToePredominantWound reports whether the wound or the infected bones are
// toe/phalanx-centric, which steers the override branch toward distal levels.
func (a *Assessment) ToePredominantWound() bool {
	if a == nil {
		return false
	}
	if containsToeReference(a.WoundLocation) {
		return true
	}
	if a.Osteomyelitis != nil {
		for _, bone := range a.Osteomyelitis.AffectedBones {
			if containsToeReference(bone) {
				return true
			}
		}
	}
	return false
}

func containsToeReference(s string) bool {
	s = strings.ToLower(s)
	for _, marker := range []string{"toe", "hallux", "digit", "phalan"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// EffectiveABI returns the recorded ABI, or DefaultABI when missing.
func (d *DopplerFindings) EffectiveABI() float64 {
	if d == nil || d.Arterial == nil || d.Arterial.ABI == nil {
		return DefaultABI
	}
	return *d.Arterial.ABI
}

// HasCalcification reports arterial calcification, false when no study exists.
func (d *DopplerFindings) HasCalcification() bool {
	return d != nil && d.Arterial != nil && d.Arterial.Calcification
}

// Vessels returns the patency of the six named arteries in proximal-to-distal
// order. Unassessed vessels are returned as the empty category.
func (ad *ArterialDoppler) Vessels() []VesselPatency {
	if ad == nil {
		return nil
	}
	return []VesselPatency{
		ad.Femoral,
		ad.Popliteal,
		ad.AnteriorTibial,
		ad.PosteriorTibial,
		ad.Peroneal,
		ad.DorsalisPedis,
	}
}

// FemoralOccluded reports full occlusion of the femoral artery.
func (ad *ArterialDoppler) FemoralOccluded() bool {
	return ad != nil && ad.Femoral == VesselOccluded
}

// QSOFA returns the qSOFA sub-score, or DefaultQSOFAScore when not assessed.
func (s *Sepsis) QSOFA() int {
	if s == nil || s.QSOFAScore == nil {
		return DefaultQSOFAScore
	}
	return *s.QSOFAScore
}

// IsChronic reports chronic osteomyelitis: an explicit chronic tag, or a
// documented duration longer than six weeks.
func (o *Osteomyelitis) IsChronic() bool {
	if o == nil {
		return false
	}
	if o.Chronicity == ChronicityChronic {
		return true
	}
	return o.DurationWeeks != nil && *o.DurationWeeks > 6
}

// IsSubacute reports subacute osteomyelitis: an explicit subacute tag, or a
// documented duration between two and six weeks. Chronic disease wins.
func (o *Osteomyelitis) IsSubacute() bool {
	if o == nil || o.IsChronic() {
		return false
	}
	if o.Chronicity == ChronicitySubacute {
		return true
	}
	return o.DurationWeeks != nil && *o.DurationWeeks >= 2 && *o.DurationWeeks <= 6
}

// TreatmentFailed reports failed prior therapy: documented recurrence, or a
// history of both antibiotic therapy and surgical debridement.
func (o *Osteomyelitis) TreatmentFailed() bool {
	if o == nil {
		return false
	}
	return o.Recurrence || (o.PriorAntibiotics && o.PriorDebridement)
}

// StructuralChronicDisease reports sequestrum or full-thickness cortical
// destruction, the structural markers of established chronic bone infection.
func (o *Osteomyelitis) StructuralChronicDisease() bool {
	if o == nil {
		return false
	}
	return o.Sequestrum || o.CorticalInvolvement == CorticalFullThickness
}

// BoneCount returns the number of affected bones.
func (o *Osteomyelitis) BoneCount() int {
	if o == nil {
		return 0
	}
	return len(o.AffectedBones)
}

// Stage returns the CKD stage, 0 when kidney disease was not staged.
func (r *RenalStatus) Stage() int {
	if r == nil || r.CKDStage == nil {
		return 0
	}
	return *r.CKDStage
}

// Dialysis reports dialysis dependence.
func (r *RenalStatus) Dialysis() bool {
	return r != nil && r.OnDialysis
}
