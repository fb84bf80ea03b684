package domain

// Central default table for optional assessment fields. Every calculator
// consults these values through the accessors on Assessment and its
// sub-structs instead of scattering fallback literals. A missing field always
// defaults to the "normal" value for its domain, so an incomplete snapshot
// degrades to an optimistic (lower-risk) score rather than failing.
const (
	// DefaultABI is assumed when no ankle-brachial index was recorded.
	DefaultABI = 1.0

	// DefaultHbA1c is assumed when no glycated hemoglobin was recorded (%).
	DefaultHbA1c = 7.0

	// DefaultMUSTScore is assumed when no malnutrition screening was done.
	DefaultMUSTScore = 0

	// DefaultPatientAge contributes no age points when age is unknown.
	DefaultPatientAge = 0

	// DefaultQSOFAScore is assumed when no qSOFA assessment was recorded.
	DefaultQSOFAScore = 0
)
