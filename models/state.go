package models

// ViewPhase is the phase of the analysis view state machine.
type ViewPhase string

const (
	PhaseIdle     ViewPhase = "idle"
	PhaseLoading  ViewPhase = "loading"
	PhaseResult   ViewPhase = "result"
	PhaseRegistry ViewPhase = "registry"
	PhaseError    ViewPhase = "error"
)

// ViewState is a snapshot of what the analysis view shows.
type ViewState struct {
	Phase ViewPhase `json:"phase"`

	// Generation is the token of the latest user-triggered request.
	Generation uint64 `json:"generation"`

	Record   *AnalysisRecord `json:"record,omitempty"`
	Registry []RegistryEntry `json:"registry,omitempty"`

	// Error is the user-facing message shown in the error phase.
	Error string `json:"error,omitempty"`
}
