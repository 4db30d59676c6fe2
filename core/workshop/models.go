package workshop

type (
	// Workshop is the document fetched from the workshop backend. It is
	// owned by the view that fetched it and discarded on navigation away.
	Workshop struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Steps       []Step `json:"steps"`
	}

	// Step is one module of a workshop.
	Step struct {
		ID       int       `json:"id"`
		Title    string    `json:"title"`
		StepType string    `json:"step_type"`
		Substeps []Substep `json:"substeps"`
	}

	Substep struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		SubstepType string `json:"substep_type"`
		OrderIndex  int    `json:"order_index"`
	}

	// ProgressEvent is built on demand, sent once and discarded.
	ProgressEvent struct {
		UserID     int    `json:"user_id"`
		WorkshopID int    `json:"workshop_id"`
		StepID     int    `json:"step_id"`
		SubstepID  int    `json:"substep_id"`
		Status     string `json:"status"`
	}

	// Cursor identifies the currently displayed (step, substep) pair.
	Cursor struct {
		Step int
		Sub  int
	}
)

// Draft payloads for workshop.create.
type (
	SubstepDraft struct {
		Title       string `json:"title"`
		SubstepType string `json:"substep_type"`
		OrderIndex  int    `json:"order_index"`
	}

	StepDraft struct {
		Title    string         `json:"title"`
		StepType string         `json:"step_type"`
		Substeps []SubstepDraft `json:"substeps"`
	}

	WorkshopDraft struct {
		Title       string      `json:"title"`
		Description string      `json:"description,omitempty"`
		Steps       []StepDraft `json:"steps"`
	}
)

const StatusCompleted = "completed"
