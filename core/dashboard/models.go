package dashboard

type (
	// Snapshot is the read-only analytics payload for one workshop. It is
	// replaced wholesale on each fetch; there are no merge semantics.
	Snapshot struct {
		Completion []CompletionEntry `json:"completion"`
		QuizScores []QuizScore       `json:"quiz_scores"`
	}

	CompletionEntry struct {
		UserID          int     `json:"user_id"`
		PercentComplete float64 `json:"percent_complete"`
	}

	QuizScore struct {
		UserID       int     `json:"user_id"`
		AverageScore float64 `json:"average_score"`
		PassFail     bool    `json:"pass_fail"`
	}

	AtRiskEntry struct {
		UserID    int     `json:"user_id"`
		RiskScore float64 `json:"risk_score"`
		Reason    string  `json:"reason"`
	}

	Certificate struct {
		ID            int    `json:"id"`
		CertificateID int    `json:"certificate_id"`
		UserID        int    `json:"user_id"`
		IssuedAt      string `json:"issued_at"`
		FileURL       string `json:"file_url"`
	}
)

// DefaultWorkshopID is the workshop the dashboards report on until the
// platform grows workshop selection.
const DefaultWorkshopID = 1
