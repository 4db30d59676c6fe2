package dashboard

import "context"

type (
	// AnalyticsGateway is the slice of the analytics backend dashboards need.
	AnalyticsGateway interface {
		Dashboard(ctx context.Context, workshopID int) (Snapshot, error)
		AtRisk(ctx context.Context) ([]AtRiskEntry, error)
	}

	CertificateGateway interface {
		ListForUser(ctx context.Context, userID int) ([]Certificate, error)
	}

	// UserGateway carries the admin-side role assignment operation.
	UserGateway interface {
		AssignRole(ctx context.Context, userID, roleID, assignedBy int) error
	}
)
