package dashboard

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
)

// AdminViewModel backs the admin dashboard: the at-risk overview plus the
// role assignment action.
type AdminViewModel struct {
	analytics AnalyticsGateway
	users     UserGateway
	log       core.Logger
	adminID   int

	AtRisk []AtRiskEntry
}

func NewAdminViewModel(analytics AnalyticsGateway, users UserGateway, log core.Logger, adminID int) *AdminViewModel {
	return &AdminViewModel{analytics: analytics, users: users, log: log, adminID: adminID}
}

func (vm *AdminViewModel) Refresh(ctx context.Context) {
	atRisk, err := vm.analytics.AtRisk(ctx)
	if err != nil {
		vm.log.Error("fetching at-risk students", err)
		return
	}
	vm.AtRisk = atRisk
}

// AssignRole grants `roleID` to `userID` on behalf of the current admin.
// The result is surfaced to the caller for user-visible feedback.
func (vm *AdminViewModel) AssignRole(ctx context.Context, userID, roleID int) error {
	if err := vm.users.AssignRole(ctx, userID, roleID, vm.adminID); err != nil {
		return errors.Wrapf(err, "assigning role %d to user %d", roleID, userID)
	}
	return nil
}
