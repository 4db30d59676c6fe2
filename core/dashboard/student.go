package dashboard

import (
	"context"
	"sync"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
)

// StudentViewModel holds the read-only snapshots behind the student
// dashboard. Each fetch failure is logged and leaves the prior (possibly
// empty) slot in place; the slots are independent by design.
type StudentViewModel struct {
	analytics  AnalyticsGateway
	certs      CertificateGateway
	log        core.Logger
	userID     int
	workshopID int

	Completion   []CompletionEntry
	QuizScores   []QuizScore
	Certificates []Certificate
}

func NewStudentViewModel(analytics AnalyticsGateway, certs CertificateGateway, log core.Logger, userID int) *StudentViewModel {
	return &StudentViewModel{
		analytics:  analytics,
		certs:      certs,
		log:        log,
		userID:     userID,
		workshopID: DefaultWorkshopID,
	}
}

// Refresh issues the dashboard fetches in parallel. One failing does not
// roll back the others; each goroutine writes only its own slots.
func (vm *StudentViewModel) Refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		snap, err := vm.analytics.Dashboard(ctx, vm.workshopID)
		if err != nil {
			vm.log.Error("fetching dashboard snapshot", err)
			return
		}
		vm.Completion = snap.Completion
		vm.QuizScores = snap.QuizScores
	}()

	go func() {
		defer wg.Done()
		certs, err := vm.certs.ListForUser(ctx, vm.userID)
		if err != nil {
			vm.log.Error("fetching certificates", err)
			return
		}
		vm.Certificates = certs
	}()

	wg.Wait()
}
