package dashboard

import (
	"context"
	"sync"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
)

// TrainerViewModel backs the trainer dashboard: class-wide completion and
// quiz scores plus the at-risk student list.
type TrainerViewModel struct {
	analytics  AnalyticsGateway
	log        core.Logger
	workshopID int

	Completion []CompletionEntry
	QuizScores []QuizScore
	AtRisk     []AtRiskEntry
}

func NewTrainerViewModel(analytics AnalyticsGateway, log core.Logger) *TrainerViewModel {
	return &TrainerViewModel{
		analytics:  analytics,
		log:        log,
		workshopID: DefaultWorkshopID,
	}
}

func (vm *TrainerViewModel) Refresh(ctx context.Context) {
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
		atRisk, err := vm.analytics.AtRisk(ctx)
		if err != nil {
			vm.log.Error("fetching at-risk students", err)
			return
		}
		vm.AtRisk = atRisk
	}()

	wg.Wait()
}
