package dashboard

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
	logsvc "github.com/dhamakuldeep-lab/sukhverse-core/services/logger"
)

type fakeAnalytics struct {
	snapshot Snapshot
	snapErr  error
	atRisk   []AtRiskEntry
	riskErr  error
}

func (f *fakeAnalytics) Dashboard(_ context.Context, workshopID int) (Snapshot, error) {
	if f.snapErr != nil {
		return Snapshot{}, f.snapErr
	}
	return f.snapshot, nil
}

func (f *fakeAnalytics) AtRisk(_ context.Context) ([]AtRiskEntry, error) {
	if f.riskErr != nil {
		return nil, f.riskErr
	}
	return f.atRisk, nil
}

type fakeCertificates struct {
	certs []Certificate
	err   error
}

func (f *fakeCertificates) ListForUser(_ context.Context, userID int) ([]Certificate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.certs, nil
}

type fakeUsers struct {
	assigned [][3]int // user, role, assignedBy
	err      error
}

func (f *fakeUsers) AssignRole(_ context.Context, userID, roleID, assignedBy int) error {
	if f.err != nil {
		return f.err
	}
	f.assigned = append(f.assigned, [3]int{userID, roleID, assignedBy})
	return nil
}

func testLogger() core.Logger {
	return logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
}

func TestStudentViewModel_Refresh(t *testing.T) {
	analytics := &fakeAnalytics{snapshot: Snapshot{
		Completion: []CompletionEntry{{UserID: 1, PercentComplete: 40}},
		QuizScores: []QuizScore{{UserID: 1, AverageScore: 85.5, PassFail: true}},
	}}
	certs := &fakeCertificates{certs: []Certificate{{ID: 9, UserID: 1, FileURL: "https://certs/9.pdf"}}}

	vm := NewStudentViewModel(analytics, certs, testLogger(), 1)
	vm.Refresh(context.Background())

	assert.Len(t, vm.Completion, 1)
	assert.Len(t, vm.QuizScores, 1)
	assert.Len(t, vm.Certificates, 1)
}

func TestStudentViewModel_PartialFailureIsolation(t *testing.T) {
	// the analytics call fails, the certificate call succeeds
	analytics := &fakeAnalytics{snapErr: errors.New("analytics down")}
	certs := &fakeCertificates{certs: []Certificate{{ID: 9, UserID: 1, FileURL: "https://certs/9.pdf"}}}

	vm := NewStudentViewModel(analytics, certs, testLogger(), 1)
	vm.Refresh(context.Background())

	assert.Empty(t, vm.Completion)
	assert.Empty(t, vm.QuizScores)
	assert.Equal(t, certs.certs, vm.Certificates)
}

func TestTrainerViewModel_Refresh(t *testing.T) {
	analytics := &fakeAnalytics{
		snapshot: Snapshot{Completion: []CompletionEntry{{UserID: 2, PercentComplete: 10}}},
		atRisk:   []AtRiskEntry{{UserID: 2, RiskScore: 0.9, Reason: "inactive for 3 weeks"}},
	}

	vm := NewTrainerViewModel(analytics, testLogger())
	vm.Refresh(context.Background())

	assert.Len(t, vm.Completion, 1)
	assert.Len(t, vm.AtRisk, 1)
}

func TestTrainerViewModel_AtRiskFailureKeepsSnapshot(t *testing.T) {
	analytics := &fakeAnalytics{
		snapshot: Snapshot{Completion: []CompletionEntry{{UserID: 2, PercentComplete: 10}}},
		riskErr:  errors.New("at-risk down"),
	}

	vm := NewTrainerViewModel(analytics, testLogger())
	vm.Refresh(context.Background())

	assert.Len(t, vm.Completion, 1)
	assert.Empty(t, vm.AtRisk)
}

func TestAdminViewModel_AssignRole(t *testing.T) {
	users := &fakeUsers{}
	vm := NewAdminViewModel(&fakeAnalytics{}, users, testLogger(), 1)

	assert.NoError(t, vm.AssignRole(context.Background(), 7, 2))
	assert.Equal(t, [][3]int{{7, 2, 1}}, users.assigned)

	users.err = errors.New("forbidden")
	assert.Error(t, vm.AssignRole(context.Background(), 8, 2))
}
