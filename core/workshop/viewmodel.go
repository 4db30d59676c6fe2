package workshop

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
)

// Gateway is the slice of the workshop backend the view-model needs.
type Gateway interface {
	Workshop(ctx context.Context, id int) (Workshop, error)
	UpdateProgress(ctx context.Context, ev ProgressEvent) error
}

// ViewModel backs the workshop viewer. It starts in Loading, becomes Ready
// once the document is fetched and then only moves the cursor. There is no
// error state: a failed load leaves it in Loading and the failure goes to
// the diagnostic channel.
type ViewModel struct {
	gw     Gateway
	log    core.Logger
	userID int

	workshop *Workshop // nil while Loading
	cursor   Cursor
}

func NewViewModel(gw Gateway, log core.Logger, userID int) *ViewModel {
	return &ViewModel{gw: gw, log: log, userID: userID}
}

// Load fetches the workshop document. On success the view-model becomes
// Ready with the cursor at (0,0).
func (vm *ViewModel) Load(ctx context.Context, id int) error {
	ws, err := vm.gw.Workshop(ctx, id)
	if err != nil {
		err = errors.Wrapf(err, "loading workshop %d", id)
		if vm.log != nil {
			vm.log.Error("workshop load failed", err)
		}
		return err
	}
	vm.workshop = &ws
	vm.cursor = Cursor{}
	return nil
}

func (vm *ViewModel) Ready() bool { return vm.workshop != nil }

// Workshop panics unless Ready.
func (vm *ViewModel) Workshop() Workshop { return *vm.workshop }

func (vm *ViewModel) Cursor() Cursor { return vm.cursor }

// SelectStep makes step `index` active and unconditionally resets the
// substep cursor to 0. Out-of-range indices are ignored.
func (vm *ViewModel) SelectStep(index int) {
	if vm.workshop == nil || index < 0 || index >= len(vm.workshop.Steps) {
		return
	}
	vm.cursor.Step = index
	vm.cursor.Sub = 0
}

// SelectSubstep moves the substep cursor within the active step. Locked or
// out-of-range substeps are a no-op.
func (vm *ViewModel) SelectSubstep(index int) {
	if vm.workshop == nil || len(vm.workshop.Steps) == 0 {
		return
	}
	if index < 0 || index >= len(vm.ActiveStep().Substeps) {
		return
	}
	if !vm.IsUnlocked(vm.cursor.Step, index) {
		return
	}
	vm.cursor.Sub = index
}

// IsUnlocked is a placeholder policy: only the first substep of any module
// is reachable. A server-confirmed completion set would replace it.
func (vm *ViewModel) IsUnlocked(stepIdx, subIdx int) bool {
	return subIdx == 0
}

// ActiveStep returns the step under the cursor, or the zero Step for a
// workshop document with no steps.
func (vm *ViewModel) ActiveStep() Step {
	if vm.workshop == nil || len(vm.workshop.Steps) == 0 {
		return Step{}
	}
	return vm.workshop.Steps[vm.cursor.Step]
}

// HasActiveSubstep reports whether the cursor points at displayable
// content; empty-steps and empty-substeps documents are legal responses.
func (vm *ViewModel) HasActiveSubstep() bool {
	return vm.workshop != nil && len(vm.workshop.Steps) > 0 && len(vm.ActiveStep().Substeps) > 0
}

// ActiveSubstep returns the substep under the cursor, or the zero Substep
// when the active step has no content.
func (vm *ViewModel) ActiveSubstep() Substep {
	if !vm.HasActiveSubstep() {
		return Substep{}
	}
	return vm.ActiveStep().Substeps[vm.cursor.Sub]
}

// MarkComplete reports the active substep as completed. The cursor and the
// unlock policy are not touched; the result is for user-visible feedback.
func (vm *ViewModel) MarkComplete(ctx context.Context) error {
	if vm.workshop == nil {
		return errors.New("workshop not loaded")
	}
	if !vm.HasActiveSubstep() {
		return errors.New("workshop has no content to complete")
	}
	ev := ProgressEvent{
		UserID:     vm.userID,
		WorkshopID: vm.workshop.ID,
		StepID:     vm.ActiveStep().ID,
		SubstepID:  vm.ActiveSubstep().ID,
		Status:     StatusCompleted,
	}
	if err := vm.gw.UpdateProgress(ctx, ev); err != nil {
		return errors.Wrap(err, "updating progress")
	}
	return nil
}
