package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fillValidDetails(w *Wizard) {
	w.MergeDetails(DetailsPatch{
		ClassName:    strPtr("Tahfidz Juz 30"),
		AcademicYear: strPtr("2026/2027"),
		UstadID:      strPtr("ustad-1"),
		ScheduleDays: []string{"Senin", "Rabu"},
		StartTime:    strPtr("08:00"),
		EndTime:      strPtr("09:30"),
	})
	_ = w.SetStepValid(StepDetails, true)
}

type fakeCreator struct {
	calls   int
	lastPay ClassPayload
	err     error
}

func (f *fakeCreator) CreateClass(p ClassPayload) (string, error) {
	f.calls++
	f.lastPay = p
	if f.err != nil {
		return "", f.err
	}
	return "class-123", nil
}

func TestGoTo_ForwardBlockedUntilPreviousValid(t *testing.T) {
	w := New()

	err := w.GoTo(StepEnrollment)
	assert.ErrorIs(t, err, ErrStepLocked)
	assert.Equal(t, StepDetails, w.Current())

	require.NoError(t, w.SetStepValid(StepDetails, true))
	require.NoError(t, w.GoTo(StepEnrollment))
	assert.Equal(t, StepEnrollment, w.Current())

	// maju ke konfirmasi butuh langkah enrollment valid juga
	err = w.GoTo(StepConfirmation)
	assert.ErrorIs(t, err, ErrStepLocked)

	require.NoError(t, w.SetStepValid(StepEnrollment, true))
	require.NoError(t, w.GoTo(StepConfirmation))
}

func TestGoTo_BackwardAlwaysAllowed(t *testing.T) {
	w := New()
	require.NoError(t, w.SetStepValid(StepDetails, true))
	require.NoError(t, w.GoTo(StepEnrollment))

	require.NoError(t, w.GoTo(StepDetails))
	assert.Equal(t, StepDetails, w.Current())
}

func TestGoTo_VisitedStepReachableAfterGoingBack(t *testing.T) {
	w := New()
	require.NoError(t, w.SetStepValid(StepDetails, true))
	require.NoError(t, w.GoTo(StepEnrollment))
	require.NoError(t, w.GoTo(StepDetails))

	// langkah details jadi tidak valid lagi, tapi enrollment sudah
	// pernah dikunjungi jadi masih boleh dibuka
	require.NoError(t, w.SetStepValid(StepDetails, false))
	assert.True(t, w.CanEnter(StepEnrollment))
	require.NoError(t, w.GoTo(StepEnrollment))
}

func TestGoTo_CannotSkipTwoStepsForward(t *testing.T) {
	w := New()
	require.NoError(t, w.SetStepValid(StepDetails, true))

	assert.False(t, w.CanEnter(StepConfirmation))
	assert.ErrorIs(t, w.GoTo(StepConfirmation), ErrStepLocked)
}

func TestStepValid_ConfirmationIsDerived(t *testing.T) {
	w := New()

	assert.ErrorIs(t, w.SetStepValid(StepConfirmation, true), ErrDerivedValidity)
	assert.False(t, w.StepValid(StepConfirmation))

	require.NoError(t, w.SetStepValid(StepDetails, true))
	assert.False(t, w.StepValid(StepConfirmation))

	require.NoError(t, w.SetStepValid(StepEnrollment, true))
	assert.True(t, w.StepValid(StepConfirmation))

	// salah satu jadi invalid → konfirmasi ikut invalid
	require.NoError(t, w.SetStepValid(StepDetails, false))
	assert.False(t, w.StepValid(StepConfirmation))
}

func TestGoTo_ConfirmationClosedWhenDetailsInvalidatedLater(t *testing.T) {
	w := New()
	require.NoError(t, w.SetStepValid(StepDetails, true))
	require.NoError(t, w.GoTo(StepEnrollment))
	require.NoError(t, w.SetStepValid(StepEnrollment, true))
	require.NoError(t, w.GoTo(StepConfirmation))

	// user mundur, lalu langkah details jadi tidak valid lagi:
	// konfirmasi harus tertutup kembali walau sudah pernah dikunjungi
	require.NoError(t, w.GoTo(StepDetails))
	require.NoError(t, w.SetStepValid(StepDetails, false))

	assert.False(t, w.CanEnter(StepConfirmation))
	assert.ErrorIs(t, w.GoTo(StepConfirmation), ErrStepLocked)
	assert.Equal(t, StepDetails, w.Current())

	// valid lagi → terbuka lagi, lewat enrollment
	require.NoError(t, w.SetStepValid(StepDetails, true))
	require.NoError(t, w.GoTo(StepEnrollment))
	require.NoError(t, w.GoTo(StepConfirmation))
}

func TestCanSubmit_RequiresNonEmptySelection(t *testing.T) {
	w := New()
	fillValidDetails(w)
	require.NoError(t, w.SetStepValid(StepEnrollment, true))

	assert.False(t, w.CanSubmit())

	w.Selection().Add("santri-1")
	assert.True(t, w.CanSubmit())

	w.Selection().Clear()
	assert.False(t, w.CanSubmit())
}

func TestSubmit_SuccessResetsState(t *testing.T) {
	w := New()
	fillValidDetails(w)
	require.NoError(t, w.SetStepValid(StepEnrollment, true))
	w.Selection().Add("santri-1")
	w.Selection().Add("santri-2")

	creator := &fakeCreator{}
	id, err := w.Submit(creator)
	require.NoError(t, err)
	assert.Equal(t, "class-123", id)
	assert.Equal(t, 1, creator.calls)
	assert.ElementsMatch(t, []string{"santri-1", "santri-2"}, creator.lastPay.StudentIDs)
	assert.Equal(t, "Tahfidz Juz 30", creator.lastPay.ClassName)

	// sukses → state kembali bersih
	assert.Equal(t, StepDetails, w.Current())
	assert.False(t, w.HasUnsavedChanges())
	assert.Equal(t, 0, w.Selection().Len())
	assert.False(t, w.StepValid(StepDetails))
}

func TestSubmit_FailurePreservesState(t *testing.T) {
	w := New()
	fillValidDetails(w)
	require.NoError(t, w.SetStepValid(StepEnrollment, true))
	w.Selection().Add("santri-1")

	creator := &fakeCreator{err: errors.New("jadwal bentrok")}
	_, err := w.Submit(creator)
	require.Error(t, err)

	// gagal → user bisa koreksi lalu submit ulang tanpa mengisi ulang
	assert.True(t, w.HasUnsavedChanges())
	assert.Equal(t, "Tahfidz Juz 30", w.Payload().ClassName)
	assert.Equal(t, 1, w.Selection().Len())
	assert.True(t, w.CanSubmit())

	creator.err = nil
	id, err := w.Submit(creator)
	require.NoError(t, err)
	assert.Equal(t, "class-123", id)
}

func TestSubmit_RevalidatesAggregateDespiteStaleFlags(t *testing.T) {
	w := New()
	fillValidDetails(w)
	// nama dikosongkan tapi flag validitas tidak ikut diperbarui
	w.MergeDetails(DetailsPatch{ClassName: strPtr("")})
	require.NoError(t, w.SetStepValid(StepEnrollment, true))
	w.Selection().Add("santri-1")

	creator := &fakeCreator{}
	_, err := w.Submit(creator)
	assert.ErrorIs(t, err, ErrPayloadInvalid)
	assert.Equal(t, 0, creator.calls)
}

func TestSubmit_RejectsInvalidClockRange(t *testing.T) {
	w := New()
	fillValidDetails(w)
	w.MergeDetails(DetailsPatch{StartTime: strPtr("10:00"), EndTime: strPtr("09:00")})
	require.NoError(t, w.SetStepValid(StepEnrollment, true))
	w.Selection().Add("santri-1")

	creator := &fakeCreator{}
	_, err := w.Submit(creator)
	assert.ErrorIs(t, err, ErrScheduleInvalid)
	assert.Equal(t, 0, creator.calls)
}

func TestSubmit_NotSubmittableWithoutValidSteps(t *testing.T) {
	w := New()
	w.Selection().Add("santri-1")

	_, err := w.Submit(&fakeCreator{})
	assert.ErrorIs(t, err, ErrNotSubmittable)
}

func TestHasUnsavedChanges(t *testing.T) {
	w := New()
	assert.False(t, w.HasUnsavedChanges())

	w.MergeDetails(DetailsPatch{ClassName: strPtr("Fiqih Dasar")})
	assert.True(t, w.HasUnsavedChanges())

	w.Reset()
	assert.False(t, w.HasUnsavedChanges())

	w.Selection().Add("santri-1")
	assert.True(t, w.HasUnsavedChanges())
}

func TestMergeDetails_PartialMergeKeepsOtherFields(t *testing.T) {
	w := New()
	fillValidDetails(w)

	w.MergeDetails(DetailsPatch{AcademicYear: strPtr("2027/2028")})

	p := w.Payload()
	assert.Equal(t, "Tahfidz Juz 30", p.ClassName)
	assert.Equal(t, "2027/2028", p.AcademicYear)
	assert.Equal(t, []string{"Senin", "Rabu"}, p.ScheduleDays)
}
