// file: internals/features/school/wizard/wizard.go
package wizard

import (
	"errors"

	"github.com/go-playground/validator/v10"

	classService "pesantrenku_backend/internals/features/school/classes/service"
	"pesantrenku_backend/internals/features/school/enrollment/selection"
)

/* =========================================================
   Wizard pembuatan kelas: 3 langkah linier
   Details → Enrollment → Confirmation
   =========================================================
   Gating langkah:
   - mundur selalu boleh
   - maju hanya kalau langkah sebelumnya valid
   - langkah yang sudah pernah dikunjungi boleh diklik langsung
   Validitas Confirmation bersifat turunan, bukan di-set sendiri.
*/

type Step int

const (
	StepDetails Step = iota
	StepEnrollment
	StepConfirmation

	stepCount = 3
)

var (
	ErrStepLocked      = errors.New("langkah belum bisa dibuka: langkah sebelumnya belum valid")
	ErrUnknownStep     = errors.New("langkah tidak dikenal")
	ErrDerivedValidity = errors.New("validitas langkah konfirmasi bersifat turunan")
	ErrNotSubmittable  = errors.New("wizard belum siap disubmit")
	ErrPayloadInvalid  = errors.New("payload kelas tidak valid")
	ErrScheduleInvalid = errors.New("jadwal tidak valid: jam harus HH:MM dan mulai sebelum selesai")
)

// ClassPayload: agregat seluruh langkah, disubmit sekali di akhir.
type ClassPayload struct {
	ClassName    string   `json:"class_name"    validate:"required,min=3,max=50"`
	AcademicYear string   `json:"academic_year" validate:"required,min=4,max=9"`
	UstadID      string   `json:"ustad_id"      validate:"required"`
	ScheduleDays []string `json:"schedule_days" validate:"required,min=1"`
	StartTime    string   `json:"start_time"    validate:"required"`
	EndTime      string   `json:"end_time"      validate:"required"`
	StudentIDs   []string `json:"student_ids"   validate:"required,min=1"`
}

// DetailsPatch: partial form state dari langkah Details (nil = tidak diubah).
type DetailsPatch struct {
	ClassName    *string
	AcademicYear *string
	UstadID      *string
	ScheduleDays []string
	StartTime    *string
	EndTime      *string
}

// ClassCreator: sisi server yang menerima submit wizard.
type ClassCreator interface {
	CreateClass(p ClassPayload) (classID string, err error)
}

type Wizard struct {
	current   Step
	visited   [stepCount]bool
	valid     [stepCount]bool
	payload   ClassPayload
	selection *selection.Selection
}

var validate = validator.New()

func New() *Wizard {
	w := &Wizard{selection: selection.New()}
	w.visited[StepDetails] = true
	return w
}

func (w *Wizard) Current() Step { return w.current }

// Selection dipakai langkah Enrollment (AddVisible / ReplaceWithFiltered dst).
func (w *Wizard) Selection() *selection.Selection { return w.selection }

func (w *Wizard) Payload() ClassPayload {
	p := w.payload
	p.StudentIDs = w.selection.IDs()
	return p
}

// MergeDetails menggabungkan partial form state ke payload agregat.
func (w *Wizard) MergeDetails(patch DetailsPatch) {
	if patch.ClassName != nil {
		w.payload.ClassName = *patch.ClassName
	}
	if patch.AcademicYear != nil {
		w.payload.AcademicYear = *patch.AcademicYear
	}
	if patch.UstadID != nil {
		w.payload.UstadID = *patch.UstadID
	}
	if patch.ScheduleDays != nil {
		w.payload.ScheduleDays = append([]string(nil), patch.ScheduleDays...)
	}
	if patch.StartTime != nil {
		w.payload.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		w.payload.EndTime = *patch.EndTime
	}
}

// SetStepValid dilaporkan tiap kali field berubah (validationChange).
// Confirmation tidak bisa di-set: nilainya turunan.
func (w *Wizard) SetStepValid(step Step, valid bool) error {
	switch step {
	case StepDetails, StepEnrollment:
		w.valid[step] = valid
		return nil
	case StepConfirmation:
		return ErrDerivedValidity
	default:
		return ErrUnknownStep
	}
}

// StepValid: valid(Confirmation) = valid(Details) AND valid(Enrollment).
func (w *Wizard) StepValid(step Step) bool {
	switch step {
	case StepDetails, StepEnrollment:
		return w.valid[step]
	case StepConfirmation:
		return w.valid[StepDetails] && w.valid[StepEnrollment]
	default:
		return false
	}
}

// CanEnter: langkah boleh dibuka kalau itu langkah aktif, sudah pernah
// dikunjungi, atau (maju satu langkah) langkah sebelumnya valid.
// Konfirmasi lebih ketat: masuk HANYA kalau validitas turunannya true —
// Details yang di-invalidkan belakangan menutup kembali langkah ini,
// sekalipun sudah pernah dikunjungi.
func (w *Wizard) CanEnter(step Step) bool {
	if step < 0 || step >= stepCount {
		return false
	}
	if step == StepConfirmation {
		reachable := step == w.current || w.visited[step] || w.current == StepEnrollment
		return reachable && w.StepValid(StepConfirmation)
	}
	if step <= w.current || w.visited[step] {
		return true
	}
	if step == w.current+1 {
		return w.StepValid(w.current)
	}
	return false
}

func (w *Wizard) GoTo(step Step) error {
	if step < 0 || step >= stepCount {
		return ErrUnknownStep
	}
	if !w.CanEnter(step) {
		return ErrStepLocked
	}
	w.current = step
	w.visited[step] = true
	return nil
}

// CanSubmit: valid(Details) ∧ valid(Enrollment) ∧ seleksi tidak kosong.
func (w *Wizard) CanSubmit() bool {
	return w.valid[StepDetails] && w.valid[StepEnrollment] && w.selection.IsValid()
}

// HasUnsavedChanges: guard konfirmasi saat user menutup wizard.
func (w *Wizard) HasUnsavedChanges() bool {
	return w.payload.ClassName != "" || w.payload.AcademicYear != "" || w.selection.IsValid()
}

// Submit memvalidasi ulang payload agregat secara utuh (pertahanan
// terhadap flag validitas parsial yang basi) lalu memanggil creator.
// Sukses → state di-reset; gagal → state dibiarkan supaya user bisa
// koreksi dan submit ulang.
func (w *Wizard) Submit(creator ClassCreator) (string, error) {
	if !w.CanSubmit() {
		return "", ErrNotSubmittable
	}

	p := w.Payload()
	if err := validate.Struct(p); err != nil {
		return "", errors.Join(ErrPayloadInvalid, err)
	}
	if !classService.IsValidClock(p.StartTime) || !classService.IsValidClock(p.EndTime) || p.StartTime >= p.EndTime {
		return "", ErrScheduleInvalid
	}

	classID, err := creator.CreateClass(p)
	if err != nil {
		return "", err
	}

	w.Reset()
	return classID, nil
}

// Reset mengembalikan seluruh state lokal ke nilai awal.
func (w *Wizard) Reset() {
	w.current = StepDetails
	w.visited = [stepCount]bool{}
	w.visited[StepDetails] = true
	w.valid = [stepCount]bool{}
	w.payload = ClassPayload{}
	w.selection = selection.New()
}
