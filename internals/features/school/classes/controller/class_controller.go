package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/school/classes/dto"
	"pesantrenku_backend/internals/features/school/classes/model"
	"pesantrenku_backend/internals/features/school/classes/service"
	userService "pesantrenku_backend/internals/features/users/user/service"
	helper "pesantrenku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// single validator instance for this package
var validate = validator.New()

/* ================= Helpers ================= */

func validateScheduleTimes(s *dto.ScheduleDTO) error {
	if !service.IsValidClock(s.StartTime) || !service.IsValidClock(s.EndTime) {
		return fiber.NewError(fiber.StatusBadRequest, "Jam harus format HH:MM (24 jam)")
	}
	if s.StartTime >= s.EndTime {
		return fiber.NewError(fiber.StatusBadRequest, "Jam mulai harus sebelum jam selesai")
	}
	return nil
}

// resolveUstad memastikan id mengacu ke user aktif dengan role ustad.
func resolveUstad(tx *gorm.DB, ustadID uuid.UUID) (name string, err error) {
	type row struct {
		UserName string
		Role     string
		IsActive bool
	}
	var r row
	if err := tx.Table("users").
		Select("user_name, role, is_active").
		Where("id = ?", ustadID).
		Take(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(fiber.StatusNotFound, "Ustad tidak ditemukan")
		}
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data ustad")
	}
	if r.Role != constants.RoleUstad || !r.IsActive {
		return "", fiber.NewError(fiber.StatusNotFound, "User tersebut bukan ustad aktif")
	}
	return r.UserName, nil
}

// checkDuplicateTriple: (name, academic_year, ustad_id) unik di antara kelas aktif.
func checkDuplicateTriple(tx *gorm.DB, name, year string, ustadID uuid.UUID, excludeID *uuid.UUID) error {
	q := tx.Model(&model.ClassModel{}).
		Where("LOWER(class_name) = LOWER(?) AND class_academic_year = ? AND class_ustad_id = ? AND class_status = 'active'",
			name, year, ustadID)
	if excludeID != nil {
		q = q.Where("class_id <> ?", *excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa duplikasi kelas")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Kelas dengan nama, tahun ajaran, dan ustad yang sama sudah ada")
	}
	return nil
}

// updatePlan memetakan partial update ke pengecekan yang harus jalan.
// Semua jalur yang menjalankan cek bentrok ATAU cek duplikat triple harus
// memegang advisory lock per-ustad dulu, supaya dua update/create untuk
// ustad yang sama tidak sama-sama lolos pengecekan sebelum commit.
type updatePlan struct {
	UstadChanged    bool
	ScheduleChanged bool
	TripleChanged   bool
}

func planUpdate(req *dto.UpdateClassRequest, currentUstadID uuid.UUID) updatePlan {
	p := updatePlan{
		ScheduleChanged: req.Schedule != nil,
	}
	p.UstadChanged = req.UstadID != nil && *req.UstadID != currentUstadID
	p.TripleChanged = req.ClassName != nil || req.AcademicYear != nil || p.UstadChanged
	return p
}

func (p updatePlan) NeedsConflictCheck() bool { return p.ScheduleChanged || p.UstadChanged }

func (p updatePlan) NeedsLock() bool { return p.NeedsConflictCheck() || p.TripleChanged }

func validateStudentIDs(tx *gorm.DB, ids []string) error {
	_, missing, err := userService.FindStudentsByIDs(tx, ids)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memvalidasi data santri")
	}
	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Santri tidak ditemukan: "+strings.Join(missing, ", "))
	}
	return nil
}

/* ================= Handlers ================= */

// POST /api/a/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminName := helper.GetUserNameFromToken(c)

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ClassName = strings.TrimSpace(req.ClassName)
	req.AcademicYear = strings.TrimSpace(req.AcademicYear)

	if err := validate.Struct(req); err != nil {
		return helper.ValidationJSON(c, err)
	}
	if err := validateScheduleTimes(&req.Schedule); err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Serialisasi per-ustad: cek bentrok & duplikat aman dari race.
	if err := service.LockUstadSchedule(tx, req.UstadID); err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunci jadwal ustad")
	}

	ustadName, err := resolveUstad(tx, req.UstadID)
	if err != nil {
		tx.Rollback()
		return helper.FromFiberError(c, err)
	}

	if err := validateStudentIDs(tx, req.StudentIDs); err != nil {
		tx.Rollback()
		return helper.FromFiberError(c, err)
	}

	conflict, err := service.CheckScheduleConflict(tx, req.UstadID, service.ProposedSchedule{
		Days:      req.Schedule.Days,
		StartTime: req.Schedule.StartTime,
		EndTime:   req.Schedule.EndTime,
	}, nil)
	if err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa bentrok jadwal")
	}
	if conflict.Conflict {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusConflict,
			"Jadwal bentrok dengan kelas "+conflict.ClassName+" ("+conflict.ConflictStart+"-"+conflict.ConflictEnd+")")
	}

	if err := checkDuplicateTriple(tx, req.ClassName, req.AcademicYear, req.UstadID, nil); err != nil {
		tx.Rollback()
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel(ustadName, adminID, adminName)
	if err := tx.Create(m).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data kelas")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", fiber.Map{
		"class_id":   m.ClassID,
		"class_data": dto.NewClassResponse(m),
	})
}

// GET /api/a/classes
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListClassQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.Model(&model.ClassModel{})
	if q.AcademicYear != nil && strings.TrimSpace(*q.AcademicYear) != "" {
		tx = tx.Where("class_academic_year = ?", strings.TrimSpace(*q.AcademicYear))
	}
	if q.UstadID != nil {
		tx = tx.Where("class_ustad_id = ?", *q.UstadID)
	}
	// defense in depth: ustad hanya boleh melihat kelasnya sendiri,
	// apapun filter yang diminta
	if role == constants.RoleUstad {
		tx = tx.Where("class_ustad_id = ?", callerID)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	// urutan deterministik: terbaru dulu, tiebreak id
	var rows []model.ClassModel
	if err := tx.Order("class_created_at DESC, class_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	items := make([]*dto.ClassResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewClassResponse(&rows[i]))
	}

	return helper.JsonList(c, "Data kelas diterima", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/classes/:id
func (ctrl *ClassController) GetClassByID(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassModel
	if err := ctrl.DB.First(&m, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if role == constants.RoleUstad && m.ClassUstadID != callerID {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh mengakses kelas ustad lain")
	}

	return helper.JsonOK(c, "Data diterima", dto.NewClassResponse(&m))
}

// PUT /api/a/classes/:id
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminName := helper.GetUserNameFromToken(c)

	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ClassName != nil {
		trimmed := strings.TrimSpace(*req.ClassName)
		req.ClassName = &trimmed
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationJSON(c, err)
	}
	if req.Schedule != nil {
		if err := validate.Struct(req.Schedule); err != nil {
			return helper.ValidationJSON(c, err)
		}
		if err := validateScheduleTimes(req.Schedule); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Lock row supaya update konkuren atas kelas yang sama terserialisasi
	var existing model.ClassModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&existing, "class_id = ?", classID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// ustad efektif setelah update
	effectiveUstad := existing.ClassUstadID
	if req.UstadID != nil {
		effectiveUstad = *req.UstadID
	}

	plan := planUpdate(&req, existing.ClassUstadID)

	// lock diambil SEBELUM cek bentrok maupun cek duplikat triple
	if plan.NeedsLock() {
		if err := service.LockUstadSchedule(tx, effectiveUstad); err != nil {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunci jadwal ustad")
		}
	}

	if plan.UstadChanged {
		name, err := resolveUstad(tx, effectiveUstad)
		if err != nil {
			tx.Rollback()
			return helper.FromFiberError(c, err)
		}
		existing.ClassUstadName = name
	}

	if plan.NeedsConflictCheck() {
		proposed := service.ProposedSchedule{
			Days:      []string(existing.ClassScheduleDays),
			StartTime: existing.ClassStartTime,
			EndTime:   existing.ClassEndTime,
		}
		if req.Schedule != nil {
			proposed = service.ProposedSchedule{
				Days:      req.Schedule.Days,
				StartTime: req.Schedule.StartTime,
				EndTime:   req.Schedule.EndTime,
			}
		}

		conflict, err := service.CheckScheduleConflict(tx, effectiveUstad, proposed, &classID)
		if err != nil {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa bentrok jadwal")
		}
		if conflict.Conflict {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusConflict,
				"Jadwal bentrok dengan kelas "+conflict.ClassName+" ("+conflict.ConflictStart+"-"+conflict.ConflictEnd+")")
		}
	}

	// duplikat triple dicek ulang kalau salah satu komponennya berubah
	if plan.TripleChanged {
		name := existing.ClassName
		if req.ClassName != nil {
			name = *req.ClassName
		}
		year := existing.ClassAcademicYear
		if req.AcademicYear != nil {
			year = *req.AcademicYear
		}
		if err := checkDuplicateTriple(tx, name, year, effectiveUstad, &classID); err != nil {
			tx.Rollback()
			return helper.FromFiberError(c, err)
		}
	}

	// student_ids hanya divalidasi ulang kalau dikirim (partial update)
	if req.StudentIDs != nil {
		if err := validateStudentIDs(tx, req.StudentIDs); err != nil {
			tx.Rollback()
			return helper.FromFiberError(c, err)
		}
	}

	req.ApplyToModel(&existing, adminID, adminName)

	if err := tx.Model(&model.ClassModel{}).
		Where("class_id = ?", existing.ClassID).
		Updates(&existing).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", fiber.Map{
		"class_id":    existing.ClassID,
		"update_data": dto.NewClassResponse(&existing),
	})
}

// DELETE /api/a/classes/:id
// Hard delete: kelas tidak punya tombstone (beda dengan reports yang
// di-snapshot dulu sebelum dihapus). Laporan yang mereferensikan kelas
// ini tidak ikut dihapus.
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var m model.ClassModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "class_id = ?", classID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := tx.Delete(&model.ClassModel{}, "class_id = ?", classID).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{
		"class_id": m.ClassID,
	})
}
