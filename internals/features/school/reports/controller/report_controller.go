// file: internals/features/school/reports/controller/report_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/school/reports/dto"
	"pesantrenku_backend/internals/features/school/reports/model"
	userService "pesantrenku_backend/internals/features/users/user/service"
	helper "pesantrenku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

var validate = validator.New()

/* ================= Helpers ================= */

// classOwnedBy memastikan kelas ada dan (untuk ustad) diasuh caller.
func classOwnedBy(tx *gorm.DB, classID, callerID uuid.UUID, role string) (ustadID uuid.UUID, err error) {
	type row struct {
		ClassUstadID uuid.UUID
	}
	var r row
	if err := tx.Table("classes").
		Select("class_ustad_id").
		Where("class_id = ?", classID).
		Take(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	if role == constants.RoleUstad && r.ClassUstadID != callerID {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Tidak boleh membuat laporan untuk kelas ustad lain")
	}
	return r.ClassUstadID, nil
}

// childIDsOf mengambil id santri milik orangtua, lewat rekonsiliasi
// supaya anak yang masih tersimpan di payload lama ikut terbawa.
func childIDsOf(db *gorm.DB, parentID uuid.UUID) ([]string, error) {
	students, err := userService.LoadAllStudents(db)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, s := range students {
		if s.ParentID != nil && *s.ParentID == parentID {
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

func (ctrl *ReportController) findOwnedReport(tx *gorm.DB, reportID, callerID uuid.UUID, role string) (*model.ReportModel, error) {
	var m model.ReportModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "report_id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data laporan")
	}
	if role == constants.RoleUstad && m.ReportUstadID != callerID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Tidak boleh mengubah laporan ustad lain")
	}
	return &m, nil
}

/* ================= Handlers ================= */

// POST /api/a/reports
func (ctrl *ReportController) CreateReport(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	callerName := helper.GetUserNameFromToken(c)

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationJSON(c, err)
	}

	ustadID, err := classOwnedBy(ctrl.DB, req.ClassID, callerID, role)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	found, _, err := userService.FindStudentsByIDs(ctrl.DB, []string{req.SantriID.String()})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memvalidasi data santri")
	}
	if _, ok := found[req.SantriID.String()]; !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Santri tidak ditemukan")
	}

	m := req.ToModel(ustadID, callerID, callerName)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat laporan")
	}

	return helper.JsonCreated(c, "Laporan berhasil dibuat", fiber.Map{
		"report_id":   m.ReportID,
		"report_data": dto.NewReportResponse(m),
	})
}

// GET /api/a/reports
func (ctrl *ReportController) ListReports(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListReportQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.ReportModel{})
	if q.SantriID != nil {
		tx = tx.Where("report_santri_id = ?", *q.SantriID)
	}
	if q.ClassID != nil {
		tx = tx.Where("report_class_id = ?", *q.ClassID)
	}
	if q.Type != nil && strings.TrimSpace(*q.Type) != "" {
		t := strings.TrimSpace(*q.Type)
		if !model.IsValidReportType(t) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis laporan tidak dikenal")
		}
		tx = tx.Where("report_type = ?", t)
	}
	if role == constants.RoleUstad {
		tx = tx.Where("report_ustad_id = ?", callerID)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []model.ReportModel
	if err := tx.Order("report_created_at DESC, report_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data laporan")
	}

	items := make([]*dto.ReportResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewReportResponse(&rows[i]))
	}

	return helper.JsonList(c, "Data laporan diterima", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/reports — lingkup per role: ustad kelas sendiri, orangtua
// anak sendiri. Santri melihat laporan dirinya.
func (ctrl *ReportController) ListMyReports(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.DB.Model(&model.ReportModel{})

	switch role {
	case constants.RoleAdmin:
		// tanpa filter
	case constants.RoleUstad:
		tx = tx.Where("report_ustad_id = ?", callerID)
	case constants.RoleSantri:
		tx = tx.Where("report_santri_id = ?", callerID)
	case constants.RoleOrangtua:
		childIDs, err := childIDsOf(ctrl.DB, callerID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
		}
		if len(childIDs) == 0 {
			return helper.JsonList(c, "Data laporan diterima", []*dto.ReportResponse{},
				helper.BuildPaginationFromPage(0, paging.Page, paging.PerPage))
		}
		tx = tx.Where("report_santri_id IN ?", childIDs)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []model.ReportModel
	if err := tx.Order("report_created_at DESC, report_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data laporan")
	}

	items := make([]*dto.ReportResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewReportResponse(&rows[i]))
	}

	return helper.JsonList(c, "Data laporan diterima", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/a/reports/:id
func (ctrl *ReportController) UpdateReport(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	callerName := helper.GetUserNameFromToken(c)

	reportID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationJSON(c, err)
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

	m, err := ctrl.findOwnedReport(tx, reportID, callerID, role)
	if err != nil {
		tx.Rollback()
		return helper.FromFiberError(c, err)
	}

	req.ApplyToModel(m, callerID, callerName)

	if err := tx.Model(&model.ReportModel{}).
		Where("report_id = ?", m.ReportID).
		Updates(m).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui laporan")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Laporan berhasil diperbarui", fiber.Map{
		"report_id":   m.ReportID,
		"update_data": dto.NewReportResponse(m),
	})
}

// DELETE /api/a/reports/:id
// Laporan di-snapshot utuh ke report_audits sebelum dihapus, satu
// transaksi: kalau snapshot gagal, hapus ikut batal.
func (ctrl *ReportController) DeleteReport(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	callerName := helper.GetUserNameFromToken(c)

	reportID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
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

	m, err := ctrl.findOwnedReport(tx, reportID, callerID, role)
	if err != nil {
		tx.Rollback()
		return helper.FromFiberError(c, err)
	}

	snapshot, err := sonic.Marshal(m)
	if err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat snapshot laporan")
	}

	audit := model.ReportAuditModel{
		ReportAuditReportID:      m.ReportID,
		ReportAuditSnapshot:      snapshot,
		ReportAuditDeletedBy:     callerID,
		ReportAuditDeletedByName: callerName,
	}
	if err := tx.Create(&audit).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jejak audit")
	}

	if err := tx.Delete(&model.ReportModel{}, "report_id = ?", m.ReportID).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus laporan")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Laporan berhasil dihapus", fiber.Map{
		"report_id":       m.ReportID,
		"report_audit_id": audit.ReportAuditID,
	})
}
