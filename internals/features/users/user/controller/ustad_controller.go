package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/users/user/dto"
	"pesantrenku_backend/internals/features/users/user/model"
	helper "pesantrenku_backend/internals/helpers"
)

type UstadController struct {
	DB *gorm.DB
}

func NewUstadController(db *gorm.DB) *UstadController {
	return &UstadController{DB: db}
}

// GET /api/a/ustad
// Direktori ustad + current_classes (jumlah kelas aktif yang diampu; display only).
func (ctrl *UstadController) ListUstad(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	tx := ctrl.DB.Model(&model.UserModel{}).
		Where("role = ? AND is_active = TRUE", constants.RoleUstad)
	if search != "" {
		s := "%" + search + "%"
		tx = tx.Where("(LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?)", s, s)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []model.UserModel
	if err := tx.Order("user_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ustad")
	}

	// hitung kelas aktif per ustad untuk halaman ini
	counts := map[uuid.UUID]int{}
	if len(rows) > 0 {
		ids := make([]uuid.UUID, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
		type countRow struct {
			UstadID uuid.UUID `gorm:"column:class_ustad_id"`
			N       int       `gorm:"column:n"`
		}
		var crs []countRow
		if err := ctrl.DB.Table("classes").
			Select("class_ustad_id, COUNT(*) AS n").
			Where("class_ustad_id IN ? AND class_status = 'active'", ids).
			Group("class_ustad_id").
			Scan(&crs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas ustad")
		}
		for _, cr := range crs {
			counts[cr.UstadID] = cr.N
		}
	}

	items := make([]dto.UstadResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.UstadResponse{
			ID:             r.ID,
			UserName:       r.UserName,
			Email:          r.Email,
			Phone:          r.Phone,
			Specialization: r.Specialization,
			CurrentClasses: counts[r.ID],
		})
	}

	return helper.JsonList(c, "Data ustad diterima", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
