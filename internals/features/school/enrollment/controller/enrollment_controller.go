package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userService "pesantrenku_backend/internals/features/users/user/service"
	helper "pesantrenku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

func filterFromQuery(c *fiber.Ctx) userService.StudentFilter {
	// filter dipassing eksplisit dari query, bukan state ambient
	return userService.StudentFilter{
		EntryYear: c.Query("entry_year", "all"),
		Status:    c.Query("status", "all"),
		Search:    c.Query("search"),
	}
}

/* ================= Handlers ================= */

// GET /api/a/enrollment/santri
// Daftar santri kanonik (hasil reconcile dua format), terfilter + paginated.
// Total dihitung atas set terfilter SEBELUM pagination.
func (ctrl *EnrollmentController) ListSantri(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	all, err := userService.LoadAllStudents(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	filtered := userService.FilterStudents(all, filterFromQuery(c))
	pageItems, total := userService.PaginateStudents(filtered, paging.Page, paging.PerPage)

	return helper.JsonList(c, "Data santri diterima", pageItems,
		helper.BuildPaginationFromPage(int64(total), paging.Page, paging.PerPage))
}

// GET /api/a/enrollment/santri/ids
// Seluruh id hasil filter TANPA pagination — sumber untuk aksi
// "pilih semua hasil filter" (selection.ReplaceWithFiltered).
func (ctrl *EnrollmentController) ListSantriIDs(c *fiber.Ctx) error {
	all, err := userService.LoadAllStudents(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	filtered := userService.FilterStudents(all, filterFromQuery(c))
	ids := make([]string, 0, len(filtered))
	for _, s := range filtered {
		ids = append(ids, s.ID)
	}

	return helper.JsonOK(c, "Id santri diterima", fiber.Map{
		"student_ids": ids,
		"total":       len(ids),
	})
}
