package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	reportController "pesantrenku_backend/internals/features/school/reports/controller"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

// ReportAdminRoutes: kelola laporan oleh admin & ustad (ustad di-scope
// ke kelasnya sendiri di controller).
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	manageRoles := authMiddleware.OnlyRoles(constants.RoleErrorUstad("kelola laporan"), constants.UstadAndAbove...)

	reports := r.Group("/reports")
	reports.Get("/", manageRoles, ctrl.ListReports)
	reports.Post("/", manageRoles, ctrl.CreateReport)
	reports.Put("/:id", manageRoles, ctrl.UpdateReport)
	reports.Delete("/:id", manageRoles, ctrl.DeleteReport)
}

// ReportUserRoutes: baca laporan sesuai lingkup role masing-masing.
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	r.Get("/reports", ctrl.ListMyReports)
}
