package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "pesantrenku_backend/internals/features/school/classes/route"
	enrollmentRoute "pesantrenku_backend/internals/features/school/enrollment/route"
	reportRoute "pesantrenku_backend/internals/features/school/reports/route"
)

// SchoolAdminRoutes: seluruh fitur kelola sekolah di bawah /api/a.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classRoute.ClassAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
}

// SchoolUserRoutes: baca laporan sesuai lingkup role di bawah /api/u.
func SchoolUserRoutes(private fiber.Router, db *gorm.DB) {
	reportRoute.ReportUserRoutes(private, db)
}
