package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	enrollmentController "pesantrenku_backend/internals/features/school/enrollment/controller"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

// EnrollmentAdminRoutes: view pemilihan santri untuk wizard kelas.
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("pendaftaran santri"), constants.AdminOnly...)

	santri := r.Group("/enrollment/santri", adminOnly)
	santri.Get("/", ctrl.ListSantri)
	santri.Get("/ids", ctrl.ListSantriIDs)
}
