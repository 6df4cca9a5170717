package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	classController "pesantrenku_backend/internals/features/school/classes/controller"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

// ClassAdminRoutes: mutasi kelas khusus admin; baca boleh admin & ustad
// (ustad di-scope ke kelasnya sendiri di controller).
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kelola kelas"), constants.AdminOnly...)
	readRoles := authMiddleware.OnlyRoles(constants.RoleErrorUstad("lihat kelas"), constants.UstadAndAbove...)

	classes := r.Group("/classes")
	classes.Get("/", readRoles, ctrl.ListClasses)
	classes.Get("/:id", readRoles, ctrl.GetClassByID)
	classes.Post("/", adminOnly, ctrl.CreateClass)
	classes.Post("/check-conflict", adminOnly, ctrl.CheckConflict)
	classes.Put("/:id", adminOnly, ctrl.UpdateClass)
	classes.Delete("/:id", adminOnly, ctrl.DeleteClass)
}
