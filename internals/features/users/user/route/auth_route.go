package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	userController "pesantrenku_backend/internals/features/users/user/controller"
	"pesantrenku_backend/internals/middlewares"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

// AuthRoutes: login publik (rate-limited), register khusus admin.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/register",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("registrasi user"), constants.AdminOnly...),
		ctrl.Register,
	)
}

// UstadAdminRoutes: direktori ustad untuk wizard pemilihan pengampu.
func UstadAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUstadController(db)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("direktori ustad"), constants.AdminOnly...)
	r.Get("/ustad", adminOnly, ctrl.ListUstad)
}
