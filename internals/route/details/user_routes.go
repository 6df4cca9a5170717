package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "pesantrenku_backend/internals/features/users/user/route"
)

// AuthRoutes dipasang langsung di app (login tidak lewat group private).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	userRoute.AuthRoutes(app, db)
}

// UserAdminRoutes: direktori ustad di bawah /api/a.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UstadAdminRoutes(admin, db)
}
