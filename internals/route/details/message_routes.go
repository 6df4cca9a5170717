package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageRoute "pesantrenku_backend/internals/features/messages/route"
)

// MessageUserRoutes: pesan langsung antar user di bawah /api/u.
func MessageUserRoutes(private fiber.Router, db *gorm.DB) {
	messageRoute.MessageUserRoutes(private, db)
}
