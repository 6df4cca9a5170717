package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageController "pesantrenku_backend/internals/features/messages/controller"
)

// MessageUserRoutes: semua role terautentikasi boleh berkirim pesan;
// lingkup percakapan dijaga di controller.
func MessageUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := messageController.NewMessageController(db)

	messages := r.Group("/messages")
	messages.Post("/", ctrl.SendMessage)
	messages.Get("/conversation/:peerId", ctrl.GetConversation)
	messages.Put("/:id/read", ctrl.MarkRead)
}
