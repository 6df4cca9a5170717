// file: internals/features/messages/controller/message_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/messages/dto"
	"pesantrenku_backend/internals/features/messages/model"
	helper "pesantrenku_backend/internals/helpers"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

var validate = validator.New()

// POST /api/u/messages
func (ctrl *MessageController) SendMessage(c *fiber.Ctx) error {
	senderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Body = strings.TrimSpace(req.Body)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationJSON(c, err)
	}
	if req.RecipientID == senderID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa mengirim pesan ke diri sendiri")
	}

	type row struct {
		IsActive bool
	}
	var recipient row
	if err := ctrl.DB.Table("users").
		Select("is_active").
		Where("id = ?", req.RecipientID).
		Take(&recipient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penerima tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa penerima")
	}
	if !recipient.IsActive {
		return helper.JsonError(c, fiber.StatusNotFound, "Penerima tidak aktif")
	}

	m := req.ToModel(senderID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	return helper.JsonCreated(c, "Pesan terkirim", dto.NewMessageResponse(m))
}

// GET /api/u/messages/conversation/:peerId
// Hanya percakapan yang melibatkan caller sendiri; terbaru dulu.
func (ctrl *MessageController) GetConversation(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	peerID, err := uuid.Parse(strings.TrimSpace(c.Params("peerId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	paging := helper.ResolvePaging(c, 30, 100)

	tx := ctrl.DB.Model(&model.MessageModel{}).
		Where("(message_sender_id = ? AND message_recipient_id = ?) OR (message_sender_id = ? AND message_recipient_id = ?)",
			callerID, peerID, peerID, callerID)

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total pesan")
	}

	var rows []model.MessageModel
	if err := tx.Order("message_created_at DESC, message_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	items := make([]*dto.MessageResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewMessageResponse(&rows[i]))
	}

	return helper.JsonList(c, "Percakapan diterima", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/u/messages/:id/read
// Hanya penerima yang boleh menandai terbaca.
func (ctrl *MessageController) MarkRead(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	messageID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.MessageModel
	if err := ctrl.DB.First(&m, "message_id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}
	if m.MessageRecipientID != callerID {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya penerima yang boleh menandai pesan terbaca")
	}

	if m.MessageReadAt == nil {
		now := time.Now()
		if err := ctrl.DB.Model(&model.MessageModel{}).
			Where("message_id = ? AND message_read_at IS NULL", m.MessageID).
			Update("message_read_at", now).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pesan")
		}
		m.MessageReadAt = &now
	}

	return helper.JsonUpdated(c, "Pesan ditandai terbaca", dto.NewMessageResponse(&m))
}
