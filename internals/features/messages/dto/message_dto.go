// file: internals/features/messages/dto/message_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/messages/model"
)

type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Body        string    `json:"body"         validate:"required,min=1,max=2000"`
}

type MessageResponse struct {
	MessageID   uuid.UUID  `json:"message_id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewMessageResponse(m *model.MessageModel) *MessageResponse {
	return &MessageResponse{
		MessageID:   m.MessageID,
		SenderID:    m.MessageSenderID,
		RecipientID: m.MessageRecipientID,
		Body:        m.MessageBody,
		ReadAt:      m.MessageReadAt,
		CreatedAt:   m.MessageCreatedAt,
	}
}

func (r *SendMessageRequest) ToModel(senderID uuid.UUID) *model.MessageModel {
	return &model.MessageModel{
		MessageSenderID:    senderID,
		MessageRecipientID: r.RecipientID,
		MessageBody:        r.Body,
	}
}
