// file: internals/features/messages/model/message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Pesan langsung antar user. Penyimpanan saja: push/real-time ditangani
// layer lain.
type MessageModel struct {
	MessageID          uuid.UUID  `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"message_id"`
	MessageSenderID    uuid.UUID  `gorm:"column:message_sender_id;type:uuid;not null;index" json:"message_sender_id"`
	MessageRecipientID uuid.UUID  `gorm:"column:message_recipient_id;type:uuid;not null;index" json:"message_recipient_id"`
	MessageBody        string     `gorm:"column:message_body;type:text;not null" json:"message_body"`
	MessageReadAt      *time.Time `gorm:"column:message_read_at" json:"message_read_at,omitempty"`
	MessageCreatedAt   time.Time  `gorm:"column:message_created_at;autoCreateTime;index" json:"message_created_at"`
}

func (MessageModel) TableName() string { return "messages" }
