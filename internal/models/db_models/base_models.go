package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate fills the ID and timestamp when the caller did not.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.Stamp()
	return nil
}

// Stamp assigns an ID and creation time if they are unset. Stores that do not
// run gorm hooks call it directly.
func (b *BaseModel) Stamp() {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
}
