package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity carries the numeric primary key and the secondary GUID every
// persisted record gets at creation.
type Entity struct {
	ID   uint   `gorm:"primaryKey"`
	Guid string `gorm:"size:36;not null;uniqueIndex"`
}

func (e *Entity) BeforeCreate(tx *gorm.DB) (err error) {
	if e.Guid == "" {
		e.Guid = uuid.New().String()
	}
	return
}
