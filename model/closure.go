package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomClosure ปิดห้องชั่วคราวตามช่วงเวลา [StartDatetime, EndDatetime)
// ห้องเดียวกันห้ามมีรายการปิดที่ทับซ้อนกัน
type RoomClosure struct {
	ClosureID     string    `gorm:"primaryKey;size:36" json:"closureId"`
	RoomID        uint      `gorm:"not null;index" json:"roomId"`
	StartDatetime time.Time `gorm:"not null" json:"startDatetime"`
	EndDatetime   time.Time `gorm:"not null" json:"endDatetime"`
	Reason        string    `gorm:"size:255;not null" json:"reason"`
	CreatedBy     string    `gorm:"size:100;not null" json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Room Room `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE" json:"room,omitempty"`
}

func (rc *RoomClosure) BeforeCreate(tx *gorm.DB) error {
	if rc.ClosureID == "" {
		rc.ClosureID = uuid.NewString()
	}
	return nil
}

type CreateClosureInput struct {
	RoomID        uint      `json:"roomId" validate:"required,gt=0"`
	StartDatetime time.Time `json:"startDatetime" validate:"required"`
	EndDatetime   time.Time `json:"endDatetime" validate:"required,gtfield=StartDatetime"`
	Reason        string    `json:"reason" validate:"required,max=255"`
	CreatedBy     string    `json:"createdBy" validate:"required,max=100"`
}

type UpdateClosureInput struct {
	RoomID        *uint      `json:"roomId" validate:"omitempty,gt=0"`
	StartDatetime *time.Time `json:"startDatetime"`
	EndDatetime   *time.Time `json:"endDatetime"`
	Reason        *string    `json:"reason" validate:"omitempty,min=1,max=255"`
	CreatedBy     *string    `json:"createdBy" validate:"omitempty,min=1,max=100"`
}
