package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
)

// CreationBlockingStatuses คือสถานะที่กันช่วงเวลาไว้ตอนสร้างการจองใหม่
// (pending กันช่วงเวลาไว้ชั่วคราวจนกว่าจะถูกอนุมัติหรือปฏิเสธ)
func CreationBlockingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingApproved, BookingConfirmed}
}

// ApprovalBlockingStatuses คือสถานะที่กันช่วงเวลาไว้ตอนอนุมัติ
// pending ด้วยกันเองไม่กัน เพราะยังไม่ได้เป็นเจ้าของช่วงเวลา
func ApprovalBlockingStatuses() []BookingStatus {
	return []BookingStatus{BookingApproved, BookingConfirmed}
}

type Booking struct {
	BookingID   string    `gorm:"primaryKey;size:36" json:"bookingId"`
	RoomID      uint      `gorm:"not null;index" json:"roomId"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `json:"description"`
	// ช่วงเวลาแบบ half-open: [StartDatetime, EndDatetime)
	StartDatetime time.Time     `gorm:"not null;index" json:"startDatetime"`
	EndDatetime   time.Time     `gorm:"not null" json:"endDatetime"`
	Status        BookingStatus `gorm:"size:20;not null;default:pending;index" json:"status"`

	OrganizerID *uint  `json:"organizerId"`
	CreatedBy   string `gorm:"size:100" json:"createdBy"`

	NeedsRefreshment bool   `gorm:"default:false" json:"needsRefreshment"`
	RefreshmentSets  *int   `json:"refreshmentSets"`
	RefreshmentNote  string `json:"refreshmentNote"`

	ApprovedBy     *string    `gorm:"size:100" json:"approvedBy"`
	ApprovedAt     *time.Time `json:"approvedAt"`
	RejectedReason *string    `gorm:"size:255" json:"rejectedReason"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room         Room          `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE" json:"room,omitempty"`
	Organizer    *User         `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Participants []Participant `gorm:"foreignKey:BookingID" json:"participants,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == "" {
		b.BookingID = uuid.NewString()
	}
	return nil
}

type Participant struct {
	ParticipantID    uint      `gorm:"primaryKey" json:"participantId"`
	BookingID        string    `gorm:"size:36;not null;index" json:"bookingId"`
	ParticipantName  string    `gorm:"size:100;not null" json:"participantName"`
	ParticipantEmail *string   `gorm:"size:100" json:"participantEmail"`
	AddedAt          time.Time `gorm:"autoCreateTime" json:"addedAt"`
}

type ParticipantInput struct {
	ParticipantName  string  `json:"participantName" validate:"required,max=100"`
	ParticipantEmail *string `json:"participantEmail" validate:"omitempty,email"`
}

type CreateBookingInput struct {
	RoomID        uint      `json:"roomId" validate:"required,gt=0"`
	Title         string    `json:"title" validate:"required,max=200"`
	Description   string    `json:"description"`
	StartDatetime time.Time `json:"startDatetime" validate:"required"`
	EndDatetime   time.Time `json:"endDatetime" validate:"required,gtfield=StartDatetime"`
	OrganizerID   uint      `json:"organizerId" validate:"required,gt=0"`
	CreatedBy     string    `json:"createdBy" validate:"omitempty,max=100"`

	NeedsRefreshment bool   `json:"needsRefreshment"`
	RefreshmentSets  *int   `json:"refreshmentSets" validate:"omitempty,min=1"`
	RefreshmentNote  string `json:"refreshmentNote"`

	Participants []ParticipantInput `json:"participants" validate:"omitempty,dive"`
}

type UpdateBookingInput struct {
	Title        *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string             `json:"description"`
	Participants *[]ParticipantInput `json:"participants" validate:"omitempty,dive"`
}

type ApproveBookingInput struct {
	ApprovedBy string `json:"approvedBy" validate:"required,max=100"`
}

type RejectBookingInput struct {
	RejectedBy     string `json:"rejectedBy" validate:"required,max=100"`
	RejectedReason string `json:"rejectedReason" validate:"omitempty,max=255"`
}

type BookingHistoryFilter struct {
	Pagination
	Status    string `query:"status"`
	RoomID    uint   `query:"roomId"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}
