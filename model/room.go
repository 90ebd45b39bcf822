package model

type RoomStatus string

const (
	RoomActive   RoomStatus = "active"
	RoomInactive RoomStatus = "inactive"
)

type Room struct {
	DTO
	RoomName  string     `gorm:"size:100;uniqueIndex;not null" json:"roomName"`
	Capacity  int        `gorm:"not null" json:"capacity"`
	Equipment string     `json:"equipment"`
	Status    RoomStatus `gorm:"size:20;not null;default:active" json:"status"`

	Bookings []Booking     `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
	Closures []RoomClosure `gorm:"foreignKey:RoomID" json:"closures,omitempty"`
}

type CreateRoomInput struct {
	RoomName  string `json:"roomName" validate:"required,max=100"`
	Capacity  int    `json:"capacity" validate:"required,min=1,max=1000"`
	Equipment string `json:"equipment"`
}

type EditRoomInput struct {
	RoomName  *string `json:"roomName" validate:"omitempty,min=1,max=100"`
	Capacity  *int    `json:"capacity" validate:"omitempty,min=1,max=1000"`
	Equipment *string `json:"equipment"`
}

// RoomWithUsage แนบจำนวนการจองล่วงหน้าไว้กับข้อมูลห้อง
type RoomWithUsage struct {
	Room
	UpcomingBookings int64 `json:"upcomingBookings"`
}
