package helper

import (
	"errors"

	"github.com/Armboy122/meetingroom/model"
	"gorm.io/gorm"
)

// firstBlockingBooking หาการจองรายการแรกในสถานะที่กำหนดซึ่งทับกับช่วงเวลา iv
// เงื่อนไข start_datetime < iv.End AND end_datetime > iv.Start
// คือ Overlaps แบบ half-open ตัวเดียวกันในรูป SQL
func firstBlockingBooking(tx *gorm.DB, roomID uint, iv Interval, statuses []model.BookingStatus, excludeBookingID string) (*model.Booking, error) {
	q := tx.Model(&model.Booking{}).
		Where("room_id = ? AND status IN ?", roomID, statuses).
		Where("start_datetime < ? AND end_datetime > ?", iv.End, iv.Start)
	if excludeBookingID != "" {
		q = q.Where("booking_id <> ?", excludeBookingID)
	}

	var blocking model.Booking
	if err := q.Order("start_datetime ASC").First(&blocking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blocking, nil
}

// CanCreateBooking ตรวจว่าสร้างการจองใหม่ในช่วงเวลา iv ได้หรือไม่
// pending / approved / confirmed กันช่วงเวลาทั้งหมด (pending จองช่วงเวลาไว้
// ชั่วคราว กันคนสองคนขอช่วงเดียวกันพร้อมกัน) ส่วน rejected ไม่กันเสมอ
// คืน nil เมื่อว่าง, *ConflictError เมื่อชน
func CanCreateBooking(tx *gorm.DB, roomID uint, iv Interval, excludeBookingID string) error {
	if !iv.Valid() {
		return &ValidationError{Field: "endDatetime", Message: "end must be after start"}
	}
	blocking, err := firstBlockingBooking(tx, roomID, iv, model.CreationBlockingStatuses(), excludeBookingID)
	if err != nil {
		return err
	}
	if blocking != nil {
		return &ConflictError{Resource: "booking", Start: blocking.StartDatetime, End: blocking.EndDatetime}
	}
	return nil
}

// CanApproveBooking เหมือน CanCreateBooking แต่นับเฉพาะ approved / confirmed
// เพราะ pending คู่แข่งยังไม่ได้เป็นเจ้าของช่วงเวลา ใช้ตรวจซ้ำตอนอนุมัติ
// เนื่องจากเวลาอาจผ่านไปนานหลังยื่นคำขอ
func CanApproveBooking(tx *gorm.DB, roomID uint, iv Interval, excludeBookingID string) error {
	if !iv.Valid() {
		return &ValidationError{Field: "endDatetime", Message: "end must be after start"}
	}
	blocking, err := firstBlockingBooking(tx, roomID, iv, model.ApprovalBlockingStatuses(), excludeBookingID)
	if err != nil {
		return err
	}
	if blocking != nil {
		return &ConflictError{Resource: "booking", Start: blocking.StartDatetime, End: blocking.EndDatetime}
	}
	return nil
}

// RoomClosedDuring ตรวจว่าห้องถูกปิดช่วงใดช่วงหนึ่งใน iv หรือไม่
// การปิดห้องกันทุกกรณี ไม่ขึ้นกับสถานะการจอง
func RoomClosedDuring(tx *gorm.DB, roomID uint, iv Interval) error {
	var closure model.RoomClosure
	err := tx.Where("room_id = ? AND start_datetime < ? AND end_datetime > ?", roomID, iv.End, iv.Start).
		Order("start_datetime ASC").
		First(&closure).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return &ConflictError{Resource: "closure", Start: closure.StartDatetime, End: closure.EndDatetime}
}

// HasOverlappingClosure ใช้ตอนสร้าง/แก้ไขรายการปิดห้องเอง
// ห้องเดียวกันห้ามมีการปิดซ้อนกัน (ยกเว้นตัวเองตอนแก้ไข)
func HasOverlappingClosure(tx *gorm.DB, roomID uint, iv Interval, excludeClosureID string) error {
	if !iv.Valid() {
		return &ValidationError{Field: "endDatetime", Message: "end must be after start"}
	}
	q := tx.Where("room_id = ? AND start_datetime < ? AND end_datetime > ?", roomID, iv.End, iv.Start)
	if excludeClosureID != "" {
		q = q.Where("closure_id <> ?", excludeClosureID)
	}

	var overlapping model.RoomClosure
	if err := q.Order("start_datetime ASC").First(&overlapping).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return &ConflictError{Resource: "closure", Start: overlapping.StartDatetime, End: overlapping.EndDatetime}
}
