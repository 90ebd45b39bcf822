package helper

import (
	"errors"
	"time"

	"github.com/Armboy122/meetingroom/model"
	"gorm.io/gorm"
)

const DefaultRejectedReason = "No reason provided"

// ApproveBooking: pending → approved
// ตรวจการชนซ้ำกับ approved/confirmed และการปิดห้อง ภายใน transaction เดียว
// กับการอัพเดตสถานะ เพื่อกันการอนุมัติสองรายการทับกันพร้อมกัน
func ApproveBooking(db *gorm.DB, bookingID, approvedBy string) (*model.Booking, error) {
	var booking model.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "booking"}
			}
			return err
		}

		if booking.Status != model.BookingPending {
			return &StateError{Current: booking.Status}
		}

		iv := Interval{Start: booking.StartDatetime, End: booking.EndDatetime}
		if err := CanApproveBooking(tx, booking.RoomID, iv, booking.BookingID); err != nil {
			return err
		}
		if err := RoomClosedDuring(tx, booking.RoomID, iv); err != nil {
			return err
		}

		now := time.Now()
		booking.Status = model.BookingApproved
		booking.ApprovedBy = &approvedBy
		booking.ApprovedAt = &now
		return tx.Model(&model.Booking{}).
			Where("booking_id = ?", booking.BookingID).
			Updates(map[string]any{
				"status":      model.BookingApproved,
				"approved_by": approvedBy,
				"approved_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// RejectBooking: pending → rejected
// ไม่ต้องตรวจการชนเพราะ rejected ไม่แย่งช่วงเวลากับใคร
// ระบบเดิมบันทึกชื่อผู้ปฏิเสธลงคอลัมน์ approved_by เพื่อให้ประวัติอ่านแบบเดียวกัน
func RejectBooking(db *gorm.DB, bookingID, rejectedBy, reason string) (*model.Booking, error) {
	if reason == "" {
		reason = DefaultRejectedReason
	}

	var booking model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "booking"}
			}
			return err
		}

		if booking.Status != model.BookingPending {
			return &StateError{Current: booking.Status}
		}

		now := time.Now()
		booking.Status = model.BookingRejected
		booking.ApprovedBy = &rejectedBy
		booking.ApprovedAt = &now
		booking.RejectedReason = &reason
		return tx.Model(&model.Booking{}).
			Where("booking_id = ?", booking.BookingID).
			Updates(map[string]any{
				"status":          model.BookingRejected,
				"approved_by":     rejectedBy,
				"approved_at":     now,
				"rejected_reason": reason,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking สร้างการจองสถานะ pending พร้อมผู้เข้าร่วม
// เช็คการชนและ insert อยู่ใน transaction เดียวกัน (อ่านแล้วเขียนเป็นหน่วยเดียว
// ไม่งั้นสองคำขอพร้อมกันจะผ่านเช็คทั้งคู่)
func CreateBooking(db *gorm.DB, input model.CreateBookingInput) (*model.Booking, error) {
	iv, err := NewInterval(input.StartDatetime, input.EndDatetime)
	if err != nil {
		return nil, &ValidationError{Field: "endDatetime", Message: "end must be after start"}
	}

	booking := model.Booking{
		RoomID:           input.RoomID,
		Title:            input.Title,
		Description:      input.Description,
		StartDatetime:    input.StartDatetime,
		EndDatetime:      input.EndDatetime,
		Status:           model.BookingPending,
		OrganizerID:      &input.OrganizerID,
		CreatedBy:        input.CreatedBy,
		NeedsRefreshment: input.NeedsRefreshment,
		RefreshmentSets:  input.RefreshmentSets,
		RefreshmentNote:  input.RefreshmentNote,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "room"}
			}
			return err
		}
		if room.Status != model.RoomActive {
			return &ValidationError{Field: "roomId", Message: "room is inactive"}
		}

		if err := CanCreateBooking(tx, input.RoomID, iv, ""); err != nil {
			return err
		}
		if err := RoomClosedDuring(tx, input.RoomID, iv); err != nil {
			return err
		}

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		for _, p := range input.Participants {
			participant := model.Participant{
				BookingID:        booking.BookingID,
				ParticipantName:  p.ParticipantName,
				ParticipantEmail: p.ParticipantEmail,
			}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
			booking.Participants = append(booking.Participants, participant)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
