package helper

import (
	"errors"

	"github.com/Armboy122/meetingroom/model"
	"gorm.io/gorm"
)

// ReplaceParticipants แทนที่รายชื่อผู้เข้าร่วมทั้งชุดใน transaction ที่ส่งเข้ามา
// ลบของเดิมก่อนแล้วค่อยสร้างใหม่ ห้ามเรียกนอก transaction
func ReplaceParticipants(tx *gorm.DB, bookingID string, participants []model.ParticipantInput) error {
	if err := tx.Where("booking_id = ?", bookingID).Delete(&model.Participant{}).Error; err != nil {
		return err
	}
	for _, p := range participants {
		participant := model.Participant{
			BookingID:        bookingID,
			ParticipantName:  p.ParticipantName,
			ParticipantEmail: p.ParticipantEmail,
		}
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteBookingCascade ลบการจองพร้อมผู้เข้าร่วมเป็นหน่วยเดียว
func DeleteBookingCascade(db *gorm.DB, bookingID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var booking model.Booking
		if err := tx.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "booking"}
			}
			return err
		}

		if err := tx.Where("booking_id = ?", bookingID).Delete(&model.Participant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Booking{}, "booking_id = ?", bookingID).Error
	})
}

// DeleteRoom ลบห้องแบบปกติ ปฏิเสธถ้ายังมีการจองอ้างอิงอยู่ (อดีตหรืออนาคต)
// force=true (สิทธิ์ผู้ดูแล) ลบแบบ cascade: ผู้เข้าร่วม → การจอง → การปิดห้อง → ห้อง
// ทั้งหมดเป็น transaction เดียว ล้มเหลวกลางทางต้องไม่เหลือข้อมูลครึ่งๆ กลางๆ
func DeleteRoom(db *gorm.DB, roomID uint, force bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "room"}
			}
			return err
		}

		var bookingCount int64
		if err := tx.Model(&model.Booking{}).Where("room_id = ?", roomID).Count(&bookingCount).Error; err != nil {
			return err
		}
		if bookingCount > 0 && !force {
			return &IntegrityError{Resource: "room", Dependent: "booking", Count: bookingCount}
		}

		if err := tx.Where("booking_id IN (?)",
			tx.Model(&model.Booking{}).Select("booking_id").Where("room_id = ?", roomID),
		).Delete(&model.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&model.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&model.RoomClosure{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Room{}, roomID).Error
	})
}

// DeleteUser ลบผู้ใช้ได้เฉพาะเมื่อไม่มีการจองที่เป็นเจ้าของอยู่
// มิฉะนั้นให้ปิดใช้งานแทน
func DeleteUser(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "user"}
			}
			return err
		}

		var bookingCount int64
		if err := tx.Model(&model.Booking{}).Where("organizer_id = ?", userID).Count(&bookingCount).Error; err != nil {
			return err
		}
		if bookingCount > 0 {
			return &IntegrityError{Resource: "user", Dependent: "booking", Count: bookingCount}
		}
		return tx.Delete(&model.User{}, userID).Error
	})
}
