package handler

import (
	"errors"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/Armboy122/meetingroom/model"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetBookings ดึงการจองตามวัน/ห้อง/สถานะ สำหรับหน้าปฏิทิน
// ไม่ระบุสถานะ = ทุกสถานะที่ยังกันช่วงเวลาอยู่ (ไม่รวม rejected)
func GetBookings(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.Booking{})

	if status := c.Query("status"); status != "" {
		condition = condition.Where("status = ?", status)
	} else {
		condition = condition.Where("status IN ?", model.CreationBlockingStatuses())
	}

	if roomID := c.QueryInt("roomId"); roomID > 0 {
		condition = condition.Where("room_id = ?", roomID)
	}

	if dateStr := c.Query("date"); dateStr != "" {
		startOfDay, endOfDay, err := utils.ParseDateParam(dateStr)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง (ใช้ YYYY-MM-DD)", err)
		}
		condition = condition.Where("start_datetime < ? AND end_datetime > ?", endOfDay, startOfDay)
	}

	var bookings []model.Booking
	if err := condition.
		Preload("Room").
		Preload("Participants").
		Order("start_datetime ASC").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

// CreateBooking สร้างการจองใหม่สถานะ pending
// เช็คการชนกับการจองที่กันช่วงเวลาและการปิดห้อง อยู่ใน transaction เดียวกับ insert
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("createBookingInput").(model.CreateBookingInput)

	booking, err := helper.CreateBooking(database.DB, input)
	if err != nil {
		return respondDomainError(c, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "booking_created",
		RoomID:    booking.RoomID,
		BookingID: booking.BookingID,
	}, booking.StartDatetime, booking.EndDatetime)

	var created model.Booking
	if err := database.DB.
		Preload("Room").
		Preload("Organizer").
		Preload("Participants").
		First(&created, "booking_id = ?", booking.BookingID).Error; err != nil {
		return utils.SuccessResponse(c, fiber.StatusCreated, booking)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func GetBookingById(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking model.Booking
	err := database.DB.
		Preload("Room").
		Preload("Organizer").
		Preload("Organizer.Department").
		Preload("Organizer.Division").
		Preload("Participants").
		First(&booking, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// UpdateBooking แก้ไขหัวข้อ/รายละเอียด และแทนที่รายชื่อผู้เข้าร่วมทั้งชุดเป็นหน่วยเดียว
func UpdateBooking(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingId").(string)
	input := c.Locals("updateBookingInput").(model.UpdateBookingInput)

	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := copier.CopyWithOption(&booking, &input, copier.Option{IgnoreEmpty: true}); err != nil {
			return err
		}
		if err := tx.Model(&model.Booking{}).
			Where("booking_id = ?", bookingID).
			Updates(map[string]any{
				"title":       booking.Title,
				"description": booking.Description,
			}).Error; err != nil {
			return err
		}

		if input.Participants != nil {
			return helper.ReplaceParticipants(tx, bookingID, *input.Participants)
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "booking_updated",
		RoomID:    booking.RoomID,
		BookingID: bookingID,
	}, booking.StartDatetime, booking.EndDatetime)

	var updated model.Booking
	if err := db.
		Preload("Room").
		Preload("Participants").
		First(&updated, "booking_id = ?", bookingID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

// DeleteBooking ลบการจองพร้อมผู้เข้าร่วมเป็นหน่วยเดียว
func DeleteBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking model.Booking
	if err := database.DB.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if err := helper.DeleteBookingCascade(database.DB, bookingID); err != nil {
		return respondDomainError(c, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "booking_deleted",
		RoomID:    booking.RoomID,
		BookingID: bookingID,
	}, booking.StartDatetime, booking.EndDatetime)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "ลบการจองเรียบร้อยแล้ว"})
}

// GetBookingHistory ประวัติการจองทุกสถานะ แบ่งหน้า
func GetBookingHistory(c *fiber.Ctx) error {
	var filter model.BookingHistoryFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Booking{})

	if filter.Status != "" && filter.Status != "all" {
		condition = condition.Where("status = ?", filter.Status)
	}
	if filter.RoomID > 0 {
		condition = condition.Where("room_id = ?", filter.RoomID)
	}
	if filter.StartDate != "" {
		start, _, err := utils.ParseDateParam(filter.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง (ใช้ YYYY-MM-DD)", err)
		}
		condition = condition.Where("start_datetime >= ?", start)
	}
	if filter.EndDate != "" {
		_, end, err := utils.ParseDateParam(filter.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง (ใช้ YYYY-MM-DD)", err)
		}
		condition = condition.Where("start_datetime < ?", end)
	}

	var total int64
	if err := condition.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	page := utils.PageOr(filter.Page, 1)
	limit := utils.PageOr(filter.Limit, 20)

	var bookings []model.Booking
	if err := condition.
		Preload("Room").
		Preload("Organizer").
		Preload("Organizer.Department").
		Preload("Organizer.Division").
		Preload("Participants").
		Order("created_at DESC").
		Limit(limit).
		Offset(limit * (page - 1)).
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return utils.SuccessResponse(c, fiber.StatusOK, model.PaginatedResponse{
		Rows:       bookings,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	})
}

// GetPendingBookings คิวรออนุมัติ เรียงตามเวลายื่นคำขอ
func GetPendingBookings(c *fiber.Ctx) error {
	var bookings []model.Booking
	err := database.DB.
		Preload("Room").
		Preload("Organizer").
		Preload("Participants").
		Where("status = ?", model.BookingPending).
		Order("created_at ASC").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}
