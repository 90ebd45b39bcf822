package handler

import (
	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/Armboy122/meetingroom/model"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
)

// ApproveBooking อนุมัติคำขอที่ pending
// ตรวจการชนซ้ำกับ approved/confirmed ตอนอนุมัติเสมอ เพราะระหว่างรอ
// อาจมีการอนุมัติรายการอื่นทับช่วงเวลาไปแล้ว (คำขอแรกที่ถูกอนุมัติชนะ)
func ApproveBooking(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingId").(string)
	input := c.Locals("approveBookingInput").(model.ApproveBookingInput)

	booking, err := helper.ApproveBooking(database.DB, bookingID, input.ApprovedBy)
	if err != nil {
		return respondDomainError(c, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "booking_approved",
		RoomID:    booking.RoomID,
		BookingID: booking.BookingID,
	}, booking.StartDatetime, booking.EndDatetime)

	var approved model.Booking
	if err := database.DB.
		Preload("Room").
		Preload("Organizer").
		Preload("Participants").
		First(&approved, "booking_id = ?", bookingID).Error; err != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, booking)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, approved)
}

// RejectBooking ปฏิเสธคำขอที่ pending ไม่ต้องตรวจการชนเพราะไม่แย่งช่วงเวลา
func RejectBooking(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingId").(string)
	input := c.Locals("rejectBookingInput").(model.RejectBookingInput)

	booking, err := helper.RejectBooking(database.DB, bookingID, input.RejectedBy, input.RejectedReason)
	if err != nil {
		return respondDomainError(c, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "booking_rejected",
		RoomID:    booking.RoomID,
		BookingID: booking.BookingID,
	}, booking.StartDatetime, booking.EndDatetime)

	var rejected model.Booking
	if err := database.DB.
		Preload("Room").
		Preload("Organizer").
		Preload("Participants").
		First(&rejected, "booking_id = ?", bookingID).Error; err != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, booking)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rejected)
}
