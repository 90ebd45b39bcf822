package handler

import (
	"errors"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/Armboy122/meetingroom/model"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetParticipants(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking model.Booking
	if err := database.DB.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	var participants []model.Participant
	if err := database.DB.
		Where("booking_id = ?", bookingID).
		Order("added_at ASC").
		Find(&participants).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if participants == nil {
		participants = []model.Participant{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, participants)
}

func AddParticipant(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingId").(string)
	input := c.Locals("participantInput").(model.ParticipantInput)

	var booking model.Booking
	if err := database.DB.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	participant := model.Participant{
		BookingID:        bookingID,
		ParticipantName:  input.ParticipantName,
		ParticipantEmail: input.ParticipantEmail,
	}
	if err := database.DB.Create(&participant).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_FAILED, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "booking_updated",
		RoomID:    booking.RoomID,
		BookingID: bookingID,
	}, booking.StartDatetime, booking.EndDatetime)

	return utils.SuccessResponse(c, fiber.StatusCreated, participant)
}
