package validate

import (
	"errors"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/model"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !input.StartDatetime.Before(input.EndDatetime) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.END_BEFORE_START, errors.New("end <= start"))
		}

		// ผู้จองต้องมีอยู่และยังใช้งานอยู่
		var organizer model.User
		if err := database.DB.Where("id = ? AND status = ?", input.OrganizerID, model.UserActive).First(&organizer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
		}

		c.Locals("createBookingInput", input)
		return c.Next()
	}
}

func UpdateBooking(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingID := c.Params(key)
		if bookingID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		var input model.UpdateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("bookingId", bookingID)
		c.Locals("updateBookingInput", input)
		return c.Next()
	}
}

func AddParticipant(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingID := c.Params(key)
		if bookingID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		var input model.ParticipantInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("bookingId", bookingID)
		c.Locals("participantInput", input)
		return c.Next()
	}
}

func ApproveBooking(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingID := c.Params(key)
		if bookingID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		var input model.ApproveBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.APPROVER_REQUIRED, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.APPROVER_REQUIRED, err)
		}

		c.Locals("bookingId", bookingID)
		c.Locals("approveBookingInput", input)
		return c.Next()
	}
}

func RejectBooking(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingID := c.Params(key)
		if bookingID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		var input model.RejectBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.REJECTOR_REQUIRED, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.REJECTOR_REQUIRED, err)
		}

		c.Locals("bookingId", bookingID)
		c.Locals("rejectBookingInput", input)
		return c.Next()
	}
}
