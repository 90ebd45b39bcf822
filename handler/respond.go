package handler

import (
	"errors"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
)

// respondDomainError แปลง error จากชั้น core เป็น HTTP response
// StateError ใช้ 409 เพราะหมายถึง client ถือข้อมูลเก่า ไม่ใช่ส่งข้อมูลผิด
func respondDomainError(c *fiber.Ctx, err error) error {
	var validationErr *helper.ValidationError
	if errors.As(err, &validationErr) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var conflictErr *helper.ConflictError
	if errors.As(err, &conflictErr) {
		message := constants.ROOM_SLOT_TAKEN
		if conflictErr.Resource == "closure" {
			message = constants.ROOM_CLOSED
		}
		return utils.ErrorResponse(c, fiber.StatusConflict, message, err)
	}

	var stateErr *helper.StateError
	if errors.As(err, &stateErr) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.BOOKING_NOT_PENDING, err)
	}

	var notFoundErr *helper.NotFoundError
	if errors.As(err, &notFoundErr) {
		message := constants.FETCH_FAILED
		switch notFoundErr.Resource {
		case "booking":
			message = constants.BOOKING_NOT_FOUND
		case "room":
			message = constants.ROOM_NOT_FOUND
		case "closure":
			message = constants.CLOSURE_NOT_FOUND
		case "user":
			message = constants.USER_NOT_FOUND
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, message, err)
	}

	var integrityErr *helper.IntegrityError
	if errors.As(err, &integrityErr) {
		message := constants.DELETE_FAILED
		switch integrityErr.Resource {
		case "room":
			message = constants.ROOM_HAS_BOOKINGS
		case "user":
			message = constants.USER_HAS_BOOKINGS
		}
		return utils.ErrorResponse(c, fiber.StatusConflict, message, err)
	}

	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
}
