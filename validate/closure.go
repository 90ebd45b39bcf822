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

func CreateClosure() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateClosureInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !input.StartDatetime.Before(input.EndDatetime) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.END_BEFORE_START, errors.New("end <= start"))
		}

		var room model.Room
		if err := database.DB.First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
		}

		c.Locals("createClosureInput", input)
		return c.Next()
	}
}

func UpdateClosure(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		closureID := c.Params(key)
		if closureID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		var input model.UpdateClosureInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.RoomID != nil {
			var room model.Room
			if err := database.DB.First(&room, *input.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
			}
		}

		c.Locals("closureId", closureID)
		c.Locals("updateClosureInput", input)
		return c.Next()
	}
}
