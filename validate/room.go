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

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// ชื่อห้องห้ามซ้ำ
		var existing model.Room
		err := database.DB.Where("room_name = ?", input.RoomName).First(&existing).Error
		if err == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_NAME_TAKEN, errors.New("duplicate room name"))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
		}

		c.Locals("createRoomInput", input)
		return c.Next()
	}
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roomID, err := roomIDParam(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// ชื่อห้องห้ามซ้ำกับห้องอื่น
		if input.RoomName != nil {
			var duplicate model.Room
			err := database.DB.Where("room_name = ? AND id <> ?", *input.RoomName, roomID).First(&duplicate).Error
			if err == nil {
				return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_NAME_TAKEN, errors.New("duplicate room name"))
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
			}
		}

		c.Locals("roomId", roomID)
		c.Locals("editRoomInput", input)
		return c.Next()
	}
}

func roomIDParam(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, errors.New("params invalid")
	}
	return uint(id), nil
}
