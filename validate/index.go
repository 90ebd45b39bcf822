package validate

import (
	"errors"
	"strconv"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById ตรวจว่า path param เป็นตัวเลข แล้วเก็บไว้ใน locals "inputId"
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

// GetByUUID เก็บ path param ที่เป็น id แบบ string ไว้ใน locals
func GetByUUID(key string, local string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		if params == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		c.Locals(local, params)
		return c.Next()
	}
}
