package validate

import (
	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/model"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
)

func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminAuthInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("adminAuthInput", input)
		return c.Next()
	}
}

func ChangeAdminPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangeAdminPasswordInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("changeAdminPasswordInput", input)
		return c.Next()
	}
}
