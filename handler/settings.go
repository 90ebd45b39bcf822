package handler

import (
	"errors"
	"time"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/Armboy122/meetingroom/model"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
)

// AdminAuth ตรวจรหัสผ่านผู้ดูแล สำเร็จแล้วออก token อายุ 1 ชั่วโมงใส่ cookie
func AdminAuth(c *fiber.Ctx) error {
	input := c.Locals("adminAuthInput").(model.AdminAuthInput)

	ok, err := helper.VerifyAdminPassword(database.DB, input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.WRONG_ADMIN_PASSWORD, errors.New("wrong admin password"))
	}

	token, err := helper.IssueAdminToken()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_FAILED, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "admin_token",
		Value:    token,
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"token": token})
}

func ChangeAdminPassword(c *fiber.Ctx) error {
	input := c.Locals("changeAdminPasswordInput").(model.ChangeAdminPasswordInput)

	if err := helper.UpdateAdminPassword(database.DB, input.CurrentPassword, input.NewPassword); err != nil {
		var validationErr *helper.ValidationError
		if errors.As(err, &validationErr) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.WRONG_ADMIN_PASSWORD, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "เปลี่ยนรหัสผ่านเรียบร้อยแล้ว"})
}
