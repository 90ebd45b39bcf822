package middleware

import (
	"errors"
	"strings"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
)

// AdminProtected ตรวจ token ผู้ดูแลที่ได้จาก POST /admin/auth
// ส่งได้ทั้ง cookie admin_token และ header Authorization: Bearer xxx
func AdminProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("admin_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_ADMIN, errors.New("no token"))
		}

		if !helper.ParseAdminToken(token) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_ADMIN, errors.New("invalid token"))
		}

		return c.Next()
	}
}
