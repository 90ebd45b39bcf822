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

// departmentInDivision ตรวจว่าแผนกอยู่ในกองที่ระบุจริง
func departmentInDivision(departmentID, divisionID uint) error {
	var department model.Department
	err := database.DB.Where("id = ? AND division_id = ?", departmentID, divisionID).First(&department).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("department does not belong to division")
	}
	return err
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateUserInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		var existing model.User
		err := database.DB.Where("employee_id = ?", input.EmployeeID).First(&existing).Error
		if err == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMPLOYEE_ID_TAKEN, errors.New("duplicate employee id"))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
		}

		if err := departmentInDivision(input.DepartmentID, input.DivisionID); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DEPT_NOT_IN_DIVISION, err)
		}

		c.Locals("createUserInput", input)
		return c.Next()
	}
}

func UpdateUser(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt(key)
		if err != nil || userID <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateUserInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		var user model.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
		}

		if input.EmployeeID != nil && *input.EmployeeID != user.EmployeeID {
			var duplicate model.User
			err := database.DB.Where("employee_id = ? AND id <> ?", *input.EmployeeID, userID).First(&duplicate).Error
			if err == nil {
				return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMPLOYEE_ID_TAKEN, errors.New("duplicate employee id"))
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
			}
		}

		// ถ้าย้ายแผนกหรือกอง ต้องตรวจความสัมพันธ์ใหม่
		departmentID := user.DepartmentID
		divisionID := user.DivisionID
		if input.DepartmentID != nil {
			departmentID = *input.DepartmentID
		}
		if input.DivisionID != nil {
			divisionID = *input.DivisionID
		}
		if input.DepartmentID != nil || input.DivisionID != nil {
			if err := departmentInDivision(departmentID, divisionID); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DEPT_NOT_IN_DIVISION, err)
			}
		}

		c.Locals("userId", uint(userID))
		c.Locals("updateUserInput", input)
		return c.Next()
	}
}

func CreateDepartment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDepartmentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		var division model.Division
		if err := database.DB.First(&division, input.DivisionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DIVISION_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
		}

		c.Locals("createDepartmentInput", input)
		return c.Next()
	}
}

func UpdateDepartment(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		departmentID, err := c.ParamsInt(key)
		if err != nil || departmentID <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateDepartmentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.DivisionID != nil {
			var division model.Division
			if err := database.DB.First(&division, *input.DivisionID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DIVISION_NOT_FOUND, err)
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
			}
		}

		c.Locals("departmentId", uint(departmentID))
		c.Locals("updateDepartmentInput", input)
		return c.Next()
	}
}

func CreateDivision() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDivisionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("createDivisionInput", input)
		return c.Next()
	}
}

func UpdateDivision(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		divisionID, err := c.ParamsInt(key)
		if err != nil || divisionID <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateDivisionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("divisionId", uint(divisionID))
		c.Locals("updateDivisionInput", input)
		return c.Next()
	}
}
