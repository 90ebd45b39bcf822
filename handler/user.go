package handler

import (
	"errors"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/Armboy122/meetingroom/model"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetUsers(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.User{})
	if status := c.Query("status"); status != "" {
		condition = condition.Where("users.status = ?", status)
	}

	var users []model.User
	err := condition.
		Preload("Department").
		Preload("Division").
		Joins("JOIN divisions ON divisions.id = users.division_id").
		Joins("JOIN departments ON departments.id = users.department_id").
		Order("divisions.division_name ASC, departments.department_name ASC, users.full_name ASC").
		Find(&users).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if users == nil {
		users = []model.User{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

// SearchUsers ค้นหาจากชื่อหรือรหัสพนักงาน ใช้กับช่องเลือกผู้จองหน้าฟอร์ม
func SearchUsers(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return utils.SuccessResponse(c, fiber.StatusOK, []model.User{})
	}

	var users []model.User
	err := database.DB.
		Preload("Department").
		Preload("Division").
		Where("status = ?", model.UserActive).
		Where("full_name LIKE ? OR employee_id LIKE ?", "%"+q+"%", "%"+q+"%").
		Order("full_name ASC").
		Limit(20).
		Find(&users).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if users == nil {
		users = []model.User{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

func GetUserById(c *fiber.Ctx) error {
	userID := c.Locals("inputId").(uint)

	var user model.User
	err := database.DB.
		Preload("Department").
		Preload("Division").
		First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func CreateUser(c *fiber.Ctx) error {
	input := c.Locals("createUserInput").(model.CreateUserInput)

	user := model.User{
		EmployeeID:   input.EmployeeID,
		FullName:     input.FullName,
		DepartmentID: input.DepartmentID,
		DivisionID:   input.DivisionID,
		Email:        input.Email,
		Status:       model.UserActive,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func UpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	input := c.Locals("updateUserInput").(model.UpdateUserInput)

	var user model.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if err := copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// DeleteUser ลบผู้ใช้ที่ไม่เคยเป็นผู้จอง ถ้ามีการจองอ้างอิงให้ปิดใช้งานแทน
func DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("inputId").(uint)

	if err := helper.DeleteUser(database.DB, userID); err != nil {
		return respondDomainError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "ลบผู้ใช้งานเรียบร้อยแล้ว"})
}

func DeactivateUser(c *fiber.Ctx) error {
	userID := c.Locals("inputId").(uint)

	var user model.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if err := database.DB.Model(&user).Update("status", model.UserInactive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
