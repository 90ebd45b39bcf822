package handler

import (
	"errors"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/model"
	"github.com/Armboy122/meetingroom/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetDepartments(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.Department{})
	if divisionID := c.QueryInt("divisionId"); divisionID > 0 {
		condition = condition.Where("division_id = ?", divisionID)
	}

	var departments []model.Department
	if err := condition.Preload("Division").Order("department_name ASC").Find(&departments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if departments == nil {
		departments = []model.Department{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, departments)
}

func CreateDepartment(c *fiber.Ctx) error {
	input := c.Locals("createDepartmentInput").(model.CreateDepartmentInput)

	department := model.Department{
		DepartmentName: input.DepartmentName,
		DivisionID:     input.DivisionID,
	}
	if err := database.DB.Create(&department).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, department)
}

func UpdateDepartment(c *fiber.Ctx) error {
	departmentID := c.Locals("departmentId").(uint)
	input := c.Locals("updateDepartmentInput").(model.UpdateDepartmentInput)

	var department model.Department
	if err := database.DB.First(&department, departmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DEPT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if err := copier.CopyWithOption(&department, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	if err := database.DB.Save(&department).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, department)
}

// DeleteDepartment ลบแผนกได้เฉพาะเมื่อไม่มีผู้ใช้สังกัดอยู่
func DeleteDepartment(c *fiber.Ctx) error {
	departmentID := c.Locals("inputId").(uint)

	var department model.Department
	if err := database.DB.First(&department, departmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DEPT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	var users int64
	if err := database.DB.Model(&model.User{}).Where("department_id = ?", departmentID).Count(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}
	if users > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DEPT_HAS_USERS, errors.New("department has users"))
	}

	if err := database.DB.Delete(&model.Department{}, departmentID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.DELETE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "ลบแผนกเรียบร้อยแล้ว"})
}
