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

func GetDivisions(c *fiber.Ctx) error {
	var divisions []model.Division
	err := database.DB.
		Preload("Departments").
		Order("division_name ASC").
		Find(&divisions).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if divisions == nil {
		divisions = []model.Division{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, divisions)
}

func CreateDivision(c *fiber.Ctx) error {
	input := c.Locals("createDivisionInput").(model.CreateDivisionInput)

	division := model.Division{DivisionName: input.DivisionName}
	if err := database.DB.Create(&division).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, division)
}

func UpdateDivision(c *fiber.Ctx) error {
	divisionID := c.Locals("divisionId").(uint)
	input := c.Locals("updateDivisionInput").(model.UpdateDivisionInput)

	var division model.Division
	if err := database.DB.First(&division, divisionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DIVISION_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if err := copier.CopyWithOption(&division, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	if err := database.DB.Save(&division).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, division)
}

// DeleteDivision ลบกองได้เฉพาะเมื่อไม่มีแผนกและผู้ใช้สังกัดอยู่
func DeleteDivision(c *fiber.Ctx) error {
	divisionID := c.Locals("inputId").(uint)

	var division model.Division
	if err := database.DB.First(&division, divisionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DIVISION_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	var departments int64
	if err := database.DB.Model(&model.Department{}).Where("division_id = ?", divisionID).Count(&departments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}
	var users int64
	if err := database.DB.Model(&model.User{}).Where("division_id = ?", divisionID).Count(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}
	if departments > 0 || users > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DIVISION_HAS_DEPTS, errors.New("division has departments or users"))
	}

	if err := database.DB.Delete(&model.Division{}, divisionID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.DELETE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "ลบกองเรียบร้อยแล้ว"})
}
