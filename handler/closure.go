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

func GetClosures(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.RoomClosure{})
	if roomID := c.QueryInt("roomId"); roomID > 0 {
		condition = condition.Where("room_id = ?", roomID)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		startOfDay, endOfDay, err := utils.ParseDateParam(dateStr)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง (ใช้ YYYY-MM-DD)", err)
		}
		condition = condition.Where("start_datetime < ? AND end_datetime > ?", endOfDay, startOfDay)
	}

	var closures []model.RoomClosure
	if err := condition.Preload("Room").Order("start_datetime ASC").Find(&closures).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if closures == nil {
		closures = []model.RoomClosure{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, closures)
}

// CreateClosure ปิดห้องช่วงเวลาใหม่ ตรวจการซ้อนกับรายการปิดเดิมใน transaction เดียวกับ insert
func CreateClosure(c *fiber.Ctx) error {
	input := c.Locals("createClosureInput").(model.CreateClosureInput)

	iv, err := helper.NewInterval(input.StartDatetime, input.EndDatetime)
	if err != nil {
		return respondDomainError(c, err)
	}

	closure := model.RoomClosure{
		RoomID:        input.RoomID,
		StartDatetime: input.StartDatetime,
		EndDatetime:   input.EndDatetime,
		Reason:        input.Reason,
		CreatedBy:     input.CreatedBy,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := helper.HasOverlappingClosure(tx, input.RoomID, iv, ""); err != nil {
			return err
		}
		return tx.Create(&closure).Error
	})
	if err != nil {
		var conflictErr *helper.ConflictError
		if errors.As(err, &conflictErr) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CLOSURE_OVERLAP, err)
		}
		return respondDomainError(c, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "closure_changed",
		RoomID:    closure.RoomID,
		ClosureID: closure.ClosureID,
	}, closure.StartDatetime, closure.EndDatetime)

	return utils.SuccessResponse(c, fiber.StatusCreated, closure)
}

// UpdateClosure แก้ไขรายการปิดห้อง ตรวจการซ้อนใหม่ทุกครั้งโดยไม่นับตัวเอง
func UpdateClosure(c *fiber.Ctx) error {
	closureID := c.Locals("closureId").(string)
	input := c.Locals("updateClosureInput").(model.UpdateClosureInput)

	db := database.DB

	var closure model.RoomClosure
	if err := db.First(&closure, "closure_id = ?", closureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLOSURE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}
	previousStart := closure.StartDatetime
	previousEnd := closure.EndDatetime

	if err := copier.CopyWithOption(&closure, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}

	iv, err := helper.NewInterval(closure.StartDatetime, closure.EndDatetime)
	if err != nil {
		return respondDomainError(c, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := helper.HasOverlappingClosure(tx, closure.RoomID, iv, closureID); err != nil {
			return err
		}
		return tx.Save(&closure).Error
	})
	if err != nil {
		var conflictErr *helper.ConflictError
		if errors.As(err, &conflictErr) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CLOSURE_OVERLAP, err)
		}
		return respondDomainError(c, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "closure_changed",
		RoomID:    closure.RoomID,
		ClosureID: closureID,
	}, previousStart, previousEnd, closure.StartDatetime, closure.EndDatetime)

	return utils.SuccessResponse(c, fiber.StatusOK, closure)
}

func DeleteClosure(c *fiber.Ctx) error {
	closureID := c.Params("closureId")

	var closure model.RoomClosure
	if err := database.DB.First(&closure, "closure_id = ?", closureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLOSURE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if err := database.DB.Delete(&model.RoomClosure{}, "closure_id = ?", closureID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.DELETE_FAILED, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:      "closure_changed",
		RoomID:    closure.RoomID,
		ClosureID: closureID,
	}, closure.StartDatetime, closure.EndDatetime)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "ลบรายการปิดห้องเรียบร้อยแล้ว"})
}
