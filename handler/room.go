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
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetRooms(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.Room{})
	if status := c.Query("status"); status != "" {
		condition = condition.Where("status = ?", status)
	}

	var rooms []model.Room
	if err := condition.Order("room_name ASC").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if rooms == nil {
		rooms = []model.Room{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

// GetRoomById ส่งข้อมูลห้องพร้อมจำนวนการจองล่วงหน้า
func GetRoomById(c *fiber.Ctx) error {
	roomID := c.Locals("inputId").(uint)

	var room model.Room
	if err := database.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	var upcoming int64
	if err := database.DB.Model(&model.Booking{}).
		Where("room_id = ? AND start_datetime >= ?", roomID, time.Now()).
		Count(&upcoming).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.RoomWithUsage{
		Room:             room,
		UpcomingBookings: upcoming,
	})
}

func CreateRoom(c *fiber.Ctx) error {
	input := c.Locals("createRoomInput").(model.CreateRoomInput)

	room := model.Room{
		RoomName:  input.RoomName,
		Capacity:  input.Capacity,
		Equipment: input.Equipment,
		Status:    model.RoomActive,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

func EditRoom(c *fiber.Ctx) error {
	roomID := c.Locals("roomId").(uint)
	input := c.Locals("editRoomInput").(model.EditRoomInput)

	var room model.Room
	if err := database.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if err := copier.CopyWithOption(&room, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	if err := database.DB.Save(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// DeleteRoom ลบห้อง ปฏิเสธเมื่อมีการจองอ้างอิง
// ?force=1 ลบแบบ cascade (ผู้เข้าร่วม → การจอง → การปิดห้อง → ห้อง) เป็นหน่วยเดียว
func DeleteRoom(c *fiber.Ctx) error {
	roomID := c.Locals("inputId").(uint)
	force := c.QueryBool("force")

	if err := helper.DeleteRoom(database.DB, roomID, force); err != nil {
		return respondDomainError(c, err)
	}

	helper.PublishRoomEvent(helper.RoomEvent{
		Type:   "room_deleted",
		RoomID: roomID,
	}, time.Now())

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "ลบห้องประชุมเรียบร้อยแล้ว"})
}

func DisableRoom(c *fiber.Ctx) error {
	return setRoomStatus(c, model.RoomInactive)
}

func EnableRoom(c *fiber.Ctx) error {
	return setRoomStatus(c, model.RoomActive)
}

func setRoomStatus(c *fiber.Ctx, status model.RoomStatus) error {
	roomID := c.Locals("inputId").(uint)

	var room model.Room
	if err := database.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.FETCH_FAILED, err)
	}

	if err := database.DB.Model(&room).Update("status", status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPDATE_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}
