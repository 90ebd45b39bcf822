package helper

import (
	"testing"
	"time"

	"github.com/Armboy122/meetingroom/model"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB เปิดฐานข้อมูล sqlite ใน memory สำหรับเทสหนึ่งตัว
// ต้องจำกัด connection เดียว ไม่งั้น pool จะเปิด :memory: คนละฐานกัน
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Division{},
		&model.Department{},
		&model.User{},
		&model.Room{},
		&model.Booking{},
		&model.Participant{},
		&model.RoomClosure{},
		&model.AdminSetting{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreateRoom(t *testing.T, db *gorm.DB, name string) model.Room {
	t.Helper()
	room := model.Room{RoomName: name, Capacity: 10, Status: model.RoomActive}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func mustCreateUser(t *testing.T, db *gorm.DB, employeeID string) model.User {
	t.Helper()
	division := model.Division{DivisionName: "กองทดสอบ " + employeeID}
	if err := db.Create(&division).Error; err != nil {
		t.Fatalf("create division: %v", err)
	}
	department := model.Department{DepartmentName: "แผนกทดสอบ", DivisionID: division.ID}
	if err := db.Create(&department).Error; err != nil {
		t.Fatalf("create department: %v", err)
	}
	user := model.User{
		EmployeeID:   employeeID,
		FullName:     "ผู้ใช้ทดสอบ",
		DepartmentID: department.ID,
		DivisionID:   division.ID,
		Status:       model.UserActive,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// at คืนเวลาในวันอ้างอิงเดียวกันทุกเทส
func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func mustCreateBooking(t *testing.T, db *gorm.DB, roomID uint, status model.BookingStatus, start, end time.Time) model.Booking {
	t.Helper()
	booking := model.Booking{
		RoomID:        roomID,
		Title:         "ประชุมทดสอบ",
		StartDatetime: start,
		EndDatetime:   end,
		Status:        status,
		CreatedBy:     "tester",
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking
}

func mustCreateClosure(t *testing.T, db *gorm.DB, roomID uint, start, end time.Time) model.RoomClosure {
	t.Helper()
	closure := model.RoomClosure{
		RoomID:        roomID,
		StartDatetime: start,
		EndDatetime:   end,
		Reason:        "ซ่อมบำรุง",
		CreatedBy:     "admin",
	}
	if err := db.Create(&closure).Error; err != nil {
		t.Fatalf("create closure: %v", err)
	}
	return closure
}
