package database

import (
	"fmt"
	"strconv"

	"github.com/Armboy122/meetingroom/config"
	"github.com/Armboy122/meetingroom/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Division{},
		&model.Department{},
		&model.User{},
		&model.Room{},
		&model.Booking{},
		&model.Participant{},
		&model.RoomClosure{},
		&model.AdminSetting{},
	)
	fmt.Println("Database Migrated")

	// ข้อมูลเริ่มต้น
	SeedData(DB)
}
