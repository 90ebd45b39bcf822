package database

import (
	"errors"
	"log"

	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	// รหัสผ่านผู้ดูแลเริ่มต้น เก็บเป็น bcrypt hash เสมอ
	var adminSetting model.AdminSetting
	err := db.First(&adminSetting, "setting_key = ?", constants.SettingAdminPassword).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		bytes, hashErr := bcrypt.GenerateFromPassword([]byte("Armoff122*"), 10)
		if hashErr != nil {
			log.Println("failed to hash default admin password:", hashErr)
			return
		}
		adminSetting = model.AdminSetting{
			SettingKey:   constants.SettingAdminPassword,
			SettingValue: string(bytes),
		}
		if err := db.Create(&adminSetting).Error; err != nil {
			log.Println("failed to seed admin password:", err)
		}
	}

	divisions := []string{
		"กองบริหารและสนับสนุน",
		"กองเทคโนโลยีสารสนเทศ",
		"กองการเงินและบัญชี",
		"กองทรัพยากรบุคคล",
		"กองปฏิบัติการ",
	}

	divisionByName := map[string]model.Division{}
	for _, name := range divisions {
		division := model.Division{DivisionName: name}
		if err := db.Where(model.Division{DivisionName: name}).FirstOrCreate(&division).Error; err != nil {
			log.Println("failed to seed division:", name, "error:", err)
			continue
		}
		divisionByName[name] = division
	}

	departments := []struct {
		Name     string
		Division string
	}{
		{"แผนกบริหารงานทั่วไป", "กองบริหารและสนับสนุน"},
		{"แผนกการเงิน", "กองบริหารและสนับสนุน"},
		{"แผนกพัสดุและครุภัณฑ์", "กองบริหารและสนับสนุน"},
		{"แผนกพัฒนาระบบ", "กองเทคโนโลยีสารสนเทศ"},
		{"แผนกสนับสนุนเทคโนโลยี", "กองเทคโนโลยีสารสนเทศ"},
		{"แผนกความปลอดภัยไซเบอร์", "กองเทคโนโลยีสารสนเทศ"},
		{"แผนกบัญชี", "กองการเงินและบัญชี"},
		{"แผนกงบประมาณ", "กองการเงินและบัญชี"},
		{"แผนกสรรหาและบรรจุ", "กองทรัพยากรบุคคล"},
		{"แผนกพัฒนาบุคลากร", "กองทรัพยากรบุคคล"},
		{"แผนกปฏิบัติการภาคเหนือ", "กองปฏิบัติการ"},
		{"แผนกปฏิบัติการภาคใต้", "กองปฏิบัติการ"},
	}

	departmentByName := map[string]model.Department{}
	for _, d := range departments {
		division, ok := divisionByName[d.Division]
		if !ok {
			continue
		}
		department := model.Department{DepartmentName: d.Name, DivisionID: division.ID}
		if err := db.Where(model.Department{DepartmentName: d.Name, DivisionID: division.ID}).FirstOrCreate(&department).Error; err != nil {
			log.Println("failed to seed department:", d.Name, "error:", err)
			continue
		}
		departmentByName[d.Name] = department
	}

	users := []struct {
		EmployeeID string
		FullName   string
		Department string
		Email      string
	}{
		{"EMP001", "สมชาย ใจดี", "แผนกบริหารงานทั่วไป", "somchai@company.com"},
		{"EMP002", "สมหญิง รักษ์ดี", "แผนกพัฒนาระบบ", "somying@company.com"},
		{"EMP003", "วิชัย เก่งกาจ", "แผนกบัญชี", "vichai@company.com"},
		{"EMP004", "มาลี สวยงาม", "แผนกสรรหาและบรรจุ", "malee@company.com"},
		{"EMP005", "ประยุทธ์ มั่นคง", "แผนกปฏิบัติการภาคเหนือ", "prayuth@company.com"},
	}

	for _, u := range users {
		department, ok := departmentByName[u.Department]
		if !ok {
			continue
		}
		email := u.Email
		user := model.User{
			EmployeeID:   u.EmployeeID,
			FullName:     u.FullName,
			DepartmentID: department.ID,
			DivisionID:   department.DivisionID,
			Email:        &email,
		}
		if err := db.Where(model.User{EmployeeID: u.EmployeeID}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", u.EmployeeID, "error:", err)
		}
	}

	rooms := []model.Room{
		{RoomName: "ห้องประชุมสยาม", Capacity: 12, Equipment: "โปรเจคเตอร์, ไวท์บอร์ด, ไมโครโฟน"},
		{RoomName: "ห้องประชุมกรุงเทพ", Capacity: 8, Equipment: "โปรเจคเตอร์, ไวท์บอร์ด"},
		{RoomName: "ห้องประชุมเชียงใหม่", Capacity: 15, Equipment: "โปรเจคเตอร์, ไวท์บอร์ด, ไมโครโฟน, ระบบเสียง"},
		{RoomName: "ห้องประชุมภูเก็ต", Capacity: 6, Equipment: "โปรเจคเตอร์, ไวท์บอร์ด"},
		{RoomName: "ห้องประชุมขอนแก่น", Capacity: 10, Equipment: "โปรเจคเตอร์, ไวท์บอร์ด, ไมโครโฟน"},
		{RoomName: "ห้องประชุมหาดใหญ่", Capacity: 20, Equipment: "โปรเจคเตอร์, ไวท์บอร์ด, ไมโครโฟน, ระบบเสียง, กล้องวีดีโอ"},
	}

	for _, room := range rooms {
		room.Status = model.RoomActive
		if err := db.Where(model.Room{RoomName: room.RoomName}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", room.RoomName, "error:", err)
		}
	}
}
