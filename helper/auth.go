package helper

import (
	"errors"
	"time"

	"github.com/Armboy122/meetingroom/config"
	"github.com/Armboy122/meetingroom/constants"
	"github.com/Armboy122/meetingroom/model"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// VerifyAdminPassword เทียบรหัสผ่านกับ bcrypt hash ใน admin_settings
// ชั้น core (conflict/lifecycle) ไม่เรียกฟังก์ชันนี้เอง การตรวจสิทธิ์
// เป็นหน้าที่ของ middleware/handler เท่านั้น
func VerifyAdminPassword(db *gorm.DB, password string) (bool, error) {
	var setting model.AdminSetting
	err := db.First(&setting, "setting_key = ?", constants.SettingAdminPassword).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(setting.SettingValue), []byte(password))
	return err == nil, nil
}

// UpdateAdminPassword เปลี่ยนรหัสผ่านผู้ดูแล ต้องยืนยันรหัสเดิมก่อน
func UpdateAdminPassword(db *gorm.DB, currentPassword, newPassword string) error {
	ok, err := VerifyAdminPassword(db, currentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Field: "currentPassword", Message: "current password is incorrect"}
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(newPassword), 10)
	if err != nil {
		return err
	}
	return db.Model(&model.AdminSetting{}).
		Where("setting_key = ?", constants.SettingAdminPassword).
		Update("setting_value", string(bytes)).Error
}

func jwtSecret() []byte {
	return []byte(config.ConfigOr("JWT_SECRET", "meetingroom-dev-secret"))
}

// IssueAdminToken ออก token ผู้ดูแลอายุ 1 ชั่วโมงหลังยืนยันรหัสผ่านแล้ว
func IssueAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseAdminToken ตรวจ token จาก middleware คืน true เมื่อเป็น token ผู้ดูแลที่ยังไม่หมดอายุ
func ParseAdminToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	return claims["role"] == "admin"
}
