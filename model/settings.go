package model

// AdminSetting เก็บค่าตั้งระบบแบบ key/value
// แถว admin_password เก็บรหัสผ่านผู้ดูแลแบบ bcrypt hash
type AdminSetting struct {
	DTO
	SettingKey   string `gorm:"size:50;uniqueIndex;not null" json:"settingKey"`
	SettingValue string `gorm:"size:255;not null" json:"-"`
}

type AdminAuthInput struct {
	Password string `json:"password" validate:"required"`
}

type ChangeAdminPasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
