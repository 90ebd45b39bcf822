package model

type Division struct {
	DTO
	DivisionName string `gorm:"size:100;uniqueIndex;not null" json:"divisionName"`

	Departments []Department `gorm:"foreignKey:DivisionID" json:"departments,omitempty"`
}

type Department struct {
	DTO
	DepartmentName string `gorm:"size:100;not null" json:"departmentName"`
	DivisionID     uint   `gorm:"not null;index" json:"divisionId"`

	Division Division `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
	Users    []User   `gorm:"foreignKey:DepartmentID" json:"users,omitempty"`
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	DTO
	EmployeeID   string     `gorm:"size:20;uniqueIndex;not null" json:"employeeId"`
	FullName     string     `gorm:"size:100;not null" json:"fullName"`
	DepartmentID uint       `gorm:"not null;index" json:"departmentId"`
	DivisionID   uint       `gorm:"not null;index" json:"divisionId"`
	Email        *string    `gorm:"size:100" json:"email"`
	Status       UserStatus `gorm:"size:20;not null;default:active" json:"status"`

	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Division   Division   `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
}

type CreateUserInput struct {
	EmployeeID   string  `json:"employeeId" validate:"required,max=20"`
	FullName     string  `json:"fullName" validate:"required,max=100"`
	DepartmentID uint    `json:"departmentId" validate:"required,gt=0"`
	DivisionID   uint    `json:"divisionId" validate:"required,gt=0"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

type UpdateUserInput struct {
	EmployeeID   *string `json:"employeeId" validate:"omitempty,min=1,max=20"`
	FullName     *string `json:"fullName" validate:"omitempty,min=1,max=100"`
	DepartmentID *uint   `json:"departmentId" validate:"omitempty,gt=0"`
	DivisionID   *uint   `json:"divisionId" validate:"omitempty,gt=0"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

type CreateDepartmentInput struct {
	DepartmentName string `json:"departmentName" validate:"required,max=100"`
	DivisionID     uint   `json:"divisionId" validate:"required,gt=0"`
}

type UpdateDepartmentInput struct {
	DepartmentName *string `json:"departmentName" validate:"omitempty,min=1,max=100"`
	DivisionID     *uint   `json:"divisionId" validate:"omitempty,gt=0"`
}

type CreateDivisionInput struct {
	DivisionName string `json:"divisionName" validate:"required,max=100"`
}

type UpdateDivisionInput struct {
	DivisionName *string `json:"divisionName" validate:"omitempty,min=1,max=100"`
}
