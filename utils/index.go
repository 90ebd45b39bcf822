package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

// PageOr คืนค่าหน้า/ขนาดหน้าพร้อม default สำหรับหน้า history
func PageOr(v *int, fallback int) int {
	if v != nil && *v > 0 {
		return *v
	}
	return fallback
}

// ParseDateParam แปลง YYYY-MM-DD เป็นช่วง [เริ่มวัน, เริ่มวันถัดไป)
func ParseDateParam(dateStr string) (time.Time, time.Time, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := day
	end := day.AddDate(0, 0, 1)
	return start, end, nil
}

func Ptr[T any](v T) *T {
	return &v
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
