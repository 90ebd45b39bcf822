package helper

import (
	"fmt"
	"time"
)

// Interval คือช่วงเวลาแบบ half-open [Start, End)
// จองต่อกันพอดี (End ของอันแรก == Start ของอันถัดไป) ไม่ถือว่าชนกัน
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if !iv.Valid() {
		return Interval{}, fmt.Errorf("invalid interval: start %s is not before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return iv, nil
}

func (iv Interval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// Overlaps คือ predicate เดียวของระบบสำหรับตรวจช่วงเวลาทับซ้อน
// ทุกจุดที่ตรวจการชนต้องใช้ฟังก์ชันนี้ (หรือเงื่อนไข SQL
// start_datetime < ? AND end_datetime > ? ซึ่งเทียบเท่ากัน)
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
