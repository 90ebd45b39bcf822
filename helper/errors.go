package helper

import (
	"fmt"
	"time"

	"github.com/Armboy122/meetingroom/model"
)

// ValidationError: ข้อมูลเข้าไม่ถูกต้อง ตรวจพบก่อนเช็คการชนเสมอ
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError: ช่วงเวลาทับกับการจองหรือการปิดห้องที่กันช่วงเวลาอยู่
// เก็บช่วงเวลาของรายการที่ชนไว้ให้ชั้นบนแจ้งผู้ใช้ได้
type ConflictError struct {
	Resource string // "booking" หรือ "closure"
	Start    time.Time
	End      time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict between %s and %s",
		e.Resource, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// StateError: เปลี่ยนสถานะจากสถานะที่ไม่ถูกต้อง แปลว่าฝั่ง client ถือข้อมูลเก่า
type StateError struct {
	Current model.BookingStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("booking is %s, not pending", e.Current)
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// IntegrityError: ลบไม่ได้เพราะมีข้อมูลอื่นอ้างอิงอยู่
type IntegrityError struct {
	Resource  string
	Dependent string
	Count     int64
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("cannot delete %s: %d dependent %s record(s)", e.Resource, e.Count, e.Dependent)
}
