package helper

import (
	"errors"
	"testing"

	"github.com/Armboy122/meetingroom/model"
)

func TestCreateBookingPending(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	organizer := mustCreateUser(t, db, "EMP001")

	email := "somchai@example.com"
	booking, err := CreateBooking(db, model.CreateBookingInput{
		RoomID:        room.ID,
		Title:         "ประชุมทีม",
		StartDatetime: at(9, 0),
		EndDatetime:   at(10, 0),
		OrganizerID:   organizer.ID,
		CreatedBy:     "สมชาย",
		Participants: []model.ParticipantInput{
			{ParticipantName: "สมชาย ใจดี", ParticipantEmail: &email},
			{ParticipantName: "สมหญิง รักงาน"},
		},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if booking.BookingID == "" {
		t.Error("booking id not generated")
	}
	if booking.Status != model.BookingPending {
		t.Errorf("status = %q, want pending", booking.Status)
	}

	var participants int64
	db.Model(&model.Participant{}).Where("booking_id = ?", booking.BookingID).Count(&participants)
	if participants != 2 {
		t.Errorf("participants = %d, want 2", participants)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	organizer := mustCreateUser(t, db, "EMP001")
	mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))

	_, err := CreateBooking(db, model.CreateBookingInput{
		RoomID:        room.ID,
		Title:         "ประชุมซ้อน",
		StartDatetime: at(10, 30),
		EndDatetime:   at(11, 30),
		OrganizerID:   organizer.ID,
	})
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("want ConflictError, got %v", err)
	}

	// การจองที่ชนต้องไม่ถูกบันทึกเลย
	var count int64
	db.Model(&model.Booking{}).Count(&count)
	if count != 1 {
		t.Errorf("bookings = %d, want 1", count)
	}
}

func TestCreateBookingClosedRoom(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	organizer := mustCreateUser(t, db, "EMP001")
	mustCreateClosure(t, db, room.ID, at(8, 0), at(18, 0))

	_, err := CreateBooking(db, model.CreateBookingInput{
		RoomID:        room.ID,
		Title:         "ประชุมช่วงปิดห้อง",
		StartDatetime: at(10, 0),
		EndDatetime:   at(11, 0),
		OrganizerID:   organizer.ID,
	})
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("want ConflictError, got %v", err)
	}
	if conflictErr.Resource != "closure" {
		t.Errorf("Resource = %q, want closure", conflictErr.Resource)
	}
}

func TestCreateBookingInactiveRoom(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	organizer := mustCreateUser(t, db, "EMP001")
	db.Model(&room).Update("status", model.RoomInactive)

	_, err := CreateBooking(db, model.CreateBookingInput{
		RoomID:        room.ID,
		Title:         "ประชุมห้องปิดใช้งาน",
		StartDatetime: at(10, 0),
		EndDatetime:   at(11, 0),
		OrganizerID:   organizer.ID,
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestApproveBookingStamps(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))

	approved, err := ApproveBooking(db, booking.BookingID, "หัวหน้าแผนก")
	if err != nil {
		t.Fatalf("ApproveBooking: %v", err)
	}
	if approved.Status != model.BookingApproved {
		t.Errorf("status = %q, want approved", approved.Status)
	}

	var stored model.Booking
	db.First(&stored, "booking_id = ?", booking.BookingID)
	if stored.Status != model.BookingApproved {
		t.Errorf("stored status = %q, want approved", stored.Status)
	}
	if stored.ApprovedBy == nil || *stored.ApprovedBy != "หัวหน้าแผนก" {
		t.Error("approved_by not stamped")
	}
	if stored.ApprovedAt == nil {
		t.Error("approved_at not stamped")
	}
}

func TestApproveNonPending(t *testing.T) {
	for _, status := range []model.BookingStatus{model.BookingApproved, model.BookingRejected, model.BookingConfirmed} {
		t.Run(string(status), func(t *testing.T) {
			db := newTestDB(t)
			room := mustCreateRoom(t, db, "ห้องประชุม 1")
			booking := mustCreateBooking(t, db, room.ID, status, at(10, 0), at(11, 0))

			_, err := ApproveBooking(db, booking.BookingID, "หัวหน้าแผนก")
			var stateErr *StateError
			if !errors.As(err, &stateErr) {
				t.Fatalf("want StateError, got %v", err)
			}
			if stateErr.Current != status {
				t.Errorf("Current = %q, want %q", stateErr.Current, status)
			}
		})
	}
}

func TestApproveBookingNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := ApproveBooking(db, "missing-id", "หัวหน้าแผนก")
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

// สองคำขอ pending ทับช่วงเวลากัน คำขอแรกที่ถูกอนุมัติชนะ
// คำขอที่สองต้องอนุมัติไม่ผ่านและยังคงสถานะ pending
func TestApproveCompetingPendings(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	first := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))
	second := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 30), at(11, 30))

	if _, err := ApproveBooking(db, first.BookingID, "หัวหน้าแผนก"); err != nil {
		t.Fatalf("approve first: %v", err)
	}

	_, err := ApproveBooking(db, second.BookingID, "หัวหน้าแผนก")
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("want ConflictError, got %v", err)
	}

	var stored model.Booking
	db.First(&stored, "booking_id = ?", second.BookingID)
	if stored.Status != model.BookingPending {
		t.Errorf("loser status = %q, want pending", stored.Status)
	}
}

func TestApproveBlockedByClosure(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))
	// ห้องถูกปิดหลังยื่นคำขอ
	mustCreateClosure(t, db, room.ID, at(9, 0), at(12, 0))

	_, err := ApproveBooking(db, booking.BookingID, "หัวหน้าแผนก")
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("want ConflictError, got %v", err)
	}
	if conflictErr.Resource != "closure" {
		t.Errorf("Resource = %q, want closure", conflictErr.Resource)
	}
}

func TestRejectBooking(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))

	rejected, err := RejectBooking(db, booking.BookingID, "หัวหน้าแผนก", "ห้องไม่เหมาะกับจำนวนคน")
	if err != nil {
		t.Fatalf("RejectBooking: %v", err)
	}
	if rejected.Status != model.BookingRejected {
		t.Errorf("status = %q, want rejected", rejected.Status)
	}

	var stored model.Booking
	db.First(&stored, "booking_id = ?", booking.BookingID)
	// ชื่อผู้ปฏิเสธเก็บลงคอลัมน์เดียวกับผู้อนุมัติ
	if stored.ApprovedBy == nil || *stored.ApprovedBy != "หัวหน้าแผนก" {
		t.Error("rejector not stamped into approved_by")
	}
	if stored.RejectedReason == nil || *stored.RejectedReason != "ห้องไม่เหมาะกับจำนวนคน" {
		t.Error("rejected_reason not stored")
	}
}

func TestRejectBookingDefaultReason(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))

	rejected, err := RejectBooking(db, booking.BookingID, "หัวหน้าแผนก", "")
	if err != nil {
		t.Fatalf("RejectBooking: %v", err)
	}
	if rejected.RejectedReason == nil || *rejected.RejectedReason != DefaultRejectedReason {
		t.Errorf("reason = %v, want %q", rejected.RejectedReason, DefaultRejectedReason)
	}
}

func TestRejectNonPending(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingApproved, at(10, 0), at(11, 0))

	_, err := RejectBooking(db, booking.BookingID, "หัวหน้าแผนก", "")
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("want StateError, got %v", err)
	}
}

// ไล่ตามเหตุการณ์จริงทั้งสาย: จอง ชน อนุมัติ ขอซ้ำ ปฏิเสธย้อนหลัง และจองต่อท้าย
func TestBookingFlowScenario(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม R")
	organizer := mustCreateUser(t, db, "EMP001")

	newInput := func(title string, start, end [2]int) model.CreateBookingInput {
		return model.CreateBookingInput{
			RoomID:        room.ID,
			Title:         title,
			StartDatetime: at(start[0], start[1]),
			EndDatetime:   at(end[0], end[1]),
			OrganizerID:   organizer.ID,
		}
	}

	first, err := CreateBooking(db, newInput("ประชุมเช้า", [2]int{9, 0}, [2]int{10, 0}))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// ช่วง 9:30-10:30 ชนกับ pending ที่จองไว้แล้ว
	_, err = CreateBooking(db, newInput("ประชุมซ้อน", [2]int{9, 30}, [2]int{10, 30}))
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("overlapping pending not blocked: %v", err)
	}

	if _, err := ApproveBooking(db, first.BookingID, "หัวหน้าแผนก"); err != nil {
		t.Fatalf("approve first: %v", err)
	}

	// ขอช่วงเดิมซ้ำหลังอนุมัติแล้วก็ยังชน
	_, err = CreateBooking(db, newInput("ประชุมซ้อนรอบสอง", [2]int{9, 30}, [2]int{10, 30}))
	if !errors.As(err, &conflictErr) {
		t.Fatalf("overlapping approved not blocked: %v", err)
	}

	// อนุมัติแล้วปฏิเสธย้อนหลังไม่ได้
	_, err = RejectBooking(db, first.BookingID, "หัวหน้าแผนก", "")
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("reject after approval allowed: %v", err)
	}

	// จองต่อท้าย 10:00-11:00 เริ่มพอดีตอนรายการแรกจบ ต้องผ่าน
	if _, err := CreateBooking(db, newInput("ประชุมต่อท้าย", [2]int{10, 0}, [2]int{11, 0})); err != nil {
		t.Fatalf("back-to-back booking blocked: %v", err)
	}
}

// ปฏิเสธแล้วช่วงเวลาต้องว่างให้คนอื่นจองได้ทันที
func TestRejectedFreesSlot(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	organizer := mustCreateUser(t, db, "EMP001")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))

	if _, err := RejectBooking(db, booking.BookingID, "หัวหน้าแผนก", ""); err != nil {
		t.Fatalf("RejectBooking: %v", err)
	}

	_, err := CreateBooking(db, model.CreateBookingInput{
		RoomID:        room.ID,
		Title:         "ประชุมใหม่ช่วงเดิม",
		StartDatetime: at(10, 0),
		EndDatetime:   at(11, 0),
		OrganizerID:   organizer.ID,
	})
	if err != nil {
		t.Fatalf("slot not freed after rejection: %v", err)
	}
}
