package helper

import (
	"errors"
	"testing"

	"github.com/Armboy122/meetingroom/model"
)

func TestCanCreateBookingBlockingStatuses(t *testing.T) {
	tests := []struct {
		name     string
		existing model.BookingStatus
		blocked  bool
	}{
		{"pending กันช่วงเวลา", model.BookingPending, true},
		{"approved กันช่วงเวลา", model.BookingApproved, true},
		{"confirmed กันช่วงเวลา", model.BookingConfirmed, true},
		{"rejected ไม่กันช่วงเวลา", model.BookingRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			room := mustCreateRoom(t, db, "ห้องประชุม 1")
			mustCreateBooking(t, db, room.ID, tt.existing, at(10, 0), at(11, 0))

			iv := Interval{at(10, 30), at(11, 30)}
			err := CanCreateBooking(db, room.ID, iv, "")

			if tt.blocked {
				var conflictErr *ConflictError
				if !errors.As(err, &conflictErr) {
					t.Fatalf("want ConflictError, got %v", err)
				}
				if conflictErr.Resource != "booking" {
					t.Errorf("Resource = %q, want booking", conflictErr.Resource)
				}
				if !conflictErr.Start.Equal(at(10, 0)) || !conflictErr.End.Equal(at(11, 0)) {
					t.Errorf("conflict range = %v-%v, want 10:00-11:00", conflictErr.Start, conflictErr.End)
				}
			} else if err != nil {
				t.Fatalf("want no error, got %v", err)
			}
		})
	}
}

func TestCanCreateBookingBackToBack(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	mustCreateBooking(t, db, room.ID, model.BookingApproved, at(9, 0), at(10, 0))

	// [9:00, 10:00) กับ [10:00, 11:00) ต่อกันพอดี ต้องจองได้
	if err := CanCreateBooking(db, room.ID, Interval{at(10, 0), at(11, 0)}, ""); err != nil {
		t.Fatalf("back-to-back booking blocked: %v", err)
	}
	if err := CanCreateBooking(db, room.ID, Interval{at(8, 0), at(9, 0)}, ""); err != nil {
		t.Fatalf("back-to-back booking blocked: %v", err)
	}
}

func TestCanCreateBookingOtherRoomIgnored(t *testing.T) {
	db := newTestDB(t)
	roomA := mustCreateRoom(t, db, "ห้อง A")
	roomB := mustCreateRoom(t, db, "ห้อง B")
	mustCreateBooking(t, db, roomA.ID, model.BookingApproved, at(10, 0), at(11, 0))

	if err := CanCreateBooking(db, roomB.ID, Interval{at(10, 0), at(11, 0)}, ""); err != nil {
		t.Fatalf("booking in another room blocked: %v", err)
	}
}

func TestCanCreateBookingExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))

	if err := CanCreateBooking(db, room.ID, Interval{at(10, 0), at(11, 0)}, booking.BookingID); err != nil {
		t.Fatalf("booking conflicts with itself: %v", err)
	}
}

func TestCanCreateBookingInvalidInterval(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")

	err := CanCreateBooking(db, room.ID, Interval{at(11, 0), at(10, 0)}, "")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestCanApproveBookingIgnoresPending(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))

	// pending คู่แข่งยังไม่ได้เป็นเจ้าของช่วงเวลา อนุมัติทับได้
	if err := CanApproveBooking(db, room.ID, Interval{at(10, 0), at(11, 0)}, ""); err != nil {
		t.Fatalf("pending competitor blocked approval: %v", err)
	}

	mustCreateBooking(t, db, room.ID, model.BookingApproved, at(10, 0), at(11, 0))
	err := CanApproveBooking(db, room.ID, Interval{at(10, 30), at(11, 30)}, "")
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("approved booking did not block approval: %v", err)
	}
}

func TestRoomClosedDuring(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	mustCreateClosure(t, db, room.ID, at(13, 0), at(17, 0))

	err := RoomClosedDuring(db, room.ID, Interval{at(14, 0), at(15, 0)})
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("want ConflictError, got %v", err)
	}
	if conflictErr.Resource != "closure" {
		t.Errorf("Resource = %q, want closure", conflictErr.Resource)
	}

	// จบพอดีตอนเริ่มปิดห้อง ไม่ชน
	if err := RoomClosedDuring(db, room.ID, Interval{at(12, 0), at(13, 0)}); err != nil {
		t.Fatalf("booking ending at closure start blocked: %v", err)
	}
	// เริ่มพอดีตอนเปิดห้องกลับ ไม่ชน
	if err := RoomClosedDuring(db, room.ID, Interval{at(17, 0), at(18, 0)}); err != nil {
		t.Fatalf("booking starting at closure end blocked: %v", err)
	}
}

func TestHasOverlappingClosure(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	closure := mustCreateClosure(t, db, room.ID, at(13, 0), at(17, 0))

	err := HasOverlappingClosure(db, room.ID, Interval{at(16, 0), at(18, 0)}, "")
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("overlapping closure not detected: %v", err)
	}

	// ตอนแก้ไขรายการเดิมต้องไม่ชนกับตัวเอง
	if err := HasOverlappingClosure(db, room.ID, Interval{at(13, 0), at(18, 0)}, closure.ClosureID); err != nil {
		t.Fatalf("closure conflicts with itself: %v", err)
	}
}
