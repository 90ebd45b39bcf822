package helper

import (
	"errors"
	"testing"

	"github.com/Armboy122/meetingroom/model"
	"gorm.io/gorm"
)

func TestDeleteBookingCascade(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))
	db.Create(&model.Participant{BookingID: booking.BookingID, ParticipantName: "สมชาย"})
	db.Create(&model.Participant{BookingID: booking.BookingID, ParticipantName: "สมหญิง"})

	if err := DeleteBookingCascade(db, booking.BookingID); err != nil {
		t.Fatalf("DeleteBookingCascade: %v", err)
	}

	var bookings, participants int64
	db.Model(&model.Booking{}).Count(&bookings)
	db.Model(&model.Participant{}).Count(&participants)
	if bookings != 0 || participants != 0 {
		t.Errorf("bookings = %d, participants = %d, want 0/0", bookings, participants)
	}
}

func TestDeleteBookingCascadeNotFound(t *testing.T) {
	db := newTestDB(t)

	err := DeleteBookingCascade(db, "missing-id")
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestDeleteRoomRefusesWithBookings(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	mustCreateBooking(t, db, room.ID, model.BookingRejected, at(10, 0), at(11, 0))

	// นับทุกสถานะ แม้ rejected ก็ยังเป็นประวัติที่อ้างอิงห้องอยู่
	err := DeleteRoom(db, room.ID, false)
	var integrityErr *IntegrityError
	if !errors.As(err, &integrityErr) {
		t.Fatalf("want IntegrityError, got %v", err)
	}
	if integrityErr.Count != 1 {
		t.Errorf("Count = %d, want 1", integrityErr.Count)
	}

	var rooms int64
	db.Model(&model.Room{}).Count(&rooms)
	if rooms != 1 {
		t.Error("room deleted despite refusal")
	}
}

func TestDeleteRoomForceCascades(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	other := mustCreateRoom(t, db, "ห้องประชุม 2")

	booking := mustCreateBooking(t, db, room.ID, model.BookingApproved, at(10, 0), at(11, 0))
	db.Create(&model.Participant{BookingID: booking.BookingID, ParticipantName: "สมชาย"})
	mustCreateClosure(t, db, room.ID, at(13, 0), at(14, 0))

	keepBooking := mustCreateBooking(t, db, other.ID, model.BookingApproved, at(10, 0), at(11, 0))
	db.Create(&model.Participant{BookingID: keepBooking.BookingID, ParticipantName: "สมหญิง"})

	if err := DeleteRoom(db, room.ID, true); err != nil {
		t.Fatalf("DeleteRoom force: %v", err)
	}

	var rooms, bookings, participants, closures int64
	db.Model(&model.Room{}).Count(&rooms)
	db.Model(&model.Booking{}).Count(&bookings)
	db.Model(&model.Participant{}).Count(&participants)
	db.Model(&model.RoomClosure{}).Count(&closures)

	// ข้อมูลของห้องอื่นต้องไม่ถูกแตะ
	if rooms != 1 || bookings != 1 || participants != 1 || closures != 0 {
		t.Errorf("after cascade: rooms=%d bookings=%d participants=%d closures=%d, want 1/1/1/0",
			rooms, bookings, participants, closures)
	}
}

func TestDeleteUserWithBookings(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	user := mustCreateUser(t, db, "EMP001")

	booking := mustCreateBooking(t, db, room.ID, model.BookingApproved, at(10, 0), at(11, 0))
	db.Model(&booking).Update("organizer_id", user.ID)

	err := DeleteUser(db, user.ID)
	var integrityErr *IntegrityError
	if !errors.As(err, &integrityErr) {
		t.Fatalf("want IntegrityError, got %v", err)
	}

	var users int64
	db.Model(&model.User{}).Count(&users)
	if users != 1 {
		t.Error("user deleted despite bookings")
	}
}

func TestDeleteUserClean(t *testing.T) {
	db := newTestDB(t)
	user := mustCreateUser(t, db, "EMP001")

	if err := DeleteUser(db, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	var users int64
	db.Model(&model.User{}).Count(&users)
	if users != 0 {
		t.Error("user not deleted")
	}
}

// transaction ล้มกลางทางต้อง rollback ทั้งชุด ห้ามเหลือรายชื่อครึ่งๆ กลางๆ
func TestReplaceParticipantsRollback(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))
	db.Create(&model.Participant{BookingID: booking.BookingID, ParticipantName: "คนเดิม"})

	boom := errors.New("boom")
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ReplaceParticipants(tx, booking.BookingID, []model.ParticipantInput{
			{ParticipantName: "คนใหม่"},
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("unexpected error: %v", err)
	}

	var participants []model.Participant
	db.Where("booking_id = ?", booking.BookingID).Find(&participants)
	if len(participants) != 1 || participants[0].ParticipantName != "คนเดิม" {
		t.Errorf("rollback incomplete, participants = %+v", participants)
	}
}

func TestReplaceParticipants(t *testing.T) {
	db := newTestDB(t)
	room := mustCreateRoom(t, db, "ห้องประชุม 1")
	booking := mustCreateBooking(t, db, room.ID, model.BookingPending, at(10, 0), at(11, 0))
	db.Create(&model.Participant{BookingID: booking.BookingID, ParticipantName: "คนเดิม"})

	err := ReplaceParticipants(db, booking.BookingID, []model.ParticipantInput{
		{ParticipantName: "คนใหม่ 1"},
		{ParticipantName: "คนใหม่ 2"},
	})
	if err != nil {
		t.Fatalf("ReplaceParticipants: %v", err)
	}

	var participants []model.Participant
	db.Where("booking_id = ?", booking.BookingID).Find(&participants)
	if len(participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(participants))
	}
	for _, p := range participants {
		if p.ParticipantName == "คนเดิม" {
			t.Error("old participant still present")
		}
	}
}
