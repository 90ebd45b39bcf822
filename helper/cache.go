package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Armboy122/meetingroom/model"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var redisClient *redis.Client

// InitRedis ต้องเรียกก่อนใช้ cache/pubsub ถ้า addr ว่างจะข้าม redis ทั้งหมด
func InitRedis(addr string) {
	if addr == "" {
		log.Println("REDIS_ADDR not set, schedule cache and live updates disabled")
		return
	}
	redisClient = redis.NewClient(&redis.Options{Addr: addr})
}

func RedisClient() *redis.Client {
	return redisClient
}

func RoomChannel(roomID uint) string {
	return fmt.Sprintf("room:%d", roomID)
}

func ScheduleCacheKey(roomID uint, day time.Time) string {
	return fmt.Sprintf("schedule:%d:%s", roomID, day.Format("2006-01-02"))
}

// RoomEvent แจ้งการเปลี่ยนแปลงตารางห้องให้ client ที่เปิดปฏิทินค้างไว้
type RoomEvent struct {
	Type      string `json:"type"` // booking_created, booking_approved, booking_rejected, booking_updated, booking_deleted, closure_changed, room_deleted
	RoomID    uint   `json:"roomId"`
	BookingID string `json:"bookingId,omitempty"`
	ClosureID string `json:"closureId,omitempty"`
}

// DaySchedule คือตารางใช้ห้องหนึ่งวัน ใช้ทั้งตอบ WebSocket ครั้งแรกและเก็บ cache
type DaySchedule struct {
	RoomID   uint                `json:"roomId"`
	Date     string              `json:"date"`
	Bookings []model.Booking     `json:"bookings"`
	Closures []model.RoomClosure `json:"closures"`
}

// PublishRoomEvent ส่ง event เข้า redis channel ของห้อง และล้าง cache วันที่เกี่ยวข้อง
func PublishRoomEvent(event RoomEvent, days ...time.Time) {
	if redisClient == nil {
		return
	}
	ctx := context.Background()

	for _, day := range days {
		if err := redisClient.Del(ctx, ScheduleCacheKey(event.RoomID, day)).Err(); err != nil {
			log.Printf("ล้าง cache ตารางห้อง %d ไม่สำเร็จ: %v", event.RoomID, err)
		}
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := redisClient.Publish(ctx, RoomChannel(event.RoomID), payload).Err(); err != nil {
		log.Printf("ส่ง event ห้อง %d ไม่สำเร็จ: %v", event.RoomID, err)
	}
}

// FetchDaySchedule ดึงตารางใช้ห้องของวันนั้นจากฐานข้อมูล
// แสดงเฉพาะการจองที่ยังกันช่วงเวลาอยู่ (ไม่รวม rejected) ตามหน้าปฏิทิน
func FetchDaySchedule(db *gorm.DB, roomID uint, day time.Time) (*DaySchedule, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var bookings []model.Booking
	err := db.Preload("Participants").
		Where("room_id = ? AND status IN ?", roomID, model.CreationBlockingStatuses()).
		Where("start_datetime < ? AND end_datetime > ?", endOfDay, startOfDay).
		Order("start_datetime ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	var closures []model.RoomClosure
	err = db.Where("room_id = ? AND start_datetime < ? AND end_datetime > ?", roomID, endOfDay, startOfDay).
		Order("start_datetime ASC").
		Find(&closures).Error
	if err != nil {
		return nil, err
	}

	return &DaySchedule{
		RoomID:   roomID,
		Date:     startOfDay.Format("2006-01-02"),
		Bookings: bookings,
		Closures: closures,
	}, nil
}

// WarmDaySchedule ดึงตารางแล้วเก็บลง redis อายุ 24 ชั่วโมง
func WarmDaySchedule(db *gorm.DB, roomID uint, day time.Time) error {
	schedule, err := FetchDaySchedule(db, roomID, day)
	if err != nil {
		return err
	}
	if redisClient == nil {
		return nil
	}

	payload, err := json.Marshal(schedule)
	if err != nil {
		return err
	}
	return redisClient.Set(context.Background(), ScheduleCacheKey(roomID, day), payload, 24*time.Hour).Err()
}

// GetCachedDaySchedule อ่านตารางจาก cache คืน nil เมื่อไม่มี
func GetCachedDaySchedule(roomID uint, day time.Time) *DaySchedule {
	if redisClient == nil {
		return nil
	}

	payload, err := redisClient.Get(context.Background(), ScheduleCacheKey(roomID, day)).Bytes()
	if err != nil {
		return nil
	}

	var schedule DaySchedule
	if err := json.Unmarshal(payload, &schedule); err != nil {
		return nil
	}
	return &schedule
}

// SweepScheduleCache ลบ cache ของวันที่ผ่านมาแล้ว
func SweepScheduleCache(roomIDs []uint, before time.Time, days int) {
	if redisClient == nil {
		return
	}
	ctx := context.Background()

	for _, roomID := range roomIDs {
		for i := 1; i <= days; i++ {
			key := ScheduleCacheKey(roomID, before.AddDate(0, 0, -i))
			if err := redisClient.Del(ctx, key).Err(); err != nil {
				log.Printf("ลบ cache เก่า %s ไม่สำเร็จ: %v", key, err)
			}
		}
	}
}
