package helper

import (
	"log"
	"time"

	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/model"
	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var scheduleCacheCron *cron.Cron
var maintenanceScheduler gocron.Scheduler

// WarmTodaySchedules อุ่น cache ตารางวันนี้ของห้องที่เปิดใช้งานทุกห้อง
func WarmTodaySchedules() {
	db := database.DB
	today := time.Now()

	var rooms []model.Room
	if err := db.Where("status = ?", model.RoomActive).Find(&rooms).Error; err != nil {
		log.Printf("ดึงรายชื่อห้องไม่สำเร็จ: %v", err)
		return
	}

	for _, room := range rooms {
		if err := WarmDaySchedule(db, room.ID, today); err != nil {
			log.Printf("อุ่น cache ห้อง %d ไม่สำเร็จ: %v", room.ID, err)
		}
	}
}

// StartScheduleCacheWorker อุ่น cache ทุก 5 นาที
func StartScheduleCacheWorker() {
	if RedisClient() == nil {
		return
	}

	scheduleCacheCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduleCacheCron.AddFunc("*/5 * * * *", WarmTodaySchedules)
	if err != nil {
		log.Printf("เริ่ม schedule cache worker ไม่สำเร็จ: %v", err)
		return
	}

	scheduleCacheCron.Start()
	log.Println("Schedule cache worker เริ่มทำงาน (ทุก 5 นาที)")
}

func StopScheduleCacheWorker() {
	if scheduleCacheCron != nil {
		scheduleCacheCron.Stop()
	}
}

// dailyMaintenance ลบ cache วันเก่าและรายงานจำนวนคำขอที่ค้างอนุมัติ
func dailyMaintenance() {
	db := database.DB

	var roomIDs []uint
	if err := db.Model(&model.Room{}).Pluck("id", &roomIDs).Error; err != nil {
		log.Printf("[CRON] ดึงรายชื่อห้องไม่สำเร็จ: %v", err)
		return
	}
	SweepScheduleCache(roomIDs, time.Now(), 7)

	var pendingCount int64
	if err := db.Model(&model.Booking{}).Where("status = ?", model.BookingPending).Count(&pendingCount).Error; err != nil {
		log.Printf("[CRON] นับคำขอค้างอนุมัติไม่สำเร็จ: %v", err)
		return
	}
	if pendingCount > 0 {
		log.Printf("[CRON] มีคำขอจองค้างอนุมัติ %d รายการ", pendingCount)
	}
}

// StartDailyMaintenance ตั้งงานประจำวันตอน 00:05
func StartDailyMaintenance() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("เริ่ม daily maintenance ไม่สำเร็จ: %v", err)
		return
	}

	maintenanceScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(dailyMaintenance),
	)
	if err != nil {
		log.Printf("ตั้งงาน daily maintenance ไม่สำเร็จ: %v", err)
		return
	}

	s.Start()
}

func StopDailyMaintenance() {
	if maintenanceScheduler != nil {
		_ = maintenanceScheduler.Shutdown()
	}
}
