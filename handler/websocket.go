package handler

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/gofiber/contrib/websocket"
)

var (
	roomClients = make(map[uint]map[*websocket.Conn]bool)
	roomMu      sync.Mutex
)

// RoomCalendarConnection ส่งตารางใช้ห้องของวันนั้นครั้งแรก แล้วถือ connection
// ค้างไว้รอ event จาก redis channel ของห้อง ให้หน้าปฏิทินอัปเดตสด
func RoomCalendarConnection(c *websocket.Conn) {
	roomIDStr := c.Params("roomId")
	id64, _ := strconv.ParseUint(roomIDStr, 10, 64)
	roomID := uint(id64)

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		if parsed, err := time.Parse("2006-01-02", dateStr); err == nil {
			day = parsed
		}
	}

	defer func() {
		roomMu.Lock()
		if roomClients[roomID] != nil {
			delete(roomClients[roomID], c)
		}
		roomMu.Unlock()
		c.Close()
	}()

	roomMu.Lock()
	if roomClients[roomID] == nil {
		roomClients[roomID] = make(map[*websocket.Conn]bool)
	}
	roomClients[roomID][c] = true
	roomMu.Unlock()

	// ส่งตารางครั้งแรก ใช้ cache ก่อน พลาดค่อยลงฐานข้อมูล
	schedule := helper.GetCachedDaySchedule(roomID, day)
	if schedule == nil {
		fetched, err := helper.FetchDaySchedule(database.DB, roomID, day)
		if err == nil {
			schedule = fetched
		}
	}
	if schedule != nil {
		c.WriteJSON(schedule)
	}

	rdb := helper.RedisClient()
	if rdb == nil {
		// ไม่มี redis ก็ยังใช้ได้แบบดึงครั้งเดียว
		return
	}

	pubsub := rdb.Subscribe(context.Background(), helper.RoomChannel(roomID))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		roomMu.Lock()
		for conn := range roomClients[roomID] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(roomClients[roomID], conn)
			}
		}
		roomMu.Unlock()
	}
}
