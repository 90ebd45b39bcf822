package router

import (
	"github.com/Armboy122/meetingroom/handler"
	"github.com/Armboy122/meetingroom/middleware"
	"github.com/Armboy122/meetingroom/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	booking := v1.Group("/bookings", logger.New())
	booking.Get("/", handler.GetBookings)
	booking.Get("/history", handler.GetBookingHistory)
	booking.Get("/pending", middleware.AdminProtected(), handler.GetPendingBookings)
	booking.Get("/:bookingId", handler.GetBookingById)
	booking.Post("/", validate.CreateBooking(), handler.CreateBooking)
	booking.Put("/:bookingId", validate.UpdateBooking("bookingId"), handler.UpdateBooking)
	booking.Delete("/:bookingId", handler.DeleteBooking)
	booking.Get("/:bookingId/participants", handler.GetParticipants)
	booking.Post("/:bookingId/participants", validate.AddParticipant("bookingId"), handler.AddParticipant)
	booking.Patch("/:bookingId/approve", middleware.AdminProtected(), validate.ApproveBooking("bookingId"), handler.ApproveBooking)
	booking.Patch("/:bookingId/reject", middleware.AdminProtected(), validate.RejectBooking("bookingId"), handler.RejectBooking)

	room := v1.Group("/rooms", logger.New())
	room.Get("/", handler.GetRooms)
	room.Get("/:roomId", validate.GetById("roomId"), handler.GetRoomById)
	room.Post("/", middleware.AdminProtected(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.AdminProtected(), validate.EditRoom("roomId"), handler.EditRoom)
	room.Delete("/:roomId", middleware.AdminProtected(), validate.GetById("roomId"), handler.DeleteRoom)
	room.Patch("/:roomId/disable", middleware.AdminProtected(), validate.GetById("roomId"), handler.DisableRoom)
	room.Patch("/:roomId/enable", middleware.AdminProtected(), validate.GetById("roomId"), handler.EnableRoom)

	closure := v1.Group("/room-closures", logger.New())
	closure.Get("/", handler.GetClosures)
	closure.Post("/", middleware.AdminProtected(), validate.CreateClosure(), handler.CreateClosure)
	closure.Put("/:closureId", middleware.AdminProtected(), validate.UpdateClosure("closureId"), handler.UpdateClosure)
	closure.Delete("/:closureId", middleware.AdminProtected(), handler.DeleteClosure)

	user := v1.Group("/users", logger.New())
	user.Get("/", handler.GetUsers)
	user.Get("/search", handler.SearchUsers)
	user.Get("/:userId", validate.GetById("userId"), handler.GetUserById)
	user.Post("/", middleware.AdminProtected(), validate.CreateUser(), handler.CreateUser)
	user.Put("/:userId", middleware.AdminProtected(), validate.UpdateUser("userId"), handler.UpdateUser)
	user.Delete("/:userId", middleware.AdminProtected(), validate.GetById("userId"), handler.DeleteUser)
	user.Patch("/:userId/deactivate", middleware.AdminProtected(), validate.GetById("userId"), handler.DeactivateUser)

	department := v1.Group("/departments", logger.New())
	department.Get("/", handler.GetDepartments)
	department.Post("/", middleware.AdminProtected(), validate.CreateDepartment(), handler.CreateDepartment)
	department.Put("/:departmentId", middleware.AdminProtected(), validate.UpdateDepartment("departmentId"), handler.UpdateDepartment)
	department.Delete("/:departmentId", middleware.AdminProtected(), validate.GetById("departmentId"), handler.DeleteDepartment)

	division := v1.Group("/divisions", logger.New())
	division.Get("/", handler.GetDivisions)
	division.Post("/", middleware.AdminProtected(), validate.CreateDivision(), handler.CreateDivision)
	division.Put("/:divisionId", middleware.AdminProtected(), validate.UpdateDivision("divisionId"), handler.UpdateDivision)
	division.Delete("/:divisionId", middleware.AdminProtected(), validate.GetById("divisionId"), handler.DeleteDivision)

	admin := v1.Group("/admin", logger.New())
	admin.Post("/auth", validate.AdminAuth(), handler.AdminAuth)
	admin.Post("/change-password", middleware.AdminProtected(), validate.ChangeAdminPassword(), handler.ChangeAdminPassword)

	app.Get("/ws/rooms/:roomId", websocket.New(handler.RoomCalendarConnection))
}
