package constants

// ข้อความตอบกลับฝั่งผู้ใช้ (ภาษาไทยตามระบบเดิม)
const (
	ERROR_INPUT              = "ข้อมูลที่ส่งมาไม่ถูกต้อง"
	DATA_INPUT_IS_NOT_NUMBER = "รหัสต้องเป็นตัวเลข"
	NOT_ADMIN                = "ต้องยืนยันสิทธิ์ผู้ดูแลระบบก่อนทำรายการ"
	WRONG_ADMIN_PASSWORD     = "รหัสผ่าน Admin ไม่ถูกต้อง"

	ROOM_NOT_FOUND       = "ไม่พบห้องประชุม"
	ROOM_NAME_TAKEN      = "ชื่อห้องนี้ถูกใช้แล้ว"
	ROOM_HAS_BOOKINGS    = "ไม่สามารถลบห้องได้ เนื่องจากมีการจองอ้างอิงอยู่"
	ROOM_CLOSED          = "ห้องถูกปิดใช้งานในช่วงเวลาดังกล่าว"
	ROOM_SLOT_TAKEN      = "ห้องถูกจองในช่วงเวลานี้แล้ว"
	CLOSURE_NOT_FOUND    = "ไม่พบรายการปิดห้อง"
	CLOSURE_OVERLAP      = "มีการปิดห้องในช่วงเวลาที่ทับซ้อนกันอยู่แล้ว"
	BOOKING_NOT_FOUND    = "ไม่พบการจอง"
	BOOKING_NOT_PENDING  = "การจองไม่อยู่ในสถานะรออนุมัติแล้ว กรุณาโหลดข้อมูลใหม่"
	END_BEFORE_START     = "เวลาสิ้นสุดต้องอยู่หลังเวลาเริ่มต้น"
	APPROVER_REQUIRED    = "ต้องระบุชื่อผู้อนุมัติ"
	REJECTOR_REQUIRED    = "ต้องระบุชื่อผู้ปฏิเสธ"
	USER_NOT_FOUND       = "ไม่พบผู้ใช้งาน"
	EMPLOYEE_ID_TAKEN    = "รหัสพนักงานนี้ถูกใช้แล้ว"
	USER_HAS_BOOKINGS    = "ไม่สามารถลบผู้ใช้ที่มีการจองได้ กรุณาปิดใช้งานแทน"
	DEPT_NOT_IN_DIVISION = "แผนกไม่ได้อยู่ในกองที่ระบุ"
	DEPT_NOT_FOUND       = "ไม่พบแผนก"
	DEPT_HAS_USERS       = "ไม่สามารถลบแผนกที่ยังมีผู้ใช้งานอยู่ได้"
	DIVISION_NOT_FOUND   = "ไม่พบกอง"
	DIVISION_HAS_DEPTS   = "ไม่สามารถลบกองที่ยังมีแผนกหรือผู้ใช้งานอยู่ได้"

	FETCH_FAILED  = "ไม่สามารถดึงข้อมูลได้"
	CREATE_FAILED = "ไม่สามารถบันทึกข้อมูลได้"
	UPDATE_FAILED = "ไม่สามารถแก้ไขข้อมูลได้"
	DELETE_FAILED = "ไม่สามารถลบข้อมูลได้"
)

// คีย์ตั้งค่าระบบ
const (
	SettingAdminPassword = "admin_password"
)
