package domain

import (
	"database/sql"
)

// User 用户领域模型（对应 users 表）
// phone 唯一，档案保存按 phone 做 upsert（见 ProfileService）
type User struct {
	UserID int64  `db:"user_id"`
	Name   string `db:"name"`
	Age    int    `db:"age"`
	Gender string `db:"gender"`
	Phone  string `db:"phone"` // NOT NULL UNIQUE

	// 病史（可选自由文本）
	MedicalHistory sql.NullString `db:"medical_history"`

	// 紧急联系人
	EmergencyContactName  string `db:"emergency_contact_name"`
	EmergencyContactPhone string `db:"emergency_contact_phone"`
}
