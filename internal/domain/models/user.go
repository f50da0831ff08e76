package models

// 用户角色
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an intranet user allowed to log in.
type User struct {
	BaseModel
	Username    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password    string `gorm:"type:varchar(100);not null" json:"-"`
	MailAddress string `gorm:"type:varchar(256)" json:"mail_address"`
	Role        string `gorm:"type:varchar(20);default:'user'" json:"role"`     // admin, user
	Status      string `gorm:"type:varchar(20);default:'active'" json:"status"` // active, inactive, locked
}
