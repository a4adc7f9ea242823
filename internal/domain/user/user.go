package user

import "time"

// User mirrors the identity provider's record. The primary key is the
// provider's subject string, never generated locally.
type User struct {
	Id        string    `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex:idx_users_email;not null" json:"email"`
	FullName  string    `gorm:"column:full_name;type:varchar(255)" json:"full_name"`
	AvatarUrl *string   `gorm:"column:avatar_url;type:varchar(512)" json:"avatar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime;not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type UserUpdate struct {
	Email     *string `json:"email"`
	FullName  *string `json:"full_name"`
	AvatarUrl *string `json:"avatar_url"`
}
