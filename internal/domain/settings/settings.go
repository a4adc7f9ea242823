package settings

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Settings holds the per-user preferences applied as defaults when an
// entry arrives without an explicit currency.
type Settings struct {
	Id              ulid.ULID `gorm:"column:id;type:char(26);primaryKey" json:"id"`
	UserId          string    `gorm:"column:user_id;type:varchar(64);uniqueIndex;not null" json:"-"`
	DefaultCurrency string    `gorm:"column:default_currency;type:varchar(8);not null" json:"default_currency"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Settings) TableName() string {
	return "user_settings"
}

type SettingsUpdate struct {
	DefaultCurrency *string `json:"default_currency"`
}
