package income

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Category string

const (
	CategorySalary     Category = "Salary"
	CategoryFreelance  Category = "Freelance"
	CategoryBusiness   Category = "Business"
	CategoryInvestment Category = "Investment"
	CategoryOther      Category = "Other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategorySalary, CategoryFreelance, CategoryBusiness, CategoryInvestment, CategoryOther:
		return true
	}
	return false
}

type Income struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      string    `gorm:"type:varchar(36);index:idx_income_user_id;index:idx_income_user_date,priority:1;not null" json:"-"`
	Source      string    `gorm:"type:varchar(255);index:idx_income_source;not null" json:"source"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency    string    `gorm:"type:varchar(3);default:'TND'" json:"currency"`
	Category    Category  `gorm:"type:varchar(20);index:idx_income_category;not null" json:"category"`
	Date        time.Time `gorm:"type:date;not null;index:idx_income_user_date,priority:2" json:"date"`
	Description *string   `gorm:"type:varchar(500)" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"created_at"`
}

func (Income) TableName() string {
	return "income"
}

// IncomeUpdate is a field patch; nil pointers leave the stored value untouched.
type IncomeUpdate struct {
	Source      *string
	Amount      *float64
	Currency    *string
	Category    *Category
	Date        *time.Time
	Description *string
}

// SortColumns is the fixed set of sort keys accepted by income listings.
var SortColumns = map[string]string{
	"date":       "date",
	"amount":     "amount",
	"source":     "source",
	"created_at": "created_at",
}
