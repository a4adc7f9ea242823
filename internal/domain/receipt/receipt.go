package receipt

import (
	"time"

	"github.com/oklog/ulid/v2"
)

const DefaultCurrency = "TND"

type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transportation"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryHousing       Category = "Housing"
	CategoryTravel        Category = "Travel"
	CategoryWork          Category = "Work"
	CategoryBills         Category = "Bills"
	CategoryFitness       Category = "Fitness"
	CategoryUncategorized Category = "Uncategorized"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryShopping, CategoryEntertainment,
		CategoryHealth, CategoryHousing, CategoryTravel, CategoryWork,
		CategoryBills, CategoryFitness, CategoryUncategorized:
		return true
	}
	return false
}

type Receipt struct {
	Id           ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId       string    `gorm:"type:varchar(36);index:idx_receipts_user_id;index:idx_receipts_user_date,priority:1;not null" json:"-"`
	MerchantName string    `gorm:"type:varchar(255);index:idx_receipts_merchant;not null" json:"merchant_name"`
	Date         time.Time `gorm:"type:date;not null;index:idx_receipts_user_date,priority:2" json:"date"`
	TotalAmount  float64   `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	Currency     string    `gorm:"type:varchar(3);default:'TND'" json:"currency"`
	Category     Category  `gorm:"type:varchar(30);index:idx_receipts_category;default:'Uncategorized'" json:"category"`
	Location     *string   `gorm:"type:varchar(255)" json:"location"`
	ImageUrl     *string   `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null" json:"created_at"`
	Items        []Item    `gorm:"-" json:"items"`
}

func (Receipt) TableName() string {
	return "receipts"
}

// Item is a line entry of a receipt. A nil ReceiptId means the item is
// pending ("to buy" list) and has not been attached to a purchase yet.
type Item struct {
	Id        ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId    string     `gorm:"type:varchar(36);index:idx_items_user_id;not null" json:"user_id,omitempty"`
	ReceiptId *ulid.ULID `gorm:"type:varchar(26);index:idx_items_receipt_id" json:"receipt_id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64    `gorm:"type:decimal(15,2);not null" json:"price"`
	Quantity  int        `gorm:"not null;default:1" json:"quantity"`
}

func (Item) TableName() string {
	return "items"
}

func (i *Item) Pending() bool {
	return i.ReceiptId == nil
}

// ReceiptUpdate is a field patch; nil pointers leave the stored value
// untouched. A non-nil Items slice replaces the receipt's items wholesale.
type ReceiptUpdate struct {
	MerchantName *string
	Date         *time.Time
	TotalAmount  *float64
	Currency     *string
	Category     *Category
	Location     *string
	ImageUrl     *string
	Items        []*Item
}

// SortColumns is the fixed set of sort keys accepted by receipt listings.
var SortColumns = map[string]string{
	"date":          "date",
	"total_amount":  "total_amount",
	"merchant_name": "merchant_name",
	"created_at":    "created_at",
}

type ListFilter struct {
	Category     string
	MerchantName string
}
