package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents an account record in the database.
type Account struct {
	AccountNumber int64           `gorm:"column:account_number;primaryKey;autoIncrement"`
	OwnerName     string          `gorm:"column:owner_name;type:varchar(50);not null"`
	PinCode       string          `gorm:"column:pin_code;not null"`
	Balance       decimal.Decimal `gorm:"column:balance;type:numeric;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
