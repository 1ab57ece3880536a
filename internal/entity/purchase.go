package entity

import (
	"gorm.io/gorm"
)

// Purchase is the receipt a customer leaves behind after buying a listing.
type Purchase struct {
	gorm.Model
	ListingID   uint  `json:"listing_id" gorm:"not null;index"`
	Amount      int64 `json:"amount" gorm:"default:0;not null"`
	Withdrawals int   `json:"withdrawals" gorm:"default:0;not null"`
}
