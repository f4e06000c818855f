package model

import "time"

// Fund payment states.
const (
	FundPending   = "pending"
	FundSucceeded = "succeeded"
)

// Fund is one monetary donation — maps to the funds table.
// SessionID is the checkout session identifier and acts as the idempotency
// key for payment confirmation: one session, one recorded transaction.
type Fund struct {
	FundID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"fundId"`
	DonorName  string     `gorm:"type:varchar(100);not null"                     json:"donorName"`
	DonorEmail string     `gorm:"type:varchar(255);not null;index"               json:"donorEmail"`
	Amount     float64    `gorm:"type:numeric(10,2);not null"                    json:"amount"`
	Currency   string     `gorm:"type:varchar(3);not null;default:'usd'"         json:"currency"`
	SessionID  string     `gorm:"type:varchar(255);not null;uniqueIndex"         json:"-"`
	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	FundedAt   *time.Time `json:"fundedAt,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Fund) TableName() string { return "funds" }
