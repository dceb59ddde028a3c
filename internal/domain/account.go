package domain

import "time"

// Account owns a balance in integer currency units.
// Version increments on every balance write and guards against lost updates.
type Account struct {
	ID        string    `json:"id" db:"account_id"`
	Balance   int64     `json:"balance" db:"balance"`
	Version   int64     `json:"-" db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
