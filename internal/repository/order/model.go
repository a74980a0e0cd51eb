package order

import "time"

type OrderDB struct {
	ID        string
	UserID    int64
	Type      string
	Amount    *float64
	Flag      *string
	Status    string
	Priority  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
