package model

import "time"

// Category is a user-defined label for transactions.
type Category struct {
	CreatedAt time.Time
	Name      string
	ID        int64
}
