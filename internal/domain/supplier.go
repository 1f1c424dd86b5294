package domain

import "time"

type Supplier struct {
	ID        int
	Name      string
	Phone     *string
	CreatedAt time.Time
}
