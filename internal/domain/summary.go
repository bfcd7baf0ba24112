package domain

import "time"

type SavedSummary struct {
	ID        int64     `json:"id"`
	Article   Article   `json:"article"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}
