package models

import "time"

// Holding is one user's current share count for one ticker symbol.
// A holding sold down to zero keeps its row; portfolio readers must
// tolerate zero-share entries.
type Holding struct {
	UserID    string    `json:"user_id"`
	Symbol    string    `json:"symbol"`
	Shares    int64     `json:"shares"`
	UpdatedAt time.Time `json:"updated_at"`
}
