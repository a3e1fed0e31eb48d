package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionDevice is one row in the session_devices ledger: a single login
// instance on one device/browser. JTI tracks the currently active access
// token and is overwritten on every refresh; JTIRefresh never changes for
// the lifetime of the row. Exp is epoch milliseconds kept as a string to be
// safe with bigint columns.
type SessionDevice struct {
	ID         uuid.UUID `json:"id" db:"id"`
	JTI        string    `json:"jti" db:"jti"`
	JTIRefresh string    `json:"jti_rf" db:"jti_rf"`
	Exp        string    `json:"exp" db:"exp"`
	UserAgent  string    `json:"user_agent" db:"user_agent"`
	DeviceName string    `json:"device_name" db:"device_name"`
	Revoked    bool      `json:"revoked" db:"revoked"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
