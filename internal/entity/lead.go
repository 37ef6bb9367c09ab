package entity

import "time"

// Lead is one captured visitor inquiry. It is transient: the system keeps it
// only as a row in the account's spreadsheet plus a notification email.
type Lead struct {
	AccountID        string    `json:"account_id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	ServiceRequested string    `json:"service"`
	PreferredTime    time.Time `json:"time"`
	CapturedAt       time.Time `json:"captured_at"`
}
