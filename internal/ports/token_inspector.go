package ports

import "time"

type TokenInspector interface {
	Expired(token string, now time.Time) bool
}
