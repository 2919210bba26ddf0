package models

import "time"

// Session is the server-side record behind an issued bearer token.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DeviceInfo describes the caller of a login request: resolved
// network address plus User-Agent-derived heuristics.
type DeviceInfo struct {
	IP        string `json:"ip"`
	Device    string `json:"device"`
	Browser   string `json:"browser"`
	OS        string `json:"os"`
	UserAgent string `json:"userAgent,omitempty"`
}

// LoginRecord is one entry in the login audit log.
type LoginRecord struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	IP        string `json:"ip"`
	Device    string `json:"device"`
	Browser   string `json:"browser"`
	OS        string `json:"os"`
	Timestamp string `json:"timestamp"`
}

// LoginLogDocument is the persisted shape of the login audit log,
// newest entry first.
type LoginLogDocument struct {
	LastUpdated string        `json:"lastUpdated"`
	Entries     []LoginRecord `json:"entries"`
}
