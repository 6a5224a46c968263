package models

import "time"

type Session struct {
	SessionID string        `json:"sessionId"`
	UserID    string        `json:"userId"`
	Email     string        `json:"email"`
	Claims    SessionClaims `json:"claims"`
	ExpiresAt time.Time     `json:"expiresAt"`
}
