package models

import (
	"encoding/json"
	"time"
)

// LinkPurpose restricts what a resolved auth link authorizes.
type LinkPurpose string

const (
	PurposeRatingPage LinkPurpose = "rating_page"
	PurposeResultPage LinkPurpose = "result_page"
	PurposeAdminPanel LinkPurpose = "admin_panel"
)

// Valid reports whether p is a known purpose.
func (p LinkPurpose) Valid() bool {
	switch p {
	case PurposeRatingPage, PurposeResultPage, PurposeAdminPanel:
		return true
	}
	return false
}

// AuthLink is an opaque, time-boxed capability token bound to a user and a
// purpose. A link is unusable once expired; single-use purposes additionally
// mark consumption through UsedAt.
type AuthLink struct {
	Base
	Token     string      `gorm:"uniqueIndex;not null;size:64" json:"-"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	Purpose   LinkPurpose `gorm:"not null;size:20" json:"purpose"`
	Context   string      `gorm:"type:jsonb" json:"-"`
	ExpiresAt time.Time   `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time  `json:"used_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// ContextMap decodes the stored context payload.
func (l *AuthLink) ContextMap() (map[string]string, error) {
	ctx := make(map[string]string)
	if l.Context == "" {
		return ctx, nil
	}
	if err := json.Unmarshal([]byte(l.Context), &ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// SetContext encodes the context payload into the Context column.
func (l *AuthLink) SetContext(ctx map[string]string) error {
	if ctx == nil {
		l.Context = "{}"
		return nil
	}
	data, err := json.Marshal(ctx)
	if err != nil {
		return err
	}
	l.Context = string(data)
	return nil
}
