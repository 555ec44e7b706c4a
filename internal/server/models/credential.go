package models

import "time"

// Credential is one stored site secret. CipherText is never empty.
type Credential struct {
	ID         string
	OwnerID    string
	Title      string
	LoginName  *string
	LoginEmail *string
	URL        *string
	Notes      *string
	CipherText string
	History    History
	IsFavorite bool
	Category   Category
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

// CredentialView is a Credential with every secret field removed. It is
// the only shape returned to callers outside the reveal path.
type CredentialView struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	LoginName    *string    `json:"login_name,omitempty"`
	LoginEmail   *string    `json:"login_email,omitempty"`
	URL          *string    `json:"url,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	IsFavorite   bool       `json:"is_favorite"`
	Category     Category   `json:"category"`
	HistoryCount int        `json:"history_count"`
	CreatedAt    time.Time  `json:"created_at"`
	ModifiedAt   *time.Time `json:"modified_at,omitempty"`
}

// View returns the redacted projection of c.
func (c *Credential) View() *CredentialView {
	return &CredentialView{
		ID:           c.ID,
		Title:        c.Title,
		LoginName:    c.LoginName,
		LoginEmail:   c.LoginEmail,
		URL:          c.URL,
		Notes:        c.Notes,
		IsFavorite:   c.IsFavorite,
		Category:     c.Category,
		HistoryCount: len(c.History),
		CreatedAt:    c.CreatedAt,
		ModifiedAt:   c.ModifiedAt,
	}
}

// CredentialFilter narrows a credential listing. Zero values do not filter.
type CredentialFilter struct {
	Category     *Category
	FavoriteOnly bool
	Search       string
}
