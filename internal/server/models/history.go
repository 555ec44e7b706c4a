package models

import "time"

// MaxHistoryEntries bounds how many previous cipher texts a credential keeps.
const MaxHistoryEntries = 10

// HistoryEntry is one retired cipher text.
type HistoryEntry struct {
	CipherText string    `json:"cipher_text"`
	ChangedAt  time.Time `json:"changed_at"`
}

// History is ordered oldest first, newest last.
type History []HistoryEntry

// Push appends e and drops the oldest entries so at most MaxHistoryEntries
// remain.
func (h History) Push(e HistoryEntry) History {
	h = append(h, e)
	if n := len(h) - MaxHistoryEntries; n > 0 {
		h = append(History(nil), h[n:]...)
	}
	return h
}
