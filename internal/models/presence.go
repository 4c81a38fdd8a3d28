package models

import "time"

// PresenceEntry последняя известная позиция курсора удаленного участника.
// Записи эфемерны и не сохраняются.
type PresenceEntry struct {
	SeenAt   time.Time `json:"seen_at"`
	UserID   string    `json:"user_id"`
	Position int       `json:"position"`
}

// ViewportRange границы видимой части документа в строках: [Start, End).
type ViewportRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len возвращает количество строк в диапазоне.
func (r ViewportRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}
