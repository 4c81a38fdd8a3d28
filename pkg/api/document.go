package api

import "time"

// DocumentResponse представляет сохраненный на сервере документ
type DocumentResponse struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	Revision  int64     `json:"revision"`
}
