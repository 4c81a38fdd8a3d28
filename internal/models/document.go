package models

import "time"

// DocumentState представляет живое состояние документа в рамках одной сессии.
// Принадлежит только оркестратору сессии и меняется либо локальной правкой,
// либо принятым удаленным обновлением.
type DocumentState struct {
	Content  string `json:"content"`  // Content сериализованный rich-text документ (непрозрачный blob)
	Revision int64  `json:"revision"` // Revision Lamport timestamp последнего примененного изменения
}

// HistoryEntry неизменяемый снимок содержимого в стеке undo/redo.
type HistoryEntry struct {
	Content string `json:"content"` // Content снимок документа
	Index   int    `json:"index"`   // Index позиция, на которую снимок был вставлен
}

// Document представляет канонический документ в серверном хранилище.
type Document struct {
	UpdatedAt time.Time `json:"updated_at"` // UpdatedAt время последнего сохранения
	ID        string    `json:"id"`         // ID идентификатор документа
	Content   string    `json:"content"`    // Content последнее сохраненное содержимое
	UpdatedBy string    `json:"updated_by"` // UpdatedBy user_id автора последней правки
	Revision  int64     `json:"revision"`   // Revision монотонно растущий номер сохранения
}

// Snapshot последнее известное клиенту состояние документа.
// Хранится локально и используется для просмотра без подключения.
type Snapshot struct {
	SavedAt    time.Time `json:"saved_at"`
	DocumentID string    `json:"document_id"`
	Content    string    `json:"content"`
	Revision   int64     `json:"revision"`
}
