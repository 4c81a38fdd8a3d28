package session

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out editor_mock.go . Editor
//go:generate moq -out overlay_mock.go . Overlay
//go:generate moq -out listener_mock.go . Listener
//go:generate moq -out snapshotcache_mock.go . SnapshotCache

// Editor поверхность редактирования.
// ImportContent может синхронно вызвать уведомление о правке,
// поэтому Session.NotifyEdit не блокируется.
type Editor interface {
	ImportContent(content string)
	ExportContent() string
	SetReadOnly(readOnly bool)
}

// Overlay отображает курсоры других участников.
type Overlay interface {
	Render(positions map[string]int)
}

// Listener получает статус соединения и ошибки сессии.
// Вызывается из цикла событий сессии: методы Session из него вызывать нельзя.
type Listener interface {
	OnStatus(state models.ConnectionState)
	OnError(err error)
}

// SnapshotCache локальный кеш последнего известного состояния документа.
type SnapshotCache interface {
	SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error
	GetSnapshot(ctx context.Context, documentID string) (*models.Snapshot, error)
}
