package session

import "errors"

var (
	// ErrClosed сессия закрыта
	ErrClosed = errors.New("session closed")

	// ErrAlreadyStarted Start вызван повторно
	ErrAlreadyStarted = errors.New("session already started")

	// ErrApplyPanic паника при применении удаленного сообщения
	ErrApplyPanic = errors.New("panic while applying remote message")
)

// RemoteError ошибка, присланная сервером сообщением error.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "server error: " + e.Message
}
