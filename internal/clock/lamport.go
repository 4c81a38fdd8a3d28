// Package clock содержит логические часы Лампорта, которыми сессия
// нумерует ревизии документа.
package clock

import (
	"sync"

	"github.com/google/uuid"
)

// Lamport логические часы для упорядочивания правок документа
// без синхронизации физического времени между участниками.
type Lamport struct {
	nodeID  string     // идентификатор участника (сессии)
	counter int64      // монотонно возрастающий счетчик
	mu      sync.Mutex // защищает counter
}

// New создает часы со случайным идентификатором узла (UUID).
func New() *Lamport {
	return &Lamport{nodeID: uuid.New().String()}
}

// Tick фиксирует локальное событие (правку) и возвращает его timestamp.
func (l *Lamport) Tick() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counter++
	return l.counter
}

// Witness учитывает timestamp, полученный от другого участника:
// counter = max(local, remote) + 1.
func (l *Lamport) Witness(remote int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if remote > l.counter {
		l.counter = remote
	}
	l.counter++

	return l.counter
}

// Now возвращает текущее значение счетчика без изменения.
func (l *Lamport) Now() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.counter
}

// Reset устанавливает счетчик, например из сохраненного снимка.
func (l *Lamport) Reset(value int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counter = value
}

// NodeID возвращает идентификатор узла. Он неизменен, поэтому мьютекс не нужен.
func (l *Lamport) NodeID() string {
	return l.nodeID
}
