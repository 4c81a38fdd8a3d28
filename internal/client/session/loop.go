package session

import (
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

func (s *Session) run() {
	defer close(s.stopped)
	for {
		select {
		case <-s.wake:
			s.drain()
		case <-s.quit:
			s.drain()
			return
		}
	}
}

func (s *Session) drain() {
	for {
		s.mu.Lock()
		jobs := s.jobs
		s.jobs = nil
		s.mu.Unlock()

		if len(jobs) == 0 {
			return
		}
		for _, job := range jobs {
			job()
		}
	}
}

// post ставит задачу в очередь цикла событий, не блокируется.
// Возвращает false после Close.
func (s *Session) post(job func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.jobs = append(s.jobs, job)
	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

// do выполняет job в цикле событий и ждет завершения
func (s *Session) do(job func()) bool {
	done := make(chan struct{})
	if !s.post(func() {
		defer close(done)
		job()
	}) {
		return false
	}
	<-done
	return true
}

// query как do, но после Close читает состояние напрямую
func (s *Session) query(job func()) {
	if s.do(job) {
		return
	}
	<-s.stopped
	job()
}

// connEvents переводит события conn.Manager в задачи цикла событий
type connEvents struct {
	s *Session
}

func (e connEvents) OnOpen() {
	e.s.post(func() {
		e.s.logger.Debug("Channel open, waiting for init")
	})
}

func (e connEvents) OnMessage(msg api.Message) {
	e.s.post(func() { e.s.applyRemote(msg) })
}

func (e connEvents) OnProtocolError(err error) {
	e.s.post(func() { e.s.listener.OnError(err) })
}

func (e connEvents) OnStateChange(state models.ConnectionState) {
	e.s.post(func() { e.s.listener.OnStatus(state) })
}
