package videos

import (
	"sync"
	"time"
)

// Scheduler dispara funções em horários fixos do dia, no fuso local do processo.
// É uma abstração mínima de cron: o contrato do cache é "duas vezes por dia em
// horários fixos", então cada registro mantém um timer reprogramado a cada disparo.
type Scheduler struct {
	mu      sync.Mutex
	stop    chan struct{}
	wg      sync.WaitGroup
	stopped bool
}

// NewScheduler cria um scheduler parado até o primeiro DailyAt.
func NewScheduler() *Scheduler {
	return &Scheduler{stop: make(chan struct{})}
}

// DailyAt registra fn para rodar todos os dias às hour:min (fuso local).
// fn roda na goroutine do trigger; quem registra é responsável por absorver erros.
func (s *Scheduler) DailyAt(hour, min int, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			timer := time.NewTimer(time.Until(nextRun(time.Now(), hour, min)))
			select {
			case <-timer.C:
				fn()
			case <-s.stop:
				timer.Stop()
				return
			}
		}
	}()
}

// Stop encerra todos os triggers e aguarda as goroutines terminarem.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stop)
	s.mu.Unlock()
	s.wg.Wait()
}

// nextRun próximo instante hour:min estritamente depois de now.
func nextRun(now time.Time, hour, min int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
