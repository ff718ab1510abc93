package audio

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Queue accepts samples for playback without blocking the caller.
type Queue interface {
	Enqueue(sample Sample)
}

// Dispatcher plays queued samples one after another on its own goroutine.
// The queue is unbounded. A sample that fails to play is logged and
// skipped.
//
// Close stops accepting samples, lets the queued ones play out and waits
// until the goroutine has exited.
type Dispatcher struct {
	player Player

	mu     sync.Mutex
	queue  []Sample
	closed bool

	// wake has a capacity of 1, a full channel already means "look again"
	wake     chan struct{}
	finished chan struct{}
}

func NewDispatcher(player Player) *Dispatcher {
	d := &Dispatcher{
		player:   player,
		wake:     make(chan struct{}, 1),
		finished: make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Enqueue(sample Sample) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		log.WithField("sample", sample).Warn("dispatcher closed, dropping sample")
		return
	}
	d.queue = append(d.queue, sample)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) next() (Sample, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for len(d.queue) == 0 {
		if d.closed {
			return Sample{}, false
		}
		d.mu.Unlock()
		<-d.wake
		d.mu.Lock()
	}
	sample := d.queue[0]
	d.queue[0] = Sample{}
	d.queue = d.queue[1:]
	return sample, true
}

func (d *Dispatcher) run() {
	defer close(d.finished)
	for {
		sample, ok := d.next()
		if !ok {
			return
		}
		log.WithField("sample", sample).Debug("playing")
		if err := d.player.Play(sample); nil != err {
			log.WithError(err).WithField("sample", sample).Error("unable to play sample")
		}
	}
}

func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	<-d.finished
}
