// Package events records resolution provenance to ClickHouse for analytics
// writes are fire-and-forget, the resolution path never waits on them
package events

import (
	"context"
	"sync"
	"time"

	"lingo/internal/platform/logger"
	"lingo/internal/platform/store"
	"lingo/internal/services/resolve/domain"
)

// Table is the destination table for resolution events
const Table = "resolution_events"

const (
	bufSize       = 1024
	batchSize     = 256
	flushInterval = 2 * time.Second
	writeTimeout  = 5 * time.Second
)

// Recorder buffers results and flushes them in batches on a background goroutine
// a nil ClickHouse seam turns the recorder into a no-op
type Recorder struct {
	ch  store.Clickhouse
	log *logger.Logger

	buf  chan []any
	stop chan struct{}
	wg   sync.WaitGroup
}

// New constructs a Recorder and starts its flush loop when ch is usable
func New(ch store.Clickhouse) *Recorder {
	r := &Recorder{
		ch:   ch,
		log:  logger.Named("events"),
		buf:  make(chan []any, bufSize),
		stop: make(chan struct{}),
	}
	if ch != nil {
		r.wg.Add(1)
		go r.loop()
	}
	return r
}

// Record queues one result, dropping on a full buffer rather than blocking
func (r *Recorder) Record(_ context.Context, res domain.Result) {
	if r == nil || r.ch == nil {
		return
	}
	row := []any{
		time.Now().UTC(),
		string(res.Source),
		res.SourceLang,
		res.TargetLang,
		res.Confidence,
		res.Cached,
		res.ElapsedMS,
	}
	select {
	case r.buf <- row:
	default:
		r.log.Warn().Msg("event buffer full, dropping resolution event")
	}
}

// Close flushes pending rows and stops the loop
func (r *Recorder) Close() {
	if r == nil || r.ch == nil {
		return
	}
	close(r.stop)
	r.wg.Wait()
}

func (r *Recorder) loop() {
	defer r.wg.Done()

	tick := time.NewTicker(flushInterval)
	defer tick.Stop()

	pending := make([][]any, 0, batchSize)
	flush := func() {
		if len(pending) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := r.ch.Insert(ctx, Table, pending); err != nil {
			r.log.Warn().Err(err).Int("rows", len(pending)).Msg("event flush failed, dropping batch")
		}
		cancel()
		pending = pending[:0]
	}

	for {
		select {
		case row := <-r.buf:
			pending = append(pending, row)
			if len(pending) >= batchSize {
				flush()
			}
		case <-tick.C:
			flush()
		case <-r.stop:
			// drain whatever is already queued then leave
			for {
				select {
				case row := <-r.buf:
					pending = append(pending, row)
				default:
					flush()
					return
				}
			}
		}
	}
}
