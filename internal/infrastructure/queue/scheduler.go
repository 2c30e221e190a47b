package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/braizerecords/label-api/internal/api/metrics"
	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

const (
	defaultWorkers  = 4
	channelBuffer   = 64
	defaultInterval = time.Minute
)

// Scheduler polls for due social posts and routes each to a fixed set of
// workers using consistent hashing on the artist id, so posts for the same
// artist publish in order.
type Scheduler struct {
	workers  []chan domain.SocialPost
	service  ports.SocialService
	interval time.Duration
	log      zerolog.Logger
}

// NewScheduler creates a Scheduler with numWorkers sharded workers polling at
// the given interval. Non-positive arguments fall back to defaults.
func NewScheduler(numWorkers int, interval time.Duration, service ports.SocialService, log zerolog.Logger) *Scheduler {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	s := &Scheduler{
		workers:  make([]chan domain.SocialPost, numWorkers),
		service:  service,
		interval: interval,
		log:      log,
	}
	for i := range s.workers {
		s.workers[i] = make(chan domain.SocialPost, channelBuffer)
	}
	return s
}

// Start launches the poll loop and all worker goroutines. Everything stops
// when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	for i, ch := range s.workers {
		go s.runWorker(ctx, i, ch)
	}
	go s.poll(ctx)
}

func (s *Scheduler) poll(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			due, err := s.service.ListDue(ctx)
			if err != nil {
				s.log.Error().Err(err).Msg("listing due posts failed")
				continue
			}
			for _, post := range due {
				s.enqueue(post)
			}
		}
	}
}

// enqueue sends a post to the worker responsible for its artist. The call is
// non-blocking up to channelBuffer capacity.
func (s *Scheduler) enqueue(post domain.SocialPost) {
	s.workers[s.shardIndex(post.ArtistID)] <- post
}

// shardIndex maps an artist id deterministically to a worker index.
func (s *Scheduler) shardIndex(artistID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(artistID))
	return int(h.Sum32()) % len(s.workers)
}

func (s *Scheduler) runWorker(ctx context.Context, id int, ch <-chan domain.SocialPost) {
	for {
		select {
		case <-ctx.Done():
			return
		case post, ok := <-ch:
			if !ok {
				return
			}
			if err := s.service.Publish(ctx, post.ID); err != nil {
				metrics.SocialPostsPublishedTotal.WithLabelValues("error").Inc()
				s.log.Error().Err(err).
					Str("post_id", post.ID).
					Str("artist_id", post.ArtistID).
					Int("worker_id", id).
					Msg("post publish failed")
				continue
			}
			metrics.SocialPostsPublishedTotal.WithLabelValues("ok").Inc()
		}
	}
}
