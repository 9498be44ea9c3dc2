package felix

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/observability/telemetry"
	"github.com/drivelink/drivelink/internal/ports"
)

// The canned diagnostic scripts Felix answers with. The pick is uniform and
// independent of the user's message.
var responses = []string{
	"I can help you diagnose that issue. Based on your Ferrari SF90 Stradale's symptoms, let me guide you through some troubleshooting steps. First, can you tell me if you're hearing any unusual sounds from the engine bay?",
	"That sounds like it could be related to the hybrid system. Let me walk you through a diagnostic process: 1) Check the dashboard for any warning lights, 2) Listen for unusual sounds when the electric motors engage, 3) Feel for any vibrations during acceleration. What are you noticing?",
	"For the SF90 Stradale, this is a common issue. Here's what I recommend: First, make sure the vehicle is in Race mode to get full system diagnostics. Then check the infotainment system under 'Vehicle Status' for any error codes. Can you access that menu?",
	"Let me help you troubleshoot this step by step. Since this is a hybrid Ferrari, we need to check both the V8 engine and the electric motor systems. Start by checking if the issue occurs in electric-only mode (eDrive). Does the problem persist when running purely on electric power?",
	"Based on your description, I'd like to guide you through Ferrari's built-in diagnostic sequence. First, with the engine off, press and hold the steering wheel controls while turning the key to position II. This will run a system check. What codes or messages do you see?",
}

// Options control the simulated thinking latency and the randomness/clock
// sources, so tests can pin them.
type Options struct {
	MinDelay time.Duration
	MaxDelay time.Duration
	Rand     *rand.Rand
	Now      func() time.Time
}

type Service struct {
	minDelay time.Duration
	maxDelay time.Duration
	rnd      *rand.Rand
	rndMu    sync.Mutex
	now      func() time.Time
	log      *zap.Logger
}

func NewService(opts Options, log *zap.Logger) ports.AssistantService {
	if opts.MinDelay <= 0 {
		opts.MinDelay = time.Second
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay + 1500*time.Millisecond
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		minDelay: opts.MinDelay,
		maxDelay: opts.MaxDelay,
		rnd:      opts.Rand,
		now:      opts.Now,
		log:      log,
	}
}

// Chat picks one canned response at random and delivers it after a uniformly
// distributed delay within the configured window. The wait is a timer select
// so other requests keep being served; cancelling the context ends the wait
// early.
func (s *Service) Chat(ctx context.Context, message string, conversation []domain.ChatMessage) (*domain.ChatReply, error) {
	started := s.now()

	s.rndMu.Lock()
	pick := s.rnd.Intn(len(responses))
	window := s.maxDelay - s.minDelay
	delay := s.minDelay
	if window > 0 {
		delay += time.Duration(s.rnd.Int63n(int64(window)))
	}
	s.rndMu.Unlock()

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	telemetry.AssistantRequestsTotal.Inc()
	telemetry.AssistantLatency.Observe(s.now().Sub(started).Seconds())

	s.log.Debug("Assistant reply",
		zap.Int("response_index", pick),
		zap.Duration("delay", delay),
		zap.Int("conversation_turns", len(conversation)),
	)

	return &domain.ChatReply{
		Response:  responses[pick],
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}, nil
}

// Responses exposes the canned response pool for tests.
func Responses() []string {
	out := make([]string, len(responses))
	copy(out, responses)
	return out
}
