package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
)

// FollowEventPublisher receives FollowStateChanged events after each
// successful toggle. Implementations must not block the request path; the
// toggle has already committed by the time an event is published, so a lost
// event never corrupts relationship state.
type FollowEventPublisher interface {
	PublishFollowStateChanged(ctx context.Context, ev domain.FollowStateChanged)
}

// LogPublisher writes follow events to the structured log. It stands in for
// the notification pipeline, which consumes the same event shape.
type LogPublisher struct {
	Logger *slog.Logger
}

func (p *LogPublisher) PublishFollowStateChanged(ctx context.Context, ev domain.FollowStateChanged) {
	p.Logger.Info("follow_state_changed",
		slog.String("actor_id", ev.ActorID),
		slog.String("target_id", ev.TargetID),
		slog.Bool("is_following", ev.IsFollowing),
		slog.Time("at", ev.At),
	)
}
