package domain

import "time"

// FollowEdge records "follower follows followee". The ordered pair is unique
// and self-loops are rejected before the storage layer ever sees them; the
// schema backstops both with a unique primary key and a CHECK constraint.
// Edges are created and destroyed only by the relationship toggle, never
// updated in place.
type FollowEdge struct {
	FollowerID string
	FolloweeID string
	CreatedAt  time.Time
}

// FollowStateChanged is emitted after every successful toggle so a
// notification consumer can react. Delivery is fire-and-forget; the toggle
// has already committed by the time this is published.
type FollowStateChanged struct {
	ActorID     string
	TargetID    string
	IsFollowing bool
	At          time.Time
}
