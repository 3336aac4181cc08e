package state

import (
	"time"

	"mazeparts/pkg/engine/collision"
	"mazeparts/pkg/engine/mesh"
	"mazeparts/pkg/engine/world"
	"mazeparts/pkg/game/characters"
	"mazeparts/pkg/game/marker"
	"mazeparts/pkg/game/possession"
)

// NotificationKind tells notifications apart so one writer never clears
// another's message.
type NotificationKind int

const (
	NotifyNone NotificationKind = iota
	NotifyCombine
	NotifyNeedParts
	NotifyWon
)

// Notification is the single on-screen message
type Notification struct {
	Text      string
	Kind      NotificationKind
	ExpiresAt int64 // Unix milliseconds when the notification expires (0 = never)
}

// Active reports whether the notification should be shown at now.
func (n Notification) Active(now time.Time) bool {
	if n.Kind == NotifyNone {
		return false
	}
	return n.ExpiresAt == 0 || n.ExpiresAt > now.UnixMilli()
}

// Settings are the tunables a game is created with.
type Settings struct {
	MoveSpeed        float32 // world units per second
	TurnSpeed        float32 // radians per second for turn keys
	MouseSensitivity float32 // radians per pixel
	Debug            bool
}

// DefaultSettings returns the settings used when none are configured
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:        1.0,
		TurnSpeed:        2.0,
		MouseSensitivity: 0.003,
	}
}

// Game represents the state of one maze level
type Game struct {
	Grid     *world.Grid
	Mesh     *mesh.Mesh
	Resolver *collision.Resolver

	Characters *characters.Registry
	Rig        *possession.Rig
	Possession *possession.Controller
	Painter    *marker.Painter

	Notification Notification

	// TotalParts is the number of characters spawned at level start.
	TotalParts int
	Won        bool
	// Elapsed is the play time since the level started, frozen once won.
	Elapsed time.Duration

	// Decals placed this tick, for renderers that create them lazily.
	NewDecals []marker.DecalRequest

	Settings Settings
}

// NewGame creates a game without a level; gameplay.BuildGame fills it from one.
func NewGame(settings Settings) *Game {
	return &Game{
		Painter:  marker.NewPainter(),
		Settings: settings,
	}
}

// Notify replaces the notification. A zero ttl never expires.
func (g *Game) Notify(kind NotificationKind, text string, now time.Time, ttl time.Duration) {
	n := Notification{Text: text, Kind: kind}
	if ttl > 0 {
		n.ExpiresAt = now.Add(ttl).UnixMilli()
	}
	g.Notification = n
}

// ClearNotification removes the notification if it is of the given kind.
func (g *Game) ClearNotification(kind NotificationKind) {
	if g.Notification.Kind == kind {
		g.Notification = Notification{}
	}
}

// ExpireNotification drops the notification once its expiry has passed.
func (g *Game) ExpireNotification(now time.Time) {
	if g.Notification.Kind != NotifyNone && !g.Notification.Active(now) {
		g.Notification = Notification{}
	}
}
