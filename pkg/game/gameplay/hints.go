package gameplay

import (
	"log"

	"github.com/leonelquinteros/gotext"

	"mazeparts/pkg/engine/input"
	"mazeparts/pkg/game/state"
)

// CombineHint is shown while another part is close enough to combine with.
const CombineHint = "Press Space to combine"

// combine shows the combine hint while a part is in range and merges the
// nearest one on confirm. It reports whether the confirm press was used.
func combine(g *state.Game, in input.Snapshot) bool {
	near := g.Possession.InRange()
	if len(near) == 0 {
		g.ClearNotification(state.NotifyCombine)
		return false
	}

	if !in.JustPressed(input.ActionConfirm) {
		// Never hide a more important message behind the hint.
		if k := g.Notification.Kind; k == state.NotifyNone || k == state.NotifyCombine {
			g.Notify(state.NotifyCombine, gotext.Get(CombineHint), in.Now, 0)
		}
		return false
	}

	if err := g.Possession.Merge(near[0]); err != nil {
		log.Printf("combine: %v", err)
		return false
	}
	g.ClearNotification(state.NotifyCombine)
	if c := g.Possession.Controlled(); c != nil {
		log.Printf("combined parts %s", c.Identity)
	}
	return true
}
