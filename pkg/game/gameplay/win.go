package gameplay

import (
	"log"
	"time"

	"github.com/leonelquinteros/gotext"

	"mazeparts/pkg/engine/input"
	"mazeparts/pkg/game/characters"
	"mazeparts/pkg/game/state"
)

const (
	WonText       = "You won!"
	NeedPartsText = "You need to combine all parts before you can leave"
	// NeedPartsTimeout is how long the need-parts message stays up.
	NeedPartsTimeout = 5 * time.Second
)

// evaluateExit decides the outcome of the character mover reaching the exit.
// If mover was switched away from and absorbed in the same tick, the
// controlled character stands in for it.
func evaluateExit(g *state.Game, mover characters.ID, in input.Snapshot) {
	c := g.Characters.Get(mover)
	if c == nil {
		c = g.Possession.Controlled()
	}
	if c == nil {
		return
	}

	if c.Identity.Len() == g.TotalParts {
		g.Won = true
		g.Notify(state.NotifyWon, gotext.Get(WonText), in.Now, 0)
		log.Printf("exit reached with parts %s after %v", c.Identity, g.Elapsed.Round(time.Second))
		return
	}
	g.Notify(state.NotifyNeedParts, gotext.Get(NeedPartsText), in.Now, NeedPartsTimeout)
}
