package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// ScoreRecorder is told about every game over. It logs the result and
// saves non-zero scores to the store.
type ScoreRecorder struct {
	store     *storage.Store
	logger    *log.Logger
	game      *snake.Game
	player    string
	sessionID string
	saved     int
}

// NewScoreRecorder creates a recorder for one player's games. store may be
// nil, in which case results are only logged.
func NewScoreRecorder(store *storage.Store, logger *log.Logger, game *snake.Game, player, sessionID string) *ScoreRecorder {
	return &ScoreRecorder{
		store:     store,
		logger:    logger,
		game:      game,
		player:    player,
		sessionID: sessionID,
	}
}

// GameOver implements snake.Notifier.
func (r *ScoreRecorder) GameOver(score int) {
	length := 0
	if w := r.game.World(); w != nil {
		length = w.Actor().Len()
	}

	r.logger.Info("game over",
		"game", r.game.ID(),
		"score", score,
		"length", length,
		"player", r.player,
		"session", r.sessionID,
	)

	if score <= 0 || r.store == nil {
		return
	}

	_, err := r.store.SaveResult(storage.GameResult{
		GameID:    r.game.ID(),
		Score:     score,
		Length:    length,
		Player:    r.player,
		SessionID: r.sessionID,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		r.logger.Error("could not save score", "error", err, "session", r.sessionID)
		return
	}
	r.saved++
}

// Saved returns how many scores this recorder has written.
func (r *ScoreRecorder) Saved() int {
	return r.saved
}

var _ snake.Notifier = (*ScoreRecorder)(nil)
