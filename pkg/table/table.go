package table

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bigtwo-server/pkg/deck"
	"bigtwo-server/pkg/move"
	"bigtwo-server/pkg/round"
)

// Table holds the authoritative round for a group of players
// Plays are applied one at a time, so a Table is safe for concurrent use.
type Table struct {
	UUID string

	options Options
	logger  logrus.FieldLogger
	logChan chan []*LogMessage

	lock sync.RWMutex
	// history holds every accepted round, oldest first. The last entry is the current round
	history []round.Round
}

// New returns a new table
// The opening round has nothing to beat, so firstPlayer may lead with any move.
// If logger is nil, the standard logger is used
func New(logger logrus.FieldLogger, players []int64, firstPlayer int64, opts Options) (*Table, error) {
	r, err := round.New(players, firstPlayer, move.Pass())
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	u := uuid.New().String()
	t := &Table{
		UUID:    u,
		options: opts,
		logger:  logger.WithField("table", u),
		logChan: make(chan []*LogMessage, 256),
		history: []round.Round{r},
	}

	t.logger.WithFields(logrus.Fields{
		"players":     players,
		"firstPlayer": firstPlayer,
	}).Debug("new round")

	t.sendLogMessages(newLogMessage(0, nil, "New round started"))
	return t, nil
}

// LogChan returns a channel for receiving log messages
func (t *Table) LogChan() <-chan []*LogMessage {
	return t.logChan
}

// Round returns the current round
func (t *Table) Round() round.Round {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.history[len(t.history)-1]
}

// History returns every kept round, oldest first
func (t *Table) History() []round.Round {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return append([]round.Round{}, t.history...)
}

// Play classifies the cards and plays them for the player
// The current round is always returned. It is unchanged if an error is returned.
func (t *Table) Play(playerID int64, cards []deck.Card) (round.Round, error) {
	m, err := move.Classify(cards)
	if err != nil {
		t.logger.WithFields(logrus.Fields{
			"playerID": playerID,
			"cards":    deck.CardsToString(cards),
		}).WithError(err).Debug("invalid cards")

		return t.Round(), err
	}

	return t.PlayMove(playerID, m)
}

// Pass passes for the player
func (t *Table) Pass(playerID int64) (round.Round, error) {
	return t.PlayMove(playerID, move.Pass())
}

// PlayMove plays an already classified move for the player
func (t *Table) PlayMove(playerID int64, m move.Move) (round.Round, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	log := t.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"move":     m.String(),
	})

	current := t.history[len(t.history)-1]
	next, err := current.Play(playerID, m)
	if err != nil {
		log.WithError(err).Debug("play rejected")
		return current, err
	}

	t.history = append(t.history, next)
	if limit := t.options.HistoryLimit; limit > 0 && len(t.history) > limit {
		t.history = append([]round.Round{}, t.history[len(t.history)-limit:]...)
	}

	log.WithField("nextPlayer", next.CurrentPlayer()).Debug("play accepted")

	if m.IsPass() {
		t.sendLogMessages(newLogMessage(playerID, nil, "{} passed"))
	} else {
		t.sendLogMessages(newLogMessage(playerID, m.Cards(), "{} played %s", m))
	}

	return next, nil
}

// Undo discards the current round and returns to the one before it
func (t *Table) Undo() (round.Round, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(t.history) <= 1 {
		return t.history[0], ErrNothingToUndo
	}

	t.history = t.history[:len(t.history)-1]
	r := t.history[len(t.history)-1]

	t.logger.WithField("currentPlayer", r.CurrentPlayer()).Debug("undo")
	t.sendLogMessages(newLogMessage(0, nil, "The last play was taken back"))

	return r, nil
}

// sendLogMessages never blocks. Messages are dropped if nobody is reading
func (t *Table) sendLogMessages(msg ...*LogMessage) {
	select {
	case t.logChan <- msg:
	default:
		t.logger.WithField("messages", len(msg)).Warn("log channel is full, dropping messages")
	}
}
