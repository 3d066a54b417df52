package table

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"bigtwo-server/pkg/deck"
)

// LogMessage is the format a table sends log messages in
// The "{}" in Message is replaced by the player names by whoever displays it
type LogMessage struct {
	UUID      string      `json:"uuid"`
	PlayerIDs []int64     `json:"playerIds"`
	Cards     []deck.Card `json:"cards"`
	Message   string      `json:"message"`
	Time      time.Time   `json:"time"`
}

func newLogMessage(playerID int64, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Cards:     cards,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}
