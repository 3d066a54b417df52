package replay

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"bigtwo-server/pkg/deck"
	"bigtwo-server/pkg/table"
)

// Script is a recorded sequence of plays for one round
type Script struct {
	Players     []int64 `yaml:"players"`
	FirstPlayer int64   `yaml:"firstPlayer"`
	Plays       []Play  `yaml:"plays"`
}

// Play is one attempt by a player. Cards are in the 2c,3h,... format, empty is a pass
type Play struct {
	Player int64  `yaml:"player"`
	Cards  string `yaml:"cards"`
}

// Result is the outcome of a single play
type Result struct {
	Play          Play
	Accepted      bool
	Error         string
	CurrentPlayer int64
	LastMove      string
}

func (r Result) String() string {
	status := "accepted"
	if !r.Accepted {
		status = "rejected: " + r.Error
	}

	cards := r.Play.Cards
	if cards == "" {
		cards = "pass"
	}

	return fmt.Sprintf("player %d %s -> %s (next: %d, to beat: %s)", r.Play.Player, cards, status, r.CurrentPlayer, r.LastMove)
}

// LoadScript reads a script from a YAML file
func LoadScript(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeScript(file)
}

// DecodeScript reads a YAML script
func DecodeScript(r io.Reader) (*Script, error) {
	var script Script
	if err := yaml.NewDecoder(r).Decode(&script); err != nil {
		return nil, fmt.Errorf("could not decode script: %w", err)
	}

	return &script, nil
}

// Run plays every play in the script on a new table
// A rejected play does not stop the replay. Only an invalid script returns an error
func Run(logger logrus.FieldLogger, script *Script, opts table.Options) (*table.Table, []Result, error) {
	t, err := table.New(logger, script.Players, script.FirstPlayer, opts)
	if err != nil {
		return nil, nil, err
	}

	results := make([]Result, len(script.Plays))
	for i, play := range script.Plays {
		cards, err := deck.ParseCards(play.Cards)
		if err != nil {
			return nil, nil, fmt.Errorf("play %d: %w", i+1, err)
		}

		r, err := t.Play(play.Player, cards)
		results[i] = Result{
			Play:          play,
			Accepted:      err == nil,
			CurrentPlayer: r.CurrentPlayer(),
			LastMove:      r.LastMove().String(),
		}

		if err != nil {
			results[i].Error = err.Error()
		}
	}

	return t, results, nil
}
