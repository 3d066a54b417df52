package replay

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"bigtwo-server/pkg/deck"
	"bigtwo-server/pkg/round"
	"bigtwo-server/pkg/table"
)

func TestLoadScript(t *testing.T) {
	a := assert.New(t)

	script, err := LoadScript("testdata/example.yaml")
	a.NoError(err)
	a.Equal([]int64{1, 2}, script.Players)
	a.Equal(int64(1), script.FirstPlayer)
	a.Equal([]Play{{1, "5h"}, {2, "3h"}, {2, "9h"}}, script.Plays)

	_, err = LoadScript("testdata/missing.yaml")
	a.Error(err)

	_, err = DecodeScript(strings.NewReader("players: {"))
	a.Error(err)
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	logger, _ := test.NewNullLogger()

	script, err := LoadScript("testdata/example.yaml")
	a.NoError(err)

	tbl, results, err := Run(logger, script, table.DefaultOptions())
	a.NoError(err)
	a.Equal(3, len(results))

	a.True(results[0].Accepted)
	a.Equal(int64(2), results[0].CurrentPlayer)
	a.Equal("Single(5♡)", results[0].LastMove)

	a.False(results[1].Accepted)
	a.Equal(round.ErrMoveTooLow.Error(), results[1].Error)
	a.Equal(int64(2), results[1].CurrentPlayer)
	a.Equal("Single(5♡)", results[1].LastMove)

	a.True(results[2].Accepted)
	a.Equal(int64(1), results[2].CurrentPlayer)
	a.Equal("Single(9♡)", results[2].LastMove)

	a.Equal(3, len(tbl.History()))

	a.Equal("player 1 5h -> accepted (next: 2, to beat: Single(5♡))", results[0].String())
	a.Equal("player 2 3h -> rejected: move does not beat the last move (next: 2, to beat: Single(5♡))", results[1].String())
}

func TestRun_passes(t *testing.T) {
	logger, _ := test.NewNullLogger()
	script := &Script{
		Players:     []int64{1, 2, 3},
		FirstPlayer: 3,
		Plays: []Play{
			{Player: 3, Cards: "7s"},
			{Player: 1, Cards: ""},
			{Player: 2, Cards: "6s"},
		},
	}

	_, results, err := Run(logger, script, table.DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, "player 1 pass -> accepted (next: 2, to beat: Single(7♠))", results[1].String())
	assert.False(t, results[2].Accepted)
}

func TestRun_invalidScript(t *testing.T) {
	a := assert.New(t)
	logger, _ := test.NewNullLogger()

	_, _, err := Run(logger, &Script{Players: []int64{1, 2}, FirstPlayer: 3}, table.DefaultOptions())
	a.ErrorIs(err, round.ErrPlayerNotSeated)

	_, _, err = Run(logger, &Script{
		Players:     []int64{1, 2},
		FirstPlayer: 1,
		Plays:       []Play{{Player: 1, Cards: "5x"}},
	}, table.DefaultOptions())
	a.ErrorIs(err, deck.ErrInvalidCard)
	a.Contains(err.Error(), "play 1")
}
