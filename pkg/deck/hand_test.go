package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_String(t *testing.T) {
	assert.Equal(t, "14s,3c", Hand(CardsFromString("14s,3c")).String())
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c"))
	clone := hand.Clone()
	clone[0] = CardFromString("14s")

	assert.Equal(t, "2c,3c", hand.String())
	assert.Equal(t, "14s,3c", clone.String())
}
