package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck_Integrity(t *testing.T) {
	d, err := NewDeck(42)
	assert.NoError(t, err)
	assert.Equal(t, DeckSize, d.Remaining())

	// 每个 (花色, 点数) 恰好 4 张实体，ID 互不相同
	faces := make(map[Face]int)
	ids := make(map[string]struct{})
	for {
		c, ok := d.DrawOne()
		if !ok {
			break
		}
		faces[c.Face()]++
		ids[c.ID] = struct{}{}
	}
	assert.Equal(t, 54, len(faces))
	assert.Equal(t, DeckSize, len(ids))
	for f, n := range faces {
		assert.Equal(t, DeckSets, n, "face %v should have %d copies", f, DeckSets)
	}
}

func TestDeck_ShuffleDeterministic(t *testing.T) {
	d1, _ := NewDeck(7)
	d2, _ := NewDeck(7)
	d1.Shuffle()
	d2.Shuffle()

	c1, _ := d1.Draw(10)
	c2, _ := d2.Draw(10)
	for i := range c1 {
		assert.True(t, c1[i].SameFace(c2[i]), "same seed should deal the same order")
	}
	assert.Equal(t, DeckSize-10, d1.Remaining())
}

func TestDeck_DrawExhausted(t *testing.T) {
	d, _ := NewDeck(1)
	_, err := d.Draw(DeckSize + 1)
	assert.Error(t, err)
	assert.Equal(t, DeckSize, d.Remaining(), "failed draw must not consume cards")
}

func TestCard_Points(t *testing.T) {
	assert.Equal(t, 5, Card{Suit: Heart, Rank: Five}.Points())
	assert.Equal(t, 10, Card{Suit: Spade, Rank: Ten}.Points())
	assert.Equal(t, 10, Card{Suit: Club, Rank: King}.Points())
	assert.Equal(t, 0, Card{Suit: Diamond, Rank: Ace}.Points())
	assert.Equal(t, 0, Card{Suit: Joker, Rank: BigJoker}.Points())
}

func TestCard_EffectiveType(t *testing.T) {
	mainSuit, level := Heart, Five

	cases := []struct {
		name string
		c    Card
		want Type
	}{
		{"big joker", Card{Suit: Joker, Rank: BigJoker}, TypeBigJoker},
		{"small joker", Card{Suit: Joker, Rank: SmallJoker}, TypeSmallJoker},
		{"main level", Card{Suit: Heart, Rank: Five}, MainLevel},
		{"sub level", Card{Suit: Spade, Rank: Five}, SubLevel},
		{"main two", Card{Suit: Heart, Rank: Two}, MainTwo},
		{"sub two", Card{Suit: Club, Rank: Two}, SubTwo},
		{"main suit", Card{Suit: Heart, Rank: King}, MainSuitCard},
		{"off suit", Card{Suit: Spade, Rank: Ace}, SubCard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.EffectiveType(mainSuit, level))
		})
	}
}

func TestCard_EffectiveType_NoMainSuit(t *testing.T) {
	// 无主局：只有王、级牌和 2 算主
	level := Ten
	assert.Equal(t, SubLevel, Card{Suit: Heart, Rank: Ten}.EffectiveType(SuitNone, level))
	assert.Equal(t, SubTwo, Card{Suit: Heart, Rank: Two}.EffectiveType(SuitNone, level))
	assert.Equal(t, SubCard, Card{Suit: Heart, Rank: King}.EffectiveType(SuitNone, level))
	assert.True(t, Card{Suit: Joker, Rank: SmallJoker}.IsMain(SuitNone, level))
	assert.False(t, Card{Suit: Heart, Rank: King}.IsMain(SuitNone, level))
}

func TestCard_EffectiveSuit(t *testing.T) {
	mainSuit, level := Spade, Three

	assert.Equal(t, EffectiveSuitMain, Card{Suit: Spade, Rank: Nine}.EffectiveSuit(mainSuit, level))
	assert.Equal(t, EffectiveSuitMain, Card{Suit: Heart, Rank: Three}.EffectiveSuit(mainSuit, level))
	assert.Equal(t, EffectiveSuitMain, Card{Suit: Diamond, Rank: Two}.EffectiveSuit(mainSuit, level))
	assert.Equal(t, EffectiveSuitMain, Card{Suit: Joker, Rank: BigJoker}.EffectiveSuit(mainSuit, level))
	assert.Equal(t, Heart.String(), Card{Suit: Heart, Rank: Nine}.EffectiveSuit(mainSuit, level))
}
