package card

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// DeckSets is the number of 54-card sets shuffled together.
const DeckSets = 4

// DeckSize 整副牌张数：4 × (52 + 大小王)
const DeckSize = DeckSets * 54

// Deck 只负责洗牌与发牌（无规则判断）
type Deck struct {
	cards []Card
	rnd   *rand.Rand
}

// NewDeck builds the four-set match deck and verifies its integrity.
// A count mismatch is structural corruption, not a rule violation.
func NewDeck(seed int64) (*Deck, error) {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rnd:   rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < DeckSets; i++ {
		for _, s := range []Suit{Spade, Heart, Club, Diamond} {
			for r := Two; r <= Ace; r++ {
				d.cards = append(d.cards, Card{Suit: s, Rank: r, ID: uuid.NewString()})
			}
		}
		d.cards = append(d.cards, Card{Suit: Joker, Rank: SmallJoker, ID: uuid.NewString()})
		d.cards = append(d.cards, Card{Suit: Joker, Rank: BigJoker, ID: uuid.NewString()})
	}
	if len(d.cards) != DeckSize {
		return nil, fmt.Errorf("deck corrupt: built %d cards, want %d", len(d.cards), DeckSize)
	}
	return d, nil
}

func (d *Deck) Shuffle() {
	d.rnd.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the next n cards.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("deck exhausted: want %d, have %d", n, len(d.cards))
	}
	out := d.cards[:n]
	d.cards = d.cards[n:]
	return out, nil
}

// DrawOne removes and returns a single card, or false when empty.
func (d *Deck) DrawOne() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
