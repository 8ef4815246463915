package card

import "fmt"

// Suit 花色。Joker 单独成一类（大小王）
type Suit int

const (
	SuitNone Suit = iota // 未定主 / 无主
	Spade
	Heart
	Club
	Diamond
	Joker
)

func (s Suit) String() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Joker:
		return "JOKER"
	default:
		return "-"
	}
}

// Red reports whether the suit is a red suit (used for declaration strength).
func (s Suit) Red() bool {
	return s == Heart || s == Diamond
}

// Rank 点数。2..14 为常规牌，15/16 为小王/大王
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14

	SmallJoker Rank = 15
	BigJoker   Rank = 16
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	case SmallJoker:
		return "SJ"
	case BigJoker:
		return "BJ"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card 一张实体牌。四副牌中同花色同点数的牌有 4 张，ID 区分实体；
// 规则比较只看 (Suit, Rank)，ID 仅用于手牌选牌/移除。
type Card struct {
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
	ID   string `json:"id"`
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// SameFace reports rule-level identity: suit and rank match, physical copy
// ignored.
func (c Card) SameFace(o Card) bool {
	return c.Suit == o.Suit && c.Rank == o.Rank
}

// Face is the (suit, rank) pair used to group physical copies.
type Face struct {
	Suit Suit
	Rank Rank
}

func (c Card) Face() Face {
	return Face{Suit: c.Suit, Rank: c.Rank}
}

// Points returns the scoring value of the card: 5s are worth 5,
// 10s and Kings are worth 10.
func (c Card) Points() int {
	switch c.Rank {
	case Five:
		return 5
	case Ten, King:
		return 10
	default:
		return 0
	}
}

// Type 牌的有效等级（主副归类），由当前级牌与主花色决定
type Type int

const (
	SubCard Type = iota
	MainSuitCard
	SubTwo
	MainTwo
	SubLevel
	MainLevel
	TypeSmallJoker
	TypeBigJoker
)

// EffectiveType classifies the card's power tier for the given declared main
// suit and level rank. Jokers are always main; level cards and 2s are main
// regardless of the declared suit.
func (c Card) EffectiveType(mainSuit Suit, level Rank) Type {
	if c.Rank == BigJoker {
		return TypeBigJoker
	}
	if c.Rank == SmallJoker {
		return TypeSmallJoker
	}
	if c.Rank == level {
		if c.Suit == mainSuit {
			return MainLevel
		}
		return SubLevel
	}
	if c.Rank == Two {
		if c.Suit == mainSuit {
			return MainTwo
		}
		return SubTwo
	}
	if mainSuit != SuitNone && c.Suit == mainSuit {
		return MainSuitCard
	}
	return SubCard
}

// IsMain reports whether the card counts as trump ("main") under the given
// declared suit and level rank. Before a suit is declared only jokers, level
// cards and 2s are main.
func (c Card) IsMain(mainSuit Suit, level Rank) bool {
	return c.EffectiveType(mainSuit, level) > SubCard
}

// EffectiveSuitMain is the logic-suit bucket all main cards collapse into.
const EffectiveSuitMain = "MAIN"

// EffectiveSuit returns the logic suit used by every suit-following
// comparison: "MAIN" for trump cards, the natural suit otherwise.
func (c Card) EffectiveSuit(mainSuit Suit, level Rank) string {
	if c.IsMain(mainSuit, level) {
		return EffectiveSuitMain
	}
	return c.Suit.String()
}
