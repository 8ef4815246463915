package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ShengJi/internal/game/card"
)

// cc builds a test card; the id only matters for hand bookkeeping.
func cc(s card.Suit, r card.Rank) card.Card {
	return card.Card{Suit: s, Rank: r}
}

func copies(s card.Suit, r card.Rank, n int) []card.Card {
	out := make([]card.Card, n)
	for i := range out {
		out[i] = cc(s, r)
	}
	return out
}

// ---------- 结构识别 ----------

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		cards []card.Card
		want  Structure
	}{
		{"single", copies(card.Spade, card.Nine, 1), Single},
		{"pair", copies(card.Heart, card.King, 2), Pair},
		{"triple", copies(card.Club, card.Five, 3), Triple},
		{"quad", copies(card.Diamond, card.Ace, 4), Quad},
		{"empty", nil, Invalid},
		{"five copies", copies(card.Spade, card.Two, 5), Invalid},
		{"mixed rank", []card.Card{cc(card.Spade, card.Nine), cc(card.Spade, card.Ten)}, Invalid},
		// 同等效花色不同实际花色：不是对子
		{"mixed suit same rank", []card.Card{cc(card.Spade, card.Nine), cc(card.Heart, card.Nine)}, Invalid},
		{"joker pair", copies(card.Joker, card.BigJoker, 2), Pair},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.cards))
			assert.Equal(t, tc.want != Invalid, ValidateLead(tc.cards) == nil)
		})
	}
}

func TestStructureSize(t *testing.T) {
	assert.Equal(t, 0, Invalid.Size())
	assert.Equal(t, 1, Single.Size())
	assert.Equal(t, 4, Quad.Size())
}

// ---------- 跟牌校验 ----------

func TestValidateFollow_WrongCardCount(t *testing.T) {
	leader := copies(card.Spade, card.Nine, 2)
	hand := copies(card.Spade, card.Three, 5)
	err := ValidateFollow(leader, hand[:1], hand, card.Heart, card.Five)
	assert.Equal(t, WrongCardCount, err)
}

func TestValidateFollow_MustFollowSuit(t *testing.T) {
	mainSuit, level := card.Heart, card.Five
	leader := copies(card.Spade, card.Nine, 1)

	hand := []card.Card{
		cc(card.Spade, card.Three),
		cc(card.Club, card.Ace),
	}
	// 手里有黑桃却出了梅花
	err := ValidateFollow(leader, []card.Card{cc(card.Club, card.Ace)}, hand, mainSuit, level)
	assert.Equal(t, MustFollowSuit, err)

	// 出黑桃则通过
	err = ValidateFollow(leader, []card.Card{cc(card.Spade, card.Three)}, hand, mainSuit, level)
	assert.NoError(t, err)
}

func TestValidateFollow_LevelCardIsNotItsPrintedSuit(t *testing.T) {
	// 副级牌属于 MAIN，不能用来跟其印刷花色
	mainSuit, level := card.Heart, card.Five
	leader := copies(card.Spade, card.Nine, 1)

	hand := []card.Card{
		cc(card.Spade, card.Five), // 级牌，等效 MAIN
		cc(card.Club, card.Ace),
	}
	// 手里没有黑桃（黑桃5是主），随便垫梅花是合法的
	err := ValidateFollow(leader, []card.Card{cc(card.Club, card.Ace)}, hand, mainSuit, level)
	assert.NoError(t, err)
}

func TestValidateFollow_MustExhaustSuit(t *testing.T) {
	mainSuit, level := card.Heart, card.Five
	leader := copies(card.Spade, card.Nine, 2)

	hand := []card.Card{
		cc(card.Spade, card.Three), // 仅此一张黑桃
		cc(card.Club, card.Ace),
		cc(card.Club, card.King),
	}
	// 一张黑桃都不出：MustExhaustSuit
	err := ValidateFollow(leader, []card.Card{cc(card.Club, card.Ace), cc(card.Club, card.King)}, hand, mainSuit, level)
	assert.Equal(t, MustExhaustSuit, err)

	// 打光黑桃再垫牌：合法
	err = ValidateFollow(leader, []card.Card{cc(card.Spade, card.Three), cc(card.Club, card.Ace)}, hand, mainSuit, level)
	assert.NoError(t, err)
}

func TestValidateFollow_VoidInSuit(t *testing.T) {
	// 完全没有该花色：任意垫牌（包括混合结构）都合法
	mainSuit, level := card.Heart, card.Five
	leader := copies(card.Spade, card.Nine, 2)

	hand := []card.Card{
		cc(card.Club, card.Ace),
		cc(card.Diamond, card.King),
		cc(card.Club, card.Three),
	}
	err := ValidateFollow(leader, []card.Card{cc(card.Club, card.Ace), cc(card.Diamond, card.King)}, hand, mainSuit, level)
	assert.NoError(t, err)
}

// ---------- 死顶（dead stick） ----------

func TestValidateFollow_DeadStick_MustPlayPair(t *testing.T) {
	mainSuit, level := card.Heart, card.Five
	leader := copies(card.Spade, card.Nine, 2)

	hand := []card.Card{
		cc(card.Spade, card.Three), cc(card.Spade, card.Three), // 有对子
		cc(card.Spade, card.King),
		cc(card.Spade, card.Queen),
	}
	// 出两张散牌而不拆对：DeadStick
	err := ValidateFollow(leader, []card.Card{cc(card.Spade, card.King), cc(card.Spade, card.Queen)}, hand, mainSuit, level)
	assert.Equal(t, DeadStick, err)

	// 出对子：合法
	err = ValidateFollow(leader, []card.Card{cc(card.Spade, card.Three), cc(card.Spade, card.Three)}, hand, mainSuit, level)
	assert.NoError(t, err)
}

func TestValidateFollow_DeadStick_Cascade(t *testing.T) {
	// 领出三张，手里最大只有对子：对子即为最低要求
	mainSuit, level := card.Heart, card.Five
	leader := copies(card.Spade, card.Nine, 3)

	hand := []card.Card{
		cc(card.Spade, card.Three), cc(card.Spade, card.Three),
		cc(card.Spade, card.King),
		cc(card.Spade, card.Queen),
	}
	// 三张全散：DeadStick（必须包含那个对子）
	err := ValidateFollow(leader,
		[]card.Card{cc(card.Spade, card.King), cc(card.Spade, card.Queen), cc(card.Spade, card.Three)},
		hand, mainSuit, level)
	assert.Equal(t, DeadStick, err)

	// 对子 + 一张散牌：合法
	err = ValidateFollow(leader,
		[]card.Card{cc(card.Spade, card.Three), cc(card.Spade, card.Three), cc(card.Spade, card.King)},
		hand, mainSuit, level)
	assert.NoError(t, err)
}

func TestValidateFollow_DeadStick_NoPairMeansSinglesOK(t *testing.T) {
	mainSuit, level := card.Heart, card.Five
	leader := copies(card.Spade, card.Nine, 2)

	hand := []card.Card{
		cc(card.Spade, card.King),
		cc(card.Spade, card.Queen),
		cc(card.Spade, card.Jack),
	}
	err := ValidateFollow(leader, []card.Card{cc(card.Spade, card.King), cc(card.Spade, card.Jack)}, hand, mainSuit, level)
	assert.NoError(t, err)
}

func TestValidateFollow_DeadStick_NotAppliedWhenShort(t *testing.T) {
	// 跟牌没跟满目标花色时不检查死顶
	mainSuit, level := card.Heart, card.Five
	leader := copies(card.Spade, card.Nine, 2)

	hand := []card.Card{
		cc(card.Spade, card.King), // 仅一张黑桃
		cc(card.Club, card.Three), cc(card.Club, card.Three),
		cc(card.Club, card.Four),
	}
	err := ValidateFollow(leader, []card.Card{cc(card.Spade, card.King), cc(card.Club, card.Four)}, hand, mainSuit, level)
	assert.NoError(t, err)
}

// ---------- 赢墩判定 ----------

func TestPowerScore_Ladder(t *testing.T) {
	mainSuit, level := card.Heart, card.Five

	ladder := []card.Card{
		cc(card.Joker, card.BigJoker),
		cc(card.Joker, card.SmallJoker),
		cc(card.Heart, card.Five),
		cc(card.Spade, card.Five),
		cc(card.Heart, card.Two),
		cc(card.Club, card.Two),
		cc(card.Heart, card.Ace),
		cc(card.Spade, card.Ace),
	}
	for i := 1; i < len(ladder); i++ {
		hi := PowerScore(ladder[i-1], mainSuit, level)
		lo := PowerScore(ladder[i], mainSuit, level)
		assert.Greater(t, hi, lo, "%v should outrank %v", ladder[i-1], ladder[i])
	}
}

func TestTrickWinner_FollowSuit(t *testing.T) {
	mainSuit, level := card.Heart, card.Five
	plays := []Play{
		{Seat: 0, Cards: []card.Card{cc(card.Spade, card.Nine)}},
		{Seat: 1, Cards: []card.Card{cc(card.Spade, card.King)}},
		{Seat: 2, Cards: []card.Card{cc(card.Spade, card.Queen)}},
		{Seat: 3, Cards: []card.Card{cc(card.Club, card.Ace)}}, // 垫牌
	}
	assert.Equal(t, 1, TrickWinner(plays, mainSuit, level))
}

func TestTrickWinner_MainKillsOffSuitLead(t *testing.T) {
	mainSuit, level := card.Heart, card.Five
	plays := []Play{
		{Seat: 0, Cards: []card.Card{cc(card.Spade, card.Ace)}},
		{Seat: 1, Cards: []card.Card{cc(card.Heart, card.Three)}}, // 主杀
		{Seat: 2, Cards: []card.Card{cc(card.Spade, card.King)}},
	}
	assert.Equal(t, 1, TrickWinner(plays, mainSuit, level))
}

func TestTrickWinner_OffSuitNeverWins(t *testing.T) {
	mainSuit, level := card.Heart, card.Five
	plays := []Play{
		{Seat: 0, Cards: []card.Card{cc(card.Spade, card.Three)}},
		{Seat: 1, Cards: []card.Card{cc(card.Club, card.Ace)}},
		{Seat: 2, Cards: []card.Card{cc(card.Diamond, card.Ace)}},
	}
	assert.Equal(t, 0, TrickWinner(plays, mainSuit, level))
}

func TestTrickWinner_StructureMustMatch(t *testing.T) {
	// 拆对垫两张散牌赢不了对子
	mainSuit, level := card.Heart, card.Five
	plays := []Play{
		{Seat: 0, Cards: copies(card.Spade, card.Nine, 2)},
		{Seat: 1, Cards: []card.Card{cc(card.Spade, card.Ace), cc(card.Spade, card.King)}},
		{Seat: 2, Cards: copies(card.Spade, card.Ten, 2)},
	}
	assert.Equal(t, 2, TrickWinner(plays, mainSuit, level))
}

func TestTrickWinner_TieKeepsEarlier(t *testing.T) {
	// 四副牌下同面值同花色会相撞：先出者保持领先
	mainSuit, level := card.Heart, card.Five
	plays := []Play{
		{Seat: 2, Cards: []card.Card{cc(card.Spade, card.King)}},
		{Seat: 3, Cards: []card.Card{cc(card.Spade, card.King)}},
	}
	assert.Equal(t, 0, TrickWinner(plays, mainSuit, level))
}

func TestTrickWinner_MainLeadCannotBeKilledHigherByLowerMain(t *testing.T) {
	mainSuit, level := card.Heart, card.Five
	plays := []Play{
		{Seat: 0, Cards: []card.Card{cc(card.Heart, card.Five)}},  // 主级牌
		{Seat: 1, Cards: []card.Card{cc(card.Heart, card.Ace)}},   // 普通主
		{Seat: 2, Cards: []card.Card{cc(card.Joker, card.BigJoker)}},
	}
	assert.Equal(t, 2, TrickWinner(plays, mainSuit, level))
}

func TestTrickPoints(t *testing.T) {
	plays := []Play{
		{Seat: 0, Cards: []card.Card{cc(card.Spade, card.Five)}},
		{Seat: 1, Cards: []card.Card{cc(card.Heart, card.Ten)}},
		{Seat: 2, Cards: []card.Card{cc(card.Club, card.King)}},
		{Seat: 3, Cards: []card.Card{cc(card.Diamond, card.Ace)}},
	}
	assert.Equal(t, 25, TrickPoints(plays))
}

// ---------- 叫主 ----------

func TestDeclarationStrength(t *testing.T) {
	level := card.Five
	cases := []struct {
		name  string
		cards []card.Card
		want  int
	}{
		{"single black level", copies(card.Spade, card.Five, 1), 10},
		{"single red level", copies(card.Heart, card.Five, 1), 15},
		{"pair black level", copies(card.Club, card.Five, 2), 20},
		{"pair red level", copies(card.Diamond, card.Five, 2), 25},
		{"quad red level", copies(card.Heart, card.Five, 4), 45},
		{"triple small joker", copies(card.Joker, card.SmallJoker, 3), 50},
		{"quad small joker", copies(card.Joker, card.SmallJoker, 4), 70},
		{"triple big joker", copies(card.Joker, card.BigJoker, 3), 60},
		{"quad big joker", copies(card.Joker, card.BigJoker, 4), 80},
		{"pair jokers too few", copies(card.Joker, card.BigJoker, 2), 0},
		{"non level card", copies(card.Spade, card.Nine, 2), 0},
		{"mixed cards", []card.Card{cc(card.Spade, card.Five), cc(card.Heart, card.Five)}, 0},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeclarationStrength(tc.cards, level))
		})
	}
}

func TestDeclaredSuit(t *testing.T) {
	suit, err := DeclaredSuit(copies(card.Spade, card.Five, 1), card.SuitNone)
	assert.NoError(t, err)
	assert.Equal(t, card.Spade, suit)

	// 级牌自带花色，指名不一致应拒绝
	_, err = DeclaredSuit(copies(card.Spade, card.Five, 1), card.Heart)
	assert.Equal(t, InvalidStructure, err)

	// 王必须指名花色
	suit, err = DeclaredSuit(copies(card.Joker, card.BigJoker, 3), card.Diamond)
	assert.NoError(t, err)
	assert.Equal(t, card.Diamond, suit)

	_, err = DeclaredSuit(copies(card.Joker, card.BigJoker, 3), card.SuitNone)
	assert.Equal(t, InvalidStructure, err)
	_, err = DeclaredSuit(copies(card.Joker, card.BigJoker, 3), card.Joker)
	assert.Equal(t, InvalidStructure, err)
}
