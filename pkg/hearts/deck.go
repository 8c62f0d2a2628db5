package hearts

import (
	"math/rand/v2"
	"slices"
)

// MaxPlayers 一局最多4名玩家
const MaxPlayers = 4

// suits 整副牌的固有花色顺序
var suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// ranks 每个花色的点数 token，2-10、J、Q、K、A 升序
var ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// NewDeck 生成一副有序的 52 张牌
func NewDeck() Cards {
	cards := make(Cards, 0, 52)
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, Card(rank+string(suit)))
		}
	}
	return cards
}

// DeckManager 管理一个回合用的发牌堆
type DeckManager struct {
	deck Cards
}

// NewDeckManager
func NewDeckManager() *DeckManager {
	return &DeckManager{deck: NewDeck()}
}

// Shuffle 洗牌，随机打乱牌的顺序
func (d *DeckManager) Shuffle() {
	rand.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// DealHands 发牌，把牌堆从前往后均分给 players 个玩家。
// 每手 len(deck)/players 张，除不尽的余牌本回合弃用。
// 每手牌按（展示花色序，点数）升序排好再返回。
func (d *DeckManager) DealHands(players int) []Cards {
	if players <= 0 {
		return nil
	}

	handSize := len(d.deck) / players
	hands := make([]Cards, players)
	for i := range players {
		hand := make(Cards, handSize)
		copy(hand, d.deck[:handSize])
		d.deck = d.deck[handSize:]
		sortHand(hand)
		hands[i] = hand
	}
	return hands
}

// Reset 恢复成完整未洗的 52 张牌
func (d *DeckManager) Reset() {
	d.deck = NewDeck()
}

// Remaining 牌堆剩余张数
func (d *DeckManager) Remaining() int {
	return len(d.deck)
}

func sortHand(hand Cards) {
	slices.SortFunc(hand, func(a, b Card) int {
		if o := displayOrder(a.Suit()) - displayOrder(b.Suit()); o != 0 {
			return o
		}
		return a.Rank() - b.Rank()
	})
}
