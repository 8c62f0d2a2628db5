package hearts

// Trick 一轮出牌的记录。由 GameState 独占持有，
// 一轮结束后整体换新，不做原地清空。
type Trick struct {
	Cards       Cards // 本轮打出的牌，按出牌顺序
	IsLastTrick bool  // 是否为回合的最后一轮（结算时标记）
	LeadingSuit Suit  // 首张牌定下的领出花色，定下后本轮不再变
	WinnerID    string
	WinningCard Card
}

// NewTrick
func NewTrick() *Trick {
	return &Trick{}
}

// Update 记录一次出牌。
// 领出花色未定时先用这张牌定下来，再判断是否接管胜牌；
// 顺序保证本轮第一张牌必然先成为胜牌。
func (t *Trick) Update(card Card, playerID string) {
	t.Cards = append(t.Cards, card)

	if t.LeadingSuit == SuitNone {
		t.LeadingSuit = card.Suit()
	}

	if IsHigherRank(card, t.WinningCard) {
		t.WinningCard = card
		t.WinnerID = playerID
	}
}
