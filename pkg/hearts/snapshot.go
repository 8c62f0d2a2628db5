package hearts

// 对外广播的载荷结构。字段名是前端协议的一部分，
// 与历史实现逐键保持一致。

// TrickSnapshot 一轮牌的公开视图：只暴露已出的牌和领出花色，
// 不暴露当前胜牌。
type TrickSnapshot struct {
	Cards       []Card `json:"cards"`
	LeadingSuit Suit   `json:"leading_suit"`
}

// Snapshot 生成公开视图
func (t *Trick) Snapshot() TrickSnapshot {
	cards := make([]Card, len(t.Cards))
	copy(cards, t.Cards)
	return TrickSnapshot{
		Cards:       cards,
		LeadingSuit: t.LeadingSuit,
	}
}

// StateSnapshot 对局状态的公开视图
type StateSnapshot struct {
	CurrentPlayerID string        `json:"current_player_id"`
	CurrentRound    int           `json:"current_round"`
	CurrentTrick    TrickSnapshot `json:"current_trick"`
	DiscardPile     []Card        `json:"discard_pile"`
	GamePhase       string        `json:"game_phase"`
	TurnPhase       string        `json:"turn_phase"`
}

// Snapshot 生成公开视图
func (gs *GameState) Snapshot() StateSnapshot {
	pile := make([]Card, len(gs.DiscardPile))
	copy(pile, gs.DiscardPile)
	return StateSnapshot{
		CurrentPlayerID: gs.CurrentPlayerID(),
		CurrentRound:    gs.CurrentRound,
		CurrentTrick:    gs.CurrentTrick.Snapshot(),
		DiscardPile:     pile,
		GamePhase:       gs.GamePhase.String(),
		TurnPhase:       gs.TurnPhase.String(),
	}
}

// PlayerSnapshot 玩家的公开视图。手牌对所有人可见（基线行为）。
type PlayerSnapshot struct {
	Hand       []Card          `json:"hand"`
	IsWinner   bool            `json:"is_winner"`
	Name       string          `json:"name"`
	PlayerID   string          `json:"player_id"`
	Scores     []int           `json:"scores"`
	TotalScore int             `json:"total_score"`
	Tricks     []TrickSnapshot `json:"tricks"`
}

// Snapshot 生成公开视图
func (p *Player) Snapshot() PlayerSnapshot {
	hand := make([]Card, len(p.Hand))
	copy(hand, p.Hand)

	tricks := make([]TrickSnapshot, 0, len(p.Tricks))
	for _, t := range p.Tricks {
		tricks = append(tricks, t.Snapshot())
	}

	scores := make([]int, len(p.Scores))
	copy(scores, p.Scores)

	return PlayerSnapshot{
		Hand:       hand,
		IsWinner:   p.IsWinner,
		Name:       p.Name,
		PlayerID:   p.ID,
		Scores:     scores,
		TotalScore: p.TotalScore(),
		Tricks:     tricks,
	}
}

// Snapshot 生成全部玩家的公开视图，按ID索引
func (ps *Players) Snapshot() map[string]PlayerSnapshot {
	out := make(map[string]PlayerSnapshot, len(ps.order))
	for _, id := range ps.order {
		out[id] = ps.byID[id].Snapshot()
	}
	return out
}

// StatePayload 每次状态变化后推送的完整载荷
type StatePayload struct {
	GameState StateSnapshot             `json:"game_state"`
	Players   map[string]PlayerSnapshot `json:"players"`
}

// PlayersPayload 大厅变化时推送的玩家列表载荷
type PlayersPayload struct {
	Players map[string]PlayerSnapshot `json:"players"`
}

// CardScoresPayload 结算动画用的逐张计分流，空列表表示清除
type CardScoresPayload struct {
	CardScores []int `json:"card_scores"`
}

// SessionPayload 新连接的私有首包，比广播载荷多出本人ID
type SessionPayload struct {
	GameState StateSnapshot             `json:"game_state"`
	Players   map[string]PlayerSnapshot `json:"players"`
	PlayerID  string                    `json:"player_id"`
}
