package hearts

import "time"

// GamePhase 整局的阶段
type GamePhase int8

const (
	GameNotStarted GamePhase = iota // 未开始
	GameInProgress                  // 进行中
	GameComplete                    // 已结束
)

// String 返回对外广播用的阶段名
func (gp GamePhase) String() string {
	switch gp {
	case GameInProgress:
		return "IN_PROGRESS"
	case GameComplete:
		return "GAME_COMPLETE"
	default:
		return "NOT_STARTED"
	}
}

// TurnPhase 单次出牌的阶段，只作为广播节奏的标记，不参与校验
type TurnPhase int8

const (
	TurnNotStarted TurnPhase = iota // 等待出牌
	TurnComplete                    // 已出牌，等待推进
)

// String 返回对外广播用的阶段名
func (tp TurnPhase) String() string {
	if tp == TurnComplete {
		return "TURN_COMPLETE"
	}
	return "NOT_STARTED"
}

// GameState 全局唯一的权威对局状态。一个会话一个实例，
// 整局结束重开时就地重置，不销毁。
type GameState struct {
	CurrentRound     int       // 当前回合数，从0开始
	CurrentTrick     *Trick    // 当前轮次
	CreatedAt        time.Time // 创建时间，用于过期判断
	DiscardPile      Cards     // 本轮已打出、还没归入 Trick 的牌
	GamePhase        GamePhase
	TurnPhase        TurnPhase
	TurnOrder        []string // 出牌顺序，开局后本回合内不变
	CurrentTurnIndex int      // 当前出牌者在 TurnOrder 里的下标
	TrickStartIndex  int      // 本轮首个出牌者的下标，转回来即一轮结束
	RoundStartIndex  int      // 本回合首个出牌者的下标，每回合轮转一位
}

// NewGameState 创建初始状态
func NewGameState() *GameState {
	return &GameState{
		CurrentTrick: NewTrick(),
		CreatedAt:    time.Now(),
	}
}

// CurrentPlayerID 当前出牌者的ID，未定出牌顺序时为空
func (gs *GameState) CurrentPlayerID() string {
	if len(gs.TurnOrder) == 0 {
		return ""
	}
	return gs.TurnOrder[gs.CurrentTurnIndex]
}

// SetTurnOrder 固定本回合的出牌顺序
func (gs *GameState) SetTurnOrder(ids []string) {
	gs.TurnOrder = ids
}

// IsExpired 对局是否已过期。未开始的对局不会过期。
func (gs *GameState) IsExpired(ttl time.Duration) bool {
	if gs.GamePhase == GameNotStarted {
		return false
	}
	return time.Since(gs.CreatedAt) > ttl
}

// Reset 就地恢复到初始状态
func (gs *GameState) Reset() {
	*gs = *NewGameState()
}

// rotateIndex 下标向前转一位
func rotateIndex(index, length int) int {
	return (index + 1) % length
}
