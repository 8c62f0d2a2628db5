package hearts

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Action 入站动作的封闭集合。在边界上解码成这四种之一，
// 引擎按类型分发，不存在未知动作名。
type Action interface {
	isAction()
}

// UpdateName 修改展示名
type UpdateName struct {
	Name string
}

// StartGame 开始对局
type StartGame struct{}

// PlayCard 出一张牌
type PlayCard struct {
	Card Card
}

// ResetGame 整局重置
type ResetGame struct{}

func (UpdateName) isAction() {}
func (StartGame) isAction()  {}
func (PlayCard) isAction()   {}
func (ResetGame) isAction()  {}

// Engine 对局引擎：驱动轮次/回合推进、动作校验和机器人调度的
// 状态机。所有方法都假定在单一调用方下串行执行，并发入口
// 由外层的串行队列保证。
//
// 失败语义：非法动作（未知玩家、不在阶段、违规出牌、抢出牌）
// 一律静默丢弃——状态不变，也不广播。
type Engine struct {
	state    *GameState
	players  *Players
	deck     *DeckManager
	strategy BotStrategy
	opts     *options
}

// NewEngine 创建引擎，未给出的选项取默认值
func NewEngine(opts ...Option) *Engine {
	o := new(options)
	o.apply(opts...).setDefault()

	return &Engine{
		state:   NewGameState(),
		players: NewPlayers(),
		deck:    NewDeckManager(),
		opts:    o,
	}
}

// State 返回权威对局状态
func (e *Engine) State() *GameState {
	return e.state
}

// Players 返回玩家注册表
func (e *Engine) Players() *Players {
	return e.players
}

// Dispatch 处理一个入站动作，处理到完成（包括连锁的机器人
// 轮次）才返回。
func (e *Engine) Dispatch(playerID string, action Action) {
	switch a := action.(type) {
	case UpdateName:
		e.updateName(playerID, a.Name)
	case StartGame:
		e.startGame()
	case PlayCard:
		e.playTurn(playerID, a.Card)
	case ResetGame:
		e.resetGame()
	}
}

// updateName 修改玩家展示名
func (e *Engine) updateName(playerID, name string) {
	p, ok := e.players.Get(playerID)
	if !ok {
		return
	}

	p.Name = strings.TrimSpace(name)
	e.broadcastState()
}

// startGame 开始对局：补满机器人、定出牌顺序、发第0回合的牌
func (e *Engine) startGame() {
	if e.state.GamePhase != GameNotStarted {
		return
	}
	if e.players.Len() == 0 {
		return
	}

	e.players.AddBots()
	e.setupNewRound()
	e.state.GamePhase = GameInProgress

	log.Info().Strs("turn_order", e.state.TurnOrder).Msg("game started")

	e.broadcastState()
	e.resolveBotTurns()
}

// setupNewRound 回合准备：固定出牌顺序，重建并洗牌、发牌
func (e *Engine) setupNewRound() {
	e.state.SetTurnOrder(e.players.IDs())

	e.deck.Reset()
	e.deck.Shuffle()

	hands := e.deck.DealHands(e.players.Len())
	for i, p := range e.players.All() {
		p.Hand = hands[i]
	}
}

// playTurn 处理一次真人出牌：出牌成功后推进回合，
// 然后把后续所有连续的机器人轮次解决掉
func (e *Engine) playTurn(playerID string, card Card) {
	if !e.playCard(playerID, card) {
		return
	}

	e.opts.sleep(e.opts.turnDelay)
	e.advanceTurn()
	e.broadcastState()

	e.resolveBotTurns()
}

// playCard 校验并落地一次出牌，返回是否成功。
// 失败时状态不变、不广播。
func (e *Engine) playCard(playerID string, card Card) bool {
	if e.state.GamePhase != GameInProgress {
		return false
	}

	p, ok := e.players.Get(playerID)
	if !ok {
		return false
	}
	if playerID != e.state.CurrentPlayerID() {
		return false
	}
	if !e.isValidPlay(p, card) {
		return false
	}

	p.Hand.Remove(card)
	e.state.DiscardPile = append(e.state.DiscardPile, card)
	e.state.CurrentTrick.Update(card, playerID)
	e.state.TurnPhase = TurnComplete

	e.broadcastState()
	return true
}

// isValidPlay 出牌校验：牌必须在手里；领出花色已定且
// 手里有该花色时必须跟牌。
func (e *Engine) isValidPlay(p *Player, card Card) bool {
	if !p.Hand.Contains(card) {
		return false
	}

	leading := e.state.CurrentTrick.LeadingSuit
	if leading != SuitNone && p.HasSuit(leading) && card.Suit() != leading {
		return false
	}
	return true
}

// advanceTurn 推进到下一个出牌者。转回本轮起点说明一轮打完；
// 所有人手牌打空说明回合结束。
func (e *Engine) advanceTurn() {
	e.state.CurrentTurnIndex = rotateIndex(e.state.CurrentTurnIndex, len(e.state.TurnOrder))
	e.state.TurnPhase = TurnNotStarted

	if e.isTrickOver() {
		e.endTrick()
	}
	if e.isRoundOver() {
		e.endRound()
	}
}

func (e *Engine) isTrickOver() bool {
	return e.state.CurrentTurnIndex == e.state.TrickStartIndex
}

func (e *Engine) isRoundOver() bool {
	for _, p := range e.players.All() {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// endTrick 结算一轮：弃牌堆归入本轮记录，判胜并把整轮给赢家，
// 下一轮由赢家领出，换上全新的 Trick。
func (e *Engine) endTrick() {
	trick := e.state.CurrentTrick

	trick.Cards = make(Cards, len(e.state.DiscardPile))
	copy(trick.Cards, e.state.DiscardPile)
	e.state.DiscardPile = nil

	if e.isRoundOver() {
		trick.IsLastTrick = true
	}

	winner, ok := e.players.Get(trick.WinnerID)
	if !ok {
		log.Error().Str("winner_id", trick.WinnerID).Msg("trick winner not registered")
		return
	}
	winner.TakeTrick(trick)

	// 本回合结算时用的是加一后的回合号，动画保持一致
	e.animateCardScores(CardScores(trick, e.state.CurrentRound+1))

	for i, id := range e.state.TurnOrder {
		if id == trick.WinnerID {
			e.state.CurrentTurnIndex = i
			e.state.TrickStartIndex = i
			break
		}
	}

	e.state.CurrentTrick = NewTrick()
}

// animateCardScores 逐张推送计分流，最后推一个空列表清除
func (e *Engine) animateCardScores(scores []int) {
	for i := range scores {
		e.players.Broadcast(CardScoresPayload{CardScores: scores[:i+1]})
		e.opts.sleep(e.opts.scoreStep)
	}

	e.opts.sleep(e.opts.turnDelay)
	e.players.Broadcast(CardScoresPayload{CardScores: []int{}})
}

// endRound 回合结束：先把回合号加一，再按新回合号给每名玩家
// 记分。打满计分回合数则整局结束，否则轮转首发座位、发新回合。
func (e *Engine) endRound() {
	e.state.CurrentRound++

	for _, p := range e.players.All() {
		p.Scores = append(p.Scores, RoundScore(p.Tricks, e.state.CurrentRound))
	}

	if e.state.CurrentRound >= e.opts.rounds {
		e.endGame()
		return
	}

	e.state.RoundStartIndex = rotateIndex(e.state.RoundStartIndex, len(e.state.TurnOrder))
	e.state.CurrentTurnIndex = e.state.RoundStartIndex
	e.state.TrickStartIndex = e.state.RoundStartIndex

	e.setupNewRound()
	e.players.ClearTricks()
}

// endGame 整局结束，标记赢家
func (e *Engine) endGame() {
	e.state.GamePhase = GameComplete
	SetWinners(e.players)

	log.Info().Int("rounds", e.state.CurrentRound).Msg("game complete")
}

// maxBotChain 一次连锁最多解决的机器人轮次。
// 两次真人出牌之间机器人最多连出 2n-2 张（收尾一轮加领出一轮），
// 上限兜底机器人判定逻辑接错时的死循环。
func (e *Engine) maxBotChain() int {
	return 2 * e.players.Len()
}

// resolveBotTurns 同步解决所有连续的机器人轮次，
// 直到轮到真人或对局不再进行中。机器人从不等待外部输入。
func (e *Engine) resolveBotTurns() {
	for range e.maxBotChain() {
		if e.state.GamePhase != GameInProgress {
			return
		}

		p, ok := e.players.Get(e.state.CurrentPlayerID())
		if !ok || !p.IsBot() {
			return
		}

		e.opts.sleep(e.opts.botDelay)

		card := e.strategy.ChooseCard(p.Hand, e.state.CurrentTrick)
		if !e.playCard(p.ID, card) {
			log.Error().Str("player_id", p.ID).Str("card", string(card)).Msg("bot chose an illegal card")
			return
		}

		e.opts.sleep(e.opts.turnDelay)
		e.advanceTurn()
		e.broadcastState()
	}
}

// resetGame 整局重置：状态回到初始值，机器人移除，真人保留身份
func (e *Engine) resetGame() {
	e.state.Reset()
	e.players.Reset()

	log.Info().Msg("game reset")

	e.broadcastState()
}

// StatePayload 当前状态的完整广播载荷
func (e *Engine) StatePayload() StatePayload {
	return StatePayload{
		GameState: e.state.Snapshot(),
		Players:   e.players.Snapshot(),
	}
}

// SessionPayload 指定玩家的私有首包
func (e *Engine) SessionPayload(playerID string) SessionPayload {
	return SessionPayload{
		GameState: e.state.Snapshot(),
		Players:   e.players.Snapshot(),
		PlayerID:  playerID,
	}
}

func (e *Engine) broadcastState() {
	e.players.Broadcast(e.StatePayload())
}
