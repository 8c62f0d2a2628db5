package hearts

import (
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

// PlayerType 玩家类型
type PlayerType int8

const (
	PlayerHuman PlayerType = iota // 真人
	PlayerBot                     // 机器人
)

// Sink 把一个载荷投递给已连接的客户端。
// 投递失败即视为不可达，引擎不做重试。
type Sink interface {
	Send(payload any) error
}

// Player 玩家信息
type Player struct {
	ID       string     // 4位字母数字的会话ID
	Name     string     // 展示名
	Type     PlayerType // 真人或机器人
	Hand     Cards      // 当前手牌，保持发牌时的排序
	Tricks   []*Trick   // 本回合赢下的轮次，回合结束清空
	Scores   []int      // 每个已完成回合一个分数，整局重置才清
	IsWinner bool       // 是否为赢家

	sink Sink // 仅真人在线时有值；机器人和掉线玩家为 nil
}

// NewHuman 创建一个真人玩家
func NewHuman(id string) *Player {
	return &Player{
		ID:   id,
		Name: "Player #" + id,
		Type: PlayerHuman,
	}
}

// NewBot 创建一个机器人玩家
func NewBot(id string) *Player {
	return &Player{
		ID:   id,
		Name: "Bot #" + id,
		Type: PlayerBot,
	}
}

// IsBot 是否为机器人
func (p *Player) IsBot() bool {
	return p.Type == PlayerBot
}

// HasSuit 手牌里是否有指定花色
func (p *Player) HasSuit(suit Suit) bool {
	return p.Hand.HasSuit(suit)
}

// TakeTrick 收下赢到的一轮牌
func (p *Player) TakeTrick(t *Trick) {
	p.Tricks = append(p.Tricks, t)
}

// TotalScore 所有回合分数之和
func (p *Player) TotalScore() int {
	total := 0
	for _, s := range p.Scores {
		total += s
	}
	return total
}

// SetSink 绑定传输句柄（玩家上线）
func (p *Player) SetSink(sink Sink) {
	p.sink = sink
}

// ClearSink 解绑传输句柄（玩家离线）
func (p *Player) ClearSink() {
	p.sink = nil
}

// Connected 当前是否在线
func (p *Player) Connected() bool {
	return p.sink != nil
}

// Send 把载荷发给该玩家。未连接时直接返回；
// 发送失败只把该玩家标记为不可达，错误不向上传播。
func (p *Player) Send(payload any) {
	if p.sink == nil {
		return
	}
	if err := p.sink.Send(payload); err != nil {
		log.Warn().Str("player_id", p.ID).Err(err).Msg("send failed, marking player unreachable")
		p.sink = nil
	}
}

// Reset 清空对局数据，保留身份
func (p *Player) Reset() {
	p.Hand = nil
	p.Tricks = nil
	p.Scores = nil
	p.IsWinner = false
}

// playerIDAlphabet 会话ID的字符集
const playerIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// playerIDLength 会话ID长度
const playerIDLength = 4

// NewPlayerID 生成一个4位字母数字ID
func NewPlayerID() string {
	b := make([]byte, playerIDLength)
	for i := range b {
		b[i] = playerIDAlphabet[rand.IntN(len(playerIDAlphabet))]
	}
	return string(b)
}
