package hearts

// Players 按座位顺序维护的玩家注册表。
// Go 的 map 不保证遍历顺序，这里用 order 显式记录加入顺序：
// 真人按连接先后，机器人按补位先后。开局时这个顺序就是出牌顺序。
type Players struct {
	order []string
	byID  map[string]*Player
}

// NewPlayers
func NewPlayers() *Players {
	return &Players{byID: make(map[string]*Player)}
}

// Len 玩家数量
func (ps *Players) Len() int {
	return len(ps.order)
}

// IsFull 座位是否已满
func (ps *Players) IsFull() bool {
	return len(ps.order) >= MaxPlayers
}

// IsNew 该ID是否不属于任何已注册玩家
func (ps *Players) IsNew(id string) bool {
	if id == "" {
		return true
	}
	_, ok := ps.byID[id]
	return !ok
}

// Get 按ID取玩家
func (ps *Players) Get(id string) (*Player, bool) {
	p, ok := ps.byID[id]
	return p, ok
}

// Add 注册一个玩家，ID重复时忽略
func (ps *Players) Add(p *Player) {
	if _, ok := ps.byID[p.ID]; ok {
		return
	}
	ps.byID[p.ID] = p
	ps.order = append(ps.order, p.ID)
}

// Remove 按ID移除玩家
func (ps *Players) Remove(id string) {
	if _, ok := ps.byID[id]; !ok {
		return
	}
	delete(ps.byID, id)
	for i, pid := range ps.order {
		if pid == id {
			ps.order = append(ps.order[:i], ps.order[i+1:]...)
			break
		}
	}
}

// IDs 按座位顺序返回所有玩家ID
func (ps *Players) IDs() []string {
	ids := make([]string, len(ps.order))
	copy(ids, ps.order)
	return ids
}

// All 按座位顺序返回所有玩家
func (ps *Players) All() []*Player {
	out := make([]*Player, 0, len(ps.order))
	for _, id := range ps.order {
		out = append(out, ps.byID[id])
	}
	return out
}

// AddBots 用机器人补满空位
func (ps *Players) AddBots() {
	for !ps.IsFull() {
		id := NewPlayerID()
		if !ps.IsNew(id) {
			continue
		}
		ps.Add(NewBot(id))
	}
}

// ClearTricks 清空所有玩家本回合赢下的轮次
func (ps *Players) ClearTricks() {
	for _, p := range ps.byID {
		p.Tricks = nil
	}
}

// Reset 整局重置：机器人整体移除，真人保留身份但清空对局数据
func (ps *Players) Reset() {
	var bots []string
	for _, id := range ps.order {
		if ps.byID[id].IsBot() {
			bots = append(bots, id)
		}
	}
	for _, id := range bots {
		ps.Remove(id)
	}

	for _, p := range ps.byID {
		p.Reset()
	}
}

// Broadcast 把载荷发给每个玩家。单个玩家发送失败
// 不影响其余玩家，也不会中断调用方。
func (ps *Players) Broadcast(payload any) {
	for _, id := range ps.order {
		ps.byID[id].Send(payload)
	}
}
