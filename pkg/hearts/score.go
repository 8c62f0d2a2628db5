package hearts

// 罚分值。规则随回合数逐级叠加：
// 第1回合只按张数计分，第2回合加红桃，第3回合加Q，
// 第4回合加黑桃K，第5回合加最后一轮的整轮罚分。
const (
	cardPenalty      = 1   // 每张牌
	heartPenalty     = 10  // 每张红桃
	queenPenalty     = 25  // 每张Q（任意花色）
	blackKingPenalty = 50  // 黑桃K
	lastTrickPenalty = 100 // 回合最后一轮，整轮一次
)

// NumRounds 整局共5个计分回合
const NumRounds = 5

// CardScores 返回一轮牌里每张牌在指定回合规则下的罚分，
// 顺序与 trick.Cards 一致；最后一轮的整轮罚分作为额外一项追加在末尾。
// 广播端用它做逐张计分动画。
func CardScores(t *Trick, round int) []int {
	scores := make([]int, 0, len(t.Cards)+1)

	for _, card := range t.Cards {
		score := 0
		if round >= 1 {
			score += cardPenalty
		}
		if round >= 2 && card.Suit() == SuitHearts {
			score += heartPenalty
		}
		if round >= 3 && card.IsQueen() {
			score += queenPenalty
		}
		if round >= 4 && card == KingOfSpades {
			score += blackKingPenalty
		}
		scores = append(scores, score)
	}

	if round >= 5 && t.IsLastTrick {
		scores = append(scores, lastTrickPenalty)
	}
	return scores
}

// TrickScore 一轮牌在指定回合规则下的总罚分
func TrickScore(t *Trick, round int) int {
	total := 0
	for _, s := range CardScores(t, round) {
		total += s
	}
	return total
}

// RoundScore 一名玩家整个回合的罚分：对其赢下的每一轮求和
func RoundScore(tricks []*Trick, round int) int {
	total := 0
	for _, t := range tricks {
		total += TrickScore(t, round)
	}
	return total
}

// SetWinners 计算各玩家的总分，把总分严格最低的玩家标记为赢家。
// 并列最低时产生多个赢家。
func SetWinners(ps *Players) {
	players := ps.All()
	if len(players) == 0 {
		return
	}

	lowest := players[0].TotalScore()
	for _, p := range players[1:] {
		if total := p.TotalScore(); total < lowest {
			lowest = total
		}
	}

	for _, p := range players {
		if p.TotalScore() == lowest {
			p.IsWinner = true
		}
	}
}
