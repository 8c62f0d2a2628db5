package hearts

// BotStrategy 机器人出牌策略。纯函数式决策：
// 只看手牌和当前轮次，无状态也不搜索。
type BotStrategy struct{}

// ChooseCard 选出要打的牌。调用前提：hand 非空（引擎只在
// 机器人还有手牌时调用）。
//
// 1. 机器人领出：打全局最“安全”的牌
// 2. 能跟领出花色：尽量垫小牌输掉这一轮
// 3. 跟不上花色：甩全局最“危险”的牌
func (BotStrategy) ChooseCard(hand Cards, trick *Trick) Card {
	if trick.LeadingSuit == SuitNone {
		return safestCard(hand)
	}

	follow := hand.OfSuit(trick.LeadingSuit)
	if len(follow) > 0 {
		return followCard(follow, trick.Cards)
	}
	return dangerousCard(hand)
}

// followCard 在必须跟花色时选牌。
// 本花色最小的牌如果已经压过场上最小的牌，直接打它；
// 否则在点数低于场上最小牌的跟牌里挑最大的一张，
// 既输掉这一轮又不浪费更小的安全牌。
// 点数跨花色会相同，可能没有严格更小的跟牌，此时退回最小跟牌。
func followCard(follow Cards, trickCards Cards) Card {
	lowest := follow.LowestRank()
	if len(trickCards) == 0 {
		return lowest
	}

	lowestInTrick := trickCards.LowestRank()
	if lowest.Rank() > lowestInTrick.Rank() {
		return lowest
	}

	var duck Card
	for _, c := range follow {
		if c.Rank() >= lowestInTrick.Rank() {
			continue
		}
		if duck == "" || c.Rank() > duck.Rank() {
			duck = c
		}
	}
	if duck == "" {
		return lowest
	}
	return duck
}

// cardKey 一张牌在整手牌里的排序键
type cardKey struct {
	rank      int // 点数
	suitCount int // 同花色持有张数
	suitSum   int // 同花色点数之和
}

func keyOf(hand Cards, c Card) cardKey {
	ofSuit := hand.OfSuit(c.Suit())
	return cardKey{
		rank:      c.Rank(),
		suitCount: len(ofSuit),
		suitSum:   ofSuit.RankSum(),
	}
}

// safestCard 领出时的选择：点数最低，同点数时优先打
// 持有张数少的花色（清短门），再按花色点数和更低的优先。
func safestCard(hand Cards) Card {
	var best Card
	var bestKey cardKey
	for _, c := range hand {
		k := keyOf(hand, c)
		if best == "" || lessSafe(bestKey, k) {
			best, bestKey = c, k
		}
	}
	return best
}

// lessSafe 判断 b 是否比 a 更安全（更适合领出）
func lessSafe(a, b cardKey) bool {
	if b.rank != a.rank {
		return b.rank < a.rank
	}
	if b.suitCount != a.suitCount {
		return b.suitCount < a.suitCount
	}
	return b.suitSum < a.suitSum
}

// dangerousCard 垫牌时的选择：点数最高，同点数时优先甩
// 持有张数多的花色，再按花色点数和更高的优先。
func dangerousCard(hand Cards) Card {
	var best Card
	var bestKey cardKey
	for _, c := range hand {
		k := keyOf(hand, c)
		if best == "" || moreDangerous(bestKey, k) {
			best, bestKey = c, k
		}
	}
	return best
}

// moreDangerous 判断 b 是否比 a 更危险（更该甩出去）
func moreDangerous(a, b cardKey) bool {
	if b.rank != a.rank {
		return b.rank > a.rank
	}
	if b.suitCount != a.suitCount {
		return b.suitCount > a.suitCount
	}
	return b.suitSum > a.suitSum
}
