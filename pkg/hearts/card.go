package hearts

import (
	"strconv"
	"strings"
)

// Suit 花色，取牌面 token 的末位字母
type Suit string

const (
	SuitNone     Suit = ""
	SuitHearts   Suit = "H" // 红桃
	SuitDiamonds Suit = "D" // 方块
	SuitClubs    Suit = "C" // 梅花
	SuitSpades   Suit = "S" // 黑桃
)

// Card 是一张牌的 wire token：点数 + 花色字母，例如 "2H"、"10D"、"QS"。
// 空串是 trick 结算里“还没有胜牌”的哨兵值。
type Card string

// KingOfSpades 黑桃K，从第4轮开始计 50 分罚分
const KingOfSpades Card = "KS"

// Rank 返回牌的点数，2-14，A 最大。
// token 只会来自固定的 52 张牌，畸形 token 属于编程错误。
func (c Card) Rank() int {
	switch r := string(c[:len(c)-1]); r {
	case "A":
		return 14
	case "K":
		return 13
	case "Q":
		return 12
	case "J":
		return 11
	default:
		n, err := strconv.Atoi(r)
		if err != nil {
			panic("hearts: malformed card token " + strconv.Quote(string(c)))
		}
		return n
	}
}

// Suit 返回牌的花色
func (c Card) Suit() Suit {
	return Suit(c[len(c)-1:])
}

// IsQueen 是否为Q（任意花色），从第3轮开始计 25 分罚分
func (c Card) IsQueen() bool {
	return c.Rank() == 12
}

// IsHigherRank 判断 a 是否压过 b。
// a 为空永远不压；b 为空（胜牌未设置）被任何实牌压过；
// 花色不同不比较；同花色比点数。
func IsHigherRank(a, b Card) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	if a.Suit() != b.Suit() {
		return false
	}
	return a.Rank() > b.Rank()
}

type Cards []Card

// OfSuit 返回指定花色的所有牌
func (cs Cards) OfSuit(suit Suit) Cards {
	var out Cards
	for _, c := range cs {
		if c.Suit() == suit {
			out = append(out, c)
		}
	}
	return out
}

// HasSuit 是否包含指定花色的牌
func (cs Cards) HasSuit(suit Suit) bool {
	for _, c := range cs {
		if c.Suit() == suit {
			return true
		}
	}
	return false
}

// LowestRank 返回点数最小的牌，空切片返回空牌
func (cs Cards) LowestRank() Card {
	var best Card
	for _, c := range cs {
		if best == "" || c.Rank() < best.Rank() {
			best = c
		}
	}
	return best
}

// RankSum 所有牌的点数之和
func (cs Cards) RankSum() int {
	sum := 0
	for _, c := range cs {
		sum += c.Rank()
	}
	return sum
}

// Remove 移除第一张等于 card 的牌，返回是否找到
func (cs *Cards) Remove(card Card) bool {
	for i, c := range *cs {
		if c == card {
			*cs = append((*cs)[:i], (*cs)[i+1:]...)
			return true
		}
	}
	return false
}

// Contains 是否包含指定的牌
func (cs Cards) Contains(card Card) bool {
	for _, c := range cs {
		if c == card {
			return true
		}
	}
	return false
}

// displaySuits 手牌展示用的花色顺序，与玩法无关
const displaySuits = "DCHS"

// displayOrder 返回花色在手牌展示顺序里的下标
func displayOrder(suit Suit) int {
	return strings.Index(displaySuits, string(suit))
}
