package hearts

import (
	"testing"
)

// TestTrickUpdate 首张牌定领出花色并立刻成为胜牌
func TestTrickUpdate(t *testing.T) {
	trick := NewTrick()

	trick.Update("2H", "p1")
	if trick.LeadingSuit != SuitHearts {
		t.Errorf("leading suit = %q, want H", trick.LeadingSuit)
	}
	if trick.WinningCard != "2H" || trick.WinnerID != "p1" {
		t.Errorf("first card should win: %q/%q", trick.WinningCard, trick.WinnerID)
	}
}

// TestTrickResolution 只有跟上领出花色的牌才能赢：
// 红桃领出时 5D 即使在场也不参与判胜，AH 拿下这一轮
func TestTrickResolution(t *testing.T) {
	trick := NewTrick()

	plays := []struct {
		card   Card
		player string
	}{
		{"2H", "p1"},
		{"AH", "p2"},
		{"5D", "p3"},
		{"KH", "p4"},
	}
	for _, play := range plays {
		trick.Update(play.card, play.player)
	}

	if trick.LeadingSuit != SuitHearts {
		t.Errorf("leading suit = %q, want H", trick.LeadingSuit)
	}
	if trick.WinningCard != "AH" {
		t.Errorf("winning card = %q, want AH", trick.WinningCard)
	}
	if trick.WinnerID != "p2" {
		t.Errorf("winner = %q, want p2", trick.WinnerID)
	}
}

// TestTrickLeadingSuitNeverChanges 领出花色定下后不再变
func TestTrickLeadingSuitNeverChanges(t *testing.T) {
	trick := NewTrick()
	trick.Update("3C", "p1")
	trick.Update("AS", "p2")
	trick.Update("KD", "p3")

	if trick.LeadingSuit != SuitClubs {
		t.Errorf("leading suit = %q, want C", trick.LeadingSuit)
	}
	if trick.WinningCard != "3C" {
		t.Errorf("off-suit cards must not win, winning = %q", trick.WinningCard)
	}
}

// TestTrickOffSuitWinnerStays 没人跟上花色时首张保持胜牌
func TestTrickOffSuitWinnerStays(t *testing.T) {
	trick := NewTrick()
	trick.Update("2S", "p1")
	trick.Update("AH", "p2")
	trick.Update("AD", "p3")
	trick.Update("AC", "p4")

	if trick.WinnerID != "p1" {
		t.Errorf("winner = %q, want p1", trick.WinnerID)
	}
}
