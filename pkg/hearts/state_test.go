package hearts

import (
	"testing"
	"time"
)

// TestGameStateInitial
func TestGameStateInitial(t *testing.T) {
	gs := NewGameState()

	if gs.GamePhase != GameNotStarted || gs.TurnPhase != TurnNotStarted {
		t.Error("fresh state should be NOT_STARTED")
	}
	if gs.CurrentRound != 0 || gs.CurrentPlayerID() != "" {
		t.Error("fresh state has no round and no current player")
	}
	if gs.CurrentTrick == nil {
		t.Fatal("fresh state needs an empty trick")
	}
}

// TestGameStateCurrentPlayer
func TestGameStateCurrentPlayer(t *testing.T) {
	gs := NewGameState()
	gs.SetTurnOrder([]string{"AAAA", "BBBB"})

	if got := gs.CurrentPlayerID(); got != "AAAA" {
		t.Errorf("current player = %q, want AAAA", got)
	}

	gs.CurrentTurnIndex = rotateIndex(gs.CurrentTurnIndex, len(gs.TurnOrder))
	if got := gs.CurrentPlayerID(); got != "BBBB" {
		t.Errorf("current player = %q, want BBBB", got)
	}

	// 转满一圈回到起点
	gs.CurrentTurnIndex = rotateIndex(gs.CurrentTurnIndex, len(gs.TurnOrder))
	if gs.CurrentTurnIndex != 0 {
		t.Errorf("index = %d, want 0", gs.CurrentTurnIndex)
	}
}

// TestGameStateExpiry 未开始的对局不过期
func TestGameStateExpiry(t *testing.T) {
	gs := NewGameState()
	gs.CreatedAt = time.Now().Add(-2 * time.Hour)

	if gs.IsExpired(time.Hour) {
		t.Error("a game that never started must not expire")
	}

	gs.GamePhase = GameInProgress
	if !gs.IsExpired(time.Hour) {
		t.Error("an old running game should be expired")
	}
	if gs.IsExpired(3 * time.Hour) {
		t.Error("a young running game should not be expired")
	}
}

// TestGameStateReset 就地回到初始值
func TestGameStateReset(t *testing.T) {
	gs := NewGameState()
	gs.GamePhase = GameComplete
	gs.CurrentRound = 5
	gs.SetTurnOrder([]string{"AAAA"})
	gs.DiscardPile = Cards{"2H"}

	gs.Reset()

	if gs.GamePhase != GameNotStarted || gs.CurrentRound != 0 {
		t.Error("reset should restore initial phase and round")
	}
	if len(gs.TurnOrder) != 0 || len(gs.DiscardPile) != 0 {
		t.Error("reset should clear turn order and discard pile")
	}
}

// TestPhaseNames 对外广播的阶段名
func TestPhaseNames(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{GameNotStarted.String(), "NOT_STARTED"},
		{GameInProgress.String(), "IN_PROGRESS"},
		{GameComplete.String(), "GAME_COMPLETE"},
		{TurnNotStarted.String(), "NOT_STARTED"},
		{TurnComplete.String(), "TURN_COMPLETE"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("phase name = %q, want %q", tt.got, tt.want)
		}
	}
}
