package crossing

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

func newTestSession(seed int64) *Session {
	s := NewSession(config.DefaultCrossingConfig(), rand.New(rand.NewSource(seed)), quietLogger())
	s.Start(at(0))
	return s
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(1)

	if s.Lives() != 3 || s.Wins() != 0 {
		t.Errorf("new session lives=%d wins=%d, expected 3 and 0", s.Lives(), s.Wins())
	}
	if s.player.Pos != (Position{Col: 2, Row: 5}) {
		t.Errorf("start position = %+v, expected (2, 5)", s.player.Pos)
	}
	if len(s.obstacles) != 3 {
		t.Errorf("obstacles = %d, expected 3", len(s.obstacles))
	}
	if s.status.Text != "Start!" || !s.status.Visible(at(2000)) || s.status.Visible(at(2001)) {
		t.Errorf("start message = %+v, expected \"Start!\" for 2s", s.status)
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", s.State())
	}
}

func TestSessionWinScenario(t *testing.T) {
	s := newTestSession(2)
	oldObstacles := s.obstacles

	s.player.Pos.Row = 0
	s.Update(0, at(10))
	if !s.player.Won {
		t.Fatal("expected won=true after update on row 0")
	}

	if state := s.Resolve(at(10)); state != StateWon {
		t.Errorf("Resolve() = %v, expected won", state)
	}
	if s.Wins() != 1 {
		t.Errorf("Wins() = %d, expected 1", s.Wins())
	}
	if s.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", s.Lives())
	}
	assertFreshRound(t, s, oldObstacles)
	if s.status.Text != "You won!" {
		t.Errorf("status = %q, expected \"You won!\"", s.status.Text)
	}

	// Next tick without a terminal flag is plain play
	if state := s.Resolve(at(20)); state != StatePlaying {
		t.Errorf("Resolve() after reset = %v, expected playing", state)
	}
}

func TestSessionLoseScenario(t *testing.T) {
	s := newTestSession(3)
	expectedLives := []int{2, 1, 0}
	expectedStates := []RoundState{StateLost, StateLost, StateGameOver}

	for i := range expectedLives {
		oldObstacles := s.obstacles
		s.player.Pos = Position{Col: 1, Row: 2}
		s.player.Lost = true

		state := s.Resolve(at(100 * (i + 1)))
		if state != expectedStates[i] {
			t.Errorf("loss %d: Resolve() = %v, expected %v", i+1, state, expectedStates[i])
		}
		if s.Lives() != expectedLives[i] {
			t.Errorf("loss %d: Lives() = %d, expected %d", i+1, s.Lives(), expectedLives[i])
		}
		if state == StateLost {
			assertFreshRound(t, s, oldObstacles)
			if s.status.Text != "You lost!" {
				t.Errorf("status = %q, expected \"You lost!\"", s.status.Text)
			}
		}
	}

	if s.status.Text != "GAME OVER" {
		t.Errorf("status = %q, expected \"GAME OVER\"", s.status.Text)
	}

	// No reset on the final loss, and the state is absorbing
	if s.player.Pos != (Position{Col: 1, Row: 2}) {
		t.Errorf("game over should not reset the player, got %+v", s.player.Pos)
	}
	s.player.Won = true
	if state := s.Resolve(at(1000)); state != StateGameOver {
		t.Errorf("Resolve() after game over = %v, expected gameover", state)
	}
	if s.Lives() != 0 || s.Wins() != 0 {
		t.Errorf("game over changed lives=%d wins=%d", s.Lives(), s.Wins())
	}
}

func TestSessionIgnoresInputAfterGameOver(t *testing.T) {
	s := newTestSession(4)
	s.player.Lives = 1
	s.player.Lost = true
	s.Resolve(at(10))

	if s.HandleInput(core.DirUp) {
		t.Error("input should be ignored after game over")
	}
	s.Update(1, at(1000))
	if s.Sweep() != 0 {
		t.Error("sweep should be a no-op after game over")
	}
}

func TestSessionUpdateDetectsHit(t *testing.T) {
	s := newTestSession(5)
	s.player.Pos = Position{Col: 2, Row: 2}
	s.spawner.enemies = append(s.spawner.enemies, &Enemy{X: 190, Row: 2, Speed: 300})

	s.Update(0.016, at(16))
	if !s.player.Lost {
		t.Fatal("expected a hit from an enemy on the player's cell")
	}
	if state := s.Resolve(at(16)); state != StateLost {
		t.Errorf("Resolve() = %v, expected lost", state)
	}
}

func TestLivesNeverIncrease(t *testing.T) {
	s := newTestSession(6)
	prev := s.Lives()

	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			s.player.Lost = true
		} else {
			s.player.Won = true
		}
		state := s.Resolve(at(i * 10))
		if s.Lives() > prev {
			t.Fatalf("lives increased from %d to %d", prev, s.Lives())
		}
		if s.Lives() < 0 {
			t.Fatalf("lives went negative: %d", s.Lives())
		}
		if s.Lives() < prev && state != StateLost && state != StateGameOver {
			t.Errorf("lives dropped on a %v transition", state)
		}
		prev = s.Lives()
	}
	if s.State() != StateGameOver {
		t.Errorf("State() = %v, expected gameover after three losses", s.State())
	}
}

func assertFreshRound(t *testing.T, s *Session, oldObstacles Obstacles) {
	t.Helper()

	if s.player.Pos != (Position{Col: 2, Row: 5}) {
		t.Errorf("Pos = %+v, expected (2, 5)", s.player.Pos)
	}
	if s.player.Won || s.player.Lost {
		t.Errorf("flags not cleared: won=%v lost=%v", s.player.Won, s.player.Lost)
	}
	if len(s.spawner.Enemies()) != 0 {
		t.Errorf("enemies = %d, expected none after reset", len(s.spawner.Enemies()))
	}
	if len(s.obstacles) != 3 {
		t.Fatalf("obstacles = %d, expected 3", len(s.obstacles))
	}
	if len(oldObstacles) > 0 && &s.obstacles[0] == &oldObstacles[0] {
		t.Error("obstacles were not regenerated")
	}
}
