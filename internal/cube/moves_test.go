package cube

import "testing"

// palette used by the end-to-end scenarios in spec.md §8: Up=W, Left=G,
// Front=O, Right=B, Back=R, Down=Y.
var scenarioPalette = [6]byte{'W', 'G', 'O', 'B', 'R', 'Y'}

func TestHorizontalRotateRow0(t *testing.T) {
	c := New(3, scenarioPalette)
	if err := c.ApplyMove(Move{Family: Horizontal, Index: 0, Direction: DirLeft}); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	// (L,F,R,B) <- (F,R,B,L): Left receives Front's old color (O),
	// Front receives Right's (B), Right receives Back's (R), Back
	// receives Left's (G).
	want := map[Face]byte{Left: 'O', Front: 'B', Right: 'R', Back: 'G'}
	for face, wantColor := range want {
		for col := 0; col < 3; col++ {
			got := c.Palette[c.Faces[face][0][col]]
			if got != wantColor {
				t.Errorf("%s row 0 col %d = %c, want %c", face, col, got, wantColor)
			}
		}
	}

}

func TestInversePairReturnsToSolved(t *testing.T) {
	for _, m := range AllMoves(4) {
		c := New(4, DefaultPalette)
		if err := c.ApplyMove(m); err != nil {
			t.Fatalf("ApplyMove(%v): %v", m, err)
		}
		if err := c.ApplyMove(m.Inverse()); err != nil {
			t.Fatalf("ApplyMove(inverse %v): %v", m, err)
		}
		fresh := New(4, DefaultPalette)
		if !c.Equal(fresh) {
			t.Errorf("move %v then its inverse did not return to solved: %q", m, c.State())
		}
	}
}

func TestInversePairVerticalScenario(t *testing.T) {
	c := New(3, DefaultPalette)
	c.ApplyMove(Move{Family: Vertical, Index: 1, Direction: DirUp})
	c.ApplyMove(Move{Family: Vertical, Index: 1, Direction: DirDown})

	fresh := New(3, DefaultPalette)
	if !c.Equal(fresh) {
		t.Errorf("V1U then V1D should equal solved cube, got %q", c.State())
	}
}

func TestApplyMoveOutOfRange(t *testing.T) {
	c := New(3, DefaultPalette)
	err := c.ApplyMove(Move{Family: Horizontal, Index: 5, Direction: DirLeft})
	if err == nil {
		t.Fatal("expected ErrOutOfRange")
	}
	if !c.IsSolved() {
		t.Error("cube should be untouched after a failed ApplyMove")
	}
}

func TestApplyMoveInvalidDirection(t *testing.T) {
	c := New(3, DefaultPalette)
	err := c.ApplyMove(Move{Family: Horizontal, Index: 0, Direction: DirUp})
	if err == nil {
		t.Fatal("expected ErrInvalidDirection")
	}
}

func TestAllMovesCardinality(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5} {
		moves := AllMoves(n)
		if got, want := len(moves), 6*n; got != want {
			t.Errorf("AllMoves(%d) has %d moves, want %d", n, got, want)
		}
	}
}

func TestShuffleBounds(t *testing.T) {
	c := New(3, DefaultPalette)
	if _, err := c.Shuffle(-1, 3, nil); err == nil {
		t.Error("expected ErrInvalidBounds for negative lo")
	}
	if _, err := c.Shuffle(5, 2, nil); err == nil {
		t.Error("expected ErrInvalidBounds for lo > hi")
	}
}

func TestShuffleProducesMovesWithinRange(t *testing.T) {
	c := New(3, DefaultPalette)
	steps, err := c.Shuffle(2, 2, nil)
	if err != nil {
		t.Fatalf("Shuffle: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("Shuffle(2,2) produced %d steps, want 2", len(steps))
	}
	if steps[len(steps)-1].State != c.State() {
		t.Error("last shuffle step's state should match the cube's final state")
	}
}

func TestOneMoveShuffleSolvedInOneMove(t *testing.T) {
	c := New(3, DefaultPalette)
	steps, err := c.Shuffle(1, 1, nil)
	if err != nil {
		t.Fatalf("Shuffle: %v", err)
	}
	m := steps[0].Move
	if err := c.ApplyMove(m.Inverse()); err != nil {
		t.Fatalf("ApplyMove(inverse): %v", err)
	}
	fresh := New(3, DefaultPalette)
	if !c.Equal(fresh) {
		t.Errorf("applying the inverse of a single shuffle move should solve the cube")
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, m := range AllMoves(3) {
		s := m.String()
		parsed, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if parsed != m {
			t.Errorf("ParseMove(%q) = %+v, want %+v", s, parsed, m)
		}
	}
}

func TestMisplacedFaceletsZeroWhenSolved(t *testing.T) {
	c := New(3, DefaultPalette)
	if got := MisplacedFacelets(c.State(), 3); got != 0 {
		t.Errorf("MisplacedFacelets(solved) = %d, want 0", got)
	}
}

func TestMisplacedFaceletsNonzeroAfterMove(t *testing.T) {
	c := New(3, DefaultPalette)
	c.ApplyMove(Move{Family: Horizontal, Index: 0, Direction: DirLeft})
	if got := MisplacedFacelets(c.State(), 3); got == 0 {
		t.Error("MisplacedFacelets should be nonzero after a move")
	}
}
