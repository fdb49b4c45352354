package cube

import "fmt"

// ApplyMove mutates c in place according to m. It fails with
// ErrOutOfRange if m.Index is outside 0..N-1, or ErrInvalidDirection if
// m.Direction does not belong to m.Family. The cube is left untouched
// on either error.
func (c *Cube) ApplyMove(m Move) error {
	if m.Index < 0 || m.Index >= c.N {
		return fmt.Errorf("%w: index %d not in 0..%d", ErrOutOfRange, m.Index, c.N-1)
	}
	if !m.Direction.validFor(m.Family) {
		return fmt.Errorf("%w: direction %c invalid for family %s", ErrInvalidDirection, m.Direction.letter(), m.Family)
	}

	switch m.Family {
	case Horizontal:
		c.horizontalRotate(m.Index, m.Direction)
	case Vertical:
		c.verticalRotate(m.Index, m.Direction)
	case Side:
		c.sideRotate(m.Index, m.Direction)
	}
	c.markDirty()
	return nil
}

// horizontalRotate implements spec.md §4.1's Horizontal family. The four
// lateral faces are (Left, Front, Right, Back) at indices (1,2,3,4).
func (c *Cube) horizontalRotate(row int, dir Direction) {
	n := c.N
	l, f, r, b := c.Faces[Left], c.Faces[Front], c.Faces[Right], c.Faces[Back]

	lRow := append([]Color(nil), l[row]...)
	fRow := append([]Color(nil), f[row]...)
	rRow := append([]Color(nil), r[row]...)
	bRow := append([]Color(nil), b[row]...)

	if dir == DirLeft {
		// (L,F,R,B) <- (F,R,B,L)
		copy(l[row], fRow)
		copy(f[row], rRow)
		copy(r[row], bRow)
		copy(b[row], lRow)
		if row == 0 {
			c.Faces[Up] = rotateCW(c.Faces[Up])
		}
		if row == n-1 {
			c.Faces[Down] = rotateCCW(c.Faces[Down])
		}
	} else {
		// DirRight: (L,F,R,B) <- (B,L,F,R)
		copy(l[row], bRow)
		copy(f[row], lRow)
		copy(r[row], fRow)
		copy(b[row], rRow)
		if row == 0 {
			c.Faces[Up] = rotateCCW(c.Faces[Up])
		}
		if row == n-1 {
			c.Faces[Down] = rotateCW(c.Faces[Down])
		}
	}
}

// verticalRotate implements spec.md §4.1's Vertical family. The lateral
// faces are (Up, Front, Down, Back) at indices (0,2,5,4); the Back face
// is addressed with the mirror-read convention the reference uses
// (config[4][i][col] read straight, not reversed) — preserved here so
// DirUp and DirDown remain exact inverses.
func (c *Cube) verticalRotate(col int, dir Direction) {
	n := c.N
	up, f, down, b := c.Faces[Up], c.Faces[Front], c.Faces[Down], c.Faces[Back]

	upCol := make([]Color, n)
	fCol := make([]Color, n)
	downCol := make([]Color, n)
	bCol := make([]Color, n)
	for i := 0; i < n; i++ {
		upCol[i] = up[i][col]
		fCol[i] = f[i][col]
		downCol[i] = down[i][col]
		bCol[i] = b[i][col]
	}

	if dir == DirUp {
		// (Up,Front,Down,Back) <- (Front,Down,Back,Up)
		for i := 0; i < n; i++ {
			up[i][col] = fCol[i]
			f[i][col] = downCol[i]
			down[i][col] = bCol[i]
			b[i][col] = upCol[i]
		}
		if col == 0 {
			c.Faces[Left] = rotateCCW(c.Faces[Left])
		}
		if col == n-1 {
			c.Faces[Right] = rotateCW(c.Faces[Right])
		}
	} else {
		// DirDown: inverse of Up.
		for i := 0; i < n; i++ {
			up[i][col] = bCol[i]
			f[i][col] = upCol[i]
			down[i][col] = fCol[i]
			b[i][col] = downCol[i]
		}
		if col == 0 {
			c.Faces[Left] = rotateCW(c.Faces[Left])
		}
		if col == n-1 {
			c.Faces[Right] = rotateCCW(c.Faces[Right])
		}
	}
}

// sideRotate implements spec.md §4.1's Side family. It acts on row
// index n-1-d of each of (Up, Right, Down, Left) at indices (0,3,5,1).
func (c *Cube) sideRotate(depth int, dir Direction) {
	n := c.N
	row := n - 1 - depth
	up, r, down, l := c.Faces[Up], c.Faces[Right], c.Faces[Down], c.Faces[Left]

	upRow := append([]Color(nil), up[row]...)
	rRow := append([]Color(nil), r[row]...)
	downRow := append([]Color(nil), down[row]...)
	lRow := append([]Color(nil), l[row]...)

	if dir == DirPositive {
		// (U,R,D,L) <- (L,U,R,D)
		copy(up[row], lRow)
		copy(r[row], upRow)
		copy(down[row], rRow)
		copy(l[row], downRow)
		if depth == 0 {
			c.Faces[Front] = rotateCW(c.Faces[Front])
		}
		if depth == n-1 {
			c.Faces[Back] = rotateCCW(c.Faces[Back])
		}
	} else {
		// DirNegative: (U,R,D,L) <- (R,D,L,U)
		copy(up[row], rRow)
		copy(r[row], downRow)
		copy(down[row], lRow)
		copy(l[row], upRow)
		if depth == 0 {
			c.Faces[Front] = rotateCCW(c.Faces[Front])
		}
		if depth == n-1 {
			c.Faces[Back] = rotateCW(c.Faces[Back])
		}
	}
}

// rotateCW returns a new grid rotated 90 degrees clockwise:
// new[i][j] = old[n-1-j][i].
func rotateCW(old [][]Color) [][]Color {
	n := len(old)
	out := make([][]Color, n)
	for i := 0; i < n; i++ {
		out[i] = make([]Color, n)
		for j := 0; j < n; j++ {
			out[i][j] = old[n-1-j][i]
		}
	}
	return out
}

// rotateCCW returns a new grid rotated 90 degrees counter-clockwise:
// new[i][j] = old[j][n-1-i].
func rotateCCW(old [][]Color) [][]Color {
	n := len(old)
	out := make([][]Color, n)
	for i := 0; i < n; i++ {
		out[i] = make([]Color, n)
		for j := 0; j < n; j++ {
			out[i][j] = old[j][n-1-i]
		}
	}
	return out
}
