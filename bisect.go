package textdiff

// bisect finds the middle of the shortest edit script by running Myers'
// algorithm from both ends at once, then recurses on the two halves.
// See Myers (1986), "An O(ND) Difference Algorithm and Its Variations",
// section 4b.
func (d *differ) bisect(text1, text2 []rune) EditList {
	n, m := len(text1), len(text2)

	maxD := (n + m + 1) / 2
	vOffset := maxD
	vLength := 2*maxD + 2
	v1 := make([]int, vLength)
	v2 := make([]int, vLength)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := n - m
	// With an odd delta the forward path collides with the reverse path;
	// with an even delta the reverse path does the colliding.
	front := delta%2 != 0
	// Trim the k loops once a path runs off an edge of the grid.
	k1start, k1end := 0, 0
	k2start, k2end := 0, 0

	for dd := 0; dd < maxD; dd++ {
		if d.expired() {
			break
		}

		// Forward path.
		for k1 := -dd + k1start; k1 <= dd-k1end; k1 += 2 {
			k1Offset := vOffset + k1
			var x1 int
			if k1 == -dd || (k1 != dd && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}
			y1 := x1 - k1
			for x1 < n && y1 < m && text1[x1] == text2[y1] {
				x1++
				y1++
			}
			v1[k1Offset] = x1
			switch {
			case x1 > n:
				// Ran off the right of the grid.
				k1end += 2
			case y1 > m:
				// Ran off the bottom of the grid.
				k1start += 2
			case front:
				k2Offset := vOffset + delta - k1
				if k2Offset >= 0 && k2Offset < vLength && v2[k2Offset] != -1 {
					// Mirror the reverse x onto the forward coordinate system.
					x2 := n - v2[k2Offset]
					if x1 >= x2 {
						return d.bisectSplit(text1, text2, x1, y1)
					}
				}
			}
		}

		// Reverse path.
		for k2 := -dd + k2start; k2 <= dd-k2end; k2 += 2 {
			k2Offset := vOffset + k2
			var x2 int
			if k2 == -dd || (k2 != dd && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < n && y2 < m && text1[n-x2-1] == text2[m-y2-1] {
				x2++
				y2++
			}
			v2[k2Offset] = x2
			switch {
			case x2 > n:
				// Ran off the left of the grid.
				k2end += 2
			case y2 > m:
				// Ran off the top of the grid.
				k2start += 2
			case !front:
				k1Offset := vOffset + delta - k2
				if k1Offset >= 0 && k1Offset < vLength && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					// Mirror the reverse point onto the forward coordinate system.
					x2 = n - x2
					if x1 >= x2 {
						return d.bisectSplit(text1, text2, x2, m-y2)
					}
				}
			}
		}
	}

	// Hit the deadline, or the texts share nothing at all.
	return EditList{{Delete, string(text1)}, {Insert, string(text2)}}
}

// bisectSplit recurses on the two halves separated by the middle snake at
// (x, y).
func (d *differ) bisectSplit(text1, text2 []rune, x, y int) EditList {
	edits := d.diffMain(text1[:x], text2[:y], false)
	return append(edits, d.diffMain(text1[x:], text2[y:], false)...)
}
