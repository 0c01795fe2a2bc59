package invaders

// ResolveCollisions removes every bullet that hit an enemy, together with
// the enemy it hit, and returns the surviving collections and the hit count.
//
// Bullets are checked in order. Each bullet takes the first overlapping live
// enemy in creation (row-major) order and is then done, so one bullet kills
// at most one enemy per tick. Hits are marked first and both slices are
// compacted afterwards, keeping the survivors' relative order.
//
// The scan is O(bullets x enemies). That is fine for a 50-enemy grid; a
// uniform grid bucket index would be the place to start for much larger
// formations.
func ResolveCollisions(bullets []Bullet, enemies []Enemy) ([]Bullet, []Enemy, int) {
	if len(bullets) == 0 || len(enemies) == 0 {
		return bullets, enemies, 0
	}

	spent := make([]bool, len(bullets))
	dead := make([]bool, len(enemies))
	hits := 0

	for bi, b := range bullets {
		box := b.Box()
		for ei, e := range enemies {
			if dead[ei] {
				continue
			}
			if box.Overlaps(e.Box()) {
				spent[bi] = true
				dead[ei] = true
				hits++
				break
			}
		}
	}

	if hits == 0 {
		return bullets, enemies, 0
	}

	return compact(bullets, spent), compact(enemies, dead), hits
}

// compact drops the items whose index is marked, preserving order.
func compact[T any](items []T, marked []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !marked[i] {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
