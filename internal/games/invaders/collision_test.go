package invaders

import "testing"

func TestResolveCollisions(t *testing.T) {
	enemyA := Enemy{X: 95, Y: 95, Width: 40, Height: 30}
	enemyB := Enemy{X: 110, Y: 95, Width: 40, Height: 30}
	far := Enemy{X: 500, Y: 95, Width: 40, Height: 30}

	tests := []struct {
		name        string
		bullets     []Bullet
		enemies     []Enemy
		wantBullets []Bullet
		wantEnemies []Enemy
		wantHits    int
	}{
		{
			name:        "single hit removes both",
			bullets:     []Bullet{{X: 100, Y: 100, Width: 3, Height: 10}},
			enemies:     []Enemy{enemyA},
			wantBullets: nil,
			wantEnemies: nil,
			wantHits:    1,
		},
		{
			name:        "miss keeps both",
			bullets:     []Bullet{{X: 300, Y: 100, Width: 3, Height: 10}},
			enemies:     []Enemy{enemyA},
			wantBullets: []Bullet{{X: 300, Y: 100, Width: 3, Height: 10}},
			wantEnemies: []Enemy{enemyA},
			wantHits:    0,
		},
		{
			name:        "overlapping two enemies takes the first",
			bullets:     []Bullet{{X: 120, Y: 100, Width: 3, Height: 10}},
			enemies:     []Enemy{enemyA, enemyB},
			wantBullets: nil,
			wantEnemies: []Enemy{enemyB},
			wantHits:    1,
		},
		{
			name: "one enemy absorbs only one bullet",
			bullets: []Bullet{
				{X: 100, Y: 100, Width: 3, Height: 10},
				{X: 105, Y: 100, Width: 3, Height: 10},
			},
			enemies:     []Enemy{enemyA},
			wantBullets: []Bullet{{X: 105, Y: 100, Width: 3, Height: 10}},
			wantEnemies: nil,
			wantHits:    1,
		},
		{
			name: "survivors keep their order",
			bullets: []Bullet{
				{X: 10, Y: 10, Width: 3, Height: 10},
				{X: 100, Y: 100, Width: 3, Height: 10},
				{X: 20, Y: 20, Width: 3, Height: 10},
			},
			enemies:     []Enemy{far, enemyA, {X: 600, Y: 95, Width: 40, Height: 30}},
			wantBullets: []Bullet{{X: 10, Y: 10, Width: 3, Height: 10}, {X: 20, Y: 20, Width: 3, Height: 10}},
			wantEnemies: []Enemy{far, {X: 600, Y: 95, Width: 40, Height: 30}},
			wantHits:    1,
		},
		{
			name:        "touching edges do not collide",
			bullets:     []Bullet{{X: 92, Y: 100, Width: 3, Height: 10}},
			enemies:     []Enemy{enemyA},
			wantBullets: []Bullet{{X: 92, Y: 100, Width: 3, Height: 10}},
			wantEnemies: []Enemy{enemyA},
			wantHits:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bullets, enemies, hits := ResolveCollisions(tt.bullets, tt.enemies)
			if hits != tt.wantHits {
				t.Errorf("hits = %d, want %d", hits, tt.wantHits)
			}
			if len(bullets) != len(tt.wantBullets) {
				t.Fatalf("bullets = %v, want %v", bullets, tt.wantBullets)
			}
			for i := range bullets {
				if bullets[i] != tt.wantBullets[i] {
					t.Errorf("bullet %d = %v, want %v", i, bullets[i], tt.wantBullets[i])
				}
			}
			if len(enemies) != len(tt.wantEnemies) {
				t.Fatalf("enemies = %v, want %v", enemies, tt.wantEnemies)
			}
			for i := range enemies {
				if enemies[i] != tt.wantEnemies[i] {
					t.Errorf("enemy %d = %v, want %v", i, enemies[i], tt.wantEnemies[i])
				}
			}
		})
	}
}

func TestResolveCollisionsCounts(t *testing.T) {
	// B bullets stacked on E enemies: hits = min(B, E)
	for _, n := range []struct{ bullets, enemies int }{{1, 3}, {3, 1}, {4, 4}, {0, 2}, {2, 0}} {
		var bullets []Bullet
		for range n.bullets {
			bullets = append(bullets, Bullet{X: 100, Y: 100, Width: 3, Height: 10})
		}
		var enemies []Enemy
		for range n.enemies {
			enemies = append(enemies, Enemy{X: 95, Y: 95, Width: 40, Height: 30})
		}

		b, e, hits := ResolveCollisions(bullets, enemies)
		want := min(n.bullets, n.enemies)
		if hits != want {
			t.Errorf("%d bullets / %d enemies: hits = %d, want %d", n.bullets, n.enemies, hits, want)
		}
		if len(b) != n.bullets-want || len(e) != n.enemies-want {
			t.Errorf("%d bullets / %d enemies: left %d/%d", n.bullets, n.enemies, len(b), len(e))
		}
	}
}
