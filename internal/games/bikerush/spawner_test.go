package bikerush

import (
	"math"
	"testing"

	"github.com/vovakirdan/bike-rush/internal/config"
)

func newTestSpawner(t *testing.T, seed int64) *Spawner {
	t.Helper()
	s, err := NewSpawner(config.DefaultBikeRushConfig(), seed)
	if err != nil {
		t.Fatalf("NewSpawner() failed: %v", err)
	}
	return s
}

func TestSpawnerFirstMovingSpawn(t *testing.T) {
	s := newTestSpawner(t, 7)
	a := NewArena()

	// 500ms is the threshold; the spawn fires once the timer exceeds it.
	for i := 0; i < 5; i++ {
		s.Update(100, 0, a)
	}
	if a.Len() != 0 {
		t.Fatalf("spawned %d obstacles before 500ms", a.Len())
	}

	s.Update(100, 0, a)
	if a.Len() != 1 {
		t.Fatalf("expected one moving obstacle after 600ms, got %d", a.Len())
	}
	o := a.All()[0]
	if o.Kind != KindCar && o.Kind != KindBird {
		t.Errorf("time-based spawn produced %v", o.Kind)
	}
	if s.timer != 0 {
		t.Errorf("timer = %v, expected reset to 0", s.timer)
	}
}

func TestSpawnerThresholdWindow(t *testing.T) {
	s := newTestSpawner(t, 99)
	a := NewArena()

	for i := 0; i < 200; i++ {
		s.Update(1000, 0, a)
		if s.nextMoving < 307 || s.nextMoving >= 627 {
			t.Fatalf("threshold %v outside [307, 627)", s.nextMoving)
		}
	}
}

func TestSpawnerStationaryByDistance(t *testing.T) {
	s := newTestSpawner(t, 3)
	a := NewArena()

	s.Update(0, 1000, a)
	if a.Len() != 0 {
		t.Fatal("exactly one interval is not past the watermark")
	}

	s.Update(0, 1000.5, a)
	if a.Len() != 1 {
		t.Fatalf("expected a stationary spawn, got %d obstacles", a.Len())
	}
	if s.lastStationary != 1000.5 {
		t.Errorf("watermark = %v, expected 1000.5", s.lastStationary)
	}

	o := a.All()[0]
	switch o.Kind {
	case KindCone, KindRock, KindPedestrian:
	default:
		t.Errorf("distance-based spawn produced %v", o.Kind)
	}
	if o.SpawnDistance != 1950.5 {
		t.Errorf("SpawnDistance = %v, expected distance + 950", o.SpawnDistance)
	}
	if o.X != 1200 {
		t.Errorf("X = %v, expected the right edge (1200)", o.X)
	}

	s.Update(0, 2000, a)
	if a.Len() != 1 {
		t.Error("less than one interval since the watermark should not spawn")
	}
}

func TestSpawnPlacement(t *testing.T) {
	s := newTestSpawner(t, 11)
	a := NewArena()

	for i := 0; i < 100; i++ {
		for _, kind := range []Kind{KindCone, KindRock, KindCar, KindBird, KindPedestrian} {
			id := s.Spawn(kind, 0, a)
			o, _ := a.Get(id)

			switch m := o.Motion.(type) {
			case *Crossing:
				if kind != KindPedestrian {
					t.Fatalf("%v got crossing motion", kind)
				}
				top := m.Direction > 0 && o.Y == 160
				bottom := m.Direction < 0 && o.Y == 540
				if !top && !bottom {
					t.Fatalf("pedestrian at y=%v dir=%v is not on its starting edge", o.Y, m.Direction)
				}
				if m.Phase != PhaseCrossing {
					t.Fatal("pedestrian should start crossing")
				}
			case *Flight:
				if kind != KindBird {
					t.Fatalf("%v got flight motion", kind)
				}
				if speed := math.Hypot(m.VX, m.VY); !approx(speed, 3) {
					t.Fatalf("bird speed %v, expected 3", speed)
				}
			case *Oncoming:
				if kind != KindCar || m.Speed != 5 {
					t.Fatalf("%v got oncoming motion %+v", kind, m)
				}
				if o.X != 1300 {
					t.Fatalf("car X = %v, expected 1300", o.X)
				}
			case *Parked:
				if kind != KindCone && kind != KindRock {
					t.Fatalf("%v got parked motion", kind)
				}
			default:
				t.Fatalf("%v has no motion", kind)
			}

			if kind != KindPedestrian && (o.Y < 170 || o.Y > 530) {
				t.Fatalf("%v at y=%v outside the inset road band", kind, o.Y)
			}
		}
	}
}

func TestSpawnDamageTable(t *testing.T) {
	s := newTestSpawner(t, 1)
	a := NewArena()

	want := map[Kind]Damage{
		KindCone:       DamageSlow,
		KindBird:       DamageSlow,
		KindPedestrian: DamageSlowHeavy,
		KindRock:       DamageCrash,
		KindCar:        DamageCrash,
	}
	for kind, dmg := range want {
		o, _ := a.Get(s.Spawn(kind, 0, a))
		if o.Damage != dmg {
			t.Errorf("%v damage = %v, expected %v", kind, o.Damage, dmg)
		}
	}
}

func TestSpawnerMovingPoolWeighting(t *testing.T) {
	s := newTestSpawner(t, 2024)

	counts := map[Kind]int{}
	for i := 0; i < 3000; i++ {
		counts[s.pick(s.moving)]++
	}
	if counts[KindBird] <= counts[KindCar] {
		t.Errorf("birds should be picked about twice as often as cars: %v", counts)
	}
	if counts[KindBird]+counts[KindCar] != 3000 {
		t.Errorf("moving pool produced other kinds: %v", counts)
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	run := func() []Obstacle {
		s := newTestSpawner(t, 42)
		a := NewArena()
		for i := 0; i < 300; i++ {
			s.Update(16, float64(i)*20, a)
		}
		return a.All()
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].Y != second[i].Y {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSpawnerRejectsBadPools(t *testing.T) {
	cfg := config.DefaultBikeRushConfig()
	cfg.Obstacles.MovingPool = []string{"tractor"}
	if _, err := NewSpawner(cfg, 1); err == nil {
		t.Error("unknown kind in pool should fail")
	}
}
