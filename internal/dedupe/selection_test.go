package dedupe

import "testing"

func TestResolveKeepsHighestScore(t *testing.T) {
	group := &Group{
		Key: "TITLE: heat (1995)",
		Members: []*Record{
			{Path: "/m/a.mkv", Score: 10},
			{Path: "/m/b.mkv", Score: 15},
			{Path: "/m/c.mkv", Score: 7},
		},
	}

	keep, drop := Resolve(group, false)
	if keep.Path != "/m/b.mkv" {
		t.Errorf("keep = %s, want /m/b.mkv", keep.Path)
	}
	if len(drop) != 2 {
		t.Errorf("drop = %d, want 2", len(drop))
	}
	for _, rec := range drop {
		if rec == keep {
			t.Error("keep present in drop set")
		}
	}
}

func TestResolveReverseKeepsLowest(t *testing.T) {
	group := &Group{
		Members: []*Record{
			{Path: "/m/a.mkv", Score: 10},
			{Path: "/m/b.mkv", Score: 15},
			{Path: "/m/c.mkv", Score: 7},
		},
	}

	keep, drop := Resolve(group, true)
	if keep.Path != "/m/c.mkv" {
		t.Errorf("keep = %s, want /m/c.mkv", keep.Path)
	}
	if len(drop) != 2 {
		t.Errorf("drop = %d, want 2", len(drop))
	}
}

func TestResolveStableTies(t *testing.T) {
	first := &Record{Path: "/m/first.mkv", Score: 5}
	second := &Record{Path: "/m/second.mkv", Score: 5}
	group := &Group{Members: []*Record{first, second}}

	// Equal scores keep discovery order: the last member after a stable
	// ascending sort is the one discovered last.
	keep, _ := Resolve(group, false)
	if keep != second {
		t.Errorf("keep = %s, want last-discovered member on tie", keep.Path)
	}

	group = &Group{Members: []*Record{first, second}}
	keep, _ = Resolve(group, true)
	if keep != first {
		t.Errorf("reverse keep = %s, want first-discovered member on tie", keep.Path)
	}
}

func TestResolveFlipExtremes(t *testing.T) {
	build := func() *Group {
		return &Group{Members: []*Record{
			{Path: "low", Score: 1},
			{Path: "high", Score: 9},
		}}
	}

	keep, _ := Resolve(build(), false)
	reverseKeep, _ := Resolve(build(), true)
	if keep.Path != "high" || reverseKeep.Path != "low" {
		t.Errorf("flip mismatch: keep=%s reverse=%s", keep.Path, reverseKeep.Path)
	}
}
