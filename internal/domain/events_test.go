package domain

import "testing"

func TestTypeScoreCoversAllTypes(t *testing.T) {
	want := map[EventType]int{
		EventTouchdown:    6,
		EventOnePointTry:  1,
		EventTwoPointTry:  2,
		EventInterception: 0,
		EventSack:         0,
		EventSafety:       2,
	}

	if len(want) != len(EventTypes) {
		t.Fatalf("expected %d event types, got %d", len(want), len(EventTypes))
	}
	for _, typ := range EventTypes {
		score, ok := want[typ]
		if !ok {
			t.Fatalf("unexpected event type %q", typ)
		}
		if got := TypeScore(typ); got != score {
			t.Fatalf("expected %q to score %d, got %d", typ, score, got)
		}
	}
}

func TestParseEventType(t *testing.T) {
	typ, err := ParseEventType("Touchdown")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if typ != EventTouchdown {
		t.Fatalf("expected touchdown, got %q", typ)
	}

	if _, err := ParseEventType("Fumble"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestParseSide(t *testing.T) {
	for _, raw := range []string{"home", "away"} {
		side, err := ParseSide(raw)
		if err != nil {
			t.Fatalf("expected no error for %q, got %v", raw, err)
		}
		if string(side) != raw {
			t.Fatalf("expected %q, got %q", raw, side)
		}
	}

	if _, err := ParseSide("referee"); err == nil {
		t.Fatal("expected error for unknown side")
	}
	if SideHome.Opponent() != SideAway || SideAway.Opponent() != SideHome {
		t.Fatal("opponent mapping broken")
	}
}

func TestMatchEventPlayerID(t *testing.T) {
	e := MatchEvent{}
	if e.PlayerID() != 0 {
		t.Fatalf("expected 0 for missing player, got %d", e.PlayerID())
	}
	e.Player = &Player{ID: 7}
	if e.PlayerID() != 7 {
		t.Fatalf("expected 7, got %d", e.PlayerID())
	}
}
