package rep

import "testing"

func TestPropertiesFindAndTypedAccessors(t *testing.T) {
	props := Properties{
		{Name: "TeamSize", Kind: PropertyKindInt, IntVal: 4},
		{Name: "MatchLength", Kind: PropertyKindFloat, FloatVal: 301.5},
		{Name: "MapName", Kind: PropertyKindName, StrVal: Text{Value: "Stadium_P", Borrowed: true}},
		{Name: "bOverTime", Kind: PropertyKindBool, BoolVal: true},
	}

	if v, ok := props.Int("TeamSize"); !ok || v != 4 {
		t.Errorf("Int(TeamSize) = %d, %v, want 4, true", v, ok)
	}
	if v, ok := props.Float("MatchLength"); !ok || v != 301.5 {
		t.Errorf("Float(MatchLength) = %v, %v, want 301.5, true", v, ok)
	}
	if v, ok := props.Str("MapName"); !ok || v != "Stadium_P" {
		t.Errorf("Str(MapName) = %q, %v, want \"Stadium_P\", true", v, ok)
	}
	if v, ok := props.Bool("bOverTime"); !ok || !v {
		t.Errorf("Bool(bOverTime) = %v, %v, want true, true", v, ok)
	}
	if _, ok := props.Int("DoesNotExist"); ok {
		t.Error("Int(DoesNotExist) should report ok=false")
	}
	if _, ok := props.Int("MatchLength"); ok {
		t.Error("Int(MatchLength) should report ok=false: wrong kind")
	}
}

func TestReplayDerivedAccessorsDefault(t *testing.T) {
	r := &Replay{}
	if v := r.MaxChannels(); v != 1023 {
		t.Errorf("MaxChannels() on empty replay = %d, want default 1023", v)
	}
	if v := r.NumFrames(); v != 0 {
		t.Errorf("NumFrames() on empty replay = %d, want 0", v)
	}
	if v := r.MapName(); v != "" {
		t.Errorf("MapName() on empty replay = %q, want \"\"", v)
	}
}

func TestNetVersionPresentGate(t *testing.T) {
	cases := []struct {
		major, minor int32
		want         bool
	}{
		{868, 18, true},
		{868, 17, false},
		{867, 99, false},
		{900, 20, true},
	}
	for _, c := range cases {
		if got := netVersionPresent(c.major, c.minor); got != c.want {
			t.Errorf("netVersionPresent(%d, %d) = %v, want %v", c.major, c.minor, got, c.want)
		}
	}
}
