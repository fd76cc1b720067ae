package animals

import "testing"

func TestNextID_StartsAtFirstID(t *testing.T) {
	if got := NextID(""); got != "A000001" {
		t.Fatalf("expected A000001, got %s", got)
	}
	if got := NextID("   "); got != "A000001" {
		t.Fatalf("expected A000001 for blank last id, got %s", got)
	}
}

func TestNextID_IncrementsWithPadding(t *testing.T) {
	cases := []struct {
		last string
		want string
	}{
		{"A000001", "A000002"},
		{"A000009", "A000010"},
		{"A000099", "A000100"},
		{"A123456", "A123457"},
	}
	for _, c := range cases {
		if got := NextID(c.last); got != c.want {
			t.Fatalf("NextID(%s): expected %s, got %s", c.last, c.want, got)
		}
	}
}

func TestNextID_SequenceIsStrictlyIncreasing(t *testing.T) {
	last := ""
	prev := ""
	for i := 0; i < 50; i++ {
		id := NextID(last)
		if prev != "" && id <= prev {
			t.Fatalf("sequence not increasing: %s then %s", prev, id)
		}
		prev = id
		last = id
	}
	if last != "A000050" {
		t.Fatalf("expected A000050 after 50 ids, got %s", last)
	}
}

func TestNextID_UnparsableFallsBackToSentinel(t *testing.T) {
	for _, last := range []string{"X123", "Azzzzz", "123456", "A-0001"} {
		if got := NextID(last); got != SentinelID {
			t.Fatalf("NextID(%s): expected sentinel %s, got %s", last, SentinelID, got)
		}
	}
}
