package util

import "testing"

func TestHashKey(t *testing.T) {
	key := "ip:10.0.0.1|AUTH"
	got := HashKey(key)
	if got != HashKey(key) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if got == HashKey("ip:10.0.0.2|AUTH") {
		t.Fatalf("expected distinct keys to hash differently")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
