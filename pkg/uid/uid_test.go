package uid

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateRoundID(t *testing.T) {
	a, b := GenerateRoundID(), GenerateRoundID()
	if a == b {
		t.Fatalf("round ids should be unique")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("round id %q is not a uuid: %v", a, err)
	}
}

func TestGenerateMatchID(t *testing.T) {
	id := GenerateMatchID(12)
	if !strings.HasSuffix(id, "-12") || len(id) != len("xxxxxxxx-12") {
		t.Fatalf("unexpected match id %q", id)
	}
}
