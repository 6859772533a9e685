package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := ParseID(oid.Hex())
	if err != nil {
		t.Fatalf("ParseID returned error for valid id: %v", err)
	}
	if got != oid {
		t.Fatalf("expected %s, got %s", oid.Hex(), got.Hex())
	}

	for _, bad := range []string{"", "random-invalid-string", "1234", oid.Hex() + "00"} {
		if _, err := ParseID(bad); err != domain.ErrInvalidID {
			t.Fatalf("ParseID(%q): expected ErrInvalidID, got %v", bad, err)
		}
	}
}
