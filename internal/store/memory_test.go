package store

import (
	"context"
	"testing"

	"github.com/robalobadob/mahjong/go-server/internal/layout"
	"github.com/robalobadob/mahjong/go-server/internal/session"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if _, err := st.Get(ctx, "missing"); err == nil {
		t.Fatal("expected error for missing session")
	}

	sess, err := session.New(layout.Pyramid, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != sess {
		t.Fatal("store returned a different session pointer")
	}

	// save is an upsert
	if err := st.Save(ctx, sess); err != nil {
		t.Fatalf("second save: %v", err)
	}
}
