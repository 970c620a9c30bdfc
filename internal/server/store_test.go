package server

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_AppendAndListInOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, body := range []string{"first", "second", "third"} {
		if _, err := store.Append(ctx, "client-a", "client-a", body); err != nil {
			t.Fatalf("Append(%q): %v", body, err)
		}
	}
	if _, err := store.Append(ctx, "client-b", "agent-1", "other conversation"); err != nil {
		t.Fatal(err)
	}

	messages, err := store.List(ctx, "client-a")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(messages))
	}
	for i, want := range []string{"first", "second", "third"} {
		if messages[i].Message != want {
			t.Fatalf("messages[%d] = %q, want %q", i, messages[i].Message, want)
		}
	}
	if messages[0].CreatedAt.IsZero() {
		t.Fatal("created_at not round-tripped")
	}
}

func TestStore_ListUnknownClientIsEmptyNotNil(t *testing.T) {
	store := openTestStore(t)

	messages, err := store.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if messages == nil || len(messages) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", messages)
	}
}

func TestStore_ClientsDistinct(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.Append(ctx, "client-a", "client-a", "one")
	store.Append(ctx, "client-a", "client-a", "two")
	store.Append(ctx, "client-b", "client-b", "three")

	clients, err := store.Clients(ctx)
	if err != nil {
		t.Fatalf("Clients: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("got %v, want two distinct clients", clients)
	}
}
