package persistence

import (
	"context"
	"testing"

	"workshop_jobs/internal/adapter/persistence/repository"
	"workshop_jobs/internal/infrastructure/config"
	"workshop_jobs/internal/infrastructure/logging"
)

func TestOpen_SQL(t *testing.T) {
	cfg := config.Config{StoreDriver: config.StoreSQL, DatabaseURL: "file:persistence_open?mode=memory&cache=shared"}
	store, err := Open(context.Background(), cfg, logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	u, err := store.Users.GetByEmail(context.Background(), "nobody@shop.in")
	if err != nil || u.ID != "" {
		t.Fatalf("expected empty user on a fresh store, got %+v err=%v", u, err)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), config.Config{StoreDriver: "mongo"}, logging.Discard()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestNewDynamoStore(t *testing.T) {
	store := NewDynamoStore(nil, repository.NewTables("t_"))
	if store.Users == nil || store.Settlements == nil {
		t.Fatalf("expected every repository to be wired")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("expected no-op close, got %v", err)
	}
}
