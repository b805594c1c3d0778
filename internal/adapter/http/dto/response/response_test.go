package response

import (
	"encoding/json"
	"testing"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"
)

func TestFromSession(t *testing.T) {
	t.Run("owner without workshop serializes a null workshop id", func(t *testing.T) {
		out := FromSession(usecase.Session{Token: "tok", Profile: usecase.Profile{ID: "o-1", Role: entities.RoleOwner}})
		raw, err := json.Marshal(out)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		user := body["user"].(map[string]any)
		if v, ok := user["workshop_id"]; !ok || v != nil {
			t.Fatalf("expected workshop_id null, got %v", v)
		}
		if body["token_type"] != "bearer" || user["role"] != "owner" {
			t.Fatalf("unexpected body: %s", raw)
		}
	})

	t.Run("manager carries the resolved workshop", func(t *testing.T) {
		out := FromProfile(usecase.Profile{ID: "m-1", Role: entities.RoleManager, WorkshopID: "w-1"})
		if out.WorkshopID == nil || *out.WorkshopID != "w-1" {
			t.Fatalf("expected workshop w-1, got %v", out.WorkshopID)
		}
	})
}
