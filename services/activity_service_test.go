package services

import (
	"testing"

	"github.com/activi-backend/dto"
	"github.com/activi-backend/utils"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestSeedIsIdempotent(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	if err := svc.SeedDefaultActivityTypes(); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	first, err := svc.ListActivityTypes()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// Disable one entry, then seed again
	disabled := false
	if _, err := svc.UpdateActivityType("puzzle", dto.UpdateActivityTypeRequest{IsEnabled: &disabled}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if err := svc.SeedDefaultActivityTypes(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	second, err := svc.ListActivityTypes()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(first) != len(second) {
		t.Errorf("row count changed on reseed: %d then %d", len(first), len(second))
	}
	for _, activity := range second {
		if !activity.IsEnabled {
			t.Errorf("entry %q not re-enabled by seed", activity.ID)
		}
	}
}

func TestCreateActivityTypeDefaults(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	created, err := svc.CreateActivityType(dto.CreateActivityTypeRequest{
		Name:  "memory_cards",
		Title: "Memory",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.Description != "" || created.InfoTooltip != "" {
		t.Errorf("expected empty description/tooltip, got %q/%q", created.Description, created.InfoTooltip)
	}
	if created.IconName != "help_outline" {
		t.Errorf("iconName = %q, want help_outline", created.IconName)
	}
	if created.ColorValue != 0xFF2196F3 {
		t.Errorf("colorValue = %d, want %d", created.ColorValue, int64(0xFF2196F3))
	}
	if created.Order != 999 {
		t.Errorf("order = %d, want 999", created.Order)
	}
	if created.IsNew || created.IsHighlighted {
		t.Error("expected isNew and isHighlighted to default false")
	}
	if !created.IsEnabled {
		t.Error("expected isEnabled to default true")
	}
}

func TestCreateActivityTypeValidationAndConflict(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	_, err := svc.CreateActivityType(dto.CreateActivityTypeRequest{Title: "No name"})
	if utils.ErrorStatus(err) != 400 {
		t.Errorf("missing name: status = %d, want 400", utils.ErrorStatus(err))
	}

	if _, err := svc.CreateActivityType(dto.CreateActivityTypeRequest{Name: "memory_cards", Title: "Memory"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Same name with different fields still conflicts
	_, err = svc.CreateActivityType(dto.CreateActivityTypeRequest{
		Name:        "memory_cards",
		Title:       "A completely different title",
		Description: strPtr("different"),
	})
	if utils.ErrorStatus(err) != 409 {
		t.Errorf("duplicate name: status = %d, want 409", utils.ErrorStatus(err))
	}
}

func TestUpdateActivityTypeAsymmetry(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	id := "memory_cards"
	_, err := svc.CreateActivityType(dto.CreateActivityTypeRequest{
		ID:                    &id,
		Name:                  "memory_cards",
		Title:                 "Memory",
		Description:           strPtr("pairs of cards"),
		Category:              strPtr("individual"),
		ActivityPictogramURL:  strPtr("https://cdn.example.com/p.png"),
		MaterialPictogramURLs: []string{"https://cdn.example.com/m1.png"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Updating only the title keeps every coalescing field but wipes
	// category and the pictogram fields, which always take the new value
	updated, err := svc.UpdateActivityType(id, dto.UpdateActivityTypeRequest{
		Title: strPtr("Memory v2"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Title != "Memory v2" {
		t.Errorf("title = %q, want Memory v2", updated.Title)
	}
	if updated.Description != "pairs of cards" {
		t.Errorf("description = %q, want it preserved", updated.Description)
	}
	if updated.Category != nil {
		t.Errorf("category = %v, want cleared", *updated.Category)
	}
	if updated.ActivityPictogramURL != nil {
		t.Errorf("activityPictogramUrl = %v, want cleared", *updated.ActivityPictogramURL)
	}
	if len(updated.MaterialPictogramURLs) != 0 {
		t.Errorf("materialPictogramUrls = %v, want cleared", updated.MaterialPictogramURLs)
	}

	// Supplying them keeps them
	updated, err = svc.UpdateActivityType(id, dto.UpdateActivityTypeRequest{
		Category:              strPtr("pack"),
		MaterialPictogramURLs: []string{"https://cdn.example.com/m2.png"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Category == nil || *updated.Category != "pack" {
		t.Errorf("category = %v, want pack", updated.Category)
	}
	if len(updated.MaterialPictogramURLs) != 1 || updated.MaterialPictogramURLs[0] != "https://cdn.example.com/m2.png" {
		t.Errorf("materialPictogramUrls = %v", updated.MaterialPictogramURLs)
	}
}

func TestUpdateActivityTypeNotFound(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	_, err := svc.UpdateActivityType("ghost", dto.UpdateActivityTypeRequest{Title: strPtr("x")})
	if utils.ErrorStatus(err) != 404 {
		t.Errorf("status = %d, want 404", utils.ErrorStatus(err))
	}
}

func TestDeleteActivityType(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	id := "memory_cards"
	if _, err := svc.CreateActivityType(dto.CreateActivityTypeRequest{ID: &id, Name: "memory_cards", Title: "Memory"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteActivityType(id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteActivityType(id); utils.ErrorStatus(err) != 404 {
		t.Errorf("second delete: status = %d, want 404", utils.ErrorStatus(err))
	}
}

func TestGetActivityTypeByName(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	if err := svc.SeedDefaultActivityTypes(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	activity, err := svc.GetActivityTypeByName("activity_pack")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if activity.ID != "pack" {
		t.Errorf("id = %q, want pack", activity.ID)
	}

	_, err = svc.GetActivityTypeByName("nope")
	if utils.ErrorStatus(err) != 404 {
		t.Errorf("status = %d, want 404", utils.ErrorStatus(err))
	}
}

func TestReorderChangesListOrder(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	if err := svc.SeedDefaultActivityTypes(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	err := svc.ReorderActivityTypes(dto.ReorderRequest{Activities: []dto.ReorderEntry{
		{ID: "pack", Order: intPtr(5)},
		{ID: "puzzle", Order: intPtr(1)},
	}})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	activities, err := svc.ListActivityTypes()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	packIdx, puzzleIdx := -1, -1
	for i, activity := range activities {
		switch activity.ID {
		case "pack":
			packIdx = i
		case "puzzle":
			puzzleIdx = i
		}
	}
	if puzzleIdx == -1 || packIdx == -1 || puzzleIdx > packIdx {
		t.Errorf("expected puzzle before pack, got puzzle=%d pack=%d", puzzleIdx, packIdx)
	}
}

func TestReorderIsAtomic(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	if err := svc.SeedDefaultActivityTypes(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	before, err := svc.ListActivityTypes()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// Third of five entries is invalid: nothing may change
	err = svc.ReorderActivityTypes(dto.ReorderRequest{Activities: []dto.ReorderEntry{
		{ID: "pack", Order: intPtr(100)},
		{ID: "puzzle", Order: intPtr(101)},
		{ID: "series"}, // missing order
		{ID: "card", Order: intPtr(103)},
		{ID: "symmetry", Order: intPtr(104)},
	}})
	if utils.ErrorStatus(err) != 400 {
		t.Fatalf("status = %d, want 400", utils.ErrorStatus(err))
	}

	after, err := svc.ListActivityTypes()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	orders := func(list []dto.ActivityTypeResponse) map[string]int {
		m := make(map[string]int, len(list))
		for _, a := range list {
			m[a.ID] = a.Order
		}
		return m
	}
	beforeOrders, afterOrders := orders(before), orders(after)
	for id, order := range beforeOrders {
		if afterOrders[id] != order {
			t.Errorf("entry %q order changed: %d -> %d", id, order, afterOrders[id])
		}
	}
}

func TestReorderValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewActivityService()

	err := svc.ReorderActivityTypes(dto.ReorderRequest{})
	if utils.ErrorStatus(err) != 400 {
		t.Errorf("nil activities: status = %d, want 400", utils.ErrorStatus(err))
	}
}
