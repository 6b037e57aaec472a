package handlers

import (
	"context"
	"testing"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

func TestHandleCreateClass(t *testing.T) {
	handler := NewClassHandler(newTestDB(t))
	ctx := context.Background()

	req := &CreateClassRequest{}
	req.Body.Title = "Defensive Tactics"
	req.Body.CurriculumCode = "TAC-101"
	req.Body.Capacity = 20

	resp, err := handler.HandleCreateClass(ctx, req)
	if err != nil {
		t.Fatalf("HandleCreateClass failed: %v", err)
	}
	if resp.Body.Status != models.ClassDraft {
		t.Errorf("new classes must start as draft, got %s", resp.Body.Status)
	}

	t.Run("duplicate curriculum code rejected", func(t *testing.T) {
		_, err := handler.HandleCreateClass(ctx, req)
		assertStatus(t, err, 409)
	})
}

func TestHandleUpdateClass_StatusTransition(t *testing.T) {
	handler := NewClassHandler(newTestDB(t))
	ctx := context.Background()

	req := &CreateClassRequest{}
	req.Body.Title = "Defensive Tactics"
	req.Body.CurriculumCode = "TAC-101"
	req.Body.Capacity = 20
	created, err := handler.HandleCreateClass(ctx, req)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	update := &UpdateClassRequest{ID: created.Body.ID}
	update.Body.Title = "Defensive Tactics II"
	update.Body.Capacity = 25
	update.Body.Status = "open"

	updated, err := handler.HandleUpdateClass(ctx, update)
	if err != nil {
		t.Fatalf("HandleUpdateClass failed: %v", err)
	}
	if updated.Body.Status != models.ClassOpen {
		t.Errorf("expected open, got %s", updated.Body.Status)
	}
	if updated.Body.Capacity != 25 {
		t.Errorf("expected capacity 25, got %d", updated.Body.Capacity)
	}
}

func TestHandleAddMaterial(t *testing.T) {
	handler := NewClassHandler(newTestDB(t))
	ctx := context.Background()

	req := &CreateClassRequest{}
	req.Body.Title = "Defensive Tactics"
	req.Body.CurriculumCode = "TAC-101"
	req.Body.Capacity = 20
	created, err := handler.HandleCreateClass(ctx, req)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	add := func(name string, size int64) *ClassResponse {
		t.Helper()
		matReq := &AddMaterialRequest{ID: created.Body.ID}
		matReq.Body.Name = name
		matReq.Body.SizeBytes = size
		resp, err := handler.HandleAddMaterial(ctx, matReq)
		if err != nil {
			t.Fatalf("HandleAddMaterial failed: %v", err)
		}
		return resp
	}

	add("syllabus.pdf", 48213)
	resp := add("drills.pdf", 120034)

	materials := resp.Body.Materials.Data()
	if len(materials) != 2 {
		t.Fatalf("expected 2 materials recorded, got %d", len(materials))
	}
	if materials[0].Name != "syllabus.pdf" || materials[0].SizeBytes != 48213 {
		t.Errorf("first material mismatch: %+v", materials[0])
	}
	if materials[1].AddedAt.IsZero() {
		t.Error("expected material timestamp set")
	}
}
