package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"camping-fun/server/internal/dto"
	apperrors "camping-fun/server/pkg/errors"
)

// ── helpers ──

func setupTestCamperService() (CamperService, *mockStore) {
	store := newMockStore()
	return NewCamperService(store.repository(), zap.NewNop()), store
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func assertMessages(t *testing.T, err error, want ...string) {
	t.Helper()
	msgs, ok := apperrors.ValidationMessages(err)
	if !ok {
		t.Fatalf("expected a validation error, got: %v", err)
	}
	if !reflect.DeepEqual(msgs, want) {
		t.Errorf("messages = %q, want %q", msgs, want)
	}
}

// ── List ──

func TestCamperService_List(t *testing.T) {
	svc, store := setupTestCamperService()
	store.addCamper("Caitlin", 8)
	store.addCamper("Lizzie", 9)

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 campers, got %d", len(result))
	}
	if result[0].Name != "Caitlin" || result[1].Name != "Lizzie" {
		t.Errorf("unexpected order: %+v", result)
	}
}

func TestCamperService_List_Empty(t *testing.T) {
	svc, _ := setupTestCamperService()

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", result)
	}
}

// ── Create ──

func TestCamperService_Create_Success(t *testing.T) {
	svc, store := setupTestCamperService()

	result, err := svc.Create(context.Background(), &dto.CreateCamperRequest{
		Name: strPtr("Alex"),
		Age:  intPtr(12),
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.ID == 0 {
		t.Error("expected an id to be assigned")
	}
	if result.Name != "Alex" || result.Age != 12 {
		t.Errorf("unexpected camper: %+v", result)
	}
	if len(store.campers) != 1 {
		t.Errorf("expected 1 stored camper, got %d", len(store.campers))
	}
}

func TestCamperService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateCamperRequest
		want []string
	}{
		{"too young", dto.CreateCamperRequest{Name: strPtr("Alex"), Age: intPtr(7)}, []string{"Camper age must be between 8 and 18"}},
		{"too old", dto.CreateCamperRequest{Name: strPtr("Alex"), Age: intPtr(19)}, []string{"Camper age must be between 8 and 18"}},
		{"empty name", dto.CreateCamperRequest{Name: strPtr(""), Age: intPtr(12)}, []string{"Camper must have a name"}},
		{"blank name", dto.CreateCamperRequest{Name: strPtr("   "), Age: intPtr(12)}, []string{"Camper must have a name"}},
		{"both", dto.CreateCamperRequest{Name: strPtr(""), Age: intPtr(30)}, []string{"Camper must have a name", "Camper age must be between 8 and 18"}},
		{"missing age", dto.CreateCamperRequest{Name: strPtr("Alex")}, []string{"age is required"}},
		{"missing everything", dto.CreateCamperRequest{}, []string{"Camper must have a name", "age is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := setupTestCamperService()

			_, err := svc.Create(context.Background(), &tt.req)
			assertMessages(t, err, tt.want...)
			if len(store.campers) != 0 {
				t.Error("no camper should be stored")
			}
		})
	}
}

func TestCamperService_Create_Boundaries(t *testing.T) {
	for _, age := range []int{8, 18} {
		svc, _ := setupTestCamperService()
		if _, err := svc.Create(context.Background(), &dto.CreateCamperRequest{Name: strPtr("Sam"), Age: intPtr(age)}); err != nil {
			t.Errorf("age %d should be accepted: %v", age, err)
		}
	}
}

func TestCamperService_Create_StoreFailure(t *testing.T) {
	svc, store := setupTestCamperService()
	store.failWith = errors.New("disk full")

	_, err := svc.Create(context.Background(), &dto.CreateCamperRequest{Name: strPtr("Alex"), Age: intPtr(12)})
	if err == nil || err.Error() != "disk full" {
		t.Errorf("expected the store error, got: %v", err)
	}
}

// ── GetByID ──

func TestCamperService_GetByID_WithSignups(t *testing.T) {
	svc, store := setupTestCamperService()
	c := store.addCamper("Alex", 12)
	archery := store.addActivity("Archery", 2)
	hiking := store.addActivity("Hiking", 4)
	store.addSignup(15, c.ID, hiking.ID)
	store.addSignup(9, c.ID, archery.ID)

	result, err := svc.GetByID(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("GetByID should succeed: %v", err)
	}
	if len(result.Signups) != 2 {
		t.Fatalf("expected 2 signups, got %d", len(result.Signups))
	}
	first := result.Signups[0]
	if first.Time != 9 || first.Activity.Name != "Archery" || first.CamperID != c.ID {
		t.Errorf("unexpected first signup: %+v", first)
	}
}

func TestCamperService_GetByID_NoSignups(t *testing.T) {
	svc, store := setupTestCamperService()
	c := store.addCamper("Alex", 12)

	result, err := svc.GetByID(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("GetByID should succeed: %v", err)
	}
	if result.Signups == nil {
		t.Error("signups should be an empty list, not null")
	}
}

func TestCamperService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestCamperService()

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrCamperNotFound) {
		t.Errorf("expected ErrCamperNotFound, got: %v", err)
	}
}

// ── Update ──

func TestCamperService_Update_AgeOnly(t *testing.T) {
	svc, store := setupTestCamperService()
	c := store.addCamper("Alex", 12)

	result, err := svc.Update(context.Background(), c.ID, &dto.UpdateCamperRequest{Age: dto.Some(13)})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.Name != "Alex" {
		t.Errorf("name should be unchanged, got %q", result.Name)
	}
	if result.Age != 13 {
		t.Errorf("expected age 13, got %d", result.Age)
	}
	if store.campers[c.ID].Age != 13 {
		t.Error("update was not persisted")
	}
}

func TestCamperService_Update_NameOnly(t *testing.T) {
	svc, store := setupTestCamperService()
	c := store.addCamper("Alex", 12)

	result, err := svc.Update(context.Background(), c.ID, &dto.UpdateCamperRequest{Name: dto.Some("Alexandra")})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.Name != "Alexandra" || result.Age != 12 {
		t.Errorf("unexpected camper: %+v", result)
	}
}

func TestCamperService_Update_EmptyBodyIsNoop(t *testing.T) {
	svc, store := setupTestCamperService()
	c := store.addCamper("Alex", 12)

	result, err := svc.Update(context.Background(), c.ID, &dto.UpdateCamperRequest{})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.Name != "Alex" || result.Age != 12 {
		t.Errorf("unexpected camper: %+v", result)
	}
}

func TestCamperService_Update_Invalid(t *testing.T) {
	svc, store := setupTestCamperService()
	c := store.addCamper("Alex", 12)

	_, err := svc.Update(context.Background(), c.ID, &dto.UpdateCamperRequest{
		Name: dto.Some("Alexandra"),
		Age:  dto.Some(40),
	})
	assertMessages(t, err, "Camper age must be between 8 and 18")

	stored := store.campers[c.ID]
	if stored.Name != "Alex" || stored.Age != 12 {
		t.Errorf("a failed update must not persist anything, got %+v", stored)
	}
}

func TestCamperService_Update_NullAge(t *testing.T) {
	svc, store := setupTestCamperService()
	c := store.addCamper("Alex", 12)

	_, err := svc.Update(context.Background(), c.ID, &dto.UpdateCamperRequest{
		Age: dto.Optional[int]{Set: true, Null: true},
	})
	assertMessages(t, err, "age is required")
}

func TestCamperService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestCamperService()

	_, err := svc.Update(context.Background(), 99, &dto.UpdateCamperRequest{Age: dto.Some(13)})
	if !errors.Is(err, ErrCamperNotFound) {
		t.Errorf("expected ErrCamperNotFound, got: %v", err)
	}
}
