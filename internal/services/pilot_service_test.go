package services

import (
	"context"
	"errors"
	"testing"

	"airfield-ops/towerlog/internal/constants"
	"airfield-ops/towerlog/internal/db/repositories"
	"airfield-ops/towerlog/internal/models/dtos"
)

func newPilotService(t *testing.T) *PilotService {
	t.Helper()
	return NewPilotService(repositories.NewPilotRepository(setupTestDB(t)))
}

func TestPilotService_Create_Defaults(t *testing.T) {
	svc := newPilotService(t)
	ctx := context.Background()

	state := "md"
	created, err := svc.Create(ctx, dtos.PilotCreateRequest{
		CertificateNumber: "1234567",
		FirstName:         "John",
		LastName:          "Smith",
		CertificateType:   constants.CertificatePrivate,
		State:             &state,
	})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	if !created.IsActive {
		t.Error("Expected pilot to default to active")
	}
	if created.TotalFlightHours != 0 {
		t.Errorf("Expected 0 flight hours, got %f", created.TotalFlightHours)
	}
	if created.State == nil || *created.State != "MD" {
		t.Error("Expected state stored upper-case")
	}

	fetched, err := svc.GetByCertificate(ctx, "1234567")
	if err != nil {
		t.Fatalf("Expected certificate lookup to succeed, got %v", err)
	}
	if fetched.ID != created.ID {
		t.Errorf("Expected id %d, got %d", created.ID, fetched.ID)
	}
}

func TestPilotService_Create_Validation(t *testing.T) {
	svc := newPilotService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dtos.PilotCreateRequest{
		CertificateNumber: "   ",
		CertificateType:   constants.CertificatePrivate,
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for blank certificate, got %v", err)
	}

	_, err = svc.Create(ctx, dtos.PilotCreateRequest{
		CertificateNumber: "1234567",
		CertificateType:   constants.PilotCertificate("wizard"),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown certificate type, got %v", err)
	}
}

func TestPilotService_Create_DuplicateCertificate(t *testing.T) {
	svc := newPilotService(t)
	ctx := context.Background()

	req := dtos.PilotCreateRequest{
		CertificateNumber: "1234567",
		FirstName:         "John",
		LastName:          "Smith",
		CertificateType:   constants.CertificatePrivate,
	}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Expected first create to succeed, got %v", err)
	}

	req.FirstName = "Jane"
	_, err := svc.Create(ctx, req)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}
}

func TestPilotService_Update_Partial(t *testing.T) {
	svc := newPilotService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dtos.PilotCreateRequest{
		CertificateNumber: "1234567",
		FirstName:         "John",
		LastName:          "Smith",
		CertificateType:   constants.CertificatePrivate,
	})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	hours := 152.5
	certType := constants.CertificateCommercial
	updated, err := svc.Update(ctx, created.ID, dtos.PilotUpdateRequest{
		TotalFlightHours: &hours,
		CertificateType:  &certType,
	})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	if updated.TotalFlightHours != 152.5 {
		t.Errorf("Expected 152.5 hours, got %f", updated.TotalFlightHours)
	}
	if updated.CertificateType != constants.CertificateCommercial {
		t.Errorf("Expected commercial certificate, got %s", updated.CertificateType)
	}
	if updated.FirstName != "John" || updated.LastName != "Smith" {
		t.Error("Expected name unchanged")
	}
	if updated.CertificateNumber != "1234567" {
		t.Errorf("Expected certificate number unchanged, got %s", updated.CertificateNumber)
	}

	bad := constants.PilotCertificate("wizard")
	if _, err := svc.Update(ctx, created.ID, dtos.PilotUpdateRequest{CertificateType: &bad}); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}

func TestPilotService_List_Filters(t *testing.T) {
	svc := newPilotService(t)
	ctx := context.Background()

	inactive := false
	seeds := []dtos.PilotCreateRequest{
		{CertificateNumber: "1111111", FirstName: "John", LastName: "Smith", CertificateType: constants.CertificatePrivate},
		{CertificateNumber: "2222222", FirstName: "Jane", LastName: "Doe", CertificateType: constants.CertificateATP},
		{CertificateNumber: "3333333", FirstName: "Sam", LastName: "Archer", CertificateType: constants.CertificatePrivate, IsActive: &inactive},
	}
	for _, req := range seeds {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("Failed to seed pilot %s: %v", req.CertificateNumber, err)
		}
	}

	certType := "private"
	private, err := svc.List(ctx, dtos.PilotFilter{CertificateType: &certType})
	if err != nil {
		t.Fatalf("Expected list to succeed, got %v", err)
	}
	if len(private) != 2 {
		t.Errorf("Expected 2 private pilots, got %d", len(private))
	}

	active := true
	activeOnly, err := svc.List(ctx, dtos.PilotFilter{IsActive: &active})
	if err != nil {
		t.Fatalf("Expected list to succeed, got %v", err)
	}
	if len(activeOnly) != 2 {
		t.Errorf("Expected 2 active pilots, got %d", len(activeOnly))
	}

	search := "doe"
	found, err := svc.List(ctx, dtos.PilotFilter{Search: &search})
	if err != nil {
		t.Fatalf("Expected search to succeed, got %v", err)
	}
	if len(found) != 1 || found[0].LastName != "Doe" {
		t.Errorf("Expected Jane Doe for %q, got %+v", search, found)
	}

	// Listing orders by last name then first name
	all, err := svc.List(ctx, dtos.PilotFilter{})
	if err != nil {
		t.Fatalf("Expected list to succeed, got %v", err)
	}
	if len(all) != 3 || all[0].LastName != "Archer" || all[2].LastName != "Smith" {
		t.Errorf("Expected Archer/Doe/Smith ordering, got %+v", all)
	}
}
