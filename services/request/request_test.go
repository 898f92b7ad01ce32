package request

import (
	"context"
	"errors"
	"testing"

	"aamer/models"
	"aamer/utils"
)

type fakeRequestRepo struct {
	requests []models.Request
}

func (f *fakeRequestRepo) Create(ctx context.Context, r *models.Request) error {
	if r.ID == "" {
		r.ID = utils.NewID()
	}
	if r.Status == "" {
		r.Status = models.RequestStatusPending
	}
	f.requests = append(f.requests, *r)
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (*models.Request, error) {
	for _, r := range f.requests {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRequestRepo) GetAll(ctx context.Context, status string) ([]models.Request, error) {
	var out []models.Request
	for _, r := range f.requests {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) GetByUserID(ctx context.Context, userID string) ([]models.Request, error) {
	var out []models.Request
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
		}
	}
	return nil
}

func newService() (*DefaultRequestService, *fakeRequestRepo) {
	repo := &fakeRequestRepo{}
	return &DefaultRequestService{Repo: repo}, repo
}

func validInput(userID string) CreateRequestInput {
	return CreateRequestInput{
		UserID: userID, Title: "Fix sink", Description: "Kitchen sink leaks",
		Price: 150, Location: "Jeddah", ServiceType: "Plumbing",
	}
}

func TestCreateRequiresAllFields(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	in := validInput(utils.NewID())
	in.Price = 0
	_, err := svc.Create(ctx, in)
	var se *utils.ServiceError
	if !errors.As(err, &se) || se.Message != "All fields are required" {
		t.Fatalf("expected required-fields error, got %v", err)
	}
}

func TestCreateStoresPendingRequest(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	req, err := svc.Create(ctx, validInput(utils.NewID()))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored, _ := repo.GetByID(ctx, req.ID)
	if stored == nil || stored.Status != models.RequestStatusPending {
		t.Errorf("stored = %+v", stored)
	}
}

func TestGetByUserBackfillsBlankFields(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	userID := utils.NewID()

	repo.Create(ctx, &models.Request{UserID: userID, Price: 10})

	requests, err := svc.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(requests))
	}
	r := requests[0]
	if r.ServiceType != "Other" || r.Title != "Untitled Request" ||
		r.Location != "Location not specified" || r.Description != "No description provided" {
		t.Errorf("backfilled request = %+v", r)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _ := newService()
	err := svc.UpdateStatus(context.Background(), utils.NewID(), "archived")
	var se *utils.ServiceError
	if !errors.As(err, &se) || se.Message != "Invalid status value" {
		t.Fatalf("expected invalid-status error, got %v", err)
	}
}

func TestUpdateStatusMissingRequestIsNotAnError(t *testing.T) {
	svc, _ := newService()
	if err := svc.UpdateStatus(context.Background(), utils.NewID(), models.RequestStatusAccepted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
}

func TestGetAllFiltersByStatus(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	repo.Create(ctx, &models.Request{UserID: utils.NewID(), Title: "A", Status: models.RequestStatusPending})
	repo.Create(ctx, &models.Request{UserID: utils.NewID(), Title: "B", Status: models.RequestStatusAccepted})

	accepted, err := svc.GetAll(ctx, models.RequestStatusAccepted)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(accepted) != 1 || accepted[0].Title != "B" {
		t.Errorf("accepted = %+v", accepted)
	}

	all, _ := svc.GetAll(ctx, "")
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}
}
