package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

func validRealtor() *domain.Realtor {
	return &domain.Realtor{Surname: "Иванов", Name: "Иван", Patronymic: "Иванович"}
}

func TestCreateRealtorAssignsID(t *testing.T) {
	repo := newFakeRealtorRepo()
	uc := NewCreateRealtorUseCase(repo)

	id, err := uc.Execute(context.Background(), validRealtor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if repo.realtors[id] == nil {
		t.Fatal("realtor was not persisted")
	}
}

func TestCreateRealtorValidation(t *testing.T) {
	repo := newFakeRealtorRepo()
	uc := NewCreateRealtorUseCase(repo)

	r := validRealtor()
	r.Surname = ""
	if _, err := uc.Execute(context.Background(), r); !errors.Is(err, domain.ErrRealtorNameRequired) {
		t.Errorf("expected ErrRealtorNameRequired, got %v", err)
	}

	r = validRealtor()
	r.CommissionShare = f64Ptr(101)
	if _, err := uc.Execute(context.Background(), r); !errors.Is(err, domain.ErrInvalidCommissionShare) {
		t.Errorf("expected ErrInvalidCommissionShare, got %v", err)
	}
}

func TestUpdateRealtorNotFound(t *testing.T) {
	repo := newFakeRealtorRepo()
	uc := NewUpdateRealtorUseCase(repo)

	r := validRealtor()
	r.ID = uuid.New()
	if err := uc.Execute(context.Background(), r); !errors.Is(err, domain.ErrRealtorNotFound) {
		t.Errorf("expected ErrRealtorNotFound, got %v", err)
	}
}

func TestDeleteRealtorWithLinkedRecords(t *testing.T) {
	repo := newFakeRealtorRepo()
	r := validRealtor()
	r.ID = uuid.New()
	repo.Create(context.Background(), r)
	repo.linked = true

	uc := NewDeleteRealtorUseCase(repo)
	if err := uc.Execute(context.Background(), r.ID); !errors.Is(err, domain.ErrRealtorInUse) {
		t.Errorf("expected ErrRealtorInUse, got %v", err)
	}
	if repo.realtors[r.ID] == nil {
		t.Error("realtor must not be deleted while referenced")
	}
}

func TestDeleteRealtor(t *testing.T) {
	repo := newFakeRealtorRepo()
	r := validRealtor()
	r.ID = uuid.New()
	repo.Create(context.Background(), r)

	uc := NewDeleteRealtorUseCase(repo)
	if err := uc.Execute(context.Background(), r.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.realtors[r.ID] != nil {
		t.Error("realtor was not deleted")
	}
}
