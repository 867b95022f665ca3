package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arleti/materials-system/internal/core/domain"
	"github.com/arleti/materials-system/internal/core/ports"
)

type stubMaterialRepo struct {
	seq       int
	materials []*domain.Material
}

func cloneMaterial(m *domain.Material) *domain.Material {
	clone := *m
	return &clone
}

func (r *stubMaterialRepo) Create(_ context.Context, m *domain.Material) (*domain.Material, error) {
	r.seq++
	stored := cloneMaterial(m)
	stored.ID = "mat-" + strconv.Itoa(r.seq)
	r.materials = append(r.materials, stored)
	return cloneMaterial(stored), nil
}

func (r *stubMaterialRepo) FindByID(_ context.Context, id string) (*domain.Material, error) {
	for _, m := range r.materials {
		if m.ID == id {
			return cloneMaterial(m), nil
		}
	}
	return nil, domain.ErrMaterialNotFound
}

func (r *stubMaterialRepo) List(_ context.Context) ([]*domain.Material, error) {
	out := make([]*domain.Material, 0, len(r.materials))
	for _, m := range r.materials {
		out = append(out, cloneMaterial(m))
	}
	return out, nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *domain.Material) (*domain.Material, error) {
	for i, existing := range r.materials {
		if existing.ID == m.ID {
			r.materials[i] = cloneMaterial(m)
			return cloneMaterial(m), nil
		}
	}
	return nil, domain.ErrMaterialNotFound
}

func (r *stubMaterialRepo) Delete(_ context.Context, id string) error {
	for i, m := range r.materials {
		if m.ID == id {
			r.materials = append(r.materials[:i], r.materials[i+1:]...)
			return nil
		}
	}
	return domain.ErrMaterialNotFound
}

func validMaterialInput() ports.MaterialInput {
	return ports.MaterialInput{
		Name:     "PVC pipe 3/4",
		Category: "plumbing",
		Quantity: 40,
		Unit:     "pcs",
		Price:    2.75,
	}
}

func TestMaterialCreate(t *testing.T) {
	repo := &stubMaterialRepo{}
	svc := NewMaterialService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validMaterialInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Error("created material has no id")
	}
	if created.Name != "PVC pipe 3/4" || created.Quantity != 40 {
		t.Errorf("created = %+v, fields not persisted", created)
	}
}

func TestMaterialCreate_Validation(t *testing.T) {
	repo := &stubMaterialRepo{}
	svc := NewMaterialService(repo, zerolog.Nop())

	cases := []struct {
		name   string
		mutate func(*ports.MaterialInput)
	}{
		{"empty name", func(in *ports.MaterialInput) { in.Name = "" }},
		{"empty category", func(in *ports.MaterialInput) { in.Category = "" }},
		{"empty unit", func(in *ports.MaterialInput) { in.Unit = "" }},
		{"negative quantity", func(in *ports.MaterialInput) { in.Quantity = -1 }},
		{"negative price", func(in *ports.MaterialInput) { in.Price = -0.01 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validMaterialInput()
			tc.mutate(&input)
			if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
	if len(repo.materials) != 0 {
		t.Errorf("rejected inputs left %d materials behind", len(repo.materials))
	}
}

func TestMaterialUpdate(t *testing.T) {
	repo := &stubMaterialRepo{}
	svc := NewMaterialService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validMaterialInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := validMaterialInput()
	input.Quantity = 12
	updated, err := svc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Quantity != 12 {
		t.Errorf("quantity = %d, want 12", updated.Quantity)
	}

	if _, err := svc.Update(context.Background(), "mat-999", input); !errors.Is(err, domain.ErrMaterialNotFound) {
		t.Errorf("unknown id err = %v, want ErrMaterialNotFound", err)
	}
}

func TestMaterialGetListDelete(t *testing.T) {
	repo := &stubMaterialRepo{}
	svc := NewMaterialService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validMaterialInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil || got.ID != created.ID {
		t.Errorf("Get = (%+v, %v), want created material", got, err)
	}

	list, err := svc.List(context.Background())
	if err != nil || len(list) != 1 {
		t.Errorf("List = (%d items, %v), want 1 item", len(list), err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrMaterialNotFound) {
		t.Errorf("Get after delete err = %v, want ErrMaterialNotFound", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrMaterialNotFound) {
		t.Errorf("second Delete err = %v, want ErrMaterialNotFound", err)
	}
}
