package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/coworker-service/internal/domain"
)

func seed(t *testing.T, repo CoworkerRepository, items ...domain.Coworker) []domain.Coworker {
	t.Helper()
	out := make([]domain.Coworker, 0, len(items))
	for i := range items {
		cw := items[i]
		if err := repo.Create(context.Background(), &cw); err != nil {
			t.Fatalf("create %s: %v", cw.Name, err)
		}
		out = append(out, cw)
	}
	return out
}

func TestMemoryCoworkersCreateAssignsIdentity(t *testing.T) {
	store := NewMemoryStore()
	created := seed(t, store.Coworkers(), domain.Coworker{Name: "Ana", Role: "Dev", Department: "Eng", Salary: 90000})

	if created[0].ID == "" || created[0].CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be assigned, got %+v", created[0])
	}
	got, err := store.Coworkers().GetByID(context.Background(), created[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ana" || got.Salary != 90000 {
		t.Fatalf("unexpected coworker %+v", got)
	}
}

func TestMemoryCoworkersGetMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Coworkers().GetByID(context.Background(), "nope"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
}

func TestMemoryCoworkersListFilters(t *testing.T) {
	store := NewMemoryStore()
	seed(t, store.Coworkers(),
		domain.Coworker{Name: "Ana", Role: "Dev", Department: "Eng", Salary: 90000},
		domain.Coworker{Name: "Bo", Role: "QA", Department: "Eng", Salary: 85000},
		domain.Coworker{Name: "Cy", Role: "Account Exec", Department: "Sales", Salary: 70000},
	)
	str := func(s string) *string { return &s }

	cases := []struct {
		name   string
		filter CoworkerFilter
		want   []string
	}{
		{"unfiltered", CoworkerFilter{}, []string{"Ana", "Bo", "Cy"}},
		{"empty values", CoworkerFilter{SearchTerm: str(""), Department: str("")}, []string{"Ana", "Bo", "Cy"}},
		{"department", CoworkerFilter{Department: str("Eng")}, []string{"Ana", "Bo"}},
		{"search name case-insensitive", CoworkerFilter{SearchTerm: str("ana")}, []string{"Ana"}},
		{"search role", CoworkerFilter{SearchTerm: str("exec")}, []string{"Cy"}},
		{"search and department", CoworkerFilter{SearchTerm: str("Ana"), Department: str("Eng")}, []string{"Ana"}},
		{"no match", CoworkerFilter{SearchTerm: str("Ana"), Department: str("Sales")}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.Coworkers().List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, got)
			}
			for i := range got {
				if got[i].Name != tc.want[i] {
					t.Fatalf("position %d: expected %s got %s", i, tc.want[i], got[i].Name)
				}
			}
		})
	}
}

func TestMemoryDepartmentsAreDistinctAndSorted(t *testing.T) {
	store := NewMemoryStore()
	seed(t, store.Coworkers(),
		domain.Coworker{Name: "Cy", Role: "AE", Department: "Sales", Salary: 1},
		domain.Coworker{Name: "Ana", Role: "Dev", Department: "Eng", Salary: 1},
		domain.Coworker{Name: "Bo", Role: "QA", Department: "Eng", Salary: 1},
	)
	depts, err := store.Departments().List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(depts) != 2 || depts[0].Name != "Eng" || depts[1].Name != "Sales" {
		t.Fatalf("unexpected departments %+v", depts)
	}
}
