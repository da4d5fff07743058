package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fyp-portal/directory-service/internal/core/domain"
	"github.com/fyp-portal/directory-service/internal/core/ports"
)

func TestDirectoryService_Stats(t *testing.T) {
	accounts := newStubAccountRepo()
	supervisors := newStubSupervisorRepo()

	accountSvc := NewAccountService(accounts, zerolog.Nop())
	supervisorSvc := NewSupervisorService(supervisors, zerolog.Nop())
	svc := NewDirectoryService(accounts, supervisors, zerolog.Nop())

	for _, in := range []ports.CreateAccountInput{
		{Username: "s1", Password: "pw", Role: "student"},
		{Username: "s2", Password: "pw", Role: "student"},
		{Username: "sup1", Password: "pw", Role: "supervisor"},
		{Username: "anon", Password: "pw"}, // defaults to public
	} {
		if _, err := accountSvc.Create(context.Background(), in); err != nil {
			t.Fatalf("seed account failed: %v", err)
		}
	}
	if _, err := supervisorSvc.Create(context.Background(), ports.CreateSupervisorInput{
		Name: "Dr. Lee", Email: "lee@univ.edu", Department: "CS",
	}); err != nil {
		t.Fatalf("seed supervisor failed: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats.TotalAccounts != 4 {
		t.Errorf("TotalAccounts = %d, want 4", stats.TotalAccounts)
	}
	if stats.TotalSupervisors != 1 {
		t.Errorf("TotalSupervisors = %d, want 1", stats.TotalSupervisors)
	}

	want := map[domain.Role]int64{
		domain.RoleStudent:    2,
		domain.RoleSupervisor: 1,
		domain.RoleAdmin:      0,
		domain.RolePublic:     1,
	}
	for role, n := range want {
		if stats.AccountsByRole[role] != n {
			t.Errorf("AccountsByRole[%s] = %d, want %d", role, stats.AccountsByRole[role], n)
		}
	}
	// Every enumerated role is present, even when zero.
	if len(stats.AccountsByRole) != len(domain.Roles) {
		t.Errorf("expected %d role buckets, got %d", len(domain.Roles), len(stats.AccountsByRole))
	}
}
