package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stargate-api/config"
	"stargate-api/internal/dto"
	"stargate-api/internal/model"
	"stargate-api/internal/repository"
	apperrors "stargate-api/pkg/errors"
	"stargate-api/pkg/database"
)

// ── 基于 SQLite 的测试：真实事务与约束 ──

func setupSQLiteService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	db, err := database.NewDB(cfg, "silent", zap.NewNop())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.Driver, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return NewService(repository.NewRepository(db), nil, nil, zap.NewNop()), db
}

func TestSQLite_DutyLifecycle(t *testing.T) {
	svc, _ := setupSQLiteService(t)
	ctx := context.Background()

	if _, err := svc.Person.Create(ctx, &dto.CreatePersonRequest{Name: "Jack O'Neill"}); err != nil {
		t.Fatalf("create person: %v", err)
	}

	for _, req := range []*dto.CreateAstronautDutyRequest{
		dutyReq("Jack O'Neill", "Colonel", "Commander", "2024-01-01"),
		dutyReq("Jack O'Neill", "Brigadier General", "Director", "2026-06-15"),
		dutyReq("Jack O'Neill", "Major General", model.RetiredDutyTitle, "2030-01-01"),
	} {
		if _, err := svc.AstronautDuty.Create(ctx, req); err != nil {
			t.Fatalf("record %s: %v", req.DutyTitle, err)
		}
	}

	person, err := svc.Person.GetByName(ctx, "jack o'neill")
	if err != nil {
		t.Fatalf("get person: %v", err)
	}
	p := person.Person
	if p == nil {
		t.Fatal("expected a person")
	}
	if p.CurrentDutyTitle == nil || *p.CurrentDutyTitle != model.RetiredDutyTitle {
		t.Errorf("expected RETIRED, got %v", p.CurrentDutyTitle)
	}
	if p.CareerStartDate == nil || *p.CareerStartDate != "2024-01-01" {
		t.Errorf("expected career start 2024-01-01, got %v", p.CareerStartDate)
	}
	if p.CareerEndDate == nil || *p.CareerEndDate != "2029-12-31" {
		t.Errorf("expected career end 2029-12-31, got %v", p.CareerEndDate)
	}

	duties, err := svc.AstronautDuty.GetByName(ctx, "Jack O'Neill")
	if err != nil {
		t.Fatalf("get duties: %v", err)
	}
	if len(duties.AstronautDuties) != 3 {
		t.Fatalf("expected 3 duties, got %d", len(duties.AstronautDuties))
	}
	wantEnds := []string{"", "2029-12-31", "2026-06-14"}
	for i, d := range duties.AstronautDuties {
		got := ""
		if d.DutyEndDate != nil {
			got = *d.DutyEndDate
		}
		if got != wantEnds[i] {
			t.Errorf("duty %d (%s): expected end %q, got %q", i, d.DutyTitle, wantEnds[i], got)
		}
	}

	_, err = svc.AstronautDuty.Create(ctx, dutyReq("Jack O'Neill", "Colonel", "Commander", "2024-01-01"))
	if !errors.Is(err, ErrDutyExists) {
		t.Errorf("expected ErrDutyExists, got %v", err)
	}
}

func TestSQLite_DutyRollback(t *testing.T) {
	svc, db := setupSQLiteService(t)
	ctx := context.Background()

	if _, err := svc.Person.Create(ctx, &dto.CreatePersonRequest{Name: "Samantha Carter"}); err != nil {
		t.Fatalf("create person: %v", err)
	}

	// fail the last write of the duty transaction
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_duty_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "astronaut_duties" {
			tx.AddError(errors.New("insert rejected"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	_, err = svc.AstronautDuty.Create(ctx, dutyReq("Samantha Carter", "Major", "Scientist", "2024-01-01"))
	if !errors.Is(err, apperrors.ErrPersistence) {
		t.Fatalf("expected a persistence error, got %v", err)
	}

	var details int64
	if err := db.Model(&model.AstronautDetail{}).Count(&details).Error; err != nil {
		t.Fatalf("count details: %v", err)
	}
	if details != 0 {
		t.Errorf("detail must be rolled back, found %d", details)
	}

	person, err := svc.Person.GetByName(ctx, "Samantha Carter")
	if err != nil {
		t.Fatalf("get person: %v", err)
	}
	if person.Person == nil || person.Person.CurrentRank != nil {
		t.Errorf("person must have no detail after rollback, got %+v", person.Person)
	}
}

func TestSQLite_PersonRename(t *testing.T) {
	svc, _ := setupSQLiteService(t)
	ctx := context.Background()

	for _, name := range []string{"Daniel Jackson", "Vala Mal Doran"} {
		if _, err := svc.Person.Create(ctx, &dto.CreatePersonRequest{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	_, err := svc.Person.Update(ctx, &dto.UpdatePersonRequest{CurrentName: "Daniel Jackson", NewName: "Vala Mal Doran"})
	if !errors.Is(err, ErrPersonNameTaken) {
		t.Errorf("expected ErrPersonNameTaken, got %v", err)
	}

	if _, err := svc.Person.Update(ctx, &dto.UpdatePersonRequest{CurrentName: "Daniel Jackson", NewName: "Dr. Daniel Jackson"}); err != nil {
		t.Fatalf("rename: %v", err)
	}

	people, err := svc.Person.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(people.People) != 2 || people.People[0].Name != "Dr. Daniel Jackson" {
		t.Errorf("unexpected people %+v", people.People)
	}
}
