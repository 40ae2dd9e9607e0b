package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	examout "studyplan/internal/modules/exam/adapter/out"
	"studyplan/internal/modules/exam/dto"
	examin "studyplan/internal/modules/exam/port/in"
	"studyplan/internal/modules/exam/service"
	"studyplan/internal/modules/exam/usecase"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/id"
	"studyplan/internal/platform/storage"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newExamStack(store storage.Store) examin.Usecase {
	clk := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	repo := service.NewRepository(id.NewTimeMillis(clk), examout.NewSlotCollectionStore(store))
	return usecase.NewInteractor(repo)
}

func TestCreatePersistsAndSurvivesReload(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newExamStack(store)

	created, err := uc.Create(context.Background(), dto.ExamInput{Code: "CS101", Date: "2026-03-12", Time: "09:00", Notes: "room B2"})
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("created exam must carry a fresh id")
	}
	if store.Saves[storage.SlotExams] != 1 {
		t.Fatalf("create must persist once, got %d saves", store.Saves[storage.SlotExams])
	}

	// A second stack over the same store simulates a restart.
	reloaded := newExamStack(store)
	got, err := reloaded.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if got != created {
		t.Fatalf("reload round-trip mismatch: %+v vs %+v", got, created)
	}
}

func TestCreateAssignsDistinctIncreasingIDs(t *testing.T) {
	t.Parallel()
	uc := newExamStack(storage.NewMemorySlotStore())

	var last int64
	for i := 0; i < 3; i++ {
		out, err := uc.Create(context.Background(), dto.ExamInput{Code: "CS101", Date: "2026-03-12"})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if out.ID <= last {
			t.Fatalf("ids must strictly increase, got %d after %d", out.ID, last)
		}
		last = out.ID
	}
}

func TestCreateValidationLeavesStoreUntouched(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newExamStack(store)

	cases := []dto.ExamInput{
		{Code: "", Date: "2026-03-12"},
		{Code: "   ", Date: "2026-03-12"},
		{Code: "CS101", Date: ""},
		{Code: "CS101", Date: "12/03/2026"},
		{Code: "CS101", Date: "2026-02-30"},
	}
	for _, input := range cases {
		if _, err := uc.Create(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
	if store.Saves[storage.SlotExams] != 0 {
		t.Fatalf("rejected drafts must not persist, got %d saves", store.Saves[storage.SlotExams])
	}
}

func TestUpdateReplacesOnlyTarget(t *testing.T) {
	t.Parallel()
	uc := newExamStack(storage.NewMemorySlotStore())
	ctx := context.Background()

	first, _ := uc.Create(ctx, dto.ExamInput{Code: "CS101", Date: "2026-03-12", Time: "09:00"})
	second, _ := uc.Create(ctx, dto.ExamInput{Code: "MA201", Date: "2026-03-14"})

	updated, err := uc.Update(ctx, second.ID, dto.ExamInput{Code: "MA201", Date: "2026-03-20", Time: "14:00", Notes: "moved"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != second.ID || updated.Date != "2026-03-20" || updated.Notes != "moved" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	all, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("update must never change the collection size, got %d", len(all))
	}
	if all[0] != first {
		t.Fatalf("untouched exam changed: %+v", all[0])
	}
}

func TestUpdateMissingIDIsVisibleError(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newExamStack(store)
	ctx := context.Background()

	if _, err := uc.Create(ctx, dto.ExamInput{Code: "CS101", Date: "2026-03-12"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	saves := store.Saves[storage.SlotExams]

	if _, err := uc.Update(ctx, 999, dto.ExamInput{Code: "MA201", Date: "2026-03-14"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stale id, got %v", err)
	}
	if store.Saves[storage.SlotExams] != saves {
		t.Fatalf("failed update must not persist")
	}
}

func TestDeleteRemovesAndAbsentIDIsNoOp(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newExamStack(store)
	ctx := context.Background()

	created, _ := uc.Create(ctx, dto.ExamInput{Code: "CS101", Date: "2026-03-12"})

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("deleted exam must not resolve, got %v", err)
	}

	saves := store.Saves[storage.SlotExams]
	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("repeat delete must be a no-op, got %v", err)
	}
	if store.Saves[storage.SlotExams] != saves {
		t.Fatalf("no-op delete must not persist")
	}
}

func TestOnDateFiltersInOrder(t *testing.T) {
	t.Parallel()
	uc := newExamStack(storage.NewMemorySlotStore())
	ctx := context.Background()

	_, _ = uc.Create(ctx, dto.ExamInput{Code: "CS101", Date: "2026-03-12", Time: "09:00"})
	_, _ = uc.Create(ctx, dto.ExamInput{Code: "PH110", Date: "2026-03-13"})
	_, _ = uc.Create(ctx, dto.ExamInput{Code: "MA201", Date: "2026-03-12", Time: "14:00"})

	matched, err := uc.OnDate(ctx, "2026-03-12")
	if err != nil {
		t.Fatalf("on date: %v", err)
	}
	if len(matched) != 2 || matched[0].Code != "CS101" || matched[1].Code != "MA201" {
		t.Fatalf("unexpected filter result %+v", matched)
	}

	empty, err := uc.OnDate(ctx, "2026-12-24")
	if err != nil {
		t.Fatalf("on empty date: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no matches, got %+v", empty)
	}
}
