package usecase_test

import (
	"context"
	"reflect"
	"testing"

	taskout "studyplan/internal/modules/task/adapter/out"
	taskin "studyplan/internal/modules/task/port/in"
	"studyplan/internal/modules/task/service"
	"studyplan/internal/modules/task/usecase"
	"studyplan/internal/platform/storage"
)

func newTaskStack(store storage.Store) taskin.Usecase {
	return usecase.NewInteractor(service.NewRepository(taskout.NewSlotCollectionStore(store)))
}

func TestAppendTrimsAndAppendsLast(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newTaskStack(store)
	ctx := context.Background()

	first, err := uc.Append(ctx, "  revise chapter 3  ")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !first.Added || first.Text != "revise chapter 3" || first.Count != 1 {
		t.Fatalf("unexpected append result %+v", first)
	}

	second, err := uc.Append(ctx, "book study room")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if second.Count != 2 {
		t.Fatalf("expected count 2, got %d", second.Count)
	}

	tasks, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"revise chapter 3", "book study room"}
	if !reflect.DeepEqual(tasks, want) {
		t.Fatalf("tasks = %v, want %v", tasks, want)
	}
	if store.Saves[storage.SlotTasks] != 2 {
		t.Fatalf("each append must persist, got %d saves", store.Saves[storage.SlotTasks])
	}
}

func TestAppendBlankIsNoOp(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newTaskStack(store)

	out, err := uc.Append(context.Background(), "   \t ")
	if err != nil {
		t.Fatalf("append blank: %v", err)
	}
	if out.Added || out.Count != 0 {
		t.Fatalf("blank append must be a no-op, got %+v", out)
	}
	if store.Saves[storage.SlotTasks] != 0 {
		t.Fatalf("blank append must not persist")
	}
}

func TestDeleteAtShiftsLaterTasks(t *testing.T) {
	t.Parallel()
	uc := newTaskStack(storage.NewMemorySlotStore())
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		if _, err := uc.Append(ctx, text); err != nil {
			t.Fatalf("append %q: %v", text, err)
		}
	}
	if err := uc.DeleteAt(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	tasks, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(tasks, []string{"a", "c"}) {
		t.Fatalf("tasks = %v, want [a c]", tasks)
	}
}

func TestDeleteAtOutOfRangeIsNoOp(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newTaskStack(store)
	ctx := context.Background()

	if _, err := uc.Append(ctx, "only"); err != nil {
		t.Fatalf("append: %v", err)
	}
	saves := store.Saves[storage.SlotTasks]

	for _, index := range []int{-1, 1, 99} {
		if err := uc.DeleteAt(ctx, index); err != nil {
			t.Fatalf("delete %d must be a no-op, got %v", index, err)
		}
	}
	tasks, _ := uc.List(ctx)
	if !reflect.DeepEqual(tasks, []string{"only"}) {
		t.Fatalf("tasks = %v, want [only]", tasks)
	}
	if store.Saves[storage.SlotTasks] != saves {
		t.Fatalf("no-op deletes must not persist")
	}
}

func TestTasksSurviveReload(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	ctx := context.Background()

	uc := newTaskStack(store)
	_, _ = uc.Append(ctx, "pack calculator")
	_, _ = uc.Append(ctx, "print formula sheet")

	reloaded := newTaskStack(store)
	tasks, err := reloaded.List(ctx)
	if err != nil {
		t.Fatalf("list after reload: %v", err)
	}
	if !reflect.DeepEqual(tasks, []string{"pack calculator", "print formula sheet"}) {
		t.Fatalf("tasks after reload = %v", tasks)
	}
}
