package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"studyplan/internal/modules/backup/dto"
	backupin "studyplan/internal/modules/backup/port/in"
	backupout "studyplan/internal/modules/backup/port/out"
	themedomain "studyplan/internal/modules/theme/domain"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/storage"
)

// Interactor reads and writes the persisted slots directly: a backup is
// a snapshot of the storage layout, not of any repository's view of it.
// Import invalidates the registered caches so live repositories re-read
// the rewritten slots instead of persisting their stale copies back.
type Interactor struct {
	store  storage.Store
	caches []backupout.CollectionCache
}

func NewInteractor(store storage.Store, caches ...backupout.CollectionCache) backupin.Usecase {
	return &Interactor{store: store, caches: caches}
}

func (i *Interactor) Export(ctx context.Context, path string) (dto.Summary, error) {
	doc := dto.Document{Exams: []dto.ExamRecord{}, Tasks: []string{}}
	if err := i.store.Load(ctx, storage.SlotExams, &doc.Exams); err != nil {
		return dto.Summary{}, err
	}
	if err := i.store.Load(ctx, storage.SlotTasks, &doc.Tasks); err != nil {
		return dto.Summary{}, err
	}
	colors := themedomain.Colors{}
	if err := i.store.Load(ctx, storage.SlotThemeColors, &colors); err != nil {
		return dto.Summary{}, err
	}
	if colors.Background != "" && colors.Text != "" {
		doc.Theme = &dto.ThemeColors{Background: colors.Background, Text: colors.Text}
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return dto.Summary{}, fmt.Errorf("marshal backup: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return dto.Summary{}, fmt.Errorf("write backup: %w", err)
	}
	return dto.Summary{
		Path:       path,
		ExamCount:  len(doc.Exams),
		TaskCount:  len(doc.Tasks),
		ThemeSaved: doc.Theme != nil,
	}, nil
}

func (i *Interactor) Import(ctx context.Context, path string) (dto.Summary, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return dto.Summary{}, fmt.Errorf("read backup: %w", err)
	}
	var doc dto.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return dto.Summary{}, fmt.Errorf("%w: %v", apperrors.ErrBadBackupFile, err)
	}
	if doc.Exams == nil {
		doc.Exams = []dto.ExamRecord{}
	}
	if doc.Tasks == nil {
		doc.Tasks = []string{}
	}

	if err := i.store.Save(ctx, storage.SlotExams, doc.Exams); err != nil {
		return dto.Summary{}, err
	}
	if err := i.store.Save(ctx, storage.SlotTasks, doc.Tasks); err != nil {
		return dto.Summary{}, err
	}
	if doc.Theme != nil {
		colors := themedomain.Colors{Background: doc.Theme.Background, Text: doc.Theme.Text}
		if err := i.store.Save(ctx, storage.SlotThemeColors, colors); err != nil {
			return dto.Summary{}, err
		}
		if err := i.store.Save(ctx, storage.SlotTheme, themedomain.CustomName); err != nil {
			return dto.Summary{}, err
		}
	} else {
		if err := i.store.Delete(ctx, storage.SlotThemeColors); err != nil {
			return dto.Summary{}, err
		}
		if err := i.store.Save(ctx, storage.SlotTheme, themedomain.DefaultPreset); err != nil {
			return dto.Summary{}, err
		}
	}

	for _, cache := range i.caches {
		cache.Invalidate()
	}

	return dto.Summary{
		Path:       path,
		ExamCount:  len(doc.Exams),
		TaskCount:  len(doc.Tasks),
		ThemeSaved: doc.Theme != nil,
	}, nil
}
