package in

import (
	"context"

	"studyplan/internal/modules/backup/dto"
)

type Usecase interface {
	Export(ctx context.Context, path string) (dto.Summary, error)
	// Import overwrites the exam, task, and theme slots wholesale.
	// Callers must confirm the destructive action before invoking it.
	Import(ctx context.Context, path string) (dto.Summary, error)
}
