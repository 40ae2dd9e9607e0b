package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	backupinadapter "studyplan/internal/modules/backup/adapter/in"
	backupusecase "studyplan/internal/modules/backup/usecase"
	calendarinadapter "studyplan/internal/modules/calendar/adapter/in"
	calendardomain "studyplan/internal/modules/calendar/domain"
	calendarusecase "studyplan/internal/modules/calendar/usecase"
	examinadapter "studyplan/internal/modules/exam/adapter/in"
	examoutadapter "studyplan/internal/modules/exam/adapter/out"
	examservice "studyplan/internal/modules/exam/service"
	examusecase "studyplan/internal/modules/exam/usecase"
	taskinadapter "studyplan/internal/modules/task/adapter/in"
	taskoutadapter "studyplan/internal/modules/task/adapter/out"
	taskservice "studyplan/internal/modules/task/service"
	taskusecase "studyplan/internal/modules/task/usecase"
	themeinadapter "studyplan/internal/modules/theme/adapter/in"
	themeoutadapter "studyplan/internal/modules/theme/adapter/out"
	themeusecase "studyplan/internal/modules/theme/usecase"
	"studyplan/internal/platform/clock"
	"studyplan/internal/platform/config"
	"studyplan/internal/platform/id"
	"studyplan/internal/platform/storage"
	uiapp "studyplan/internal/ui/app"
	uitheme "studyplan/internal/ui/theme"
)

type App struct {
	Config *config.Config

	ExamCLI     examinadapter.CLIHandler
	TaskCLI     taskinadapter.CLIHandler
	CalendarCLI calendarinadapter.CLIHandler
	ThemeCLI    themeinadapter.CLIHandler
	BackupCLI   backupinadapter.CLIHandler

	Sections *SectionStore
}

func New(cfg *config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.NewTimeMillis(clk)

	var store storage.Store
	switch cfg.Store {
	case "sqlite":
		s, err := storage.NewSQLiteSlotStore(cfg.DBPath())
		if err != nil {
			return nil, fmt.Errorf("open slot store: %w", err)
		}
		store = s
	default:
		store = storage.NewFileSlotStore(cfg.DataDir)
	}

	examRepo := examservice.NewRepository(ids, examoutadapter.NewSlotCollectionStore(store))
	examUC := examusecase.NewInteractor(examRepo)

	taskRepo := taskservice.NewRepository(taskoutadapter.NewSlotCollectionStore(store))
	taskUC := taskusecase.NewInteractor(taskRepo)

	calendarUC := calendarusecase.NewInteractor(examUC, clk, calendardomain.WeekStart(cfg.WeekStart))
	themeUC := themeusecase.NewInteractor(themeoutadapter.NewSlotPreferenceStore(store))
	backupUC := backupusecase.NewInteractor(store, examRepo, taskRepo)

	return &App{
		Config:      cfg,
		ExamCLI:     examinadapter.NewCLIHandler(examUC),
		TaskCLI:     taskinadapter.NewCLIHandler(taskUC),
		CalendarCLI: calendarinadapter.NewCLIHandler(calendarUC),
		ThemeCLI:    themeinadapter.NewCLIHandler(themeUC),
		BackupCLI:   backupinadapter.NewCLIHandler(backupUC),
		Sections:    NewSectionStore(store),
	}, nil
}

// WeekdayHeader returns the grid header labels for the configured week
// start.
func WeekdayHeader(weekStart string) []string {
	if weekStart == "sunday" {
		return []string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}
	}
	return []string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}
}

// RunTUI resolves the active theme and last-viewed section, then hands
// control to the Bubble Tea program.
func RunTUI(app *App, fresh bool) error {
	ctx := context.Background()

	current, err := app.ThemeCLI.Current(ctx)
	if err != nil {
		return fmt.Errorf("resolve theme: %w", err)
	}
	styles := uitheme.New(current.Name, current.Background, current.Text, current.Border)

	section := "dashboard"
	if !fresh {
		section = app.Sections.LoadSection(ctx)
	}

	model := uiapp.NewModel(
		app.TaskCLI,
		app.ExamCLI,
		app.CalendarCLI,
		app.ThemeCLI,
		app.BackupCLI,
		app.Sections,
		&styles,
		WeekdayHeader(app.Config.WeekStart),
		section,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
