package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"studyplan/internal/bootstrap"
	calendarinadapter "studyplan/internal/modules/calendar/adapter/in"
	examdto "studyplan/internal/modules/exam/dto"
	"studyplan/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Student exam and task planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default $HOME/.studyplan)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newExamCmd(&dataDir))
	root.AddCommand(newTaskCmd(&dataDir))
	root.AddCommand(newCalendarCmd(&dataDir))
	root.AddCommand(newThemeCmd(&dataDir))
	root.AddCommand(newBackupCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	var fresh bool
	tui := &cobra.Command{
		Use:   "tui",
		Short: "Run the studyplan terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app, fresh)
		},
	}
	tui.Flags().BoolVar(&fresh, "fresh", false, "open on the dashboard instead of the last viewed section")
	return tui
}

func newExamCmd(dataDir *string) *cobra.Command {
	exam := &cobra.Command{Use: "exam", Short: "Exam management"}

	var code, date, timeStr, notes string
	add := &cobra.Command{
		Use:   "add --code <code> --date <yyyy-mm-dd>",
		Short: "Add an exam",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ExamCLI.Create(context.Background(), code, date, timeStr, notes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s on %s (id %d)\n", out.Code, out.Date, out.ID)
			return nil
		},
	}
	add.Flags().StringVar(&code, "code", "", "course code")
	add.Flags().StringVar(&date, "date", "", "exam date (yyyy-mm-dd)")
	add.Flags().StringVar(&timeStr, "time", "", "exam time (optional)")
	add.Flags().StringVar(&notes, "notes", "", "free-form notes (optional)")

	exam.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all exams",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			exams, err := app.ExamCLI.List(context.Background())
			if err != nil {
				return err
			}
			printExams(cmd, exams)
			return nil
		},
	})

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one exam",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ExamCLI.Get(context.Background(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %d\ncode: %s\ndate: %s\ntime: %s\nnotes: %s\n", out.ID, out.Code, out.Date, out.Time, out.Notes)
			return nil
		},
	}
	exam.AddCommand(show)

	var uCode, uDate, uTime, uNotes string
	update := &cobra.Command{
		Use:   "update <id> --code <code> --date <yyyy-mm-dd>",
		Short: "Replace an exam's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ExamCLI.Update(context.Background(), id, uCode, uDate, uTime, uNotes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s on %s (id %d)\n", out.Code, out.Date, out.ID)
			return nil
		},
	}
	update.Flags().StringVar(&uCode, "code", "", "course code")
	update.Flags().StringVar(&uDate, "date", "", "exam date (yyyy-mm-dd)")
	update.Flags().StringVar(&uTime, "time", "", "exam time (optional)")
	update.Flags().StringVar(&uNotes, "notes", "", "free-form notes (optional)")
	exam.AddCommand(update)

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id> --yes",
		Short: "Delete an exam",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.ExamCLI.Delete(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted exam %d\n", id)
			return nil
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	exam.AddCommand(del)

	var onDate string
	on := &cobra.Command{
		Use:   "on --date <yyyy-mm-dd>",
		Short: "List exams on a given date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(onDate) == "" {
				return fmt.Errorf("--date is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			exams, err := app.ExamCLI.OnDate(context.Background(), onDate)
			if err != nil {
				return err
			}
			printExams(cmd, exams)
			return nil
		},
	}
	on.Flags().StringVar(&onDate, "date", "", "date to inspect (yyyy-mm-dd)")
	exam.AddCommand(on)

	exam.AddCommand(add)
	return exam
}

func printExams(cmd *cobra.Command, exams []examdto.ExamOutput) {
	if len(exams) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no exams")
		return
	}
	for _, e := range exams {
		line := fmt.Sprintf("%d\t%s\t%s", e.ID, e.Date, e.Code)
		if e.Time != "" {
			line += "\t" + e.Time
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid exam id %q", raw)
	}
	return id, nil
}

func newTaskCmd(dataDir *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Quick task list"}

	task.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Append a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.Append(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !out.Added {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to add")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %q (%d total)\n", out.Text, out.Count)
			return nil
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tasks in order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			tasks, err := app.TaskCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}
			for i, t := range tasks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, t)
			}
			return nil
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "del <index>",
		Short: "Delete the task at a list index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task index %q", args[0])
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.TaskCLI.DeleteAt(context.Background(), index); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d\n", index)
			return nil
		},
	})

	return task
}

func newCalendarCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Print the current month with exam markers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			month, err := app.CalendarCLI.CurrentMonth(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), calendarinadapter.RenderText(month, bootstrap.WeekdayHeader(app.Config.WeekStart)))
			return nil
		},
	}
}

func newThemeCmd(dataDir *string) *cobra.Command {
	theme := &cobra.Command{Use: "theme", Short: "Color theme preferences"}

	theme.AddCommand(&cobra.Command{
		Use:   "set <preset>",
		Short: "Apply a preset theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ThemeCLI.SetPreset(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", out.Name)
			return nil
		},
	})

	var bg, fg string
	custom := &cobra.Command{
		Use:   "custom --bg <#rrggbb> --text <#rrggbb>",
		Short: "Apply custom colors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ThemeCLI.SetCustom(context.Background(), bg, fg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s bg=%s text=%s\n", out.Name, out.Background, out.Text)
			return nil
		},
	}
	custom.Flags().StringVar(&bg, "bg", "", "background color")
	custom.Flags().StringVar(&fg, "text", "", "text color")
	theme.AddCommand(custom)

	theme.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the active theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ThemeCLI.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\nbackground: %s\ntext: %s\nborder: %s\n", out.Name, out.Background, out.Text, out.Border)
			return nil
		},
	})

	var yes bool
	reset := &cobra.Command{
		Use:   "reset --yes",
		Short: "Reset to the default theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ThemeCLI.Reset(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", out.Name)
			return nil
		},
	}
	reset.Flags().BoolVar(&yes, "yes", false, "confirm reset")
	theme.AddCommand(reset)

	return theme
}

func newBackupCmd(dataDir *string) *cobra.Command {
	backup := &cobra.Command{Use: "backup", Short: "Export and import planner data"}

	var outPath string
	export := &cobra.Command{
		Use:   "export --out <path>",
		Short: "Write all planner data to a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(outPath) == "" {
				return fmt.Errorf("--out is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			sum, err := app.BackupCLI.Export(context.Background(), outPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d exams, %d tasks to %s\n", sum.ExamCount, sum.TaskCount, outPath)
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "destination file")
	backup.AddCommand(export)

	var inPath string
	var yes bool
	imp := &cobra.Command{
		Use:   "import --in <path> --yes",
		Short: "Replace all planner data from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(inPath) == "" {
				return fmt.Errorf("--in is required")
			}
			if !yes {
				return fmt.Errorf("import replaces all current data; re-run with --yes")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			sum, err := app.BackupCLI.Import(context.Background(), inPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d exams, %d tasks from %s\n", sum.ExamCount, sum.TaskCount, inPath)
			return nil
		},
	}
	imp.Flags().StringVar(&inPath, "in", "", "backup file")
	imp.Flags().BoolVar(&yes, "yes", false, "confirm replacing current data")
	backup.AddCommand(imp)

	return backup
}
