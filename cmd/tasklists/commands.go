package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sandeepkv93/tasklists/internal/commands"
	"github.com/sandeepkv93/tasklists/internal/export"
	"github.com/sandeepkv93/tasklists/internal/migrate"
	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/storage"
	"github.com/sandeepkv93/tasklists/internal/tui"
	"github.com/sandeepkv93/tasklists/internal/update"
	"github.com/sandeepkv93/tasklists/internal/views"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI (default)",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var dispatchCmd = &cobra.Command{
	Use:   "dispatch ACTION_JSON",
	Short: "Apply one reducer action and print the resulting state",
	Long: `Apply one action given as {"type": "...", "payload": ...} and print the
persisted state as JSON. A rejected action exits non-zero with its message.`,
	Args: cobra.ExactArgs(1),
	RunE: withSession(runDispatch),
}

var runCmd = &cobra.Command{
	Use:   "run COMMAND",
	Short: "Run a command palette command such as \"/add Buy milk !high\"",
	Args:  cobra.MinimumNArgs(1),
	RunE:  withSession(runPalette),
}

var addCmd = &cobra.Command{
	Use:   "add TITLE...",
	Short: "Add a task to the active list or --list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  withSession(runAdd),
}

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Print all lists",
	Args:  cobra.NoArgs,
	RunE:  withSession(runLists),
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a view to stdout without changing stored preferences",
	Args:  cobra.NoArgs,
	RunE:  withSession(runShow),
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored state as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE:  withSession(runExport),
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Validate FILE and replace the stored state with it",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(runImport),
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade stored data to the current schema and persist it",
	Args:  cobra.NoArgs,
	RunE:  withSession(runMigrate),
}

var (
	addPriority string
	addDue      string
	addList     string
	addNotes    string

	showSort    string
	showList    string
	showView    string
	showSummary string
	showMonth   string
	showByDue   bool

	exportFormat string
	exportOutput string
	importFormat string
)

func init() {
	rootCmd.AddCommand(tuiCmd, dispatchCmd, runCmd, addCmd, listsCmd, showCmd, exportCmd, importCmd, migrateCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: high|medium|low (default medium)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date: today|tomorrow|YYYY-MM-DD|YYYY-MM-DDTHH:MM")
	addCmd.Flags().StringVarP(&addList, "list", "l", "", "Target list name (default active list)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Markdown notes")

	showCmd.Flags().StringVar(&showSort, "sort", "", "Sort option: dateAdded|priority|alphabetical")
	showCmd.Flags().StringVarP(&showList, "list", "l", "", "List to show (default active list)")
	showCmd.Flags().StringVar(&showView, "view", "", "View: list|dashboard|calendar (default stored view)")
	showCmd.Flags().StringVar(&showSummary, "summary", "", "Show a summary instead: open|overdue|dueToday")
	showCmd.Flags().BoolVar(&showByDue, "by-due", false, "List tasks soonest due first, undated last")
	showCmd.Flags().StringVar(&showMonth, "month", "", "Calendar month as YYYY-MM (default current month)")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatJSON, "Output format: json|yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to FILE instead of stdout")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: json|yaml (default from extension)")
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return tui.Run(cmd.Context(), s.container, s.cfg, s.logger)
}

func runDispatch(cmd *cobra.Command, args []string, s *session) error {
	msg, err := update.DecodeAction([]byte(args[0]))
	if err != nil {
		return err
	}
	state, err := s.container.Apply(msg)
	if err != nil {
		return err
	}
	return export.Write(cmd.OutOrStdout(), state, export.FormatJSON)
}

func runPalette(cmd *cobra.Command, args []string, s *session) error {
	parsed, err := commands.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	res, err := commands.Execute(parsed, s.container.CommandHandlers(time.Now))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}

func runAdd(cmd *cobra.Command, args []string, s *session) error {
	now := time.Now()
	due, err := commands.ParseDue(addDue, now, now.Location())
	if err != nil {
		return err
	}
	msg := update.AddTaskMsg{
		Title:       strings.Join(args, " "),
		Description: addNotes,
		Priority:    model.Priority(strings.ToLower(addPriority)),
		DueDate:     due,
	}
	if addList != "" {
		list, ok := s.container.State().FindListByName(addList)
		if !ok {
			return fmt.Errorf("unknown list %q", addList)
		}
		msg.ListID = list.ID
	}
	state, err := s.container.Apply(msg)
	if err != nil {
		return err
	}
	added := state.Tasks[0]
	fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s\n", added.ID, added.Title)
	return nil
}

func runLists(cmd *cobra.Command, _ []string, s *session) error {
	state := s.container.State()
	if len(state.Lists) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no lists")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tNAME\tCOLOR\tOPEN\tSORT")
	for _, item := range views.BuildSidebar(state).Lists {
		marker := ""
		if item.Active {
			marker = "*"
		}
		list, _ := state.FindListByName(item.Name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", marker, item.Name, item.Color, item.Open, state.SortPreference(list.ID))
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, _ []string, s *session) error {
	now := time.Now()
	state := s.container.State()
	if showList != "" {
		list, ok := state.FindListByName(showList)
		if !ok {
			return fmt.Errorf("unknown list %q", showList)
		}
		state.ActiveListID = model.StringPtr(list.ID)
	}
	if showSort != "" {
		opt := model.SortOption(showSort)
		if !opt.IsValid() {
			return fmt.Errorf("unknown sort option %q", showSort)
		}
		if active, ok := state.ActiveList(); ok {
			state.SortPreferences[active.ID] = opt
		}
	}

	out := cmd.OutOrStdout()
	if showSummary != "" {
		kind := model.SummaryKind(showSummary)
		if !kind.IsValid() {
			return fmt.Errorf("unknown summary %q", showSummary)
		}
		fmt.Fprintln(out, views.RenderSummary(views.BuildSummary(state, kind, now)))
		return nil
	}

	view := state.ActiveView
	if showByDue {
		view = model.ViewList
	}
	if showView != "" {
		view = model.View(showView)
		if !view.IsValid() {
			return fmt.Errorf("unknown view %q", showView)
		}
	}
	switch view {
	case model.ViewList:
		fmt.Fprintln(out, views.RenderTaskList(views.BuildTaskList(state, now, showByDue)))
	case model.ViewCalendar:
		month := now
		if showMonth != "" {
			parsed, err := time.ParseInLocation("2006-01", showMonth, now.Location())
			if err != nil {
				return fmt.Errorf("parse --month: %w", err)
			}
			month = parsed
		}
		fmt.Fprintln(out, views.RenderCalendar(views.BuildCalendar(state, month.Year(), month.Month(), now)))
	default:
		fmt.Fprintln(out, views.RenderDashboard(views.BuildDashboard(state, now)))
	}
	return nil
}

func runExport(cmd *cobra.Command, _ []string, s *session) error {
	if exportOutput == "" {
		return export.Write(cmd.OutOrStdout(), s.container.State(), exportFormat)
	}
	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := export.Write(f, s.container.State(), exportFormat); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runImport(cmd *cobra.Command, args []string, s *session) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	format := importFormat
	if format == "" {
		format = export.FormatFromPath(args[0])
	}
	raw, err := export.ToJSON(data, format)
	if err != nil {
		return err
	}
	if err := migrate.ValidateImport(raw); err != nil {
		return err
	}
	state, err := migrate.New(migrate.WithLogger(s.logger)).Decode(raw)
	if err != nil {
		return err
	}
	if _, err := s.container.Apply(update.LoadStateMsg{State: state}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d lists, %d tasks\n", len(state.Lists), len(state.Tasks))
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string, s *session) error {
	state := s.container.State()
	raw, err := storage.EncodeState(state)
	if err != nil {
		return err
	}
	if err := s.gateway.SaveRaw(storage.StateKey, raw); err != nil {
		return fmt.Errorf("persist migrated state: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d: %d lists, %d tasks\n", storage.SchemaVersion, len(state.Lists), len(state.Tasks))
	return nil
}
