package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/widgets"
)

type previewOptions struct {
	loadDelay time.Duration
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the component set interactively",
		Long:  `Render every installed component with sample props. Press tab to switch library, r to retry failed lazy loads and q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.ErrOrStderr(), rootFlags, widgets.Options{LoadDelay: opts.loadDelay})
			if err != nil {
				return err
			}

			m := newPreviewModel(app, terminalWidth(cmd.OutOrStdout()))
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				app.log.Error(err, "preview execution failed")
				return fmt.Errorf("failed to run preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.loadDelay, "load-delay", 600*time.Millisecond, "Simulated latency for lazily loaded widgets")

	return cmd
}

var (
	previewTitleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	previewLabelStyle  = lipgloss.NewStyle().Faint(true)
	previewStatusStyle = lipgloss.NewStyle().Italic(true)
)

type previewModel struct {
	app     *appContext
	libs    []library.ID
	current int
	width   int

	spinner spinner.Model
	pending map[string]bool
	status  string
}

func newPreviewModel(app *appContext, width int) previewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	current := 0
	libs := library.All()
	for i, id := range libs {
		if id == app.registry.DefaultAdapter() {
			current = i
		}
	}

	return previewModel{
		app:     app,
		libs:    libs,
		current: current,
		width:   width,
		spinner: s,
		pending: make(map[string]bool),
	}
}

func (m previewModel) library() library.ID {
	return m.libs[m.current]
}

func (m previewModel) Init() tea.Cmd {
	return m.loadCmds()
}

// loadCmds starts a load for every lazy widget available in the selected
// library that is neither loaded nor already in flight.
func (m previewModel) loadCmds() tea.Cmd {
	id := m.library()
	var cmds []tea.Cmd
	for _, lc := range m.app.widgets.Lazy() {
		key := pendingKey(lc.Name(), id)
		if lc.Loaded(id) || m.pending[key] || !m.app.registry.IsAdapterAvailable(lc.Name(), id) {
			continue
		}
		m.pending[key] = true
		cmds = append(cmds, lc.LoadCmd(id))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(append(cmds, m.spinner.Tick)...)
}

func pendingKey(name string, id library.ID) string {
	return name + "/" + id.String()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.current = (m.current + 1) % len(m.libs)
			m.status = ""
			return m, m.loadCmds()
		case "shift+tab", "left", "h":
			m.current = (m.current + len(m.libs) - 1) % len(m.libs)
			m.status = ""
			return m, m.loadCmds()
		case "r":
			for _, lc := range m.app.widgets.Lazy() {
				lc.Retry(m.library())
			}
			m.status = "retrying lazy widgets"
			return m, m.loadCmds()
		}
		return m, nil

	case adapter.LoadedMsg:
		delete(m.pending, pendingKey(msg.Name, msg.Library))
		if msg.Err != nil {
			m.status = fmt.Sprintf("%s (%s) failed to load: %v", msg.Name, msg.Library, msg.Err)
		} else {
			m.status = fmt.Sprintf("%s (%s) loaded", msg.Name, msg.Library)
		}
		return m, nil

	case spinner.TickMsg:
		if len(m.pending) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m previewModel) View() string {
	ctx := m.app.renderContext(m.width)
	id := m.library()

	var b strings.Builder
	tabs := make([]string, 0, len(m.libs))
	for i, lib := range m.libs {
		if i == m.current {
			tabs = append(tabs, "["+lib.String()+"]")
			continue
		}
		tabs = append(tabs, " "+lib.String()+" ")
	}
	b.WriteString(previewTitleStyle.Render("Library: " + strings.Join(tabs, " ")))
	b.WriteString("\n\n")

	for _, name := range widgets.Names() {
		comp, _ := m.app.widgets.Lookup(name)
		b.WriteString(previewLabelStyle.Render(name))
		b.WriteString("\n")
		b.WriteString(comp.Render(ctx, sampleProps(name).WithAdapter(id)))
		b.WriteString("\n\n")
	}

	footer := "tab: next library · r: retry · q: quit"
	if len(m.pending) > 0 {
		footer = m.spinner.View() + " loading… · " + footer
	}
	if m.status != "" {
		footer = m.status + "\n" + footer
	}
	b.WriteString(previewStatusStyle.Render(footer))
	return b.String()
}

func sampleProps(name string) adapter.Props {
	switch name {
	case widgets.Button:
		return adapter.P("variant", "danger", "focused", true).WithChildren("E-Stop")
	case widgets.Input:
		return adapter.P("label", "Feed rate", "placeholder", "mm/min", "value", "1200")
	case widgets.Select:
		return adapter.P("label", "Units", "options", []string{"mm", "inch"}, "value", "mm")
	case widgets.Card:
		return adapter.P("title", "Spindle").WithChildren("12000 rpm · load 34%")
	case widgets.Alert:
		return adapter.P("variant", "warning", "title", "Coolant").WithChildren("Level below 20%")
	case widgets.Progress:
		return adapter.P("label", "Job", "value", 0.62)
	case widgets.Modal:
		return adapter.P("title", "Home all axes?", "actions", []string{"Home", "Cancel"}).
			WithChildren("The machine will move to its reference position.")
	default:
		return adapter.Props{}
	}
}
