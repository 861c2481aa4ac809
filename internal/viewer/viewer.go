// Package viewer provides an interactive terminal UI over a parsed NCU
// report: a kernel selector followed by per-section tabs, with a summary
// tab collecting every advisory rule for the selected kernel.
package viewer

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/nsightful/internal/ncu"
)

// viewState represents the current state of the viewer's UI.
type viewState int

const (
	// viewKernelSelector is the state where the user picks a kernel.
	viewKernelSelector viewState = iota
	// viewSections is the state where the selected kernel's section tabs
	// are displayed.
	viewSections
)

// item represents a selectable kernel in the Bubble Tea list.
type item struct {
	title string
	desc  string
}

// Title returns the kernel name shown in the list.
func (i item) Title() string { return i.title }

// Description returns the per-kernel summary line shown in the list.
func (i item) Description() string { return i.desc }

// FilterValue returns the kernel name, used for filtering in the list.
func (i item) FilterValue() string { return i.title }

// tab is one selectable pane in the section view: a title and the raw
// Markdown it displays.
type tab struct {
	title    string
	markdown string
}

// model is the main application model for the Bubble Tea UI.
type model struct {
	report *ncu.Report
	state  viewState

	kernelList list.Model
	viewport   viewport.Model
	renderer   *glamour.TermRenderer

	selected  *ncu.Kernel
	tabs      []tab
	activeTab int

	width, height int
}

// newModel builds the initial viewer model from an aggregated report.
func newModel(report *ncu.Report) *model {
	items := make([]list.Item, 0, report.Len())
	for _, k := range report.Kernels() {
		sections := k.Sections()
		metrics, rules := 0, 0
		for _, s := range sections {
			metrics += len(s.Metrics())
			rules += len(s.Rules())
		}
		items = append(items, item{
			title: k.Name,
			desc:  fmt.Sprintf("%d sections, %d metrics, %d rules", len(sections), metrics, rules),
		})
	}

	kernelList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	kernelList.Title = "Select a Kernel"

	return &model{
		report:     report,
		state:      viewKernelSelector,
		kernelList: kernelList,
		viewport:   viewport.New(100, 5),
	}
}

// buildTabs assembles the tab set for a kernel: a Summary tab first when
// the kernel carries any rules, then one tab per section in display order.
func buildTabs(k *ncu.Kernel) []tab {
	var tabs []tab
	if summary := k.SummaryMarkdown(); summary != "" {
		tabs = append(tabs, tab{title: "Summary", markdown: summary})
	}
	for _, s := range k.Sections() {
		tabs = append(tabs, tab{title: s.Name, markdown: s.Markdown()})
	}
	if len(tabs) == 0 {
		tabs = append(tabs, tab{title: "Summary", markdown: "*No sections found for this kernel.*"})
	}
	return tabs
}

// Init initializes the Bubble Tea model. The viewer has no asynchronous
// work to start.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model. It
// handles window resizes, kernel selection, and tab navigation.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.state == viewSections {
				m.state = viewKernelSelector
				return m, nil
			}
		case "right", "tab":
			if m.state == viewSections && len(m.tabs) > 0 {
				m.activeTab = (m.activeTab + 1) % len(m.tabs)
				m.renderActiveTab()
				return m, nil
			}
		case "left", "shift+tab":
			if m.state == viewSections && len(m.tabs) > 0 {
				m.activeTab = (m.activeTab + len(m.tabs) - 1) % len(m.tabs)
				m.renderActiveTab()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.kernelList.SetSize(msg.Width-2, msg.Height-4)
		headerHeight := 4
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(max(msg.Width-4, 20)),
		)
		if m.state == viewSections {
			m.renderActiveTab()
		}
	}

	switch m.state {
	case viewKernelSelector:
		// An enter that confirms an in-progress filter belongs to the list,
		// not to kernel selection, so the state is read before the update.
		filtering := m.kernelList.FilterState() == list.Filtering
		m.kernelList, cmd = m.kernelList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" && !filtering {
			if it, ok := m.kernelList.SelectedItem().(item); ok {
				if k := m.report.Kernel(it.title); k != nil {
					m.selected = k
					m.tabs = buildTabs(m.selected)
					m.activeTab = 0
					m.state = viewSections
					m.renderActiveTab()
				}
			}
		}

	case viewSections:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// renderActiveTab renders the active tab's Markdown into the viewport,
// falling back to the raw Markdown when terminal rendering fails.
func (m *model) renderActiveTab() {
	if len(m.tabs) == 0 {
		return
	}
	markdown := m.tabs[m.activeTab].markdown
	content := markdown
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(markdown); err == nil {
			content = rendered
		} else {
			log.Printf("glamour render failed: %v", err)
		}
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// View renders the viewer UI based on its current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewKernelSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.kernelList.View())
	case viewSections:
		return m.sectionsView()
	default:
		return "Unknown state"
	}
}

// sectionsView renders the section tabs for the selected kernel: a styled
// header with the kernel name, the tab bar, the viewport, and a help line.
func (m *model) sectionsView() string {
	var builder strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	builder.WriteString(headerStyle.Render(fmt.Sprintf("Kernel: %s", m.selected.Name)) + "\n\n")

	builder.WriteString(m.tabBar() + "\n")
	builder.WriteString(m.viewport.View())

	help := lipgloss.NewStyle().Faint(true).Render(" (←/→ switch tab, esc back, q quit)")
	builder.WriteString("\n" + help)

	return builder.String()
}

// tabBar renders the tab titles with the active tab highlighted.
func (m *model) tabBar() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Faint(true).Padding(0, 1)

	titles := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.activeTab {
			titles[i] = activeStyle.Render(t.title)
		} else {
			titles[i] = inactiveStyle.Render(t.title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, titles...)
}

// Start launches the interactive report viewer for the given NCU CSV file.
// It parses the whole file up front, logs diagnostics to debug.log, and
// blocks until the UI exits.
func Start(csvPath string) {
	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		log.Fatalf("could not open log file: %v", err)
	}
	defer f.Close()

	file, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("could not open %s: %v", csvPath, err)
	}
	report, err := ncu.ParseCSV(file)
	file.Close()
	if err != nil {
		log.Fatalf("could not parse %s: %v", csvPath, err)
	}
	if report.Len() == 0 {
		log.Fatalf("no kernel data found in %s", csvPath)
	}

	m := newModel(report)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
