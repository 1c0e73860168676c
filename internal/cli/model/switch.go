// Package model holds the bubbletea models of the interactive commands.
package model

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/darkswitch/internal/application/port"
	"github.com/bnema/darkswitch/internal/cli/styles"
	"github.com/bnema/darkswitch/internal/domain/entity"
	"github.com/bnema/darkswitch/internal/logging"
	"github.com/bnema/darkswitch/internal/ui/theme"
)

const transitionTick = 50 * time.Millisecond

// Switcher is the part of theme.DarkSwitch the model drives.
type Switcher interface {
	Toggle()
	Enable()
	Disable()
	SetMode(isDark bool)
	Snapshot() theme.State
}

// ChangeMsg reports a mode change made outside the model, such as a
// system color scheme change.
type ChangeMsg struct {
	IsDark bool
}

type transitionTickMsg struct{}

// SwitchModel is the interactive dark/light switch.
type SwitchModel struct {
	sw      Switcher
	root    port.MarkerRoot
	themes  styles.Themes
	keys    styles.SwitchKeyMap
	changes <-chan bool

	state    theme.State
	showAll  bool
	width    int
	quitting bool

	ctx context.Context
}

// NewSwitchModel creates the model. changes may be nil; root may be nil.
func NewSwitchModel(ctx context.Context, sw Switcher, root port.MarkerRoot, themes styles.Themes, changes <-chan bool) SwitchModel {
	return SwitchModel{
		sw:      sw,
		root:    root,
		themes:  themes,
		keys:    styles.DefaultSwitchKeyMap(),
		changes: changes,
		state:   sw.Snapshot(),
		ctx:     ctx,
	}
}

// Init implements tea.Model.
func (m SwitchModel) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), m.tickIfTransitioning())
}

func (m SwitchModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		isDark, ok := <-ch
		if !ok {
			return nil
		}
		return ChangeMsg{IsDark: isDark}
	}
}

func (m SwitchModel) tickIfTransitioning() tea.Cmd {
	if !m.state.Transitioning {
		return nil
	}
	return tea.Tick(transitionTick, func(time.Time) tea.Msg {
		return transitionTickMsg{}
	})
}

// Update implements tea.Model.
func (m SwitchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case ChangeMsg:
		m.state = m.sw.Snapshot()
		return m, tea.Batch(m.waitForChange(), m.tickIfTransitioning())
	case transitionTickMsg:
		m.state = m.sw.Snapshot()
		return m, m.tickIfTransitioning()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m SwitchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showAll = !m.showAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.sw.Toggle()
	case key.Matches(msg, m.keys.Dark):
		m.sw.Enable()
	case key.Matches(msg, m.keys.Light):
		m.sw.Disable()
	case key.Matches(msg, m.keys.System):
		system := m.sw.Snapshot().SystemTheme
		if system != entity.SystemThemeDark && system != entity.SystemThemeLight {
			log.Debug().Str("system_theme", system.String()).Msg("no system reading to apply")
			return m, nil
		}
		m.sw.SetMode(system == entity.SystemThemeDark)
	default:
		return m, nil
	}

	m.state = m.sw.Snapshot()
	log.Debug().Bool("is_dark", m.state.IsDark).Msg("mode changed from tui")
	return m, m.tickIfTransitioning()
}

// State returns the last snapshot the model rendered.
func (m SwitchModel) State() theme.State {
	return m.state
}

// View implements tea.Model.
func (m SwitchModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.themes.For(m.state.IsDark)
	status := styles.NewStatusRenderer(t)

	system := m.state.SystemTheme.String()
	if m.state.SystemTheme == entity.SystemThemeNone {
		system = "not observed"
	}

	var markers string
	if m.root != nil {
		markers = strings.Join(m.root.Markers(), " ")
	}

	lines := []string{
		t.Title.Render("darkswitch") + "  " + status.ModeBadge(m.state.IsDark),
		"",
		t.Subtle.Render("system  ") + t.Normal.Render(system),
	}
	if markers != "" {
		lines = append(lines, t.Subtle.Render("markers ")+t.Normal.Render(markers))
	}
	if m.state.Transitioning {
		lines = append(lines, t.WarningStyle.Render("transitioning"))
	}

	h := styles.NewHelpModel(t)
	h.ShowAll = m.showAll
	h.Width = m.width

	body := t.Box.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, body, h.View(m.keys)) + "\n"
}
