package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkswitch/internal/cli/styles"
	"github.com/bnema/darkswitch/internal/domain/entity"
	"github.com/bnema/darkswitch/internal/infrastructure/clock"
	"github.com/bnema/darkswitch/internal/infrastructure/config"
	"github.com/bnema/darkswitch/internal/infrastructure/marker"
	"github.com/bnema/darkswitch/internal/ui/theme"
)

type staticPreference struct{ dark bool }

func (p staticPreference) PrefersDark() (bool, bool)         { return p.dark, true }
func (p staticPreference) Subscribe(func(bool, bool)) func() { return func() {} }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, systemDark bool) (SwitchModel, *theme.DarkSwitch, *marker.ClassList, *clock.Fake) {
	t.Helper()
	root := marker.NewClassList()
	fake := clock.NewFake(time.Unix(0, 0))

	opts := theme.DefaultOptions()
	opts.Clock = fake
	opts.Environment = &theme.Environment{Root: root, Preference: staticPreference{dark: systemDark}}
	sw := theme.NewDarkSwitch(context.Background(), opts)
	t.Cleanup(sw.Close)

	m := NewSwitchModel(context.Background(), sw, root, styles.NewThemes(config.DefaultConfig()), nil)
	return m, sw, root, fake
}

func TestSwitchModel_ToggleKey(t *testing.T) {
	m, sw, root, _ := newTestModel(t, false)
	require.False(t, sw.IsDark())
	assert.Contains(t, m.View(), "light")

	updated, cmd := m.Update(runeKey('t'))
	m = updated.(SwitchModel)

	assert.True(t, sw.IsDark())
	assert.True(t, m.State().IsDark)
	assert.True(t, root.HasMarker("dark"))
	assert.NotNil(t, cmd, "transition tick is scheduled")

	view := m.View()
	assert.Contains(t, view, "dark")
	assert.Contains(t, view, "transitioning")
}

func TestSwitchModel_DarkLightKeys(t *testing.T) {
	m, sw, _, _ := newTestModel(t, false)

	updated, _ := m.Update(runeKey('d'))
	m = updated.(SwitchModel)
	assert.True(t, sw.IsDark())

	updated, _ = m.Update(runeKey('l'))
	m = updated.(SwitchModel)
	assert.False(t, sw.IsDark())
	assert.False(t, m.State().IsDark)
}

func TestSwitchModel_SystemKey(t *testing.T) {
	m, sw, _, _ := newTestModel(t, true)
	require.False(t, sw.IsDark())
	require.Equal(t, entity.SystemThemeDark, sw.SystemTheme())

	updated, _ := m.Update(runeKey('s'))
	m = updated.(SwitchModel)
	assert.True(t, m.State().IsDark)
}

func TestSwitchModel_TransitionTickClearsFlag(t *testing.T) {
	m, _, _, fake := newTestModel(t, false)

	updated, _ := m.Update(runeKey('t'))
	m = updated.(SwitchModel)
	require.True(t, m.State().Transitioning)

	fake.Advance(theme.DefaultTransitionDuration)
	updated, cmd := m.Update(transitionTickMsg{})
	m = updated.(SwitchModel)
	assert.False(t, m.State().Transitioning)
	assert.Nil(t, cmd)
}

func TestSwitchModel_ChangeMsg(t *testing.T) {
	changes := make(chan bool, 1)
	root := marker.NewClassList()
	opts := theme.DefaultOptions()
	opts.DisableTransition = true
	sw := theme.NewDarkSwitch(context.Background(), opts)
	defer sw.Close()

	m := NewSwitchModel(context.Background(), sw, root, styles.NewThemes(nil), changes)
	sw.Enable()

	updated, cmd := m.Update(ChangeMsg{IsDark: true})
	m = updated.(SwitchModel)
	assert.True(t, m.State().IsDark)
	require.NotNil(t, cmd, "keeps listening for changes")
}

func TestSwitchModel_Quit(t *testing.T) {
	m, _, _, _ := newTestModel(t, false)

	updated, cmd := m.Update(runeKey('q'))
	m = updated.(SwitchModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
