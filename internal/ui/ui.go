package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/playaxis/internal/axis"
	"github.com/desertthunder/playaxis/internal/playback"
)

// Model represents the transport surface state.
type Model struct {
	ctx        context.Context
	controller *playback.Controller
	palette    *Palette
	settings   axis.Settings
	points     int

	status  playback.Status
	cursor  int
	caption string

	width  int
	height int
	help   help.Model
	keys   keyMap
}

// controllerEventMsg wraps a [playback.Event] as a tea message.
type controllerEventMsg playback.Event

// NewModel creates a new transport surface over the given controller.
//
// The controller must already hold its view model; the model snapshots the
// settings and point count once since a standalone run has no further data
// updates.
func NewModel(ctx context.Context, controller *playback.Controller) *Model {
	var settings axis.Settings
	points := 0
	if vm := controller.ViewModel(); vm != nil {
		settings = vm.Settings
		points = len(vm.DataPoints)
	}

	return &Model{
		ctx:        ctx,
		controller: controller,
		palette:    NewPalette(settings),
		settings:   settings,
		points:     points,
		status:     controller.Status(),
		cursor:     controller.Cursor(),
		caption:    controller.Caption(),
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init starts listening for controller events.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case controllerEventMsg:
		m.applyEvent(playback.Event(msg))
		return m, m.waitForEvent()
	}

	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.controller.Stop()
		return m, tea.Quit
	case " ":
		if m.status == playback.Playing {
			m.controller.Pause()
		} else {
			m.controller.Play()
		}
	case "s":
		m.controller.Stop()
	case "left", "h":
		m.controller.Step(-1)
	case "right", "l":
		m.controller.Step(1)
	}
	return m, nil
}

// applyEvent folds one controller event into the view state.
func (m *Model) applyEvent(ev playback.Event) {
	switch ev.Kind {
	case playback.EventStatus:
		m.status = ev.Status
		m.cursor = ev.Index
	case playback.EventStep:
		m.status = ev.Status
		m.cursor = ev.Index
		m.caption = ev.Category
	case playback.EventCaption:
		m.caption = ""
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.controller.Events()
		if !ok {
			return nil
		}
		return controllerEventMsg(ev)
	}
}

// View renders the transport buttons, caption, and help footer.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")

	if m.settings.Caption.Show {
		b.WriteString(m.palette.Caption(m.caption, m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusLine())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderButtons() string {
	prominent := m.prominentButtons()

	parts := make([]string, 0, len(buttonOrder))
	for _, name := range buttonOrder {
		parts = append(parts, m.palette.Button(name, prominent[name]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// prominentButtons reports which controls are lit for the current status:
// playing dims play and the steppers; paused and stopped invert that.
func (m *Model) prominentButtons() map[string]bool {
	switch m.status {
	case playback.Playing:
		return map[string]bool{"pause": true, "stop": true}
	case playback.Paused:
		return map[string]bool{"play": true, "stop": true, "previous": true, "next": true}
	default:
		return map[string]bool{"play": true}
	}
}

func (m *Model) renderStatusLine() string {
	position := ""
	if m.points > 0 && m.status != playback.Stopped {
		position = fmt.Sprintf(" %d/%d", m.cursor+1, m.points)
	}
	return m.palette.help.Render(fmt.Sprintf("%s%s", m.status, position))
}
