package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/ecscan/asl"
	"github.com/wippyai/ecscan/layout"
	"github.com/wippyai/ecscan/view"
)

type monitorModel struct {
	mem       view.Memory
	prev      map[string]uint32
	changed   map[string]bool
	filename  string
	region    asl.Region
	fields    []layout.Field
	values    []layout.Value
	filter    textinput.Model
	interval  time.Duration
	samples   int
	filtering bool
}

type sampleMsg struct {
	values []layout.Value
}

type tickMsg time.Time

func newMonitorModel(filename string, region asl.Region, fields []layout.Field, mem view.Memory, interval time.Duration) *monitorModel {
	ti := textinput.New()
	ti.Placeholder = "field name"
	ti.Prompt = "/"
	ti.Width = 20

	return &monitorModel{
		mem:      mem,
		prev:     make(map[string]uint32),
		changed:  make(map[string]bool),
		filename: filename,
		region:   region,
		fields:   fields,
		filter:   ti,
		interval: interval,
	}
}

func (m *monitorModel) Init() tea.Cmd {
	return m.sample
}

// sample reads every monitored field once.
func (m *monitorModel) sample() tea.Msg {
	values := make([]layout.Value, len(m.fields))
	for i, f := range m.fields {
		v, err := layout.ReadField(f, m.mem)
		values[i] = layout.Value{Name: f.Name, Value: v, Err: err}
	}
	return sampleMsg{values: values}
}

func (m *monitorModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				m.filtering = false
				m.filter.Blur()
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "/":
			m.filtering = true
			return m, m.filter.Focus()
		case "esc":
			m.filter.SetValue("")
		}

	case sampleMsg:
		m.record(msg.values)
		return m, m.tick()

	case tickMsg:
		return m, m.sample
	}

	return m, nil
}

// record stores a sample and marks fields whose value moved since the last one.
func (m *monitorModel) record(values []layout.Value) {
	m.changed = make(map[string]bool)
	for _, v := range values {
		if v.Err != nil {
			continue
		}
		if old, seen := m.prev[v.Name]; seen && old != v.Value {
			m.changed[v.Name] = true
		}
		m.prev[v.Name] = v.Value
	}
	m.values = values
	m.samples++
}

func (m *monitorModel) visible() []layout.Value {
	q := strings.ToUpper(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		return m.values
	}
	var out []layout.Value
	for _, v := range m.values {
		if strings.Contains(strings.ToUpper(v.Name), q) {
			out = append(out, v)
		}
	}
	return out
}

func (m *monitorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("EC RAM Monitor"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s at 0x%08X, %d bytes, every %s, sample %d",
		m.region.Name, m.region.Address, m.region.Size, m.interval, m.samples)))
	b.WriteString("\n\n")

	if m.samples == 0 {
		b.WriteString("Reading...\n")
		return b.String()
	}

	width := 4
	for _, f := range m.fields {
		width = max(width, len(f.Name))
	}

	for _, v := range m.visible() {
		name := nameStyle.Render(fmt.Sprintf("%-*s", width, v.Name))
		switch {
		case v.Err != nil:
			b.WriteString(name + "  " + errorStyle.Render(v.Err.Error()))
		case m.changed[v.Name]:
			b.WriteString(name + "  " + changedStyle.Render(fmt.Sprintf("0x%08X %10d", v.Value, v.Value)))
		default:
			b.WriteString(name + "  " + valueStyle.Render(fmt.Sprintf("0x%08X %10d", v.Value, v.Value)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	if m.filtering {
		b.WriteString(helpStyle.Render("enter keep filter • esc clear"))
	} else {
		b.WriteString(helpStyle.Render("/ filter • esc clear filter • q quit"))
	}

	return b.String()
}

func runMonitor(m *monitorModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
