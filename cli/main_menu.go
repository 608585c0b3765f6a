package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/refmatch/cereal"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showQuery
	showOutput
)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list     list.Model
	state    mainState
	settings settingsModel
	query    queryModel
	output   outputModel
	pub      *cereal.Publisher[cereal.MatchRequest]
	cmdPub   *cereal.Publisher[cereal.Command]
	sub      *cereal.Subscriber[cereal.MatchResponse]
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Query", desc: "Send a position or arc length to an active instance of refmatch", state: showQuery},
		item{title: "Watch", desc: "Watch the live output from refmatch", state: showOutput},
		item{title: "Settings", desc: "Modify settings of an active instance of refmatch", state: showSettings},
	}

	listDelegate := list.NewDefaultDelegate()
	pub := cereal.NewPublisher[cereal.MatchRequest](cereal.REFMATCH_IN)
	cmdPub := cereal.NewPublisher[cereal.Command](cereal.REFMATCH_CMD)
	sub := cereal.NewSubscriber[cereal.MatchResponse](cereal.REFMATCH_OUT, true)
	m := uiModel{
		list:     list.New(items, listDelegate, 0, 0),
		settings: getSettingsModel(),
		query:    getQueryModel(),
		pub:      &pub,
		cmdPub:   &cmdPub,
		sub:      &sub,
	}
	m.list.Title = "Refmatch Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEsc && m.state != showMenu {
			m.state = showMenu
			m.settings.state = showSettingsMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			if m.state == showQuery {
				return m, m.query.textInput.Focus()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		m.output, _ = m.output.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showQuery:
		m.query, cmd = m.query.Update(msg, &m)
	case showOutput:
		m.output, cmd = m.output.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showQuery:
		return m.query.View()
	case showOutput:
		return m.output.View()
	}
	return docStyle.Render(m.list.View())
}

func watch() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
