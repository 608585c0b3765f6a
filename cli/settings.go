package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/refmatch/cereal"
	"pfeifer.dev/refmatch/utils"
)

type SettingType int

const (
	String SettingType = iota
	Int
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsSend
)

type settingsItem struct {
	title, desc string
	state       settingsState
	CommandType cereal.CommandType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	err          error
}

// command builds the command for a settings item from the typed value.
func (i settingsItem) command(value string) (cereal.Command, error) {
	cmd := cereal.Command{Type: i.CommandType}
	switch i.Type {
	case Int:
		val, err := strconv.Atoi(value)
		if err != nil {
			return cmd, err
		}
		cmd.Int = val
	default:
		cmd.Str = value
	}
	return cmd, nil
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.err = nil
			switch it.state {
			case settingsExit:
				mm.state = showMenu
			case settingsInput:
				m.state = settingsInput
				m.prompt = it.Title()
				m.textInput.Reset()
				return m, m.textInput.Focus()
			case settingsSend:
				utils.Loge(mm.cmdPub.Send(cereal.Command{Type: it.CommandType}))
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			cmd, err := m.selectedItem.command(m.textInput.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.state = showSettingsMenu
			utils.Loge(mm.cmdPub.Send(cmd))
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		status := ""
		if m.err != nil {
			status = errorStyle.Render(m.err.Error())
		}
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s\n%s",
			m.prompt,
			m.textInput.View(),
			status,
			"(esc to quit)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Match Strategy",
			desc:        "window projects onto the chord around the nearest point, best_segment tests both adjacent segments",
			CommandType: cereal.COMMAND_SET_STRATEGY,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Search Radius",
			desc:        "Number of points searched around the previous match, negative to always scan the whole path",
			CommandType: cereal.COMMAND_SET_SEARCH_RADIUS,
			Type:        Int,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for the refmatch system",
			CommandType: cereal.COMMAND_SET_LOG_LEVEL,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Load Reference Path",
			desc:        "Load a json reference path file on the device running refmatch",
			CommandType: cereal.COMMAND_LOAD_PATH,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Reset every setting to its default value",
			CommandType: cereal.COMMAND_LOAD_DEFAULT_SETTINGS,
			state:       settingsSend,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			CommandType: cereal.COMMAND_SAVE_SETTINGS,
			state:       settingsSend,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "Refmatch Settings"
	return m
}
