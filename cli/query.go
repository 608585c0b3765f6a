package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/refmatch/utils"
)

type queryModel struct {
	textInput textinput.Model
	nextId    uint64
	err       error
}

func getQueryModel() queryModel {
	input := textinput.New()
	input.Placeholder = "x y  or  s 12.5"
	input.CharLimit = 64
	return queryModel{textInput: input, nextId: 1}
}

func (m queryModel) Update(msg tea.Msg, mm *uiModel) (queryModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		req, err := parseQuery(m.textInput.Value(), m.nextId)
		m.err = err
		if err != nil {
			return m, nil
		}
		m.nextId += 1
		utils.Loge(mm.pub.Send(req))
		m.textInput.Reset()
		mm.state = showOutput
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m queryModel) View() string {
	status := ""
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}
	return docStyle.Render(fmt.Sprintf(
		"%s\n\n%s\n\n%s\n%s",
		"Query position or arc length",
		m.textInput.View(),
		status,
		"(esc to return)",
	) + "\n")
}
