package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"pfeifer.dev/refmatch/cereal"
	"pfeifer.dev/refmatch/refline"
)

var (
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func formatPoint(p refline.PathPoint) string {
	return fmt.Sprintf(
		"x: %f\ny: %f\ns: %f\ntheta: %f\nkappa: %f",
		p.X, p.Y, p.S, p.Theta, p.Kappa,
	)
}

func formatMatch(p refline.PathPoint, c refline.Coordinate) string {
	return fmt.Sprintf(
		"%s\nlateral: %f\nsigned lateral: %f",
		formatPoint(p), c.Lateral, c.Signed(),
	)
}

func formatPath(path refline.Path) string {
	bounds := path.Bounds()
	return fmt.Sprintf(
		"points: %d\nlength: %.1f\nwidth: %.1f\nheight: %.1f",
		len(path), path.Length(), bounds.Width(), bounds.Height(),
	)
}

func formatResponse(res cereal.MatchResponse) string {
	header := fmt.Sprintf("request: %d (%s)\npath length: %f", res.Id, res.Kind, res.PathLength)
	if !res.Valid {
		return header + "\n" + errorStyle.Render("error: "+res.Error)
	}
	if res.Kind == cereal.REQUEST_S {
		return header + "\n" + formatPoint(res.Point)
	}
	return fmt.Sprintf("%s\nnearest index: %d\nin bounds: %t\n%s", header, res.NearestIndex, res.InBounds, formatMatch(res.Point, res.Coordinate))
}

// parseQuery reads "x y", "x,y" or "s <value>" into a request.
func parseQuery(text string, id uint64) (cereal.MatchRequest, error) {
	req := cereal.MatchRequest{Id: id}
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == ',' || r == ' ' || r == '='
	})

	if len(fields) == 2 && strings.EqualFold(fields[0], "s") {
		s, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return req, errors.Wrap(err, "could not parse arc length")
		}
		req.Kind = cereal.REQUEST_S
		req.S = s
		return req, nil
	}
	if len(fields) != 2 {
		return req, errors.Errorf("expected \"x y\" or \"s value\", got %q", text)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return req, errors.Wrap(err, "could not parse x")
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return req, errors.Wrap(err, "could not parse y")
	}
	req.Kind = cereal.REQUEST_XY
	req.X = x
	req.Y = y
	return req, nil
}

type outputModel struct {
	output cereal.MatchResponse
	valid  bool
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.output = out
	}

	return m, nil
}

func (m outputModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for refmatch output\n\n(esc to return)")
	}
	return docStyle.Render(formatResponse(m.output) + "\n\n(esc to return)")
}
