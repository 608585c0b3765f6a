package cli

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"pfeifer.dev/refmatch/refline"
)

const (
	actionMatch  = "Match Position"
	actionLocate = "Locate Arc Length"
	actionQuit   = "Quit"
)

func validateFloat(input string) error {
	_, err := strconv.ParseFloat(input, 64)
	return errors.Wrap(err, "invalid number")
}

func promptFloat(label string) (float64, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateFloat,
	}
	result, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(result, 64)
}

func interactive() {
	pathPrompt := promptui.Prompt{
		Label:   "Reference path file",
		Default: "./path.json",
	}
	name, err := pathPrompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}
	path, err := loadPathFile(name)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return
	}

	for {
		prompt := promptui.Select{
			Label: fmt.Sprintf("Select Action (%d points, %.1f long)", len(path), path.Length()),
			Items: []string{actionMatch, actionLocate, actionQuit},
		}

		_, result, err := prompt.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			return
		}

		switch result {
		case actionMatch:
			err = interactiveMatch(path)
		case actionLocate:
			err = interactiveLocate(path)
		case actionQuit:
			return
		}
		if errors.Is(err, promptui.ErrInterrupt) {
			return
		}
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
		}
	}
}

func interactiveMatch(path refline.Path) error {
	x, err := promptFloat("x")
	if err != nil {
		return err
	}
	y, err := promptFloat("y")
	if err != nil {
		return err
	}
	point, coord, err := refline.Matcher{}.Match(path, x, y)
	if err != nil {
		return err
	}
	fmt.Println(docStyle.Render(formatMatch(point, coord)))
	return nil
}

func interactiveLocate(path refline.Path) error {
	s, err := promptFloat("s")
	if err != nil {
		return err
	}
	point, err := refline.LocateByS(path, s)
	if err != nil {
		return err
	}
	fmt.Println(docStyle.Render(formatPoint(point)))
	return nil
}
