package knot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when an answer is not a number or the user
// gave up on the prompts.
var ErrInvalidInput = errors.New("invalid input")

// LineReader reads one answer per prompt. *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// AskSettings asks for the window size and knot parameters, offering def as
// the answers. An empty answer takes the default. Out of range answers are
// replaced by their default and reported through warn.
func AskSettings(r LineReader, warn func(string), def Settings) (Settings, error) {
	s := def
	var err error
	if s.Width, err = askInt(r, "Please enter the window width in pixels", def.Width); err != nil {
		return def, err
	}
	if s.Height, err = askInt(r, "Please enter the window height in pixels", def.Height); err != nil {
		return def, err
	}
	if s.Size, err = askInt(r, fmt.Sprintf("Please enter the size (minimum of %d)", MinSize), def.Size); err != nil {
		return def, err
	}
	if s.Scale, err = askFloat(r, fmt.Sprintf("Please enter the scale (a number between 0 and %g)", MaxScale), def.Scale); err != nil {
		return def, err
	}
	for _, w := range s.Normalize() {
		tracer().Infof("startup: %s", w)
		if warn != nil {
			warn(w)
		}
	}
	return s, nil
}

func ask(r LineReader, question, def string) (string, error) {
	r.SetPrompt(fmt.Sprintf("%s [%s]: ", question, def))
	line, err := r.Readline()
	if err != nil {
		return "", fmt.Errorf("%s: %v: %w", question, err, ErrInvalidInput)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func askInt(r LineReader, question string, def int) (int, error) {
	answer, err := ask(r, question, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number: %w", answer, ErrInvalidInput)
	}
	return n, nil
}

func askFloat(r LineReader, question string, def float64) (float64, error) {
	answer, err := ask(r, question, strconv.FormatFloat(def, 'g', -1, 64))
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", answer, ErrInvalidInput)
	}
	return f, nil
}
