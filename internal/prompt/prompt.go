package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind identifies how a question is rendered and answered.
type Kind int

const (
	// Text asks for a free-form line of input.
	Text Kind = iota
	// Select asks the user to pick one entry from a numbered list.
	Select
	// Confirm asks a yes/no question.
	Confirm
)

// Question describes a single interactive prompt.
//
// For Select questions, Choices is called with the answers collected so far,
// so a later question's option list can depend on an earlier answer.
// Questions are always evaluated in declared order.
type Question struct {
	Kind    Kind
	Key     string
	Message string

	// Default applies to Confirm (bool) and Text (string) questions.
	Default any

	// Validate rejects free-form input; the question is re-asked until it
	// passes or input ends. Only used by Text questions.
	Validate func(input string) error

	// Choices produces the option list for a Select question.
	Choices func(answers Answers) []string

	// Filter transforms the raw answer before it is stored. When nil the
	// raw value is stored (string for Text/Select, bool for Confirm).
	Filter func(raw string) any
}

// Answers maps question keys to validated, filtered values.
type Answers map[string]any

// String returns the answer for key as a string, or "" when absent or not
// a string.
func (a Answers) String(key string) string {
	v, _ := a[key].(string)
	return v
}

// Bool returns the answer for key as a bool, or false when absent or not
// a bool.
func (a Answers) Bool(key string) bool {
	v, _ := a[key].(bool)
	return v
}

// Missing returns the subset of keys that have no answer, preserving order.
func (a Answers) Missing(keys []string) []string {
	var missing []string
	for _, k := range keys {
		if _, ok := a[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Keys returns the key of every question, in declared order.
func Keys(questions []Question) []string {
	keys := make([]string, len(questions))
	for i, q := range questions {
		keys[i] = q.Key
	}
	return keys
}

// Asker renders questions on an output writer and reads answers from an
// input reader, so interactive flows stay testable.
type Asker struct {
	in    *bufio.Reader
	out   io.Writer
	qmark string
}

// NewAsker returns an Asker bound to the given input and output streams.
func NewAsker(r io.Reader, w io.Writer) *Asker {
	return &Asker{in: bufio.NewReader(r), out: w, qmark: "[?]"}
}

// Ask renders each question in order and collects the answers.
//
// When input ends before every question is answered (the user cancelled),
// Ask stops and returns the partial answer set. Callers must check
// Missing against the requested keys before acting on the result.
func (a *Asker) Ask(questions []Question) Answers {
	answers := make(Answers, len(questions))

	for _, q := range questions {
		var (
			value any
			err   error
		)

		switch q.Kind {
		case Select:
			value, err = a.askSelect(q, answers)
		case Confirm:
			value, err = a.askConfirm(q)
		default:
			value, err = a.askText(q)
		}

		if err != nil {
			// Input ended; return what we have so far.
			return answers
		}
		answers[q.Key] = value
	}

	return answers
}

// askText prompts for a line of input, re-asking until validation passes.
func (a *Asker) askText(q Question) (any, error) {
	for {
		fmt.Fprintf(a.out, "%s %s ", a.qmark, q.Message)

		raw, err := a.readLine()
		if err != nil {
			return nil, err
		}

		if raw == "" {
			if def, ok := q.Default.(string); ok && def != "" {
				raw = def
			}
		}

		if q.Validate != nil {
			if vErr := q.Validate(raw); vErr != nil {
				fmt.Fprintf(a.out, "  %v\n", vErr)
				continue
			}
		}

		return a.filter(q, raw), nil
	}
}

// askSelect renders a numbered list and reads the chosen index, re-asking
// on out-of-range or non-numeric input.
func (a *Asker) askSelect(q Question, answers Answers) (any, error) {
	choices := q.Choices(answers)
	if len(choices) == 0 {
		return nil, io.EOF
	}

	fmt.Fprintf(a.out, "%s %s\n", a.qmark, q.Message)
	for i, choice := range choices {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, choice)
	}

	for {
		fmt.Fprintf(a.out, "Enter number [1-%d]: ", len(choices))

		raw, err := a.readLine()
		if err != nil {
			return nil, err
		}

		num, convErr := strconv.Atoi(raw)
		if convErr != nil || num < 1 || num > len(choices) {
			fmt.Fprintf(a.out, "  invalid selection %q: choose 1-%d\n", raw, len(choices))
			continue
		}

		return a.filter(q, choices[num-1]), nil
	}
}

// askConfirm prompts for yes/no, applying the default on empty input.
func (a *Asker) askConfirm(q Question) (any, error) {
	def, _ := q.Default.(bool)
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(a.out, "%s %s (%s) ", a.qmark, q.Message, hint)

		raw, err := a.readLine()
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(raw) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(a.out, "  answer y or n\n")
	}
}

func (a *Asker) filter(q Question, raw string) any {
	if q.Filter != nil {
		return q.Filter(raw)
	}
	return raw
}

// readLine reads a trimmed line. A final unterminated line is still
// returned before EOF is reported on the next read.
func (a *Asker) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// NonEmpty is a Validate helper that rejects blank input.
func NonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("a value is required")
	}
	return nil
}
