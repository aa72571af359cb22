package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/persistorai/degrees/internal/models"
)

// prompter reads answers from in and writes questions to out.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints question and returns the next input line, trimmed.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// resolvePerson maps name to a single person id. Several matches are listed
// and the user picks one by id; an answer outside the list, or no answer,
// counts as not found.
func resolvePerson(ctx context.Context, b backend, p *prompter, name string) (string, error) {
	candidates, err := b.SearchPeople(ctx, name)
	if err != nil {
		return "", err
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%q: %w", name, models.ErrPersonNotFound)
	case 1:
		return candidates[0].ID, nil
	}

	fmt.Fprintf(p.out, "Which '%s'?\n", name)
	writeCandidates(p.out, candidates)

	answer, err := p.ask("Intended Person ID: ")
	if err != nil {
		return "", fmt.Errorf("%q: %w", name, models.ErrPersonNotFound)
	}

	if !slices.ContainsFunc(candidates, func(c models.PersonSummary) bool { return c.ID == answer }) {
		return "", fmt.Errorf("%q: %w", name, models.ErrPersonNotFound)
	}

	return answer, nil
}
