// Package tapefile reads Turing machine programs from .tur files structured as follows:
// 1. Program comment section;
// 2. Program definition section;
// 3. State table comment section;
// 4. Saved tape section (optional).
//
// Program definition format:
// <Set of states>
// <Symbol from alphabet>\t<transition>\t<transition>...
// <Symbol from alphabet>\t<transition>...
// Where transitions are tab-delimited and each alphabet symbol begins a new line of
// its corresponding transitions.
//
// The format predates the input/output alphabet split this package's core
// enforces: every read symbol here becomes an InputSymbol, every written
// symbol an OutputSymbol, and no transition read from a .tur file ever
// reads a boundary marker. A machine built from file transitions alone
// rejects as soon as its tape runs off either edge.
package tapefile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/asphodex/go-turing-reverse"
)

// ReadFileCtx reads file from given filepath and returns the decoded
// transitions in case of success, else returns an error.
func ReadFileCtx(ctx context.Context, filePath string) ([]turing.Transition[string, rune, rune], error) {
	path := filepath.Clean(filePath)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file %q does not exist: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file %q: %w", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	return ReadCtx(ctx, file)
}

var (
	// ErrParseTransition is returned when a transition field cannot be parsed correctly.
	ErrParseTransition = errors.New("parse transition")

	// ErrNoTransitions is returned when the program file contains no valid transitions.
	ErrNoTransitions = errors.New("no transitions")
)

// halfTransition holds the part of a transition a single file field encodes:
// the move, the next state, and the symbol to write. The caller fills in
// CurrentState and Read from the row/column the field was found at.
type halfTransition struct {
	write turing.TapeSymbol[rune, rune]
	move  turing.Move
	next  string
}

// ParseTransition parses a field like "1>2" into the move, target state, and
// write symbol it encodes.
func ParseTransition(field string) (halfTransition, error) {
	const transitionFieldsCount = 2

	directionTable := map[rune]turing.Move{
		'>': turing.Right,
		'<': turing.Left,
		'.': turing.Hold,
	}

	for sep, dir := range directionTable {
		if strings.ContainsRune(field, sep) {
			fields := strings.Split(field, string(sep))

			// 1>2
			if len(fields) != transitionFieldsCount || fields[0] == "" || fields[1] == "" {
				return halfTransition{}, fmt.Errorf("%w: %s", ErrParseTransition, field)
			}

			write, _ := utf8.DecodeRuneInString(fields[0])
			if write == '_' {
				write = ' '
			}

			return halfTransition{
				write: turing.OutputSymbol[rune, rune](write),
				move:  dir,
				next:  "Q" + fields[1],
			}, nil
		}
	}

	return halfTransition{}, fmt.Errorf("%w: no direction found", ErrParseTransition)
}

// ReadCtx reads .tur files from the given io.Reader.
func ReadCtx(ctx context.Context, r io.Reader) ([]turing.Transition[string, rune, rune], error) {
	scanner := bufio.NewScanner(r)

	var (
		transitions []turing.Transition[string, rune, rune]
		states      []string
		inScope     bool
	)

	statePattern := regexp.MustCompile(`Q\d+`)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := scanner.Text()

		fields := strings.Split(line, "\t")

		if len(fields) == 0 {
			continue
		}

		if !inScope {
			if len(fields) > 1 && statePattern.MatchString(strings.Join(fields[1:], " ")) {
				states = fields[1:]
				inScope = true
			}

			continue
		}

		if fields[0] == "" {
			continue
		}

		symbol, _ := utf8.DecodeRuneInString(fields[0])

		stateIndex := 0

		for i := 1; i < len(fields); i++ {
			if fields[i] == "" {
				stateIndex++
				continue
			}

			half, err := ParseTransition(fields[i])
			if err != nil {
				return nil, err
			}

			transitions = append(transitions, turing.Transition[string, rune, rune]{
				CurrentState: states[stateIndex],
				Read:         turing.InputSymbol[rune, rune](symbol),
				Write:        half.write,
				HasWrite:     true,
				Move:         half.move,
				NextState:    turing.NonTerminalState(half.next),
				HasNextState: true,
			})

			stateIndex++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}

	if len(transitions) == 0 {
		return nil, ErrNoTransitions
	}

	return transitions, nil
}
