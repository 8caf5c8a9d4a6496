// Package console is the terminal side of a match: it reads moves and the
// starting value, and prints positions with termenv styling.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/tkahng/turns"
)

// StartValuePrompt asks for the subtract-square starting number.
const StartValuePrompt = "Please enter a starting value: "

// Prompter reads one line at a time from in, writing prompts to out. Reads
// stop waiting once ctx is done.
type Prompter struct {
	ctx     context.Context
	scanner *bufio.Scanner
	out     io.Writer
	lines   chan line
	once    sync.Once
}

type line struct {
	text string
	err  error
}

var _ turns.LineReader = (*Prompter)(nil)

func NewPrompter(ctx context.Context, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		ctx:     ctx,
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan line),
	}
}

// scan feeds lines to ReadLine. It blocks in the underlying reader, so it
// runs in its own goroutine.
func (p *Prompter) scan() {
	defer close(p.lines)
	for p.scanner.Scan() {
		select {
		case p.lines <- line{text: p.scanner.Text()}:
		case <-p.ctx.Done():
			return
		}
	}
	if err := p.scanner.Err(); err != nil {
		select {
		case p.lines <- line{err: err}:
		case <-p.ctx.Done():
		}
	}
}

// ReadLine returns io.EOF once input is exhausted and ctx.Err() once ctx is
// done.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if err := p.ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	p.once.Do(func() { go p.scan() })

	select {
	case <-p.ctx.Done():
		return "", p.ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// StartValue keeps asking until a non-negative integer is entered.
func (p *Prompter) StartValue() (int, error) {
	for {
		line, err := p.ReadLine(StartValuePrompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 0 {
			return n, nil
		}
		if _, err := fmt.Fprintf(p.out, "%q is not a non-negative integer\n", line); err != nil {
			return 0, err
		}
	}
}

// Printer writes match events to a terminal.
type Printer struct {
	out *termenv.Output
}

var _ turns.Reporter = (*Printer)(nil)

// NewPrinter styles output for w's terminal profile, or not at all when
// color is false.
func NewPrinter(w io.Writer, color bool) *Printer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

func (p *Printer) Instructions(text string) {
	p.println(p.out.String(text).Italic().String())
}

func (p *Printer) Position(s fmt.Stringer) {
	p.println(p.out.String(s.String()).Foreground(p.out.Color("6")).String())
}

func (p *Printer) Rejected(player turns.Player, err error) {
	msg := "That move is not allowed, try again."
	var perr *turns.ParseError
	if errors.As(err, &perr) {
		msg = fmt.Sprintf("%q is not a move, try again.", perr.Input)
	}
	p.println(p.out.String(fmt.Sprintf("%s: %s", player, msg)).Foreground(p.out.Color("3")).String())
}

func (p *Printer) Winner(player turns.Player) {
	p.println(p.out.String(fmt.Sprintf("%s wins!", player)).Bold().Foreground(p.out.Color("2")).String())
}

func (p *Printer) println(s string) {
	// nolint:errcheck
	fmt.Fprintln(p.out, s)
}
