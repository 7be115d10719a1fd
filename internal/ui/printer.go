// Package ui renders everything the player sees: colored prompts and
// verdicts, the game banner and the ASCII world map.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes styled game output to a single destination. Styling can be
// disabled wholesale, for pipes and for tests asserting on plain text.
type Printer struct {
	out io.Writer

	frame  *color.Color // banner frame
	accent *color.Color // banner title
	prompt *color.Color // questions and input prompts
	option *color.Color // numbered answer options
	good   *color.Color // correct answers, confirmations
	bad    *color.Color // wrong answers, input errors
	player *color.Color // player names
	info   *color.Color // rules and round information
}

// NewPrinter creates a printer writing to out. With colored false every
// style is disabled and plain text is emitted.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out:    out,
		frame:  color.New(color.FgYellow),
		accent: color.New(color.FgBlue, color.Bold),
		prompt: color.New(color.FgHiMagenta),
		option: color.New(color.FgHiBlue),
		good:   color.New(color.FgHiGreen),
		bad:    color.New(color.FgHiRed),
		player: color.New(color.FgHiYellow),
		info:   color.New(color.FgHiCyan),
	}
	if !colored {
		for _, c := range p.styles() {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) styles() []*color.Color {
	return []*color.Color{p.frame, p.accent, p.prompt, p.option, p.good, p.bad, p.player, p.info}
}

// Banner prints the game header and the welcome text.
func (p *Printer) Banner() {
	top := "╭─────────────────────────────────────────────────────────────╮"
	mid := "│        🌍  G U E S S I P E D I A   C H A L L E N G E  🧭      │"
	bot := "╰─────────────────────────────────────────────────────────────╯"
	p.frame.Fprintln(p.out, top)
	p.accent.Fprintln(p.out, mid)
	p.frame.Fprintln(p.out, bot)

	p.info.Fprintln(p.out, "\n🎉 Welcome to Guessipedia! Test your geography skills! 🌎")
	p.info.Fprintln(p.out, "For each correct guess you earn points. Let's see how well you know the world!")
	p.info.Fprintln(p.out, "\nType '1' or '2' to make your choice, or 'q' to quit at any time.")
	p.info.Fprintln(p.out, "\nReady? Let's go... 🚀")
	fmt.Fprintln(p.out)
}

// Printf writes plain unstyled text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Promptf writes an input prompt, without a trailing newline.
func (p *Printer) Promptf(format string, args ...any) {
	p.prompt.Fprintf(p.out, format, args...)
}

// Questionf writes a round question addressed to a player.
func (p *Printer) Questionf(name, format string, args ...any) {
	p.player.Fprintf(p.out, "\n%s ", name)
	p.prompt.Fprintf(p.out, format, args...)
	fmt.Fprintln(p.out)
}

// Option writes one numbered answer option with its description.
func (p *Printer) Option(number int, title, description string) {
	p.option.Fprintf(p.out, "%d. %s\n", number, title)
	fmt.Fprintf(p.out, "%s\n", description)
}

// Goodf writes a positive (green) message.
func (p *Printer) Goodf(format string, args ...any) {
	p.good.Fprintf(p.out, format, args...)
}

// Badf writes a negative (red) message.
func (p *Printer) Badf(format string, args ...any) {
	p.bad.Fprintf(p.out, format, args...)
}

// Infof writes a neutral informational message.
func (p *Printer) Infof(format string, args ...any) {
	p.info.Fprintf(p.out, format, args...)
}

// Name returns the player name styled for inline use.
func (p *Printer) Name(name string) string {
	return p.player.Sprint(name)
}
