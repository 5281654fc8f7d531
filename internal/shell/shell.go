// Package shell implements an interactive command loop for the
// assembler, in the manner of the debugger REPL it was distilled from:
// a small github.com/beevik/cmd command tree dispatching to method
// handlers, with prefix-based symbol lookup backed by
// github.com/beevik/prefixtree/v2.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/prefixtree/v2"

	"github.com/markvandergon/sixtwoasm/asm"
)

type cmdHandler func(*Shell, *cmd.Command, []string) error

type cmdSpec struct {
	Name        string
	Shortcut    string
	Brief       string
	Description string
	HelpText    string
	Data        cmdHandler
}

var cmds = buildCmds([]cmdSpec{
	{
		Name:     "help",
		Shortcut: "?",
		Brief:    "Display help",
		Data:     (*Shell).cmdHelp,
	},
	{
		Name:        "assemble",
		Shortcut:    "a",
		Brief:       "Assemble a file",
		Description: "Assemble the named source file and hold its output for inspection.",
		HelpText:    "assemble <filename>",
		Data:        (*Shell).cmdAssemble,
	},
	{
		Name:        "bytes",
		Shortcut:    "b",
		Brief:       "Display the last assembly's output bytes",
		HelpText:    "bytes",
		Data:        (*Shell).cmdBytes,
	},
	{
		Name:        "symbols",
		Shortcut:    "s",
		Brief:       "Display bound symbols",
		Description: "List symbols from the last assembly. With a prefix, print the address of the one symbol the prefix selects; a prefix that selects no single symbol prints no address.",
		HelpText:    "symbols [prefix]",
		Data:        (*Shell).cmdSymbols,
	},
	{
		Name:     "verbose",
		Brief:    "Toggle verbose logging of the next assembly",
		HelpText: "verbose",
		Data:     (*Shell).cmdVerbose,
	},
	{
		Name:     "quit",
		Shortcut: "q",
		Brief:    "Quit the shell",
		Data:     (*Shell).cmdQuit,
	},
})

func buildCmds(specs []cmdSpec) *cmd.Tree {
	t := cmd.NewTree(cmd.TreeDescriptor{Name: "sixtwoasm"})
	for _, spec := range specs {
		t.AddCommand(cmd.CommandDescriptor{
			Name:        spec.Name,
			Brief:       spec.Brief,
			Description: spec.Description,
			Usage:       spec.HelpText,
			Data:        spec.Data,
		})
		if spec.Shortcut != "" {
			if err := t.AddShortcut(spec.Shortcut, spec.Name); err != nil {
				panic(err)
			}
		}
	}
	return t
}

// A Shell is an interactive front end to the asm package. It holds the
// result of the most recent assembly so that follow-up commands can
// inspect it.
type Shell struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	quit        bool

	verbose bool
	last    *asm.Assembly
	symbols *prefixtree.Tree[uint16]
}

// New creates a shell with no prior assembly loaded.
func New() *Shell {
	return &Shell{}
}

// Run reads commands from r and writes results to w. When interactive is
// true, a prompt is printed before each command.
func (s *Shell) Run(r io.Reader, w io.Writer, interactive bool) {
	s.input = bufio.NewScanner(r)
	s.output = bufio.NewWriter(w)
	s.interactive = interactive
	defer s.output.Flush()

	for !s.quit {
		if s.interactive {
			s.printf("* ")
			s.output.Flush()
		}
		if !s.input.Scan() {
			return
		}
		line := strings.TrimSpace(s.input.Text())
		if line == "" {
			continue
		}

		command, args, err := cmds.LookupCommand(line)
		switch {
		case err == cmd.ErrNotFound:
			s.println("Command not found.")
			continue
		case err == cmd.ErrAmbiguous:
			s.println("Command is ambiguous.")
			continue
		case err != nil:
			s.printf("ERROR: %v\n", err)
			continue
		}

		handler := command.Data.(cmdHandler)
		if err := handler(s, command, args); err != nil {
			s.printf("ERROR: %v\n", err)
		}
		s.output.Flush()
	}
}

func (s *Shell) print(args ...interface{})            { fmt.Fprint(s.output, args...) }
func (s *Shell) println(args ...interface{})          { fmt.Fprintln(s.output, args...) }
func (s *Shell) printf(f string, args ...interface{}) { fmt.Fprintf(s.output, f, args...) }

func (s *Shell) cmdHelp(c *cmd.Command, args []string) error {
	tree := c.Parent()
	s.printf("%s commands:\n", tree.Name)
	for _, sub := range tree.Commands() {
		if sub.Brief != "" {
			s.printf("    %-15s  %s\n", sub.Name, sub.Brief)
		}
	}
	return nil
}

func (s *Shell) cmdAssemble(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		s.println(c.Usage)
		return nil
	}

	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	var a *asm.Assembly
	if s.verbose {
		a, err = asm.AssembleVerbose(string(source), s.output, asm.Verbose|asm.Trace)
	} else {
		a, err = asm.Assemble(string(source))
	}
	if err != nil {
		s.printf("Assembly failed: %v\n", err)
		return nil
	}

	s.last = a
	s.symbols = buildSymbolTree(a.Symbols)
	s.printf("Assembled %d bytes.\n", len(a.Code))
	return nil
}

func (s *Shell) cmdBytes(c *cmd.Command, args []string) error {
	if s.last == nil {
		s.println("No assembly loaded.")
		return nil
	}
	for i, b := range s.last.Code {
		if i > 0 && i%16 == 0 {
			s.println()
		}
		s.printf("%02X ", b)
	}
	s.println()
	return nil
}

func (s *Shell) cmdSymbols(c *cmd.Command, args []string) error {
	if s.last == nil {
		s.println("No assembly loaded.")
		return nil
	}
	if len(args) > 0 {
		addr, err := s.symbols.FindValue(args[0])
		if err != nil {
			s.printf("No symbol matching '%s'.\n", args[0])
			return nil
		}
		s.printf("$%04X\n", addr)
		return nil
	}

	names := make([]string, 0, len(s.last.Symbols))
	for name := range s.last.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.printf("  %-20s $%04X\n", name, s.last.Symbols[name])
	}
	return nil
}

func (s *Shell) cmdVerbose(c *cmd.Command, args []string) error {
	s.verbose = !s.verbose
	s.printf("verbose logging %s\n", onOff(s.verbose))
	return nil
}

func (s *Shell) cmdQuit(c *cmd.Command, args []string) error {
	s.quit = true
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func buildSymbolTree(symbols map[string]uint16) *prefixtree.Tree[uint16] {
	t := prefixtree.New[uint16]()
	for name, addr := range symbols {
		t.Add(name, addr)
	}
	return t
}
