package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/rbtree/pkg/rbtree"
	"github.com/c9s/rbtree/pkg/style"
	"github.com/c9s/rbtree/pkg/util"
)

const DefaultPrompt = "rbtree> "

var ErrUnknownCommand = errors.New("unknown command")

type command struct {
	names []string
	usage string
	help  string
	run   func(s *Session, args []string) error
}

var (
	commands     []command
	commandIndex map[string]*command
)

func init() {
	commands = []command{
		{names: []string{"add", "insert", "1"}, usage: "<key...>", help: "insert keys", run: (*Session).add},
		{names: []string{"delete", "del", "2"}, usage: "<key...>", help: "delete keys", run: (*Session).delete},
		{names: []string{"find", "search", "3"}, usage: "<key>", help: "search a key", run: (*Session).find},
		{names: []string{"traverse", "4"}, help: "print the root, the in-order and the post-order traversal", run: (*Session).traverse},
		{names: []string{"validate", "test", "5"}, help: "check the red-black properties", run: (*Session).validate},
		{names: []string{"print"}, help: "print the tree graph", run: (*Session).print},
		{names: []string{"stats"}, help: "print the tree counters", run: (*Session).stats},
		{names: []string{"help"}, help: "show this help", run: (*Session).help},
		{names: []string{"exit", "quit", "6"}, help: "leave the shell"},
	}

	commandIndex = make(map[string]*command)
	for i := range commands {
		for _, name := range commands[i].names {
			commandIndex[name] = &commands[i]
		}
	}
}

type Option func(s *Session)

func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithColor toggles ANSI colors, which are off by default.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.colored = enabled
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session is a line driven menu over an Engine.
type Session struct {
	engine Engine
	out    io.Writer
	prompt string
	logger logrus.FieldLogger

	colored bool
	info    *color.Color
	warn    *color.Color
	fail    *color.Color
	red     *color.Color
	black   *color.Color
}

func NewSession(engine Engine, out io.Writer, opts ...Option) *Session {
	s := &Session{
		engine: engine,
		out:    out,
		prompt: DefaultPrompt,
		logger: logrus.WithField("component", "shell"),
		info:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed, color.Bold),
		red:    color.New(color.FgHiRed, color.Bold),
		black:  color.New(color.FgHiBlack, color.BgWhite),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, c := range []*color.Color{s.info, s.warn, s.fail, s.red, s.black} {
		if s.colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

type scanResult struct {
	line string
	err  error
	eof  bool
}

// Run reads commands from in until EOF, an exit command or ctx is done.
// Command errors are reported to the output and do not stop the session.
//
// Lines are read on a separate goroutine one at a time, so a blocked read does
// not delay cancellation. When ctx ends during a read, that goroutine lingers
// until the pending read of in returns.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	next := make(chan struct{})
	results := make(chan scanResult, 1)
	defer close(next)

	go func() {
		scanner := bufio.NewScanner(in)
		for range next {
			if !scanner.Scan() {
				results <- scanResult{err: scanner.Err(), eof: true}
				return
			}
			results <- scanResult{line: scanner.Text()}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(s.out, s.prompt)
		next <- struct{}{}

		var result scanResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()
		case result = <-results:
		}

		if result.eof {
			fmt.Fprintln(s.out)
			return result.err
		}

		quit, err := s.Exec(result.line)
		if err != nil {
			s.fail.Fprintf(s.out, "error: %v\n", err)
		}

		if quit {
			return nil
		}
	}
}

// Exec runs one command line. It reports whether the session should end.
func (s *Session) Exec(line string) (bool, error) {
	args, err := shellwords.Parse(strings.TrimSpace(line))
	if err != nil {
		return false, errors.Wrapf(err, "can not parse %q", line)
	}

	if len(args) == 0 {
		return false, nil
	}

	name := strings.ToLower(args[0])
	cmd, ok := commandIndex[name]
	if !ok {
		return false, errors.Wrapf(ErrUnknownCommand, "command %q", args[0])
	}

	if cmd.run == nil {
		return true, nil
	}

	return false, cmd.run(s, args[1:])
}

func (s *Session) add(args []string) error {
	keys, err := parseKeys(args, 1)
	if err != nil {
		return err
	}

	for _, key := range keys {
		root := s.engine.Insert(key)
		if e, ok := s.engine.Entry(root); ok {
			s.info.Fprintf(s.out, "inserted %d, the root is now %d\n", key, e.Key)
		}
	}
	return nil
}

func (s *Session) delete(args []string) error {
	keys, err := parseKeys(args, 1)
	if err != nil {
		return err
	}

	for _, key := range keys {
		err := s.engine.Delete(key)
		switch {
		case err == nil:
			s.info.Fprintf(s.out, "deleted %d\n", key)

		case errors.Is(err, rbtree.ErrNotFound), errors.Is(err, rbtree.ErrEmptyTree):
			s.warn.Fprintf(s.out, "%d not found in the tree\n", key)

		default:
			return err
		}
	}
	return nil
}

func (s *Session) find(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: find <key>")
	}

	keys, err := parseKeys(args, 1)
	if err != nil {
		return err
	}

	h, ok := s.engine.Search(keys[0])
	if !ok {
		s.warn.Fprintf(s.out, "%d not found in the tree\n", keys[0])
		return nil
	}

	e, _ := s.engine.Entry(h)
	s.info.Fprintf(s.out, "found %d ", e.Key)
	fmt.Fprintln(s.out, s.nodeColor(e.Color))
	return nil
}

func (s *Session) traverse(args []string) error {
	root, ok := s.engine.RootEntry()
	if !ok {
		s.warn.Fprintln(s.out, "the tree is empty")
		return nil
	}

	fmt.Fprintf(s.out, "root is %d %s\n", root.Key, s.nodeColor(root.Color))
	style.EntriesTable(s.out, "in-order", s.engine.InorderEntries(), s.colored)
	style.EntriesTable(s.out, "post-order", s.engine.PostorderEntries(), s.colored)
	return nil
}

func (s *Session) validate(args []string) error {
	if err := s.engine.Validate(); err != nil {
		util.LogErrTo(s.logger, err, "tree validation failed")
		return err
	}

	s.info.Fprintf(s.out, "the tree is valid: size=%d height=%d black-height=%d\n",
		s.engine.Len(), s.engine.Height(), s.engine.BlackHeight())
	return nil
}

func (s *Session) print(args []string) error {
	s.engine.Fprint(s.out)
	return nil
}

func (s *Session) stats(args []string) error {
	style.StatsTable(s.out, s.engine.Len(), s.engine.Height(), s.engine.BlackHeight(), s.engine.Stats())
	return nil
}

func (s *Session) help(args []string) error {
	for _, cmd := range commands {
		usage := strings.Join(cmd.names, "|")
		if cmd.usage != "" {
			usage += " " + cmd.usage
		}
		fmt.Fprintf(s.out, "  %-28s %s\n", usage, cmd.help)
	}
	return nil
}

func (s *Session) nodeColor(c rbtree.Color) string {
	if c == rbtree.Red {
		return s.red.Sprintf("(%s)", c)
	}
	return s.black.Sprintf("(%s)", c)
}

func parseKeys(args []string, atLeast int) ([]int64, error) {
	if len(args) < atLeast {
		return nil, errors.Errorf("expecting at least %d key(s)", atLeast)
	}

	keys := make([]int64, 0, len(args))
	for _, arg := range args {
		key, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %q", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
