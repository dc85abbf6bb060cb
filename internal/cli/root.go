// Package cli implements the enumerate command line tool, which splits a
// file (or stdin) into tokens and runs enumeration operations over them.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	enumeration "github.com/jake-scott/go-enumeration"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrNotFound is returned by the find command when no token matches.
var ErrNotFound = errors.New("no matching token")

// splitters maps the values accepted by --split to scanner split functions
var splitters = map[string]bufio.SplitFunc{
	"lines": bufio.ScanLines,
	"words": bufio.ScanWords,
	"runes": bufio.ScanRunes,
}

// NewRootCommand builds the enumerate command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Enumerate the tokens of a file.",
		Long: `Split a file, or stdin when no file is given, into lines, words or runes
and count, search, peek at or print the resulting tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(cmd)
		},
	}

	rootCmd.PersistentFlags().String("split", "words", "split input into lines, words or runes")
	rootCmd.PersistentFlags().Bool("trace", false, "trace enumeration events")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	rootCmd.AddCommand(newCountCmd(), newFindCmd(), newPeekCmd(), newHeadCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	err := NewRootCommand().Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNotFound):
		log.Debug(err)
		return 2
	default:
		log.Error(err)
		return 1
	}
}

func configureLogging(cmd *cobra.Command) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	level := log.WarnLevel
	if getFlag(cmd, "verbose") {
		level = log.DebugLevel
	}
	if getFlag(cmd, "trace") {
		level = log.TraceLevel
	}
	log.SetLevel(level)

	return nil
}

// Get an expected boolean flag.  Flags are all declared by this package, so
// a lookup failure is a bug.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}

	return r
}

// openTokens returns an enumeration over the tokens of the file named by
// args[0], or of stdin if args is empty.  The returned function closes the
// file.
func openTokens(cmd *cobra.Command, args []string) (*enumeration.Enumeration[string], func(), error) {
	split, ok := splitters[getString(cmd, "split")]
	if !ok {
		return nil, nil, fmt.Errorf("unknown --split value %q", getString(cmd, "split"))
	}

	var (
		in      io.Reader = cmd.InOrStdin()
		name              = "stdin"
		closeFn           = func() {}
	)

	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}

		in, name = f, args[0]
		closeFn = func() {
			if err := f.Close(); err != nil {
				log.WithField("file", name).Warn(err)
			}
		}
	}

	s := bufio.NewScanner(in)
	s.Split(split)

	log.WithFields(log.Fields{"input": name, "split": getString(cmd, "split")}).Debug("enumerating tokens")

	e := enumeration.FromScanner(s,
		enumeration.WithTracing(getFlag(cmd, "trace")),
		enumeration.WithDescription(name),
		enumeration.InheritOptions(true))

	return e, closeFn, nil
}

// finish reports a scanning error that cut the enumeration short.
func finish[T any](e *enumeration.Enumeration[T]) error {
	if err := e.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}
