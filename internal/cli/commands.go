package cli

import (
	"fmt"
	"strings"

	enumeration "github.com/jake-scott/go-enumeration"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [file]",
		Short: "print the number of tokens.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := openTokens(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()

			n := e.Count()
			if err := finish(e); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newFindCmd() *cobra.Command {
	findCmd := &cobra.Command{
		Use:   "find [flags] word [file]",
		Short: "print the position of tokens equal to a word.",
		Long: `Print the position (counting from zero) and text of the first token equal
to word.  With --all, carry on searching from after each match.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := openTokens(cmd, args[1:])
			if err != nil {
				return err
			}
			defer closeFn()

			all := getFlag(cmd, "all")
			pred := matcher(args[0], getFlag(cmd, "ignore-case"))
			tokens := enumeration.WithIndex(e)

			found := 0
			for o := tokens.Find(pred); o.HasValue(); o = tokens.Find(pred) {
				tok := o.Unwrap()
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", tok.Index, tok.Item)
				found++

				if !all {
					break
				}
			}

			if err := finish(e); err != nil {
				return err
			}

			log.WithField("matches", found).Debug("find done")
			if found == 0 {
				return fmt.Errorf("%q: %w", args[0], ErrNotFound)
			}

			return nil
		},
	}

	findCmd.Flags().BoolP("all", "a", false, "print every match, not just the first")
	findCmd.Flags().BoolP("ignore-case", "i", false, "compare tokens case-insensitively")

	return findCmd
}

func matcher(word string, ignoreCase bool) enumeration.FilterFunc[enumeration.Indexed[string]] {
	if ignoreCase {
		return func(tok enumeration.Indexed[string]) bool {
			return strings.EqualFold(tok.Item, word)
		}
	}

	return func(tok enumeration.Indexed[string]) bool {
		return tok.Item == word
	}
}

func newPeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peek [file]",
		Short: "print the first token and the number of tokens.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := openTokens(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()

			// peeking leaves the token in place, so it is still counted
			first := e.Peek()
			n := e.Count()
			if err := finish(e); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tok, ok := first.Get(); ok {
				fmt.Fprintf(out, "first: %s\n", tok)
			} else {
				fmt.Fprintln(out, "first: (none)")
			}
			fmt.Fprintf(out, "count: %d\n", n)

			return nil
		},
	}
}

func newHeadCmd() *cobra.Command {
	headCmd := &cobra.Command{
		Use:   "head [flags] [file]",
		Short: "print the first tokens, one per line.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt("lines")
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("--lines must not be negative, got %d", n)
			}

			e, closeFn, err := openTokens(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()

			for i := 0; i < n; i++ {
				tok, ok := e.Get().Get()
				if !ok {
					break
				}

				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}

			return finish(e)
		},
	}

	headCmd.Flags().IntP("lines", "n", 10, "number of tokens to print")

	return headCmd
}
