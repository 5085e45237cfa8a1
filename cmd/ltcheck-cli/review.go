package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Alfex4936/ltcheck/ltcheck"
)

const reviewHelp = `commands: n next, p previous, f first, l last, g N goto,
          a whitelist word, r [WORD] remove from whitelist, w save whitelist,
          i toggle ignore-whitelisted, m toggle misspellings-only,
          c corrections, q quit`

// runReview steps through rv, one command per line of in.
func runReview(in io.Reader, out io.Writer, rv *ltcheck.Review, wlPath string) error {
	show := func(e *ltcheck.Error) { printError(out, rv, e) }

	fmt.Fprintln(out, reviewHelp)
	if !rv.Navigate(ltcheck.First, show) {
		fmt.Fprintln(out, rv.Status())
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd := fields[0]

		if a, ok := ltcheck.ParseAction(cmd); ok {
			if !rv.Navigate(a, show) {
				fmt.Fprintln(out, rv.Status())
			}
			continue
		}

		switch cmd {
		case "q", "quit":
			return nil
		case "g":
			n := 0
			if len(fields) > 1 {
				n, _ = strconv.Atoi(fields[1])
			}
			if err := rv.Goto(n, show); err != nil {
				fmt.Fprintf(out, "%d invalid\n", n)
			}
		case "a":
			word, added, err := rv.WhitelistCurrent()
			if err != nil {
				return err
			}
			switch {
			case word == "":
				fmt.Fprintln(out, "nothing to whitelist")
			case !added:
				fmt.Fprintf(out, "%s already whitelisted\n", word)
			default:
				fmt.Fprintf(out, "%s whitelisted\n", word)
			}
			if e := rv.Current(); e != nil {
				show(e)
			}
		case "r":
			word, removed, err := rv.Unwhitelist(strings.Join(fields[1:], " "))
			if err != nil {
				return err
			}
			switch {
			case word == "":
				fmt.Fprintln(out, "nothing to remove")
			case !removed:
				fmt.Fprintf(out, "%s not whitelisted\n", word)
			default:
				fmt.Fprintf(out, "%s removed from whitelist\n", word)
			}
			if e := rv.Current(); e != nil {
				show(e)
			}
		case "w":
			if err := rv.Whitelist().Save(wlPath, true); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d words in whitelist\n", rv.Whitelist().Len())
		case "i", "m":
			opts := rv.Options()
			if cmd == "i" {
				opts.IgnoreWhitelisted = !opts.IgnoreWhitelisted
			} else {
				opts.MisspellingsOnly = !opts.MisspellingsOnly
			}
			if err := rv.SetOptions(opts); err != nil {
				fmt.Fprintf(out, "cannot change view: %v\n", err)
				continue
			}
			if !rv.Navigate(ltcheck.First, show) {
				fmt.Fprintln(out, rv.Status())
			}
		case "c":
			for _, c := range changes(rv.Text(), rv.Corrected()) {
				fmt.Fprintln(out, c)
			}
		default:
			fmt.Fprintln(out, reviewHelp)
		}
	}
	return sc.Err()
}

func printError(out io.Writer, rv *ltcheck.Review, e *ltcheck.Error) {
	fmt.Fprintf(out, "Message: %s\n", e.Message)
	fmt.Fprintf(out, "Word: %s\n", e.TextError())
	if e.Context != nil {
		fmt.Fprintf(out, "In text: %s\n", e.Context.Proximity)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(out, "Suggestions: %s\n", strings.Join(e.Suggestions, "/"))
	}
	fmt.Fprintln(out, rv.Status())
}
