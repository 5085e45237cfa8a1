// Command ltcheck-cli pipes stdin (or a file) through ltcheck.Check
// and prints the pretty-printed JSON report.
//
// Usage:
//
//	echo "Hello wrld" | ltcheck-cli -l en-US
//	ltcheck-cli -f text.txt -diff
//	ltcheck-cli -f text.txt -i          # step through issues, commands on stdin
//	ltcheck-cli -languages
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Alfex4936/ltcheck/internal/config"
	"github.com/Alfex4936/ltcheck/internal/util"
	"github.com/Alfex4936/ltcheck/ltcheck"
)

func main() {
	file := flag.String("f", "", "file to read instead of stdin")
	cfgPath := flag.String("c", "ltcheck.toml", "configuration file")
	lang := flag.String("l", "", "language name or code (config default if empty)")
	wlPath := flag.String("w", "", "whitelist file (overrides config)")
	timeout := flag.Duration("t", 30*time.Second, "overall timeout")
	listLangs := flag.Bool("languages", false, "list supported languages and exit")
	showDiff := flag.Bool("diff", false, "print a diff of original and corrected text")
	interactive := flag.Bool("i", false, "review issues one by one (requires -f)")
	ignoreWL := flag.Bool("ignore-whitelisted", false, "hide whitelisted issues")
	spellOnly := flag.Bool("misspellings-only", false, "show spelling issues only")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	must(err)
	if *wlPath != "" {
		cfg.Paths.Whitelist = *wlPath
	}
	cfg.UserPref.IgnoreWhitelisted = cfg.UserPref.IgnoreWhitelisted || *ignoreWL
	cfg.UserPref.MisspellingsOnly = cfg.UserPref.MisspellingsOnly || *spellOnly

	client, err := ltcheck.New(cfg.Options())
	must(err)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *listLangs {
		langs := client.Languages(ctx)
		for _, l := range langs {
			fmt.Printf("%-30s %-8s %s\n", l.Name, l.Code, l.LongCode)
		}
		if len(langs) == 1 {
			fmt.Fprintln(os.Stderr, "ltcheck-cli: language discovery degraded, showing the configured default only")
		}
		return
	}

	code := resolveLanguage(ctx, client, cfg.Language.Default, *lang)

	if *interactive && *file == "" {
		must(fmt.Errorf("-i reads commands from stdin, so the text must come from -f"))
	}

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		must(err)
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	must(err)
	text := string(data)

	wl, err := ltcheck.LoadWhitelist(cfg.Paths.Whitelist)
	must(err)

	errs, err := client.Check(ctx, text, code, wl.Words())
	must(err)

	rv, err := ltcheck.NewReview(text, errs, wl, cfg.ReviewOptions())
	must(err)

	switch {
	case *interactive:
		must(runReview(os.Stdin, os.Stdout, rv, cfg.Paths.Whitelist))
	case *showDiff:
		fmt.Println(diffText(text, rv.Corrected()))
	default:
		must(util.WriteJSON(os.Stdout, ltcheck.NewReport(text, code, rv.Errors()), true))
	}
}

// resolveLanguage maps the -l value to a language code. The service is
// asked for its languages only when -l is set.
func resolveLanguage(ctx context.Context, c *ltcheck.Client, def, key string) string {
	if key == "" {
		return def
	}
	if l, ok := ltcheck.FindLanguage(c.Languages(ctx), key); ok {
		return l.LongCode
	}
	return key
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "ltcheck-cli:", err)
		os.Exit(1)
	}
}
