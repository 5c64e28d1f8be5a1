package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/phishguard/guardkit"
	"github.com/phishguard/guardkit/pkg/formmodel"
	"github.com/phishguard/guardkit/pkg/forms"
	"github.com/phishguard/guardkit/pkg/history/gormstore"
	"github.com/phishguard/guardkit/pkg/policy"
	"github.com/phishguard/guardkit/pkg/report"
	"github.com/phishguard/guardkit/pkg/report/web"
	"github.com/phishguard/guardkit/pkg/tui"
)

const envHistoryDB = "GUARDKIT_HISTORY_DB"

func main() {
	// Missing .env files are fine; explicit env vars still apply.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "validate":
		err = runValidate(ctx, os.Args[2:])
	case "register":
		err = runRegister(ctx)
	case "strength":
		err = runStrength(os.Args[2:])
	case "scan":
		err = runScan(ctx, os.Args[2:])
	case "history":
		err = runHistory(ctx, os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("guardkit-cli: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(`
usage: guardkit-cli <command> [flags]

commands:
  validate   check a registration form snapshot (JSON) and print the summary
  register   fill the registration form interactively
  strength   score a password for the signup meter
  scan       analyze a URL and print the report
  history    list or clear recorded scans

environment:
  GUARDKIT_HISTORY_DB  path to the SQLite history database (also read from .env)
`))
}

func runValidate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	input := fs.String("input", "-", "registration form JSON file, - for stdin")
	renderer := fs.String("renderer", "text", "renderer to use (text, html)")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readInput(*input)
	if err != nil {
		return err
	}
	var form forms.RegistrationForm
	if err := json.Unmarshal(data, &form); err != nil {
		return fmt.Errorf("parse form JSON: %w", err)
	}

	engine, err := newEngine("")
	if err != nil {
		return err
	}

	errs := engine.ValidateRegistration(form)
	meter := engine.PasswordStrength(form.Password)

	rendered, err := engine.Renderers().RenderValidation(ctx, *renderer, formmodel.RegistrationForm(), report.Options{
		Values: map[string]string{
			forms.FieldFullName:        form.FullName,
			forms.FieldEmail:           form.Email,
			forms.FieldPassword:        form.Password,
			forms.FieldConfirmPassword: form.ConfirmPassword,
			forms.FieldAgreeToTerms:    fmt.Sprintf("%t", form.AgreeToTerms),
			forms.FieldAgreeToPrivacy:  fmt.Sprintf("%t", form.AgreeToPrivacy),
		},
		Errors:   errs,
		Strength: &meter,
	})
	if err != nil {
		return err
	}
	if err := writeOutput(*output, rendered); err != nil {
		return err
	}

	if !errs.Valid() {
		os.Exit(1)
	}
	return nil
}

func runRegister(ctx context.Context) error {
	session, err := tui.New()
	if err != nil {
		return err
	}

	form, err := session.RunRegistration(ctx)
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(os.Stderr, "registration aborted")
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}

func runStrength(args []string) error {
	fs := flag.NewFlagSet("strength", flag.ExitOnError)
	password := fs.String("password", "", "password to score")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" && fs.NArg() > 0 {
		*password = fs.Arg(0)
	}

	engine, err := newEngine("")
	if err != nil {
		return err
	}

	meter := engine.PasswordStrength(*password)
	fmt.Printf("%s (%d/5)\n", meter.Level, meter.Score)
	for _, check := range []struct {
		label string
		ok    bool
	}{
		{"at least 8 characters", meter.Criteria.Length8},
		{"at least 12 characters", meter.Criteria.Length12},
		{"mixed case", meter.Criteria.MixedCase},
		{"a number", meter.Criteria.Digit},
		{"a special character", meter.Criteria.Symbol},
	} {
		mark := " "
		if check.ok {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, check.label)
	}
	return nil
}

func runScan(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	rawURL := fs.String("url", "", "URL to analyze")
	renderer := fs.String("renderer", "text", "renderer to use (text, html)")
	output := fs.String("output", "", "output file (stdout if empty)")
	policyPath := fs.String("policy", "", "analysis policy overlay (YAML or JSON)")
	db := fs.String("db", os.Getenv(envHistoryDB), "SQLite history database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rawURL == "" && fs.NArg() > 0 {
		*rawURL = fs.Arg(0)
	}
	if *rawURL == "" {
		return fmt.Errorf("a URL is required (use -url)")
	}

	options := []guardkit.Option{}
	if *policyPath != "" {
		p, err := policy.LoadFile(*policyPath)
		if err != nil {
			return err
		}
		options = append(options, guardkit.WithPolicy(p))
	}

	engine, err := newEngine(*db, options...)
	if err != nil {
		return err
	}

	var rep = engine.AnalyzeURL(*rawURL)
	if *db != "" {
		rep, _, err = engine.ScanURL(ctx, *rawURL)
		if err != nil {
			return err
		}
	}

	rendered, err := engine.RenderReport(ctx, *renderer, rep, report.Options{})
	if err != nil {
		return err
	}
	return writeOutput(*output, rendered)
}

func runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("limit", 10, "entries to list, newest first")
	clear := fs.Bool("clear", false, "remove every recorded scan")
	db := fs.String("db", os.Getenv(envHistoryDB), "SQLite history database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *db == "" {
		return fmt.Errorf("history needs a database (set %s or -db)", envHistoryDB)
	}

	engine, err := newEngine(*db)
	if err != nil {
		return err
	}

	if *clear {
		if err := engine.History().Clear(ctx); err != nil {
			return err
		}
		fmt.Println("history cleared")
		return nil
	}

	stats, err := engine.ScanStats(ctx)
	if err != nil {
		return err
	}
	entries, err := engine.RecentScans(ctx, *limit)
	if err != nil {
		return err
	}

	fmt.Printf("%d scan(s), %d flagged as phishing\n", stats.TotalScans, stats.PhishingDetected)
	for _, entry := range entries {
		fmt.Printf("%s  %-10s  %5.1f%%  %-6s  %s\n",
			entry.ScannedAt.Format("2006-01-02 15:04:05"),
			entry.Verdict, entry.Confidence*100, entry.RiskLevel, entry.URL)
	}
	return nil
}

// newEngine wires the facade: SQLite-backed history when a db path is set,
// in-memory otherwise, plus the HTML renderer alongside the default text
// one.
func newEngine(db string, extra ...guardkit.Option) (*guardkit.Engine, error) {
	htmlRenderer, err := web.New()
	if err != nil {
		return nil, err
	}

	options := []guardkit.Option{guardkit.WithRenderer(htmlRenderer)}
	if db != "" {
		store, err := gormstore.Open(db)
		if err != nil {
			return nil, fmt.Errorf("open history db: %w", err)
		}
		options = append(options, guardkit.WithHistory(store))
	}
	options = append(options, extra...)

	return guardkit.New(options...)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("written to %s\n", path)
	return nil
}
