package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"societies/internal/catalog"
	"societies/internal/config"
	"societies/internal/debug"
	"societies/internal/directory"
	appErrors "societies/internal/errors"
	"societies/internal/prefs"
	"societies/internal/store"
	"societies/internal/ui"
	"societies/internal/ui/theme"
)

const projectURL = "https://github.com/tonyaellie/society-list"

// categoryFlags collects repeated --category values.
type categoryFlags []string

func (c *categoryFlags) String() string { return strings.Join(*c, ",") }

func (c *categoryFlags) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*c = append(*c, part)
		}
	}
	return nil
}

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log to ~/.societies/debug.log")
	catalogFlag := flag.String("catalog", config.GetString(config.KeyCatalogPath), "Path to a YAML or JSON catalog file")
	catalogURLFlag := flag.String("catalog-url", config.GetString(config.KeyCatalogURL), "URL of a YAML or JSON catalog")
	catalogTimeoutFlag := flag.Duration("catalog-timeout", config.GetDuration(config.KeyCatalogTimeout), "Timeout for fetching a remote catalog")
	stateFlag := flag.String("state-db", config.GetString(config.KeyStatePath), "Path to the preferences database (default ~/.societies/state.db)")
	queryFlag := flag.String("query", "", "Initial search text")
	linkFlag := flag.String("link", "", "Shared link or query string whose q parameter seeds the search")
	listFlag := flag.Bool("list", false, "Print the directory instead of starting the UI")
	jsonFlag := flag.Bool("json", config.GetBool(config.KeyOutputJSON), "With --list, print JSON")
	outputFormatFlag := flag.String("output-format", config.GetString(config.KeyOutputFormat), "Description markdown style (rich, light, plain)")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Colour theme")
	localeFlag := flag.String("locale", config.GetString(config.KeyLocale), "Locale used to sort names (BCP 47)")
	var categories categoryFlags
	flag.Var(&categories, "category", "Only show societies in this category (repeatable, comma separated)")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}
	defer debug.Close()

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		catalogPath:    catalogFlag,
		catalogURL:     catalogURLFlag,
		catalogTimeout: catalogTimeoutFlag,
		statePath:      stateFlag,
		jsonOutput:     jsonFlag,
		outputFormat:   outputFormatFlag,
		theme:          themeFlag,
		locale:         localeFlag,
	}, visited)
	runtime.query = *queryFlag
	runtime.link = *linkFlag
	runtime.listOnly = *listFlag
	runtime.categories = categories

	if err := runWithRuntime(context.Background(), runtime, defaultDeps()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// startupAnimator shows progress while the catalog and preferences load.
type startupAnimator interface {
	Stage(detail string)
	Stop()
}

type deps struct {
	openStore func(context.Context, string) (store.KV, error)
	source    func(catalog.Options) catalog.Source
	spinner   func() startupAnimator
	builder   func(ui.Config) (*ui.App, error)
	factory   programFactory
	saveTheme func(string) error
	stdout    io.Writer
	stderr    io.Writer
}

func defaultDeps() deps {
	return deps{
		openStore: store.Open,
		source:    catalog.Resolve,
		spinner: func() startupAnimator {
			return NewStartupDisplay(os.Stderr)
		},
		builder: ui.NewApp,
		factory: func(app *ui.App) programRunner {
			return tea.NewProgram(app, tea.WithAltScreen())
		},
		saveTheme: config.SaveTheme,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

func runWithRuntime(ctx context.Context, runtime runtimeOptions, d deps) error {
	if d.stdout == nil {
		d.stdout = io.Discard
	}
	if d.stderr == nil {
		d.stderr = io.Discard
	}

	var anim startupAnimator
	if !runtime.listOnly && d.spinner != nil {
		anim = d.spinner()
	}
	stop := func() {
		if anim != nil {
			anim.Stop()
			anim = nil
		}
	}
	defer stop()

	src := d.source(catalog.Options{
		Path:    runtime.catalogPath,
		URL:     runtime.catalogURL,
		Timeout: runtime.catalogTimeout,
	})
	if anim != nil {
		anim.Stage("Loading societies from " + catalog.Describe(src))
	}
	loadCtx, cancel := context.WithTimeout(ctx, runtime.catalogTimeout)
	societies, err := src.List(loadCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if anim != nil {
		anim.Stage("Opening preferences")
	}
	kv, err := d.openStore(ctx, runtime.statePath)
	if err != nil {
		debug.Logf("open preferences at %s: %v", runtime.statePath, err)
		fmt.Fprintf(d.stderr, "Warning: preferences unavailable, favourites will not be saved: %v\n", err)
		kv = store.NewMemory(nil)
	}
	if closer, ok := kv.(store.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	state := directory.New(societies, prefs.New(kv),
		directory.WithLocale(directory.ParseLocale(runtime.locale)),
		directory.WithQuery(runtime.query),
		directory.WithSeedLink(runtime.link),
	)
	for _, c := range runtime.categories {
		if state.IsSelected(c) {
			continue
		}
		if !state.ToggleCategory(c).Has(c) {
			fmt.Fprintf(d.stderr, "Warning: unknown category %q ignored\n", c)
		}
	}

	if runtime.listOnly {
		return printList(d.stdout, state, runtime.jsonOutput)
	}

	applyTheme(runtime.theme, d.stderr)
	stop()

	app, err := d.builder(ui.Config{
		State:        state,
		OutputFormat: runtime.outputFormat,
		ProjectURL:   projectURL,
		Version:      displayVersion(),
		CatalogLabel: catalog.Describe(src),
		SaveTheme:    d.saveTheme,
	})
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if d.factory == nil {
		return errors.New("program factory is nil")
	}
	prog := d.factory(app)
	if prog == nil {
		return errors.New("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

func applyTheme(name string, stderr io.Writer) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if !theme.Set(name) {
		fmt.Fprintf(stderr, "Warning: unknown theme %q (available: %s)\n", name, strings.Join(theme.Available(), ", "))
	}
}

type runtimeFlags struct {
	catalogPath    *string
	catalogURL     *string
	catalogTimeout *time.Duration
	statePath      *string
	jsonOutput     *bool
	outputFormat   *string
	theme          *string
	locale         *string
}

type runtimeOptions struct {
	catalogPath    string
	catalogURL     string
	catalogTimeout time.Duration
	statePath      string
	jsonOutput     bool
	outputFormat   string
	theme          string
	locale         string

	query      string
	link       string
	listOnly   bool
	categories []string
}

// computeRuntimeOptions merges config with flags; a flag only wins when the
// user set it explicitly.
func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	pick := func(name string, flagValue *string, key string) string {
		if flagValue != nil && flagWasExplicitlySet(name, visited) {
			return strings.TrimSpace(*flagValue)
		}
		return strings.TrimSpace(config.GetString(key))
	}

	opts := runtimeOptions{
		catalogPath:    pick("catalog", flags.catalogPath, config.KeyCatalogPath),
		catalogURL:     pick("catalog-url", flags.catalogURL, config.KeyCatalogURL),
		catalogTimeout: config.GetDuration(config.KeyCatalogTimeout),
		outputFormat:   pick("output-format", flags.outputFormat, config.KeyOutputFormat),
		theme:          pick("theme", flags.theme, config.KeyTheme),
		locale:         pick("locale", flags.locale, config.KeyLocale),
		jsonOutput:     config.GetBool(config.KeyOutputJSON),
	}
	if flags.catalogTimeout != nil && flagWasExplicitlySet("catalog-timeout", visited) {
		opts.catalogTimeout = *flags.catalogTimeout
	}
	if opts.catalogTimeout <= 0 {
		opts.catalogTimeout = config.DefaultCatalogTimeout
	}
	if flags.jsonOutput != nil && flagWasExplicitlySet("json", visited) {
		opts.jsonOutput = *flags.jsonOutput
	}

	opts.statePath = pick("state-db", flags.statePath, config.KeyStatePath)
	if opts.statePath == "" {
		if path, err := config.StatePath(); err == nil {
			opts.statePath = path
		} else {
			debug.Logf("state path unavailable, preferences will not persist: %v", err)
		}
	}
	return opts
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

// exitCode maps structured errors to distinct process exit codes.
func exitCode(err error) int {
	switch appErrors.CodeOf(err) {
	case appErrors.CodeNotFound, appErrors.CodeCatalogUnavailable:
		return 3
	case appErrors.CodeParseFailed, appErrors.CodeInvalidSocietyData, appErrors.CodeDuplicateSociety:
		return 4
	case appErrors.CodeStorageFailed:
		return 5
	default:
		return 1
	}
}
