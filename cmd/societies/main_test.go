package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"societies/internal/catalog"
	"societies/internal/config"
	"societies/internal/domain"
	appErrors "societies/internal/errors"
	"societies/internal/prefs"
	"societies/internal/store"
	"societies/internal/ui"
)

func scenarioSocieties() []domain.Society {
	return []domain.Society{
		domain.MustSociety("Chess Club", "Weekly games.", "https://example.org/chess", "", "games"),
		domain.MustSociety("Robotics", "Build robots.", "https://example.org/robotics", "robotics.png", "tech", "games"),
		domain.MustSociety("Debate", "Motions and rebuttals.", "", "", "talks"),
	}
}

type mockSpinner struct {
	stages  []string
	stopped int
}

func (m *mockSpinner) Stage(detail string) { m.stages = append(m.stages, detail) }
func (m *mockSpinner) Stop()               { m.stopped++ }

type mockProgram struct {
	ran bool
	err error
}

func (m *mockProgram) Run() (tea.Model, error) {
	m.ran = true
	return nil, m.err
}

type harness struct {
	deps    deps
	source  *catalog.MockSource
	kv      *store.Memory
	spinner *mockSpinner
	program *mockProgram
	built   *ui.Config
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	opened  []string
}

func newHarness(t *testing.T, stored map[string]string) *harness {
	t.Helper()
	h := &harness{
		source:  catalog.NewMockSource(scenarioSocieties()...),
		kv:      store.NewMemory(stored),
		spinner: &mockSpinner{},
		program: &mockProgram{},
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	}
	h.deps = deps{
		openStore: func(_ context.Context, path string) (store.KV, error) {
			h.opened = append(h.opened, path)
			return h.kv, nil
		},
		source:  func(catalog.Options) catalog.Source { return h.source },
		spinner: func() startupAnimator { return h.spinner },
		builder: func(cfg ui.Config) (*ui.App, error) {
			h.built = &cfg
			return ui.NewApp(cfg)
		},
		factory: func(*ui.App) programRunner { return h.program },
		stdout:  h.stdout,
		stderr:  h.stderr,
	}
	return h
}

func baseRuntime() runtimeOptions {
	return runtimeOptions{
		catalogTimeout: time.Second,
		statePath:      "state.db",
		locale:         "en",
		outputFormat:   "plain",
	}
}

func TestComputeRuntimeOptionsPrecedence(t *testing.T) {
	cleanup := config.ResetForTesting(t)
	defer cleanup()

	if err := config.Set(config.KeyCatalogPath, "config.yaml"); err != nil {
		t.Fatalf("set catalog path: %v", err)
	}
	if err := config.Set(config.KeyStatePath, "config-state.db"); err != nil {
		t.Fatalf("set state path: %v", err)
	}

	catalogPath := "flag.yaml"
	timeout := 2 * time.Second
	statePath := ""
	flags := runtimeFlags{
		catalogPath:    &catalogPath,
		catalogTimeout: &timeout,
		statePath:      &statePath,
	}

	opts := computeRuntimeOptions(flags, map[string]struct{}{})
	if opts.catalogPath != "config.yaml" {
		t.Fatalf("expected config catalog path, got %q", opts.catalogPath)
	}
	if opts.catalogTimeout != config.DefaultCatalogTimeout {
		t.Fatalf("expected default timeout, got %v", opts.catalogTimeout)
	}
	if opts.statePath != "config-state.db" {
		t.Fatalf("expected config state path, got %q", opts.statePath)
	}
	if opts.locale != config.DefaultLocale {
		t.Fatalf("expected default locale, got %q", opts.locale)
	}

	visited := map[string]struct{}{"catalog": {}, "catalog-timeout": {}}
	opts = computeRuntimeOptions(flags, visited)
	if opts.catalogPath != "flag.yaml" {
		t.Fatalf("expected explicit flag to win, got %q", opts.catalogPath)
	}
	if opts.catalogTimeout != 2*time.Second {
		t.Fatalf("expected explicit timeout, got %v", opts.catalogTimeout)
	}
}

func TestComputeRuntimeOptionsRejectsNonPositiveTimeout(t *testing.T) {
	cleanup := config.ResetForTesting(t)
	defer cleanup()

	timeout := time.Duration(0)
	opts := computeRuntimeOptions(runtimeFlags{catalogTimeout: &timeout}, map[string]struct{}{"catalog-timeout": {}})
	if opts.catalogTimeout != config.DefaultCatalogTimeout {
		t.Fatalf("expected default timeout, got %v", opts.catalogTimeout)
	}
}

func TestCategoryFlagsSplitsValues(t *testing.T) {
	var c categoryFlags
	_ = c.Set("games, tech")
	_ = c.Set("")
	_ = c.Set("talks")
	if got := c.String(); got != "games,tech,talks" {
		t.Fatalf("unexpected categories %q", got)
	}
}

func TestListJSONAppliesPipeline(t *testing.T) {
	h := newHarness(t, map[string]string{prefs.KeyFavourites: `["Robotics"]`})
	rt := baseRuntime()
	rt.listOnly = true
	rt.jsonOutput = true
	rt.categories = []string{"games"}

	if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
		t.Fatalf("run: %v", err)
	}

	var got []listedSociety
	if err := json.Unmarshal(h.stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, h.stdout.String())
	}
	if len(got) != 2 || got[0].Name != "Robotics" || got[1].Name != "Chess Club" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !got[0].Favourite || got[1].Favourite {
		t.Fatalf("unexpected favourite flags: %+v", got)
	}
	if len(h.spinner.stages) != 0 {
		t.Fatalf("list mode should not animate, got %v", h.spinner.stages)
	}
	if h.program.ran {
		t.Fatal("list mode should not start the UI")
	}
}

func TestListTextRanksByQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query", query: "", want: []string{"Chess Club", "Debate", "Robotics"}},
		{name: "rob", query: "rob", want: []string{"Robotics", "Chess Club", "Debate"}},
		{name: "che", query: "che", want: []string{"Chess Club", "Debate", "Robotics"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			rt := baseRuntime()
			rt.listOnly = true
			rt.query = tt.query

			if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
				t.Fatalf("run: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
			if len(lines) != len(tt.want) {
				t.Fatalf("expected %d lines, got %q", len(tt.want), h.stdout.String())
			}
			for i, name := range tt.want {
				if !strings.Contains(lines[i], name) {
					t.Fatalf("line %d: expected %q, got %q", i, name, lines[i])
				}
			}
		})
	}
}

func TestListTextMarksFavourites(t *testing.T) {
	h := newHarness(t, map[string]string{prefs.KeyFavourites: `["Debate"]`})
	rt := baseRuntime()
	rt.listOnly = true

	if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
		t.Fatalf("run: %v", err)
	}
	first := strings.SplitN(h.stdout.String(), "\n", 2)[0]
	if first != "★ Debate [talks]" {
		t.Fatalf("unexpected first line %q", first)
	}
	if !strings.Contains(h.stdout.String(), "  Chess Club [games]  https://example.org/chess") {
		t.Fatalf("expected href in output:\n%s", h.stdout.String())
	}
}

func TestLinkSeedsQuery(t *testing.T) {
	h := newHarness(t, nil)
	rt := baseRuntime()
	rt.listOnly = true
	rt.link = "https://societies.example/?q=rob"

	if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(h.stdout.String(), "  Robotics") {
		t.Fatalf("expected Robotics first:\n%s", h.stdout.String())
	}
}

func TestUnknownCategoryWarns(t *testing.T) {
	h := newHarness(t, nil)
	rt := baseRuntime()
	rt.listOnly = true
	rt.categories = []string{"sailing", "games", "games"}

	if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(h.stderr.String(), `unknown category "sailing"`) {
		t.Fatalf("expected warning, got %q", h.stderr.String())
	}
	if strings.Contains(h.stdout.String(), "Debate") {
		t.Fatalf("games filter should exclude Debate:\n%s", h.stdout.String())
	}
}

func TestEmptyListMessage(t *testing.T) {
	h := newHarness(t, nil)
	h.source = catalog.NewMockSource()
	rt := baseRuntime()
	rt.listOnly = true

	if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "No societies match") {
		t.Fatalf("expected empty message, got %q", h.stdout.String())
	}
}

func TestCatalogErrorStopsStartup(t *testing.T) {
	h := newHarness(t, nil)
	h.source.ListFn = func(context.Context) ([]domain.Society, error) {
		return nil, appErrors.New(appErrors.CodeCatalogUnavailable, "catalog offline", nil)
	}

	err := runWithRuntime(context.Background(), baseRuntime(), h.deps)
	if err == nil || !strings.Contains(err.Error(), "load catalog") {
		t.Fatalf("expected catalog error, got %v", err)
	}
	if !appErrors.IsCode(err, appErrors.CodeCatalogUnavailable) {
		t.Fatalf("expected code to survive wrapping, got %q", appErrors.CodeOf(err))
	}
	if len(h.opened) != 0 {
		t.Fatal("store should not open when the catalog fails")
	}
	if h.spinner.stopped == 0 {
		t.Fatal("spinner should stop on failure")
	}
}

func TestStoreOpenErrorFallsBackToMemory(t *testing.T) {
	h := newHarness(t, nil)
	h.deps.openStore = func(context.Context, string) (store.KV, error) {
		return nil, appErrors.New(appErrors.CodeStorageFailed, "locked", nil)
	}
	rt := baseRuntime()
	rt.listOnly = true

	if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
		t.Fatalf("expected fallback to memory, got %v", err)
	}
	if !strings.Contains(h.stderr.String(), "preferences unavailable") {
		t.Fatalf("expected warning, got %q", h.stderr.String())
	}
	if !strings.Contains(h.stdout.String(), "Chess Club") {
		t.Fatalf("expected list output, got %q", h.stdout.String())
	}
}

func TestCorruptStateDBFallsBackToMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	if err := os.WriteFile(path, []byte("definitely not a sqlite database, just junk bytes"), 0o600); err != nil {
		t.Fatalf("write junk db: %v", err)
	}
	h := newHarness(t, nil)
	h.deps.openStore = store.Open
	rt := baseRuntime()
	rt.listOnly = true
	rt.statePath = path

	if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
		t.Fatalf("expected fallback to memory, got %v", err)
	}
	if !strings.HasPrefix(h.stdout.String(), "  Chess Club") {
		t.Fatalf("expected list output, got %q", h.stdout.String())
	}
}

func TestInteractiveRunBuildsApp(t *testing.T) {
	h := newHarness(t, nil)
	h.deps.saveTheme = func(string) error { return nil }
	rt := baseRuntime()
	rt.theme = "tokyonight"

	if err := runWithRuntime(context.Background(), rt, h.deps); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !h.program.ran {
		t.Fatal("expected program to run")
	}
	if h.spinner.stopped == 0 {
		t.Fatal("expected spinner to stop before the UI starts")
	}
	if len(h.spinner.stages) != startupStages {
		t.Fatalf("expected %d stages, got %v", startupStages, h.spinner.stages)
	}
	if h.built == nil || h.built.State == nil {
		t.Fatal("expected UI config with state")
	}
	if h.built.ProjectURL != "https://github.com/tonyaellie/society-list" || h.built.SaveTheme == nil {
		t.Fatalf("unexpected UI config: %+v", h.built)
	}
	if h.built.OutputFormat != "plain" {
		t.Fatalf("expected output format to pass through, got %q", h.built.OutputFormat)
	}
	if len(h.opened) != 1 || h.opened[0] != "state.db" {
		t.Fatalf("unexpected store paths %v", h.opened)
	}
}

func TestInteractiveRunErrors(t *testing.T) {
	t.Run("builder", func(t *testing.T) {
		h := newHarness(t, nil)
		h.deps.builder = func(ui.Config) (*ui.App, error) { return nil, errors.New("boom") }
		err := runWithRuntime(context.Background(), baseRuntime(), h.deps)
		if err == nil || !strings.Contains(err.Error(), "initialize UI") {
			t.Fatalf("expected builder error, got %v", err)
		}
	})
	t.Run("program", func(t *testing.T) {
		h := newHarness(t, nil)
		h.program.err = errors.New("tty gone")
		err := runWithRuntime(context.Background(), baseRuntime(), h.deps)
		if err == nil || !strings.Contains(err.Error(), "run UI") {
			t.Fatalf("expected program error, got %v", err)
		}
	})
	t.Run("nil factory", func(t *testing.T) {
		h := newHarness(t, nil)
		h.deps.factory = nil
		if err := runWithRuntime(context.Background(), baseRuntime(), h.deps); err == nil {
			t.Fatal("expected error for nil factory")
		}
	})
}

func TestUnknownThemeWarns(t *testing.T) {
	var buf bytes.Buffer
	applyTheme("no-such-theme", &buf)
	if !strings.Contains(buf.String(), "unknown theme") {
		t.Fatalf("expected warning, got %q", buf.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New("plain"), 1},
		{appErrors.New(appErrors.CodeNotFound, "missing", nil), 3},
		{appErrors.New(appErrors.CodeParseFailed, "bad", nil), 4},
		{appErrors.New(appErrors.CodeStorageFailed, "locked", nil), 5},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Fatalf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
