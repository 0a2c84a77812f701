// Package cli is the interactive terminal client for the tips API.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jsamuelsen/ecotips/internal/app"
	"github.com/jsamuelsen/ecotips/internal/domain"
	"github.com/jsamuelsen/ecotips/internal/domain/search"
	"github.com/jsamuelsen/ecotips/internal/ports"
)

const (
	prompt = "ecotips> "

	// fetchConcurrency bounds the parallel tip fetches of the favorites command.
	fetchConcurrency = 4
)

// ErrQuit is returned by Execute for the quit command.
var ErrQuit = errors.New("quit")

// Config contains the dependencies of a Controller.
type Config struct {
	Catalog     ports.TipCatalog
	Favorites   ports.PreferenceStore
	Implemented ports.PreferenceStore

	// Health backs the health command. Optional.
	Health ports.HealthRegistry

	In  io.Reader
	Out io.Writer

	// Interactive shows a prompt before each command.
	Interactive bool

	Logger *slog.Logger
}

// Controller reads commands and renders results. Search filters persist between
// commands until cleared.
type Controller struct {
	catalog     ports.TipCatalog
	favorites   ports.PreferenceStore
	implemented ports.PreferenceStore
	health      ports.HealthRegistry

	in          io.Reader
	out         io.Writer
	interactive bool
	logger      *slog.Logger

	params search.Params
}

type command struct {
	usage string
	help  string
	run   func(c *Controller, ctx context.Context, args string) error
}

var commands map[string]command

// order fixes the help listing.
var order = []string{"list", "category", "search", "filter", "clear", "show", "fav", "done", "favorites", "stats", "health", "help", "quit"}

func init() {
	commands = map[string]command{
		"list":      {"list", "list every tip", (*Controller).list},
		"category":  {"category <name>", "list the tips of one category", (*Controller).category},
		"search":    {"search <text>", "search titles, descriptions, categories, authors and tags", (*Controller).search},
		"filter":    {"filter key=value...", "filter by category, difficulty or impact", (*Controller).filter},
		"clear":     {"clear", "reset the search text and filters", (*Controller).clear},
		"show":      {"show <id>", "show a tip and related tips", (*Controller).show},
		"fav":       {"fav <id>", "toggle a favorite", (*Controller).toggleFavorite},
		"done":      {"done <id>", "toggle implemented", (*Controller).toggleImplemented},
		"favorites": {"favorites", "list favorite tips", (*Controller).listFavorites},
		"stats":     {"stats", "show the estimated impact", (*Controller).stats},
		"health":    {"health", "check the tips API", (*Controller).checkHealth},
		"help":      {"help", "show this help", (*Controller).help},
		"quit":      {"quit", "exit", func(*Controller, context.Context, string) error { return ErrQuit }},
	}
}

// New creates a controller. It panics if the catalog or either store is nil.
func New(cfg Config) *Controller {
	if cfg.Catalog == nil || cfg.Favorites == nil || cfg.Implemented == nil {
		panic("cli: New requires a catalog and both preference stores")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	in := cfg.In
	if in == nil {
		in = strings.NewReader("")
	}

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	return &Controller{
		catalog:     cfg.Catalog,
		favorites:   cfg.Favorites,
		implemented: cfg.Implemented,
		health:      cfg.Health,
		in:          in,
		out:         out,
		interactive: cfg.Interactive,
		logger:      logger.With(slog.String("component", "cli.Controller")),
	}
}

// Run executes commands line by line until quit, end of input or ctx is done.
// Command failures are reported to the user and do not stop the loop.
// Input is read on its own goroutine so a cancelled ctx ends Run while a read
// is still blocked.
func (c *Controller) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines, readErr := c.readLines(readCtx)

	if c.interactive {
		c.printf("Sustainable living tips. Type \"help\" for commands.\n")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.interactive {
			c.printf("%s", prompt)
		}

		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			return nil
		}

		err := c.Execute(ctx, line)
		if errors.Is(err, ErrQuit) {
			return nil
		}

		if err != nil {
			c.printf("error: %s\n", describe(err))
		}
	}
}

// readLines streams c.in until end of input or ctx is done. The error channel
// receives the scanner error once lines is closed. A read blocked in c.in keeps
// the goroutine alive until the reader returns.
func (c *Controller) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// Execute runs a single command line. Blank lines are ignored.
func (c *Controller) Execute(ctx context.Context, line string) error {
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	if name == "" {
		return nil
	}

	name = strings.ToLower(name)
	if name == "exit" {
		name = "quit"
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try \"help\"", name)
	}

	c.logger.DebugContext(ctx, "executing command", slog.String("command", name))

	return cmd.run(c, ctx, strings.TrimSpace(args))
}

// Params returns the persisted search state.
func (c *Controller) Params() search.Params {
	return c.params
}

func (c *Controller) list(ctx context.Context, _ string) error {
	tips, err := c.catalog.ListTips(ctx)
	if err != nil {
		return err
	}

	c.renderTips(tips)

	return nil
}

func (c *Controller) category(ctx context.Context, args string) error {
	if args == "" {
		return errors.New("usage: category <name>")
	}

	tips, err := c.catalog.ListByCategory(ctx, args)
	if err != nil {
		return err
	}

	c.renderTips(tips)

	return nil
}

func (c *Controller) search(ctx context.Context, args string) error {
	c.params.Text = args

	return c.runQuery(ctx)
}

func (c *Controller) filter(ctx context.Context, args string) error {
	next, err := parseFilters(c.params, args)
	if err != nil {
		return err
	}

	c.params = next

	return c.runQuery(ctx)
}

func (c *Controller) clear(_ context.Context, _ string) error {
	c.params = search.Params{}
	c.printf("Filters cleared.\n")

	return nil
}

func (c *Controller) runQuery(ctx context.Context) error {
	tips, err := c.catalog.ListTips(ctx)
	if err != nil {
		return err
	}

	q := search.NewQuery(c.params)
	results := search.Apply(tips, q)

	if !q.IsEmpty() {
		c.printf("%s\n", describeQuery(q))
	}

	c.renderTips(results)

	return nil
}

func (c *Controller) show(ctx context.Context, args string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	tip, all, err := app.Parallel2(ctx,
		func(ctx context.Context) (domain.Tip, error) { return c.catalog.GetTip(ctx, id) },
		func(ctx context.Context) ([]domain.Tip, error) { return c.catalog.ListTips(ctx) },
	)
	if err != nil {
		return err
	}

	sameCategory := make([]domain.Tip, 0, len(all))
	for i := range all {
		if all[i].NormalizedCategory() == tip.NormalizedCategory() {
			sameCategory = append(sameCategory, all[i])
		}
	}

	c.renderTip(&tip)

	if related := search.Related(sameCategory, tip.ID, search.DefaultRelatedLimit); len(related) > 0 {
		c.printf("\nRelated tips:\n")
		c.renderTips(related)
	}

	return nil
}

func (c *Controller) toggleFavorite(ctx context.Context, args string) error {
	return c.toggle(ctx, args, c.favorites, "favorites")
}

func (c *Controller) toggleImplemented(ctx context.Context, args string) error {
	return c.toggle(ctx, args, c.implemented, "implemented")
}

func (c *Controller) toggle(ctx context.Context, args string, store ports.PreferenceStore, list string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	tip, err := c.catalog.GetTip(ctx, id)
	if err != nil {
		return err
	}

	on := !store.Get(id)
	if err := store.Set(id, on); err != nil {
		return err
	}

	if on {
		c.printf("Added %q to %s.\n", tip.Title, list)
	} else {
		c.printf("Removed %q from %s.\n", tip.Title, list)
	}

	return nil
}

func (c *Controller) listFavorites(ctx context.Context, _ string) error {
	lister, ok := c.favorites.(ports.PreferenceLister)
	if !ok {
		return c.scanFavorites(ctx)
	}

	ids := lister.IDs()
	if len(ids) == 0 {
		c.printf("No favorites yet. Use \"fav <id>\" to add one.\n")
		return nil
	}

	fetches := make([]func(context.Context) (domain.Tip, error), len(ids))
	for i, id := range ids {
		fetches[i] = func(ctx context.Context) (domain.Tip, error) { return c.catalog.GetTip(ctx, id) }
	}

	tips := make([]domain.Tip, 0, len(ids))

	for i, r := range app.ParallelPartialLimit(ctx, fetchConcurrency, fetches...) {
		switch {
		case r.Err == nil:
			tips = append(tips, r.Value)

		case domain.IsNotFound(r.Err):
			c.logger.DebugContext(ctx, "favorite no longer in catalog", slog.Int("tip_id", ids[i]))

		default:
			return r.Err
		}
	}

	c.renderTips(tips)

	return nil
}

// scanFavorites serves stores that cannot enumerate their ids.
func (c *Controller) scanFavorites(ctx context.Context) error {
	all, err := c.catalog.ListTips(ctx)
	if err != nil {
		return err
	}

	tips := make([]domain.Tip, 0)

	for i := range all {
		if c.favorites.Get(all[i].ID) {
			tips = append(tips, all[i])
		}
	}

	c.renderTips(tips)

	return nil
}

func (c *Controller) stats(ctx context.Context, _ string) error {
	tips, err := c.catalog.ListTips(ctx)
	if err != nil {
		return err
	}

	implemented := make([]domain.Tip, 0)

	for i := range tips {
		if c.implemented.Get(tips[i].ID) {
			implemented = append(implemented, tips[i])
		}
	}

	all := domain.Summarize(tips)
	mine := domain.Summarize(implemented)

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\tCatalog\tImplemented\n")
	fmt.Fprintf(w, "Tips\t%d\t%d\n", all.TipCount, mine.TipCount)
	fmt.Fprintf(w, "CO2 reduction (tons/year)\t%.1f\t%.1f\n", all.CarbonReductionTons, mine.CarbonReductionTons)
	fmt.Fprintf(w, "Cost savings (USD/year)\t%d\t%d\n", all.CostSavingsUSD, mine.CostSavingsUSD)

	return w.Flush()
}

func (c *Controller) checkHealth(ctx context.Context, _ string) error {
	if c.health == nil {
		return errors.New("health checks are not configured")
	}

	result := c.health.CheckAll(ctx)
	c.printf("Status: %s\n", result.Status)

	for _, name := range sortedKeys(result.Checks) {
		check := result.Checks[name]
		if check.Message != "" {
			c.printf("  %s: %s (%s)\n", name, check.Status, check.Message)
			continue
		}

		c.printf("  %s: %s\n", name, check.Status)
	}

	return nil
}

func (c *Controller) help(_ context.Context, _ string) error {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for _, name := range order {
		fmt.Fprintf(w, "  %s\t%s\n", commands[name].usage, commands[name].help)
	}

	return w.Flush()
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func parseID(args string) (int, error) {
	if args == "" {
		return 0, errors.New("a tip id is required")
	}

	id, err := strconv.Atoi(args)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid tip id %q", args)
	}

	return id, nil
}

// parseFilters applies key=value pairs to p. A token without "=" continues the
// previous value, so "category=Waste Reduction" works unquoted.
func parseFilters(p search.Params, args string) (search.Params, error) {
	if args == "" {
		return p, errors.New("usage: filter key=value..., keys: category, difficulty, impact")
	}

	var current *string

	for _, token := range strings.Fields(args) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			if current == nil {
				return p, fmt.Errorf("expected key=value, got %q", token)
			}

			*current += " " + token

			continue
		}

		switch strings.ToLower(key) {
		case "category":
			current = &p.Category
		case "difficulty":
			current = &p.Difficulty
		case "impact":
			current = &p.Impact
		default:
			return p, fmt.Errorf("unknown filter %q, keys: category, difficulty, impact", key)
		}

		*current = value
	}

	return p, nil
}

// describe turns domain errors into short user-facing messages.
func describe(err error) string {
	switch {
	case domain.IsNotFound(err):
		var nf *domain.NotFoundError
		if errors.As(err, &nf) && nf.ID != "" {
			return "no tip with id " + nf.ID
		}

		return "not found"

	case domain.IsUnavailable(err):
		return "the tips API is unavailable, try again later"

	default:
		return err.Error()
	}
}
