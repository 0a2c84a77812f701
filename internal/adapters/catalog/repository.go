// Package catalog provides the read-only tip repository.
// The catalog is decoded once from YAML, either the embedded dataset or a file
// named in configuration, and served from memory for the life of the process.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/ecotips/internal/domain"
)

//go:embed data/tips.yaml
var embeddedTips []byte

// ErrEmptyCatalog is reported by the health check when no tips are loaded.
var ErrEmptyCatalog = errors.New("catalog contains no tips")

// Config contains configuration for the repository.
type Config struct {
	// DataFile overrides the embedded dataset when set.
	DataFile string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Repository implements ports.TipRepository over an immutable in-memory collection.
type Repository struct {
	tips   []domain.Tip
	byID   map[int]int
	source string
}

// New loads the catalog described by cfg.
// Returns a *domain.ValidationError or *domain.ConflictError if the data is invalid.
func New(cfg Config) (*Repository, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	data, source := embeddedTips, "embedded"

	if cfg.DataFile != "" {
		b, err := os.ReadFile(cfg.DataFile)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}

		data, source = b, cfg.DataFile
	}

	tips, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", source, err)
	}

	repo, err := NewFromTips(tips)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", source, err)
	}

	repo.source = source

	logger.Info("catalog loaded",
		slog.String("source", source),
		slog.Int("tips", len(repo.tips)),
	)

	return repo, nil
}

// NewFromTips builds a repository over tips after validating them.
// The slice is copied; later changes by the caller are not observed.
func NewFromTips(tips []domain.Tip) (*Repository, error) {
	repo := &Repository{
		tips:   make([]domain.Tip, 0, len(tips)),
		byID:   make(map[int]int, len(tips)),
		source: "memory",
	}

	for i := range tips {
		if err := validateTip(&tips[i]); err != nil {
			return nil, err
		}

		if _, dup := repo.byID[tips[i].ID]; dup {
			return nil, domain.NewConflictErrorWithDetails("tip", "duplicate id", fmt.Sprintf("id %d", tips[i].ID))
		}

		repo.byID[tips[i].ID] = len(repo.tips)
		repo.tips = append(repo.tips, tips[i].Clone())
	}

	return repo, nil
}

func validateTip(t *domain.Tip) error {
	switch {
	case t.ID <= 0:
		return domain.NewValidationErrorWithValue("id", "must be a positive integer", t.ID)
	case t.Title == "":
		return domain.NewValidationErrorWithValue("title", fmt.Sprintf("tip %d has no title", t.ID), t.Title)
	case t.Category == "":
		return domain.NewValidationErrorWithValue("category", fmt.Sprintf("tip %d has no category", t.ID), t.Category)
	case !t.Impact.Valid():
		return domain.NewValidationErrorWithValue("impact", fmt.Sprintf("tip %d has unknown impact", t.ID), t.Impact)
	case !t.Difficulty.Valid():
		return domain.NewValidationErrorWithValue("difficulty", fmt.Sprintf("tip %d has unknown difficulty", t.ID), t.Difficulty)
	}

	return nil
}

// GetAll returns every tip in catalog order.
func (r *Repository) GetAll(_ context.Context) []domain.Tip {
	out := make([]domain.Tip, len(r.tips))
	for i := range r.tips {
		out[i] = r.tips[i].Clone()
	}

	return out
}

// GetByID returns the tip with the given id, or a *domain.NotFoundError.
func (r *Repository) GetByID(_ context.Context, id int) (domain.Tip, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Tip{}, domain.NewTipNotFoundError(id)
	}

	return r.tips[idx].Clone(), nil
}

// GetByCategory returns the tips whose normalized category equals category.
// The argument is normalized as well, so "Waste Reduction" and "waste-reduction"
// are equivalent.
func (r *Repository) GetByCategory(_ context.Context, category string) []domain.Tip {
	want := domain.NormalizeCategory(category)
	out := make([]domain.Tip, 0)

	for i := range r.tips {
		if r.tips[i].NormalizedCategory() == want {
			out = append(out, r.tips[i].Clone())
		}
	}

	return out
}

// Len returns the number of tips in the catalog.
func (r *Repository) Len() int {
	return len(r.tips)
}

// Source describes where the catalog was loaded from.
func (r *Repository) Source() string {
	return r.source
}

// Name returns the health check name.
// Implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "catalog"
}

// Check reports the catalog as unhealthy when it holds no tips.
// Implements ports.HealthChecker.
func (r *Repository) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(r.tips) == 0 {
		return ErrEmptyCatalog
	}

	return nil
}

// tipRecord is the on-disk shape of a tip. It is never exposed outside this package.
type tipRecord struct {
	ID               int      `yaml:"id"`
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	ShortDescription string   `yaml:"short_description"`
	Category         string   `yaml:"category"`
	Impact           string   `yaml:"impact"`
	Difficulty       string   `yaml:"difficulty"`
	TimeToImplement  string   `yaml:"time_to_implement"`
	CostSavings      string   `yaml:"cost_savings"`
	CarbonReduction  string   `yaml:"carbon_reduction"`
	Image            string   `yaml:"image"`
	Author           string   `yaml:"author"`
	AuthorBio        string   `yaml:"author_bio"`
	DatePublished    string   `yaml:"date_published"`
	ReadTime         string   `yaml:"read_time"`
	Tags             []string `yaml:"tags"`
	Steps            []string `yaml:"steps"`
	Benefits         []string `yaml:"benefits"`
	Tips             []string `yaml:"tips"`
}

type catalogFile struct {
	Tips []tipRecord `yaml:"tips"`
}

// Decode reads a YAML catalog document. Unknown keys are rejected.
func Decode(r io.Reader) ([]domain.Tip, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Tip{}, nil
		}

		return nil, domain.NewValidationError("catalog", err.Error())
	}

	tips := make([]domain.Tip, len(file.Tips))
	for i := range file.Tips {
		tips[i] = file.Tips[i].toDomain()
	}

	return tips, nil
}

func (rec *tipRecord) toDomain() domain.Tip {
	return domain.Tip{
		ID:               rec.ID,
		Title:            rec.Title,
		Description:      rec.Description,
		ShortDescription: rec.ShortDescription,
		Category:         rec.Category,
		Impact:           domain.Impact(rec.Impact),
		Difficulty:       domain.Difficulty(rec.Difficulty),
		TimeToImplement:  rec.TimeToImplement,
		CostSavings:      rec.CostSavings,
		CarbonReduction:  rec.CarbonReduction,
		Image:            rec.Image,
		Author:           rec.Author,
		AuthorBio:        rec.AuthorBio,
		DatePublished:    rec.DatePublished,
		ReadTime:         rec.ReadTime,
		Tags:             rec.Tags,
		Steps:            rec.Steps,
		Benefits:         rec.Benefits,
		Tips:             rec.Tips,
	}
}
