package rifme

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/nfriday/rifme-grabber/internal/client/rifme"
	"github.com/nfriday/rifme-grabber/internal/config"
	"github.com/nfriday/rifme-grabber/internal/logger"
)

// Service provides methods for looking up rhyme suggestions.
type Service interface {
	// FetchRhymes returns rhyme suggestions for the given word, honoring the filters in options.
	FetchRhymes(ctx context.Context, word string, options *rifme.RequestOptions) ([]string, error)
}

// ServiceImpl implements the rhyme lookup service.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// rifmeClient is the client for interacting with the rifme.net service.
	rifmeClient rifme.Client
}

const (
	// minSyllableCount is the lowest syllable count covered by the fan-out.
	minSyllableCount = 1
	// maxSyllableCount is the highest syllable count covered by the fan-out.
	maxSyllableCount = 8
)

// NewService creates a rhyme lookup service instance with dependency-injected components.
func NewService(cfg *config.Config, rifmeClient rifme.Client) Service {
	return &ServiceImpl{
		cfg:         cfg,
		rifmeClient: rifmeClient,
	}
}

// FetchRhymes returns rhyme suggestions for the given word.
// A positive syllable filter performs a single lookup; otherwise the
// lookup fans out over syllable counts 1 through 8 concurrently and the
// results are concatenated in syllable-count order, without deduplication.
func (s *ServiceImpl) FetchRhymes(ctx context.Context, word string, options *rifme.RequestOptions) ([]string, error) {
	if options == nil {
		options = &rifme.RequestOptions{}
	}

	if options.Syllables != nil && *options.Syllables > 0 {
		return s.fetchRhymesOnce(ctx, word, options)
	}

	return s.fetchRhymesAcrossSyllables(ctx, word, options)
}

// fetchRhymesOnce performs a single fetch-and-extract cycle.
func (s *ServiceImpl) fetchRhymesOnce(ctx context.Context, word string, options *rifme.RequestOptions) ([]string, error) {
	page, err := s.rifmeClient.FetchRhymesPage(ctx, word, options)
	if err != nil {
		return nil, err
	}

	rhymes, err := extractRhymes(page)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Extracted %d rhymes for word '%s'", len(rhymes), word)

	return rhymes, nil
}

// fetchRhymesAcrossSyllables performs one lookup per syllable count in the
// 1..8 range, all concurrently. Each lookup inherits the part-of-speech and
// emphasis filters from options. The first failing lookup aborts the whole
// batch and cancels the in-flight ones; no partial results are returned.
func (s *ServiceImpl) fetchRhymesAcrossSyllables(
	ctx context.Context,
	word string,
	options *rifme.RequestOptions,
) ([]string, error) {
	// Results are written to fixed slots so the concatenation below keeps
	// syllable-count order regardless of which response arrives first.
	results := make([][]string, maxSyllableCount-minSyllableCount+1)

	var bar *progressbar.ProgressBar
	if s.cfg != nil && s.cfg.ShowProgress {
		bar = progressbar.Default(int64(len(results)), "Fetching rhymes")
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for i := range results {
		syllables := minSyllableCount + i

		group.Go(func() error {
			requestOptions := &rifme.RequestOptions{
				Syllables: &syllables,
				Part:      options.Part,
				Emphasis:  options.Emphasis,
			}

			rhymes, err := s.fetchRhymesOnce(groupCtx, word, requestOptions)
			if err != nil {
				return fmt.Errorf("syllable count %d: %w", syllables, err)
			}

			results[i] = rhymes

			if bar != nil {
				_ = bar.Add(1)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var combined []string
	for _, rhymes := range results {
		combined = append(combined, rhymes...)
	}

	return combined, nil
}
