package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	rifme_client "github.com/nfriday/rifme-grabber/internal/client/rifme"
	"github.com/nfriday/rifme-grabber/internal/config"
	"github.com/nfriday/rifme-grabber/internal/logger"
	rifme_service "github.com/nfriday/rifme-grabber/internal/service/rifme"
)

// ExecuteRootCommand is the entry point for the application.
// It initializes the rifme client, sets up the rhyme lookup service,
// fetches rhyme suggestions for the given word, and prints them to
// standard output, one per line.
func ExecuteRootCommand(
	ctx context.Context,
	cfg *config.Config,
	word string,
	options *rifme_client.RequestOptions,
) {
	rifmeClient, err := rifme_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize rifme client: %v", err)
	}

	// Tag every log line of this invocation with a unique ID so the
	// debug dumps of concurrent requests can be told apart.
	ctx = logger.ToContext(ctx, logger.Logger().With("invocation_id", uuid.NewString()))

	s := rifme_service.NewService(cfg, rifmeClient)

	rhymes, err := s.FetchRhymes(ctx, word, options)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch rhymes for '%s': %v", word, err)
	}

	fmt.Println(strings.Join(rhymes, "\n"))
}
