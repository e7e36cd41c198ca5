package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"card-shuffler-go/internal/models"
	"card-shuffler-go/internal/tracing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables bound to each flag,
// e.g. SHUFFLER_SEED, SHUFFLER_SHOW_SEED.
const EnvPrefix = "SHUFFLER"

const (
	flagSeed     = "seed"
	flagSort     = "sort"
	flagFormat   = "format"
	flagShowSeed = "show-seed"
	flagTrace    = "trace"
)

var errSeedWithSort = errors.New("--seed cannot be combined with --sort")

// NewRootCmd creates the shuffler command. With no flags it shuffles a new
// deck with a fresh seed and prints one card per line.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "shuffler",
		Short: "Shuffle a standard 52-card deck and print it",
		Long: `Builds a standard 52-card deck, shuffles it and prints one card per line.

A shuffle is fully determined by its seed: pass --show-seed to learn the seed
of a fresh shuffle, and --seed to reproduce it later.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
	}

	f := rootCmd.Flags()
	f.String(flagSeed, "", "replay the shuffle for this signed 32-bit seed")
	f.Bool(flagSort, false, "print the deck sorted by rank then suit instead of shuffling")
	f.String(flagFormat, models.FormatText, "output format: text|json")
	f.Bool(flagShowSeed, false, "print the seed used to stderr")
	f.String(flagTrace, "none", "trace exporter: none|stdout (spans are written to stderr)")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	format, err := models.ParseFormat(v.GetString(flagFormat))
	if err != nil {
		return err
	}

	req := models.DeckRequest{Order: models.OrderShuffled}
	if v.GetBool(flagSort) {
		req.Order = models.OrderSorted
	}
	if s := strings.TrimSpace(v.GetString(flagSeed)); s != "" {
		if req.Order == models.OrderSorted {
			return errSeedWithSort
		}
		seed, err := models.ParseSeed(s)
		if err != nil {
			return err
		}
		req.Seed = &seed
	}

	trace := strings.ToLower(v.GetString(flagTrace))
	if trace != "none" && trace != "stdout" {
		return fmt.Errorf("invalid --%s %q (want none|stdout)", flagTrace, trace)
	}

	ctx := cmd.Context()
	shutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:  "shuffler",
		TracesExport: trace,
		Writer:       cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer flushTraces(ctx, shutdown)

	_, span := tracing.StartSpan(ctx, "shuffler.run")
	d, resp, err := models.BuildDeck(req)
	if err != nil {
		span.End()
		return err
	}
	tracing.SetDeckAttributes(span, resp.Order, resp.Seed)
	span.End()

	out := cmd.OutOrStdout()
	switch format {
	case models.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write deck: %w", err)
		}
	default:
		if _, err := fmt.Fprintln(out, d.String()); err != nil {
			return fmt.Errorf("write deck: %w", err)
		}
	}

	if v.GetBool(flagShowSeed) && resp.Seed != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "seed: %d\n", *resp.Seed)
	}
	return nil
}

func flushTraces(ctx context.Context, shutdown func(context.Context) error) {
	if err := shutdown(ctx); err != nil {
		log.Printf("shuffler: tracing shutdown: %v", err)
	}
}
