// Command export is the Arenascope offline data-collection CLI.
//
// Usage:
//
//	arenascope-export matches --riot-id "Faker#T1" --count 50 --out arena.csv
//	arenascope-export augments --json
//	arenascope-export version
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arenascope/arenascope/internal/arena"
	"github.com/arenascope/arenascope/internal/config"
	"github.com/arenascope/arenascope/internal/ddragon"
	"github.com/arenascope/arenascope/internal/riot"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "arenascope-export",
		Short: "Arenascope offline data-collection CLI",
	}

	root.AddCommand(matchesCmd())
	root.AddCommand(augmentsCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// matches command
// --------------------------------------------------------------------------

func matchesCmd() *cobra.Command {
	var (
		riotID string
		count  int
		out    string
	)
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Export a player's Arena matches as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			gameName, tagLine, ok := strings.Cut(riotID, "#")
			if !ok || gameName == "" || tagLine == "" {
				return fmt.Errorf("--riot-id must be in gameName#tagLine form")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			client := riot.NewClient(cfg.RiotRegion, cfg.RiotAPIKey, cfg.RiotRequestsPer2M, logger)
			refs := loadedCache(ctx, cfg)

			account, err := client.AccountByRiotID(ctx, gameName, tagLine)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", riotID, err)
			}
			logger.Info("Resolved player", "game_name", account.GameName, "puuid", account.PUUID)

			fetcher := arena.NewService(client, refs, logger)
			matches, err := fetcher.ArenaMatches(ctx, account.PUUID, count)
			if err != nil {
				return fmt.Errorf("fetch matches: %w", err)
			}
			logger.Info("Fetched matches", "count", len(matches))

			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return arena.WriteCSV(w, matches)
		},
	}
	cmd.Flags().StringVar(&riotID, "riot-id", "", "player Riot ID as gameName#tagLine (required)")
	cmd.Flags().IntVar(&count, "count", arena.MaxArenaCount, "number of matches to export")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	cmd.MarkFlagRequired("riot-id")
	return cmd
}

// --------------------------------------------------------------------------
// augments command
// --------------------------------------------------------------------------

func augmentsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "augments",
		Short: "Dump the Arena augment reference table",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := ddragon.NewClient()
			augments, err := client.Augments(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(augments)
			}
			for _, a := range augments {
				fmt.Printf("%d\t%s\t%s\n", a.ID, a.APIName, a.Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of tab-separated text")
	return cmd
}

// --------------------------------------------------------------------------
// version command
// --------------------------------------------------------------------------

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current Data Dragon game version",
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := ddragon.NewClient().LatestVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(version)
			return nil
		},
	}
}

// loadedCache builds a reference cache with a blocking cold load.
func loadedCache(ctx context.Context, cfg *config.Config) *ddragon.ReferenceCache {
	refs := ddragon.NewReferenceCache(ddragon.NewClient(), cfg.FallbackVersion, logger,
		ddragon.WithTTLs(cfg.VersionTTL, cfg.ReferenceTTL))
	refs.Load(ctx)
	return refs
}
