package arena

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/arenascope/arenascope/internal/config"
	"github.com/arenascope/arenascope/internal/riot"
)

// Count clamps documented by the upstream provider.
const (
	MaxArenaCount   = 50
	MaxHistoryCount = 20
)

// MatchSource is the slice of the Riot client the fetcher needs.
type MatchSource interface {
	MatchIDs(ctx context.Context, puuid string, queue, count int) ([]string, error)
	Match(ctx context.Context, matchID string) (*riot.Match, error)
}

// Service fetches match batches for one player. Detail fetches fan out on
// goroutines; pacing comes from the client's shared token bucket, so batch
// size never changes the outbound request rate.
type Service struct {
	source MatchSource
	names  NameResolver
	logger *slog.Logger
}

// NewService creates a fetcher over a match source and a name resolver.
func NewService(source MatchSource, names NameResolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, names: names, logger: logger}
}

// ArenaMatches returns up to count Arena (queue 1700) matches for a player.
// An empty ID list is a valid empty result, not an error. A single match's
// detail-fetch failure, queue mismatch, or missing participant drops that
// match from the batch without failing it; only the ID-list call can fail the
// whole request.
func (s *Service) ArenaMatches(ctx context.Context, puuid string, count int) ([]Match, error) {
	return s.fetch(ctx, puuid, config.ArenaQueueID, clamp(count, MaxArenaCount))
}

// RecentMatches returns up to count matches of any queue, without the Arena
// queue verification step.
func (s *Service) RecentMatches(ctx context.Context, puuid string, count int) ([]Match, error) {
	return s.fetch(ctx, puuid, 0, clamp(count, MaxHistoryCount))
}

func (s *Service) fetch(ctx context.Context, puuid string, queue, count int) ([]Match, error) {
	ids, err := s.source.MatchIDs(ctx, puuid, queue, count)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Match{}, nil
	}

	results := make([]*Match, len(ids))
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = s.fetchOne(ctx, puuid, queue, id)
		}(i, id)
	}
	wg.Wait()

	matches := make([]Match, 0, len(ids))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}

	// Completion order is nondeterministic; re-sort by recency.
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].GameCreation.After(matches[j].GameCreation)
	})
	return matches, nil
}

// fetchOne fetches and validates a single match. A nil return means the match
// was dropped; drops are logged, never surfaced.
func (s *Service) fetchOne(ctx context.Context, puuid string, queue int, matchID string) *Match {
	m, err := s.source.Match(ctx, matchID)
	if err != nil {
		s.logger.Warn("dropping match: detail fetch failed", "match_id", matchID, "error", err)
		return nil
	}

	// Defense against stale or missing upstream queue filtering.
	if queue > 0 && m.Info.QueueID != queue {
		s.logger.Warn("dropping match: queue mismatch",
			"match_id", matchID, "want", queue, "got", m.Info.QueueID)
		return nil
	}

	var player *riot.Participant
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			player = &m.Info.Participants[i]
			break
		}
	}
	if player == nil {
		s.logger.Warn("dropping match: requesting player not among participants", "match_id", matchID)
		return nil
	}

	match := build(m, player, s.names)
	return &match
}

func clamp(count, max int) int {
	if count < 1 {
		return 1
	}
	if count > max {
		return max
	}
	return count
}
