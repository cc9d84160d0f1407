package arena

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/arenascope/arenascope/internal/config"
	"github.com/arenascope/arenascope/internal/riot"
)

// fakeSource is an in-memory MatchSource.
type fakeSource struct {
	ids     []string
	idsErr  error
	matches map[string]*riot.Match
	errs    map[string]error

	gotQueue int
	gotCount int
}

func (f *fakeSource) MatchIDs(ctx context.Context, puuid string, queue, count int) ([]string, error) {
	f.gotQueue = queue
	f.gotCount = count
	return f.ids, f.idsErr
}

func (f *fakeSource) Match(ctx context.Context, matchID string) (*riot.Match, error) {
	if err, ok := f.errs[matchID]; ok {
		return nil, err
	}
	m, ok := f.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("no such match %s", matchID)
	}
	return m, nil
}

// fakeNames resolves every ID to a predictable name.
type fakeNames struct{}

func (fakeNames) ItemName(id int) string        { return fmt.Sprintf("item-%d", id) }
func (fakeNames) AugmentNameByID(id int) string { return fmt.Sprintf("augment-%d", id) }

func arenaMatch(id, puuid string, createdAt time.Time) *riot.Match {
	return &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: id},
		Info: riot.MatchInfo{
			GameCreation: createdAt.UnixMilli(),
			GameDuration: 1200,
			QueueID:      config.ArenaQueueID,
			Participants: []riot.Participant{
				{PUUID: "someone-else-aaaaaaaaaaaaaa", ChampionName: "Garen"},
				{
					PUUID:          puuid,
					ChampionID:     86,
					ChampionName:   "Garen",
					Kills:          10,
					Deaths:         2,
					Assists:        5,
					Placement:      1,
					Win:            true,
					Item0:          3078,
					Item3:          1001,
					PlayerAugment1: 12,
					PlayerAugment2: 77,
				},
			},
		},
	}
}

const testPUUID = "test-puuid-aaaaaaaaaaaaaaaaaa"

func TestArenaMatches_EmptyListIsNotAnError(t *testing.T) {
	source := &fakeSource{ids: []string{}}
	svc := NewService(source, fakeNames{}, nil)

	matches, err := svc.ArenaMatches(context.Background(), testPUUID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Errorf("want non-nil empty slice, got %#v", matches)
	}
	if source.gotQueue != config.ArenaQueueID {
		t.Errorf("queue filter = %d, want %d", source.gotQueue, config.ArenaQueueID)
	}
}

func TestArenaMatches_CountClamped(t *testing.T) {
	source := &fakeSource{ids: []string{}}
	svc := NewService(source, fakeNames{}, nil)

	svc.ArenaMatches(context.Background(), testPUUID, 500)
	if source.gotCount != MaxArenaCount {
		t.Errorf("count = %d, want clamped to %d", source.gotCount, MaxArenaCount)
	}

	svc.ArenaMatches(context.Background(), testPUUID, -3)
	if source.gotCount != 1 {
		t.Errorf("count = %d, want floor 1", source.gotCount)
	}

	svc.RecentMatches(context.Background(), testPUUID, 100)
	if source.gotCount != MaxHistoryCount {
		t.Errorf("history count = %d, want clamped to %d", source.gotCount, MaxHistoryCount)
	}
}

func TestArenaMatches_QueueMismatchDroppedWithoutFailingSiblings(t *testing.T) {
	now := time.Now()
	good := arenaMatch("NA1_1", testPUUID, now)
	wrongQueue := arenaMatch("NA1_2", testPUUID, now.Add(-time.Hour))
	wrongQueue.Info.QueueID = 420

	source := &fakeSource{
		ids:     []string{"NA1_1", "NA1_2"},
		matches: map[string]*riot.Match{"NA1_1": good, "NA1_2": wrongQueue},
	}
	svc := NewService(source, fakeNames{}, nil)

	matches, err := svc.ArenaMatches(context.Background(), testPUUID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].MatchID != "NA1_1" {
		t.Errorf("want only NA1_1 to survive, got %#v", matches)
	}
}

func TestArenaMatches_DetailFailureDroppedWithoutFailingSiblings(t *testing.T) {
	now := time.Now()
	source := &fakeSource{
		ids:     []string{"NA1_1", "NA1_2", "NA1_3"},
		matches: map[string]*riot.Match{
			"NA1_1": arenaMatch("NA1_1", testPUUID, now),
			"NA1_3": arenaMatch("NA1_3", testPUUID, now.Add(-2*time.Hour)),
		},
		errs: map[string]error{"NA1_2": fmt.Errorf("boom")},
	}
	svc := NewService(source, fakeNames{}, nil)

	matches, err := svc.ArenaMatches(context.Background(), testPUUID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("want 2 survivors, got %d", len(matches))
	}
}

func TestArenaMatches_MissingParticipantDropped(t *testing.T) {
	m := arenaMatch("NA1_1", "different-player-aaaaaaaaaaa", time.Now())
	source := &fakeSource{
		ids:     []string{"NA1_1"},
		matches: map[string]*riot.Match{"NA1_1": m},
	}
	svc := NewService(source, fakeNames{}, nil)

	matches, err := svc.ArenaMatches(context.Background(), testPUUID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("want 0 matches, got %d", len(matches))
	}
}

func TestArenaMatches_IDListFailurePropagates(t *testing.T) {
	source := &fakeSource{idsErr: fmt.Errorf("upstream down")}
	svc := NewService(source, fakeNames{}, nil)

	if _, err := svc.ArenaMatches(context.Background(), testPUUID, 10); err == nil {
		t.Fatal("want error when the ID list call fails")
	}
}

func TestArenaMatches_SortedByRecencyAndJoined(t *testing.T) {
	now := time.Now()
	source := &fakeSource{
		ids: []string{"NA1_old", "NA1_new"},
		matches: map[string]*riot.Match{
			"NA1_old": arenaMatch("NA1_old", testPUUID, now.Add(-time.Hour)),
			"NA1_new": arenaMatch("NA1_new", testPUUID, now),
		},
	}
	svc := NewService(source, fakeNames{}, nil)

	matches, err := svc.ArenaMatches(context.Background(), testPUUID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 || matches[0].MatchID != "NA1_new" {
		t.Fatalf("want NA1_new first, got %#v", matches)
	}

	p := matches[0].Player
	if len(p.ItemNames) != 2 || p.ItemNames[0] != "item-3078" || p.ItemNames[1] != "item-1001" {
		t.Errorf("item join wrong: %#v", p.ItemNames)
	}
	if len(p.AugmentNames) != 2 || p.AugmentNames[0] != "augment-12" {
		t.Errorf("augment join wrong: %#v", p.AugmentNames)
	}
	if p.Placement != 1 || !p.Win {
		t.Errorf("placement/win not carried: %#v", p)
	}
}

func TestRecentMatches_NoQueueVerification(t *testing.T) {
	m := arenaMatch("NA1_1", testPUUID, time.Now())
	m.Info.QueueID = 420 // ranked, not Arena

	source := &fakeSource{
		ids:     []string{"NA1_1"},
		matches: map[string]*riot.Match{"NA1_1": m},
	}
	svc := NewService(source, fakeNames{}, nil)

	matches, err := svc.RecentMatches(context.Background(), testPUUID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("unfiltered history must keep any queue, got %d matches", len(matches))
	}
	if source.gotQueue != 0 {
		t.Errorf("history fetch must not send a queue filter, got %d", source.gotQueue)
	}
}
