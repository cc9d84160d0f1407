// Package arena turns raw Riot match data into the Arena-centric shape the
// API serves: one record per match from the requesting player's perspective,
// with item and augment IDs joined to display names.
package arena

import (
	"time"

	"github.com/arenascope/arenascope/internal/riot"
)

// Match is one historical game seen from the requesting player's side.
type Match struct {
	MatchID         string    `json:"matchId"`
	GameCreation    time.Time `json:"gameCreation"`
	DurationSeconds int64     `json:"gameDurationSeconds"`
	QueueID         int       `json:"queueId"`
	Player          Player    `json:"player"`
}

// Player is the requesting player's stat line within a match.
type Player struct {
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	Level        int    `json:"level"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	TotalDamageDealt            int `json:"totalDamageDealt"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`
	GoldEarned                  int `json:"goldEarned"`
	MinionsKilled               int `json:"minionsKilled"`

	ItemIDs      []int    `json:"itemIds"`
	ItemNames    []string `json:"items"`
	AugmentIDs   []int    `json:"augmentIds"`
	AugmentNames []string `json:"augments"`

	Placement int  `json:"placement"`
	Win       bool `json:"isWinner"`
}

// NameResolver joins item and augment IDs to display names. Lookups are total:
// unknown IDs resolve to deterministic placeholders, never errors.
type NameResolver interface {
	ItemName(id int) string
	AugmentNameByID(id int) string
}

// build flattens a raw match + participant pair into the domain shape.
func build(m *riot.Match, p *riot.Participant, names NameResolver) Match {
	player := Player{
		ChampionID:                  p.ChampionID,
		ChampionName:                p.ChampionName,
		Level:                       p.ChampLevel,
		Kills:                       p.Kills,
		Deaths:                      p.Deaths,
		Assists:                     p.Assists,
		TotalDamageDealt:            p.TotalDamageDealt,
		TotalDamageDealtToChampions: p.TotalDamageDealtToChampions,
		TotalDamageTaken:            p.TotalDamageTaken,
		GoldEarned:                  p.GoldEarned,
		MinionsKilled:               p.TotalMinionsKilled,
		Placement:                   p.Placement,
		Win:                         p.Win,
	}

	for _, id := range p.ItemIDs() {
		if id == 0 {
			continue // empty slot
		}
		player.ItemIDs = append(player.ItemIDs, id)
		player.ItemNames = append(player.ItemNames, names.ItemName(id))
	}
	for _, id := range p.AugmentIDs() {
		player.AugmentIDs = append(player.AugmentIDs, id)
		player.AugmentNames = append(player.AugmentNames, names.AugmentNameByID(id))
	}

	return Match{
		MatchID:         m.Metadata.MatchID,
		GameCreation:    time.UnixMilli(m.Info.GameCreation).UTC(),
		DurationSeconds: m.Info.GameDuration,
		QueueID:         m.Info.QueueID,
		Player:          player,
	}
}
