package riot

// Account is the account-v1 response for a Riot ID lookup.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Match is the match-v5 response for a single game.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation int64         `json:"gameCreation"` // unix millis
	GameDuration int64         `json:"gameDuration"` // seconds
	GameMode     string        `json:"gameMode"`
	QueueID      int           `json:"queueId"`
	GameVersion  string        `json:"gameVersion"`
	Participants []Participant `json:"participants"`
}

// Participant is the per-player stat block inside a match. Item slots 0-6 are
// item IDs with 0 meaning empty; augment slots are 0 or absent outside Arena.
type Participant struct {
	PUUID          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`

	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	ChampLevel   int    `json:"champLevel"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	TotalDamageDealt            int `json:"totalDamageDealt"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`
	GoldEarned                  int `json:"goldEarned"`
	TotalMinionsKilled          int `json:"totalMinionsKilled"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`

	PlayerAugment1 int `json:"playerAugment1"`
	PlayerAugment2 int `json:"playerAugment2"`
	PlayerAugment3 int `json:"playerAugment3"`
	PlayerAugment4 int `json:"playerAugment4"`

	Placement int  `json:"placement"` // 1-8 in Arena
	Win       bool `json:"win"`
}

// ItemIDs returns the seven item slots in order, zeros included.
func (p *Participant) ItemIDs() []int {
	return []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// AugmentIDs returns the non-empty augment slots in pick order.
func (p *Participant) AugmentIDs() []int {
	ids := make([]int, 0, 4)
	for _, id := range []int{p.PlayerAugment1, p.PlayerAugment2, p.PlayerAugment3, p.PlayerAugment4} {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
