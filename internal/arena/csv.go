package arena

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultCSVFilename is served when the client supplies no usable filename.
const DefaultCSVFilename = "arena_matches.csv"

// csvHeader is the fixed column order. List-valued fields (items, augments)
// are serialized as one semicolon-joined cell so every row has the same
// column count regardless of how many slots were filled.
var csvHeader = []string{
	"matchId",
	"gameCreation",
	"gameDurationSeconds",
	"championName",
	"championId",
	"level",
	"kills",
	"deaths",
	"assists",
	"totalDamageDealt",
	"totalDamageDealtToChampions",
	"totalDamageTaken",
	"goldEarned",
	"minionsKilled",
	"placement",
	"isWinner",
	"items",
	"augments",
}

// WriteCSV streams matches as a CSV document with the fixed header.
func WriteCSV(w io.Writer, matches []Match) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, m := range matches {
		p := m.Player
		win := "0"
		if p.Win {
			win = "1"
		}
		row := []string{
			m.MatchID,
			m.GameCreation.Format(time.RFC3339),
			strconv.FormatInt(m.DurationSeconds, 10),
			p.ChampionName,
			strconv.Itoa(p.ChampionID),
			strconv.Itoa(p.Level),
			strconv.Itoa(p.Kills),
			strconv.Itoa(p.Deaths),
			strconv.Itoa(p.Assists),
			strconv.Itoa(p.TotalDamageDealt),
			strconv.Itoa(p.TotalDamageDealtToChampions),
			strconv.Itoa(p.TotalDamageTaken),
			strconv.Itoa(p.GoldEarned),
			strconv.Itoa(p.MinionsKilled),
			strconv.Itoa(p.Placement),
			win,
			strings.Join(p.ItemNames, ";"),
			strings.Join(p.AugmentNames, ";"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVHeader exposes the column order for tests and documentation.
func CSVHeader() []string {
	out := make([]string, len(csvHeader))
	copy(out, csvHeader)
	return out
}

var (
	filenameStrip   = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	filenameDotRuns = regexp.MustCompile(`\.{2,}`)
)

// SanitizeFilename reduces a client-supplied download name to alphanumerics,
// dot, dash, and underscore, collapses dot runs, and forces a .csv suffix.
// Path separators and traversal sequences cannot survive.
func SanitizeFilename(name string) string {
	name = filenameStrip.ReplaceAllString(name, "")
	name = filenameDotRuns.ReplaceAllString(name, ".")
	name = strings.Trim(name, ".-_")
	if name == "" || name == "csv" {
		return DefaultCSVFilename
	}
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	return name
}
