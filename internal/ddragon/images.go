package ddragon

import (
	"context"
	"fmt"
	"strings"
)

// ChampionImageSize selects which champion asset to link.
type ChampionImageSize string

const (
	SizeSquare  ChampionImageSize = "square"
	SizeLoading ChampionImageSize = "loading"
	SizeSplash  ChampionImageSize = "splash"
)

// ParseChampionImageSize normalizes a size query value, defaulting to square.
func ParseChampionImageSize(s string) (ChampionImageSize, bool) {
	switch ChampionImageSize(strings.ToLower(s)) {
	case SizeSquare, "":
		return SizeSquare, true
	case SizeLoading:
		return SizeLoading, true
	case SizeSplash:
		return SizeSplash, true
	}
	return SizeSquare, false
}

// ChampionImageURL builds the CDN URL for a champion asset. The square icon is
// version-pinned; loading and splash art are served unversioned by the CDN.
func (rc *ReferenceCache) ChampionImageURL(ctx context.Context, name string, size ChampionImageSize) string {
	name = normalizeChampionName(name)
	switch size {
	case SizeLoading:
		return fmt.Sprintf("%s/cdn/img/champion/loading/%s_0.jpg", defaultDDragonBase, name)
	case SizeSplash:
		return fmt.Sprintf("%s/cdn/img/champion/splash/%s_0.jpg", defaultDDragonBase, name)
	default:
		return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", defaultDDragonBase, rc.Version(ctx), name)
	}
}

// ItemImageURL builds the version-pinned CDN URL for an item icon.
func (rc *ReferenceCache) ItemImageURL(ctx context.Context, itemID int) string {
	return fmt.Sprintf("%s/cdn/%s/img/item/%d.png", defaultDDragonBase, rc.Version(ctx), itemID)
}

// AugmentImageURL builds the Community Dragon raw-asset URL for an augment
// icon, resolved through the reference table. Unknown augments get an empty
// URL so callers can distinguish "no icon" from a broken link.
func (rc *ReferenceCache) AugmentImageURL(key string) string {
	aug, ok := rc.Augment(key)
	if !ok {
		return ""
	}
	icon := aug.IconLarge
	if icon == "" {
		icon = aug.IconSmall
	}
	if icon == "" {
		return ""
	}
	// Game asset paths are served lowercased under /latest/game/.
	return fmt.Sprintf("%s/latest/game/%s", defaultCDragonBase, strings.ToLower(icon))
}

// normalizeChampionName maps display names onto Data Dragon asset keys:
// strip spaces and punctuation, special-case the names whose asset key
// diverges from the display name.
func normalizeChampionName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wukong":
		return "MonkeyKing"
	case "nunu & willump", "nunu":
		return "Nunu"
	case "renata glasc":
		return "Renata"
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\'', '.', '&':
			return -1
		}
		return r
	}, name)
	return cleaned
}
