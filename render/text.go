package render

import (
	"fmt"
	"sort"
	"strings"
)

// Text keys
const (
	TextScore       = "score"
	TextBest        = "best"
	TextCombo       = "combo"
	TextFrozen      = "frozen"
	TextPaused      = "paused"
	TextMuted       = "muted"
	TextGameOver    = "game_over"
	TextNewHigh     = "new_high"
	TextRank        = "rank"
	TextNotRanked   = "not_ranked"
	TextScoresTitle = "scores_title"
	TextSaveFailed  = "save_failed"
	TextRestartHint = "restart_hint"
	TextTooSmall    = "too_small"
	TextDifficulty  = "difficulty"
)

const defaultLanguage = "en"

var textTables = map[string]map[string]string{
	"en": {
		TextScore:       "Score %d",
		TextBest:        "Best %d",
		TextCombo:       "Combo x%d",
		TextFrozen:      "Frozen %.1fs",
		TextPaused:      "PAUSED",
		TextMuted:       "muted",
		TextGameOver:    "GAME OVER",
		TextNewHigh:     "New high score!",
		TextRank:        "Rank #%d",
		TextNotRanked:   "Not ranked",
		TextScoresTitle: "Top scores (%s)",
		TextSaveFailed:  "Score not saved",
		TextRestartHint: "r: restart   q: quit",
		TextTooSmall:    "Terminal too small",
		TextDifficulty:  "Difficulty %s",

		"reason.strikes": "Too many fruit missed",
		"reason.bomb":    "You sliced a bomb",
		"reason.quit":    "Round abandoned",

		"combo.triple": "Triple!",
		"combo.mega":   "Mega combo!",

		"medal.bronze": "bronze",
		"medal.silver": "silver",
		"medal.gold":   "gold",

		"difficulty.easy":   "easy",
		"difficulty.medium": "medium",
		"difficulty.hard":   "hard",
	},
	"fr": {
		TextScore:       "Score %d",
		TextBest:        "Record %d",
		TextCombo:       "Combo x%d",
		TextFrozen:      "Gel %.1fs",
		TextPaused:      "PAUSE",
		TextMuted:       "muet",
		TextGameOver:    "PARTIE TERMINÉE",
		TextNewHigh:     "Nouveau record !",
		TextRank:        "Rang n°%d",
		TextNotRanked:   "Non classé",
		TextScoresTitle: "Meilleurs scores (%s)",
		TextSaveFailed:  "Score non enregistré",
		TextRestartHint: "r : rejouer   q : quitter",
		TextTooSmall:    "Terminal trop petit",
		TextDifficulty:  "Difficulté %s",

		"reason.strikes": "Trop de fruits manqués",
		"reason.bomb":    "Vous avez tranché une bombe",
		"reason.quit":    "Partie abandonnée",

		"combo.triple": "Triple !",
		"combo.mega":   "Méga combo !",

		"medal.bronze": "bronze",
		"medal.silver": "argent",
		"medal.gold":   "or",

		"difficulty.easy":   "facile",
		"difficulty.medium": "moyen",
		"difficulty.hard":   "difficile",
	},
}

// Text resolves display strings for one language
// Missing keys fall back to English, then to the key itself
type Text struct {
	lang  string
	table map[string]string
}

// NewText selects a language by code, "fr_FR.UTF-8" resolves to "fr"
// Unknown languages use English
func NewText(lang string) *Text {
	code := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(code, "_-."); i >= 0 {
		code = code[:i]
	}
	table, ok := textTables[code]
	if !ok {
		code = defaultLanguage
		table = textTables[code]
	}
	return &Text{lang: code, table: table}
}

// Lang returns the resolved language code
func (t *Text) Lang() string {
	return t.lang
}

// Get returns the string for key
func (t *Text) Get(key string) string {
	if s, ok := t.table[key]; ok {
		return s
	}
	if s, ok := textTables[defaultLanguage][key]; ok {
		return s
	}
	return key
}

// Format returns the string for key with args applied
func (t *Text) Format(key string, args ...any) string {
	return fmt.Sprintf(t.Get(key), args...)
}

// Languages lists the available language codes
func Languages() []string {
	codes := make([]string, 0, len(textTables))
	for code := range textTables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the string for key and whether any table defines it
func (t *Text) Lookup(key string) (string, bool) {
	s := t.Get(key)
	return s, s != key
}
