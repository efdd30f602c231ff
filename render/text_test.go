package render

import "testing"

func TestNewTextResolvesLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"fr", "fr"},
		{"FR", "fr"},
		{"fr_FR.UTF-8", "fr"},
		{"de", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		if got := NewText(tt.in).Lang(); got != tt.want {
			t.Errorf("NewText(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestTextTranslates(t *testing.T) {
	fr := NewText("fr")
	if got := fr.Get(TextPaused); got != "PAUSE" {
		t.Errorf("Expected PAUSE, got %s", got)
	}
	if got := fr.Format(TextBest, 12); got != "Record 12" {
		t.Errorf("Expected 'Record 12', got %s", got)
	}
}

func TestTextFallback(t *testing.T) {
	fr := &Text{lang: "fr", table: map[string]string{}}
	if got := fr.Get(TextGameOver); got != "GAME OVER" {
		t.Errorf("Expected English fallback, got %s", got)
	}
	if got := fr.Get("no.such.key"); got != "no.such.key" {
		t.Errorf("Expected key name for unknown key, got %s", got)
	}
	if _, ok := fr.Lookup("no.such.key"); ok {
		t.Error("Expected unknown key lookup to fail")
	}
}

func TestTextTablesComplete(t *testing.T) {
	en := textTables["en"]
	for _, code := range Languages() {
		table := textTables[code]
		for key := range en {
			if _, ok := table[key]; !ok {
				t.Errorf("Language %s missing key %s", code, key)
			}
		}
	}
}
