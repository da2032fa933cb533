package language

import (
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Code
	}{
		{"sharp s and umlaut", "Größe", German},
		{"plain english", "Size", English},
		{"empty", "", English},
		{"lowercase a umlaut", "Bär", German},
		{"uppercase O umlaut", "ÖFFNUNGSZEITEN", German},
		{"u umlaut mid sentence", "the menü is open", German},
		{"sharp s only", "Straße", German},
		{"german without umlauts", "Das ist ein Haus", English},
		{"decomposed umlaut", "Bu\u0308cher", German},
		{"other diacritics", "café résumé", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, in := range []string{"de", "DE", " de "} {
		got, err := Parse(in)
		if err != nil || got != German {
			t.Errorf("Parse(%q) = %q, %v; want de", in, got, err)
		}
	}

	got, err := Parse("en")
	if err != nil || got != English {
		t.Errorf("Parse(en) = %q, %v", got, err)
	}

	for _, in := range []string{"", "fr", "deu", "english"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Parse(%q) error = %v, want ErrUnsupported", in, err)
		}
	}
}

func TestCode_Tesseract(t *testing.T) {
	if German.Tesseract() != "deu" {
		t.Errorf("German.Tesseract() = %q", German.Tesseract())
	}
	if English.Tesseract() != "eng" {
		t.Errorf("English.Tesseract() = %q", English.Tesseract())
	}
	if Code("fr").Tesseract() != "" {
		t.Error("unknown code should map to empty traineddata name")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Bu\u0308cher"); got != "B\u00fccher" {
		t.Errorf("Normalize() = %q, want precomposed \u00fc", got)
	}
	if Normalize("plain") != "plain" {
		t.Error("Normalize() changed ASCII text")
	}
}
