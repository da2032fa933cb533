package wordclass

import (
	"reflect"
	"testing"
)

func TestHeuristic_Precedence(t *testing.T) {
	tests := []struct {
		token string
		keep  bool
		why   string
	}{
		{"Apfel", true, "uppercase first letter"},
		{"Rennen", true, "uppercase wins before suffix"},
		{"rennen", true, "verb ending en"},
		{"bist", true, "verb ending st"},
		{"eat", true, "verb ending t"},
		{"spend", true, "verb ending end"},
		{"big", false, "short and no verb ending"},
		{"the", false, "short and no verb ending"},
		{"wonderful", true, "alphabetic and longer than three"},
		{"that", true, "length four is admitted"},
		{"with", true, "length four is admitted"},
		{"Über", true, "unicode uppercase"},
		{"über", true, "alphabetic, four letters"},
		{"a", false, "single character"},
		{"Ä", false, "single character even if uppercase"},
		{"42", false, "numeric"},
		{"2024", false, "numeric"},
		{"abc1", false, "not alphabetic, no verb ending"},
		{"x2", false, "not alphabetic, no verb ending"},
		{"ab1t", true, "verb ending applies to non-alphabetic tokens"},
		{"__", false, "underscores only"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := keepHeuristic(tt.token); got != tt.keep {
				t.Errorf("keepHeuristic(%q) = %v, want %v (%s)", tt.token, got, tt.keep, tt.why)
			}
		})
	}
}

func TestHeuristic_ClassifyOrderAndDuplicates(t *testing.T) {
	text := "Das ist ein großer Baum, 42 Äpfel.\nDas Haus!"
	got := NewHeuristic().Classify(text)
	want := []string{"Das", "ist", "großer", "Baum", "Äpfel", "Das", "Haus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %q, want %q", got, want)
	}
}

func TestHeuristic_Empty(t *testing.T) {
	h := NewHeuristic()
	if got := h.Classify(""); len(got) != 0 {
		t.Errorf("Classify(\"\") = %q, want empty", got)
	}
	if got := h.Classify("a b 1 22 ! ?"); len(got) != 0 {
		t.Errorf("Classify(noise) = %q, want empty", got)
	}
}

func TestHeuristic_Name(t *testing.T) {
	if NewHeuristic().Name() != "heuristic" {
		t.Error("unexpected strategy name")
	}
}
