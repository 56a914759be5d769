package pdf

import (
	"strings"
	"testing"
)

func TestTextFromStream(t *testing.T) {
	stream := strings.Join([]string{
		"BT",
		"/F1 9 Tf",
		"(Zone 5) Tj",
		"T*",
		"(Weight) Tj",
		"10 0 Td",
		"(FedEx 2Day) Tj",
		"T*",
		"(1 lb.) Tj",
		"10 0 Td",
		"($29.50) Tj",
		"ET",
	}, "\n")

	text := textFromStream([]byte(stream))
	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), text)
	}
	if lines[0] != "Zone 5" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Weight  FedEx 2Day" {
		t.Errorf("line 1 = %q, want double-space cell gap", lines[1])
	}
	if lines[2] != "1 lb.  $29.50" {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestTextFromStreamTJArray(t *testing.T) {
	text := textFromStream([]byte("[(Fed) -20 (Ex)] TJ\n"))
	if text != "FedEx" {
		t.Errorf("TJ array text = %q, want FedEx", text)
	}
}

func TestDecodePDFString(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`plain`, "plain"},
		{`a\(b\)c`, "a(b)c"},
		{`a\\b`, `a\b`},
		{`tab\there`, "tab\there"},
		{`oct\040al`, "oct al"},
	}
	for _, tc := range cases {
		if got := decodePDFString([]byte(tc.raw)); got != tc.want {
			t.Errorf("decodePDFString(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
