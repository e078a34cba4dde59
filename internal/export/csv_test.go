package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func TestSerializeRoundTrip(t *testing.T) {
	headers := []string{"id", "name", "notes"}
	rows := [][]string{
		{"1", "Иванов, Иван", "said \"late checkout\"\nprefers floor 2"},
		{"2", "Petrov", ""},
	}

	out := Serialize(headers, rows)

	r := csv.NewReader(strings.NewReader(out))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("standard parser rejected output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	for i, h := range headers {
		if records[0][i] != h {
			t.Fatalf("header %d = %q, want %q", i, records[0][i], h)
		}
	}
	if records[1][2] != rows[0][2] {
		t.Fatalf("field with comma/quote/newline did not round-trip: %q", records[1][2])
	}
}

func TestSerializeEveryFieldQuoted(t *testing.T) {
	out := Serialize([]string{"a", "b"}, [][]string{{"1", "2"}})
	want := "\"a\",\"b\"\n\"1\",\"2\""
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestSerializeNoTrailingNewline(t *testing.T) {
	out := Serialize([]string{"a"}, [][]string{{"x"}})
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("output must not end with a newline: %q", out)
	}
	if strings.Contains(out, "\r\n") {
		t.Fatalf("lines must be \\n-joined, found \\r\\n")
	}
}

func TestSerializeShortRowPads(t *testing.T) {
	out := Serialize([]string{"a", "b", "c"}, [][]string{{"only"}})
	lines := strings.SplitN(out, "\n", 2)
	if lines[1] != "\"only\",\"\",\"\"" {
		t.Fatalf("short row should pad with empty fields, got %q", lines[1])
	}
}

func TestSerializeDeterministic(t *testing.T) {
	headers := []string{"x", "y"}
	rows := [][]string{{"1", "a\"b"}, {"2", "c,d"}}
	if Serialize(headers, rows) != Serialize(headers, rows) {
		t.Fatalf("identical input must serialize byte-identically")
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC)
	if got := Filename("guests", now); got != "guests_2024-06-10.csv" {
		t.Fatalf("filename = %q", got)
	}
}
