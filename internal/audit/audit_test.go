package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLog_CreatesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "history.jsonl")

	Log(logPath, Entry{Operation: "upload", Server: "https://dav.example.com", Success: true, Bytes: 2})

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("History file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "history.jsonl")

	Log(logPath, Entry{Operation: "test", Success: true})
	Log(logPath, Entry{Operation: "upload", Success: true})
	Log(logPath, Entry{Operation: "download", Success: false, Status: 500})

	entries, err := ReadEntries(logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	wantOps := []string{"test", "upload", "download"}
	for i, op := range wantOps {
		if entries[i].Operation != op {
			t.Errorf("Entry %d: expected op %q, got %q", i, op, entries[i].Operation)
		}
	}
	if entries[2].Status != 500 || entries[2].Success {
		t.Errorf("Unexpected failed entry %+v", entries[2])
	}
}

func TestLog_FillsTimestampAndID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "history.jsonl")

	Log(logPath, Entry{Operation: "upload"})

	entries, err := ReadEntries(logPath)
	if err != nil || len(entries) != 1 {
		t.Fatalf("ReadEntries() = %v, %v", entries, err)
	}

	if _, err := time.Parse(TimestampFormat, entries[0].Timestamp); err != nil {
		t.Errorf("Timestamp %q does not match format: %v", entries[0].Timestamp, err)
	}
	if _, err := uuid.Parse(entries[0].ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", entries[0].ID, err)
	}
}

func TestLog_KeepsProvidedValues(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "history.jsonl")

	Log(logPath, Entry{Timestamp: "2024-01-01T00:00:00.000000Z", ID: "fixed", Operation: "clear"})

	entries, _ := ReadEntries(logPath)
	if len(entries) != 1 || entries[0].Timestamp != "2024-01-01T00:00:00.000000Z" || entries[0].ID != "fixed" {
		t.Errorf("Unexpected entries %+v", entries)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "history.jsonl")

	Log(logPath, Entry{Operation: "clear", Success: true})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("History line is not valid JSON: %v", err)
	}
	for _, key := range []string{"server", "status", "bytes", "error"} {
		if _, ok := raw[key]; ok {
			t.Errorf("Expected %q to be omitted, got %v", key, raw[key])
		}
	}
	if raw["ok"] != true {
		t.Errorf("Expected ok=true, got %v", raw["ok"])
	}
}

func TestLog_EmptyPathIsNoop(t *testing.T) {
	// Must not panic or create files in the working directory.
	Log("", Entry{Operation: "upload"})
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := strings.Join([]string{
		`{"ts":"2024-01-01T00:00:00.000000Z","id":"1","op":"upload","ok":true}`,
		`not json`,
		``,
		`{"ts":"2024-01-02T00:00:00.000000Z","id":"2","op":"download","ok":false,"status":404}`,
		`{"op":"trunc`,
	}, "\n")

	entries, err := ParseEntries([]byte(data))
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].ID != "2" || entries[1].Status != 404 {
		t.Errorf("Unexpected entry %+v", entries[1])
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil || entries != nil {
		t.Errorf("ParseEntries(nil) = %v, %v", entries, err)
	}
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "history.jsonl"))
	if err != nil || entries != nil {
		t.Errorf("ReadEntries() = %v, %v; want nil, nil", entries, err)
	}
}

func TestTail(t *testing.T) {
	entries := []Entry{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	tests := []struct {
		n    int
		want int
		last string
	}{
		{0, 3, "3"},
		{-1, 3, "3"},
		{2, 2, "3"},
		{10, 3, "3"},
	}

	for _, tt := range tests {
		got := Tail(entries, tt.n)
		if len(got) != tt.want || got[len(got)-1].ID != tt.last {
			t.Errorf("Tail(%d) = %+v", tt.n, got)
		}
	}
}
