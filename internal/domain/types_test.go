package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseReleaseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // "" means nil
	}{
		{name: "year only", input: "2020", want: "2020-01-01"},
		{name: "year and month", input: "2020-05", want: "2020-05-01"},
		{name: "full date", input: "2020-05-17", want: "2020-05-17"},
		{name: "empty string", input: "", want: ""},
		{name: "nine characters", input: "2020-05-1", want: ""},
		{name: "too long", input: "2020-05-17T00", want: ""},
		{name: "garbage year", input: "abcd", want: ""},
		{name: "garbage full date", input: "2020-13-45", want: ""},
		{name: "wrong separator", input: "2020/05/17", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReleaseDate(tt.input)
			if tt.want == "" {
				if got != nil {
					t.Errorf("ParseReleaseDate(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseReleaseDate(%q) = nil, want %s", tt.input, tt.want)
			}
			if got.String() != tt.want {
				t.Errorf("ParseReleaseDate(%q) = %s, want %s", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(2020, time.May, 17)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2020-05-17"` {
		t.Errorf("Expected \"2020-05-17\", got %s", data)
	}

	// A nil *Date must serialize as null
	var album Album
	album.ID = "a1"
	data, err = json.Marshal(album)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded["release_date"] != nil {
		t.Errorf("Expected release_date null, got %v", decoded["release_date"])
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2021-12-03"`), &d); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if d.String() != "2021-12-03" {
		t.Errorf("Expected 2021-12-03, got %s", d.String())
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Error("Expected error for invalid date literal")
	}
}

func TestDateScanValue(t *testing.T) {
	d := NewDate(1999, time.February, 1)
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != "1999-02-01" {
		t.Errorf("Expected 1999-02-01, got %v", v)
	}

	var scanned Date
	if err := scanned.Scan("1999-02-01"); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !scanned.Equal(d.Time) {
		t.Errorf("Expected %v, got %v", d.Time, scanned.Time)
	}

	// Timestamp-shaped values get truncated to the date part
	if err := scanned.Scan("1999-02-01 00:00:00"); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if scanned.String() != "1999-02-01" {
		t.Errorf("Expected 1999-02-01, got %s", scanned.String())
	}

	if err := scanned.Scan([]byte("2003-07-22")); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if scanned.String() != "2003-07-22" {
		t.Errorf("Expected 2003-07-22, got %s", scanned.String())
	}

	if err := scanned.Scan(42); err == nil {
		t.Error("Expected error scanning an int")
	}
}
