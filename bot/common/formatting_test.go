package common

import (
	"testing"
	"time"
)

func TestFormatDiscordTimestamp(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	if got := FormatDiscordTimestamp(ts, "R"); got != "<t:1700000000:R>" {
		t.Errorf("FormatDiscordTimestamp = %s; want <t:1700000000:R>", got)
	}
}

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		expected string
	}{
		{"Zero", 0, "0"},
		{"Under 1k", 999, "999"},
		{"Exactly 1k", 1000, "1,000"},
		{"Five digits", 12345, "12,345"},
		{"Six digits", 123456, "123,456"},
		{"Millions", 1234567, "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatBalance(tt.balance)
			if result != tt.expected {
				t.Errorf("FormatBalance(%d) = %s; want %s", tt.balance, result, tt.expected)
			}
		})
	}
}
