package datemath_test

import (
	"testing"
	"time"

	"task-management/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "Chinese day after tomorrow",
			relative: "后天",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "Chinese tomorrow",
			relative: "明天",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase, // falls back to startOfDay(base)
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	parser := datemath.NewParserInLocation(loc)

	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{name: "Literal date stays on its day", input: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, loc), wantOK: true},
		{name: "Slash layout", input: "2024/05/01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, loc), wantOK: true},
		{name: "RFC3339 truncated to local day", input: "2024-04-30T20:00:00Z", want: time.Date(2024, 5, 1, 0, 0, 0, 0, loc), wantOK: true},
		{name: "Empty", input: "", wantOK: false},
		{name: "Garbage", input: "not a date", wantOK: false},
		{name: "Impossible day", input: "2024-02-30", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScan(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		text     string
		want     time.Time
		wantKind datemath.MatchKind
		wantOK   bool
	}{
		{name: "Today in sentence", text: "今天下午三点前提交项目周报", want: startOfBase, wantKind: datemath.MatchRelative, wantOK: true},
		{name: "Tomorrow meeting", text: "明天开会", want: startOfBase.AddDate(0, 0, 1), wantKind: datemath.MatchRelative, wantOK: true},
		{name: "Three days out is not two", text: "大后天交报告", want: startOfBase.AddDate(0, 0, 3), wantKind: datemath.MatchRelative, wantOK: true},
		{name: "English phrase", text: "finish slides the day after tomorrow", want: startOfBase.AddDate(0, 0, 2), wantKind: datemath.MatchRelative, wantOK: true},
		{name: "Next weekday", text: "send the invoice next Friday", want: startOfBase.AddDate(0, 0, 2), wantKind: datemath.MatchRelative, wantOK: true},
		{name: "In N days", text: "renew passport in 3 days", want: startOfBase.AddDate(0, 0, 3), wantKind: datemath.MatchRelative, wantOK: true},
		{name: "Phrase beats single word", text: "today decide, ship in 2 weeks", want: startOfBase.AddDate(0, 0, 14), wantKind: datemath.MatchRelative, wantOK: true},
		{name: "Unknown weekday ignored", text: "next fryday", wantOK: false},
		{name: "Absolute beats relative", text: "明天先准备，2024.06.03 提交", want: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), wantKind: datemath.MatchAbsolute, wantOK: true},
		{name: "Invalid absolute falls back to relative", text: "2024-13-40 今天", want: startOfBase, wantKind: datemath.MatchRelative, wantOK: true},
		{name: "Nothing", text: "买牛奶", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Scan(tt.text, base)
			if ok != tt.wantOK {
				t.Fatalf("Scan(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.AbsoluteTime.Equal(tt.want) {
				t.Errorf("Scan(%q) = %v, want %v", tt.text, got.AbsoluteTime, tt.want)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Scan(%q) kind = %s, want %s", tt.text, got.Kind, tt.wantKind)
			}
		})
	}
}

func TestStartOfNextDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	got := parser.StartOfNextDay(time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC))
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfNextDay() = %v, want %v", got, want)
	}
}
