package probe

import (
	"log/slog"
	"sync"
	"testing"
)

func TestProbe_Report(t *testing.T) {
	tests := []struct {
		name         string
		provider     Provider
		wantText     string
		wantFallback bool
		wantLevel    slog.Level
	}{
		{
			name:      "library available",
			provider:  NewRealProvider("opencv", func() string { return "4.9.0" }),
			wantText:  "4.9.0",
			wantLevel: slog.LevelInfo,
		},
		{
			name:         "library missing",
			provider:     FallbackProvider{},
			wantText:     FallbackText,
			wantFallback: true,
			wantLevel:    slog.LevelWarn,
		},
		{
			name:         "accessor not wired",
			provider:     NewRealProvider("opencv", nil),
			wantText:     FallbackText,
			wantFallback: true,
			wantLevel:    slog.LevelWarn,
		},
		{
			name:         "empty version",
			provider:     NewRealProvider("opencv", func() string { return "" }),
			wantText:     FallbackText,
			wantFallback: true,
			wantLevel:    slog.LevelWarn,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, rec := newRecorded(tc.provider)

			r := p.Report()
			if r.Text != tc.wantText {
				t.Errorf("Text = %q, want %q", r.Text, tc.wantText)
			}
			if r.Fallback != tc.wantFallback {
				t.Errorf("Fallback = %v, want %v", r.Fallback, tc.wantFallback)
			}
			if r.String() != r.Text {
				t.Errorf("String() = %q, want %q", r.String(), r.Text)
			}

			logs := rec.all()
			if len(logs) != 1 {
				t.Fatalf("got %d log records, want 1", len(logs))
			}
			if logs[0].Level != tc.wantLevel {
				t.Errorf("level = %v, want %v", logs[0].Level, tc.wantLevel)
			}
			if logs[0].Message != r.Text {
				t.Errorf("log message = %q, want %q", logs[0].Message, r.Text)
			}
			if logs[0].Attrs["provider"] != tc.provider.Name() {
				t.Errorf("provider attr = %q, want %q", logs[0].Attrs["provider"], tc.provider.Name())
			}
		})
	}
}

func TestProbe_Idempotent(t *testing.T) {
	calls := 0
	p, rec := newRecorded(NewRealProvider("opencv", func() string {
		calls++
		return "4.9.0"
	}))

	for i := 0; i < 5; i++ {
		if got := p.Version(); got != "4.9.0" {
			t.Fatalf("call %d: got %q", i, got)
		}
	}
	if calls != 5 {
		t.Errorf("accessor called %d times, want 5", calls)
	}
	if n := len(rec.all()); n != 5 {
		t.Errorf("got %d log records, want 5", n)
	}
}

func TestProbe_Concurrent(t *testing.T) {
	p, rec := newRecorded(FallbackProvider{})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := p.Version(); got != FallbackText {
				t.Errorf("got %q", got)
			}
		}()
	}
	wg.Wait()

	if n := len(rec.all()); n != 32 {
		t.Errorf("got %d log records, want 32", n)
	}
}

func TestNew_Defaults(t *testing.T) {
	p := New(nil, nil)
	if p.Provider() == nil {
		t.Fatal("nil provider")
	}
	if p.Provider().Name() != Default().Name() {
		t.Errorf("provider = %q, want %q", p.Provider().Name(), Default().Name())
	}
	if p.Version() == "" {
		t.Error("empty version")
	}
}

func TestIsFallback(t *testing.T) {
	if !IsFallback(FallbackText) {
		t.Error("fallback text not recognised")
	}
	if IsFallback("4.9.0") {
		t.Error("real version reported as fallback")
	}
}

func TestFallbackProvider(t *testing.T) {
	var p FallbackProvider
	if p.Available() {
		t.Error("fallback should not be available")
	}
	if p.Version() != "OpenCV SDK missing (install third_party/opencv-android-sdk)" {
		t.Errorf("Version() = %q", p.Version())
	}
}
