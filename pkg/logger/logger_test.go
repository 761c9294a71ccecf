package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic calling Get before Init")
		}
	}()
	Get()
}

func TestInit_SingletonAndGet(t *testing.T) {
	Reset()
	var buf bytes.Buffer
	first := Init(Options{Level: "debug", Output: &buf})

	// A second Init must not rebuild the instance.
	var other bytes.Buffer
	_ = Init(Options{Level: "error", Output: &other})

	log := Get()
	log.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug entry not written at debug level: %q", buf.String())
	}
	if other.Len() != 0 {
		t.Fatalf("second Init must be a no-op, but it rewired output")
	}

	first.Info().Msg("also visible")
	if !strings.Contains(buf.String(), "also visible") {
		t.Fatalf("Init return value and Get must share one instance")
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	Reset()
	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Info().Msg("suppressed")
	log.Warn().Msg("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info entry must be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "emitted") {
		t.Fatalf("warn entry missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
