package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestTracerSpansWithoutSetup(t *testing.T) {
	_, span := Tracer("dungeon").Start(context.Background(), "dungeon.generate")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("span from the default provider should not be sampled")
	}

	_, noopSpan := NoopTracer().Start(context.Background(), "noop")
	noopSpan.End()
}

func TestConfigureHoneycombEnv(t *testing.T) {
	tests := []struct {
		name        string
		apiKey      string
		dataset     string
		wantSet     bool
		wantHeaders string
	}{
		{"no key", "", "", false, ""},
		{"default dataset", "abc", "", true, "x-honeycomb-team=abc,x-honeycomb-dataset=dungeongen"},
		{"custom dataset", "abc", "maps", true, "x-honeycomb-team=abc,x-honeycomb-dataset=maps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DUNGEONGEN_HONEYCOMB_API_KEY", tt.apiKey)
			t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
			t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

			got := ConfigureHoneycombEnv(Config{Dataset: tt.dataset})
			if got != tt.wantSet {
				t.Fatalf("ConfigureHoneycombEnv = %v, want %v", got, tt.wantSet)
			}
			if h := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); h != tt.wantHeaders {
				t.Errorf("headers = %q, want %q", h, tt.wantHeaders)
			}
			if tt.wantSet && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != honeycombEndpoint {
				t.Errorf("endpoint = %q, want %q", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"), honeycombEndpoint)
			}
		})
	}
}
