package otel_test

import (
	"context"
	"testing"

	"github.com/vinylcourses/coursehub/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv(otel.EndpointVar, "")
	t.Setenv(otel.EnabledVar, "")

	shutdown, err := otel.Setup(context.Background(), "web")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv(otel.EndpointVar, "http://localhost:4318")
	t.Setenv(otel.EnabledVar, "FALSE")

	shutdown, err := otel.Setup(context.Background(), "web")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address: nothing is exported before shutdown.
	t.Setenv(otel.EndpointVar, "http://192.0.2.1:4318")
	t.Setenv(otel.EnabledVar, "")

	shutdown, err := otel.Setup(context.Background(), "web")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
