package grpc

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/santiment/sanbase/internal/platform/timeouts"
)

// ProbeStage names the step a health probe failed at.
type ProbeStage string

const (
	ProbeStageConnect ProbeStage = "connect"
	ProbeStageHealth  ProbeStage = "health"
)

// ProbeError reports a failed health probe and its stage.
type ProbeError struct {
	Addr  string
	Stage ProbeStage
	Err   error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("health probe %s %s: %v", e.Addr, e.Stage, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Probe dials the health listener at addr and returns once service reports
// SERVING. The whole probe is bounded by timeouts.HealthProbe.
func Probe(ctx context.Context, addr string, service string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return &ProbeError{Stage: ProbeStageConnect, Err: fmt.Errorf("address is required")}
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.HealthProbe)
	defer cancel()

	conn, err := gogrpc.NewClient(addr,
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return &ProbeError{Addr: addr, Stage: ProbeStageConnect, Err: err}
	}
	defer conn.Close()
	if err := WaitForHealth(ctx, conn, service, nil); err != nil {
		return &ProbeError{Addr: addr, Stage: ProbeStageHealth, Err: err}
	}
	return nil
}
