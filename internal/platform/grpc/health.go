// Package grpc hosts the ops gRPC health listener and its client probe.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer exposes the standard gRPC health service for one service name.
type HealthServer struct {
	service string
	server  *gogrpc.Server
	health  *health.Server
}

// NewHealthServer builds a health listener reporting NOT_SERVING until Serve runs.
func NewHealthServer(service string) *HealthServer {
	server := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{service: service, server: server, health: healthServer}
}

// SetServing flips the reported status for the overall server and the service.
func (h *HealthServer) SetServing(serving bool) {
	if h == nil {
		return
	}
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(h.service, status)
}

// Serve reports SERVING and answers health checks on listener until ctx ends.
func (h *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	if h == nil {
		return errors.New("health server is nil")
	}
	if listener == nil {
		return errors.New("health listener is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(listener)
	}()
	h.SetServing(true)

	select {
	case <-ctx.Done():
		h.health.Shutdown()
		h.server.GracefulStop()
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC health: %w", err)
	}
}

// WaitForHealth blocks until the gRPC health check reports SERVING or the context ends.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	backoff := 200 * time.Millisecond
	for {
		callCtx, cancel := context.WithTimeout(ctx, time.Second)
		response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		if err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			if logf != nil {
				logf("gRPC health check is SERVING")
			}
			return nil
		}
		if logf != nil {
			if err != nil {
				logf("waiting for gRPC health: %v", err)
			} else {
				logf("waiting for gRPC health: status %s", response.GetStatus().String())
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}

		if backoff < time.Second {
			backoff *= 2
			if backoff > time.Second {
				backoff = time.Second
			}
		}
	}
}
