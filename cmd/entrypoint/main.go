// Package main runs the web service and the MCP HTTP server in one container.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/santiment/sanbase/internal/platform/config"
)

// shutdownTimeout is the grace period before forcing child exit.
const shutdownTimeout = 10 * time.Second

// containerConfig names the child binaries and their bind addresses.
type containerConfig struct {
	WebBinary   string `env:"CONTAINER_WEB_BINARY" envDefault:"/app/web"`
	MCPBinary   string `env:"CONTAINER_MCP_BINARY" envDefault:"/app/mcp"`
	WebHTTPAddr string `env:"CONTAINER_WEB_HTTP_ADDR" envDefault:"0.0.0.0:8090"`
	MCPHTTPAddr string `env:"CONTAINER_MCP_HTTP_ADDR" envDefault:"0.0.0.0:8091"`
}

type childProcess struct {
	name string
	cmd  *exec.Cmd
}

type processExit struct {
	name string
	err  error
}

func main() {
	var cfg containerConfig
	config.ExitOnError("parse container env", config.ParseEnv(&cfg))
	log.SetPrefix("[CONTAINER] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := supervise(ctx, childCommands(cfg), shutdownTimeout)
	if err != nil {
		config.Exitf("supervise: %v", err)
	}
	os.Exit(code)
}

// childCommands builds the web and MCP child commands. Both inherit the
// container environment, so SANBASE_* settings reach them unchanged.
func childCommands(cfg containerConfig) []*childProcess {
	return []*childProcess{
		{name: "web", cmd: exec.Command(cfg.WebBinary, "-http-addr="+cfg.WebHTTPAddr)},
		{name: "mcp", cmd: exec.Command(cfg.MCPBinary, "-transport=http", "-http-addr="+cfg.MCPHTTPAddr)},
	}
}

// supervise starts every child and returns when ctx ends or the first child
// exits. The remaining children are stopped before it returns.
func supervise(ctx context.Context, children []*childProcess, grace time.Duration) (int, error) {
	var started []*childProcess
	for _, child := range children {
		if err := startChild(child); err != nil {
			terminateChildren(started)
			return 1, err
		}
		started = append(started, child)
	}

	exitCh := make(chan processExit, len(started))
	for _, child := range started {
		go waitChild(child, exitCh)
	}

	select {
	case <-ctx.Done():
		log.Printf("shutdown signal received")
		terminateChildren(started)
		waitForChildren(exitCh, len(started), grace, started)
		return 0, nil
	case exit := <-exitCh:
		log.Printf("%s exited err=%v", exit.name, exit.err)
		terminateChildren(started)
		waitForChildren(exitCh, len(started)-1, grace, started)
		return exitCode(exit.err), nil
	}
}

func startChild(child *childProcess) error {
	child.cmd.Stdout = os.Stdout
	child.cmd.Stderr = os.Stderr
	if err := child.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", child.name, err)
	}
	log.Printf("started %s pid=%d", child.name, child.cmd.Process.Pid)
	return nil
}

func waitChild(child *childProcess, exitCh chan<- processExit) {
	exitCh <- processExit{name: child.name, err: child.cmd.Wait()}
}

func terminateChildren(children []*childProcess) {
	for _, child := range children {
		if child == nil || child.cmd == nil || child.cmd.Process == nil {
			continue
		}
		_ = child.cmd.Process.Signal(syscall.SIGTERM)
	}
}

// waitForChildren waits for the remaining exits or kills what is left.
func waitForChildren(exitCh <-chan processExit, remaining int, timeout time.Duration, children []*childProcess) {
	if remaining <= 0 {
		return
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for remaining > 0 {
		select {
		case <-exitCh:
			remaining--
		case <-timer.C:
			for _, child := range children {
				if child.cmd.Process != nil && child.cmd.ProcessState == nil {
					_ = child.cmd.Process.Kill()
				}
			}
			return
		}
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
