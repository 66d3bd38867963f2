// Package bridge manages the container-launched relay that fronts a TCP MCP
// toolkit with a stdio stream pair. The relay is expected to connect its
// standard streams to the configured TCP endpoint (alpine/socat does this
// with the STDIO and TCP:host:port arguments).
package bridge

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ajitpratap0/mcp-sdk-go/pkg/logging"
)

// DefaultRuntime is the container runtime used to launch the relay.
const DefaultRuntime = "docker"

// Bridge launches the relay subprocess and exposes its stdin/stdout as the
// stream pair a stdio transport reads and writes. Release is guaranteed by
// Close on every exit path; Close is safe to call more than once and before
// a successful Start.
type Bridge struct {
	runtime string
	image   string
	host    string
	port    int
	logger  logging.Logger

	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    io.ReadCloser
	drain     *errgroup.Group
	closeOnce sync.Once
	closeErr  error
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithRuntime overrides the container runtime binary. Anything accepting
// docker-style "run -i --rm" arguments works, e.g. podman.
func WithRuntime(name string) Option {
	return func(b *Bridge) {
		b.runtime = name
	}
}

// New returns a Bridge for the given image relaying to host:port.
func New(image, host string, port int, logger logging.Logger, opts ...Option) *Bridge {
	b := &Bridge{
		runtime: DefaultRuntime,
		image:   image,
		host:    host,
		port:    port,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Args returns the runtime arguments for the relay container.
func (b *Bridge) Args() []string {
	return []string{
		"run",
		"-i",
		"--rm",
		b.image,
		"STDIO",
		fmt.Sprintf("TCP:%s:%d", b.host, b.port),
	}
}

// Start launches the relay subprocess. The returned error covers pipe setup
// and process launch; relay-side failures surface later as EOF on the
// stream pair and as drained stderr lines in the log.
func (b *Bridge) Start(ctx context.Context) error {
	return b.start(exec.CommandContext(ctx, b.runtime, b.Args()...))
}

func (b *Bridge) start(cmd *exec.Cmd) error {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", b.runtime, err)
	}

	b.cmd = cmd
	b.stdin = stdin
	b.stdout = stdout

	b.drain = &errgroup.Group{}
	b.drain.Go(func() error {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			b.logger.Warn("bridge stderr", logging.String("line", scanner.Text()))
		}
		// The pipe closing on process exit is the normal shutdown signal.
		return nil
	})

	b.logger.Debug("bridge started",
		logging.String("runtime", b.runtime),
		logging.String("image", b.image),
		logging.String("target", fmt.Sprintf("%s:%d", b.host, b.port)))
	return nil
}

// Stdin returns the writer feeding the relay's standard input.
func (b *Bridge) Stdin() io.Writer {
	return b.stdin
}

// Stdout returns the reader attached to the relay's standard output.
func (b *Bridge) Stdout() io.Reader {
	return b.stdout
}

// Close ends the relay: closing its stdin signals EOF, after which the
// process is reaped. Repeated calls return the first result.
func (b *Bridge) Close() error {
	b.closeOnce.Do(func() {
		if b.cmd == nil {
			return
		}
		if err := b.stdin.Close(); err != nil {
			b.logger.Debug("closing bridge stdin", logging.ErrorField(err))
		}
		b.drain.Wait() //nolint:errcheck // drain goroutine never returns an error
		if err := b.cmd.Wait(); err != nil {
			b.closeErr = fmt.Errorf("bridge exited: %w", err)
		}
	})
	return b.closeErr
}
