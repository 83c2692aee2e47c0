package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/client/client"
	"github.com/dmitrijs2005/filedesk/internal/client/config"
	"github.com/dmitrijs2005/filedesk/internal/client/store"
	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/netx"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

func modeOf(online bool) Mode {
	if online {
		return ModeOnline
	}
	return ModeOffline
}

// openFile is a test seam for os.Open.
var openFile = func(path string) (io.ReadCloser, error) { return os.Open(path) }

type App struct {
	config  *config.Config
	client  client.Client
	store   *store.FileStore
	monitor *netx.Monitor
	logger  logging.Logger

	// loadingShown suppresses repeated loading markers within one command.
	mu           sync.Mutex
	loadingShown bool
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	monitor := netx.NewMonitor()

	hc, err := client.NewHTTPClient(c.BaseURL,
		client.WithLogger(logger.With("component", "http")),
		client.WithUploadTimeout(c.UploadTimeout),
		client.WithConnectivity(monitor.Online),
	)
	if err != nil {
		return nil, err
	}

	return newApp(c, hc, monitor, logger), nil
}

func newApp(c *config.Config, cl client.Client, monitor *netx.Monitor, logger logging.Logger) *App {
	a := &App{
		config:  c,
		client:  cl,
		store:   store.New(cl, logger.With("component", "store")),
		monitor: monitor,
		logger:  logger,
	}
	a.store.Subscribe(a.onStateChange)
	return a
}

func (a *App) onStateChange(st store.State) {
	a.mu.Lock()
	show := st.Loading && !a.loadingShown
	if show {
		a.loadingShown = true
	}
	a.mu.Unlock()

	if show {
		printlnFn("Loading...")
	}
}

// Run executes a single command when args is not empty and the REPL
// otherwise. It returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if len(args) == 0 {
		printlnFn("filedesk CLI (type 'help' for commands)")
		runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
		return 0
	}

	if _, err := dispatch(ctx, a, args[0], args[1:]); err != nil {
		return 1
	}
	return 0
}

func (a *App) getStatus() string {
	return string(modeOf(a.monitor.Online()))
}

func (a *App) setMode(ctx context.Context, online bool) {
	if a.monitor.Set(online) {
		a.onModeChange(ctx, online)
	}
}

func (a *App) onModeChange(ctx context.Context, online bool) {
	a.logger.Info(ctx, "connection mode changed", "mode", modeOf(online))
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is
// done and keeps the connectivity monitor current.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	a.monitor.Watch(ctx, interval, a.client.Ping, func(online bool) {
		a.onModeChange(ctx, online)
	})
}
