package lifecycle

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ReEnvision-AI/tunneltray/app/tray"
	"github.com/ReEnvision-AI/tunneltray/app/tray/commontray"
	"github.com/ReEnvision-AI/tunneltray/app/tunnel"
)

// Mock tray implementation for testing
type mockTray struct {
	mu        sync.Mutex
	states    []tunnel.State
	callbacks commontray.Callbacks
	quitOnce  sync.Once
	quits     int
	quit      chan struct{}
	running   chan struct{}
}

func newMockTray() *mockTray {
	return &mockTray{
		callbacks: commontray.Callbacks{
			Toggle: make(chan struct{}),
			Quit:   make(chan struct{}),
		},
		quit:    make(chan struct{}),
		running: make(chan struct{}),
	}
}

func (m *mockTray) GetCallbacks() commontray.Callbacks { return m.callbacks }
func (m *mockTray) Run() {
	close(m.running)
	<-m.quit
}
func (m *mockTray) Quit() {
	m.mu.Lock()
	m.quits++
	m.mu.Unlock()
	m.quitOnce.Do(func() { close(m.quit) })
}

func (m *mockTray) quitCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quits
}
func (m *mockTray) SetIndicator(s tunnel.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states = append(m.states, s)
	return nil
}

func (m *mockTray) lastState() tunnel.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.states) == 0 {
		return tunnel.State(-1)
	}
	return m.states[len(m.states)-1]
}

type mockProcess struct {
	mu     sync.Mutex
	killed bool
}

func (p *mockProcess) Pid() int { return 4242 }
func (p *mockProcess) Kill() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.killed = true
	return nil
}

func (p *mockProcess) wasKilled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.killed
}

type mockLauncher struct {
	mu    sync.Mutex
	procs []*mockProcess
	args  [][]string
}

func (l *mockLauncher) Launch(cmd tunnel.Command) (tunnel.Process, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := &mockProcess{}
	l.procs = append(l.procs, p)
	l.args = append(l.args, cmd.Args())
	return p, nil
}

type messages struct {
	mu   sync.Mutex
	list []string
}

func (m *messages) show(_, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = append(m.list, message)
}

// setupRun swaps the package hooks for mocks and restores them when the test
// ends.
func setupRun(t *testing.T, mt *mockTray, trayErr error) (*mockLauncher, *messages) {
	t.Helper()
	t.Setenv(envLogDir, t.TempDir())

	prevTray, prevLauncher, prevShow := newTray, newLauncher, showError
	prevLogger := slog.Default()
	t.Cleanup(func() {
		newTray, newLauncher, showError = prevTray, prevLauncher, prevShow
		slog.SetDefault(prevLogger)
	})

	ml := &mockLauncher{}
	msgs := &messages{}
	newTray = func() (commontray.TunnelTray, error) {
		if trayErr != nil {
			return nil, trayErr
		}
		return mt, nil
	}
	newLauncher = func() tunnel.Launcher { return ml }
	showError = msgs.show
	return ml, msgs
}

func runAsync(args []string) <-chan int {
	done := make(chan int, 1)
	go func() { done <- Run(args) }()
	return done
}

func waitExit(t *testing.T, done <-chan int) int {
	t.Helper()
	select {
	case code := <-done:
		return code
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return -1
	}
}

func TestRunWithoutArgs(t *testing.T) {
	_, msgs := setupRun(t, nil, nil)
	newTray = func() (commontray.TunnelTray, error) {
		t.Fatal("tray must not be created without a command")
		return nil, nil
	}

	if code := Run(nil); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if len(msgs.list) != 1 || !strings.HasPrefix(msgs.list[0], "Usage:") {
		t.Errorf("Expected usage message, got %q", msgs.list)
	}
}

func TestRunTrayUnsupported(t *testing.T) {
	ml, msgs := setupRun(t, nil, tray.ErrUnsupported)

	if code := Run([]string{"ssh", "example.com"}); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if len(msgs.list) != 1 || !strings.Contains(msgs.list[0], "not supported") {
		t.Errorf("Expected unsupported message, got %q", msgs.list)
	}
	if len(ml.procs) != 0 {
		t.Error("Expected no process to be launched")
	}
}

func TestRunTrayFailure(t *testing.T) {
	_, msgs := setupRun(t, nil, errors.New("tray icons are missing"))

	if code := Run([]string{"ssh", "example.com"}); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if len(msgs.list) != 1 || !strings.Contains(msgs.list[0], "tray icons are missing") {
		t.Errorf("Expected tray error message, got %q", msgs.list)
	}
}

func TestRunToggleAndExit(t *testing.T) {
	mt := newMockTray()
	ml, _ := setupRun(t, mt, nil)

	done := runAsync([]string{"ssh", "-L", "8080:localhost:80", "example.com"})
	<-mt.running

	// Unbuffered sends: each one is received only after the previous event
	// was handled.
	mt.callbacks.Toggle <- struct{}{}
	mt.callbacks.Quit <- struct{}{}

	if code := waitExit(t, done); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}

	if len(ml.procs) != 1 {
		t.Fatalf("Expected one launch, got %d", len(ml.procs))
	}
	if got := strings.Join(ml.args[0], " "); got != "ssh -L 8080:localhost:80 example.com" {
		t.Errorf("Unexpected launched command %q", got)
	}
	if !ml.procs[0].wasKilled() {
		t.Error("Expected tunnel process to be killed on exit")
	}
	if mt.lastState() != tunnel.Open {
		t.Errorf("Expected open indicator, got %s", mt.lastState())
	}
	if n := mt.quitCount(); n != 1 {
		t.Errorf("Expected tray to be quit once, got %d", n)
	}
}

func TestRunTrayGoneKillsTunnel(t *testing.T) {
	mt := newMockTray()
	ml, _ := setupRun(t, mt, nil)

	done := runAsync([]string{"ssh", "example.com"})
	<-mt.running

	mt.callbacks.Toggle <- struct{}{}
	// The indicator is updated after the launch.
	for mt.lastState() != tunnel.Open {
		time.Sleep(10 * time.Millisecond)
	}

	// The tray exits on its own, bypassing the event loop.
	mt.Quit()

	if code := waitExit(t, done); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if !ml.procs[0].wasKilled() {
		t.Error("Expected tunnel process to be killed when the tray exits")
	}
	if n := mt.quitCount(); n != 1 {
		t.Errorf("Expected no further quit after the tray exited, got %d quits", n)
	}
}

func TestRunControllerFailure(t *testing.T) {
	mt := newMockTray()
	_, msgs := setupRun(t, mt, nil)
	newLauncher = func() tunnel.Launcher { return nil }

	if code := Run([]string{"ssh", "example.com"}); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if len(msgs.list) != 1 || !strings.Contains(msgs.list[0], "launcher is nil") {
		t.Errorf("Expected controller error message, got %q", msgs.list)
	}
}

func TestRunToggleTwice(t *testing.T) {
	mt := newMockTray()
	ml, _ := setupRun(t, mt, nil)

	done := runAsync([]string{"ssh", "example.com"})
	<-mt.running

	mt.callbacks.Toggle <- struct{}{}
	mt.callbacks.Toggle <- struct{}{}
	mt.callbacks.Quit <- struct{}{}

	if code := waitExit(t, done); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if len(ml.procs) != 1 || !ml.procs[0].wasKilled() {
		t.Fatal("Expected one process, killed by the second toggle")
	}
	if mt.lastState() != tunnel.Closed {
		t.Errorf("Expected closed indicator, got %s", mt.lastState())
	}
}

func TestRunInitialIndicator(t *testing.T) {
	mt := newMockTray()
	setupRun(t, mt, nil)

	done := runAsync([]string{"ssh", "example.com"})
	<-mt.running

	if mt.lastState() != tunnel.Closed {
		t.Errorf("Expected closed indicator at startup, got %s", mt.lastState())
	}

	mt.Quit()
	if code := waitExit(t, done); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
}

func TestRunSignal(t *testing.T) {
	mt := newMockTray()
	ml := &mockLauncher{}
	cmd, _ := tunnel.NewCommand([]string{"ssh", "example.com"})
	ctrl, err := tunnel.NewController(cmd, ml, mt, mt.Quit)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.Toggle()

	signals := make(chan os.Signal, 1)
	loopDone := make(chan struct{})
	go func() {
		handleEvents(ctrl, mt.GetCallbacks(), signals)
		close(loopDone)
	}()

	signals <- os.Interrupt

	select {
	case <-loopDone:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not stop on signal")
	}
	select {
	case <-mt.quit:
	default:
		t.Error("Expected tray to be quit on signal")
	}
	if !ml.procs[0].wasKilled() {
		t.Error("Expected tunnel process to be killed on signal")
	}
}
