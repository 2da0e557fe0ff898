// Package console renders launcher progress for a human at a terminal.
// Nothing in here makes decisions; it only prints what the core returns.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"stacklaunch/pkg/actions"
	"stacklaunch/pkg/config"
	"stacklaunch/pkg/model"
	"stacklaunch/pkg/preflight"

	"github.com/charmbracelet/lipgloss"
)

type Presenter struct {
	out     io.Writer
	in      *bufio.Reader
	s       styles
	stack   config.StackConfig
	runtime string

	launched bool
	ticking  bool
	pending  chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// New builds a presenter that writes to out and reads menu input from in.
// Colours are dropped automatically when out is not a terminal.
func New(out io.Writer, in io.Reader, stack config.StackConfig, runtimePath string) *Presenter {
	return &Presenter{
		out:     out,
		in:      bufio.NewReader(in),
		s:       newStyles(lipgloss.NewRenderer(out)),
		stack:   stack,
		runtime: runtimePath,
	}
}

func (p *Presenter) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.out, style.Render(fmt.Sprintf(format, args...)))
}

func (p *Presenter) plain(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Presenter) Info(format string, args ...any)    { p.line(p.s.info, format, args...) }
func (p *Presenter) Success(format string, args ...any) { p.line(p.s.success, format, args...) }
func (p *Presenter) Warning(format string, args ...any) { p.line(p.s.warning, format, args...) }
func (p *Presenter) Error(format string, args ...any)   { p.line(p.s.err, format, args...) }

// Header prints the launcher banner.
func (p *Presenter) Header() {
	p.plain("%s", p.s.banner.Render(p.stack.Name+" - Launcher"))
	fmt.Fprintln(p.out)
}

// CheckingRuntime announces the runtime check.
func (p *Presenter) CheckingRuntime() {
	p.launched, p.ticking = false, false
	p.plain("Checking Docker status...")
}

// RuntimeLaunched is called right before the desktop application is spawned.
func (p *Presenter) RuntimeLaunched(path string) {
	p.launched = true
	p.Warning("⚠️  Docker is not running")
	p.Info("🐳 Starting Docker Desktop...")
	fmt.Fprint(p.out, "Waiting for Docker to start")
}

// PollTick prints one dot per readiness attempt.
func (p *Presenter) PollTick(attempt, max int) {
	p.ticking = true
	fmt.Fprint(p.out, ".")
}

func (p *Presenter) endTicks() {
	if p.ticking || p.launched {
		fmt.Fprintln(p.out)
	}
	p.ticking = false
}

// RuntimeOutcome renders the result of the runtime check.
func (p *Presenter) RuntimeOutcome(outcome model.LaunchOutcome) {
	switch outcome {
	case model.LaunchAlreadyRunning:
		p.Success("✅ Docker is already running")
	case model.LaunchStarted:
		p.endTicks()
		p.Success("✅ Docker is ready!")
	case model.LaunchNotFound:
		p.Warning("⚠️  Docker is not running")
		p.Error("❌ Docker Desktop not found at: %s", p.runtime)
		p.plain("Please install Docker Desktop or set LAUNCHER_RUNTIME_PATH / runtime.path in the config.")
	case model.LaunchTimedOut:
		p.endTicks()
		p.Warning("⚠️  Docker took too long to start. Please wait a moment and try again.")
	case model.LaunchCancelled:
		p.endTicks()
		p.Warning("⚠️  Wait for Docker cancelled.")
	}
}

// CheckingTool announces the compose tool check.
func (p *Presenter) CheckingTool() {
	p.plain("Checking Docker Compose...")
}

// ToolOutcome renders the result of the compose tool check.
func (p *Presenter) ToolOutcome(available bool) {
	if available {
		p.Success("✅ Docker Compose is available")
		return
	}
	p.Error("❌ Docker Compose is not available!")
	p.Warning("Please install Docker Compose and try again.")
}

// Report renders the compose tool half of a preflight report. The runtime
// half is printed as it happens through RuntimeOutcome.
func (p *Presenter) Report(r preflight.Report) {
	if r.ToolChecked {
		p.ToolOutcome(r.ToolAvailable)
	}
}

// Menu prints the options.
func (p *Presenter) Menu() {
	p.plain("\nChoose an option:")
	p.plain("1. Start Application")
	p.plain("2. Stop Application")
	p.plain("3. Exit")
	fmt.Fprint(p.out, "\nEnter your choice (1-3): ")
}

// readLine reads one line from the input, giving up when ctx is done. A read
// abandoned by cancellation is picked up again by the next call.
func (p *Presenter) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %v", model.ErrCancelled, ctx.Err())
	}
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			text, err := p.in.ReadString('\n')
			ch <- lineResult{text: text, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", fmt.Errorf("%w: %v", model.ErrCancelled, ctx.Err())
	case r := <-p.pending:
		p.pending = nil
		return r.text, r.err
	}
}

// ReadChoice reads one line of input. End of input counts as invalid;
// cancellation returns model.ErrCancelled.
func (p *Presenter) ReadChoice(ctx context.Context) (model.MenuChoice, error) {
	text, err := p.readLine(ctx)
	if errors.Is(err, model.ErrCancelled) {
		return model.MenuInvalid, err
	}
	if err != nil && text == "" {
		fmt.Fprintln(p.out)
		return model.MenuInvalid, nil
	}
	return model.ParseMenuChoice(text), nil
}

// Pause waits for Enter so a double-clicked console window stays open.
func (p *Presenter) Pause(ctx context.Context) error {
	fmt.Fprint(p.out, "\nPress Enter to exit...")
	_, err := p.readLine(ctx)
	if errors.Is(err, model.ErrCancelled) {
		return err
	}
	return nil
}

func (p *Presenter) ActionStarting(choice model.MenuChoice, action actions.Action) {
	fmt.Fprintln(p.out)
	switch choice {
	case model.MenuStart:
		p.Info("🚀 Starting %s...", p.stack.Name)
		if len(p.stack.Services) > 0 {
			p.plain("\nThis will:")
			for _, svc := range p.stack.Services {
				p.line(p.s.muted, "  - %s", svc)
			}
			fmt.Fprintln(p.out)
		}
		if p.stack.Notice != "" {
			p.Warning("⏱️  %s", p.stack.Notice)
			fmt.Fprintln(p.out)
		}
		p.plain("Starting services...")
	case model.MenuStop:
		p.Warning("🛑 Stopping %s...", p.stack.Name)
		fmt.Fprintln(p.out)
	}
}

func (p *Presenter) ActionPlanned(action actions.Action) {
	p.plain("Dry run enabled. The following operations would be performed:")
	p.plain("=> %s", action.Description())
	for _, detail := range action.ExecutionDetails() {
		p.plain("   - %s", detail)
	}
}

func (p *Presenter) ActionSucceeded(choice model.MenuChoice) {
	fmt.Fprintln(p.out)
	switch choice {
	case model.MenuStart:
		p.Success("🎉 Application started successfully!")
		fmt.Fprintln(p.out)
		p.Endpoints()
	case model.MenuStop:
		p.Success("✅ Application stopped successfully!")
		p.plain("All containers have been stopped and removed.")
	}
}

func (p *Presenter) ActionFailed(choice model.MenuChoice, err error) {
	fmt.Fprintln(p.out)
	p.Error("❌ Failed to %s the application: %v", choice, err)
}

// Endpoints lists the URLs the stack exposes once it is up.
func (p *Presenter) Endpoints() {
	width := 0
	for _, ep := range p.stack.Endpoints {
		if len(ep.Name) > width {
			width = len(ep.Name)
		}
	}
	for _, ep := range p.stack.Endpoints {
		pad := strings.Repeat(" ", width-len(ep.Name))
		fmt.Fprintf(p.out, "%s:%s %s\n", p.s.info.Render(ep.Name), pad, p.s.link.Render(ep.URL))
	}
}

func (p *Presenter) InvalidChoice() {
	p.Error("Invalid choice. Please run the program again.")
}

func (p *Presenter) Goodbye() {
	p.plain("Goodbye!")
}

var _ actions.Reporter = (*Presenter)(nil)
