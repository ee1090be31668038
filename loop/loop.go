// Package loop implements the interactive session loop that composes
// knowledge disclosure, model invocation, action-directive parsing, the
// human confirmation gate, command execution, and observation feedback.
//
// The loop initializes from configuration via New, creating all subsystems
// internally. Functional options allow overrides of any subsystem.
//
//	l, err := loop.New(&cfg, loop.WithConfirmer(confirmer))
//	result, err := l.RunTurn(ctx, "write me a bash loop")
package loop

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tailored-agentic-units/shellagent/agent"
	"github.com/tailored-agentic-units/shellagent/core/protocol"
	"github.com/tailored-agentic-units/shellagent/directive"
	"github.com/tailored-agentic-units/shellagent/knowledge"
	"github.com/tailored-agentic-units/shellagent/observability"
	"github.com/tailored-agentic-units/shellagent/session"
	"github.com/tailored-agentic-units/shellagent/shell"
)

const (
	observationPrefix = "COMMAND OUTPUT:\n"
	deniedNotice      = "User denied execution."
	abortedResponse   = "Turn aborted: too many actions."
)

// Executor abstracts command execution for testability. The default
// implementation is shell.NewExecutor.
type Executor interface {
	Execute(ctx context.Context, command string) shell.Result
}

// Confirmer gates command execution on explicit human approval. Confirm is
// called with the raw command before the executor is ever invoked.
type Confirmer interface {
	Confirm(command string) (bool, error)
}

// denyAll is the default Confirmer: without an interactive gate wired in,
// every proposed command is refused.
type denyAll struct{}

func (denyAll) Confirm(string) (bool, error) { return false, nil }

// Result holds the outcome of one outer conversational turn.
type Result struct {
	Response string         // Final assistant text for the turn.
	Calls    int            // Number of model calls made.
	Actions  []ActionRecord // Log of directives proposed during the turn.
}

// ActionRecord is one proposed command and its outcome.
type ActionRecord struct {
	Command     string
	Approved    bool
	Observation string // Text fed back to the model.
}

// Option configures a Loop after config-driven initialization.
type Option func(*Loop)

// WithAgent overrides the config-created model backend.
func WithAgent(a agent.Agent) Option {
	return func(l *Loop) { l.agent = a }
}

// WithRegistry overrides the config-created backend registry.
func WithRegistry(r *agent.Registry) Option {
	return func(l *Loop) { l.registry = r }
}

// WithSession overrides the config-created session.
func WithSession(s session.Session) Option {
	return func(l *Loop) { l.session = s }
}

// WithKnowledge overrides the config-created knowledge registry.
func WithKnowledge(r *knowledge.Registry) Option {
	return func(l *Loop) { l.knowledge = r }
}

// WithParser overrides the default action-directive parser.
func WithParser(p directive.Parser) Option {
	return func(l *Loop) { l.parser = p }
}

// WithExecutor overrides the config-created command executor.
func WithExecutor(e Executor) Option {
	return func(l *Loop) { l.executor = e }
}

// WithConfirmer installs the human confirmation gate.
func WithConfirmer(c Confirmer) Option {
	return func(l *Loop) { l.confirmer = c }
}

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(l *Loop) { l.observer = o }
}

// WithOutput sets the writer for in-turn progress text (intermediate
// responses, execution output). Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(l *Loop) { l.out = w }
}

// Loop is the single-session runtime that executes the agentic cycle.
// It owns the conversation exclusively; all operations are sequential.
type Loop struct {
	agent      agent.Agent
	registry   *agent.Registry
	session    session.Session
	knowledge  *knowledge.Registry
	parser     directive.Parser
	executor   Executor
	confirmer  Confirmer
	observer   observability.Observer
	out        io.Writer
	maxActions int
	persona    string
}

// New creates a Loop from configuration. Subsystems (backend, session,
// knowledge registry, executor) are initialized from their respective config
// sections. Functional options applied after initialization can override any
// subsystem.
func New(cfg *Config, opts ...Option) (*Loop, error) {
	reg := agent.NewRegistry()
	for name, backendCfg := range cfg.Agents {
		if err := reg.Register(name, backendCfg); err != nil {
			return nil, fmt.Errorf("failed to register backend %q: %w", name, err)
		}
	}

	var a agent.Agent
	var err error
	if cfg.Backend != "" {
		a, err = reg.Get(cfg.Backend)
	} else {
		a, err = agent.New(&cfg.Agent)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create model backend: %w", err)
	}

	sesh, err := session.New(&cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	kb, err := knowledge.New(&cfg.Knowledge, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to build knowledge registry: %w", err)
	}

	l := &Loop{
		agent:      a,
		registry:   reg,
		session:    sesh,
		knowledge:  kb,
		parser:     directive.NewExecParser(),
		executor:   shell.NewExecutor(&cfg.Shell),
		confirmer:  denyAll{},
		observer:   observability.NewSlogObserver(slog.Default()),
		out:        io.Discard,
		maxActions: cfg.MaxActions,
		persona:    cfg.SystemPrompt,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Registry returns the loop's backend registry.
func (l *Loop) Registry() *agent.Registry {
	return l.registry
}

// Session returns the loop's persisted conversation history.
func (l *Loop) Session() session.Session {
	return l.session
}

// RunTurn executes one outer conversational turn for the given user input:
// it composes fresh system instructions, then drives the inner cycle of
// model call, directive parse, confirmation, execution, and observation
// feedback until the model produces a turn with no directive.
//
// Observations and denial notices live on the per-turn working transcript
// only; persisted history keeps the user and assistant turns. The transcript
// is rebuilt from history plus freshly computed system instructions each
// turn, so stale disclosed context never leaks across turns.
//
// Backend failures are recovered here and returned as legible Response text.
// Returns ErrTooManyActions when a non-zero MaxActions budget is exhausted.
func (l *Loop) RunTurn(ctx context.Context, input string) (*Result, error) {
	result := &Result{}

	systemContent := l.buildSystemContent(ctx, input)

	history := l.session.Messages()
	transcript := make([]protocol.Message, 0, len(history)+2)
	transcript = append(transcript, protocol.NewMessage(protocol.RoleSystem, systemContent))
	transcript = append(transcript, history...)

	userMsg := protocol.NewMessage(protocol.RoleUser, input)
	transcript = append(transcript, userMsg)
	l.session.AddMessage(userMsg)

	l.observer.OnEvent(ctx, observability.Event{
		Type:      EventTurnStart,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "loop.RunTurn",
		Data: map[string]any{
			"input_length": len(input),
			"max_actions":  l.maxActions,
		},
	})

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if l.maxActions > 0 && result.Calls >= l.maxActions {
			result.Response = abortedResponse
			l.observer.OnEvent(ctx, observability.Event{
				Type:      EventError,
				Level:     observability.LevelWarning,
				Timestamp: time.Now(),
				Source:    "loop.RunTurn",
				Data: map[string]any{
					"error": "action budget exhausted",
					"calls": result.Calls,
				},
			})
			return result, ErrTooManyActions
		}

		l.observer.OnEvent(ctx, observability.Event{
			Type:      EventModelCall,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "loop.RunTurn",
			Data:      map[string]any{"call": result.Calls + 1, "transcript_length": len(transcript)},
		})

		reply, err := l.agent.Chat(ctx, transcript)
		result.Calls++
		if err != nil {
			// Recovered at this boundary: the failure flows back as
			// legible turn text instead of killing the REPL.
			result.Response = "Error: " + err.Error()
			l.observer.OnEvent(ctx, observability.Event{
				Type:      EventError,
				Level:     observability.LevelError,
				Timestamp: time.Now(),
				Source:    "loop.RunTurn",
				Data:      map[string]any{"error": err.Error()},
			})
			return result, nil
		}

		assistantMsg := protocol.NewMessage(protocol.RoleAssistant, reply)
		l.session.AddMessage(assistantMsg)
		transcript = append(transcript, assistantMsg)

		d, ok := l.parser.Parse(reply)
		if !ok {
			result.Response = reply
			l.observer.OnEvent(ctx, observability.Event{
				Type:      EventResponse,
				Level:     observability.LevelInfo,
				Timestamp: time.Now(),
				Source:    "loop.RunTurn",
				Data: map[string]any{
					"calls":           result.Calls,
					"response_length": len(reply),
				},
			})
			return result, nil
		}

		// The model is mid-task; show its reasoning before the gate.
		fmt.Fprintf(l.out, "Agent: %s\n", reply)

		observation, record := l.handleAction(ctx, d.Command)
		result.Actions = append(result.Actions, record)

		// Observation feedback goes on the working transcript only, as a
		// user-role message, so the next call reasons over real output.
		transcript = append(transcript, protocol.NewMessage(protocol.RoleUser, observation))
	}
}

// handleAction runs one proposed command through the confirmation gate and,
// when approved, the executor. It returns the observation text for the model
// and the record for the turn result.
func (l *Loop) handleAction(ctx context.Context, command string) (string, ActionRecord) {
	record := ActionRecord{Command: command}

	l.observer.OnEvent(ctx, observability.Event{
		Type:      EventActionProposed,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "loop.RunTurn",
		Data:      map[string]any{"command": command},
	})

	approved, err := l.confirmer.Confirm(command)
	if err != nil {
		approved = false
	}

	var observation string
	if approved {
		record.Approved = true
		execResult := l.executor.Execute(ctx, command)
		rendered := execResult.Render()
		observation = observationPrefix + rendered
		fmt.Fprintf(l.out, "[*] Output:\n%s\n", rendered)

		l.observer.OnEvent(ctx, observability.Event{
			Type:      EventExecComplete,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "loop.RunTurn",
			Data: map[string]any{
				"command":   command,
				"exit_code": execResult.ExitCode,
				"timed_out": execResult.TimedOut,
				"blocked":   execResult.Blocked,
			},
		})
	} else {
		observation = observationPrefix + deniedNotice
		fmt.Fprintln(l.out, "[!] Execution denied.")

		l.observer.OnEvent(ctx, observability.Event{
			Type:      EventActionDenied,
			Level:     observability.LevelInfo,
			Timestamp: time.Now(),
			Source:    "loop.RunTurn",
			Data:      map[string]any{"command": command},
		})
	}

	record.Observation = observation
	return observation, record
}

// buildSystemContent composes the per-turn system instructions: the base
// persona plus the knowledge disclosure block selected by the user input.
func (l *Loop) buildSystemContent(ctx context.Context, input string) string {
	content := l.persona
	if l.knowledge == nil {
		return content
	}

	disclosure := l.knowledge.Select(input)
	if disclosure == "" {
		return content
	}

	l.observer.OnEvent(ctx, observability.Event{
		Type:      EventDisclosure,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "loop.RunTurn",
		Data:      map[string]any{"entries": l.knowledge.Names(input)},
	})

	return content + "\n\n--- ACTIVE KNOWLEDGE ---\n" + disclosure
}
