package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/tailored-agentic-units/shellagent/loop"
)

func main() {
	var (
		configFile   = flag.String("config", "", "Path to config JSON file (optional)")
		endpoint     = flag.String("endpoint", "", "Chat-completions endpoint URL (overrides config)")
		knowledgeDir = flag.String("knowledge", "", "Path to knowledge document directory (overrides config)")
		maxActions   = flag.Int("max-actions", -1, "Maximum model calls per turn; 0 for unlimited (overrides config)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg := loop.DefaultConfig()
	if *configFile != "" {
		loaded, err := loop.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	// Precedence: flags over environment over config file over defaults.
	if env := os.Getenv("SHELLAGENT_ENDPOINT"); env != "" {
		cfg.Agent.Endpoint = env
	}
	if env := os.Getenv("SHELLAGENT_KNOWLEDGE"); env != "" {
		cfg.Knowledge.Path = env
	}
	if *endpoint != "" {
		cfg.Agent.Endpoint = *endpoint
	}
	if *knowledgeDir != "" {
		cfg.Knowledge.Path = *knowledgeDir
	}
	if *maxActions >= 0 {
		cfg.MaxActions = *maxActions
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	st := newStyles(term.IsTerminal(int(os.Stdout.Fd())))
	in := bufio.NewReader(os.Stdin)

	l, err := loop.New(&cfg,
		loop.WithConfirmer(&terminalConfirmer{in: in, out: os.Stdout, styles: st}),
		loop.WithOutput(os.Stdout),
	)
	if err != nil {
		log.Fatalf("Failed to initialize agent loop: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println(st.banner.Render("--- AGENTIC SHELL TERMINAL READY ---"))
	fmt.Println(st.faint.Render("Backend: " + cfg.Agent.Endpoint))
	fmt.Println(st.faint.Render("Type 'exit' to quit."))

	for {
		fmt.Print(st.prompt.Render("User> "))

		line, err := in.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if loop.IsExitCommand(input) {
			fmt.Println(st.faint.Render("Goodbye."))
			return
		}

		result, err := l.RunTurn(ctx, input)
		switch {
		case errors.Is(err, loop.ErrTooManyActions):
			fmt.Println(st.warn.Render(result.Response))
			continue
		case errors.Is(err, context.Canceled):
			fmt.Println(st.faint.Render("Interrupted."))
			return
		case err != nil:
			fmt.Println(st.errText.Render("Error: " + err.Error()))
			continue
		}

		fmt.Println(st.agent.Render("Agent: " + result.Response))
	}
}
