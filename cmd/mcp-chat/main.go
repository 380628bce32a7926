// ABOUTME: Entry point for the mcp-chat terminal client
// ABOUTME: Connects to a gateway session over websocket and streams events

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gorilla/websocket"
)

const banner = `
    ╭──────────────────────────────╮
    │                              │
    │   ┏┳┓┏━┓┏━┓   ┏━╸╻ ╻┏━┓╺┳╸  │
    │   ┃┃┃┃  ┣━┛   ┃  ┣━┫┣━┫ ┃   │
    │   ╹ ╹┗━╸╹     ┗━╸╹ ╹╹ ╹ ╹   │
    │                              │
    │        mcp-chat client       │
    │                              │
    ╰──────────────────────────────╯
`

// stepInfo mirrors the gateway's step annotation wire format.
type stepInfo struct {
	StepNumber      int      `json:"step_number"`
	NodeName        string   `json:"node_name"`
	ConfidenceScore float64  `json:"confidence_score"`
	ToolsUsed       []string `json:"tools_used"`
}

// event mirrors the gateway's outbound event wire format.
type event struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	SessionID string    `json:"session_id"`
	Timestamp string    `json:"timestamp"`
	StepInfo  *stepInfo `json:"step_info,omitempty"`
}

// getConfigPath returns the path to the chat client config file.
// Priority: MCP_CHAT_CONFIG env var > XDG_CONFIG_HOME/mcp-gateway/chat.toml > ~/.config/mcp-gateway/chat.toml
func getConfigPath() string {
	if envPath := os.Getenv("MCP_CHAT_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "chat.toml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "mcp-gateway", "chat.toml")
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	configPath := getConfigPath()

	cfg, err := Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", configPath, err)
	}

	logger := setupLogger(cfg.Logging.Level)

	endpoint := strings.TrimSuffix(cfg.Gateway.URL, "/") + "/ws"
	if cfg.Chat.SessionID != "" {
		endpoint += "/" + cfg.Chat.SessionID
	}

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:  %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("Gateway: %s\n", endpoint)
	fmt.Println()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("connecting to gateway: %w", err)
	}
	defer conn.Close()

	logger.Debug("connected", "endpoint", endpoint)

	// Reader goroutine prints incoming events until the connection drops.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var ev event
			if err := json.Unmarshal(raw, &ev); err != nil {
				logger.Warn("unreadable event", "error", err)
				continue
			}
			printEvent(ev, cfg.Chat.ShowSteps)
		}
	}()

	go func() {
		inputLoop(conn)
		cancel()
	}()

	select {
	case <-ctx.Done():
	case <-readDone:
		fmt.Println()
		color.New(color.FgYellow).Println("connection closed by gateway")
		return nil
	}

	// Graceful close: send the close frame and give the server a moment.
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	select {
	case <-readDone:
	case <-time.After(time.Second):
	}
	return nil
}

// inputLoop reads lines from stdin and sends them as user messages.
func inputLoop(conn *websocket.Conn) {
	scanner := bufio.NewScanner(os.Stdin)
	prompt := color.New(color.FgGreen, color.Bold)

	prompt.Print("you> ")
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			prompt.Print("you> ")
			continue
		}
		if text == "/quit" || text == "/exit" {
			return
		}

		payload, err := json.Marshal(map[string]string{
			"type":    "user_message",
			"content": text,
		})
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// printEvent renders one gateway event, color-coded by type.
func printEvent(ev event, showSteps bool) {
	gray := color.New(color.FgHiBlack)

	switch ev.Type {
	case "connection_established":
		color.New(color.FgCyan).Printf("● %s\n", ev.Content)
		gray.Printf("  session: %s\n\n", ev.SessionID)
		color.New(color.FgGreen, color.Bold).Print("you> ")

	case "processing_started":
		gray.Printf("… %s\n", ev.Content)

	case "step_detail":
		if !showSteps {
			return
		}
		gray.Printf("  [%d] %s", stepNumber(ev), ev.Content)
		if ev.StepInfo != nil {
			gray.Printf(" (confidence %.2f)", ev.StepInfo.ConfidenceScore)
		}
		fmt.Println()

	case "final_response":
		fmt.Println()
		color.New(color.FgWhite).Println(ev.Content)
		fmt.Println()

	case "processing_complete":
		color.New(color.FgGreen, color.Bold).Print("you> ")

	case "broadcast":
		fmt.Println()
		color.New(color.FgYellow).Printf("📢 %s\n", ev.Content)
		color.New(color.FgGreen, color.Bold).Print("you> ")

	case "error":
		color.New(color.FgRed).Printf("✗ %s\n", ev.Content)
		color.New(color.FgGreen, color.Bold).Print("you> ")

	default:
		gray.Printf("? %s: %s\n", ev.Type, ev.Content)
	}
}

func stepNumber(ev event) int {
	if ev.StepInfo == nil {
		return 0
	}
	return ev.StepInfo.StepNumber
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
