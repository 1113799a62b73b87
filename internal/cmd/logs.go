package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/larek/internal/config"
	"github.com/Iron-Ham/larek/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the shop log",
	Long: `View and filter larek.log, written by the shop when logging is enabled.

Examples:
  # Show the last 50 lines
  larek logs

  # Show everything
  larek logs -n 0

  # Follow logs in real-time
  larek logs -f

  # Only warnings and errors from the last hour
  larek logs --level warn --since 1h

  # Search messages and fields
  larek logs --grep "order|basket"`,
	RunE: runLogs,
}

var (
	logsTail   int
	logsFollow bool
	logsLevel  string
	logsSince  string
	logsGrep   string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of lines to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter logs matching pattern (regex)")
}

// logEntry represents a parsed JSON log line
type logEntry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	ProductID string         `json:"product_id,omitempty"`
	OrderID   string         `json:"order_id,omitempty"`
	Extra     map[string]any `json:"-"`
}

// UnmarshalJSON implements custom unmarshaling to capture extra fields
func (e *logEntry) UnmarshalJSON(data []byte) error {
	// Type alias avoids recursion
	type Alias logEntry
	aux := &struct {
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	for _, known := range []string{"time", "level", "msg", "component", "product_id", "order_id"} {
		delete(all, known)
	}
	if len(all) > 0 {
		e.Extra = all
	}

	return nil
}

// logFilter holds the parsed filter flags.
type logFilter struct {
	minLevel int
	since    time.Time
	grep     *regexp.Regexp
}

// ANSI color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// levelColor returns the ANSI color code for a log level
func levelColor(level string) string {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return colorGray
	case logging.LevelInfo:
		return colorBlue
	case logging.LevelWarn:
		return colorYellow
	case logging.LevelError:
		return colorRed
	default:
		return colorReset
	}
}

// levelPriority returns the priority of a log level for filtering
func levelPriority(level string) int {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return 0
	case logging.LevelInfo:
		return 1
	case logging.LevelWarn:
		return 2
	case logging.LevelError:
		return 3
	default:
		return -1
	}
}

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(entry *logEntry) string {
	var sb strings.Builder

	sb.WriteString(colorGray)
	sb.WriteString("[" + entry.Time.Format("15:04:05.000") + "]")
	sb.WriteString(colorReset)

	sb.WriteString(" ")
	sb.WriteString(levelColor(entry.Level))
	sb.WriteString("[" + strings.ToUpper(entry.Level) + "]")
	sb.WriteString(colorReset)

	if entry.Component != "" {
		sb.WriteString(" " + colorCyan + entry.Component + ":" + colorReset)
	}

	sb.WriteString(" ")
	sb.WriteString(entry.Msg)

	writeField := func(key string, value any) {
		sb.WriteString(" " + colorCyan + key + "=" + colorReset)
		sb.WriteString(fmt.Sprintf("%v", value))
	}
	if entry.ProductID != "" {
		writeField("product_id", entry.ProductID)
	}
	if entry.OrderID != "" {
		writeField("order_id", entry.OrderID)
	}

	// Sorted so output is stable
	keys := make([]string, 0, len(entry.Extra))
	for k := range entry.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeField(k, entry.Extra[k])
	}

	return sb.String()
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	logPath := filepath.Join(cfg.Logging.LogDir(), logging.FileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No logs found.")
		fmt.Fprintln(out, "Logs are stored at:", logPath)
		return nil
	}

	filter, err := parseLogFilter(logsLevel, logsSince, logsGrep)
	if err != nil {
		return err
	}

	if logsFollow {
		return followLogs(cmd.Context(), out, logPath, filter)
	}
	return displayLogs(out, logPath, logsTail, filter)
}

func parseLogFilter(level, since, grep string) (logFilter, error) {
	f := logFilter{minLevel: -1}

	if level != "" {
		f.minLevel = levelPriority(logging.ParseLevel(level))
	}

	if since != "" {
		duration, err := time.ParseDuration(since)
		if err != nil {
			return f, fmt.Errorf("invalid duration format: %w", err)
		}
		f.since = time.Now().Add(-duration)
	}

	if grep != "" {
		re, err := regexp.Compile(grep)
		if err != nil {
			return f, fmt.Errorf("invalid grep pattern: %w", err)
		}
		f.grep = re
	}

	return f, nil
}

// formatLine parses and filters one log line. Lines that are not JSON are
// passed through unchanged.
func formatLine(line string, filter logFilter) (string, bool) {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line, true
	}
	if !filter.passes(&entry) {
		return "", false
	}
	return formatLogEntry(&entry), true
}

// displayLogs reads the log file and displays filtered entries
func displayLogs(out io.Writer, logPath string, tail int, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)

	// Increase buffer size for potentially long log lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if formatted, ok := formatLine(line, filter); ok {
			entries = append(entries, formatted)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}

	for _, entry := range entries {
		fmt.Fprintln(out, entry)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
	}

	return nil
}

// followInterval is how long followLogs waits for the file to grow.
const followInterval = 100 * time.Millisecond

// followLogs implements tail -f behavior for the log file
func followLogs(ctx context.Context, out io.Writer, logPath string, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	fmt.Fprintf(out, "Following logs... (Ctrl+C to stop)\n\n")
	return followReader(ctx, out, bufio.NewReader(file), filter, followInterval)
}

// followReader prints complete lines from reader until ctx is done. A line
// read before the writer finished it is held until its newline arrives.
func followReader(ctx context.Context, out io.Writer, reader *bufio.Reader, filter logFilter, interval time.Duration) error {
	var partial strings.Builder
	for {
		chunk, err := reader.ReadString('\n')
		partial.WriteString(chunk)
		if err != nil {
			if err != io.EOF {
				return fmt.Errorf("error reading log file: %w", err)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(interval):
			}
			continue
		}

		line := strings.TrimSpace(partial.String())
		partial.Reset()
		if line == "" {
			continue
		}
		if formatted, ok := formatLine(line, filter); ok {
			fmt.Fprintln(out, formatted)
		}
	}
}

// passes checks if a log entry passes all filter criteria
func (f logFilter) passes(entry *logEntry) bool {
	if f.minLevel >= 0 && levelPriority(entry.Level) < f.minLevel {
		return false
	}

	if !f.since.IsZero() && entry.Time.Before(f.since) {
		return false
	}

	// Grep searches the message and every field
	if f.grep != nil {
		searchText := entry.Msg + " " + entry.Component + " " + entry.ProductID + " " + entry.OrderID
		for _, v := range entry.Extra {
			searchText += " " + fmt.Sprintf("%v", v)
		}
		if !f.grep.MatchString(searchText) {
			return false
		}
	}

	return true
}
