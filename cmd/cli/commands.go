package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(performCmd)
	rootCmd.AddCommand(formationCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var stateCmd = &cobra.Command{
	Use:   "status",
	Short: "Dump the full match state with derived values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/state")
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the match clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/clock/start", "")
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the match clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/clock/pause", "")
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the match clock and all credited minutes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/clock/reset", "")
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <in-player-id> [out-player-id]",
	Short: "Make an immediate substitution",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		outID := ""
		if len(args) == 2 {
			outID = args[1]
		}
		body := fmt.Sprintf(`{"inId":%q,"outId":%q}`, args[0], outID)
		return performPostRequest("/sub", body)
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue [in-player-id] [out-player-id]",
	Short: "List the substitution queue, or enqueue a request",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return performGetRequest("/queue")
		}
		outID := ""
		if len(args) == 2 {
			outID = args[1]
		}
		body := fmt.Sprintf(`{"inId":%q,"outId":%q}`, args[0], outID)
		return performPostRequest("/queue", body)
	},
}

var performCmd = &cobra.Command{
	Use:   "perform",
	Short: "Commit every queued substitution in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/queue/perform", "")
	},
}

var formationCmd = &cobra.Command{
	Use:   "formation [id]",
	Short: "Show the board, or switch formation (benches everyone)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return performGetRequest("/formation")
		}
		return performPostRequest("/formation?id="+url.QueryEscape(args[0]), "")
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/roster")
	},
}

var importCmd = &cobra.Command{
	Use:   "import <roster.csv>",
	Short: "Import a roster sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read roster sheet: %w", err)
		}
		return performPostRequest("/roster/import", string(data))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <roster|minutes|subs>",
	Short: "Export a CSV report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "roster":
			return performGetRequest("/roster/export")
		case "minutes":
			return performGetRequest("/export/minutes")
		case "subs":
			return performGetRequest("/export/subs")
		default:
			return fmt.Errorf("unknown export %q", args[0])
		}
	},
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Download the diagnostic report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/debug")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
