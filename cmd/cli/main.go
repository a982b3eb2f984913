package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ladrillo-cli",
		Short: "Ladrillo CLI tool",
		Long:  `A command line interface for interacting with the Ladrillo investment tracker API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Ladrillo API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the portfolio summary",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/summary")
		},
	}

	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the current ARS/USD rates",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/fx-rates")
		},
	}

	benchmarksCmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "List the benchmark catalog",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/benchmarks/")
		},
	}

	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "List recorded transactions",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/transactions/")
		},
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the current settings",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/settings/")
		},
	}

	rootCmd.AddCommand(summaryCmd, ratesCmd, benchmarksCmd, transactionsCmd, settingsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getAndPrint(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
