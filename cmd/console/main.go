package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/contract"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:    30 * time.Second,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API. Please ensure the API is running.\n")
		os.Exit(1)
	}

	titles, err := listTitles(client, cfg.APIBaseURL)
	if err != nil || len(titles) == 0 {
		fmt.Fprintf(os.Stderr, "Failed to list titles: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available Titles:")
	for i, t := range titles {
		fmt.Printf("  %d - %s (%s)\n", i+1, t.Name, t.Description)
	}
	fmt.Print("\nSelect a title by number: ")

	var choice int
	if _, err := fmt.Scanf("%d", &choice); err != nil || choice < 1 || choice > len(titles) {
		fmt.Fprintf(os.Stderr, "Invalid selection\n")
		os.Exit(1)
	}

	resp, err := play(client, cfg.APIBaseURL, &contract.PlayRequest{
		TitleID: titles[choice-1].ID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	if resp.SessionID == contract.ErrorSessionID {
		fmt.Fprintf(os.Stderr, "Failed to start game: %s\n", resp.CommandResponse)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(resp.WelcomeText)
	fmt.Println()
	printTurn(resp)

	sessionID := resp.SessionID
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "quit" || input == "exit" {
			break
		}

		resp, err := play(client, cfg.APIBaseURL, &contract.PlayRequest{
			SessionID: sessionID,
			Command:   input,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if resp.SessionID == contract.ErrorSessionID {
			fmt.Fprintf(os.Stderr, "%s\n", resp.CommandResponse)
			break
		}

		printTurn(resp)
		if resp.GameCompleted {
			fmt.Printf("\nCongratulations! You finished %s with %d points.\n", resp.TitleName, resp.Points)
			break
		}
		if resp.PlayerDead {
			fmt.Printf("\nGame over. Final score: %d points.\n", resp.Points)
			break
		}
	}
}

func printTurn(resp *contract.PlayResponse) {
	if resp.CommandResponse != "" {
		fmt.Println(resp.CommandResponse)
	}
	if resp.ItemsInRoom != "" {
		fmt.Println(resp.ItemsInRoom)
	}
	fmt.Printf("[%s | Health: %s | Points: %d]\n", resp.RoomName, resp.HealthBand, resp.Points)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
