package main

import (
	"flag"
	"log"

	"lexbot/config"
	"lexbot/demo/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", config.GetEnvOrDefault("API_URL", "http://localhost:8080"), "lexbot API base URL")
	userID := flag.String("user", config.GetEnvOrDefault("DEMO_USER_ID", "test_user_123"), "user id sent with requests")
	flag.Parse()

	client := tui.NewChatClient(*apiURL, *userID)
	p := tea.NewProgram(tui.NewModel(client))
	if _, err := p.Run(); err != nil {
		log.Fatalf("demo error: %v", err)
	}
}
