package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/SebastianPerilla/cycles/bot"
	"github.com/SebastianPerilla/cycles/client"
	"github.com/SebastianPerilla/cycles/store"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bot_name>\n", os.Args[0])
		os.Exit(1)
	}
	botName := os.Args[1]

	serverURL := getEnv("CYCLES_SERVER_URL", "ws://localhost:8080/ws")

	conn := client.NewConnection(serverURL)
	engine := bot.NewEngine(botName, conn, time.Now().UnixNano())

	startedAt := time.Now()
	if err := engine.Connect(); err != nil {
		log.Fatalf("%s: connection failed: %v", botName, err)
	}

	turns, err := engine.Run()
	if err != nil {
		log.Printf("%s: session ended with error after %d turns: %v", botName, turns, err)
	} else {
		log.Printf("%s: session over after %d turns", botName, turns)
	}

	if dbPath := os.Getenv("CYCLES_DB"); dbPath != "" {
		recordSession(dbPath, botName, serverURL, startedAt, turns, err)
	}
}

func recordSession(dbPath, botName, serverURL string, startedAt time.Time, turns int, runErr error) {
	st, err := store.Open(dbPath)
	if err != nil {
		log.Printf("Failed to open game store: %v", err)
		return
	}
	defer st.Close()

	outcome := "finished"
	if runErr != nil {
		outcome = "error"
	}
	id, err := st.RecordGame(store.Record{
		BotName:   botName,
		ServerURL: serverURL,
		StartedAt: startedAt,
		EndedAt:   time.Now(),
		Turns:     turns,
		Outcome:   outcome,
	})
	if err != nil {
		log.Printf("Failed to record session: %v", err)
		return
	}
	log.Printf("Session recorded as %s", id)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
