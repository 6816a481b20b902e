package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/SebastianPerilla/cycles/store"
)

func main() {
	dbPath := flag.String("db", "data/games.db", "Path to SQLite database")
	flag.Parse()

	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		log.Fatalf("Database not found at %s", *dbPath)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	games, err := st.Games()
	if err != nil {
		log.Fatalf("Failed to query games: %v", err)
	}

	for _, g := range games {
		fmt.Printf("Game ID: %s\n", g.ID)
		fmt.Printf("Bot: %s @ %s\n", g.BotName, g.ServerURL)
		fmt.Printf("Time: %s - %s\n", g.StartedAt.Format(time.RFC822), g.EndedAt.Format(time.RFC822))
		fmt.Printf("Turns: %d\n", g.Turns)
		fmt.Printf("Outcome: %s\n", g.Outcome)
		fmt.Println("--------------------------------------------------")
	}

	fmt.Printf("Total games: %d\n", len(games))
}
