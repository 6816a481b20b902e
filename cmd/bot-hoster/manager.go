package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/SebastianPerilla/cycles/bot"
	"github.com/SebastianPerilla/cycles/client"
	"github.com/SebastianPerilla/cycles/store"
)

// HostedBot is one pool member: a named engine over its own connection.
type HostedBot struct {
	Name      string
	Conn      *client.Connection
	Engine    *bot.Engine
	StartedAt time.Time
}

type BotManager struct {
	config *Config
	store  *store.Store
	bots   []*HostedBot
	wg     sync.WaitGroup
	mu     sync.RWMutex
}

func NewBotManager(config *Config) *BotManager {
	return &BotManager{
		config: config,
		bots:   make([]*HostedBot, 0, config.PoolSize),
	}
}

// Start connects the pool and launches a turn loop per bot.
func (m *BotManager) Start() error {
	log.Printf("Starting bot pool with size: %d", m.config.PoolSize)

	if m.config.DBPath != "" {
		st, err := store.Open(m.config.DBPath)
		if err != nil {
			return fmt.Errorf("open game store: %w", err)
		}
		m.store = st
	}

	for i := 0; i < m.config.PoolSize; i++ {
		hosted := &HostedBot{
			Name:      GenerateBotName(),
			Conn:      client.NewConnection(m.config.ServerURL),
			StartedAt: time.Now(),
		}
		hosted.Engine = bot.NewEngine(hosted.Name, hosted.Conn, time.Now().UnixNano())

		if err := hosted.Engine.Connect(); err != nil {
			log.Printf("Failed to connect bot %d (%s): %v (continuing with remaining bots)",
				i+1, hosted.Name, err)
			continue
		}

		m.mu.Lock()
		m.bots = append(m.bots, hosted)
		m.mu.Unlock()

		m.wg.Add(1)
		go m.runBot(hosted)

		log.Printf("Bot %d/%d started as %s", i+1, m.config.PoolSize, hosted.Name)
	}

	m.mu.RLock()
	connectedCount := len(m.bots)
	m.mu.RUnlock()

	if connectedCount == 0 {
		return fmt.Errorf("no bots connected successfully")
	}

	log.Printf("Bot pool ready: %d/%d bots connected", connectedCount, m.config.PoolSize)
	return nil
}

func (m *BotManager) runBot(hosted *HostedBot) {
	defer m.wg.Done()

	turns, err := hosted.Engine.Run()
	if err != nil {
		log.Printf("%s: session ended with error after %d turns: %v", hosted.Name, turns, err)
	} else {
		log.Printf("%s: session over after %d turns", hosted.Name, turns)
	}

	if m.store == nil {
		return
	}
	outcome := "finished"
	if err != nil {
		outcome = "error"
	}
	if _, err := m.store.RecordGame(store.Record{
		BotName:   hosted.Name,
		ServerURL: m.config.ServerURL,
		StartedAt: hosted.StartedAt,
		EndedAt:   time.Now(),
		Turns:     turns,
		Outcome:   outcome,
	}); err != nil {
		log.Printf("Failed to record session for %s: %v", hosted.Name, err)
	}
}

// Stop closes every connection and waits for the loops to drain.
func (m *BotManager) Stop() {
	log.Println("Stopping bot pool...")

	m.mu.Lock()
	for _, hosted := range m.bots {
		hosted.Conn.Close()
	}
	count := len(m.bots)
	m.mu.Unlock()

	m.wg.Wait()

	if m.store != nil {
		m.store.Close()
	}
	log.Printf("All %d bots stopped", count)
}

// ActiveCount reports how many pool members still hold a live session.
func (m *BotManager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := 0
	for _, hosted := range m.bots {
		if hosted.Conn.IsActive() {
			active++
		}
	}
	return active
}
