package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var adjectives = []string{
	"Brave", "Clever", "Wild", "Swift", "Bold", "Mighty", "Mystic", "Noble",
	"Fierce", "Gentle", "Silent", "Rapid", "Calm", "Proud", "Wise", "Happy",
	"Lucky", "Sneaky", "Cunning", "Bright", "Dark", "Golden", "Silver", "Royal",
}

var riders = []string{
	"Cycle", "Rider", "Tracer", "Glider", "Runner", "Drifter", "Racer",
	"Weaver", "Striker", "Blazer", "Courier", "Pilot", "Scout", "Phantom",
}

var rng *rand.Rand

func init() {
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateBotName creates a pool-unique bot name: AdjectiveRider plus a
// short uuid suffix so two hosters against the same server never collide.
func GenerateBotName() string {
	adjective := adjectives[rng.Intn(len(adjectives))]
	rider := riders[rng.Intn(len(riders))]
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s%s-%s", adjective, rider, suffix)
}
