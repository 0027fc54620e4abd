package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	appconfig "leadlens/config"
	"leadlens/internal/model"
)

func main() {
	cfg := appconfig.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	userColl := db.Collection("users")

	email := "demo@leadlens.dev"
	password := "demo-password"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := model.User{
		ID:           uuid.New().String(),
		Name:         "Demo User",
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	var existing model.User
	err = userColl.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	switch err {
	case nil:
		fmt.Printf("Demo user '%s' already exists, skipping\n", email)
	case mongo.ErrNoDocuments:
		if _, err := userColl.InsertOne(ctx, user); err != nil {
			log.Fatalf("Failed to insert demo user: %v", err)
		}
		fmt.Printf("Created demo user '%s' (password: %s)\n", email, password)
	default:
		log.Fatalf("Failed to check for demo user: %v", err)
	}

	if err := writeSampleData(cfg.DataDir); err != nil {
		log.Fatalf("Failed to write sample datasets: %v", err)
	}
	fmt.Printf("Sample question datasets written to %s\n", cfg.DataDir)
}

// writeSampleData creates a small dataset directory sufficient to exercise
// every flow path locally. Files already present are left alone.
func writeSampleData(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tiers := []map[string]any{
		{"Role Name": "Individual Contributor", "Description": "Executes defined work with guidance."},
		{"Role Name": "Team Lead", "Description": "Coordinates a small team's day-to-day delivery."},
		{"Role Name": "Supervisor", "Description": "Supervises frontline staff and schedules."},
		{"Role Name": "Manager", "Description": "Owns team outcomes and people development."},
		{"Role Name": "Senior Manager / Associate Director", "Description": "Manages managers or a large function."},
		{"Role Name": "Director", "Description": "Sets direction for a department."},
		{"Role Name": "Senior Director / Vice President", "Description": "Leads multiple departments."},
		{"Role Name": "Senior Vice President", "Description": "Shapes organization-wide strategy."},
		{"Role Name": "Executive Vice President", "Description": "Owns a major business unit."},
		{"Role Name": "Chief Officer", "Description": "Accountable for the enterprise."},
	}

	levelOne := []map[string]any{
		{
			"Lvl": 4,
			"Building a Team (Skill)":                    "Rate your skill at assembling teams with complementary strengths.",
			"Building a Team (Confidence)":               "Rate your confidence in your team-building judgment.",
			"Developing Others (Skill)":                  "Rate your skill at growing the people who report to you.",
			"Developing Others (Confidence)":             "Rate your confidence in your coaching conversations.",
			"Leading a Team to Get Results (Skill)":      "Rate your skill at driving a team to measurable outcomes.",
			"Leading a Team to Get Results (Confidence)": "Rate your confidence in holding a team to its commitments.",
			"Managing Performance (Skill)":               "Rate your skill at setting and reviewing performance standards.",
			"Managing Performance (Confidence)":          "Rate your confidence in delivering difficult feedback.",
			"Managing the Business (Skill)":              "Rate your skill at connecting team work to business results.",
			"Managing the Business (Confidence)":         "Rate your confidence in reading financial signals.",
			"Personal Development (Skill)":               "Rate your skill at managing your own growth.",
			"Personal Development (Confidence)":          "Rate your confidence in acting on feedback you receive.",
			"Communicating as a Leader (Skill)":          "Rate your skill at tailoring messages to different audiences.",
			"Communicating as a Leader (Confidence)":     "Rate your confidence in communicating under pressure.",
			"Creating the Environment (Skill)":           "Rate your skill at building psychological safety.",
			"Creating the Environment (Confidence)":      "Rate your confidence in addressing behavior that hurts the team.",
		},
	}

	levelTwo := []map[string]any{
		{
			"Lvl":               4,
			"Building a Team":   "Themes or Focus Areas:\nHiring: finding and closing the right candidates\nOnboarding: ramping new hires to full contribution",
			"Developing Others": "Themes or Focus Areas:\nCoaching: regular growth conversations\nDelegation: matching stretch work to readiness",
		},
	}

	files := map[string]any{
		"responsibility_levels.json": tiers,
		"level_one_questions.json":   levelOne,
		"level_two_questions.json":   levelTwo,
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
