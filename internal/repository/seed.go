package repository

import (
	"context"
	"fmt"

	"camping-fun/server/internal/model"
)

// SeedCamper, SeedActivity and SeedSignup describe sample rows. Signups
// refer to campers and activities by their index in SeedData.
type SeedCamper struct {
	Name string
	Age  int
}

type SeedActivity struct {
	Name       string
	Difficulty int
}

type SeedSignup struct {
	Camper   int
	Activity int
	Time     int
}

// SeedData is a full sample data set.
type SeedData struct {
	Campers    []SeedCamper
	Activities []SeedActivity
	Signups    []SeedSignup
}

// SeedStats counts the rows Seed inserted.
type SeedStats struct {
	Campers    int
	Activities int
	Signups    int
}

// DefaultSeedData is the data set used by cmd/seed.
func DefaultSeedData() SeedData {
	return SeedData{
		Campers: []SeedCamper{
			{"Caitlin", 8}, {"Lizzie", 9}, {"Alex", 12}, {"Nicholas", 17},
			{"Jordan", 14}, {"Priya", 11}, {"Mateo", 16}, {"Sam", 10},
		},
		Activities: []SeedActivity{
			{"Archery", 2}, {"Swimming", 3}, {"Hiking", 4}, {"Canoeing", 3},
			{"Arts and Crafts", 1}, {"Rock Climbing", 5},
		},
		Signups: []SeedSignup{
			{Camper: 0, Activity: 0, Time: 9}, {Camper: 0, Activity: 4, Time: 14},
			{Camper: 1, Activity: 1, Time: 10}, {Camper: 2, Activity: 2, Time: 8},
			{Camper: 2, Activity: 5, Time: 15}, {Camper: 3, Activity: 3, Time: 11},
			{Camper: 4, Activity: 0, Time: 13}, {Camper: 5, Activity: 1, Time: 16},
			{Camper: 6, Activity: 5, Time: 9}, {Camper: 7, Activity: 4, Time: 10},
		},
	}
}

// Seed replaces every row with data in one transaction. Rows go through
// the same constructors as API input, so invalid sample data fails here.
func Seed(ctx context.Context, repo *Repository, data SeedData) (SeedStats, error) {
	var stats SeedStats

	if err := repo.Reset(ctx); err != nil {
		return stats, fmt.Errorf("reset: %w", err)
	}

	err := repo.Transaction(ctx, func(txRepo *Repository) error {
		campers := make([]*model.Camper, 0, len(data.Campers))
		for _, sc := range data.Campers {
			c, err := model.NewCamper(sc.Name, sc.Age)
			if err != nil {
				return fmt.Errorf("camper %q: %w", sc.Name, err)
			}
			if err := txRepo.Camper.Create(ctx, c); err != nil {
				return err
			}
			campers = append(campers, c)
		}

		activities := make([]*model.Activity, 0, len(data.Activities))
		for _, sa := range data.Activities {
			a, err := model.NewActivity(sa.Name, sa.Difficulty)
			if err != nil {
				return fmt.Errorf("activity %q: %w", sa.Name, err)
			}
			if err := txRepo.Activity.Create(ctx, a); err != nil {
				return err
			}
			activities = append(activities, a)
		}

		for i, ss := range data.Signups {
			if ss.Camper < 0 || ss.Camper >= len(campers) || ss.Activity < 0 || ss.Activity >= len(activities) {
				return fmt.Errorf("signup %d: camper or activity index out of range", i)
			}
			s, err := model.NewSignup(ss.Time, campers[ss.Camper].ID, activities[ss.Activity].ID)
			if err != nil {
				return fmt.Errorf("signup %d: %w", i, err)
			}
			if err := txRepo.Signup.Create(ctx, s); err != nil {
				return err
			}
		}

		stats = SeedStats{
			Campers:    len(campers),
			Activities: len(activities),
			Signups:    len(data.Signups),
		}
		return nil
	})

	return stats, err
}
