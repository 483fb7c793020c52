package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"minimart/internal/config"
	"minimart/internal/model"
	"minimart/internal/repository"
)

var seedForce bool

// minimart seed: write the starter data files.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write starter data files (credentials, cart, catalog)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}

		wrote, err := seedFiles(cfg)
		if err != nil {
			return err
		}
		if wrote == 0 {
			fmt.Println("Data files already present, use --force to overwrite.")
			return nil
		}
		fmt.Printf("Seeded %d data file(s) into %s\n", wrote, cfg.DataDir)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite existing data files")
}

func seedFiles(cfg *config.Config) (int, error) {
	wrote := 0

	flat := map[string]string{
		cfg.CredentialsPath(): "id,username,password\n",
		cfg.CartPath():        "{\n    \"users\": []\n}\n",
	}
	for path, content := range flat {
		if fileExists(path) && !seedForce {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return wrote, fmt.Errorf("seed %s: %w", path, err)
		}
		wrote++
	}

	catalog := repository.NewCatalogRepository(cfg.DataDir)
	for key, doc := range seedCatalog() {
		if fileExists(filepath.Join(cfg.DataDir, key+".json")) && !seedForce {
			continue
		}
		if err := catalog.Save(key, doc); err != nil {
			return wrote, err
		}
		wrote++
	}
	return wrote, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func seedCatalog() map[string]model.Category {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return map[string]model.Category{
		"canned_food": {
			Category: "Canned Food",
			Products: []model.Product{
				{ID: 1, Name: "Baked Beans", Quantity: 30, Price: price("2.50")},
				{ID: 2, Name: "Tomato Soup", Quantity: 25, Price: price("3.20")},
				{ID: 3, Name: "Tuna Flakes", Quantity: 40, Price: price("4.80")},
				{ID: 4, Name: "Sweet Corn", Quantity: 35, Price: price("2.10")},
			},
		},
		"vegetables": {
			Category: "Vegetables",
			Products: []model.Product{
				{ID: 1, Name: "Carrot", Quantity: 50, Price: price("1.20")},
				{ID: 2, Name: "Broccoli", Quantity: 20, Price: price("2.80")},
				{ID: 3, Name: "Spinach", Quantity: 25, Price: price("1.90")},
				{ID: 4, Name: "Potato", Quantity: 60, Price: price("0.90")},
			},
		},
		"fruits": {
			Category: "Fruits",
			Products: []model.Product{
				{ID: 1, Name: "Apple", Quantity: 45, Price: price("1.50")},
				{ID: 2, Name: "Banana", Quantity: 55, Price: price("0.80")},
				{ID: 3, Name: "Orange", Quantity: 40, Price: price("1.30")},
				{ID: 4, Name: "Watermelon", Quantity: 10, Price: price("5.60")},
			},
		},
	}
}
