package main

import (
	"context"
	"encoding/json"
	"fmt"
	"foliocast/cmd"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// maintenance entrypoint: refresh the portfolio or dump the wealth
// projection without going through the API

func pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	rootCmd := &cobra.Command{
		Use:   "foliocast",
		Short: "portfolio maintenance commands",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "re-fetch all symbols and recompute forecasts",
		RunE: func(c *cobra.Command, args []string) error {
			positions, err := handler.PortfolioService.RefreshAll(context.Background())
			if err != nil {
				return err
			}
			pprint(positions)
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "project",
		Short: "print the merged wealth projection",
		RunE: func(c *cobra.Command, args []string) error {
			points, err := handler.PortfolioService.WealthCurve(context.Background())
			if err != nil {
				return err
			}
			pprint(points)
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
