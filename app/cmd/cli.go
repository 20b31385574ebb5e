package cmd

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/jainam01/four-kids-updated-sub000/app/configs"
	"github.com/jainam01/four-kids-updated-sub000/app/db/seeders"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "Print the seed catalog as JSON",
				Action: func(ctx context.Context, c *cli.Command) error {
					catalog := map[string]interface{}{
						"categories": seeders.SeedCategories(),
						"products":   seeders.SeedProducts(),
					}
					enc := json.NewEncoder(os.Stdout)
					enc.SetIndent("", "  ")
					if err := enc.Encode(catalog); err != nil {
						return err
					}
					log.Println("✅ Seed catalog printed")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {

					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
