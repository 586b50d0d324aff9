package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:  "ratemap",
		Usage: "Calendar heatmaps from an IMDb ratings export",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ratings-dir",
				Value: defaultRatingsDir(),
				Usage: "Directory containing the ratings CSV export",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "Load ratings from this Postgres DSN instead of the CSV export",
			},
			&cli.StringFlag{
				Name:  "cache-db",
				Value: defaultCacheName(),
				Usage: "Aggregate cache file",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Ignore the aggregate cache",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Render one heatmap PNG per year plus a markdown overview",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Value: "calendar_heatmaps",
						Usage: "Output directory for the generated artifacts",
					},
					&cli.Float64Flag{
						Name:  "cell-size",
						Value: 1.0,
						Usage: "Cell edge length in grid units",
					},
					&cli.BoolFlag{
						Name:  "split-category",
						Usage: "Also render a per-title-type heatmap for each year",
					},
				},
				Action: func(cCtx *cli.Context) error {
					gp := &generateProcessor{
						source:        sourceFromContext(cCtx),
						outputDir:     cCtx.String("output"),
						cellSize:      cCtx.Float64("cell-size"),
						splitCategory: cCtx.Bool("split-category"),
					}
					return gp.run()
				},
			},
			{
				Name:  "stats",
				Usage: "Print a per-year activity summary",
				Action: func(cCtx *cli.Context) error {
					return statsTable(sourceFromContext(cCtx))
				},
			},
			{
				Name:  "bq-upload",
				Usage: "Upload the daily aggregates to a bigquery table",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "project",
						Usage:    "Google cloud project",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "dataset",
						Value: "tmp",
						Usage: "BigQuery dataset",
					},
					&cli.StringFlag{
						Name:  "table",
						Value: "imdb_rating_days",
						Usage: "BigQuery table",
					},
					&cli.StringFlag{
						Name:  "label",
						Value: "imdb",
						Usage: "Source label stored with each row",
					},
				},
				Action: func(cCtx *cli.Context) error {
					return uploadAggregates(
						sourceFromContext(cCtx),
						cCtx.String("project"),
						cCtx.String("dataset"),
						cCtx.String("table"),
						cCtx.String("label"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func sourceFromContext(cCtx *cli.Context) sourceOptions {
	return sourceOptions{
		ratingsDir: cCtx.String("ratings-dir"),
		dsn:        cCtx.String("dsn"),
		cacheDB:    cCtx.String("cache-db"),
		noCache:    cCtx.Bool("no-cache"),
	}
}
