package main

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
)

type bqDayRow struct {
	Date       time.Time
	Count      int
	Categories []string
	Source     string
}

// uploadAggregates replaces the BigQuery table with one row per active
// day. Set GOOGLE_APPLICATION_CREDENTIALS to json containing a service
// account key.
func uploadAggregates(source sourceOptions, project, dataset, table, label string) error {
	byDate, err := loadAggregates(source)
	if err != nil {
		return err
	}

	rows := make([]bqDayRow, 0, len(byDate))
	for date, agg := range byDate {
		rows = append(rows, bqDayRow{
			Date:       date.Time(),
			Count:      agg.Count,
			Categories: agg.CategoryNames(),
			Source:     label,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	if len(rows) == 0 {
		log.Printf("no rows. not uploading to bigquery")
		return nil
	}

	ctx := context.Background()
	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return err
	}

	tab := client.Dataset(dataset).Table(table)

	log.Println("about to delete table")
	if err := tab.Delete(ctx); err != nil {
		if !strings.Contains(err.Error(), "notFound") {
			return err
		}
	}
delLoop:
	for {
		_, err := tab.Metadata(ctx)
		switch {
		case err == nil:
			// still exists.
			time.Sleep(2 * time.Second)
		case strings.Contains(err.Error(), "notFound"):
			break delLoop
		default:
			return err
		}
	}

	log.Println("about to create table")
	s, err := bigquery.InferSchema(rows[0])
	if err != nil {
		return err
	}
	if err := tab.Create(ctx, &bigquery.TableMetadata{
		Schema: s,
	}); err != nil {
		return err
	}

existLoop:
	for {
		_, err := tab.Metadata(ctx)
		switch {
		case err == nil:
			// exists.
			break existLoop
		case strings.Contains(err.Error(), "notFound"):
			time.Sleep(2 * time.Second)
		default:
			return err
		}
	}

	log.Printf("about to upload %d rows", len(rows))
	return tab.Inserter().Put(ctx, rows)
}
