package main

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

const overviewName = "ratings_overview.md"

func artifactName(year int) string {
	return fmt.Sprintf("imdb_ratings_%d.png", year)
}

func categoryArtifactName(year int, category string) string {
	return fmt.Sprintf("imdb_ratings_%d_%s.png", year, strcase.ToSnake(category))
}
