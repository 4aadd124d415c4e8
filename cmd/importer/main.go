package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gamesales/backend/internal/config"
	"gamesales/backend/internal/database"
	"gamesales/backend/internal/models"
)

// Imports a video-game sales dataset CSV (the vgsales layout with the
// review-score columns) into the database, one composite Sale per row.
func main() {
	file := flag.String("file", "vgsales.csv", "path to the dataset CSV")
	flag.Parse()

	config.LoadConfig()
	database.Connect(config.AppConfig.DatabaseURL)

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open dataset: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	imported, skipped := 0, 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read CSV row: %v", err)
		}

		input := rowToInput(row, col)
		if input.Name == "" {
			skipped++
			continue
		}

		if _, err := models.CreateSale(database.DB, input); err != nil {
			log.Printf("Skipping %q (%s): %v", input.Name, input.Platform, err)
			skipped++
			continue
		}
		imported++

		if imported%1000 == 0 {
			log.Printf("Imported %d records...", imported)
		}
	}

	log.Printf("Done: %d imported, %d skipped", imported, skipped)
}

func rowToInput(row []string, col map[string]int) models.SaleInput {
	return models.SaleInput{
		Name:          field(row, col, "name"),
		Platform:      field(row, col, "platform"),
		Publisher:     field(row, col, "publisher"),
		Developer:     field(row, col, "developer"),
		Genre:         field(row, col, "genre"),
		YearOfRelease: intField(row, col, "year_of_release"),
		ESRBRating:    field(row, col, "rating"),
		CriticScore:   floatField(row, col, "critic_score"),
		CriticCount:   floatField(row, col, "critic_count"),
		UserScore:     floatField(row, col, "user_score"),
		UserCount:     floatField(row, col, "user_count"),
		NASales:       floatField(row, col, "na_sales"),
		EUSales:       floatField(row, col, "eu_sales"),
		JPSales:       floatField(row, col, "jp_sales"),
		OtherSales:    floatField(row, col, "other_sales"),
		GlobalSales:   floatField(row, col, "global_sales"),
	}
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// intField parses an optional integer cell. Empty, "N/A" and unparseable
// cells are unknown values.
func intField(row []string, col map[string]int, name string) *int {
	raw := field(row, col, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func floatField(row []string, col map[string]int, name string) *float64 {
	raw := field(row, col, name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
