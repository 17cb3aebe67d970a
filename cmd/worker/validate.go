package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/devfolio-app/portfolio-backend/internal/catalog"
	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

// RunValidate loads a catalog document and reports what the API would serve
// from it: record count, synthesized ids, and records with display gaps.
func RunValidate(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: worker validate <catalog.json|url>")
	}

	records := mustLoad(args[0])

	synthesized := 0
	missingTitle := 0
	for i, rec := range records {
		if rec.ID == fmt.Sprintf("p%d", i+1) {
			synthesized++
		}
		if rec.Title == "" {
			missingTitle++
			log.Printf("warning: record %d (%s) has no title", i+1, rec.ID)
		}
	}

	duplicates := catalog.DuplicateIDs(records)
	for _, id := range duplicates {
		log.Printf("warning: id %q is used by more than one record; only the first is reachable by id", id)
	}

	pages := catalog.Paginate(records, catalog.DefaultPageSize, 1).TotalPages

	fmt.Printf("catalog OK: %d records, %d pages of %d\n", len(records), pages, catalog.DefaultPageSize)
	if synthesized > 0 {
		fmt.Printf("  %d record(s) without an id were assigned positional ids\n", synthesized)
	}
	if missingTitle > 0 {
		fmt.Printf("  %d record(s) are missing a title\n", missingTitle)
	}
	if len(duplicates) > 0 {
		fmt.Printf("  %d duplicate id(s): fix these before deploying\n", len(duplicates))
	}
}

// RunTags prints the distinct tag inventory with per-tag match counts, the
// same counts the tag-filter control would produce.
func RunTags(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: worker tags <catalog.json|url>")
	}

	records := mustLoad(args[0])

	seen := make(map[string]bool)
	order := make([]string, 0, 8)
	for _, rec := range records {
		for _, tag := range rec.Tags {
			if !seen[tag] {
				seen[tag] = true
				order = append(order, tag)
			}
		}
	}

	for _, tag := range order {
		matched := catalog.Filter(records, tag, "")
		fmt.Printf("%s\t%d\n", tag, len(matched))
	}
}

func mustLoad(source string) []domain.Record {
	loader := catalog.NewLoader(source, 30*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	records, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	return records
}
