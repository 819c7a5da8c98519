// Command check_resources verifies that every learning resource URL in the
// catalog is still reachable, reporting dead links and mismatched titles.
//
// Usage:
//
//	go run cmd/tools/check_resources/main.go [data-dir]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/fetch"
)

// maxConcurrentChecks limits parallel outbound requests.
const maxConcurrentChecks = 8

type checkResult struct {
	skillID string
	name    string
	url     string
	title   string
	err     error
}

func main() {
	dataDir := "data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	cat := catalog.Load(dataDir)

	var resources []checkResult
	for _, skill := range cat.Skills() {
		for _, res := range cat.ResourcesFor(skill.SkillID) {
			resources = append(resources, checkResult{
				skillID: skill.SkillID,
				name:    res.Name,
				url:     res.URL,
			})
		}
	}

	if len(resources) == 0 {
		fmt.Println("No resources found in catalog.")
		return
	}

	fmt.Printf("Checking %d resource links...\n\n", len(resources))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Each worker writes a distinct slice element; Wait orders the reads.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)

	for i := range resources {
		g.Go(func() error {
			res := &resources[i]
			result, err := fetch.URL(ctx, res.url, nil)
			if err != nil {
				res.err = err
				return nil
			}
			if title, terr := fetch.PageTitle(result.HTML); terr == nil {
				res.title = title
			}
			return nil
		})
	}

	// Workers never return errors; Wait only propagates context cancellation.
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: link check aborted: %v\n", err)
		os.Exit(1)
	}

	dead := 0
	for _, res := range resources {
		if res.err != nil {
			dead++
			fmt.Printf("✗ [%s] %s\n    %s\n    %v\n", res.skillID, res.name, res.url, res.err)
			continue
		}
		fmt.Printf("✓ [%s] %s\n", res.skillID, res.name)
		if res.title != "" && res.title != res.name {
			fmt.Printf("    page title: %q\n", res.title)
		}
	}

	fmt.Printf("\n%d/%d links reachable\n", len(resources)-dead, len(resources))
	if dead > 0 {
		os.Exit(1)
	}
}
