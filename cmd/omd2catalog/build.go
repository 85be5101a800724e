package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/OMD2Planner_Go/internal/catalog"
	"github.com/osse101/OMD2Planner_Go/internal/scraper"
)

var (
	trapsPath    string
	weaponsPath  string
	trinketsPath string
	outPath      string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scrape the listing pages into a catalog file",
	Long: `Parse the saved traps, weapons and trinkets pages and write the catalog.
Any structural surprise in the markup aborts the run; nothing is written.

  Example: omd2catalog build --traps traps.html --weapons weapons.html --trinkets trinkets.html --out configs/items.json`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&trapsPath, "traps", "traps.html", "saved trap listing page")
	buildCmd.Flags().StringVar(&weaponsPath, "weapons", "weapons.html", "saved weapon listing page")
	buildCmd.Flags().StringVar(&trinketsPath, "trinkets", "trinkets.html", "saved trinket listing page")
	buildCmd.Flags().StringVarP(&outPath, "out", "o", "items.json", "catalog output path, - for stdout")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	open := func(path string) (io.Reader, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open page: %w", err)
		}
		files = append(files, f)
		return f, nil
	}

	var docs scraper.Documents
	var err error
	if docs.Traps, err = open(trapsPath); err != nil {
		return err
	}
	if docs.Weapons, err = open(weaponsPath); err != nil {
		return err
	}
	if docs.Trinkets, err = open(trinketsPath); err != nil {
		return err
	}

	items, err := scraper.Build(ctx, docs)
	if err != nil {
		return err
	}

	// the planner must be able to load what we write
	if _, err := catalog.New(items); err != nil {
		return err
	}

	if outPath == "-" {
		return scraper.Write(cmd.OutOrStdout(), items)
	}
	if err := scraper.WriteFile(ctx, outPath, items); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d items to %s\n", len(items), outPath)
	return nil
}
