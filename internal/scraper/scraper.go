package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/logger"
)

// Documents are the three listing pages, one per category
type Documents struct {
	Traps    io.Reader
	Weapons  io.Reader
	Trinkets io.Reader
}

// ParsePage reads every item cell of one listing page
func ParsePage(r io.Reader, category domain.Category) ([]domain.Item, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s page: %w", category, err)
	}

	table := findElement(doc, atom.Table)
	if table == nil {
		return nil, &ParseError{Category: category, Row: -1, Cell: -1, Expected: ExpectTable}
	}
	tbody := firstChildElement(table, atom.Tbody)
	if tbody == nil {
		return nil, &ParseError{Category: category, Row: -1, Cell: -1, Expected: ExpectTbody}
	}

	var items []domain.Item
	for rowIdx, row := range childElements(tbody, atom.Tr) {
		for cellIdx, cell := range childElements(row, atom.Td) {
			if !holdsItem(cell, cellIdx) {
				continue
			}
			item, err := parseCell(cell, category)
			if err != nil {
				return nil, positioned(err, category, rowIdx, cellIdx)
			}
			items = append(items, item)
		}
	}

	return items, nil
}

func holdsItem(cell *html.Node, idx int) bool {
	switch idx {
	case PrimaryCellIndex:
		return true
	case SecondaryCellIndex:
		return childCount(cell) > SecondaryCellMinChildren
	}
	return false
}

// Build parses all three pages and concatenates them as traps, weapons, trinkets
func Build(ctx context.Context, docs Documents) ([]domain.Item, error) {
	log := logger.FromContext(ctx)

	pages := []struct {
		category domain.Category
		reader   io.Reader
	}{
		{domain.CategoryTrap, docs.Traps},
		{domain.CategoryWeapon, docs.Weapons},
		{domain.CategoryTrinket, docs.Trinkets},
	}

	items := []domain.Item{}
	for _, p := range pages {
		if p.reader == nil {
			return nil, fmt.Errorf("%w: no %s page given", domain.ErrInvalidInput, p.category)
		}
		parsed, err := ParsePage(p.reader, p.category)
		if err != nil {
			return nil, err
		}
		log.Info(LogMsgParsedCategory, "category", p.category, "items", len(parsed))
		items = append(items, parsed...)
	}

	log.Info(LogMsgCatalogBuilt, "items", len(items))
	return items, nil
}

// Write encodes items as the canonical catalog JSON
func Write(w io.Writer, items []domain.Item) error {
	if items == nil {
		items = []domain.Item{}
	}
	data, err := json.MarshalIndent(items, "", JSONIndent)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// WriteFile writes the catalog to path through a temporary file so a failed
// run never leaves a partial catalog behind.
func WriteFile(ctx context.Context, path string, items []domain.Item) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, items); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move catalog into place: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogWritten, "path", path, "items", len(items))
	return nil
}
