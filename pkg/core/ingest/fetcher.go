package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fin_metrics/pkg/models"
)

// Default file name patterns; %s is the entity id.
const (
	DefaultObservationsPattern = "%s_financials_10y_long_combined.csv"
	DefaultMarketCapPattern    = "%s_mkt_cap_10y.csv"
)

// FileSource loads entities from CSV files under a root directory. A file is looked up
// first in <root>/<entity>/ and then directly in <root>.
type FileSource struct {
	root                string
	observationsPattern string
	marketCapPattern    string
	marketCapScale      float64
}

// NewFileSource creates a file source. Empty patterns and a non-positive scale fall back
// to the defaults.
func NewFileSource(root, observationsPattern, marketCapPattern string, scale float64) *FileSource {
	if observationsPattern == "" {
		observationsPattern = DefaultObservationsPattern
	}
	if marketCapPattern == "" {
		marketCapPattern = DefaultMarketCapPattern
	}
	if scale <= 0 {
		scale = DefaultMarketCapScale
	}
	return &FileSource{
		root:                root,
		observationsPattern: observationsPattern,
		marketCapPattern:    marketCapPattern,
		marketCapScale:      scale,
	}
}

// LoadObservations reads the entity's observation file. A missing file is an input error.
func (s *FileSource) LoadObservations(ctx context.Context, entity string) ([]models.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.locate(entity, s.observationsPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: observations for %s: %v", ErrInvalidInput, entity, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open observations: %w", err)
	}
	defer f.Close()

	obs, err := ReadObservationsCSV(f, entity)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return obs, nil
}

// LoadMarketCaps reads the entity's market-cap history. A missing file yields no samples,
// which leaves Market_Cap Unknown downstream.
func (s *FileSource) LoadMarketCaps(ctx context.Context, entity string) ([]models.MarketCapSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.locate(entity, s.marketCapPattern)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open market caps: %w", err)
	}
	defer f.Close()

	caps, err := ReadMarketCapCSV(f, s.marketCapScale)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return caps, nil
}

func (s *FileSource) locate(entity, pattern string) (string, error) {
	entity = strings.TrimSpace(entity)
	if entity == "" || strings.ContainsAny(entity, `/\`) {
		return "", fmt.Errorf("bad entity id %q", entity)
	}
	name := fmt.Sprintf(pattern, entity)
	for _, candidate := range []string{
		filepath.Join(s.root, entity, name),
		filepath.Join(s.root, name),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}
