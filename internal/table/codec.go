package table

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/livegto/solver/internal/abstraction"
	"github.com/livegto/solver/internal/cfr"
	"github.com/livegto/solver/internal/fileutil"
)

// document is the persisted JSON shape. Nested maps are keyed by wire
// names so consumers in any language can index it directly.
type document struct {
	Version      string                                    `json:"version"`
	NIterations  int                                       `json:"n_iterations"`
	Buckets      []string                                  `json:"buckets"`
	Textures     []string                                  `json:"textures"`
	BucketProbs  map[string]map[string]float64             `json:"bucket_probs"`
	EquityMatrix map[string]map[string]map[string]float64  `json:"equity_matrix"`
	Strategies   map[string]map[string]map[string]Strategy `json:"strategies"`
}

// Save writes the table as indented JSON, atomically.
func (t *Table) Save(path string) error {
	doc := document{
		Version:      t.Version,
		NIterations:  t.Iterations,
		Buckets:      bucketNames(),
		Textures:     textureNames(),
		BucketProbs:  make(map[string]map[string]float64, abstraction.NumTextures),
		EquityMatrix: make(map[string]map[string]map[string]float64, abstraction.NumTextures),
		Strategies:   make(map[string]map[string]map[string]Strategy, numContexts),
	}

	for _, tex := range abstraction.Textures() {
		probs := make(map[string]float64, abstraction.NumBuckets)
		eq := make(map[string]map[string]float64, abstraction.NumBuckets)
		for _, h := range abstraction.Buckets() {
			probs[h.String()] = t.BucketProbs[tex][h]
			row := make(map[string]float64, abstraction.NumBuckets)
			for _, v := range abstraction.Buckets() {
				row[v.String()] = t.EquityMatrix[tex][h][v]
			}
			eq[h.String()] = row
		}
		doc.BucketProbs[tex.String()] = probs
		doc.EquityMatrix[tex.String()] = eq
	}

	for _, c := range Contexts() {
		byTexture := make(map[string]map[string]Strategy, abstraction.NumTextures)
		for _, tex := range abstraction.Textures() {
			byBucket := make(map[string]Strategy, abstraction.NumBuckets)
			for _, b := range abstraction.Buckets() {
				byBucket[b.String()] = t.strategies[c][tex][b]
			}
			byTexture[tex.String()] = byBucket
		}
		doc.Strategies[c.String()] = byTexture
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding strategy table: %w", err)
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

// Load reads a previously saved table, validating its version and key
// space. Strategies with accumulated floating-point drift are
// renormalized silently; unknown names are errors.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading strategy table: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding strategy table: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("unsupported table version %q (want %q)", doc.Version, Version)
	}

	t := &Table{Version: doc.Version, Iterations: doc.NIterations}

	for texName, probs := range doc.BucketProbs {
		tex, err := abstraction.ParseTexture(texName)
		if err != nil {
			return nil, fmt.Errorf("bucket_probs: %w", err)
		}
		for bktName, p := range probs {
			b, err := abstraction.ParseBucket(bktName)
			if err != nil {
				return nil, fmt.Errorf("bucket_probs[%s]: %w", texName, err)
			}
			t.BucketProbs[tex][b] = p
		}
	}

	for texName, rows := range doc.EquityMatrix {
		tex, err := abstraction.ParseTexture(texName)
		if err != nil {
			return nil, fmt.Errorf("equity_matrix: %w", err)
		}
		for heroName, row := range rows {
			h, err := abstraction.ParseBucket(heroName)
			if err != nil {
				return nil, fmt.Errorf("equity_matrix[%s]: %w", texName, err)
			}
			for villName, eq := range row {
				v, err := abstraction.ParseBucket(villName)
				if err != nil {
					return nil, fmt.Errorf("equity_matrix[%s][%s]: %w", texName, heroName, err)
				}
				t.EquityMatrix[tex][h][v] = eq
			}
		}
	}

	for ctxName, byTexture := range doc.Strategies {
		c, err := ParseContext(ctxName)
		if err != nil {
			return nil, err
		}
		for texName, byBucket := range byTexture {
			tex, err := abstraction.ParseTexture(texName)
			if err != nil {
				return nil, fmt.Errorf("strategies[%s]: %w", ctxName, err)
			}
			for bktName, strat := range byBucket {
				b, err := abstraction.ParseBucket(bktName)
				if err != nil {
					return nil, fmt.Errorf("strategies[%s][%s]: %w", ctxName, texName, err)
				}
				if err := validateStrategy(strat); err != nil {
					return nil, fmt.Errorf("strategies[%s][%s][%s]: %w", ctxName, texName, bktName, err)
				}
				strat.normalize()
				t.strategies[c][tex][b] = strat
			}
		}
	}

	return t, nil
}

func validateStrategy(s Strategy) error {
	for name, p := range s {
		if _, err := cfr.ParseAction(name); err != nil {
			return err
		}
		if p < 0 {
			return fmt.Errorf("negative probability %v for %q", p, name)
		}
	}
	return nil
}

func bucketNames() []string {
	names := make([]string, 0, abstraction.NumBuckets)
	for _, b := range abstraction.Buckets() {
		names = append(names, b.String())
	}
	return names
}

func textureNames() []string {
	names := make([]string, 0, abstraction.NumTextures)
	for _, t := range abstraction.Textures() {
		names = append(names, t.String())
	}
	return names
}
