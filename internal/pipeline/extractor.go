package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/wegman-software/multipolygon-go/internal/config"
	"github.com/wegman-software/multipolygon-go/internal/logger"
	"github.com/wegman-software/multipolygon-go/internal/multipolygon"
	"github.com/wegman-software/multipolygon-go/internal/nodeindex"
	"github.com/wegman-software/multipolygon-go/internal/proj"
)

// relationRef is a relation collected in pass 1: its identity and the way
// members we still have to resolve.
type relationRef struct {
	ID      osm.RelationID
	Members []memberRef
}

type memberRef struct {
	WayID osm.WayID
	Role  string
}

// Extractor reads a PBF file and materializes the node arena, ways, and
// relation snapshots the assembly needs.
//
// Extraction runs in two scans. Pass 1 reads relations only (nodes and ways
// skipped by the decoder) and records which ways each wanted relation
// references. Pass 2 reads nodes into a memory-mapped coordinate index and
// collects the node references of exactly those ways; everything else in the
// file is ignored.
type Extractor struct {
	cfg *config.Config

	nodeIndexPath string
	nodeIndex     *nodeindex.MmapIndex

	relations []relationRef
	wayNodes  map[osm.WayID][]osm.NodeID

	// Arena of projected nodes, shared by reference between ways and rings.
	nodes map[osm.NodeID]*multipolygon.Node
	ways  map[osm.WayID]*multipolygon.Way
}

// NewExtractor creates an extractor for the configured input file
func NewExtractor(cfg *config.Config) (*Extractor, error) {
	return &Extractor{
		cfg:           cfg,
		nodeIndexPath: filepath.Join(os.TempDir(), "multipolygon_node_index.bin"),
		wayNodes:      make(map[osm.WayID][]osm.NodeID),
		nodes:         make(map[osm.NodeID]*multipolygon.Node),
		ways:          make(map[osm.WayID]*multipolygon.Way),
	}, nil
}

// Close releases the node index and its backing file
func (e *Extractor) Close() error {
	if e.nodeIndex != nil {
		e.nodeIndex.Close()
		e.nodeIndex = nil
	}
	os.Remove(e.nodeIndexPath)
	return nil
}

// Relations returns the relation snapshots built by Run, ready for assembly.
func (e *Extractor) Relations() []*multipolygon.Relation {
	out := make([]*multipolygon.Relation, 0, len(e.relations))
	for _, ref := range e.relations {
		rel := &multipolygon.Relation{ID: ref.ID}
		for _, m := range ref.Members {
			way, ok := e.ways[m.WayID]
			if !ok {
				// Way missing from the extract; tolerated, the member is
				// simply not drawable.
				continue
			}
			rel.Members = append(rel.Members, multipolygon.Member{
				Way:      way,
				Role:     m.Role,
				Drawable: true,
			})
		}
		out = append(out, rel)
	}
	return out
}

// Run executes both extraction passes
func (e *Extractor) Run(ctx context.Context) error {
	log := logger.Get()

	f, err := os.Open(e.cfg.InputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	log.Info("Pass 1: Collecting multipolygon relations")
	start := time.Now()
	if err := e.collectRelations(ctx, f); err != nil {
		return err
	}
	log.Info("Pass 1 complete",
		zap.Int("relations", len(e.relations)),
		zap.Int("member_ways", len(e.wayNodes)),
		zap.Duration("duration", time.Since(start).Round(time.Millisecond)))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	log.Info("Pass 2: Indexing nodes and resolving member ways")
	start = time.Now()
	if err := e.resolveWays(ctx, f); err != nil {
		return err
	}
	log.Info("Pass 2 complete",
		zap.Int("arena_nodes", len(e.nodes)),
		zap.Int("ways", len(e.ways)),
		zap.Duration("duration", time.Since(start).Round(time.Millisecond)))

	return nil
}

// wantRelation decides whether a relation takes part in assembly: either the
// single requested relation, or anything tagged as an area relation.
func (e *Extractor) wantRelation(rel *osm.Relation) bool {
	if e.cfg.RelationID != 0 {
		return int64(rel.ID) == e.cfg.RelationID
	}
	t := rel.Tags.Find("type")
	return t == "multipolygon" || t == "boundary"
}

func (e *Extractor) collectRelations(ctx context.Context, f *os.File) error {
	scanner := osmpbf.New(ctx, f, runtime.NumCPU())
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipWays = true

	for scanner.Scan() {
		rel, ok := scanner.Object().(*osm.Relation)
		if !ok || !e.wantRelation(rel) {
			continue
		}
		ref := relationRef{ID: rel.ID}
		for _, m := range rel.Members {
			if m.Type != osm.TypeWay {
				continue
			}
			wayID := osm.WayID(m.Ref)
			ref.Members = append(ref.Members, memberRef{WayID: wayID, Role: m.Role})
			if _, ok := e.wayNodes[wayID]; !ok {
				e.wayNodes[wayID] = nil
			}
		}
		e.relations = append(e.relations, ref)
	}

	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (e *Extractor) resolveWays(ctx context.Context, f *os.File) error {
	log := logger.Get()

	idx, err := nodeindex.NewMmapIndex(e.nodeIndexPath)
	if err != nil {
		return err
	}
	e.nodeIndex = idx

	scanner := osmpbf.New(ctx, f, runtime.NumCPU())
	defer scanner.Close()
	scanner.SkipRelations = true

	var nodeCount int64

	progressCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-progressCtx.Done():
				return
			case <-ticker.C:
				log.Debug("Node indexing progress", zap.Int64("nodes", nodeCount))
			}
		}
	}()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			idx.Put(int64(o.ID), o.Lat, o.Lon)
			nodeCount++
		case *osm.Way:
			if refs, wanted := e.wayNodes[o.ID]; wanted && refs == nil {
				ids := make([]osm.NodeID, len(o.Nodes))
				for i, wn := range o.Nodes {
					ids[i] = wn.ID
				}
				e.wayNodes[o.ID] = ids
			}
		}
	}

	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}

	return e.materialize()
}

// materialize builds the shared node arena and the Way values from the
// collected node references and the coordinate index.
func (e *Extractor) materialize() error {
	transformer, err := proj.NewTransformer(e.cfg.Projection)
	if err != nil {
		return err
	}

	for wayID, refs := range e.wayNodes {
		if refs == nil {
			continue // way not present in the extract
		}
		nodes := make([]*multipolygon.Node, 0, len(refs))
		for _, id := range refs {
			n, ok := e.nodes[id]
			if !ok {
				lat, lon, found := e.nodeIndex.Get(int64(id))
				if !found {
					continue // dangling node reference; tolerated
				}
				n = &multipolygon.Node{ID: id, Point: transformer.Point(lon, lat)}
				e.nodes[id] = n
			}
			nodes = append(nodes, n)
		}
		e.ways[wayID] = &multipolygon.Way{ID: wayID, Nodes: nodes}
	}
	return nil
}
