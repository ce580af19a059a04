package lsp

import (
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/grindlemire/go-yew/internal/log"
	"github.com/grindlemire/go-yew/internal/yewgen"
)

// Document represents an open .gsx file with its latest diagnostics.
type Document struct {
	URI     string
	Path    string
	Content string
	Version int
	Errors  []*yewgen.Error
}

// DocumentManager tracks all open documents. Documents in the same
// directory form one package: properties derived in one are visible to
// markup in the others, including .gsx files that are only on disk.
type DocumentManager struct {
	mu       sync.RWMutex
	docs     map[string]*Document
	expander *yewgen.Expander
	readDir  func(dir string) []yewgen.Source
}

// NewDocumentManager creates a new document manager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		docs:     make(map[string]*Document),
		expander: yewgen.NewExpander(yewgen.Options{SkipImports: true}),
		readDir:  readGsxDir,
	}
}

// Open opens a document and re-analyzes its package. It returns every
// document whose diagnostics were refreshed.
func (dm *DocumentManager) Open(uri, content string, version int) []*Document {
	return dm.Update(uri, content, version)
}

// Update replaces the content of a document, opening it if needed, and
// re-analyzes its package.
func (dm *DocumentManager) Update(uri, content string, version int) []*Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		doc = &Document{URI: uri, Path: uriToPath(uri)}
		dm.docs[uri] = doc
	}
	doc.Content = content
	doc.Version = version

	return dm.analyzeDir(filepath.Dir(doc.Path))
}

// Close closes a document. The remaining documents of its package are
// re-analyzed against the file's on-disk content and returned.
func (dm *DocumentManager) Close(uri string) []*Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		return nil
	}
	delete(dm.docs, uri)
	return dm.analyzeDir(filepath.Dir(doc.Path))
}

// Get retrieves a document by URI.
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.docs[uri]
}

// All returns all open documents ordered by URI.
func (dm *DocumentManager) All() []*Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()

	docs := make([]*Document, 0, len(dm.docs))
	for _, doc := range dm.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].URI < docs[j].URI })
	return docs
}

// analyzeDir expands the open documents of dir together with the unopened
// .gsx files next to them and stores each document's errors.
// Callers hold dm.mu.
func (dm *DocumentManager) analyzeDir(dir string) []*Document {
	var open []*Document
	for _, doc := range dm.docs {
		if filepath.Dir(doc.Path) == dir {
			open = append(open, doc)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].Path < open[j].Path })

	sources := make([]yewgen.Source, 0, len(open))
	seen := make(map[string]bool, len(open))
	for _, doc := range open {
		sources = append(sources, yewgen.Source{Name: doc.Path, Src: []byte(doc.Content)})
		seen[doc.Path] = true
	}
	if dm.readDir != nil {
		for _, src := range dm.readDir(dir) {
			if !seen[src.Name] {
				sources = append(sources, src)
			}
		}
	}

	outputs := dm.expander.ExpandPackage(sources)
	for i, doc := range open {
		doc.Errors = yewgen.Diagnostics(outputs[i].Err)
	}
	log.Debug("analyzed %s: %d open, %d on disk", dir, len(open), len(sources)-len(open))
	return open
}

// readGsxDir loads the .gsx files in dir. Unreadable files are skipped.
func readGsxDir(dir string) []yewgen.Source {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []yewgen.Source
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gsx") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		src, err := os.ReadFile(path)
		if err != nil {
			log.Debug("skipping %s: %v", path, err)
			continue
		}
		out = append(out, yewgen.Source{Name: path, Src: src})
	}
	return out
}

// uriToPath converts a file:// URI to a file path. Other URIs are returned
// unchanged.
func uriToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}
	return filepath.Clean(parsed.Path)
}
