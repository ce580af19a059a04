package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/grindlemire/go-yew/internal/yewgen"
)

// collectGsxFiles finds all .gsx files from the given paths.
// Supports:
//   - Direct file paths: "header.gsx"
//   - Directory paths: "./components"
//   - Recursive pattern: "./..."
func collectGsxFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") || path == "..." {
			root := strings.TrimSuffix(strings.TrimSuffix(path, "..."), "/")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					if p != root && skipDir(d.Name()) {
						return filepath.SkipDir
					}
					return nil
				}
				if strings.HasSuffix(p, ".gsx") {
					add(p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Non-recursive
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".gsx") {
					add(filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ".gsx") {
			add(path)
		}
	}

	return files, nil
}

// skipDir reports whether a recursive walk ignores the directory, following
// the go tool: testdata, vendor and names starting with . or _.
func skipDir(name string) bool {
	return name == "testdata" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// gsxPackage is the set of .gsx files in one directory. They are expanded
// together so properties derived in one file are checked in the others.
type gsxPackage struct {
	Dir   string
	Files []string
}

// groupPackages groups files by directory, in directory order.
func groupPackages(files []string) []gsxPackage {
	byDir := make(map[string][]string)
	for _, f := range files {
		dir := filepath.Dir(f)
		byDir[dir] = append(byDir[dir], f)
	}

	pkgs := make([]gsxPackage, 0, len(byDir))
	for dir, names := range byDir {
		sort.Strings(names)
		pkgs = append(pkgs, gsxPackage{Dir: dir, Files: names})
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Dir < pkgs[j].Dir })
	return pkgs
}

// readPackage loads the sources of pkg.
func readPackage(pkg gsxPackage) ([]yewgen.Source, error) {
	sources := make([]yewgen.Source, 0, len(pkg.Files))
	for _, path := range pkg.Files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		sources = append(sources, yewgen.Source{Name: path, Src: src})
	}
	return sources, nil
}

// moduleInfo describes the module enclosing a directory.
type moduleInfo struct {
	Root string
	Path string
	// Requires holds the module paths listed in require directives.
	Requires map[string]bool
}

// findModule locates and parses the go.mod governing dir. It returns nil
// when dir is outside any module.
func findModule(dir string) (*moduleInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		gomod := filepath.Join(abs, "go.mod")
		data, err := os.ReadFile(gomod)
		if err == nil {
			f, err := modfile.ParseLax(gomod, data, nil)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", gomod, err)
			}
			info := &moduleInfo{Root: abs, Requires: make(map[string]bool)}
			if f.Module != nil {
				info.Path = f.Module.Mod.Path
			}
			for _, r := range f.Require {
				info.Requires[r.Mod.Path] = true
			}
			return info, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", gomod, err)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, nil
		}
		abs = parent
	}
}

// providesRuntime reports whether generated code in the module can import
// the runtime at path.
func (m *moduleInfo) providesRuntime(path string) bool {
	if m.Path == path || strings.HasPrefix(path, m.Path+"/") {
		return true
	}
	for req := range m.Requires {
		if req == path || strings.HasPrefix(path, req+"/") {
			return true
		}
	}
	return false
}
