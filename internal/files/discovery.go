// Package files provides discovery of raw dataset files. Results are
// sorted by name so every run visits sources in the same order, which the
// series combiner's last-wins policy depends on.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo describes one discovered input file.
type FileInfo struct {
	Path string
	Name string
	Stem string
	Size int64
}

// Discovery resolves relative directories against a base path and lists
// dataset files by extension.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a file discovery instance rooted at basePath.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindExcelFiles lists the .xls/.xlsx files directly inside dir.
func (d *Discovery) FindExcelFiles(dir string) ([]FileInfo, error) {
	return d.findFiles(dir, ".xls", ".xlsx")
}

// FindCSVFiles lists the .csv files directly inside dir.
func (d *Discovery) FindCSVFiles(dir string) ([]FileInfo, error) {
	return d.findFiles(dir, ".csv")
}

func (d *Discovery) findFiles(dir string, exts ...string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)
	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !hasExt(entry.Name(), exts) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, newFileInfo(filepath.Join(fullPath, entry.Name()), info.Size()))
	}
	sortByName(files)
	return files, nil
}

// WalkExcelFiles lists .xls/.xlsx files anywhere under dir.
func (d *Discovery) WalkExcelFiles(dir string) ([]FileInfo, error) {
	return d.walkFiles(dir, ".xls", ".xlsx")
}

// WalkCSVFiles lists .csv files anywhere under dir.
func (d *Discovery) WalkCSVFiles(dir string) ([]FileInfo, error) {
	return d.walkFiles(dir, ".csv")
}

func (d *Discovery) walkFiles(dir string, exts ...string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)
	var files []FileInfo
	err := filepath.WalkDir(fullPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !hasExt(entry.Name(), exts) {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return nil
		}
		files = append(files, newFileInfo(path, info.Size()))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", fullPath, err)
	}
	sortByName(files)
	return files, nil
}

// DirExists reports whether the (base-relative) directory exists.
func (d *Discovery) DirExists(dir string) bool {
	info, err := os.Stat(d.resolve(dir))
	return err == nil && info.IsDir()
}

func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}

func newFileInfo(path string, size int64) FileInfo {
	name := filepath.Base(path)
	return FileInfo{
		Path: path,
		Name: name,
		Stem: strings.TrimSuffix(name, filepath.Ext(name)),
		Size: size,
	}
}

func hasExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func sortByName(files []FileInfo) {
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
}
