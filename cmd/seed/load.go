package main

import (
	"careerfit/internal/model"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// expandPaths replaces directories with the YAML files they contain
func expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, errors.New("no assessment files found")
	}
	return files, nil
}

// loadAssessments parses every YAML document of every file
func loadAssessments(files []string) ([]*model.Assessment, error) {
	var out []*model.Assessment
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		docs, err := decodeAssessments(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, docs...)
	}
	return out, nil
}

func decodeAssessments(r io.Reader) ([]*model.Assessment, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*model.Assessment
	for {
		var a model.Assessment
		err := dec.Decode(&a)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode assessment %d: %w", len(out)+1, err)
		}
		out = append(out, &a)
	}
}
