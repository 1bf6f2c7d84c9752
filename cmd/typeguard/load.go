package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Neumenon/typeguard/value"
)

const maxParallelLoads = 8

// document is one decoded input.
type document struct {
	Name  string
	Value *value.Value
}

// loadDocuments decodes every path concurrently and returns them in
// argument order. "-" reads stdin and may appear once.
func (a *app) loadDocuments(ctx context.Context, paths []string, stdin io.Reader) ([]document, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	stdinSeen := false
	for _, p := range paths {
		if p == "-" {
			if stdinSeen {
				return nil, errors.New("stdin given more than once")
			}
			stdinSeen = true
		}
	}

	docs := make([]document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := decodeFile(p, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			a.logger.Debug("loaded document", zap.String("path", p), zap.String("tag", value.Tag(v)))
			docs[i] = document{Name: p, Value: v}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func decodeFile(path string, stdin io.Reader) (*value.Value, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return value.FromYAML(data)
	default:
		return value.FromJSON(data)
	}
}

// selectPath follows a dot-separated path of property reads from v.
// Empty segments are skipped.
func selectPath(v *value.Value, path string) *value.Value {
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			continue
		}
		v = value.Get(v, key)
	}
	return v
}
