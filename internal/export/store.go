package export

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophpos/internal/filex"
)

// Store persists an exported file and returns where it ended up.
type Store interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// LocalStore writes exports into a directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return filex.WriteFile(s.dir, name, data)
}

// MultiStore writes to every store in order. Locations of successful writes
// are joined with ", "; failures are joined into the returned error.
type MultiStore []Store

func (m MultiStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	var (
		locs []string
		errs []error
	)
	for _, s := range m {
		loc, err := s.Put(ctx, name, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		locs = append(locs, loc)
	}
	return strings.Join(locs, ", "), errors.Join(errs...)
}
