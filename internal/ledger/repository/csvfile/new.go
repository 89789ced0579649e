package csvfile

import (
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"course-compass/internal/ledger/repository"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type implRepository struct {
	fs  afero.Fs
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a CSV-file repository rooted at dir.
func New(fs afero.Fs, dir string) repository.Repository {
	return &implRepository{
		fs:    fs,
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *implRepository) path(name string) string {
	return filepath.Join(r.dir, name)
}

// lock returns the mutex guarding one file.
func (r *implRepository) lock(name string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.locks[name]
	if !ok {
		m = &sync.Mutex{}
		r.locks[name] = m
	}
	return m
}
