package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"course-compass/internal/ledger/repository"
)

// EnsureTable creates the file with its header row when absent.
func (r *implRepository) EnsureTable(ctx context.Context, name string, header []string) error {
	m := r.lock(name)
	m.Lock()
	defer m.Unlock()

	if err := r.fs.MkdirAll(r.dir, dirPerm); err != nil {
		return fmt.Errorf("csvfile: mkdir %s: %w", r.dir, err)
	}

	f, err := r.fs.OpenFile(r.path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("csvfile: create %s: %w", name, err)
	}
	defer f.Close()

	data, err := encode(header)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("csvfile: write header %s: %w", name, err)
	}
	return nil
}

// Append writes record as a single write to the end of the file.
func (r *implRepository) Append(ctx context.Context, name string, header, record []string) error {
	if len(record) == 0 {
		return repository.ErrEmptyRecord
	}

	m := r.lock(name)
	m.Lock()
	defer m.Unlock()

	if err := r.fs.MkdirAll(r.dir, dirPerm); err != nil {
		return fmt.Errorf("csvfile: mkdir %s: %w", r.dir, err)
	}

	f, err := r.fs.OpenFile(r.path(name), os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePerm)
	if err != nil {
		return fmt.Errorf("csvfile: open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("csvfile: stat %s: %w", name, err)
	}

	rows := [][]string{record}
	if info.Size() == 0 && len(header) > 0 {
		rows = [][]string{header, record}
	}

	data, err := encode(rows...)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("csvfile: append %s: %w", name, err)
	}
	return nil
}

// ReadAll parses the whole file.
func (r *implRepository) ReadAll(ctx context.Context, name string) ([][]string, error) {
	m := r.lock(name)
	m.Lock()
	defer m.Unlock()

	f, err := r.fs.Open(r.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrTableNotFound
		}
		return nil, fmt.Errorf("csvfile: open %s: %w", name, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvfile: parse %s: %w", name, err)
	}
	return rows, nil
}

func encode(rows ...[]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csvfile: encode: %w", err)
	}
	return buf.Bytes(), nil
}
