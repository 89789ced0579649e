package usecase

import (
	"path/filepath"

	"github.com/spf13/afero"

	"course-compass/internal/servicecontext"
	"course-compass/pkg/log"
)

type implUseCase struct {
	fs  afero.Fs
	dir string
	l   log.Logger
}

// New creates a servicecontext UseCase storing its files in dir on fs.
func New(fs afero.Fs, dir string, l log.Logger) servicecontext.UseCase {
	return &implUseCase{
		fs:  fs,
		dir: dir,
		l:   l,
	}
}

func (uc *implUseCase) summaryPath() string {
	return filepath.Join(uc.dir, servicecontext.SummaryFileName)
}

func (uc *implUseCase) documentPath() string {
	return filepath.Join(uc.dir, servicecontext.DocumentFileName)
}
