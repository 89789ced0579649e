package usecase

import (
	"context"
	"errors"
	"io/fs"

	"github.com/spf13/afero"

	"course-compass/internal/servicecontext"
	"course-compass/pkg/pdfdoc"
)

// Load reads the summary and the PDF text.
func (uc *implUseCase) Load(ctx context.Context) servicecontext.Documents {
	return servicecontext.Documents{
		Summary:      uc.loadSummary(ctx),
		DocumentText: uc.loadDocument(ctx),
	}
}

func (uc *implUseCase) loadSummary(ctx context.Context) string {
	data, err := afero.ReadFile(uc.fs, uc.summaryPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			uc.l.Warnf(ctx, "internal.servicecontext.usecase.Load: read summary: %v", err)
		}
		return ""
	}
	return string(data)
}

func (uc *implUseCase) loadDocument(ctx context.Context) string {
	f, err := uc.fs.Open(uc.documentPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ""
		}
		return unavailable(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return unavailable(err)
	}

	text, err := pdfdoc.Extract(f, info.Size())
	if err != nil {
		uc.l.Warnf(ctx, "internal.servicecontext.usecase.Load: extract pdf: %v", err)
		return unavailable(err)
	}
	return text
}

func unavailable(err error) string {
	return servicecontext.UnavailablePrefix + err.Error() + ")"
}
