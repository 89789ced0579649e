package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"course-compass/internal/servicecontext"
	"course-compass/pkg/pdfdoc"
)

const filePerm = 0o644

// Generate renders the summary and the profile PDF and overwrites both files.
func (uc *implUseCase) Generate(ctx context.Context, profile servicecontext.Profile) error {
	if err := uc.fs.MkdirAll(uc.dir, 0o755); err != nil {
		uc.l.Errorf(ctx, "internal.servicecontext.usecase.Generate: MkdirAll %s: %v", uc.dir, err)
		return fmt.Errorf("%w: %w", servicecontext.ErrWriteSummary, err)
	}

	summary := strings.Join(summaryLines(profile), "\n")
	if err := afero.WriteFile(uc.fs, uc.summaryPath(), []byte(summary), filePerm); err != nil {
		uc.l.Errorf(ctx, "internal.servicecontext.usecase.Generate: write summary: %v", err)
		return fmt.Errorf("%w: %w", servicecontext.ErrWriteSummary, err)
	}

	var buf bytes.Buffer
	err := pdfdoc.Render(&buf, pdfdoc.Document{
		Title:     profile.Name,
		Lines:     profileLines(profile),
		CreatedAt: profile.IssuedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.servicecontext.usecase.Generate: render pdf: %v", err)
		return fmt.Errorf("%w: %w", servicecontext.ErrWriteDocument, err)
	}
	if err := afero.WriteFile(uc.fs, uc.documentPath(), buf.Bytes(), filePerm); err != nil {
		uc.l.Errorf(ctx, "internal.servicecontext.usecase.Generate: write pdf: %v", err)
		return fmt.Errorf("%w: %w", servicecontext.ErrWriteDocument, err)
	}

	uc.l.Infof(ctx, "internal.servicecontext.usecase.Generate: wrote %s and %s", uc.summaryPath(), uc.documentPath())
	return nil
}
