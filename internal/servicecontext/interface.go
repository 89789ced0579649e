package servicecontext

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate writes the summary text and the profile PDF, replacing any
	// previous copies.
	Generate(ctx context.Context, profile Profile) error
	// Load reads both documents back. Missing or unreadable files degrade to
	// empty text or a placeholder; Load never fails.
	Load(ctx context.Context) Documents
}
