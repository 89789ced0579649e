package tools

import (
	"course-compass/internal/agent"
	"course-compass/internal/ledger"
	"course-compass/pkg/log"
)

// NewRegistry returns the two advising tools in declaration order.
func NewRegistry(uc ledger.UseCase, l log.Logger) *agent.ToolRegistry {
	return agent.NewToolRegistry(
		NewRecordStudentInterestTool(uc, l),
		NewRecordFeedbackTool(uc, l),
	)
}
