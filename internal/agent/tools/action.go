package tools

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"course-compass/internal/agent"
)

const (
	KindStudentInterest agent.ActionKind = "record_student_interest"
	KindFeedback        agent.ActionKind = "record_feedback"
)

// StudentInterest asks for a student to be contacted.
type StudentInterest struct {
	Email   string `mapstructure:"email"`
	Name    string `mapstructure:"name"`
	Message string `mapstructure:"message"`
}

func (StudentInterest) Kind() agent.ActionKind { return KindStudentInterest }

// Feedback logs a question the model could not answer.
type Feedback struct {
	Question string `mapstructure:"question"`
}

func (Feedback) Kind() agent.ActionKind { return KindFeedback }

// decodeArgs fills out from args. Every field of out is required, must be a
// string in args and may not be null. Extra keys are ignored.
func decodeArgs(args map[string]interface{}, required []string, out interface{}) error {
	for _, key := range required {
		v, ok := args[key]
		if !ok || v == nil {
			return fmt.Errorf("%w: missing %q", agent.ErrInvalidArguments, key)
		}
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%w: %q must be a string, got %T", agent.ErrInvalidArguments, key, v)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnset: true,
		Result:     out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("%w: %w", agent.ErrInvalidArguments, err)
	}
	return nil
}

func stringProperty() map[string]interface{} {
	return map[string]interface{}{"type": "string"}
}
