package llm

import "context"

type purposeContextKey struct{}

// WithPurpose labels the context so logged request events record what the
// call was for, e.g. "question-generation".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeContextKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if purpose, ok := ctx.Value(purposeContextKey{}).(string); ok {
		return purpose
	}
	return "unknown"
}
