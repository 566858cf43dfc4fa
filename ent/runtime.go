// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nmoreno/quizrush/ent/credential"
	"github.com/nmoreno/quizrush/ent/identity"
	"github.com/nmoreno/quizrush/ent/llmrequestevent"
	"github.com/nmoreno/quizrush/ent/schema"
	"github.com/nmoreno/quizrush/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescToken is the schema descriptor for token field.
	credentialDescToken := credentialFields[0].Descriptor()
	// credential.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	credential.TokenValidator = credentialDescToken.Validators[0].(func(string) error)
	// credentialDescSavedAt is the schema descriptor for saved_at field.
	credentialDescSavedAt := credentialFields[2].Descriptor()
	// credential.DefaultSavedAt holds the default value on creation for the saved_at field.
	credential.DefaultSavedAt = credentialDescSavedAt.Default.(func() time.Time)
	identityFields := schema.Identity{}.Fields()
	_ = identityFields
	// identityDescPlayerID is the schema descriptor for player_id field.
	identityDescPlayerID := identityFields[0].Descriptor()
	// identity.PlayerIDValidator is a validator for the "player_id" field. It is called by the builders before save.
	identity.PlayerIDValidator = identityDescPlayerID.Validators[0].(func(int64) error)
	// identityDescPlayerName is the schema descriptor for player_name field.
	identityDescPlayerName := identityFields[1].Descriptor()
	// identity.PlayerNameValidator is a validator for the "player_name" field. It is called by the builders before save.
	identity.PlayerNameValidator = identityDescPlayerName.Validators[0].(func(string) error)
	// identityDescUpdatedAt is the schema descriptor for updated_at field.
	identityDescUpdatedAt := identityFields[3].Descriptor()
	// identity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	identity.DefaultUpdatedAt = identityDescUpdatedAt.Default.(func() time.Time)
	// identity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	identity.UpdateDefaultUpdatedAt = identityDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescClientID is the schema descriptor for client_id field.
	sessionrecordDescClientID := sessionrecordFields[0].Descriptor()
	// sessionrecord.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	sessionrecord.ClientIDValidator = sessionrecordDescClientID.Validators[0].(func(string) error)
	// sessionrecordDescScore is the schema descriptor for score field.
	sessionrecordDescScore := sessionrecordFields[3].Descriptor()
	// sessionrecord.DefaultScore holds the default value on creation for the score field.
	sessionrecord.DefaultScore = sessionrecordDescScore.Default.(int)
	// sessionrecordDescAnswered is the schema descriptor for answered field.
	sessionrecordDescAnswered := sessionrecordFields[4].Descriptor()
	// sessionrecord.DefaultAnswered holds the default value on creation for the answered field.
	sessionrecord.DefaultAnswered = sessionrecordDescAnswered.Default.(int)
	// sessionrecordDescCorrect is the schema descriptor for correct field.
	sessionrecordDescCorrect := sessionrecordFields[5].Descriptor()
	// sessionrecord.DefaultCorrect holds the default value on creation for the correct field.
	sessionrecord.DefaultCorrect = sessionrecordDescCorrect.Default.(int)
	// sessionrecordDescFinalDifficulty is the schema descriptor for final_difficulty field.
	sessionrecordDescFinalDifficulty := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultFinalDifficulty holds the default value on creation for the final_difficulty field.
	sessionrecord.DefaultFinalDifficulty = sessionrecordDescFinalDifficulty.Default.(float64)
	// sessionrecordDescPlayedAt is the schema descriptor for played_at field.
	sessionrecordDescPlayedAt := sessionrecordFields[8].Descriptor()
	// sessionrecord.DefaultPlayedAt holds the default value on creation for the played_at field.
	sessionrecord.DefaultPlayedAt = sessionrecordDescPlayedAt.Default.(func() time.Time)
}
