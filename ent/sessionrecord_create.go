// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nmoreno/quizrush/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (_c *SessionRecordCreate) SetClientID(v string) *SessionRecordCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionRecordCreate) SetSessionID(v int64) *SessionRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetPlayerID sets the "player_id" field.
func (_c *SessionRecordCreate) SetPlayerID(v int64) *SessionRecordCreate {
	_c.mutation.SetPlayerID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SessionRecordCreate) SetScore(v int) *SessionRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableScore(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *SessionRecordCreate) SetAnswered(v int) *SessionRecordCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableAnswered(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetAnswered(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *SessionRecordCreate) SetCorrect(v int) *SessionRecordCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCorrect(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_c *SessionRecordCreate) SetFinalDifficulty(v float64) *SessionRecordCreate {
	_c.mutation.SetFinalDifficulty(v)
	return _c
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableFinalDifficulty(v *float64) *SessionRecordCreate {
	if v != nil {
		_c.SetFinalDifficulty(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *SessionRecordCreate) SetOutcome(v string) *SessionRecordCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetPlayedAt sets the "played_at" field.
func (_c *SessionRecordCreate) SetPlayedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetPlayedAt(v)
	return _c
}

// SetNillablePlayedAt sets the "played_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillablePlayedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetPlayedAt(*v)
	}
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := sessionrecord.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Answered(); !ok {
		v := sessionrecord.DefaultAnswered
		_c.mutation.SetAnswered(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := sessionrecord.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.FinalDifficulty(); !ok {
		v := sessionrecord.DefaultFinalDifficulty
		_c.mutation.SetFinalDifficulty(v)
	}
	if _, ok := _c.mutation.PlayedAt(); !ok {
		v := sessionrecord.DefaultPlayedAt()
		_c.mutation.SetPlayedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "SessionRecord.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := sessionrecord.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionRecord.session_id"`)}
	}
	if _, ok := _c.mutation.PlayerID(); !ok {
		return &ValidationError{Name: "player_id", err: errors.New(`ent: missing required field "SessionRecord.player_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SessionRecord.score"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "SessionRecord.answered"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SessionRecord.correct"`)}
	}
	if _, ok := _c.mutation.FinalDifficulty(); !ok {
		return &ValidationError{Name: "final_difficulty", err: errors.New(`ent: missing required field "SessionRecord.final_difficulty"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "SessionRecord.outcome"`)}
	}
	if _, ok := _c.mutation.PlayedAt(); !ok {
		return &ValidationError{Name: "played_at", err: errors.New(`ent: missing required field "SessionRecord.played_at"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(sessionrecord.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeInt64, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.PlayerID(); ok {
		_spec.SetField(sessionrecord.FieldPlayerID, field.TypeInt64, value)
		_node.PlayerID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(sessionrecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(sessionrecord.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(sessionrecord.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionrecord.FieldFinalDifficulty, field.TypeFloat64, value)
		_node.FinalDifficulty = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(sessionrecord.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.PlayedAt(); ok {
		_spec.SetField(sessionrecord.FieldPlayedAt, field.TypeTime, value)
		_node.PlayedAt = value
	}
	return _node, _spec
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
