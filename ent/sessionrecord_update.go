// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nmoreno/quizrush/ent/predicate"
	"github.com/nmoreno/quizrush/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *SessionRecordUpdate) SetClientID(v string) *SessionRecordUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableClientID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdate) SetSessionID(v int64) *SessionRecordUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSessionID(v *int64) *SessionRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *SessionRecordUpdate) AddSessionID(v int64) *SessionRecordUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetPlayerID sets the "player_id" field.
func (_u *SessionRecordUpdate) SetPlayerID(v int64) *SessionRecordUpdate {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillablePlayerID(v *int64) *SessionRecordUpdate {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *SessionRecordUpdate) AddPlayerID(v int64) *SessionRecordUpdate {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionRecordUpdate) SetScore(v int) *SessionRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableScore(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionRecordUpdate) AddScore(v int) *SessionRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *SessionRecordUpdate) SetAnswered(v int) *SessionRecordUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableAnswered(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *SessionRecordUpdate) AddAnswered(v int) *SessionRecordUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionRecordUpdate) SetCorrect(v int) *SessionRecordUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCorrect(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionRecordUpdate) AddCorrect(v int) *SessionRecordUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *SessionRecordUpdate) SetFinalDifficulty(v float64) *SessionRecordUpdate {
	_u.mutation.ResetFinalDifficulty()
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableFinalDifficulty(v *float64) *SessionRecordUpdate {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// AddFinalDifficulty adds value to the "final_difficulty" field.
func (_u *SessionRecordUpdate) AddFinalDifficulty(v float64) *SessionRecordUpdate {
	_u.mutation.AddFinalDifficulty(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *SessionRecordUpdate) SetOutcome(v string) *SessionRecordUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableOutcome(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := sessionrecord.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.client_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(sessionrecord.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(sessionrecord.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(sessionrecord.FieldPlayerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(sessionrecord.FieldPlayerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(sessionrecord.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(sessionrecord.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionrecord.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionrecord.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionrecord.FieldFinalDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalDifficulty(); ok {
		_spec.AddField(sessionrecord.FieldFinalDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(sessionrecord.FieldOutcome, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetClientID sets the "client_id" field.
func (_u *SessionRecordUpdateOne) SetClientID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableClientID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdateOne) SetSessionID(v int64) *SessionRecordUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSessionID(v *int64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *SessionRecordUpdateOne) AddSessionID(v int64) *SessionRecordUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetPlayerID sets the "player_id" field.
func (_u *SessionRecordUpdateOne) SetPlayerID(v int64) *SessionRecordUpdateOne {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillablePlayerID(v *int64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *SessionRecordUpdateOne) AddPlayerID(v int64) *SessionRecordUpdateOne {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionRecordUpdateOne) SetScore(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableScore(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionRecordUpdateOne) AddScore(v int) *SessionRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *SessionRecordUpdateOne) SetAnswered(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableAnswered(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *SessionRecordUpdateOne) AddAnswered(v int) *SessionRecordUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionRecordUpdateOne) SetCorrect(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCorrect(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionRecordUpdateOne) AddCorrect(v int) *SessionRecordUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *SessionRecordUpdateOne) SetFinalDifficulty(v float64) *SessionRecordUpdateOne {
	_u.mutation.ResetFinalDifficulty()
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableFinalDifficulty(v *float64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// AddFinalDifficulty adds value to the "final_difficulty" field.
func (_u *SessionRecordUpdateOne) AddFinalDifficulty(v float64) *SessionRecordUpdateOne {
	_u.mutation.AddFinalDifficulty(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *SessionRecordUpdateOne) SetOutcome(v string) *SessionRecordUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableOutcome(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := sessionrecord.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.client_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(sessionrecord.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(sessionrecord.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(sessionrecord.FieldPlayerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(sessionrecord.FieldPlayerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(sessionrecord.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(sessionrecord.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionrecord.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionrecord.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionrecord.FieldFinalDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalDifficulty(); ok {
		_spec.AddField(sessionrecord.FieldFinalDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(sessionrecord.FieldOutcome, field.TypeString, value)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
