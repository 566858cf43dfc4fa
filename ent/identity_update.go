// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nmoreno/quizrush/ent/identity"
	"github.com/nmoreno/quizrush/ent/predicate"
)

// IdentityUpdate is the builder for updating Identity entities.
type IdentityUpdate struct {
	config
	hooks    []Hook
	mutation *IdentityMutation
}

// Where appends a list predicates to the IdentityUpdate builder.
func (_u *IdentityUpdate) Where(ps ...predicate.Identity) *IdentityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlayerID sets the "player_id" field.
func (_u *IdentityUpdate) SetPlayerID(v int64) *IdentityUpdate {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *IdentityUpdate) SetNillablePlayerID(v *int64) *IdentityUpdate {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *IdentityUpdate) AddPlayerID(v int64) *IdentityUpdate {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetPlayerName sets the "player_name" field.
func (_u *IdentityUpdate) SetPlayerName(v string) *IdentityUpdate {
	_u.mutation.SetPlayerName(v)
	return _u
}

// SetNillablePlayerName sets the "player_name" field if the given value is not nil.
func (_u *IdentityUpdate) SetNillablePlayerName(v *string) *IdentityUpdate {
	if v != nil {
		_u.SetPlayerName(*v)
	}
	return _u
}

// SetRoomCode sets the "room_code" field.
func (_u *IdentityUpdate) SetRoomCode(v string) *IdentityUpdate {
	_u.mutation.SetRoomCode(v)
	return _u
}

// SetNillableRoomCode sets the "room_code" field if the given value is not nil.
func (_u *IdentityUpdate) SetNillableRoomCode(v *string) *IdentityUpdate {
	if v != nil {
		_u.SetRoomCode(*v)
	}
	return _u
}

// ClearRoomCode clears the value of the "room_code" field.
func (_u *IdentityUpdate) ClearRoomCode() *IdentityUpdate {
	_u.mutation.ClearRoomCode()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IdentityUpdate) SetUpdatedAt(v time.Time) *IdentityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IdentityMutation object of the builder.
func (_u *IdentityUpdate) Mutation() *IdentityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IdentityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdentityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IdentityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdentityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IdentityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := identity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdentityUpdate) check() error {
	if v, ok := _u.mutation.PlayerID(); ok {
		if err := identity.PlayerIDValidator(v); err != nil {
			return &ValidationError{Name: "player_id", err: fmt.Errorf(`ent: validator failed for field "Identity.player_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlayerName(); ok {
		if err := identity.PlayerNameValidator(v); err != nil {
			return &ValidationError{Name: "player_name", err: fmt.Errorf(`ent: validator failed for field "Identity.player_name": %w`, err)}
		}
	}
	return nil
}

func (_u *IdentityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(identity.Table, identity.Columns, sqlgraph.NewFieldSpec(identity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(identity.FieldPlayerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(identity.FieldPlayerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PlayerName(); ok {
		_spec.SetField(identity.FieldPlayerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomCode(); ok {
		_spec.SetField(identity.FieldRoomCode, field.TypeString, value)
	}
	if _u.mutation.RoomCodeCleared() {
		_spec.ClearField(identity.FieldRoomCode, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(identity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{identity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IdentityUpdateOne is the builder for updating a single Identity entity.
type IdentityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IdentityMutation
}

// SetPlayerID sets the "player_id" field.
func (_u *IdentityUpdateOne) SetPlayerID(v int64) *IdentityUpdateOne {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *IdentityUpdateOne) SetNillablePlayerID(v *int64) *IdentityUpdateOne {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *IdentityUpdateOne) AddPlayerID(v int64) *IdentityUpdateOne {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetPlayerName sets the "player_name" field.
func (_u *IdentityUpdateOne) SetPlayerName(v string) *IdentityUpdateOne {
	_u.mutation.SetPlayerName(v)
	return _u
}

// SetNillablePlayerName sets the "player_name" field if the given value is not nil.
func (_u *IdentityUpdateOne) SetNillablePlayerName(v *string) *IdentityUpdateOne {
	if v != nil {
		_u.SetPlayerName(*v)
	}
	return _u
}

// SetRoomCode sets the "room_code" field.
func (_u *IdentityUpdateOne) SetRoomCode(v string) *IdentityUpdateOne {
	_u.mutation.SetRoomCode(v)
	return _u
}

// SetNillableRoomCode sets the "room_code" field if the given value is not nil.
func (_u *IdentityUpdateOne) SetNillableRoomCode(v *string) *IdentityUpdateOne {
	if v != nil {
		_u.SetRoomCode(*v)
	}
	return _u
}

// ClearRoomCode clears the value of the "room_code" field.
func (_u *IdentityUpdateOne) ClearRoomCode() *IdentityUpdateOne {
	_u.mutation.ClearRoomCode()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IdentityUpdateOne) SetUpdatedAt(v time.Time) *IdentityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IdentityMutation object of the builder.
func (_u *IdentityUpdateOne) Mutation() *IdentityMutation {
	return _u.mutation
}

// Where appends a list predicates to the IdentityUpdate builder.
func (_u *IdentityUpdateOne) Where(ps ...predicate.Identity) *IdentityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IdentityUpdateOne) Select(field string, fields ...string) *IdentityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Identity entity.
func (_u *IdentityUpdateOne) Save(ctx context.Context) (*Identity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdentityUpdateOne) SaveX(ctx context.Context) *Identity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IdentityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdentityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IdentityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := identity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdentityUpdateOne) check() error {
	if v, ok := _u.mutation.PlayerID(); ok {
		if err := identity.PlayerIDValidator(v); err != nil {
			return &ValidationError{Name: "player_id", err: fmt.Errorf(`ent: validator failed for field "Identity.player_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlayerName(); ok {
		if err := identity.PlayerNameValidator(v); err != nil {
			return &ValidationError{Name: "player_name", err: fmt.Errorf(`ent: validator failed for field "Identity.player_name": %w`, err)}
		}
	}
	return nil
}

func (_u *IdentityUpdateOne) sqlSave(ctx context.Context) (_node *Identity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(identity.Table, identity.Columns, sqlgraph.NewFieldSpec(identity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Identity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, identity.FieldID)
		for _, f := range fields {
			if !identity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != identity.FieldID {
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
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(identity.FieldPlayerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(identity.FieldPlayerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PlayerName(); ok {
		_spec.SetField(identity.FieldPlayerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomCode(); ok {
		_spec.SetField(identity.FieldRoomCode, field.TypeString, value)
	}
	if _u.mutation.RoomCodeCleared() {
		_spec.ClearField(identity.FieldRoomCode, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(identity.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Identity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{identity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
