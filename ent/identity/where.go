// Code generated by ent, DO NOT EDIT.

package identity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nmoreno/quizrush/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldID, id))
}

// PlayerID applies equality check predicate on the "player_id" field. It's identical to PlayerIDEQ.
func PlayerID(v int64) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldPlayerID, v))
}

// PlayerName applies equality check predicate on the "player_name" field. It's identical to PlayerNameEQ.
func PlayerName(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldPlayerName, v))
}

// RoomCode applies equality check predicate on the "room_code" field. It's identical to RoomCodeEQ.
func RoomCode(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldRoomCode, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlayerIDEQ applies the EQ predicate on the "player_id" field.
func PlayerIDEQ(v int64) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldPlayerID, v))
}

// PlayerIDNEQ applies the NEQ predicate on the "player_id" field.
func PlayerIDNEQ(v int64) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldPlayerID, v))
}

// PlayerIDIn applies the In predicate on the "player_id" field.
func PlayerIDIn(vs ...int64) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldPlayerID, vs...))
}

// PlayerIDNotIn applies the NotIn predicate on the "player_id" field.
func PlayerIDNotIn(vs ...int64) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldPlayerID, vs...))
}

// PlayerIDGT applies the GT predicate on the "player_id" field.
func PlayerIDGT(v int64) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldPlayerID, v))
}

// PlayerIDGTE applies the GTE predicate on the "player_id" field.
func PlayerIDGTE(v int64) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldPlayerID, v))
}

// PlayerIDLT applies the LT predicate on the "player_id" field.
func PlayerIDLT(v int64) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldPlayerID, v))
}

// PlayerIDLTE applies the LTE predicate on the "player_id" field.
func PlayerIDLTE(v int64) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldPlayerID, v))
}

// PlayerNameEQ applies the EQ predicate on the "player_name" field.
func PlayerNameEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldPlayerName, v))
}

// PlayerNameNEQ applies the NEQ predicate on the "player_name" field.
func PlayerNameNEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldPlayerName, v))
}

// PlayerNameIn applies the In predicate on the "player_name" field.
func PlayerNameIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldPlayerName, vs...))
}

// PlayerNameNotIn applies the NotIn predicate on the "player_name" field.
func PlayerNameNotIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldPlayerName, vs...))
}

// PlayerNameGT applies the GT predicate on the "player_name" field.
func PlayerNameGT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldPlayerName, v))
}

// PlayerNameGTE applies the GTE predicate on the "player_name" field.
func PlayerNameGTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldPlayerName, v))
}

// PlayerNameLT applies the LT predicate on the "player_name" field.
func PlayerNameLT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldPlayerName, v))
}

// PlayerNameLTE applies the LTE predicate on the "player_name" field.
func PlayerNameLTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldPlayerName, v))
}

// PlayerNameContains applies the Contains predicate on the "player_name" field.
func PlayerNameContains(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContains(FieldPlayerName, v))
}

// PlayerNameHasPrefix applies the HasPrefix predicate on the "player_name" field.
func PlayerNameHasPrefix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasPrefix(FieldPlayerName, v))
}

// PlayerNameHasSuffix applies the HasSuffix predicate on the "player_name" field.
func PlayerNameHasSuffix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasSuffix(FieldPlayerName, v))
}

// PlayerNameEqualFold applies the EqualFold predicate on the "player_name" field.
func PlayerNameEqualFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEqualFold(FieldPlayerName, v))
}

// PlayerNameContainsFold applies the ContainsFold predicate on the "player_name" field.
func PlayerNameContainsFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContainsFold(FieldPlayerName, v))
}

// RoomCodeEQ applies the EQ predicate on the "room_code" field.
func RoomCodeEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldRoomCode, v))
}

// RoomCodeNEQ applies the NEQ predicate on the "room_code" field.
func RoomCodeNEQ(v string) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldRoomCode, v))
}

// RoomCodeIn applies the In predicate on the "room_code" field.
func RoomCodeIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldRoomCode, vs...))
}

// RoomCodeNotIn applies the NotIn predicate on the "room_code" field.
func RoomCodeNotIn(vs ...string) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldRoomCode, vs...))
}

// RoomCodeGT applies the GT predicate on the "room_code" field.
func RoomCodeGT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldRoomCode, v))
}

// RoomCodeGTE applies the GTE predicate on the "room_code" field.
func RoomCodeGTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldRoomCode, v))
}

// RoomCodeLT applies the LT predicate on the "room_code" field.
func RoomCodeLT(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldRoomCode, v))
}

// RoomCodeLTE applies the LTE predicate on the "room_code" field.
func RoomCodeLTE(v string) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldRoomCode, v))
}

// RoomCodeContains applies the Contains predicate on the "room_code" field.
func RoomCodeContains(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContains(FieldRoomCode, v))
}

// RoomCodeHasPrefix applies the HasPrefix predicate on the "room_code" field.
func RoomCodeHasPrefix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasPrefix(FieldRoomCode, v))
}

// RoomCodeHasSuffix applies the HasSuffix predicate on the "room_code" field.
func RoomCodeHasSuffix(v string) predicate.Identity {
	return predicate.Identity(sql.FieldHasSuffix(FieldRoomCode, v))
}

// RoomCodeIsNil applies the IsNil predicate on the "room_code" field.
func RoomCodeIsNil() predicate.Identity {
	return predicate.Identity(sql.FieldIsNull(FieldRoomCode))
}

// RoomCodeNotNil applies the NotNil predicate on the "room_code" field.
func RoomCodeNotNil() predicate.Identity {
	return predicate.Identity(sql.FieldNotNull(FieldRoomCode))
}

// RoomCodeEqualFold applies the EqualFold predicate on the "room_code" field.
func RoomCodeEqualFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldEqualFold(FieldRoomCode, v))
}

// RoomCodeContainsFold applies the ContainsFold predicate on the "room_code" field.
func RoomCodeContainsFold(v string) predicate.Identity {
	return predicate.Identity(sql.FieldContainsFold(FieldRoomCode, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Identity {
	return predicate.Identity(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Identity) predicate.Identity {
	return predicate.Identity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Identity) predicate.Identity {
	return predicate.Identity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Identity) predicate.Identity {
	return predicate.Identity(sql.NotPredicates(p))
}
