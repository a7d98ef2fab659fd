package notes

import (
	"encoding"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the opaque note identifier. Relational backends use IntID (server
// assigned auto-increment), document backends use ObjectID (12 bytes, rendered
// as 24 hex characters).
type ID interface {
	fmt.Stringer
	encoding.TextMarshaler
	IsZero() bool
}

var (
	_ ID = IntID(0)
	_ ID = ObjectID{}
)

type IntID int64

func (id IntID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id IntID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id IntID) IsZero() bool {
	return id == 0
}

// ParseIntID accepts only the canonical form produced by IntID.String,
// so "+5" and "007" are rejected.
func ParseIntID(raw string) (IntID, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 || IntID(v).String() != raw {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return IntID(v), nil
}

// AsIntID narrows id to an IntID, rejecting nil, zero and foreign representations.
func AsIntID(id ID) (IntID, error) {
	intID, ok := id.(IntID)
	if !ok || intID.IsZero() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidID, id)
	}
	return intID, nil
}

type ObjectID primitive.ObjectID

func NewObjectID() ObjectID {
	return ObjectID(primitive.NewObjectID())
}

func (id ObjectID) Primitive() primitive.ObjectID {
	return primitive.ObjectID(id)
}

func (id ObjectID) String() string {
	return primitive.ObjectID(id).Hex()
}

func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id ObjectID) IsZero() bool {
	return primitive.ObjectID(id).IsZero()
}

func ParseObjectID(raw string) (ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return ObjectID(oid), nil
}

func AsObjectID(id ID) (ObjectID, error) {
	oid, ok := id.(ObjectID)
	if !ok || oid.IsZero() {
		return ObjectID{}, fmt.Errorf("%w: %v", ErrInvalidID, id)
	}
	return oid, nil
}

// IntIDScheme provides the identifier helpers of backends relying on
// auto-increment integer keys.
type IntIDScheme struct{}

func (IntIDScheme) IsValidID(raw string) bool {
	_, err := ParseIntID(raw)
	return err == nil
}

func (IntIDScheme) ParseID(raw string) (ID, error) {
	id, err := ParseIntID(raw)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// NewID is not meaningful when the engine assigns the key on insert.
func (IntIDScheme) NewID() (ID, error) {
	return nil, ErrIDGenerationUnsupported
}

// ObjectIDScheme provides the identifier helpers of document backends.
type ObjectIDScheme struct{}

func (ObjectIDScheme) IsValidID(raw string) bool {
	return primitive.IsValidObjectID(raw)
}

func (ObjectIDScheme) ParseID(raw string) (ID, error) {
	id, err := ParseObjectID(raw)
	if err != nil {
		return nil, err
	}
	return id, nil
}

func (ObjectIDScheme) NewID() (ID, error) {
	return NewObjectID(), nil
}
