// Package catalog holds the example domain used by tests and documentation:
// interface-declared entities with generated Immutable implementations.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Person is the minimal interface entity.
type Person interface {
	GetID() int64
	GetName() string
}

// ImmutablePerson is the generated implementation of Person.
type ImmutablePerson struct {
	ID   int64  `db:"id,pk"`
	Name string `db:"name"`
}

func (p ImmutablePerson) GetID() int64 { return p.ID }
func (p ImmutablePerson) GetName() string { return p.Name }

// Address is a plain struct entity, embedded into customers.
type Address struct {
	Street string `db:"street"`
	City   string `db:"city"`
}

// Customer is an interface entity with a uuid-typed reference and an
// embedded address.
type Customer interface {
	GetID() int64
	GetRef() uuid.UUID
	GetEmail() string
	GetAddress() Address
}

// ImmutableCustomer is the generated implementation of Customer.
type ImmutableCustomer struct {
	ID      int64     `db:"id,pk"`
	Ref     uuid.UUID `db:"ref"`
	Email   string    `db:"email"`
	Address Address   `db:"address"`
}

func (c ImmutableCustomer) GetID() int64 { return c.ID }
func (c ImmutableCustomer) GetRef() uuid.UUID { return c.Ref }
func (c ImmutableCustomer) GetEmail() string { return c.Email }
func (c ImmutableCustomer) GetAddress() Address { return c.Address }

// Order is an interface entity with a nested interface-valued hop.
type Order interface {
	GetID() int64
	GetNumber() string
	GetPlacedAt() time.Time
	GetCustomer() Customer
}

// ImmutableOrder is the generated implementation of Order.
type ImmutableOrder struct {
	ID       int64     `db:"id,pk"`
	Number   string    `db:"number"`
	PlacedAt time.Time `db:"placed_at"`
	Customer Customer  `db:"customer"`
}

func (o ImmutableOrder) GetID() int64 { return o.ID }
func (o ImmutableOrder) GetNumber() string { return o.Number }
func (o ImmutableOrder) GetPlacedAt() time.Time { return o.PlacedAt }
func (o ImmutableOrder) GetCustomer() Customer { return o.Customer }

// Supplier has no generated implementation; it exercises the plain-entity
// fallback.
type Supplier interface {
	GetID() int64
	GetCompany() string
}

// LegacySupplier implements Supplier without following the Immutable naming
// scheme; it is only resolvable through an explicit binding.
type LegacySupplier struct {
	ID      int64  `db:"id,pk"`
	Company string `db:"company"`
}

func (s LegacySupplier) GetID() int64 { return s.ID }
func (s LegacySupplier) GetCompany() string { return s.Company }
