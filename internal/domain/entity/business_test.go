package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBusiness_CanBeEditedBy(t *testing.T) {
	ownerID := uuid.New()
	owner := &Identity{ID: ownerID, Email: "owner@example.cl"}
	stranger := &Identity{ID: uuid.New(), Email: "otro@example.cl"}

	owned := &Business{ID: uuid.New(), Name: "Panadería Don Pepe", OwnerID: &ownerID}
	unowned := &Business{ID: uuid.New(), Name: "Ferretería"}

	assert.True(t, owned.CanBeEditedBy(owner))
	assert.False(t, owned.CanBeEditedBy(stranger))
	assert.False(t, owned.CanBeEditedBy(nil))
	assert.False(t, unowned.CanBeEditedBy(owner))

	var missing *Business
	assert.False(t, missing.CanBeEditedBy(owner))
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	assert.True(t, (*Session)(nil).Expired(now))
	assert.True(t, (&Session{ExpiresAt: now.Add(-time.Minute)}).Expired(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Minute)}).Expired(now))
}

func TestAccountType(t *testing.T) {
	assert.True(t, AccountTypePyme.IsValid())
	assert.True(t, AccountTypeConsumer.IsValid())
	assert.False(t, AccountType("admin").IsValid())
	assert.False(t, AccountType("").IsValid())

	assert.Equal(t, "PYME", AccountTypePyme.Label())
	assert.Equal(t, "Colaborador", AccountTypeConsumer.Label())
}
