package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

const encryptionKey = "the-key-has-to-be-32-bytes-long!"

func TestEncryptionMeddlerRoundTrip(t *testing.T) {
	m := EncryptionMeddler{EncryptionKey: encryptionKey}

	saved, err := m.PreWrite("buy milk")
	assert.Nil(t, err)
	assert.NotEqual(t, "buy milk", saved)

	target, err := m.PreRead(new(string))
	assert.Nil(t, err)
	*(target.(*sql.NullString)) = sql.NullString{String: saved.(string), Valid: true}

	var description string
	err = m.PostRead(&description, target)
	assert.Nil(t, err)
	assert.Equal(t, "buy milk", description)
}

func TestEncryptionMeddlerWithoutKey(t *testing.T) {
	m := EncryptionMeddler{}

	saved, err := m.PreWrite("buy milk")
	assert.Nil(t, err)
	assert.Equal(t, "buy milk", saved)

	var description string
	err = m.PostRead(&description, &sql.NullString{String: "buy milk", Valid: true})
	assert.Nil(t, err)
	assert.Equal(t, "buy milk", description)
}

func TestEncryptionMeddlerWrongKey(t *testing.T) {
	saved, err := EncryptionMeddler{EncryptionKey: encryptionKey}.PreWrite("buy milk")
	assert.Nil(t, err)

	var description string
	err = EncryptionMeddler{EncryptionKey: "new-key-has-to-be-32-bytes-long!"}.
		PostRead(&description, &sql.NullString{String: saved.(string), Valid: true})
	assert.NotNil(t, err)
}

func TestEncryptionMeddlerRejectsNonStrings(t *testing.T) {
	_, err := EncryptionMeddler{EncryptionKey: encryptionKey}.PreWrite(42)
	assert.NotNil(t, err)
}
