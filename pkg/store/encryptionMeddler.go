package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// EncryptionMeddler encrypts string columns at rest with AES-GCM.
// With an empty key values are stored as plain text.
type EncryptionMeddler struct {
	// Has to be 32 bytes long
	EncryptionKey string
}

// PreRead is called before a Scan operation for fields that have the EncryptionMeddler
func (m EncryptionMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(sql.NullString), nil
}

// PostRead is called after a Scan operation for fields that have the EncryptionMeddler
func (m EncryptionMeddler) PostRead(fieldAddr, scanTarget interface{}) error {
	raw, ok := scanTarget.(*sql.NullString)
	if !ok || raw == nil {
		return fmt.Errorf("EncryptionMeddler.PostRead: unexpected scan target %T", scanTarget)
	}
	field, ok := fieldAddr.(*string)
	if !ok {
		return fmt.Errorf("EncryptionMeddler.PostRead: field must be a string, got %T", fieldAddr)
	}

	if m.EncryptionKey == "" || !raw.Valid {
		*field = raw.String
		return nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(raw.String)
	if err != nil {
		return err
	}
	plaintext, err := decrypt(ciphertext, []byte(m.EncryptionKey))
	if err != nil {
		return err
	}
	*field = string(plaintext)
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the EncryptionMeddler
func (m EncryptionMeddler) PreWrite(field interface{}) (saveValue interface{}, err error) {
	value, ok := field.(string)
	if !ok {
		return nil, fmt.Errorf("EncryptionMeddler.PreWrite: field must be a string, got %T", field)
	}
	if m.EncryptionKey == "" {
		return value, nil
	}

	encrypted, err := encrypt([]byte(value), []byte(m.EncryptionKey))
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.EncodeToString(encrypted), nil
}

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
