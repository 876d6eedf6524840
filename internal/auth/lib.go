package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches the bcrypt hash.
// bcrypt compares in constant time.
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var dummyHash = sync.OnceValue(func() string {
	hash, err := HashPassword("no such user")
	if err != nil {
		panic(err)
	}
	return hash
})

// CompareDummy spends one bcrypt comparison at the default cost and always
// reports false. Callers use it when there is no stored hash to check against.
func CompareDummy(password string) bool {
	CheckPasswordHash(dummyHash(), password)
	return false
}
