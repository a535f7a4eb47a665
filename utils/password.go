package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// Hashing parameters are fixed for the process so every stored hash is
// produced with the same cost settings.
var argonConfig = argon2.DefaultConfig()

func HashPassword(password string) (string, error) {
	encoded, err := argonConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded hash. A wrong
// password is (false, nil); an error means the hash itself is malformed.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
