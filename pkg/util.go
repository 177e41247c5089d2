package pkg

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"unsafe"
)

const randomStringAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// GenerateRandomBytes returns securely generated random bytes.
// It will return an error if the system's secure random
// number generator fails to function correctly, in which
// case the caller should not continue
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// GenerateRandomString returns a securely generated alphanumeric
// string of exactly n characters.
func GenerateRandomString(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("random string length must be positive")
	}

	max := big.NewInt(int64(len(randomStringAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = randomStringAlphabet[idx.Int64()]
	}

	return string(b), nil
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	switch {
	case isDir && !stat.IsDir():
		return false, fmt.Errorf("path [%s] is not a directory", path)
	case !isDir && stat.IsDir():
		return false, fmt.Errorf("path [%s] is a directory", path)
	}

	return true, nil
}
