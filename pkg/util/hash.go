package util

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

func ComputeHash(reader io.Reader) ([]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, reader); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// ComputeNewHash hashes data and returns the hash only when it differs from previousHash.
// nil data never produces a hash.
func ComputeNewHash(previous []byte, previousHash []byte, data []byte) ([]byte, error) {
	if data == nil {
		return nil, nil
	}

	hash, err := ComputeHash(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if previous != nil && bytes.Equal(previousHash, hash) {
		return nil, nil
	}

	return hash, nil
}

// ComputeFileHash returns the hex encoded first 16 bytes of the file's sha256
func ComputeFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}

	defer file.Close()

	hash, err := ComputeHash(file)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(hash[:16]), nil
}
