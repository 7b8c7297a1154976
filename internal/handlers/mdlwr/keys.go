package mdlwr

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

const rsaKeyBits = 2048

type KeyPair struct {
	PrivatePEM []byte
	PublicPEM  []byte
}

// LoadOrGenerateKeys читает PEM-файлы, если оба пути заданы. Иначе генерирует пару на старте,
// тогда токены не переживают рестарт процесса.
func LoadOrGenerateKeys(privFile, pubFile string) (*KeyPair, error) {
	if privFile != "" && pubFile != "" {
		priv, err := os.ReadFile(privFile)
		if err != nil {
			return nil, fmt.Errorf("read private key: %w", err)
		}
		pub, err := os.ReadFile(pubFile)
		if err != nil {
			return nil, fmt.Errorf("read public key: %w", err)
		}
		return &KeyPair{PrivatePEM: priv, PublicPEM: pub}, nil
	}

	return GenerateKeys()
}

func GenerateKeys() (*KeyPair, error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate rsa key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return &KeyPair{
		PrivatePEM: pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
		PublicPEM:  pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}),
	}, nil
}
