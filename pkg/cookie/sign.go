package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// keyring holds signing secrets, newest first. Only keyring[0] signs.
type keyring [][]byte

var b64 = base64.RawURLEncoding

// seal encodes value as base64(value) "." base64(mac). The mac covers the
// cookie name so a signed value cannot be replayed under another name.
func (k keyring) seal(name, value string) string {
	return b64.EncodeToString([]byte(value)) + "." + b64.EncodeToString(mac(k[0], name, value))
}

func (k keyring) open(name, raw string) (string, error) {
	encValue, encSig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", ErrBadSig
	}
	value, err := b64.DecodeString(encValue)
	if err != nil {
		return "", ErrBadSig
	}
	sig, err := b64.DecodeString(encSig)
	if err != nil {
		return "", ErrBadSig
	}
	for _, key := range k {
		if hmac.Equal(sig, mac(key, name, string(value))) {
			return string(value), nil
		}
	}
	return "", ErrBadSig
}

func mac(key []byte, name, value string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(value))
	return h.Sum(nil)
}
