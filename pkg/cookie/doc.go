// Package cookie reads and writes HTTP cookies with shared attributes and optional HMAC signing.
//
// Plain cookies need no configuration:
//
//	m := cookie.New()
//	m.Set(w, "lang", "de", 86400)
//	lang, err := m.Get(r, "lang")
//
// With a secret of at least MinSecretLength bytes, SetSigned and GetSigned protect a
// value against client-side modification. The value itself is not hidden:
//
//	m := cookie.New(cookie.WithSecret(os.Getenv("COOKIE_SECRET")), cookie.WithSecure(true))
//	if err := m.SetSigned(w, "lang", "de", 86400); err != nil {
//		return err
//	}
//	lang, err := m.GetSigned(r, "lang") // ErrBadSig when tampered
//
// Signatures cover the cookie name. To rotate the secret, sign with the new one and
// keep accepting the old one for a while:
//
//	cookie.New(cookie.WithSecret(next), cookie.WithPreviousSecrets(current))
//
// The language middleware uses signed cookies to persist a negotiated language.
package cookie
