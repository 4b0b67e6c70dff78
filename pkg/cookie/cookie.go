package cookie

import (
	"errors"
	"net/http"
)

// Errors.
var (
	ErrNotFound = errors.New("cookie: not found")
	ErrNoSecret = errors.New("cookie: secret required")
	ErrBadSig   = errors.New("cookie: invalid signature")
)

// MinSecretLength is the shortest secret WithSecret accepts.
const MinSecretLength = 32

// Manager reads and writes plain and HMAC-signed cookies with shared attributes.
type Manager struct {
	keys     keyring // empty = signing disabled
	domain   string
	path     string
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a cookie Manager with the given options.
// Defaults: Path "/", HttpOnly, SameSite=Lax.
func New(opts ...Option) *Manager {
	m := &Manager{
		path:     "/",
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithSecret sets the signing secret.
// Secrets shorter than MinSecretLength are ignored and signing stays disabled.
func WithSecret(secret string) Option {
	return func(m *Manager) {
		if len(secret) >= MinSecretLength {
			m.keys = append(keyring{[]byte(secret)}, m.keys...)
		}
	}
}

// WithPreviousSecrets keeps verifying cookies signed with retired secrets
// while new cookies are signed with the WithSecret one. Apply it after WithSecret.
func WithPreviousSecrets(secrets ...string) Option {
	return func(m *Manager) {
		if len(m.keys) == 0 {
			return
		}
		for _, s := range secrets {
			if len(s) >= MinSecretLength {
				m.keys = append(m.keys, []byte(s))
			}
		}
	}
}

func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

func WithPath(path string) Option {
	return func(m *Manager) {
		m.path = path
	}
}

func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(m *Manager) {
		m.httpOnly = httpOnly
	}
}

func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = ss
	}
}

// CanSign reports whether a usable secret is configured.
func (m *Manager) CanSign() bool {
	return len(m.keys) > 0
}

// Get returns a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set sets a plain cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, m.cookie(name, value, maxAge))
}

// Delete removes a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.cookie(name, "", -1))
}

// GetSigned returns the value of a cookie written by SetSigned.
// Returns ErrNoSecret without a secret and ErrBadSig when the value was tampered
// with, signed for another cookie name, or signed with an unknown secret.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if !m.CanSign() {
		return "", ErrNoSecret
	}
	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.keys.open(name, raw)
}

// SetSigned sets a cookie whose value is protected by an HMAC-SHA256 signature.
// The value stays readable by the client; only modification is detected.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, maxAge int) error {
	if !m.CanSign() {
		return ErrNoSecret
	}
	http.SetCookie(w, m.cookie(name, m.keys.seal(name, value), maxAge))
	return nil
}

// cookie creates a cookie with the manager's defaults.
func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: m.httpOnly,
		SameSite: m.sameSite,
	}
}
