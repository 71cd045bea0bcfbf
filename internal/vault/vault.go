// Package vault mediates authenticated access to the encrypted content
// bundles: it holds the password-derived key for the lifetime of a session,
// decrypts bundles lazily on first access, caches the results, and
// de-duplicates concurrent loads.
package vault

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/foliovault/foliovault/internal/crypto"
	"github.com/foliovault/foliovault/internal/session"
)

// ContentType identifies one of the encrypted content bundles shipped with
// the site.
type ContentType string

const (
	ContentJourney   ContentType = "journey"
	ContentProjects  ContentType = "projects"
	ContentEducation ContentType = "education"
	ContentAbout     ContentType = "about"
)

// ContentTypes lists every known content type in build order.
var ContentTypes = []ContentType{ContentJourney, ContentProjects, ContentEducation, ContentAbout}

var (
	// ErrNotAuthenticated is returned when an operation requires a held key
	// and the vault is locked.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUnknownContentType is returned for content types outside the known set.
	ErrUnknownContentType = errors.New("unknown content type")
)

// ParseContentType validates a caller-supplied content type name.
func ParseContentType(s string) (ContentType, error) {
	switch ct := ContentType(s); ct {
	case ContentJourney, ContentProjects, ContentEducation, ContentAbout:
		return ct, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContentType, s)
}

// Marker keys persisted to the session store.
const (
	markerAuth = "portfolio-auth"
	markerKey  = "portfolio-key"
	markerID   = "portfolio-session"
)

// AssetSource supplies the ciphertext blob for a content type.
type AssetSource interface {
	Ciphertext(ct ContentType) (string, error)
}

// Codec decrypts a ciphertext blob with a derived key. The crypto package
// satisfies it; tests substitute a counting stub.
type Codec interface {
	DecryptWithKey(blob, key string) (any, error)
}

type cryptoCodec struct{}

func (cryptoCodec) DecryptWithKey(blob, key string) (any, error) {
	return crypto.DecryptWithKey(blob, key)
}

// Option configures a Vault.
type Option func(*Vault)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(v *Vault) { v.log = log }
}

// WithCodec replaces the decryption codec.
func WithCodec(c Codec) Option {
	return func(v *Vault) { v.codec = c }
}

// Vault is the session object gating access to the encrypted bundles.
type Vault struct {
	assets AssetSource
	store  session.Store
	codec  Codec
	log    *zap.Logger

	group singleflight.Group

	mu    sync.Mutex
	key   string // hex-encoded derived key; empty when locked
	gen   uint64 // bumped on every authenticate and logout
	cache map[ContentType]any
}

// New creates a vault over the given asset source and session store. If the
// store holds valid markers from an earlier session, the vault starts
// authenticated with the persisted key.
func New(assets AssetSource, store session.Store, opts ...Option) *Vault {
	v := &Vault{
		assets: assets,
		store:  store,
		codec:  cryptoCodec{},
		log:    zap.NewNop(),
		cache:  make(map[ContentType]any),
	}
	for _, opt := range opts {
		opt(v)
	}

	if flag, ok := store.Get(markerAuth); ok && flag == "true" {
		if key, ok := store.Get(markerKey); ok && key != "" {
			v.key = key
			v.log.Info("session restored from persisted markers")
		}
	}

	return v
}

// IsAuthenticated reports whether the vault currently holds a key.
func (v *Vault) IsAuthenticated() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.key != ""
}

// Authenticate derives and holds the key for the supplied password and
// persists the session markers. The password is not validated here: there is
// no stored verifier for the shared password, so a wrong password only
// surfaces as a decryption failure on the first LoadContent.
func (v *Vault) Authenticate(password string) error {
	key := crypto.DeriveKey(password)

	v.mu.Lock()
	v.key = key
	v.gen++
	v.cache = make(map[ContentType]any)
	v.mu.Unlock()
	v.resetInflight()

	if err := v.store.Set(markerAuth, "true"); err != nil {
		return fmt.Errorf("failed to persist session marker: %w", err)
	}
	if err := v.store.Set(markerKey, key); err != nil {
		return fmt.Errorf("failed to persist session key: %w", err)
	}
	if err := v.store.Set(markerID, uuid.New().String()); err != nil {
		return fmt.Errorf("failed to persist session id: %w", err)
	}

	v.log.Info("session authenticated")
	return nil
}

// Logout clears the key, the cache, the in-flight state, and the persisted
// markers. Total reset, not partial.
func (v *Vault) Logout() error {
	v.mu.Lock()
	v.key = ""
	v.gen++
	v.cache = make(map[ContentType]any)
	v.mu.Unlock()
	v.resetInflight()

	if err := v.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session markers: %w", err)
	}

	v.log.Info("session cleared")
	return nil
}

// resetInflight detaches future callers from any pending loads. A load that
// is already running completes harmlessly; the generation check in commit
// keeps its result out of the cache.
func (v *Vault) resetInflight() {
	for _, ct := range ContentTypes {
		v.group.Forget(string(ct))
	}
}

// LoadContent returns the decrypted bundle for ct, decrypting it on first
// access. Concurrent callers for the same uncached type share a single
// decryption. A decryption failure is propagated without being cached, so a
// later call retries.
func (v *Vault) LoadContent(ctx context.Context, ct ContentType) (any, error) {
	if _, err := ParseContentType(string(ct)); err != nil {
		return nil, err
	}

	v.mu.Lock()
	key, gen := v.key, v.gen
	if key == "" {
		v.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	if bundle, ok := v.cache[ct]; ok {
		v.mu.Unlock()
		return bundle, nil
	}
	v.mu.Unlock()

	ch := v.group.DoChan(string(ct), func() (any, error) {
		blob, err := v.assets.Ciphertext(ct)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s ciphertext: %w", ct, err)
		}

		bundle, err := v.codec.DecryptWithKey(blob, key)
		if err != nil {
			return nil, err
		}

		v.commit(ct, gen, bundle)
		return bundle, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			v.log.Warn("content load failed", zap.String("type", string(ct)), zap.Error(res.Err))
			return nil, res.Err
		}
		v.log.Debug("content loaded", zap.String("type", string(ct)), zap.Bool("shared", res.Shared))
		return res.Val, nil
	}
}

// commit stores a decrypted bundle unless the session changed while the
// decryption was in flight.
func (v *Vault) commit(ct ContentType, gen uint64, bundle any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.gen != gen || v.key == "" {
		return
	}
	v.cache[ct] = bundle
}

// GetContent returns the cached bundle for ct, or nil if it has not been
// decrypted yet. It never triggers a load.
func (v *Vault) GetContent(ct ContentType) any {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cache[ct]
}

// GetContentField returns a single field from the cached bundle for ct, or
// nil if the bundle is absent, is not an object, or has no such field.
func (v *Vault) GetContentField(ct ContentType, field string) any {
	bundle := v.GetContent(ct)
	obj, ok := bundle.(map[string]any)
	if !ok {
		return nil
	}
	return obj[field]
}
