// Package cookie implements a browser-style cookie jar: named url-encoded
// values with a max-age, optionally persisted to a file so a session
// survives process restarts.
package cookie

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const DefaultTTLDays = 7

const secondsPerDay = 86400

type (
	Jar struct {
		mu      sync.Mutex
		entries map[string]entry
		file    string
		now     func() time.Time
	}

	JarOption func(*Jar)

	SetOption func(*setParams)

	entry struct {
		Value     string     `json:"value"`
		ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	}

	setParams struct {
		maxAge int
	}
)

func New(opts ...JarOption) *Jar {
	j := &Jar{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Open loads a jar persisted at path, creating an empty one if the file
// does not exist yet. Further mutations are flushed back to the file.
func Open(path string, opts ...JarOption) (*Jar, error) {
	j := New(opts...)
	j.file = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return j, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cookie jar file: %w", err)
	}

	if err = json.Unmarshal(data, &j.entries); err != nil {
		return nil, fmt.Errorf("decode cookie jar file: %w", err)
	}
	return j, nil
}

func WithClock(now func() time.Time) JarOption {
	return func(j *Jar) {
		j.now = now
	}
}

// WithTTLDays overrides the default seven-day lifetime of a Set value.
func WithTTLDays(days int) SetOption {
	return func(p *setParams) {
		p.maxAge = days * secondsPerDay
	}
}

// Get returns the decoded value of the named cookie, reporting false when
// the cookie is absent or already expired.
func (j *Jar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	e, ok := j.entries[name]
	if !ok || j.expired(e) {
		return "", false
	}

	value, err := url.QueryUnescape(e.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set writes the cookie, url-encoding the value and overwriting any
// previous entry with the same name.
func (j *Jar) Set(name, value string, opts ...SetOption) {
	params := setParams{maxAge: DefaultTTLDays * secondsPerDay}
	for _, opt := range opts {
		opt(&params)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	expiresAt := j.now().Add(time.Duration(params.maxAge) * time.Second)
	j.entries[name] = entry{
		Value:     url.QueryEscape(value),
		ExpiresAt: &expiresAt,
	}
	j.flush()
}

// Remove overwrites the cookie with a zero max-age, expiring it immediately.
func (j *Jar) Remove(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	expiresAt := j.now()
	j.entries[name] = entry{Value: "", ExpiresAt: &expiresAt}
	j.flush()
}

// String serializes the live entries the way a browser serializes its jar:
// semicolon-and-space-separated name=value pairs with encoded values.
func (j *Jar) String() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	names := make([]string, 0, len(j.entries))
	for name, e := range j.entries {
		if j.expired(e) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+j.entries[name].Value)
	}
	return strings.Join(pairs, "; ")
}

// ParseJar builds a jar from the serialized name=value form produced by
// String. Parsed entries carry no expiry.
func ParseJar(serialized string, opts ...JarOption) *Jar {
	j := New(opts...)
	for _, pair := range strings.Split(serialized, "; ") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		j.entries[name] = entry{Value: value}
	}
	return j
}

// Flush persists the live entries to the jar file, dropping expired ones.
func (j *Jar) Flush() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.flushErr()
}

func (j *Jar) expired(e entry) bool {
	return e.ExpiresAt != nil && !e.ExpiresAt.After(j.now())
}

// flush is best effort: jar mutations have no error conditions, an
// unwritable file only costs session persistence.
func (j *Jar) flush() {
	_ = j.flushErr()
}

func (j *Jar) flushErr() error {
	if j.file == "" {
		return nil
	}

	live := make(map[string]entry, len(j.entries))
	for name, e := range j.entries {
		if j.expired(e) {
			continue
		}
		live[name] = e
	}
	j.entries = live

	data, err := json.Marshal(live)
	if err != nil {
		return fmt.Errorf("encode cookie jar file: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(j.file), 0o700); err != nil {
		return fmt.Errorf("create cookie jar dir: %w", err)
	}
	if err = os.WriteFile(j.file, data, 0o600); err != nil {
		return fmt.Errorf("write cookie jar file: %w", err)
	}
	return nil
}
