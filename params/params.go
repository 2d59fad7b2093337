// Package params is the parameter sink used to build Viddler API requests.
//
// Values is an ordered map from a string key to either a string or a File.
// Unlike net/url.Values, a key holds exactly one value and keys keep the
// order in which they were first set: the order of the pairs on the wire
// is the order in which the caller set them. Lists are expressed the way
// the Viddler API wants them, as one comma separated value (e.g. "a,b,c").
package params // import "github.com/go-viddler/viddler/params"

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrUnsupportedValue is returned by SetValue for values that have no
// string form on the wire.
var ErrUnsupportedValue = errors.New("params: unsupported value type")

type pair struct {
	key   string
	value string
	file  *File
}

// Values maps a string key to a string or File value, in insertion order.
// The zero value is an empty set ready to use.
//
// Values may be copied by assignment. Copies share storage until one of
// them is modified; every modification first takes a private copy, so a
// change to one never shows through another.
type Values struct {
	pairs []pair
	index map[string]int
}

// New returns Values holding the given key/value pairs, which are read two
// at a time. A trailing key without a value is set to the empty string.
func New(kv ...string) Values {
	var v Values
	for i := 0; i < len(kv); i += 2 {
		value := ""
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		v.Set(kv[i], value)
	}
	return v
}

// own replaces v's storage with a private copy with room for extra more
// pairs.
func (v *Values) own(extra int) {
	pairs := make([]pair, len(v.pairs), len(v.pairs)+extra)
	copy(pairs, v.pairs)
	index := make(map[string]int, len(pairs)+extra)
	for i, p := range pairs {
		index[p.key] = i
	}
	v.pairs, v.index = pairs, index
}

func (v *Values) put(p pair) {
	v.own(1)
	v.set(p)
}

// set stores p in storage v already owns.
func (v *Values) set(p pair) {
	if i, ok := v.index[p.key]; ok {
		v.pairs[i] = p
		return
	}
	v.index[p.key] = len(v.pairs)
	v.pairs = append(v.pairs, p)
}

// Get gets the string value associated with the given key.
// If the key is unset or holds a File, Get returns the empty string.
func (v Values) Get(key string) string {
	i, ok := v.index[key]
	if !ok {
		return ""
	}
	return v.pairs[i].value
}

// File returns the File associated with key, if any.
func (v Values) File(key string) (File, bool) {
	i, ok := v.index[key]
	if !ok || v.pairs[i].file == nil {
		return File{}, false
	}
	return *v.pairs[i].file, true
}

// Has reports whether key is set.
func (v Values) Has(key string) bool {
	_, ok := v.index[key]
	return ok
}

// Set sets the key to value. It replaces any existing value.
func (v *Values) Set(key, value string) {
	v.put(pair{key: key, value: value})
}

// SetFile sets the key to a file payload. It replaces any existing value.
func (v *Values) SetFile(key string, f File) {
	v.put(pair{key: key, file: &f})
}

// SetValue sets key to the string form of value. Strings, integers,
// booleans (sent as "1" or "0"), File and fmt.Stringer are accepted; any
// other type is rejected with ErrUnsupportedValue and v is left unchanged.
func (v *Values) SetValue(key string, value interface{}) error {
	var s string
	switch x := value.(type) {
	case string:
		s = x
	case File:
		v.SetFile(key, x)
		return nil
	case *File:
		if x == nil {
			return fmt.Errorf("%w: nil *File for %q", ErrUnsupportedValue, key)
		}
		v.SetFile(key, *x)
		return nil
	case int:
		s = strconv.Itoa(x)
	case int64:
		s = strconv.FormatInt(x, 10)
	case int32:
		s = strconv.FormatInt(int64(x), 10)
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	case bool:
		s = "0"
		if x {
			s = "1"
		}
	case fmt.Stringer:
		s = x.String()
	default:
		return fmt.Errorf("%w: %T for %q", ErrUnsupportedValue, value, key)
	}
	v.Set(key, s)
	return nil
}

// Add adds the value to key. It appends to any existing string value
// associated with key, separated by a comma.
func (v *Values) Add(key, value string) {
	if i, ok := v.index[key]; ok && v.pairs[i].file == nil {
		v.own(0)
		v.pairs[i].value = strings.Join([]string{v.pairs[i].value, value}, ",")
		return
	}
	v.Set(key, value)
}

// Del deletes the value associated with key.
func (v *Values) Del(key string) {
	i, ok := v.index[key]
	if !ok {
		return
	}
	pairs := make([]pair, 0, len(v.pairs)-1)
	pairs = append(pairs, v.pairs[:i]...)
	pairs = append(pairs, v.pairs[i+1:]...)
	v.pairs = pairs
	v.own(0)
}

// Len returns the number of keys.
func (v Values) Len() int {
	return len(v.pairs)
}

// Keys returns the keys in insertion order.
func (v Values) Keys() []string {
	keys := make([]string, len(v.pairs))
	for i, p := range v.pairs {
		keys[i] = p.key
	}
	return keys
}

// Merge sets every pair of other on v, in other's order.
func (v *Values) Merge(other Values) {
	if len(other.pairs) == 0 {
		return
	}
	v.own(len(other.pairs))
	for _, p := range other.pairs {
		v.set(p)
	}
}

// Clone returns a copy of v that can be modified independently.
func (v Values) Clone() Values {
	var c Values
	c.Merge(v)
	return c
}

// HasFiles reports whether any value is a File. A request carrying a file
// must be sent as multipart/form-data.
func (v Values) HasFiles() bool {
	for _, p := range v.pairs {
		if p.file != nil {
			return true
		}
	}
	return false
}

// Encode encodes the string values into ``URL encoded'' form
// ("bar=baz&foo=quux") in insertion order. File values are skipped; use
// EncodeMultipart for sets that carry files.
func (v Values) Encode() string {
	var buf bytes.Buffer
	for _, p := range v.pairs {
		if p.file != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(p.key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(p.value))
	}
	return buf.String()
}

// String implements fmt.Stringer. File values are shown by name.
func (v Values) String() string {
	parts := make([]string, 0, len(v.pairs))
	for _, p := range v.pairs {
		if p.file != nil {
			parts = append(parts, fmt.Sprintf("%s=@%s", p.key, p.file.Name))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", p.key, p.value))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
