package fieldmap

// JoinMode selects how a key present on both sides of a merge is resolved.
type JoinMode int

const (
	// JoinModeOverwriteAll replaces the parent value with the child value for
	// every colliding key. This is the default policy.
	JoinModeOverwriteAll JoinMode = iota
	// JoinModeAll concatenates parent and child values for every colliding key.
	JoinModeAll
	// JoinModeKeys concatenates only the listed keys; all other collisions
	// overwrite.
	JoinModeKeys
)

// JoinPolicy is the rule applied per key when merging a child FieldMap onto a
// parent. Construct with OverwriteAll, JoinAll, or JoinKeys.
type JoinPolicy struct {
	mode      JoinMode
	separator string
	keys      map[string]struct{}
}

// OverwriteAll returns the policy that always overwrites on collision.
func OverwriteAll() JoinPolicy {
	return JoinPolicy{mode: JoinModeOverwriteAll}
}

// JoinAll returns the policy that joins every colliding string value with
// separator.
func JoinAll(separator string) JoinPolicy {
	return JoinPolicy{mode: JoinModeAll, separator: separator}
}

// JoinKeys returns the policy that joins only the listed keys with separator
// and overwrites everything else.
func JoinKeys(separator string, keys ...string) JoinPolicy {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return JoinPolicy{mode: JoinModeKeys, separator: separator, keys: set}
}

// Mode returns the policy's join mode.
func (p JoinPolicy) Mode() JoinMode { return p.mode }

// Separator returns the configured join separator.
func (p JoinPolicy) Separator() string { return p.separator }

func (p JoinPolicy) joinFor(key string) (string, bool) {
	switch p.mode {
	case JoinModeAll:
		return p.separator, true
	case JoinModeKeys:
		_, ok := p.keys[key]
		return p.separator, ok
	default:
		return "", false
	}
}
