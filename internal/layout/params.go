package layout

// Persistence classifies how a window parameter survives snapshots.
type Persistence uint8

const (
	// Transient parameters never appear in a state record.
	Transient Persistence = iota
	// Persistent parameters appear in live (in-memory) state records but
	// are dropped when a record is written out.
	Persistent
	// Writable parameters appear in every state record, including ones
	// persisted to external storage.
	Writable
)

// Params is the per-window parameter set: a small fixed schema the engine
// understands, plus an open map for engine-opaque metadata contributed by
// callers. Persistence of the typed fields is fixed at compile time;
// persistence of extra keys comes from RegisterParamPolicy.
type Params struct {
	// NoOther excludes the window from cyclic leaf navigation. Writable.
	NoOther bool
	// NoDelete protects the window from full-frame delete sweeps.
	// Persistent but never written to external storage.
	NoDelete bool

	extra map[string]string
}

// paramPolicies maps extra-parameter keys to their persistence class.
// Unregistered keys are Transient.
var paramPolicies = map[string]Persistence{}

// RegisterParamPolicy declares the persistence class of an extra
// parameter key. Call it once at startup, before snapshots are taken.
func RegisterParamPolicy(key string, p Persistence) {
	paramPolicies[key] = p
}

// ParamPolicy returns the persistence class of an extra parameter key.
func ParamPolicy(key string) Persistence {
	return paramPolicies[key]
}

// Get returns the named extra parameter.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.extra[key]
	return v, ok
}

// Set stores an extra parameter.
func (p *Params) Set(key, value string) {
	if p.extra == nil {
		p.extra = make(map[string]string, 4)
	}
	p.extra[key] = value
}

// Delete removes an extra parameter.
func (p *Params) Delete(key string) {
	delete(p.extra, key)
}

// Extra returns a copy of the open parameter map.
func (p *Params) Extra() map[string]string {
	if len(p.extra) == 0 {
		return nil
	}
	out := make(map[string]string, len(p.extra))
	for k, v := range p.extra {
		out[k] = v
	}
	return out
}

// PersistedExtra returns the extra parameters that survive a snapshot.
// When forStorage is true only Writable keys are kept.
func (p *Params) PersistedExtra(forStorage bool) map[string]string {
	if len(p.extra) == 0 {
		return nil
	}
	out := make(map[string]string)
	for k, v := range p.extra {
		switch paramPolicies[k] {
		case Writable:
			out[k] = v
		case Persistent:
			if !forStorage {
				out[k] = v
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (p Params) clone() Params {
	c := p
	if p.extra != nil {
		c.extra = make(map[string]string, len(p.extra))
		for k, v := range p.extra {
			c.extra[k] = v
		}
	}
	return c
}
