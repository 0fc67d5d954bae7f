package core

// Corpus is an immutable snapshot of normalized profiles. Queries hold one
// corpus for their whole lifetime; re-ingestion builds a new corpus rather
// than editing an existing one.
type Corpus struct {
	profiles []*Profile
	byID     map[string]*Profile
}

// NewCorpus builds a snapshot over profiles. The slice is copied so later
// changes by the caller are not observed. Profiles with an empty or repeated
// employee ID are dropped, keeping the first.
func NewCorpus(profiles []*Profile) *Corpus {
	c := &Corpus{
		profiles: make([]*Profile, 0, len(profiles)),
		byID:     make(map[string]*Profile, len(profiles)),
	}
	for _, p := range profiles {
		if p == nil || p.EmployeeID == "" {
			continue
		}
		if _, dup := c.byID[p.EmployeeID]; dup {
			continue
		}
		c.profiles = append(c.profiles, p)
		c.byID[p.EmployeeID] = p
	}
	return c
}

// Profiles returns the profiles in ingestion order. Callers must not modify it.
func (c *Corpus) Profiles() []*Profile {
	if c == nil {
		return nil
	}
	return c.profiles
}

// Len returns the number of profiles in the snapshot.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.profiles)
}

// Lookup finds a profile by employee ID.
func (c *Corpus) Lookup(employeeID string) (*Profile, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.byID[employeeID]
	return p, ok
}
