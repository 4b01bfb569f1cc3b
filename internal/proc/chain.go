package proc

// Entry is one hop of an ancestry chain.
type Entry struct {
	PID  uint32
	PPID uint32
	Name string
}

// Chain lists the ancestors of the calling process, closest first, stopping
// at the root process or after maxHops entries. Any read failure aborts the
// listing.
func (r *Reader) Chain(maxHops int) ([]Entry, error) {
	pid, err := r.SelfParentID()
	if err != nil {
		return nil, err
	}

	var chain []Entry
	for pid > 1 && len(chain) < maxHops {
		name, err := r.CommandName(pid)
		if err != nil {
			return chain, err
		}
		ppid, err := r.ParentID(pid)
		if err != nil {
			return chain, err
		}
		chain = append(chain, Entry{PID: pid, PPID: ppid, Name: name})
		pid = ppid
	}
	return chain, nil
}
