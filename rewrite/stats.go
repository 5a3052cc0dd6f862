package rewrite

// Applied contains statistics about what a merge operation changed.
type Applied struct {
	PropertiesAdded    int
	PropertiesReplaced int
	PluginsAdded       int
	PluginsUpdated     int
}

// Total returns the number of individual mutations recorded.
func (a Applied) Total() int {
	return a.PropertiesAdded + a.PropertiesReplaced + a.PluginsAdded + a.PluginsUpdated
}

func (a *Applied) merge(other Applied) {
	a.PropertiesAdded += other.PropertiesAdded
	a.PropertiesReplaced += other.PropertiesReplaced
	a.PluginsAdded += other.PluginsAdded
	a.PluginsUpdated += other.PluginsUpdated
}
