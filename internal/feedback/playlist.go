package feedback

// Playlist walks a list of background music sources, moving to the next one
// when the current source fails to load.
type Playlist struct {
	sources []string
	index   int
}

func NewPlaylist(sources []string) *Playlist {
	return &Playlist{sources: append([]string(nil), sources...)}
}

// Current returns the source to play, or "" when every source failed or none exist.
func (p *Playlist) Current() string {
	if p.index >= len(p.sources) {
		return ""
	}
	return p.sources[p.index]
}

// Fail marks the current source as broken and returns the next one. ok is
// false once the list is exhausted.
func (p *Playlist) Fail() (next string, ok bool) {
	if p.index < len(p.sources) {
		p.index++
	}
	next = p.Current()
	return next, next != ""
}
