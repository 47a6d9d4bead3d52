package playback

import (
	"log"
	"sync"

	"github.com/zoocast/catalog-api/internal/models"
)

// State is a point-in-time snapshot of the player, safe for the
// presentation shell to read. CurrentEpisode is nil while idle.
type State struct {
	CurrentEpisode *models.Episode
	IsPlaying      bool
	CurrentTime    float64
	Duration       float64
	IsExpanded     bool
}

// Player owns episode selection and playback state over a Media primitive.
// It is created once per UI session and mutated only through its methods;
// IsPlaying follows the primitive's play/pause events, never the issued
// commands, so optimistic state cannot diverge for long from what the
// primitive actually does.
type Player struct {
	mu    sync.Mutex
	media Media

	current     *models.Episode
	isPlaying   bool
	currentTime float64
	duration    float64
	expanded    bool
}

// Ensure Player receives the primitive's notifications
var _ MediaListener = (*Player)(nil)

// NewPlayer creates an idle player bound to the given primitive.
func NewPlayer(media Media) *Player {
	return &Player{
		media: media,
	}
}

// Play selects an episode. Selecting the episode that is already current
// toggles play/pause instead; anything else rebinds the primitive, resets
// the clock, starts playback and expands the widget. A rejected play
// request is logged and swallowed: the primitive's pause event will pull
// IsPlaying back down.
func (p *Player) Play(episode models.Episode) {
	p.mu.Lock()
	if p.current != nil && p.current.ID == episode.ID {
		p.mu.Unlock()
		p.TogglePlayPause()
		return
	}

	bound := episode
	p.current = &bound
	p.currentTime = 0
	p.duration = 0
	p.isPlaying = true
	p.expanded = true
	p.mu.Unlock()

	p.media.Load(episode.URL)
	if err := p.media.Play(); err != nil {
		log.Printf("Auto-play failed: %v", err)
	}
}

// TogglePlayPause flips playback of the current episode. No-op while idle.
// The authoritative IsPlaying value comes from OnPlay/OnPause, not from
// this call.
func (p *Player) TogglePlayPause() {
	p.mu.Lock()
	if p.current == nil {
		p.mu.Unlock()
		return
	}
	playing := p.isPlaying
	p.mu.Unlock()

	if playing {
		p.media.Pause()
		return
	}
	if err := p.media.Play(); err != nil {
		log.Printf("Play failed: %v", err)
	}
}

// Seek moves playback to the given position and mirrors it optimistically.
// No-op while idle.
func (p *Player) Seek(seconds float64) {
	p.mu.Lock()
	if p.current == nil {
		p.mu.Unlock()
		return
	}
	p.currentTime = seconds
	p.mu.Unlock()

	p.media.SetCurrentTime(seconds)
}

// Skip moves playback by delta seconds relative to the primitive's current
// position, clamped to [0, duration]. No-op while idle.
func (p *Player) Skip(delta float64) {
	p.mu.Lock()
	idle := p.current == nil
	p.mu.Unlock()
	if idle {
		return
	}

	target := p.media.CurrentTime() + delta
	if target < 0 {
		target = 0
	}
	if limit := p.media.Duration(); target > limit {
		target = limit
	}

	p.Seek(target)
}

// Close pauses the primitive and returns the player to idle, collapsed.
func (p *Player) Close() {
	p.media.Pause()

	p.mu.Lock()
	p.current = nil
	p.isPlaying = false
	p.expanded = false
	p.mu.Unlock()
}

// SetExpanded toggles the widget mode, independent of playback.
func (p *Player) SetExpanded(expanded bool) {
	p.mu.Lock()
	p.expanded = expanded
	p.mu.Unlock()
}

// Snapshot returns the current player state.
func (p *Player) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return State{
		CurrentEpisode: p.current,
		IsPlaying:      p.isPlaying,
		CurrentTime:    p.currentTime,
		Duration:       p.duration,
		IsExpanded:     p.expanded,
	}
}

// Progress returns playback progress as a percentage, 0 while the duration
// is unknown.
func (p *Player) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.duration <= 0 {
		return 0
	}
	return p.currentTime / p.duration * 100
}

// OnTimeUpdate refreshes the clock from the primitive.
func (p *Player) OnTimeUpdate(currentTime, duration float64) {
	p.mu.Lock()
	p.currentTime = currentTime
	p.duration = duration
	p.mu.Unlock()
}

// OnLoadedMetadata records the media length once the primitive knows it.
func (p *Player) OnLoadedMetadata(duration float64) {
	p.mu.Lock()
	p.duration = duration
	p.mu.Unlock()
}

// OnPlay is the authoritative signal that playback started.
func (p *Player) OnPlay() {
	p.mu.Lock()
	p.isPlaying = true
	p.mu.Unlock()
}

// OnPause is the authoritative signal that playback stopped.
func (p *Player) OnPause() {
	p.mu.Lock()
	p.isPlaying = false
	p.mu.Unlock()
}

// OnEnded marks end of media. Playback does not advance to another episode.
func (p *Player) OnEnded() {
	p.mu.Lock()
	p.isPlaying = false
	p.mu.Unlock()
}
