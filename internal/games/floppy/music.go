package floppy

// Music is a background stream owned by the shell.
// Update is called once per tick so streaming backends can refill buffers.
type Music interface {
	Update()
	Playing() bool
	Play()
}

// Silence is a Music that plays nothing. It still reports whether Play was
// called so the game flow is the same with or without an audio device.
type Silence struct {
	playing bool
}

// Update implements Music.
func (s *Silence) Update() {}

// Playing implements Music.
func (s *Silence) Playing() bool { return s.playing }

// Play implements Music.
func (s *Silence) Play() { s.playing = true }
