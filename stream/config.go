package stream

// A Span assigns a contiguous run of pixels to an animated object. The
// object's sampled hue property drives the colour of the whole span.
type Span struct {
	ObjectID    string `yaml:"objectId"`
	Start       int    `yaml:"start"`
	End         int    `yaml:"end"`
	HueProperty string `yaml:"hueProperty"`
}

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			State   string `yaml:"state"`
			Command string `yaml:"command"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Playback struct {
		Preset    string  `yaml:"preset"`
		ObjectID  string  `yaml:"objectId"`
		Duration  float64 `yaml:"duration"`
		Height    float64 `yaml:"height"`
		Radius    float64 `yaml:"radius"`
		FrameRate float64 `yaml:"frameRate"`
		Speed     float64 `yaml:"speed"`
		Loop      bool    `yaml:"loop"`
	} `yaml:"playback"`
	Render struct {
		NumPixels int    `yaml:"numPixels"`
		Spans     []Span `yaml:"spans"`
	} `yaml:"render"`
}

// ApplyDefaults fills in the optional playback and render settings.
func (c *Config) ApplyDefaults() {
	if c.Playback.FrameRate == 0 {
		c.Playback.FrameRate = 30
	}
	if c.Playback.Speed == 0 {
		c.Playback.Speed = 1.0
	}
	if c.Render.NumPixels == 0 {
		c.Render.NumPixels = 500
	}
}
