package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/circle-numbers/internal/config"
	"github.com/iburimskiy/circle-numbers/internal/sound"
)

// clicker plays a short tone through the speaker. A clicker whose device
// failed to open stays silent.
type clicker struct {
	enabled    bool
	sampleRate beep.SampleRate
}

func newClicker(enabled bool, logger *zap.Logger) *clicker {
	if !enabled {
		return &clicker{}
	}
	sr := beep.SampleRate(config.ToneSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		logger.Warn("sound disabled", zap.Error(err))
		return &clicker{}
	}
	return &clicker{enabled: true, sampleRate: sr}
}

func (c *clicker) play() {
	if !c.enabled {
		return
	}
	speaker.Play(sound.Click(c.sampleRate, config.ToneFrequency, config.ToneVolume, config.ToneDurationMS*time.Millisecond))
}
