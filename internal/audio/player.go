package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

type Player interface {
	// Play blocks until the sample has been played to the end
	Play(sample Sample) error
}

// DefaultPlayer plays samples from disk through the speaker. The speaker is
// initialised with the format of the first sample; later samples with a
// different rate are resampled.
type DefaultPlayer struct {
	NotesPath        string
	TonalCentersPath string
	Extension        string // including the dot, e.g. ".ogg"

	once       sync.Once
	initErr    error
	sampleRate beep.SampleRate
}

func (p *DefaultPlayer) Path(sample Sample) string {
	dir := p.NotesPath
	if sample.Kind == TonalCenterSample {
		dir = p.TonalCentersPath
	}
	return filepath.Join(dir, sample.Name+p.Extension)
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported sample format %q", filepath.Ext(path))
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

func (p *DefaultPlayer) initSpeaker(format beep.Format) error {
	p.once.Do(func() {
		p.sampleRate = format.SampleRate
		p.initErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	return p.initErr
}

func (p *DefaultPlayer) Play(sample Sample) error {
	path := p.Path(sample)
	streamer, format, err := decode(path)
	if nil != err {
		return fmt.Errorf("unable to open sample %v: %w", path, err)
	}
	defer streamer.Close()

	if err := p.initSpeaker(format); nil != err {
		return fmt.Errorf("unable to initialise speaker: %w", err)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		s = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}
