// Package web holds the static assets served by focusflow serve.
package web

import (
	"context"
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/gopxl/beep/v2"

	"github.com/ayoisaiah/focusflow/offline"
	"github.com/ayoisaiah/focusflow/sound"
)

//go:embed files
var embedded embed.FS

const (
	filesDir   = "files"
	soundsDir  = "/assets/sounds/"
	focusSound = soundsDir + "focus.wav"
	alarmSound = soundsDir + "alarm.wav"
)

// Manifest lists the assets precached by the offline cache.
var Manifest = []string{
	"./",
	"./index.html",
	"./css/style.css",
	"./js/app.js",
	"./manifest.json",
	"." + focusSound,
	"." + alarmSound,
}

// Origin serves the embedded assets. The two sound assets are encoded from
// the built-in tones on first use.
type Origin struct {
	files  fs.FS
	sounds map[string][]byte
	err    error
	once   sync.Once
}

// NewOrigin returns the embedded asset origin.
func NewOrigin() *Origin {
	sub, _ := fs.Sub(embedded, filesDir)

	return &Origin{files: sub}
}

func (o *Origin) loadSounds() {
	o.sounds = make(map[string][]byte)

	for p, buf := range map[string]func() *beep.Buffer{
		focusSound: sound.FocusTone,
		alarmSound: sound.AlarmTone,
	} {
		b, err := sound.WAV(buf())
		if err != nil {
			o.err = err
			return
		}

		o.sounds[p] = b
	}
}

func (o *Origin) Fetch(_ context.Context, p string) (*offline.Response, error) {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}

	if strings.HasPrefix(p, soundsDir) {
		o.once.Do(o.loadSounds)

		if o.err != nil {
			return nil, o.err
		}

		if b, ok := o.sounds[p]; ok {
			return response(http.StatusOK, "audio/wav", b), nil
		}
	}

	name := strings.TrimPrefix(p, "/")
	if name == "" || strings.HasSuffix(name, "/") {
		name += "index.html"
	}

	b, err := fs.ReadFile(o.files, name)
	if err != nil {
		return response(http.StatusNotFound, "text/plain; charset=utf-8", []byte("404 page not found\n")), nil
	}

	ctype := mime.TypeByExtension(path.Ext(name))
	if ctype == "" {
		ctype = http.DetectContentType(b)
	}

	return response(http.StatusOK, ctype, b), nil
}

func response(status int, ctype string, body []byte) *offline.Response {
	h := http.Header{}
	h.Set("Content-Type", ctype)

	return &offline.Response{
		Status: status,
		Header: h,
		Body:   body,
	}
}
