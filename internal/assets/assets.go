// Package assets embeds the sprite art and fonts used by the demo scenes.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
)

//go:embed sprites/*.txt
var spriteFS embed.FS

// FontTTF is the TrueType font used for outline text.
var FontTTF = goregular.TTF

// SpriteColors maps the characters used in the embedded art to palette
// names.
var SpriteColors = map[rune]any{
	'#': "white",
	'r': "red",
	'g': "green",
	'b': "blue",
	'y': "yellow",
	'o': "orange",
	'c': "cyan",
	'p': "purple",
}

// Sprites is the embedded art as a filesystem rooted at sprites/. Frame n of
// sprite name is stored as name-n.txt.
var Sprites fs.FS

func init() {
	sub, err := fs.Sub(spriteFS, "sprites")
	if err != nil {
		panic(err)
	}
	Sprites = sub
}

// SpriteNames lists the embedded sprites.
func SpriteNames() []string {
	files, _ := fs.Glob(Sprites, "*-*.txt")
	seen := map[string]bool{}
	var names []string
	for _, f := range files {
		name := f[:strings.LastIndex(f, "-")]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// SpriteFrames returns the frames of sprite name in frame order.
func SpriteFrames(name string) ([]string, error) {
	return LoadFrames(Sprites, name)
}

// LoadFrames reads name-0.txt, name-1.txt, ... from fsys until a frame is
// missing.
func LoadFrames(fsys fs.FS, name string) ([]string, error) {
	var frames []string
	for i := 0; ; i++ {
		data, err := fs.ReadFile(fsys, fmt.Sprintf("%s-%d.txt", name, i))
		if err != nil {
			break
		}
		frames = append(frames, string(data))
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("sprite %q: %w", name, fs.ErrNotExist)
	}
	return frames, nil
}
