package core

import (
	"slices"

	"hypermaze/pkg/hyper"
)

// Size describes the dimensions of a view in pixels.
type Size struct {
	W int
	H int
}

// SceneFactory builds the walls of a named maze. Scenes that place walls at
// random draw from a generator seeded with seed.
type SceneFactory func(seed int64) ([]hyper.DiskWall, error)

var scenes = map[string]SceneFactory{}

// RegisterScene adds a scene factory under the provided name.
func RegisterScene(name string, f SceneFactory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scenes.
func Scenes() map[string]SceneFactory {
	return scenes
}

// SceneNames lists registered scenes in lexical order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
