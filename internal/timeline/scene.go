package timeline

import "github.com/showctl/cueline/internal/theme"

// Scene is a named, colored output target a SceneCue can reference by its
// stable ID. Scenes are populated from configuration before a show loads.
type Scene struct {
	ID    string
	Name  string
	Color theme.Color
}

// SceneRegistry maps stable scene IDs to scenes. It is handed to the
// Timeline (and through it to SceneCues) explicitly; there is no ambient
// global registry.
type SceneRegistry struct {
	byID  map[string]Scene
	order []string
}

func NewSceneRegistry() *SceneRegistry {
	return &SceneRegistry{byID: map[string]Scene{}}
}

// Add registers or replaces a scene.
func (r *SceneRegistry) Add(s Scene) {
	if _, exists := r.byID[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
}

// Get looks a scene up by ID.
func (r *SceneRegistry) Get(id string) (Scene, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Scenes returns all scenes in registration order.
func (r *SceneRegistry) Scenes() []Scene {
	scenes := make([]Scene, 0, len(r.order))
	for _, id := range r.order {
		scenes = append(scenes, r.byID[id])
	}
	return scenes
}
