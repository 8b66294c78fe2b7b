package ports

// SceneLoader builds a graph store from a scene description file.
//
//go:generate mockgen -source=scene_loader.go -destination=mocks/mock_scene_loader.go -package=mocks
type SceneLoader interface {
	// Load reads the scene file at path and returns a populated store.
	Load(path string) (GraphStore, error)
}
