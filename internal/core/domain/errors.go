package domain

import "go.trai.ch/zerr"

var (
	// ErrNodeNotFound is returned when an endpoint name does not resolve to a graph node.
	ErrNodeNotFound = zerr.New("node not found")

	// ErrGraphInconsistent is returned when a node's level cannot be determined.
	ErrGraphInconsistent = zerr.New("graph inconsistent: node level unresolvable")

	// ErrBrokenChain is returned when an expected parent link is missing while
	// walking up to the common level.
	ErrBrokenChain = zerr.New("broken parent chain")

	// ErrNoCommonAncestor is returned when the lockstep ancestor walk fails to
	// converge because the two nodes do not share a connected tree path.
	ErrNoCommonAncestor = zerr.New("no common ancestor")

	// ErrEdgeNotFound is returned when a parent->child RT edge is missing.
	ErrEdgeNotFound = zerr.New("edge not found")

	// ErrFrameExists is returned when adding a frame whose name is already taken.
	ErrFrameExists = zerr.New("frame already exists")

	// ErrUnknownParent is returned when a frame references a parent that does
	// not exist in the scene.
	ErrUnknownParent = zerr.New("unknown parent frame")

	// ErrMissingFrameName is returned when a scene file declares a frame
	// without a name.
	ErrMissingFrameName = zerr.New("frame name is required")

	// ErrSceneReadFailed is returned when the scene file cannot be read.
	ErrSceneReadFailed = zerr.New("failed to read scene file")

	// ErrSceneParseFailed is returned when the scene file cannot be parsed.
	ErrSceneParseFailed = zerr.New("failed to parse scene file")

	// ErrQueryFailed is returned when a transform query cannot be answered.
	ErrQueryFailed = zerr.New("transform query failed")
)
