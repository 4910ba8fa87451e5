package internal

type Point struct {
	X float64
	Y float64
}

// Polygons are closed loops: vertex i connects to vertex i+1, and the last
// vertex connects back to the first. Vertex order defines the edges, so it is
// never rearranged. Winding and convexity are not checked.
type Polygon struct {
	Points []Point
}

// A directed segment from Start to End. Edges are derived from a polygon on
// demand and never stored back into it.
type Edge struct {
	Start Point
	End   Point
}

// Axis aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}
