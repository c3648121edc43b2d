package meshgen

import "gonum.org/v1/gonum/spatial/r3"

// Join concatenates the vertex lists of meshes in order and offsets each
// face's indices by the number of vertices that precede its mesh. Coincident
// vertices are not welded so seams keep duplicate vertices. Nil meshes are
// skipped. The inputs are not modified.
func Join(meshes ...*Mesh) *Mesh {
	nv, nf := 0, 0
	for _, m := range meshes {
		if m == nil {
			continue
		}
		nv += len(m.Vertices)
		nf += len(m.Faces)
	}
	out := &Mesh{
		Vertices: make([]r3.Vec, 0, nv),
		Faces:    make([]Face, 0, nf),
	}
	for _, m := range meshes {
		if m == nil {
			continue
		}
		offset := len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			nf := make(Face, len(f))
			for i, idx := range f {
				nf[i] = idx + offset
			}
			out.Faces = append(out.Faces, nf)
		}
	}
	return out
}
