package render

import (
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/meshgen"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the preview camera. The mesh is fitted into a bi-unit
// cube centered at the origin before drawing, so Eye and Center are in
// those normalized units.
type View struct {
	Eye    r3.Vec // camera position
	Center r3.Vec // view center position
	Up     r3.Vec // up vector
	Light  r3.Vec // light direction

	Width, Height int
	// Supersampling factor. The image is drawn Scale times larger and
	// downsampled for antialiasing.
	Scale      int
	Fovy       float64 // vertical field of view in degrees
	Near, Far  float64
	Color      string // object color as hex
	Background string
}

// DefaultView looks at the origin from (3,3,3) with Z up.
func DefaultView() View {
	return View{
		Eye:        r3.Vec{X: 3, Y: 3, Z: 3},
		Up:         r3.Vec{Z: 1},
		Light:      r3.Vec{X: -0.75, Y: 1, Z: 0.25},
		Width:      640,
		Height:     480,
		Scale:      2,
		Fovy:       30,
		Near:       1,
		Far:        10,
		Color:      "#468966",
		Background: "#FFF8E3",
	}
}

// Image draws m with a Phong shader as seen from view.
func Image(m *meshgen.Mesh, view View) (image.Image, error) {
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("preview size must be positive")
	}
	if view.Scale < 1 {
		view.Scale = 1
	}
	tris, err := m.Triangles()
	if err != nil {
		return nil, err
	}
	if len(tris) == 0 {
		return nil, errors.New("nothing to draw")
	}
	faux := make([]*fauxgl.Triangle, len(tris))
	for i, t := range tris {
		faux[i] = fauxgl.NewTriangleForPoints(fv(t[0]), fv(t[1]), fv(t[2]))
	}
	mesh := fauxgl.NewTriangleMesh(faux)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()

	eye := fv(view.Eye)
	context := fauxgl.NewContext(view.Width*view.Scale, view.Height*view.Scale)
	context.ClearColorBufferWith(fauxgl.HexColor(view.Background))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, fv(view.Center), fv(view.Up)).Perspective(view.Fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, fv(view.Light).Normalize(), eye)
	shader.ObjectColor = fauxgl.HexColor(view.Color)
	context.Shader = shader
	context.DrawMesh(mesh)

	img := context.Image()
	if view.Scale > 1 {
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}

// EncodePNG draws m and writes the image to w as PNG.
func EncodePNG(w io.Writer, m *meshgen.Mesh, view View) error {
	img, err := Image(m, view)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// PNG draws m and saves the image as a PNG file at path.
func PNG(path string, m *meshgen.Mesh, view View) error {
	img, err := Image(m, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

func fv(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
