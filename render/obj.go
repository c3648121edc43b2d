package render

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/soypat/meshgen"
)

// CreateOBJ writes m as a Wavefront OBJ file at path.
func CreateOBJ(path, name string, m *meshgen.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(file, name, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteOBJ writes m to w as a single Wavefront OBJ object. Faces keep their
// polygon structure and winding; indices are 1-based as the format requires.
func WriteOBJ(w io.Writer, name string, m *meshgen.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if name != "" {
		if _, err := bw.WriteString("o " + name + "\n"); err != nil {
			return err
		}
	}
	var buf []byte
	for _, v := range m.Vertices {
		buf = append(buf, 'v')
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}
	for _, f := range m.Faces {
		buf = append(buf, 'f')
		for _, idx := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx+1), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}
	return bw.Flush()
}
