// Package export writes kernel meshes to interchange formats.
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/DoubleBridges/millnodes/pkg/kernel"
)

// WriteSTL writes the meshes to w as one binary STL body. Triangles
// are emitted in mesh order, so identical inputs produce byte-identical
// files. STL carries no part metadata; per-part identity travels in
// the cutlist and the attribute mesh instead.
func WriteSTL(w io.Writer, meshes []*kernel.Mesh) error {
	var header [80]byte
	copy(header[:], "millnodes")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("export: write stl header: %w", err)
	}

	var count uint32
	for _, m := range meshes {
		count += uint32(m.TriangleCount())
	}
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("export: write stl triangle count: %w", err)
	}

	// Per triangle: normal, three vertices, attribute byte count (0).
	var rec [12]float32
	for _, m := range meshes {
		for t := 0; t < m.TriangleCount(); t++ {
			i0, i1, i2 := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
			rec[0] = m.Normals[i0*3]
			rec[1] = m.Normals[i0*3+1]
			rec[2] = m.Normals[i0*3+2]
			copy(rec[3:6], m.Vertices[i0*3:i0*3+3])
			copy(rec[6:9], m.Vertices[i1*3:i1*3+3])
			copy(rec[9:12], m.Vertices[i2*3:i2*3+3])
			if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
				return fmt.Errorf("export: write stl triangle: %w", err)
			}
			if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
				return fmt.Errorf("export: write stl triangle: %w", err)
			}
		}
	}
	return nil
}

// SaveSTL writes the meshes to a binary STL file at path.
func SaveSTL(path string, meshes []*kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := WriteSTL(bw, meshes); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("export: flush %s: %w", path, err)
	}
	return f.Close()
}
