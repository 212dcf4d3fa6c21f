// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/math32"
)

// WriteOBJ writes the given meshes to w in the Wavefront OBJ format,
// each as a named object with positions, texture coordinates and normals.
// Each mesh is offset by the matching position in offsets, if any.
func WriteOBJ(w io.Writer, names []string, meshes []Mesh, offsets ...math32.Vector3) error {
	bw := bufio.NewWriter(w)
	base := 1
	for mi, ms := range meshes {
		nv, ni, hasColor := ms.MeshSize()
		vtx := math32.NewArrayF32(3*nv, 3*nv)
		nrm := math32.NewArrayF32(3*nv, 3*nv)
		tex := math32.NewArrayF32(2*nv, 2*nv)
		var clr math32.ArrayF32
		if hasColor {
			clr = math32.NewArrayF32(4*nv, 4*nv)
		}
		idx := math32.NewArrayU32(ni, ni)
		ms.Set(vtx, nrm, tex, clr, idx)

		name := fmt.Sprintf("mesh%d", mi)
		if mi < len(names) && names[mi] != "" {
			name = names[mi]
		}
		var off math32.Vector3
		if mi < len(offsets) {
			off = offsets[mi]
		}
		fmt.Fprintf(bw, "o %s\n", name)
		for i := range nv {
			p := vtx.GetVector3(3 * i).Add(off)
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for i := range nv {
			t := tex.GetVector2(2 * i)
			fmt.Fprintf(bw, "vt %g %g\n", t.X, t.Y)
		}
		for i := range nv {
			n := nrm.GetVector3(3 * i)
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for i := 0; i+2 < ni; i += 3 {
			a, b, c := base+int(idx[i]), base+int(idx[i+1]), base+int(idx[i+2])
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		base += nv
	}
	return bw.Flush()
}

// SaveOBJ writes the given meshes to the named OBJ file.
func SaveOBJ(filename string, names []string, meshes []Mesh, offsets ...math32.Vector3) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = WriteOBJ(f, names, meshes, offsets...)
	return errors.Join(err, f.Close())
}
